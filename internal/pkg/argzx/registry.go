package argzx

// Registry maps flag names to their declarations, remembering the order in
// which names were first inserted.
type Registry struct {
	order []string
	flags map[string]Flag
}

// NewRegistry builds a registry from flags. A repeated name replaces the
// earlier declaration but keeps its original position.
func NewRegistry(flags []Flag) *Registry {
	r := &Registry{flags: make(map[string]Flag, len(flags))}
	for _, f := range flags {
		if f == nil {
			continue
		}
		r.set(f)
	}
	return r
}

func (r *Registry) set(f Flag) {
	name := f.FlagName()
	if _, ok := r.flags[name]; !ok {
		r.order = append(r.order, name)
	}
	r.flags[name] = f
}

// Lookup returns the flag registered under name.
func (r *Registry) Lookup(name string) (Flag, bool) {
	f, ok := r.flags[name]
	return f, ok
}

// Names returns registered names in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Flags returns the registered flags in insertion order.
func (r *Registry) Flags() []Flag {
	out := make([]Flag, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.flags[n])
	}
	return out
}

// Len returns the number of distinct flag names.
func (r *Registry) Len() int { return len(r.order) }
