package argzx

import "reflect"

// Render returns the shortest working list that parses back into res under
// the given flags. Flags still holding their default are omitted.
func Render(flags []Flag, res Results) []string {
	reg := NewRegistry(flags)
	var out []string
	for _, f := range reg.Flags() {
		v, ok := res.Get(f.FlagName())
		if !ok || reflect.DeepEqual(v, f.DefaultValue()) {
			continue
		}
		switch f.(type) {
		case BoolFlag:
			out = append(out, f.FlagName())
		case StringFlag, NumberFlag:
			out = append(out, f.FlagName(), res.String(f.FlagName()))
		}
	}
	return out
}
