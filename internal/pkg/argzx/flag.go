package argzx

var (
	_ Flag = BoolFlag{}
	_ Flag = StringFlag{}
	_ Flag = NumberFlag{}
)

// Flag is a declared command-line option. The concrete type decides how many
// tokens the flag consumes and how its value is produced.
type Flag interface {
	flag()
	FlagName() string
	DefaultValue() any
}

// BoolFlag is a presence toggle: supplying it flips Default.
type BoolFlag struct {
	Name        string
	Default     bool
	Aliases     []string // carried, never matched
	Description string
}

func (BoolFlag) flag()               {}
func (f BoolFlag) FlagName() string  { return f.Name }
func (f BoolFlag) DefaultValue() any { return f.Default }

// StringFlag takes the following token verbatim.
type StringFlag struct {
	Name        string
	Default     string
	Aliases     []string
	Description string
}

func (StringFlag) flag()               {}
func (f StringFlag) FlagName() string  { return f.Name }
func (f StringFlag) DefaultValue() any { return f.Default }

// NumberFlag takes the following token as well, but the value is stored as the
// raw token string. Only an untouched flag yields its numeric Default.
type NumberFlag struct {
	Name        string
	Default     float64
	Aliases     []string
	Description string
}

func (NumberFlag) flag()               {}
func (f NumberFlag) FlagName() string  { return f.Name }
func (f NumberFlag) DefaultValue() any { return f.Default }

// Width returns the number of tokens f consumes from the working list.
func Width(f Flag) int {
	switch f.(type) {
	case BoolFlag:
		return 1
	case StringFlag, NumberFlag:
		return 2
	}
	return 0
}
