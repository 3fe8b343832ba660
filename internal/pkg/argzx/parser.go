// Package argzx parses a process argv against a declared set of flags.
package argzx

import (
	"os"

	"go.uber.org/zap"
)

// Parser holds a registry and config. It is immutable once built, so a single
// Parser may be shared between goroutines.
type Parser struct {
	registry *Registry
	config   Config
	logger   *zap.Logger
}

// Option configures a Parser built by New or Run.
type Option func(*Parser)

// WithLogger makes the parser report each consumed flag at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New registers flags and stores cfg.
func New(flags []Flag, cfg Config, opts ...Option) *Parser {
	p := &Parser{
		registry: NewRegistry(flags),
		config:   cfg,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run parses the current process arguments against flags.
func Run(flags []Flag, cfg Config, opts ...Option) (Results, error) {
	return New(flags, cfg, opts...).Parse(os.Args)
}

// Registry returns the flags p was built with.
func (p *Parser) Registry() *Registry { return p.registry }

// Config returns the argv handling switches of p.
func (p *Parser) Config() Config { return p.config }

// Parse runs the full pipeline over argv: select the working list, check its
// shape, seed defaults, then scan.
func (p *Parser) Parse(argv []string) (Results, error) {
	args := selectArgs(argv, p.config)
	p.logger.Debug("Parsing arguments",
		zap.Strings("args", args),
		zap.Bool("skipDefaultArgv", p.config.SkipDefaultArgv),
		zap.Bool("continueWithDefaultArgv", p.config.ContinueWithDefaultArgv),
	)

	if err := checkArgs(args, p.config); err != nil {
		return Results{}, err
	}

	res, err := scan(p.registry, args, fill(p.registry), p.logger)
	if err != nil {
		return Results{}, err
	}
	return res, nil
}

func selectArgs(argv []string, cfg Config) []string {
	if cfg.SkipDefaultArgv {
		return argv
	}
	if len(argv) <= 2 {
		return nil
	}
	return argv[2:]
}

func checkArgs(args []string, cfg Config) error {
	if len(args) == 0 && !cfg.SkipDefaultArgv {
		return shapeError("no arguments after program and script path")
	}
	if len(args) < 2 && cfg.SkipDefaultArgv && !cfg.ContinueWithDefaultArgv {
		return shapeError("raw argv shorter than 2 tokens")
	}
	return nil
}

// fill seeds a fresh Results with every declared default.
func fill(reg *Registry) Results {
	res := Results{values: make(map[string]any, reg.Len())}
	for _, f := range reg.Flags() {
		res.order = append(res.order, f.FlagName())
		res.values[f.FlagName()] = f.DefaultValue()
	}
	return res
}

// scan walks args left to right and returns res with the supplied flags
// applied. res itself is left untouched.
func scan(reg *Registry, args []string, res Results, logger *zap.Logger) (Results, error) {
	for idx := 0; idx < len(args); {
		tok := args[idx]
		f, ok := reg.Lookup(tok)
		if !ok {
			return Results{}, &ArgumentError{Kind: ErrUnrecognizedFlag, Token: tok, Index: idx}
		}

		var val any
		switch v := f.(type) {
		case BoolFlag:
			val = !v.Default
		case StringFlag, NumberFlag:
			if idx+1 >= len(args) {
				return Results{}, &ArgumentError{
					Kind:   ErrInvalidArgumentShape,
					Token:  tok,
					Index:  idx,
					Reason: "flag requires a value",
				}
			}
			val = args[idx+1]
		default:
			return Results{}, &ArgumentError{
				Kind:   ErrUnrecognizedFlag,
				Token:  tok,
				Index:  idx,
				Reason: "unsupported flag type",
			}
		}

		logger.Debug("Consumed flag", zap.String("flag", tok), zap.Int("index", idx), zap.Any("value", val))
		res = res.with(tok, val)
		idx += Width(f)
	}
	return res, nil
}
