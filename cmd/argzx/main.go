package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/TheGrizzlyDev/argzx/internal/pkg/argzx"
	"github.com/TheGrizzlyDev/argzx/internal/pkg/argzx/decl"
	"github.com/TheGrizzlyDev/argzx/internal/pkg/logging"
)

// cliFlags are the binary's own flags. Everything after "--" is the argv
// handed to the parser, program and script path included.
type cliFlags struct {
	Decl                    string `required:"" type:"existingfile" help:"JSON file declaring the recognized flags."`
	SkipDefaultArgv         bool   `help:"Scan the tokens verbatim instead of dropping the first two."`
	ContinueWithDefaultArgv bool   `help:"Accept a verbatim token list shorter than two tokens."`
	Format                  string `default:"text" enum:"text,json" help:"Output format: ${enum}."`
	Render                  bool   `help:"Print the shortest token list that reproduces the result."`

	Log struct {
		Level  string `default:"info"    help:"Log level."`
		Format string `default:"console" help:"Log format: ${enum}." enum:"console,json"`
	} `embed:"" prefix:"log-"`

	Tokens []string `arg:"" optional:"" passthrough:"" help:"argv to parse."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		fmt.Fprintf(os.Stderr, "argzx: %v\n", err)
		os.Exit(1)
	}
}

// run parses the binary's own args, then the passthrough argv, and writes
// the result to stdout. A nil logger means one is built from the log flags.
func run(args []string, stdout, stderr io.Writer, logger *zap.Logger) error {
	var c cliFlags
	k, err := kong.New(&c,
		kong.Name("argzx"),
		kong.Description("Parse an argv against declared flags and print the result."),
		kong.Writers(stdout, stderr),
		kong.DefaultEnvars("ARGZX"),
		kong.UsageOnError(),
	)
	if err != nil {
		return fmt.Errorf("build cli: %w", err)
	}
	if _, err := k.Parse(args); err != nil {
		return err
	}

	if logger == nil {
		level, err := zapcore.ParseLevel(c.Log.Level)
		if err != nil {
			return err
		}
		if logger, err = logging.Setup(level, c.Log.Format); err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable
	}

	flags, err := decl.Load(c.Decl)
	if err != nil {
		return err
	}
	logger.Debug("Loaded declarations", zap.String("path", c.Decl), zap.Int("flags", len(flags)))

	cfg := argzx.Config{
		SkipDefaultArgv:         c.SkipDefaultArgv,
		ContinueWithDefaultArgv: c.ContinueWithDefaultArgv,
	}
	res, err := argzx.New(flags, cfg, argzx.WithLogger(logger)).Parse(c.Tokens)
	if err != nil {
		logger.Debug("Parse failed", zap.Error(err))
		return err
	}

	if c.Render {
		for _, tok := range argzx.Render(flags, res) {
			fmt.Fprintln(stdout, tok)
		}
		return nil
	}

	return write(stdout, res, c.Format)
}

func write(w io.Writer, res argzx.Results, format string) error {
	switch format {
	case "json":
		s, err := res.Struct()
		if err != nil {
			return err
		}
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		for _, name := range res.Names() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", name, res.String(name)); err != nil {
				return err
			}
		}
		return nil
	}
}
