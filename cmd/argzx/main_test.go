package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/TheGrizzlyDev/argzx/internal/pkg/argzx"
)

const declJSON = `[
	{"name": "verbose", "default": false},
	{"name": "out", "default": "a.txt", "description": "output file"},
	{"name": "jobs", "default": 5}
]`

func writeDecl(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flags.json")
	if err := os.WriteFile(path, []byte(declJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr, zap.NewNop())
	return stdout.String(), err
}

func TestRun_Text(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "--decl", writeDecl(t), "--", "node", "app.js", "verbose", "out", "b.txt")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "verbose=true\nout=b.txt\njobs=5\n"
	if out != want {
		t.Fatalf("output mismatch\n  got: %q\n  want: %q", out, want)
	}
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "--decl", writeDecl(t), "--format", "json", "--", "node", "app.js", "jobs", "42")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := map[string]any{"verbose": false, "out": "a.txt", "jobs": "42"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_SkipDefaultArgv(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "--decl", writeDecl(t),
		"--skip-default-argv", "--continue-with-default-argv", "--", "verbose")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "verbose=true\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRun_Render(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, "--decl", writeDecl(t), "--render", "--", "node", "app.js", "out", "a.txt", "verbose")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "verbose\n" {
		t.Fatalf("render output %q, want %q", out, "verbose\n")
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	decl := writeDecl(t)

	t.Run("empty argv", func(t *testing.T) {
		t.Parallel()
		_, err := runCLI(t, "--decl", decl, "--", "node", "app.js")
		if !argzx.IsKind(err, argzx.ErrInvalidArgumentShape) {
			t.Fatalf("got %v, want invalid shape", err)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		_, err := runCLI(t, "--decl", decl, "--", "node", "app.js", "--unknown")
		if !argzx.IsKind(err, argzx.ErrUnrecognizedFlag) {
			t.Fatalf("got %v, want unrecognized flag", err)
		}
	})

	t.Run("missing decl", func(t *testing.T) {
		t.Parallel()
		if _, err := runCLI(t, "--", "node", "app.js", "verbose"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()
		if _, err := runCLI(t, "--decl", decl, "--format", "yaml", "--", "node", "app.js", "verbose"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

// main already prints the returned error, so run must not log it above debug.
func TestRun_ParseErrorNotLoggedTwice(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--decl", writeDecl(t), "--", "node", "app.js", "--unknown"}, &stdout, &stderr, zap.New(core))
	if !argzx.IsKind(err, argzx.ErrUnrecognizedFlag) {
		t.Fatalf("got %v, want unrecognized flag", err)
	}

	if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 0 {
		t.Fatalf("got %d error-level entries, want 0", n)
	}
	if n := logs.FilterMessage("Parse failed").Len(); n != 1 {
		t.Fatalf("got %d debug entries for the failure, want 1", n)
	}
}
