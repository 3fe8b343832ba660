package logging

import (
	"log"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"console", "json"} {
		cfg, err := Config(zapcore.WarnLevel, format)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
		if cfg.Encoding != format {
			t.Fatalf("encoding = %q, want %q", cfg.Encoding, format)
		}
		if cfg.Level.Level() != zapcore.WarnLevel {
			t.Fatalf("level = %v, want warn", cfg.Level.Level())
		}
		if _, err := cfg.Build(); err != nil {
			t.Fatalf("%s: build: %v", format, err)
		}
	}
}

func TestConfig_UnknownFormat(t *testing.T) {
	t.Parallel()
	if _, err := Config(zapcore.InfoLevel, "xml"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSetup(t *testing.T) {
	prevLogger := zap.L()
	prevStd := log.Writer()
	prevFlags := log.Flags()
	t.Cleanup(func() {
		zap.ReplaceGlobals(prevLogger)
		log.SetOutput(prevStd)
		log.SetFlags(prevFlags)
	})

	logger, err := Setup(zapcore.DebugLevel, "json")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if zap.L() != logger {
		t.Fatalf("zap.L() is not the logger returned by Setup")
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level not enabled")
	}
	if log.Flags() != 0 {
		t.Fatalf("std log flags = %d, want 0 after redirect", log.Flags())
	}
}

func TestSetup_UnknownFormat(t *testing.T) {
	prev := zap.L()
	if _, err := Setup(zapcore.InfoLevel, "xml"); err == nil {
		t.Fatalf("expected error")
	}
	if zap.L() != prev {
		t.Fatalf("globals replaced despite error")
	}
}
