package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"addressprocessor/pkg/pipeline"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogPath != "" || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("Load() log = (%q, %v), want (\"\", INFO)", cfg.LogPath, cfg.LogLevel)
	}
	if cfg.Normalize.Enabled() {
		t.Errorf("Load() normalize = %+v, want nothing enabled", cfg.Normalize)
	}
	if cfg.OnMalformed != pipeline.OnMalformedStop {
		t.Errorf("Load() on-malformed = %v, want %v", cfg.OnMalformed, pipeline.OnMalformedStop)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ADDRESSPROC_LOG_LEVEL", "debug")
	t.Setenv("ADDRESSPROC_NORMALIZE_TRIM", "true")
	t.Setenv("ADDRESSPROC_NORMALIZE_TITLE_CASE", "en")
	t.Setenv("ADDRESSPROC_ON_MALFORMED", "skip")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if !cfg.Normalize.Trim || cfg.Normalize.TitleCase != "en" {
		t.Errorf("Normalize = %+v", cfg.Normalize)
	}
	if cfg.OnMalformed != pipeline.OnMalformedSkip {
		t.Errorf("OnMalformed = %v, want %v", cfg.OnMalformed, pipeline.OnMalformedSkip)
	}
	if got := len(cfg.Normalize.Options()); got != 2 {
		t.Errorf("Options() returned %d options, want 2", got)
	}
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressproc.yaml")
	content := "log-level: warn\nnormalize:\n  nfc: true\n  sanitize: true\non-malformed: skip\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	v := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("on-malformed", "stop", "")
	if err := BindFlags(v, flags, map[string]string{"log-level": KeyLogLevel, "on-malformed": KeyOnMalformed}); err != nil {
		t.Fatalf("BindFlags() error = %v", err)
	}
	if err := flags.Parse([]string{"--log-level", "error"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(v, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// a flag that was set wins over the file, an unset one does not
	if cfg.LogLevel != slog.LevelError {
		t.Errorf("LogLevel = %v, want ERROR", cfg.LogLevel)
	}
	if cfg.OnMalformed != pipeline.OnMalformedSkip {
		t.Errorf("OnMalformed = %v, want %v", cfg.OnMalformed, pipeline.OnMalformedSkip)
	}
	if !cfg.Normalize.NFC || !cfg.Normalize.Sanitize || cfg.Normalize.Trim {
		t.Errorf("Normalize = %+v", cfg.Normalize)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("Bad log level", func(t *testing.T) {
		v := New()
		v.Set(KeyLogLevel, "loud")
		if _, err := Load(v, ""); !errors.Is(err, errInvalidLogLevel) {
			t.Errorf("Load() error = %v, want %v", err, errInvalidLogLevel)
		}
	})

	t.Run("Bad policy", func(t *testing.T) {
		v := New()
		v.Set(KeyOnMalformed, "ignore")
		if _, err := Load(v, ""); err == nil {
			t.Errorf("Load() error = nil, want an error")
		}
	})

	t.Run("Missing config file", func(t *testing.T) {
		if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Errorf("Load() error = nil, want an error")
		}
	})

	t.Run("Unknown flag", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		if err := BindFlags(New(), flags, map[string]string{"nope": KeyLog}); err == nil {
			t.Errorf("BindFlags() error = nil, want an error")
		}
	})
}
