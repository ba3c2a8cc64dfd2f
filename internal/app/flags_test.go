package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDefaultsValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"interval": 12, "scale": 4, "rule": "B36/S23"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	if err := cfg.Parse(fs, []string{"-config", path, "-scale", "6"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Interval != 12 {
		t.Fatalf("interval = %d, want 12 from file", cfg.Interval)
	}
	if cfg.Scale != 6 {
		t.Fatalf("scale = %v, want flag override 6", cfg.Scale)
	}
	if cfg.ParsedRule().String() != "B36/S23" {
		t.Fatalf("rule = %v", cfg.ParsedRule())
	}
	if cfg.TPS != 60 {
		t.Fatalf("tps = %d, want default 60", cfg.TPS)
	}
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"-config", "/does/not/exist.json"}, "failed to read file"},
		{"bad interval", []string{"-interval", "0"}, "interval"},
		{"bad rule", []string{"-rule", "conway"}, "invalid -rule"},
		{"bad density", []string{"-density", "120"}, "density"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("life", flag.ContinueOnError)
			err := NewConfig().Parse(fs, tc.args)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"interval": "fast"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadConfig(path, NewConfig()); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("err = %v", err)
	}
}
