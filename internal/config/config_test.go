package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse([]byte("variant: base\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Variant != "base" {
		t.Fatalf("want base got %q", c.Variant)
	}
	if c.Banner != Default().Banner {
		t.Fatalf("banner not defaulted: %q", c.Banner)
	}
	l, err := c.Level()
	if err != nil || l != slog.LevelDebug {
		t.Fatalf("want debug got %v (%v)", l, err)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != Default() {
		t.Fatalf("want defaults got %+v", c)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	for _, in := range []string{
		"variant: turbo\n",
		"log_level: loud\n",
		"banner: \"\"\n",
		"colour: red\n",
		"- just\n- a list\n",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("parse %q: expected error", in)
		}
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("variant: [base\n")); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rover.yaml")
	if err := os.WriteFile(p, []byte("prompt: go\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Prompt != "go" || c.Variant != "power" {
		t.Fatalf("unexpected config %+v", c)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
