// Package config loads the optional rover.yaml file.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("config.schema.json", schemaSource)
	})
	return schema, schemaErr
}

type Config struct {
	Variant  string `yaml:"variant"`
	Prompt   string `yaml:"prompt"`
	Banner   string `yaml:"banner"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Variant:  "power",
		Prompt:   "--------------------- ENTER INPUT (press Ctrl+D once done) ----------------------------",
		Banner:   " --------------------- New Robot Coordinates: ----------------------------",
		LogLevel: "info",
	}
}

func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates raw against the schema and overlays it on Default.
func Parse(raw []byte) (Config, error) {
	c := Default()
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return c, fmt.Errorf("rover.yaml: %w", err)
	}
	if doc == nil {
		return c, nil
	}
	s, err := compiled()
	if err != nil {
		return c, err
	}
	if err := s.Validate(doc); err != nil {
		return c, fmt.Errorf("rover.yaml: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("rover.yaml: %w", err)
	}
	return c, nil
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
