package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"rover/internal/batch"
	"rover/internal/config"
	"rover/internal/interpreter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code. A malformed batch is logged but is
// not a failure; bad flags, config or unreadable input are.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfgPath, variantName, level string
	fs.StringVar(&cfgPath, "config", "", "path to rover.yaml")
	fs.StringVar(&variantName, "variant", "", "base or power (overrides config)")
	fs.StringVar(&level, "log-level", "", "debug, info, warn or error (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(cfgPath, variantName, level)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	variant, err := interpreter.VariantByName(cfg.Variant)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	lvl, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	// input comes from the named file, or stdin until EOF
	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		defer f.Close()
		in = f
	} else {
		fmt.Fprintln(stdout, cfg.Prompt)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	rep, err := batch.NewRunner(variant, logger).Run(context.Background(), strings.Split(string(data), "\n"))
	if err != nil {
		return 0
	}
	if err := interpreter.Display(stdout, cfg.Banner, rep.Outcomes()); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func loadConfig(path, variant, level string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if variant != "" {
		cfg.Variant = variant
	}
	if level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}
