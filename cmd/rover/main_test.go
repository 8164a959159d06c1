package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, input string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rover.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunPrintsPromptBannerAndResults(t *testing.T) {
	cfg := writeConfig(t, "prompt: ready\nbanner: results\n")
	code, out, _ := runCLI(t, []string{"-config", cfg, "-variant", "base"},
		"5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM\n")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "ready\n\nresults\n1 3 N\n5 1 E\n"
	if out != want {
		t.Fatalf("want %q got %q", want, out)
	}
}

func TestRunMalformedBatchExitsZero(t *testing.T) {
	code, out, errOut := runCLI(t, []string{"-variant", "base"}, "5 5\n1 2 N\nM\n3 3 E\n")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.Contains(out, "New Robot Coordinates") {
		t.Fatalf("unexpected banner in %q", out)
	}
	if !strings.Contains(errOut, "malformed batch") {
		t.Fatalf("batch error not logged: %q", errOut)
	}
}

func TestRunVariantFlagOverridesConfig(t *testing.T) {
	cfg := writeConfig(t, "variant: base\n")
	code, out, _ := runCLI(t, []string{"-config", cfg, "-variant", "power"}, "5 5\n1 2 N 3\nMMMM\n")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasSuffix(out, "\n1 5 N 0\n") {
		t.Fatalf("unexpected output %q", out)
	}

	// without the flag the config's base variant applies
	_, out, _ = runCLI(t, []string{"-config", cfg}, "5 5\n1 2 N\nLMLMLMLMM\n")
	if !strings.HasSuffix(out, "\n1 3 N\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunLongInstructionLine(t *testing.T) {
	input := "5 5\n0 0 E\n" + strings.Repeat("LR", 40000) + "M\n"
	code, out, _ := runCLI(t, []string{"-variant", "base"}, input)
	if code != 0 || !strings.HasSuffix(out, "\n1 0 E\n") {
		t.Fatalf("exit %d, output %q", code, out)
	}
}

func TestRunReadsInputFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(p, []byte("5 5\r\n1 2 N 3\r\nMMMM\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, _ := runCLI(t, []string{p}, "")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.Contains(out, "ENTER INPUT") || !strings.HasSuffix(out, "\n1 5 N 0\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunBadSetup(t *testing.T) {
	if code, _, _ := runCLI(t, []string{"-variant", "turbo"}, ""); code != 1 {
		t.Fatalf("unknown variant: exit %d", code)
	}
	if code, _, _ := runCLI(t, []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, ""); code != 1 {
		t.Fatalf("missing config: exit %d", code)
	}
	if code, _, _ := runCLI(t, []string{"-nope"}, ""); code != 2 {
		t.Fatalf("bad flag: exit %d", code)
	}
}
