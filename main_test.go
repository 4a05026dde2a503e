package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "--out", dir, "--points", "20", "--no-swatches",
		"cli", "#1E4363", "252,242,203", "0.5,0.5,0.5")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cli.gpl"))
	if err != nil {
		t.Fatalf("expected cli.gpl: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 4+9*3 {
		t.Errorf("got %d lines, want %d", len(lines), 4+9*3)
	}
	if lines[6] != "127\t127\t127\tcli (colour 3)" {
		t.Errorf("line 6 = %q", lines[6])
	}
	if !strings.Contains(out, "(#1E4363)") {
		t.Errorf("output should list the seeds, got %q", out)
	}
}

func TestGenerateCommandRejectsBadColor(t *testing.T) {
	_, err := run(t, "generate", "--out", t.TempDir(), "bad", "#12345", "red")
	if err == nil {
		t.Fatal("expected an error for invalid colors")
	}
	if !strings.Contains(err.Error(), "argument 1") || !strings.Contains(err.Error(), "argument 2") {
		t.Errorf("error should name both arguments, got %v", err)
	}
}

func TestPresetCommand(t *testing.T) {
	out, err := run(t, "preset", "viridis", "3")
	if err != nil {
		t.Fatalf("preset failed: %v", err)
	}
	if fields := strings.Fields(out); len(fields) != 3 {
		t.Errorf("expected 3 hex codes, got %q", out)
	}

	if _, err := run(t, "preset", "viridis", "zero"); err == nil {
		t.Error("expected error for a non-numeric count")
	}
}

func TestCountArg(t *testing.T) {
	if n, err := countArg([]string{"x"}, 5); err != nil || n != 5 {
		t.Errorf("countArg default = %d, %v", n, err)
	}
	if n, err := countArg([]string{"x", "8"}, 5); err != nil || n != 8 {
		t.Errorf("countArg(8) = %d, %v", n, err)
	}
	if _, err := countArg([]string{"x", "-1"}, 5); err == nil {
		t.Error("expected error for negative count")
	}
}
