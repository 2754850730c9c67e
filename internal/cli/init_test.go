package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeorder/internal/config"
)

func setInitInput(t *testing.T, input string) {
	t.Helper()
	orig := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = orig })
}

func TestInitCommandCreatesSampleProject(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".codeorder", "config.yml")
	setInitInput(t, "\n\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected output to include writes, got %q", out.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".codeorder", config.SampleBankFileName)); statErr != nil {
		t.Fatalf("expected sample bank to exist: %v", statErr)
	}

	out.Reset()
	err.Reset()
	if code := Run([]string{"validate", "--config", configPath}, &out, &err); code != ExitOK {
		t.Fatalf("expected scaffolded project to validate, got %d: %s", code, err.String())
	}
}

func TestInitCommandPromptsForBank(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".codeorder", "config.yml")
	setInitInput(t, "y\nhttps://example.com/q.json\n12\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		t.Fatalf("load config: %v", loadErr)
	}
	if cfg.Bank.Source != "https://example.com/q.json" || cfg.Quiz.SessionSize != 12 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestInitCommandUsesProjectRoot(t *testing.T) {
	root := t.TempDir()
	orig := discoverProjectRoot
	discoverProjectRoot = func(string) (string, error) { return root, nil }
	t.Cleanup(func() { discoverProjectRoot = orig })
	setInitInput(t, "")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--bank", "https://example.com/q.json"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if _, statErr := os.Stat(config.ConfigPath(root)); statErr != nil {
		t.Fatalf("expected config at project root: %v", statErr)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}

func TestInitCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	setInitInput(t, "n\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", filepath.Join(dir, "config.yml")}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Init cancelled.") {
		t.Fatalf("expected cancel message, got %q", err.String())
	}
}
