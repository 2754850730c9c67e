package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"codeorder/internal/config"
	"codeorder/internal/question"
	"codeorder/internal/testutil"
)

// writeProject creates a project dir with a bank and a config pointing at it.
func writeProject(t *testing.T, counts map[question.Selection]int, configBody string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteBankFile(t, dir, testutil.Document(counts))
	configPath := config.ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir, configPath
}

// fakeTerminals overrides TTY detection for stdin and stdout.
func fakeTerminals(t *testing.T, stdout, stdin bool) {
	t.Helper()
	origOut, origIn := isTerminal, isInputTerminal
	isTerminal = func(io.Writer) bool { return stdout }
	isInputTerminal = func(io.Reader) bool { return stdin }
	t.Cleanup(func() {
		isTerminal = origOut
		isInputTerminal = origIn
	})
}

const fastConfig = `version: 1
bank:
  source: questions.json
quiz:
  session_size: 1
  evaluation_delay_ms: 1
  advance_delay_ms: 1
  retry_delay_ms: 1
ui:
  mode: plain
`
