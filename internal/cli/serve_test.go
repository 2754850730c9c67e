package cli

import (
	"bytes"
	"context"
	"testing"

	"codeorder/internal/assetserver"
	"codeorder/internal/question"
	"codeorder/internal/testutil"
)

// TestServeCommandRequiresBankPath verifies serve fails when no bank argument is provided.
func TestServeCommandRequiresBankPath(t *testing.T) {
	cmd := findCommand("serve")
	if cmd == nil {
		t.Fatalf("serve command not found")
	}
	var stdout, stderr bytes.Buffer
	exitCode := cmd.Run([]string{}, &stdout, &stderr)
	if exitCode != ExitUsage {
		t.Fatalf("expected usage exit, got %d", exitCode)
	}
}

// TestServeCommandRejectsURL verifies serve only hosts local files.
func TestServeCommandRejectsURL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"serve", "https://example.com/questions.json"}, &stdout, &stderr)
	if exitCode != ExitUsage {
		t.Fatalf("expected usage exit, got %d", exitCode)
	}
}

// TestServeCommandPassesConfig ensures serve forwards parsed config to the server layer.
func TestServeCommandPassesConfig(t *testing.T) {
	bankPath := testutil.WriteBankFile(t, t.TempDir(), testutil.Document(map[question.Selection]int{
		question.NewSelection("go", "easy"): 1,
	}))

	var gotConfig assetserver.Config
	origServe := serveBank
	serveBank = func(_ context.Context, cfg assetserver.Config) error {
		gotConfig = cfg
		return nil
	}
	t.Cleanup(func() { serveBank = origServe })

	cmd := findCommand("serve")
	if cmd == nil {
		t.Fatalf("serve command not found")
	}
	var stdout, stderr bytes.Buffer
	exitCode := cmd.Run([]string{"--addr", "127.0.0.1:5050", bankPath}, &stdout, &stderr)
	if exitCode != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", exitCode, stderr.String())
	}
	if gotConfig.Addr != "127.0.0.1:5050" {
		t.Fatalf("unexpected addr: %s", gotConfig.Addr)
	}
	if gotConfig.BankPath != bankPath {
		t.Fatalf("unexpected bank path: %s", gotConfig.BankPath)
	}
}
