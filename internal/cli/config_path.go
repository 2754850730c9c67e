package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"codeorder/internal/config"
	"codeorder/internal/question"
)

// errNoBank means neither --bank nor a config file named a bank.
var errNoBank = errors.New(`no question bank: pass --bank or run "codeorder init"`)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads an explicit or discovered config. Without either it
// returns the defaults and an empty path.
func loadConfig(configPath string) (config.Config, string, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		if strings.TrimSpace(configPath) == "" && errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		return config.Config{}, "", err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, resolved, nil
}

// bankSource picks the --bank flag over the configured source.
func bankSource(cfg config.Config, configPath, bankFlag string) (string, error) {
	if source := strings.TrimSpace(bankFlag); source != "" {
		return source, nil
	}
	if configPath == "" || cfg.Bank.Source == "" {
		return "", errNoBank
	}
	return config.ResolveBankSource(cfg.Bank.Source, config.RootFromConfigPath(configPath)), nil
}

// loadBank is a test seam for loading question banks.
var loadBank = func(ctx context.Context, source string, cfg config.Config) (*question.Bank, error) {
	return question.Load(ctx, source, question.FetchOptions{Timeout: cfg.Bank.FetchTimeout()})
}
