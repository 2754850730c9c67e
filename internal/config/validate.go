package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"codeorder/internal/placement"
	"codeorder/internal/question"
)

var uiModes = []string{"auto", "live", "plain"}

// Validate checks a config for correctness and a readable local bank.
func Validate(cfg *Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateBank(cfg.Bank, baseDir, collector.add)
	validateQuiz(cfg.Quiz, collector.add)
	validateUI(cfg.UI, collector.add)

	return collector.result()
}

// ResolveBankSource returns source unchanged for URLs and joins relative
// file paths onto baseDir.
func ResolveBankSource(source, baseDir string) string {
	source = strings.TrimSpace(source)
	if source == "" || question.IsRemote(source) || filepath.IsAbs(source) {
		return source
	}
	if baseDir == "" {
		return source
	}
	return filepath.Join(baseDir, source)
}

func validateBank(bank BankConfig, baseDir string, add issueAdder) {
	if bank.Source == "" {
		add("bank.source", "is required")
	} else if !question.IsRemote(bank.Source) {
		path := ResolveBankSource(bank.Source, baseDir)
		info, err := os.Stat(path)
		switch {
		case err != nil && os.IsNotExist(err):
			add("bank.source", fmt.Sprintf("file %q does not exist", bank.Source))
		case err != nil:
			add("bank.source", fmt.Sprintf("stat %q: %v", bank.Source, err))
		case info.IsDir():
			add("bank.source", fmt.Sprintf("%q is a directory", bank.Source))
		}
	}
	if bank.FetchTimeoutMs < 0 {
		add("bank.fetch_timeout_ms", "must be positive")
	}
}

func validateQuiz(q QuizConfig, add issueAdder) {
	if q.SessionSize < 0 {
		add("quiz.session_size", "must be positive")
	}
	if (q.DefaultLanguage == "") != (q.DefaultDifficulty == "") {
		add("quiz.default_language", "must be set together with quiz.default_difficulty")
	}
	durations := []struct {
		field string
		value int
	}{
		{"quiz.evaluation_delay_ms", q.EvaluationDelayMs},
		{"quiz.advance_delay_ms", q.AdvanceDelayMs},
		{"quiz.retry_delay_ms", q.RetryDelayMs},
		{"quiz.tick_interval_ms", q.TickIntervalMs},
	}
	for _, d := range durations {
		if d.value < 0 {
			add(d.field, "must be positive")
		}
	}
}

func validateUI(ui UIConfig, add issueAdder) {
	if !slices.Contains(uiModes, ui.Mode) {
		add("ui.mode", fmt.Sprintf("must be one of %s", strings.Join(uiModes, ", ")))
	}
	if ui.Input != "auto" {
		if _, err := placement.ParseMode(ui.Input); err != nil {
			add("ui.input", "must be one of auto, tap, drag")
		}
	}
}
