package config

import (
	"strings"

	"codeorder/internal/question"
	"codeorder/internal/quiz"
)

// Defaults applied by Normalize.
const (
	DefaultUIMode    = "auto"
	DefaultInputMode = "auto"
)

// Default returns a config with every default filled in and no bank source.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills defaults and canonicalizes enum-like fields.
func Normalize(cfg *Config) {
	cfg.Bank.Source = strings.TrimSpace(cfg.Bank.Source)
	if cfg.Bank.FetchTimeoutMs == 0 {
		cfg.Bank.FetchTimeoutMs = int(question.DefaultFetchTimeout.Milliseconds())
	}

	q := &cfg.Quiz
	if q.SessionSize == 0 {
		q.SessionSize = quiz.DefaultSessionSize
	}
	q.DefaultLanguage = strings.ToLower(strings.TrimSpace(q.DefaultLanguage))
	q.DefaultDifficulty = strings.ToLower(strings.TrimSpace(q.DefaultDifficulty))
	if q.EvaluationDelayMs == 0 {
		q.EvaluationDelayMs = int(quiz.DefaultEvaluationDelay.Milliseconds())
	}
	if q.AdvanceDelayMs == 0 {
		q.AdvanceDelayMs = int(quiz.DefaultAdvanceDelay.Milliseconds())
	}
	if q.RetryDelayMs == 0 {
		q.RetryDelayMs = int(quiz.DefaultRetryDelay.Milliseconds())
	}
	if q.TickIntervalMs == 0 {
		q.TickIntervalMs = int(quiz.DefaultTickInterval.Milliseconds())
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	cfg.UI.Input = strings.ToLower(strings.TrimSpace(cfg.UI.Input))
	if cfg.UI.Input == "" {
		cfg.UI.Input = DefaultInputMode
	}
}
