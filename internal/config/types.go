package config

import "time"

// Config is the on-disk configuration for codeorder.
type Config struct {
	Version int        `yaml:"version"`
	Bank    BankConfig `yaml:"bank"`
	Quiz    QuizConfig `yaml:"quiz"`
	UI      UIConfig   `yaml:"ui"`
}

// BankConfig locates the question bank.
type BankConfig struct {
	Source         string `yaml:"source"`
	FetchTimeoutMs int    `yaml:"fetch_timeout_ms"`
}

// QuizConfig tunes session size, default selection and pacing.
type QuizConfig struct {
	SessionSize       int    `yaml:"session_size"`
	DefaultLanguage   string `yaml:"default_language"`
	DefaultDifficulty string `yaml:"default_difficulty"`
	EvaluationDelayMs int    `yaml:"evaluation_delay_ms"`
	AdvanceDelayMs    int    `yaml:"advance_delay_ms"`
	RetryDelayMs      int    `yaml:"retry_delay_ms"`
	TickIntervalMs    int    `yaml:"tick_interval_ms"`
}

// UIConfig selects the presentation.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	Input   string `yaml:"input"`
	NoColor bool   `yaml:"no_color"`
}

// FetchTimeout returns the remote bank timeout.
func (c BankConfig) FetchTimeout() time.Duration {
	return millis(c.FetchTimeoutMs)
}

func (c QuizConfig) EvaluationDelay() time.Duration { return millis(c.EvaluationDelayMs) }
func (c QuizConfig) AdvanceDelay() time.Duration    { return millis(c.AdvanceDelayMs) }
func (c QuizConfig) RetryDelay() time.Duration      { return millis(c.RetryDelayMs) }
func (c QuizConfig) TickInterval() time.Duration    { return millis(c.TickIntervalMs) }

func millis(value int) time.Duration {
	return time.Duration(value) * time.Millisecond
}
