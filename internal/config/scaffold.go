package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeorder/internal/quiz"
)

// SampleBankFileName is the bank written next to the config when init is
// not given a source.
const SampleBankFileName = "questions.json"

const configTemplate = `version: 1
bank:
  source: %q
  fetch_timeout_ms: 10000

quiz:
  session_size: %d
  default_language: %q
  default_difficulty: %q
  evaluation_delay_ms: 600
  advance_delay_ms: 500
  retry_delay_ms: 700
  tick_interval_ms: 1000

ui:
  mode: auto
  input: auto
  no_color: false
`

const sampleBank = `{
  "go": {
    "easy": [
      {
        "question": "Print the numbers 0 to 2.",
        "answers": ["for i := 0; i < 3; i++ {", "\tfmt.Println(i)", "}"],
        "answer_divs": 3,
        "correct_order": [0, 1, 2]
      },
      {
        "question": "Return early on error.",
        "answers": ["if err != nil {", "\treturn err", "}", "panic(err)"],
        "answer_divs": 3,
        "correct_order": [0, 1, 2]
      },
      {
        "question": "Declare and print a greeting.",
        "answers": ["fmt.Println(msg)", "msg := \"hello\""],
        "answer_divs": 2,
        "correct_order": [1, 0]
      }
    ]
  }
}
`

// sampleBankSize is the number of questions in sampleBank.
const sampleBankSize = 3

// ScaffoldOptions controls the generated config.
type ScaffoldOptions struct {
	// BankSource is written as bank.source. When empty a sample bank is
	// created next to the config and referenced instead.
	BankSource  string
	SessionSize int
	Language    string
	Difficulty  string
}

// Scaffold writes a new config file, and a sample bank when no source is given.
func Scaffold(configPath string, opts ScaffoldOptions) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if err := ensureAbsent(configPath, "config"); err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	source := strings.TrimSpace(opts.BankSource)
	sessionSize := opts.SessionSize
	language, difficulty := opts.Language, opts.Difficulty
	if source == "" {
		bankPath := filepath.Join(configDir, SampleBankFileName)
		if err := ensureAbsent(bankPath, "bank"); err != nil {
			return err
		}
		if err := os.WriteFile(bankPath, []byte(sampleBank), 0o644); err != nil {
			return fmt.Errorf("write bank file: %w", err)
		}
		rel, err := filepath.Rel(RootFromConfigPath(configPath), bankPath)
		if err != nil {
			rel = bankPath
		}
		source = filepath.ToSlash(rel)
		if sessionSize <= 0 || sessionSize > sampleBankSize {
			sessionSize = sampleBankSize
		}
		if language == "" && difficulty == "" {
			language, difficulty = "go", "easy"
		}
	}
	if sessionSize <= 0 {
		sessionSize = quiz.DefaultSessionSize
	}

	content := fmt.Sprintf(configTemplate, source, sessionSize, language, difficulty)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func ensureAbsent(path, label string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s path %q is a directory", label, path)
		}
		return fmt.Errorf("%s file already exists at %q", label, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s file: %w", label, err)
	}
	return nil
}
