package question

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeDocument normalizes selection keys, trims prompts and validates every question.
//
// Fragment text is kept verbatim since leading whitespace is part of the code.
func NormalizeDocument(doc Document) (Document, error) {
	collector := &issueCollector{}
	if len(doc) == 0 {
		collector.add("bank", "must include at least one language")
	}

	normalized := Document{}
	for _, language := range slices.Sorted(maps.Keys(doc)) {
		difficulties := doc[language]
		languageKey := normalizeKey(language)
		if languageKey == "" {
			collector.add(fmt.Sprintf("%q", language), "language key is required")
			continue
		}
		if len(difficulties) == 0 {
			collector.add(languageKey, "must include at least one difficulty")
		}
		for _, difficulty := range slices.Sorted(maps.Keys(difficulties)) {
			questions := difficulties[difficulty]
			difficultyKey := normalizeKey(difficulty)
			prefix := languageKey + "." + difficultyKey
			if difficultyKey == "" {
				collector.add(fmt.Sprintf("%s.%q", languageKey, difficulty), "difficulty key is required")
				continue
			}
			if normalized[languageKey] == nil {
				normalized[languageKey] = map[string][]Question{}
			}
			if _, exists := normalized[languageKey][difficultyKey]; exists {
				collector.add(prefix, "duplicate selection after normalization")
				continue
			}
			if len(questions) == 0 {
				collector.add(prefix, "must include at least one question")
			}
			cleaned := make([]Question, 0, len(questions))
			for i, q := range questions {
				cleaned = append(cleaned, normalizeQuestion(collector, fmt.Sprintf("%s[%d]", prefix, i), q))
			}
			normalized[languageKey][difficultyKey] = cleaned
		}
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return normalized, nil
}

func normalizeQuestion(collector *issueCollector, prefix string, q Question) Question {
	q.Prompt = strings.TrimSpace(q.Prompt)
	if q.Prompt == "" {
		collector.add(prefix+".question", "is required")
	}

	if len(q.Fragments) == 0 {
		collector.add(prefix+".answers", "must include at least one entry")
	}
	for i, fragment := range q.Fragments {
		if strings.TrimSpace(fragment) == "" {
			collector.add(fmt.Sprintf("%s.answers[%d]", prefix, i), "is required")
		}
	}

	switch {
	case q.SlotCount <= 0:
		collector.add(prefix+".answer_divs", "must be > 0")
	case q.SlotCount > len(q.Fragments):
		collector.add(prefix+".answer_divs", fmt.Sprintf("must be <= number of answers (%d)", len(q.Fragments)))
	}

	if len(q.CorrectOrder) != q.SlotCount {
		collector.add(prefix+".correct_order", fmt.Sprintf("expected %d entries, got %d", q.SlotCount, len(q.CorrectOrder)))
	}
	seen := map[int]struct{}{}
	for i, index := range q.CorrectOrder {
		field := fmt.Sprintf("%s.correct_order[%d]", prefix, i)
		if index < 0 || index >= len(q.Fragments) {
			collector.add(field, fmt.Sprintf("unknown answer index %d", index))
			continue
		}
		if _, exists := seen[index]; exists {
			collector.add(field, fmt.Sprintf("duplicate answer index %d", index))
			continue
		}
		seen[index] = struct{}{}
	}
	return q
}
