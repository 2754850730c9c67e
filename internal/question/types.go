package question

import (
	"slices"
	"sort"
	"strings"
)

// Document is the question bank layout: language -> difficulty -> questions.
type Document map[string]map[string][]Question

// Question is a single ordering exercise.
type Question struct {
	Prompt       string   `json:"question" yaml:"question"`
	Fragments    []string `json:"answers" yaml:"answers"`
	SlotCount    int      `json:"answer_divs" yaml:"answer_divs"`
	CorrectOrder []int    `json:"correct_order" yaml:"correct_order"`
}

// IsCorrect reports whether a slot order matches the correct order index by index.
func (q Question) IsCorrect(order []int) bool {
	return slices.Equal(order, q.CorrectOrder)
}

// Decoys returns the number of fragments that are never placed.
func (q Question) Decoys() int {
	return len(q.Fragments) - q.SlotCount
}

// Selection identifies a language and difficulty pair.
type Selection struct {
	Language   string
	Difficulty string
}

// NewSelection builds a normalized selection key.
func NewSelection(language, difficulty string) Selection {
	return Selection{
		Language:   normalizeKey(language),
		Difficulty: normalizeKey(difficulty),
	}
}

// String renders the selection as "<language> <difficulty>".
func (s Selection) String() string {
	return s.Language + " " + s.Difficulty
}

// Bank holds the loaded questions keyed by selection.
type Bank struct {
	entries map[Selection][]Question
}

// NewBank builds a bank from an already normalized document.
func NewBank(doc Document) *Bank {
	bank := &Bank{entries: map[Selection][]Question{}}
	for language, difficulties := range doc {
		for difficulty, questions := range difficulties {
			key := NewSelection(language, difficulty)
			bank.entries[key] = append(bank.entries[key], questions...)
		}
	}
	return bank
}

// Questions returns the questions for a selection.
func (b *Bank) Questions(selection Selection) []Question {
	if b == nil {
		return nil
	}
	questions := b.entries[NewSelection(selection.Language, selection.Difficulty)]
	return slices.Clone(questions)
}

// Count returns the number of questions for a selection.
func (b *Bank) Count(selection Selection) int {
	if b == nil {
		return 0
	}
	return len(b.entries[NewSelection(selection.Language, selection.Difficulty)])
}

// Document rebuilds the normalized bank layout.
func (b *Bank) Document() Document {
	doc := Document{}
	if b == nil {
		return doc
	}
	for key, questions := range b.entries {
		if doc[key.Language] == nil {
			doc[key.Language] = map[string][]Question{}
		}
		doc[key.Language][key.Difficulty] = slices.Clone(questions)
	}
	return doc
}

// Selections lists every selection in the bank, sorted by language then difficulty.
func (b *Bank) Selections() []Selection {
	if b == nil {
		return nil
	}
	selections := make([]Selection, 0, len(b.entries))
	for key := range b.entries {
		selections = append(selections, key)
	}
	sort.Slice(selections, func(i, j int) bool {
		if selections[i].Language != selections[j].Language {
			return selections[i].Language < selections[j].Language
		}
		return selections[i].Difficulty < selections[j].Difficulty
	})
	return selections
}

// Languages lists the distinct languages in the bank.
func (b *Bank) Languages() []string {
	var languages []string
	for _, selection := range b.Selections() {
		if len(languages) == 0 || languages[len(languages)-1] != selection.Language {
			languages = append(languages, selection.Language)
		}
	}
	return languages
}

// Difficulties lists the difficulties available for a language.
func (b *Bank) Difficulties(language string) []string {
	language = normalizeKey(language)
	var difficulties []string
	for _, selection := range b.Selections() {
		if selection.Language == language {
			difficulties = append(difficulties, selection.Difficulty)
		}
	}
	return difficulties
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
