package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"codeorder/internal/question"
)

// OrderingQuestion returns the three-fragment question with correct order [1, 0, 2].
func OrderingQuestion(prompt string) question.Question {
	return question.Question{
		Prompt:       prompt,
		Fragments:    []string{"a", "b", "c"},
		SlotCount:    3,
		CorrectOrder: []int{1, 0, 2},
	}
}

// Document builds a bank document with n numbered ordering questions per selection.
func Document(counts map[question.Selection]int) question.Document {
	doc := question.Document{}
	for selection, n := range counts {
		if doc[selection.Language] == nil {
			doc[selection.Language] = map[string][]question.Question{}
		}
		questions := make([]question.Question, 0, n)
		for i := 0; i < n; i++ {
			questions = append(questions, OrderingQuestion(fmt.Sprintf("%s %s #%d", selection.Language, selection.Difficulty, i+1)))
		}
		doc[selection.Language][selection.Difficulty] = questions
	}
	return doc
}

// Bank builds a question bank with n questions per selection.
func Bank(counts map[question.Selection]int) *question.Bank {
	return question.NewBank(Document(counts))
}

// WriteBankFile writes doc as JSON under dir and returns the path.
func WriteBankFile(t testing.TB, dir string, doc question.Document) string {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	path := filepath.Join(dir, "questions.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}
