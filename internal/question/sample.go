package question

import "fmt"

// Rand is the randomness source used for sampling.
type Rand interface {
	IntN(n int) int
}

// Shuffle returns a Fisher-Yates shuffled copy of questions.
func Shuffle(questions []Question, rng Rand) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Sample picks n distinct questions by shuffling then taking the first n.
func Sample(questions []Question, n int, rng Rand) ([]Question, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample size must be >= 0, got %d", n)
	}
	if len(questions) < n {
		return nil, fmt.Errorf("need %d questions, have %d", n, len(questions))
	}
	return Shuffle(questions, rng)[:n], nil
}
