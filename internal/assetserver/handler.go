package assetserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"codeorder/internal/question"
)

// selectionCount is one row of /selections.json.
type selectionCount struct {
	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// NewHandler loads the bank once and builds the HTTP handler serving it.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.BankPath == "" {
		return nil, errors.New("assetserver: bank path is required")
	}
	bank, err := question.LoadFile(cfg.BankPath)
	if err != nil {
		return nil, err
	}
	return newBankHandler(bank)
}

func newBankHandler(bank *question.Bank) (http.Handler, error) {
	index, err := indexPage()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(bank.Document())
	if err != nil {
		return nil, fmt.Errorf("assetserver: encode bank: %w", err)
	}
	selections := make([]selectionCount, 0)
	for _, selection := range bank.Selections() {
		selections = append(selections, selectionCount{
			Language:   selection.Language,
			Difficulty: selection.Difficulty,
			Count:      bank.Count(selection),
		})
	}
	counts, err := json.Marshal(selections)
	if err != nil {
		return nil, fmt.Errorf("assetserver: encode selections: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))
	r.Use(middleware.GetHead)
	r.Get("/", serveBytes("text/html; charset=utf-8", index))
	r.Get("/questions.json", serveBytes("application/json", payload))
	r.Get("/selections.json", serveBytes("application/json", counts))
	return r, nil
}

// serveBytes serves a fixed payload. HEAD requests reach it through GetHead.
func serveBytes(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	}
}
