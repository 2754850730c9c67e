package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeorder/internal/question"
)

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	Close   func()
}

// StartBankServer serves doc as /questions.json until the test ends.
func StartBankServer(t *testing.T, doc question.Document) *ServerInstance {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/questions.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return &ServerInstance{
		BaseURL: server.URL,
		Close:   server.Close,
	}
}
