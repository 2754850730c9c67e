package question

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const fetchPayload = `{"go": {"easy": [{"question": "q", "answers": ["a", "b"], "answer_divs": 2, "correct_order": [1, 0]}]}}`

// TestFetchLoadsRemoteBank verifies banks are fetched over HTTP.
func TestFetchLoadsRemoteBank(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(fetchPayload))
	}))
	defer server.Close()

	bank, err := Load(context.Background(), server.URL+"/questions.json", FetchOptions{Timeout: time.Second})
	if err != nil {
		t.Fatalf("fetch bank: %v", err)
	}
	if bank.Count(NewSelection("go", "easy")) != 1 {
		t.Fatalf("expected 1 question")
	}
}

// TestFetchStatusError verifies non-2xx responses are asset load failures.
func TestFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL+"/questions.json", FetchOptions{})
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("expected asset load error, got %v", err)
	}
}

// TestFetchMalformedBody verifies malformed payloads are asset load failures.
func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"go": `))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, FetchOptions{})
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("expected asset load error, got %v", err)
	}
}

// TestFormatForResponse verifies media types win over URL extensions.
func TestFormatForResponse(t *testing.T) {
	if got := formatForResponse("http://x/bank.json", "application/yaml"); got != FormatYAML {
		t.Fatalf("expected yaml, got %s", got)
	}
	if got := formatForResponse("http://x/bank.yml?v=2", "text/plain"); got != FormatYAML {
		t.Fatalf("expected yaml from extension, got %s", got)
	}
	if got := formatForResponse("http://x/bank", ""); got != FormatJSON {
		t.Fatalf("expected json default, got %s", got)
	}
}
