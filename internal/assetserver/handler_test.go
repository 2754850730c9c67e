package assetserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeorder/internal/question"
	"codeorder/internal/testutil"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	path := testutil.WriteBankFile(t, t.TempDir(), testutil.Document(map[question.Selection]int{
		question.NewSelection("go", "easy"):     2,
		question.NewSelection("python", "hard"): 1,
	}))
	handler, err := NewHandler(Config{BankPath: path})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return handler
}

// TestNewHandlerServesIndex ensures the root path returns the landing page.
func TestNewHandlerServesIndex(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "/questions.json") {
		t.Fatalf("expected link to bank, got %s", resp.Body.String())
	}
}

// TestNewHandlerUnknownPath ensures only known routes are served.
func TestNewHandlerUnknownPath(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/data/bank.db", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

// TestNewHandlerRejectsPost ensures the bank endpoint is read-only.
func TestNewHandlerRejectsPost(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "http://example.com/questions.json", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", resp.Code)
	}
}

// TestServedBankRoundTrips fetches the served bank with the remote loader.
func TestServedBankRoundTrips(t *testing.T) {
	server := httptest.NewServer(newTestHandler(t))
	t.Cleanup(server.Close)

	bank, err := question.Fetch(testutil.Context(t, 0), server.URL+"/questions.json", question.FetchOptions{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := bank.Count(question.NewSelection("go", "easy")); got != 2 {
		t.Fatalf("expected 2 go easy questions, got %d", got)
	}

	var counts []selectionCount
	testutil.HTTPGetJSON(t, server.URL+"/selections.json", &counts)
	if len(counts) != 2 || counts[0].Language != "go" || counts[1].Count != 1 {
		t.Fatalf("unexpected selections %+v", counts)
	}
}

// TestNewHandlerRejectsInvalidBank ensures a broken bank fails at startup.
func TestNewHandlerRejectsInvalidBank(t *testing.T) {
	path := testutil.WriteBankFile(t, t.TempDir(), question.Document{
		"go": {"easy": {{Prompt: "q", Fragments: []string{"a"}, SlotCount: 2, CorrectOrder: []int{0, 0}}}},
	})
	if _, err := NewHandler(Config{BankPath: path}); err == nil {
		t.Fatalf("expected invalid bank error")
	}
	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected missing path error")
	}
}

// TestNewHandlerHead ensures HEAD requests get headers without a body.
func TestNewHandlerHead(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodHead, "http://example.com/questions.json", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", resp.Body.String())
	}
}

// TestNewHandlerAllowsCrossOrigin ensures browser front ends can fetch the bank.
func TestNewHandlerAllowsCrossOrigin(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/questions.json", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" && got != "http://localhost:3000" {
		t.Fatalf("expected origin to be allowed, got %q", got)
	}
}
