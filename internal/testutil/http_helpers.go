package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"
)

// HTTPGet sends a GET request and returns the status code and body.
func HTTPGet(t testing.TB, url string) (int, []byte) {
	t.Helper()
	return doRequest(t, http.MethodGet, url)
}

// HTTPGetJSON sends a GET request, requires a 2xx status and decodes the body into out.
func HTTPGetJSON(t testing.TB, url string, out any) {
	t.Helper()
	status, body := doRequest(t, http.MethodGet, url)
	if status < 200 || status >= 300 {
		t.Fatalf("unexpected status %d for GET %s: %s", status, url, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode response from %s: %v", url, err)
	}
}

// doRequest executes an HTTP request and returns the status and body.
func doRequest(t testing.TB, method, url string) (int, []byte) {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}
