package question

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// DefaultFetchTimeout bounds a remote bank fetch when no timeout is configured.
const DefaultFetchTimeout = 10 * time.Second

// maxBankBytes caps the size of a fetched bank.
const maxBankBytes = 8 << 20

// FetchOptions configures a remote bank fetch.
type FetchOptions struct {
	Client  *http.Client
	Timeout time.Duration
}

// Fetch downloads and parses a bank from an http(s) URL.
func Fetch(ctx context.Context, url string, opts FetchOptions) (*Bank, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &AssetLoadError{Source: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	resp, err := client.Do(req)
	if err != nil {
		return nil, &AssetLoadError{Source: url, Err: fmt.Errorf("fetch: %w", err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AssetLoadError{Source: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBankBytes+1))
	if err != nil {
		return nil, &AssetLoadError{Source: url, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(data) > maxBankBytes {
		return nil, &AssetLoadError{Source: url, Err: fmt.Errorf("response exceeds %d bytes", maxBankBytes)}
	}
	bank, err := Parse(data, formatForResponse(url, resp.Header.Get("Content-Type")))
	if err != nil {
		return nil, &AssetLoadError{Source: url, Err: err}
	}
	return bank, nil
}

// formatForResponse prefers the response media type and falls back to the URL extension.
func formatForResponse(url, contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		switch {
		case strings.Contains(mediaType, "yaml"):
			return FormatYAML
		case strings.Contains(mediaType, "json"):
			return FormatJSON
		}
	}
	return FormatForPath(url)
}
