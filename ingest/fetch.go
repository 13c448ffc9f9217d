package ingest

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchResult carries the outcome of a successful fetch. FinalURL is the URL
// after redirects and is what adapter selection runs against.
type FetchResult struct {
	FinalURL string
	HTML     string
}

// Fetcher acquires HTML for a URL. Implementations must enforce their own
// per-call timeout; the ingester blocks on each call.
type Fetcher interface {
	Fetch(url string) (*FetchResult, error)
}

// HTTPFetcher fetches pages over HTTP with a fixed timeout and User-Agent.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher returns a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the page, following redirects. Non-200 responses are
// reported as errors carrying the status code.
func (f *HTTPFetcher) Fetch(url string) (*FetchResult, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &FetchResult{
		FinalURL: resp.Request.URL.String(),
		HTML:     string(body),
	}, nil
}
