// Package fetch provides the plain HTTP GET primitive used to retrieve
// the course index and syllabus documents.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types/interfaces"
)

// httpFetcher implements the DocumentFetcher interface over net/http
type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a document fetcher. Pass nil to use a default
// client with a 30 second timeout.
func NewHTTPFetcher(client *http.Client) interfaces.DocumentFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpFetcher{client: client}
}

// Fetch performs a GET against url and returns the response body.
// Transport failures and non-2xx statuses are reported as UpstreamFetchError.
func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.UpstreamFetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &types.UpstreamFetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.UpstreamFetchError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.UpstreamFetchError{URL: url, Err: err}
	}
	return body, nil
}
