package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// RawRecord is the untyped representation of a videogame as decoded from
// the remote feed, before mapping.
type RawRecord map[string]any

// Feed is the remote source adapter contract: fetch every wire record or
// fail with an error from the shared taxonomy. No retry logic lives behind
// this interface; fallback behavior belongs to the Coordinator.
type Feed interface {
	FetchAll(ctx context.Context) ([]RawRecord, error)
}

// FeedClient fetches the catalog feed over HTTP.
type FeedClient struct {
	url    string
	client *http.Client
}

// NewFeedClient creates a feed client for the configured endpoint.
func NewFeedClient(cfg Config) *FeedClient {
	timeout := cfg.FeedTimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts so a stalled feed cannot hang a fetch
	// beyond the configured bound.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &FeedClient{
		url: cfg.FeedURL,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// FetchAll retrieves all wire records from the feed.
//
// Failures map onto three kinds: transport errors and non-2xx statuses are
// network errors, malformed bodies are decoding errors, and anything else
// is unknown.
func (f *FeedClient) FetchAll(ctx context.Context) ([]RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, UnknownError(fmt.Errorf("building feed request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, NetworkError(fmt.Errorf("fetching catalog feed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, NetworkError(fmt.Errorf("feed returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NetworkError(fmt.Errorf("reading feed body: %w", err))
	}

	var records []RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, DecodingError(fmt.Errorf("decoding catalog feed: %w", err))
	}

	return records, nil
}
