package qrcode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"time"
)

// Default limits for remote logo fetching.
const (
	DefaultFetchTimeout = 5 * time.Second
	DefaultMaxLogoBytes = 10 << 20 // 10MB
)

// Fetcher retrieves remote logo bytes.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, rawURL string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return f(ctx, rawURL)
}

// HTTPFetcher performs a single GET per logo. There are no retries.
type HTTPFetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

// Compile-time check that HTTPFetcher implements Fetcher.
var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcherOption configures an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithFetchTimeout bounds each fetch. Non-positive values are ignored.
func WithFetchTimeout(d time.Duration) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxLogoBytes limits the accepted body size. Non-positive values are ignored.
func WithMaxLogoBytes(n int64) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// NewHTTPFetcher creates a fetcher with a 5s timeout and a 10MB body limit.
func NewHTTPFetcher(opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:   http.DefaultClient,
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxLogoBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads rawURL. Non-2xx responses and empty bodies are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", f.maxBytes)
	}
	if len(body) == 0 {
		return nil, errors.New("empty response body")
	}

	return body, nil
}

// isURL reports whether source is an absolute URL with scheme and host.
// file URLs and anything else are treated as local paths.
func isURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Scheme != "file" && u.Host != ""
}

// localPath strips the file scheme from file:///abs/path and
// file://localhost/abs/path. Other sources are returned unchanged.
func localPath(source string) string {
	u, err := url.Parse(source)
	if err != nil || u.Scheme != "file" {
		return source
	}
	if u.Host != "" && u.Host != "localhost" {
		return source
	}
	return filepath.FromSlash(u.Path)
}
