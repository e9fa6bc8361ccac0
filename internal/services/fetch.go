package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/shared"
	"golang.org/x/time/rate"
)

// RequestError reports a response with status >= 400.
type RequestError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Status)
}

func (e *RequestError) Unwrap() error { return shared.ErrRequestFailed }

// ConnectionError reports a transport failure (DNS, refused connection, unreachable network).
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() []error { return []error{shared.ErrConnectionFailed, e.Err} }

// Fetcher performs single GET requests with no retries.
type Fetcher struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// FetcherOpts configures a [Fetcher].
type FetcherOpts struct {
	HTTPClient        *http.Client
	Logger            *log.Logger
	RequestsPerSecond float64 // 0 disables pacing
}

// NewFetcher creates a Fetcher, defaulting to [http.DefaultClient] and a stderr logger.
func NewFetcher(opts FetcherOpts) *Fetcher {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	f := &Fetcher{httpClient: opts.HTTPClient, logger: opts.Logger}
	if opts.RequestsPerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return f
}

// FetchText performs a GET request and returns the response body.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchJSON performs a GET request and decodes the JSON body into v.
func (f *Fetcher) FetchJSON(ctx context.Context, url string, v any) error {
	body, err := f.get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, &ConnectionError{URL: url, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger := shared.WithLogger(f.logger, "request_id", shared.GenerateID())
	logger.Debug("fetching", "path", req.URL.Path)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Warn("connection failed", "err", err)
		return nil, &ConnectionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("request failed", "status", resp.StatusCode)
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	logger.Debug("fetched", "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}
