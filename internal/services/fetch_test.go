package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/shared"
	tu "github.com/desertthunder/scplay/internal/testing"
)

func quietLogger() *log.Logger {
	return shared.NewLogger(io.Discard)
}

func TestFetcher(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Defaults", func(t *testing.T) {
			f := NewFetcher(FetcherOpts{})
			if f.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
			if f.logger == nil {
				t.Error("expected default logger")
			}
			if f.limiter != nil {
				t.Error("expected no limiter when pacing is disabled")
			}
		})

		t.Run("With Pacing", func(t *testing.T) {
			f := NewFetcher(FetcherOpts{RequestsPerSecond: 5})
			if f.limiter == nil {
				t.Error("expected limiter to be configured")
			}
		})
	})

	t.Run("FetchText", func(t *testing.T) {
		t.Run("Successful Request", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				w.Write([]byte("plain text response"))
			}))
			defer server.Close()

			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			body, err := f.FetchText(context.Background(), server.URL+"/test")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if body != "plain text response" {
				t.Errorf("expected body 'plain text response', got %s", body)
			}
		})

		t.Run("Status 3xx Below 400 Succeeds", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotModified)
			}))
			defer server.Close()

			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			if _, err := f.FetchText(context.Background(), server.URL); err != nil {
				t.Errorf("expected no error for status < 400, got %v", err)
			}
		})

		t.Run("Status 400 And Above Is A RequestError", func(t *testing.T) {
			for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(code)
				}))

				f := NewFetcher(FetcherOpts{Logger: quietLogger()})
				_, err := f.FetchText(context.Background(), server.URL)
				server.Close()

				var reqErr *RequestError
				if !errors.As(err, &reqErr) {
					t.Fatalf("status %d: expected RequestError, got %v", code, err)
				}
				if reqErr.StatusCode != code {
					t.Errorf("expected status %d, got %d", code, reqErr.StatusCode)
				}
				if !strings.Contains(err.Error(), http.StatusText(code)) {
					t.Errorf("expected status text in %q", err.Error())
				}
				if !errors.Is(err, shared.ErrRequestFailed) {
					t.Error("expected RequestError to unwrap to ErrRequestFailed")
				}
			}
		})

		t.Run("Transport Failure Is A ConnectionError", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("no route to host")),
			}

			f := NewFetcher(FetcherOpts{HTTPClient: client, Logger: quietLogger()})
			_, err := f.FetchText(context.Background(), "http://example.com/test")

			var connErr *ConnectionError
			if !errors.As(err, &connErr) {
				t.Fatalf("expected ConnectionError, got %v", err)
			}
			if !errors.Is(err, shared.ErrConnectionFailed) {
				t.Error("expected ConnectionError to unwrap to ErrConnectionFailed")
			}
		})

		t.Run("Failed Response Body Read", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(&http.Response{
					StatusCode: http.StatusOK,
					Body:       &tu.FCloser{},
					Header:     http.Header{},
				}, nil),
			}

			f := NewFetcher(FetcherOpts{HTTPClient: client, Logger: quietLogger()})
			_, err := f.FetchText(context.Background(), "http://example.com/test")
			if err == nil || !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected 'failed to read response' error, got %v", err)
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			_, err := f.FetchText(context.Background(), "http://example.com/test\x00invalid")
			if err == nil || !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected 'failed to create request' error, got %v", err)
			}
		})

		t.Run("With Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			if _, err := f.FetchText(ctx, server.URL); err == nil {
				t.Error("expected error for canceled context")
			}
		})
	})

	t.Run("FetchJSON", func(t *testing.T) {
		t.Run("Decodes Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"success","count":2}`))
			}))
			defer server.Close()

			var out struct {
				Status string `json:"status"`
				Count  int    `json:"count"`
			}
			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			if err := f.FetchJSON(context.Background(), server.URL, &out); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if out.Status != "success" || out.Count != 2 {
				t.Errorf("unexpected decoded value %+v", out)
			}
		})

		t.Run("Invalid JSON", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			}))
			defer server.Close()

			var out map[string]any
			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			err := f.FetchJSON(context.Background(), server.URL, &out)
			if err == nil || !strings.Contains(err.Error(), "failed to decode response") {
				t.Errorf("expected decode error, got %v", err)
			}
		})

		t.Run("Sends Single Request", func(t *testing.T) {
			hits := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits++
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer server.Close()

			var out map[string]any
			f := NewFetcher(FetcherOpts{Logger: quietLogger()})
			if err := f.FetchJSON(context.Background(), server.URL, &out); err == nil {
				t.Fatal("expected error")
			}
			if hits != 1 {
				t.Errorf("expected exactly one request without retries, got %d", hits)
			}
		})
	})
}
