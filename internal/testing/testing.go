// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/scplay/internal/models"
)

// MockService is a test double for [services.Service] that records every call.
type MockService struct {
	mu sync.Mutex

	Results    []models.SearchResult
	SearchErr  error
	Tracks     []models.Track
	TracksErr  error
	ClientID   string
	Queries    []string
	UserIDs    []string
	StreamURLs []string
}

func (m *MockService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)
	return m.Results, m.SearchErr
}

func (m *MockService) UserTracks(ctx context.Context, userID string) ([]models.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UserIDs = append(m.UserIDs, userID)
	return m.Tracks, m.TracksErr
}

func (m *MockService) StreamURL(trackURL string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StreamURLs = append(m.StreamURLs, trackURL)
	id := m.ClientID
	if id == "" {
		id = "test"
	}
	return trackURL + "?client_id=" + id
}

func (m *MockService) Name() string { return "mock" }

// SearchCalls returns how many searches were issued.
func (m *MockService) SearchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// UserTrackCalls returns how many user-track listings were issued.
func (m *MockService) UserTrackCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.UserIDs)
}

// MockPlayer records the sources it was asked to play.
type MockPlayer struct {
	mu      sync.Mutex
	Played  []string
	Stopped int
	Err     error
}

func (p *MockPlayer) Play(ctx context.Context, src string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Played = append(p.Played, src)
	return p.Err
}

func (p *MockPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Stopped++
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
