package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/shared"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*SoundCloudService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := quietLogger()
	svc := NewSoundCloudService(
		NewURLBuilder(server.URL, "tok"),
		NewFetcher(FetcherOpts{Logger: logger}),
		logger,
	)
	return svc, server
}

func TestSoundCloudService(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		svc := NewSoundCloudService(NewURLBuilder("", "x"), nil, quietLogger())
		if svc.Name() != "SoundCloud" {
			t.Errorf("unexpected name %s", svc.Name())
		}
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("Decodes Mixed Collection In Order", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("expected /search, got %s", r.URL.Path)
				}
				if r.URL.Query().Get("q") != "deep house" || r.URL.Query().Get("client_id") != "tok" {
					t.Errorf("unexpected query %s", r.URL.RawQuery)
				}
				w.Write([]byte(`{"collection":[
					{"kind":"user","id":1,"username":"first"},
					{"kind":"track","id":2,"title":"second","stream_url":"https://s/2","user":{"username":"u"}},
					{"kind":"playlist","id":3}
				]}`))
			})

			results, err := svc.Search(context.Background(), "deep house")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != 3 {
				t.Fatalf("expected 3 results, got %d", len(results))
			}
			if results[0].Kind != models.KindUser || results[0].User.Username != "first" {
				t.Errorf("unexpected first result %+v", results[0])
			}
			if results[1].Kind != models.KindTrack || results[1].Track.Title != "second" {
				t.Errorf("unexpected second result %+v", results[1])
			}
			if results[2].Kind != "playlist" {
				t.Errorf("unexpected third result %+v", results[2])
			}
		})

		t.Run("Skips Undecodable Items", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"collection":[
					{"kind":"user","id":"bad"},
					{"kind":"user","id":5,"username":"ok"}
				]}`))
			})

			results, err := svc.Search(context.Background(), "x")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != 1 || results[0].User.Username != "ok" {
				t.Errorf("expected only the valid item, got %+v", results)
			}
		})

		t.Run("Empty Query Never Reaches Network", func(t *testing.T) {
			hits := 0
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

			if _, err := svc.Search(context.Background(), ""); !errors.Is(err, shared.ErrEmptyQuery) {
				t.Errorf("expected ErrEmptyQuery, got %v", err)
			}
			if hits != 0 {
				t.Errorf("expected no requests, got %d", hits)
			}
		})

		t.Run("Request Failure", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})

			_, err := svc.Search(context.Background(), "x")
			var reqErr *RequestError
			if !errors.As(err, &reqErr) || reqErr.StatusCode != http.StatusUnauthorized {
				t.Errorf("expected 401 RequestError, got %v", err)
			}
		})
	})

	t.Run("UserTracks", func(t *testing.T) {
		t.Run("Fetches Track Array", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/users/77/tracks" {
					t.Errorf("expected /users/77/tracks, got %s", r.URL.Path)
				}
				w.Write([]byte(`[
					{"kind":"track","title":"a","stream_url":"https://s/a","user":{"username":"dj"}},
					{"kind":"track","title":"b","stream_url":"https://s/b","user":{"username":"dj"}}
				]`))
			})

			tracks, err := svc.UserTracks(context.Background(), "77")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tracks) != 2 || tracks[0].Title != "a" || tracks[1].Artist() != "dj" {
				t.Errorf("unexpected tracks %+v", tracks)
			}
		})

		t.Run("Empty User ID", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})
			if _, err := svc.UserTracks(context.Background(), ""); !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})

		t.Run("Non Array Body", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"collection":[]}`))
			})
			if _, err := svc.UserTracks(context.Background(), "1"); err == nil {
				t.Error("expected decode error for object body")
			}
		})
	})

	t.Run("StreamURL", func(t *testing.T) {
		svc := NewSoundCloudService(NewURLBuilder("", "tok"), nil, quietLogger())
		if got := svc.StreamURL("https://s/1/stream"); got != "https://s/1/stream?client_id=tok" {
			t.Errorf("unexpected stream url %s", got)
		}
	})
}
