// SoundCloud API implementation of [Service]
package services

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/shared"
)

// searchResponse is the envelope returned by the search endpoint.
type searchResponse struct {
	Collection []json.RawMessage `json:"collection"`
}

// SoundCloudService implements [Service] with one request per call.
type SoundCloudService struct {
	urls    URLBuilder
	fetcher *Fetcher
	logger  *log.Logger
}

var _ Service = (*SoundCloudService)(nil)

// NewSoundCloudService creates a service from the URL builder and fetcher.
func NewSoundCloudService(urls URLBuilder, fetcher *Fetcher, logger *log.Logger) *SoundCloudService {
	if fetcher == nil {
		fetcher = NewFetcher(FetcherOpts{Logger: logger})
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SoundCloudService{urls: urls, fetcher: fetcher, logger: logger}
}

// Name returns the service name.
func (s *SoundCloudService) Name() string {
	return "SoundCloud"
}

// Search fetches the result collection for query.
//
// Items that fail to decode are logged and dropped; the order of the remaining items is kept.
func (s *SoundCloudService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	u, err := s.urls.SearchURL(query)
	if err != nil {
		return nil, err
	}

	var body searchResponse
	if err := s.fetcher.FetchJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(body.Collection))
	for i, raw := range body.Collection {
		var r models.SearchResult
		if err := json.Unmarshal(raw, &r); err != nil {
			s.logger.Warn("skipping search result", "index", i, "err", err)
			continue
		}
		results = append(results, r)
	}

	s.logger.Info("search complete", "query", query, "results", len(results))
	return results, nil
}

// UserTracks fetches the tracks uploaded by userID.
func (s *SoundCloudService) UserTracks(ctx context.Context, userID string) ([]models.Track, error) {
	u, err := s.urls.UserTracksURL(userID)
	if err != nil {
		return nil, err
	}

	var body []json.RawMessage
	if err := s.fetcher.FetchJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	tracks := make([]models.Track, 0, len(body))
	for i, raw := range body {
		var t models.Track
		if err := json.Unmarshal(raw, &t); err != nil {
			s.logger.Warn("skipping user track", "user_id", userID, "index", i, "err", err)
			continue
		}
		tracks = append(tracks, t)
	}

	s.logger.Info("user tracks fetched", "user_id", userID, "tracks", len(tracks))
	return tracks, nil
}

// StreamURL returns the playable stream URL for a track.
func (s *SoundCloudService) StreamURL(trackURL string) string {
	return s.urls.StreamURL(trackURL)
}
