// package services defines interface Service for interacting with the audio platform's HTTP API
package services

import (
	"context"

	"github.com/desertthunder/scplay/internal/models"
)

// Service defines the operations the search widget needs from the audio platform.
type Service interface {
	// Search returns the ordered result collection for query.
	Search(ctx context.Context, query string) ([]models.SearchResult, error)

	// UserTracks returns the tracks uploaded by the user with the given ID.
	UserTracks(ctx context.Context, userID string) ([]models.Track, error)

	// StreamURL turns a track's stream_url into a playable URL carrying the credential.
	StreamURL(trackURL string) string

	// Name returns the name of the service (e.g., "SoundCloud")
	Name() string
}
