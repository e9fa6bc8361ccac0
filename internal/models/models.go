package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates [SearchResult] variants.
type Kind string

const (
	KindTrack Kind = "track"
	KindUser  Kind = "user"
)

// TrackUser is the uploader embedded in a track.
type TrackUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Track is a playable upload.
type Track struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	StreamURL     string     `json:"stream_url"`
	ArtworkURL    string     `json:"artwork_url,omitempty"` // empty when the upload has no artwork
	PermalinkURL  string     `json:"permalink_url,omitempty"`
	Duration      int        `json:"duration,omitempty"` // milliseconds
	PlaybackCount int        `json:"playback_count,omitempty"`
	User          *TrackUser `json:"user,omitempty"`
}

// Artist returns the uploader's username, or "" when the track has no user.
func (t Track) Artist() string {
	if t.User == nil {
		return ""
	}
	return t.User.Username
}

// User is an artist account.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatar_url,omitempty"` // empty when the account has no avatar
	PermalinkURL string `json:"permalink_url,omitempty"`
	TrackCount   int    `json:"track_count,omitempty"`
}

// IDString returns the user ID in the form used by URLs and card data attributes.
func (u User) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

// SearchResult is one entry of a search collection. Exactly one of Track and User is set for the known kinds.
type SearchResult struct {
	Kind  Kind
	Track *Track
	User  *User
}

// UnmarshalJSON decodes a result by peeking at its "kind" field.
//
// Unknown kinds (playlists, groups) decode without error and carry neither variant.
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var head struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("failed to decode result kind: %w", err)
	}

	*r = SearchResult{Kind: head.Kind}
	switch head.Kind {
	case KindTrack:
		var t Track
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to decode track: %w", err)
		}
		r.Track = &t
	case KindUser:
		var u User
		if err := json.Unmarshal(data, &u); err != nil {
			return fmt.Errorf("failed to decode user: %w", err)
		}
		r.User = &u
	}
	return nil
}

// MarshalJSON encodes the active variant with its "kind" field.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Kind == KindTrack && r.Track != nil:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			Track
		}{r.Kind, *r.Track})
	case r.Kind == KindUser && r.User != nil:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			User
		}{r.Kind, *r.User})
	default:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
		}{r.Kind})
	}
}

// NewTrackResult wraps a track as a [SearchResult].
func NewTrackResult(t Track) SearchResult {
	return SearchResult{Kind: KindTrack, Track: &t}
}

// NewUserResult wraps a user as a [SearchResult].
func NewUserResult(u User) SearchResult {
	return SearchResult{Kind: KindUser, User: &u}
}
