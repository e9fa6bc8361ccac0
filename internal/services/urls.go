package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/desertthunder/scplay/internal/shared"
)

const (
	defaultAPIURL = "https://api.soundcloud.com"
	credentialKey = "client_id"
)

// URLBuilder builds API URLs carrying the static credential token.
type URLBuilder struct {
	BaseURL  string
	ClientID string
}

// NewURLBuilder creates a URLBuilder, defaulting the base URL to the public API host.
func NewURLBuilder(baseURL, clientID string) URLBuilder {
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return URLBuilder{BaseURL: strings.TrimRight(baseURL, "/"), ClientID: clientID}
}

func (b URLBuilder) credential() string {
	return credentialKey + "=" + url.QueryEscape(b.ClientID)
}

// SearchURL returns the search endpoint URL for query.
//
// The query is escaped so that decoding the q parameter yields it exactly.
func (b URLBuilder) SearchURL(query string) (string, error) {
	if query == "" {
		return "", shared.ErrEmptyQuery
	}
	return fmt.Sprintf("%s/search?q=%s&%s", b.BaseURL, url.QueryEscape(query), b.credential()), nil
}

// UserTracksURL returns the track listing URL for a user.
func (b URLBuilder) UserTracksURL(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty user id", shared.ErrInvalidArgument)
	}
	return fmt.Sprintf("%s/users/%s/tracks?%s", b.BaseURL, url.PathEscape(userID), b.credential()), nil
}

// StreamURL appends the credential to a track's stream URL.
//
// A URL that already carries client_id is returned unchanged, so applying it twice is safe.
func (b URLBuilder) StreamURL(trackURL string) string {
	if u, err := url.Parse(trackURL); err == nil && u.Query().Has(credentialKey) {
		return trackURL
	}

	sep := "?"
	if strings.Contains(trackURL, "?") {
		sep = "&"
	}
	return trackURL + sep + b.credential()
}
