package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/services"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/dustin/go-humanize"
)

// PlaceholderBackground is used for cards whose result has no artwork.
const PlaceholderBackground = "linear-gradient(135deg,#846170,#70929c)"

// Card data attributes.
const (
	DataTrackSrc       = "track-src"
	DataTrackTitle     = "track-title"
	DataTrackArtist    = "track-artist"
	DataTrackPermalink = "track-permalink"
	DataUserID         = "user-id"
	DataUsername       = "username"
	DataUserPermalink  = "user-permalink"
)

// ArtStyle returns the background style for an artwork or avatar URL.
func ArtStyle(url string) page.Style {
	if url == "" {
		return page.Style{Background: PlaceholderBackground}
	}
	return page.Style{Background: fmt.Sprintf("url(%s) no-repeat center center", url), Size: "cover"}
}

// Renderer writes results into the document's containers.
type Renderer struct {
	doc     *page.Document
	service services.Service
	logger  *log.Logger
}

// NewRenderer creates a renderer over doc.
func NewRenderer(doc *page.Document, service services.Service, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Renderer{doc: doc, service: service, logger: logger}
}

// ClearResults empties the results container.
func (r *Renderer) ClearResults() {
	r.doc.Results.Clear()
}

// RenderResults appends one card per result in input order.
//
// Malformed items are logged and skipped. Unknown kinds are skipped silently. The returned
// error joins every per-item failure.
func (r *Renderer) RenderResults(results []models.SearchResult) error {
	var errs []error
	for i, res := range results {
		var (
			card *page.Card
			err  error
		)

		switch res.Kind {
		case models.KindTrack:
			card, err = r.trackCard(res.Track)
		case models.KindUser:
			card, err = r.userCard(res.User)
		default:
			r.logger.Debug("skipping result", "index", i, "kind", res.Kind)
			continue
		}

		if err != nil {
			r.logger.Warn("skipping malformed result", "index", i, "kind", res.Kind, "err", err)
			errs = append(errs, fmt.Errorf("result %d: %w", i, err))
			continue
		}
		r.doc.Results.Append(card)
	}
	return errors.Join(errs...)
}

// RenderArtistTracks replaces the artist-tracks container content with tracks.
func (r *Renderer) RenderArtistTracks(tracks []models.Track) error {
	r.doc.ArtistTracks.Clear()

	var errs []error
	for i := range tracks {
		card, err := r.trackCard(&tracks[i])
		if err != nil {
			r.logger.Warn("skipping malformed track", "index", i, "err", err)
			errs = append(errs, fmt.Errorf("track %d: %w", i, err))
			continue
		}
		r.doc.ArtistTracks.Append(card)
	}
	return errors.Join(errs...)
}

// UpdateNowPlaying sets the now-playing label and mirrors the card art on the artwork panel.
func (r *Renderer) UpdateNowPlaying(artist, title string, art page.Style) {
	r.doc.NowPlaying.SetText(fmt.Sprintf(" %s - %s", artist, title))
	r.doc.Artwork.Style = art
}

// ShowArtistPage sets the artist header and returns the task that loads the artist's tracks.
func (r *Renderer) ShowArtistPage(ctx context.Context, id, name string, art page.Style) page.Task {
	r.doc.ArtistPageImage.Style = art
	r.doc.ArtistPageName.SetText(name)
	r.doc.ArtistTracks.Clear()

	return func() page.Apply {
		tracks, err := r.service.UserTracks(ctx, id)
		return func() {
			if err != nil {
				r.ShowError(fmt.Errorf("loading tracks for %s failed: %w", name, err))
				return
			}
			if err := r.RenderArtistTracks(tracks); err != nil {
				r.logger.Warn("artist tracks rendered with errors", "user_id", id, "err", err)
			}
		}
	}
}

// ShowError logs err and shows it on the status label.
func (r *Renderer) ShowError(err error) {
	if err == nil {
		return
	}
	r.logger.Error("widget error", "err", err)
	r.doc.Status.SetText(err.Error())
}

// ClearStatus empties the status label.
func (r *Renderer) ClearStatus() {
	r.doc.Status.SetText("")
}

func (r *Renderer) trackCard(t *models.Track) (*page.Card, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: track result without track", shared.ErrMalformedResult)
	}
	if t.User == nil {
		return nil, fmt.Errorf("%w: track %q has no user", shared.ErrMalformedResult, t.Title)
	}

	card := r.doc.TrackTemplate.Clone()
	card.Heading = t.Title
	card.Subheading = t.User.Username
	card.Art = ArtStyle(t.ArtworkURL)
	card.Description = trackDescription(t)
	card.SetData(DataTrackSrc, t.StreamURL)
	card.SetData(DataTrackTitle, t.Title)
	card.SetData(DataTrackArtist, t.User.Username)
	card.SetData(DataTrackPermalink, t.PermalinkURL)
	return card, nil
}

func (r *Renderer) userCard(u *models.User) (*page.Card, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: user result without user", shared.ErrMalformedResult)
	}
	if u.ID == 0 || u.Username == "" {
		return nil, fmt.Errorf("%w: user is missing id or username", shared.ErrMalformedResult)
	}

	card := r.doc.UserTemplate.Clone()
	card.Heading = u.Username
	card.Art = ArtStyle(u.AvatarURL)
	if u.TrackCount > 0 {
		card.Description = humanize.Comma(int64(u.TrackCount)) + " tracks"
	}
	card.SetData(DataUserID, u.IDString())
	card.SetData(DataUsername, u.Username)
	card.SetData(DataUserPermalink, u.PermalinkURL)
	return card, nil
}

func trackDescription(t *models.Track) string {
	desc := shared.FormatDuration(t.Duration)
	if t.PlaybackCount > 0 {
		desc = fmt.Sprintf("%s • %s plays", desc, humanize.Comma(int64(t.PlaybackCount)))
	}
	return desc
}
