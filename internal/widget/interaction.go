package widget

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/services"
)

// Interaction dispatches card clicks.
type Interaction struct {
	doc      *page.Document
	renderer *Renderer
	service  services.Service
	logger   *log.Logger
}

func NewInteraction(doc *page.Document, renderer *Renderer, service services.Service, logger *log.Logger) *Interaction {
	return &Interaction{doc: doc, renderer: renderer, service: service, logger: logger}
}

// OnResultClick reads the card's kind from its second class and plays the track or opens
// the artist page.
func (i *Interaction) OnResultClick(ctx context.Context, card *page.Card) page.Task {
	switch models.Kind(card.Class(1)) {
	case models.KindTrack:
		return i.Playback(ctx,
			card.Data(DataTrackArtist),
			card.Data(DataTrackTitle),
			card.Data(DataTrackSrc),
			card.Art,
		)
	case models.KindUser:
		i.doc.Results.Hide()
		i.doc.ArtistPage.Show()
		i.doc.Content.ScrollTo(0)
		return i.renderer.ShowArtistPage(ctx, card.Data(DataUserID), card.Data(DataUsername), card.Art)
	default:
		i.logger.Debug("ignoring click", "card", card.ID, "classes", card.Classes)
		return nil
	}
}

// Playback shows the track as now playing and starts its stream.
func (i *Interaction) Playback(ctx context.Context, artist, title, src string, art page.Style) page.Task {
	i.renderer.UpdateNowPlaying(artist, title, art)
	i.doc.Audio.Src = i.service.StreamURL(src)
	i.logger.Info("playing", "artist", artist, "title", title)

	return i.doc.Audio.Play(ctx, func(err error) {
		i.renderer.ShowError(fmt.Errorf("playback of %s - %s failed: %w", artist, title, err))
	})
}

// Back leaves the artist page and shows the previous results without refetching.
func (i *Interaction) Back() page.Task {
	i.doc.ArtistPage.Hide()
	i.doc.Results.Show()
	return nil
}
