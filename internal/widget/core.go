package widget

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/services"
	"github.com/desertthunder/scplay/internal/shared"
)

// Core owns the controllers of one document.
type Core struct {
	Renderer    *Renderer
	Form        *FormController
	Interaction *Interaction

	doc  *page.Document
	once sync.Once
}

// New creates the controllers for doc.
func New(doc *page.Document, service services.Service, logger *log.Logger) *Core {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	renderer := NewRenderer(doc, service, logger)
	return &Core{
		Renderer:    renderer,
		Form:        NewFormController(renderer, service, logger),
		Interaction: NewInteraction(doc, renderer, service, logger),
		doc:         doc,
	}
}

// Bootstrap registers the document listeners. Only the first call has any effect.
func (c *Core) Bootstrap(ctx context.Context) {
	c.once.Do(func() {
		onClick := func(card *page.Card) page.Task {
			return c.Interaction.OnResultClick(ctx, card)
		}
		c.doc.Results.OnClick(onClick)
		c.doc.ArtistTracks.OnClick(onClick)
		c.doc.Back.OnClick(c.Interaction.Back)
		c.Form.Init(ctx, c.doc.SearchForm)
	})
}

// Bootstrap builds a [Core] for doc and wires it.
func Bootstrap(ctx context.Context, doc *page.Document, service services.Service, logger *log.Logger) *Core {
	c := New(doc, service, logger)
	c.Bootstrap(ctx)
	return c
}
