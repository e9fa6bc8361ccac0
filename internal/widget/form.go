package widget

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/services"
)

// FormController runs searches for the search form.
type FormController struct {
	form     *page.Form
	renderer *Renderer
	service  services.Service
	logger   *log.Logger
}

func NewFormController(renderer *Renderer, service services.Service, logger *log.Logger) *FormController {
	return &FormController{renderer: renderer, service: service, logger: logger}
}

// Init registers the submit listener on form. Later calls are ignored.
func (f *FormController) Init(ctx context.Context, form *page.Form) {
	if f.form != nil {
		return
	}
	f.form = form
	form.OnSubmit(func(query string) page.Task {
		return f.OnSubmit(ctx, query)
	})
}

// OnSubmit returns the search task for query, or nil when the query is blank.
//
// The results container is cleared only once the response arrives, so a failed search
// leaves the previous results in place.
func (f *FormController) OnSubmit(ctx context.Context, query string) page.Task {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	f.logger.Info("searching", "query", query)
	return func() page.Apply {
		results, err := f.service.Search(ctx, query)
		return func() {
			if err != nil {
				f.renderer.ShowError(fmt.Errorf("search failed: %w", err))
				return
			}
			f.renderer.ClearStatus()
			f.renderer.ClearResults()
			if err := f.renderer.RenderResults(results); err != nil {
				f.logger.Warn("results rendered with errors", "query", query, "err", err)
			}
		}
	}
}
