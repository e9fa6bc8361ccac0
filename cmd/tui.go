package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/desertthunder/scplay/internal/ui"
	"github.com/desertthunder/scplay/internal/widget"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive search widget.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	model, err := r.tuiModel(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// tuiModel moves logging to the log file, then builds the document and its controllers.
func (r *Runner) tuiModel(ctx context.Context) (*ui.Model, error) {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	r.SetLogger(fileLogger)

	svc, err := r.soundCloud()
	if err != nil {
		return nil, err
	}

	doc := page.New(r.audioPlayer())
	core := widget.Bootstrap(ctx, doc, svc, r.logger)
	return ui.NewModel(ctx, doc, core, r.logger), nil
}
