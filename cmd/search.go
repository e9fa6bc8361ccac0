package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/scplay/internal/formatter"
	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search prints the results for the query given as arguments.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	svc, err := r.soundCloud()
	if err != nil {
		return err
	}

	results, err := svc.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return r.export(format, cmd.String("output"), fmt.Sprintf("Results for %q", query), results)
}

// Tracks prints the uploads of the user whose ID is given as argument.
func (r *Runner) Tracks(ctx context.Context, cmd *cli.Command) error {
	userID := strings.TrimSpace(cmd.Args().First())
	if userID == "" {
		return fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	svc, err := r.soundCloud()
	if err != nil {
		return err
	}

	tracks, err := svc.UserTracks(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch tracks for user %s: %w", userID, err)
	}

	return r.export(format, cmd.String("output"), fmt.Sprintf("Tracks by user %s", userID), formatter.TrackResults(tracks))
}

// StreamURL prints the playable form of a track's stream_url.
func (r *Runner) StreamURL(ctx context.Context, cmd *cli.Command) error {
	src := strings.TrimSpace(cmd.Args().First())
	if src == "" {
		return fmt.Errorf("%w: stream url", shared.ErrMissingArgument)
	}

	svc, err := r.soundCloud()
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", svc.StreamURL(src))
}

// Play streams a track and blocks until it ends or ctx is canceled.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	src := strings.TrimSpace(cmd.Args().First())
	if src == "" {
		return fmt.Errorf("%w: stream url", shared.ErrMissingArgument)
	}

	svc, err := r.soundCloud()
	if err != nil {
		return err
	}

	p := r.audioPlayer()
	if p == nil {
		return fmt.Errorf("%w: audio output is disabled (player.enabled = false)", shared.ErrServiceUnavailable)
	}

	if err := p.Play(ctx, svc.StreamURL(src)); err != nil {
		return err
	}
	if err := r.writePlain("Playing %s (ctrl+c to stop)\n", src); err != nil {
		p.Stop()
		return err
	}

	if d, ok := p.(interface{ Done() <-chan struct{} }); ok {
		select {
		case <-d.Done():
		case <-ctx.Done():
		}
	}
	p.Stop()
	return nil
}

func (r *Runner) export(format formatter.Format, path, title string, results []models.SearchResult) error {
	if path != "" {
		if err := formatter.WriteExport(path, format, title, results); err != nil {
			return err
		}
		r.logger.Info("export written", "path", path, "format", format, "results", len(results))
		return nil
	}

	data, err := formatter.Export(format, title, results)
	if err != nil {
		return err
	}
	return r.writeBytes(data)
}
