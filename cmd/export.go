package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/desertthunder/scplay/internal/formatter"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/desertthunder/scplay/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export writes the tracks of every user given as argument into a directory, reporting progress as it goes.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	var ids []string
	for _, arg := range cmd.Args().Slice() {
		if id := strings.TrimSpace(arg); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one user id", shared.ErrMissingArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	svc, err := r.soundCloud()
	if err != nil {
		return err
	}

	prog := make(chan tasks.ProgressUpdate, len(ids)*2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for u := range prog {
			r.writePlain("%s\n", u.Message)
		}
	}()

	result, err := tasks.NewExporter(svc, r.logger).BulkTracksExport(ctx, prog, ids, tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("dir"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	})
	close(prog)
	wg.Wait()
	if err != nil {
		return err
	}

	r.logger.Info("bulk export finished", "dir", result.OutputDirectory, "ok", result.SuccessfulExports, "failed", result.FailedExports)
	return r.writePlain("Exported %d of %d users to %s (manifest: %s)\n",
		result.SuccessfulExports, result.TotalUsers, result.OutputDirectory, result.ManifestPath)
}
