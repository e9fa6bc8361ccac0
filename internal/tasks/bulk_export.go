package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/formatter"
	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/services"
	"github.com/desertthunder/scplay/internal/shared"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for bulk track exports.
type BulkExportOpts struct {
	Format     formatter.Format // Export format (default: text)
	OutputDir  string           // Base output directory (default: scplay_export_{epoch})
	NumWorkers int              // Concurrent writers (default: 5, max: 10)
	RateLimit  float64          // Fetches per second (default: 5)
}

// UserExportResult is the outcome for one user.
type UserExportResult struct {
	UserID  string `json:"user_id"`
	Tracks  int    `json:"tracks"`
	File    string `json:"file,omitempty"`
	Success bool   `json:"success"`
	Error   error  `json:"-"`
	Message string `json:"error,omitempty"`
}

// BulkExportResult summarizes a bulk export.
type BulkExportResult struct {
	TotalUsers        int                `json:"total_users"`
	SuccessfulExports int                `json:"successful_exports"`
	FailedExports     int                `json:"failed_exports"`
	OutputDirectory   string             `json:"output_directory"`
	Format            formatter.Format   `json:"format"`
	Results           []UserExportResult `json:"results"`
	ManifestPath      string             `json:"-"`
}

type userExportJob struct {
	userID string
	tracks []models.Track
}

// Exporter runs bulk operations against one service.
type Exporter struct {
	service services.Service
	logger  *log.Logger
}

func NewExporter(service services.Service, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Exporter{service: service, logger: logger}
}

// BulkTracksExport exports the uploads of every user in ids concurrently with rate limiting and progress tracking.
//
// Fetch failures are recorded per user and do not stop the run. A manifest named export_manifest.json summarizes the results.
func (e *Exporter) BulkTracksExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	ids []string,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.service == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one user id", shared.ErrMissingArgument)
	}

	if opts.Format == "" {
		opts.Format = formatter.FormatText
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("scplay_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalUsers:      len(ids),
		OutputDirectory: opts.OutputDir,
		Format:          opts.Format,
		Results:         make([]UserExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan userExportJob, len(ids))
	results := make(chan UserExportResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		for i, userID := range ids {
			if err := limiter.Wait(ctx); err != nil {
				return
			}

			sendProgress(prog, fetchingTracksUpdate(i+1, len(ids), userID))
			tracks, err := e.service.UserTracks(ctx, userID)
			if err != nil {
				results <- UserExportResult{
					UserID: userID,
					Error:  fmt.Errorf("failed to fetch tracks: %w", err),
				}
				continue
			}

			jobs <- userExportJob{userID: userID, tracks: tracks}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		if res.Error != nil {
			res.Message = res.Error.Error()
		}
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(completed, len(ids), res.UserID, res.Tracks))
		} else {
			result.FailedExports++
			e.logger.Warn("user export failed", "user_id", res.UserID, "err", res.Error)
			sendProgress(prog, exportFailedUpdate(completed, len(ids), res.UserID, res.Error))
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that writes exports from the jobs channel.
func (e *Exporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan userExportJob,
	results chan<- UserExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- exportUser(job, opts)
	}
}

func exportUser(j userExportJob, opts BulkExportOpts) UserExportResult {
	res := UserExportResult{UserID: j.userID, Tracks: len(j.tracks)}

	path := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_tracks.%s", j.userID, extension(opts.Format)))
	title := fmt.Sprintf("Tracks by user %s", j.userID)
	if len(j.tracks) > 0 && j.tracks[0].Artist() != "" {
		title = fmt.Sprintf("Tracks by %s", j.tracks[0].Artist())
	}

	if err := formatter.WriteExport(path, opts.Format, title, formatter.TrackResults(j.tracks)); err != nil {
		res.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		return res
	}

	res.File = path
	res.Success = true
	return res
}

func extension(f formatter.Format) string {
	switch f {
	case formatter.FormatMarkdown:
		return "md"
	case formatter.FormatText:
		return "txt"
	default:
		return string(f)
	}
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
