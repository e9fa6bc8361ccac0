// package formatter renders search results as CSV, Markdown, JSON or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/dustin/go-humanize"
)

// Format names an export format.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat resolves a format name, accepting "md" and "txt" aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (use text, csv, markdown or json)", shared.ErrInvalidFlag, name)
	}
}

// Export renders results in format f. title heads the Markdown and text outputs.
func Export(f Format, title string, results []models.SearchResult) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(results)
	case FormatMarkdown:
		return ExportToMarkdown(title, results)
	case FormatJSON:
		return ExportToJSON(results)
	case FormatText:
		return ExportToText(title, results)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
	}
}

// TrackResults wraps tracks as search results so they share the exporters.
func TrackResults(tracks []models.Track) []models.SearchResult {
	results := make([]models.SearchResult, len(tracks))
	for i, t := range tracks {
		results[i] = models.NewTrackResult(t)
	}
	return results
}

// ExportToCSV writes one row per known result with columns: Kind, ID, Name, Artist, Duration, Plays, Tracks, URL
func ExportToCSV(results []models.SearchResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Kind", "ID", "Name", "Artist", "Duration", "Plays", "Tracks", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range results {
		var record []string
		switch {
		case r.Kind == models.KindTrack && r.Track != nil:
			t := r.Track
			record = []string{
				string(r.Kind),
				strconv.FormatInt(t.ID, 10),
				t.Title,
				t.Artist(),
				shared.FormatDuration(t.Duration),
				strconv.Itoa(t.PlaybackCount),
				"",
				t.PermalinkURL,
			}
		case r.Kind == models.KindUser && r.User != nil:
			u := r.User
			record = []string{
				string(r.Kind),
				u.IDString(),
				u.Username,
				"",
				"",
				"",
				strconv.Itoa(u.TrackCount),
				u.PermalinkURL,
			}
		default:
			continue
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders results as a numbered Markdown list under title
func ExportToMarkdown(title string, results []models.SearchResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Results**: %d\n\n", countKnown(results)))

	n := 0
	for _, r := range results {
		switch {
		case r.Kind == models.KindTrack && r.Track != nil:
			n++
			t := r.Track
			name := t.Title
			if t.PermalinkURL != "" {
				name = fmt.Sprintf("[%s](%s)", t.Title, t.PermalinkURL)
			}
			buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]", n, t.Artist(), name, shared.FormatDuration(t.Duration)))
			if t.PlaybackCount > 0 {
				buf.WriteString(fmt.Sprintf(" • %s plays", humanize.Comma(int64(t.PlaybackCount))))
			}
			buf.WriteString("\n")
		case r.Kind == models.KindUser && r.User != nil:
			n++
			u := r.User
			name := fmt.Sprintf("**%s**", u.Username)
			if u.PermalinkURL != "" {
				name = fmt.Sprintf("[**%s**](%s)", u.Username, u.PermalinkURL)
			}
			buf.WriteString(fmt.Sprintf("%d. %s (user %d, %s tracks)\n", n, name, u.ID, humanize.Comma(int64(u.TrackCount))))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText renders results as plain text
func ExportToText(title string, results []models.SearchResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Results: %d\n\n", countKnown(results)))

	n := 0
	for _, r := range results {
		switch {
		case r.Kind == models.KindTrack && r.Track != nil:
			n++
			buf.WriteString(fmt.Sprintf("%d. [track] %s - %s (%s)\n", n, r.Track.Artist(), r.Track.Title, shared.FormatDuration(r.Track.Duration)))
		case r.Kind == models.KindUser && r.User != nil:
			n++
			buf.WriteString(fmt.Sprintf("%d. [user]  %s (id %d)\n", n, r.User.Username, r.User.ID))
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes results as an indented JSON array, each item carrying its kind
func ExportToJSON(results []models.SearchResult) ([]byte, error) {
	if results == nil {
		results = []models.SearchResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteExport renders results and writes them to path.
func WriteExport(path string, f Format, title string, results []models.SearchResult) error {
	data, err := Export(f, title, results)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", f, err)
	}
	return nil
}

func countKnown(results []models.SearchResult) int {
	n := 0
	for _, r := range results {
		if (r.Kind == models.KindTrack && r.Track != nil) || (r.Kind == models.KindUser && r.User != nil) {
			n++
		}
	}
	return n
}
