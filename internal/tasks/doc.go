// Package tasks runs long operations against the audio platform with progress reporting.
//
// [Exporter.BulkTracksExport] fetches the uploads of several users and writes one export file
// per user plus a manifest. Fetches are paced by a rate limiter and written by a worker pool,
// so one failing user does not stop the others.
//
// # Progress Reporting
//
// Operations take an optional channel of [ProgressUpdate]. Sends use select with default, so a
// slow or absent reader never blocks the export.
package tasks
