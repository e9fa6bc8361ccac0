// Package ui implements the interactive terminal surface of the search widget using bubbletea's Elm architecture.
//
// The [Model] projects a [page.Document] onto two views:
//  1. [ResultsView] : the search input above the rendered result cards
//  2. [ArtistView] : the artist header and that artist's track cards
//
// Key presses become document events (form submission, card clicks, the back button). The
// [page.Task] each event returns runs as a [tea.Cmd]; its [page.Apply] continuation comes back
// through the Msg union and runs inside Update, so the document is only mutated on the UI
// goroutine.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, /, o, s, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
