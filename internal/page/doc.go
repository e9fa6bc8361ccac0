// Package page is the in-process document the search widget renders into.
//
// A [Document] holds the named elements of the widget: two card templates, the search form,
// the results and artist-track containers, the artist page panels, the now-playing label, a
// back button, a scroller and an audio element. Surfaces (the terminal UI, tests) drive it by
// submitting the form and clicking cards or buttons.
//
// Mutations happen only on the UI thread. Listeners run there and may change the document
// directly; blocking work (network, audio) is returned as a [Task] that the surface runs
// elsewhere. A Task yields an [Apply] continuation which the surface runs back on the UI
// thread.
package page
