// Package widget implements the search widget's controllers over a [page.Document].
//
// The [Renderer] turns search results into cards, the [FormController] turns submissions into
// searches, and the [Interaction] controller turns card clicks into playback or artist page
// navigation. [Core] wires them to the document once.
package widget
