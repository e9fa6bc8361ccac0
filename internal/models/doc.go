// Package models defines the data returned by the audio platform's search API.
//
// A search returns an ordered collection of [SearchResult] values, a tagged union discriminated by [Kind]:
//   - [KindTrack] : a playable [Track] with its uploader
//   - [KindUser] : an artist [User] whose tracks can be listed
//
// Results are immutable after decoding and live for one render pass.
package models
