// Package services talks to the audio platform's public REST API.
//
// # Fetch Helper
//
// [Fetcher] wraps a single GET request per call. [Fetcher.FetchText] returns the body and [Fetcher.FetchJSON]
// decodes it. There are no retries and no timeout; an optional rate limiter paces outbound requests.
//
// # URL Builder
//
// [URLBuilder] produces search, user-tracks, and stream URLs, appending the static client_id credential.
// Its methods are pure.
//
// # Service Interface
//
// [Service] is the contract the widget controllers depend on. [SoundCloudService] implements it on top of
// the fetch helper and URL builder.
//
// # Error Handling
//
// Failures use typed errors that unwrap to sentinels from the shared package:
//   - [RequestError] : HTTP status >= 400, unwraps to [shared.ErrRequestFailed]
//   - [ConnectionError] : transport failure, unwraps to [shared.ErrConnectionFailed]
//   - [shared.ErrEmptyQuery] : search URL requested for an empty query
//
// Individual collection items that fail to decode are logged and skipped; the rest of the response is kept.
package services
