package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Network errors
	ErrRequestFailed    = fmt.Errorf("request failed")
	ErrConnectionFailed = fmt.Errorf("connection failed")

	// API and service errors
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrMalformedResult    = fmt.Errorf("malformed result")
	ErrPlaybackFailed     = fmt.Errorf("playback failed")

	// Input validation errors
	ErrEmptyQuery      = fmt.Errorf("empty query")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
