package clients

import "errors"

var (
	// ErrSourceUnavailable means the search service could not be reached, timed
	// out or answered with a non-success status.
	ErrSourceUnavailable = errors.New("search source unavailable")

	// ErrMalformedResponse means a response body did not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrScoringFailed wraps every per-snippet classification failure.
	ErrScoringFailed = errors.New("scoring failed")
)
