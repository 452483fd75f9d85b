package stats

import "errors"

var (
	// ErrUnavailable indicates the stats service is unreachable.
	ErrUnavailable = errors.New("stats service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("stats request timed out")

	// ErrBadStatus indicates the stats service answered with a
	// non-success HTTP status.
	ErrBadStatus = errors.New("stats service returned non-success status")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("stats retry attempts exhausted")
)
