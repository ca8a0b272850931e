package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no credential is configured; callers
	// skip augmentation silently in this case.
	ErrMissingAPIKey = errors.New("missing api key")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrUnavailable indicates the API endpoint is unreachable.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrInvalidOutput indicates the response could not be parsed into
	// the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been used up.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
