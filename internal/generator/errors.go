package generator

import "errors"

var (
	// ErrInvalidArgument is returned for a category or count outside the
	// Fetcher's contract.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedResponse marks model output that holds no usable JSON array.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrNoCredential is returned by calls that need the API key when none is configured.
	ErrNoCredential = errors.New("gemini API key not configured")
)
