package fetch

import "errors"

// Sentinel errors for fetch operations.
var (
	// ErrInvalidURL is returned when a request cannot be built from the URL.
	ErrInvalidURL = errors.New("fetch: invalid url")

	// ErrTrailingData is returned when the body holds more than one JSON value.
	ErrTrailingData = errors.New("fetch: trailing data after JSON value")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("fetch: invalid config")

	// ErrNilDoer is returned when WithDoer is given nil.
	ErrNilDoer = errors.New("fetch: doer is nil")
)
