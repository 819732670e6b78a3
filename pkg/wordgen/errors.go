package wordgen

import "errors"

var (
	// ErrInvalidConfig is returned by New for unusable options.
	ErrInvalidConfig = errors.New("wordgen: invalid configuration")

	// ErrAttemptsExhausted is returned by Batch when a word could not be found
	// within the attempt limit.
	ErrAttemptsExhausted = errors.New("wordgen: attempts exhausted")
)
