package domain

import "errors"

var (
	// ErrNotReady is returned when a query arrives before any catalog has been loaded.
	// Recoverable by loading a catalog; distinct from internal errors.
	ErrNotReady = errors.New("catalog not loaded")

	// ErrInvalidInput is returned when request parameters or catalog records are malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCatalog is returned when a catalog source yields no records
	ErrEmptyCatalog = errors.New("catalog contains no records")

	// ErrIndexFit is returned when index fitting fails even after the
	// minimal-corpus retry
	ErrIndexFit = errors.New("index fitting failed")

	// ErrRateLimited is returned when a client exceeds the per-IP request limit
	ErrRateLimited = errors.New("rate limit exceeded")
)
