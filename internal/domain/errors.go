package domain

import "errors"

var (
	// ErrConfiguration marks a missing or invalid external resource, such as a
	// reference panel. Callers must surface it instead of defaulting.
	ErrConfiguration = errors.New("configuration error")

	// ErrToolUnavailable is returned by preflight when a required tool cannot be resolved.
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrMissingInput marks a design that lacks a file a tool needs.
	ErrMissingInput = errors.New("missing input")
)
