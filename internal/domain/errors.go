package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the content catalog could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrAreaNotFound is returned by transport lookups for unknown area slugs.
	ErrAreaNotFound = errors.New("area not found")
	// ErrGenreNotFound is returned by transport lookups for unknown genre slugs.
	ErrGenreNotFound = errors.New("genre not found")
	// ErrSessionNotFound is returned when a quiz session has not been started.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrInvalidMaxScore indicates a non-positive percentage denominator.
	ErrInvalidMaxScore = errors.New("max score must be positive")
)
