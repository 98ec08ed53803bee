package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrNotUpdated is returned by conditional writes that matched no row.
	// Callers re-read the job to tell a missing row from a lost status race.
	ErrNotUpdated = errors.New("no rows updated")

	// ErrJobIDRequired is returned when an operation is missing its job id.
	ErrJobIDRequired = errors.New("job id is required")

	// ErrUserIDRequired is returned when an operation is missing its user id.
	ErrUserIDRequired = errors.New("user id is required")

	// ErrTranslatorIDRequired is returned when an operation is missing its translator id.
	ErrTranslatorIDRequired = errors.New("translator id is required")
)
