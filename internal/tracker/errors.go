// ABOUTME: Sentinel errors returned by tracker operations.
// ABOUTME: Callers match them with errors.Is; messages carry the offending value.
package tracker

import "errors"

var (
	// ErrInvalidInput marks a rejected weight, reps, date, name, category, or set index.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownExercise marks a reference to an exercise that does not exist.
	ErrUnknownExercise = errors.New("unknown exercise")

	// ErrDuplicateExercise marks an attempt to add an exercise name twice.
	ErrDuplicateExercise = errors.New("exercise already exists")

	// ErrSetNotDeletable marks a delete of a set not dated today.
	ErrSetNotDeletable = errors.New("only sets logged today can be deleted")

	// ErrUnknownSet marks a delete by id that matches no set.
	ErrUnknownSet = errors.New("unknown set")

	// ErrImportFormat marks an import payload that is not JSON or lacks exercises/prs.
	ErrImportFormat = errors.New("invalid import format")

	// ErrPersistenceWrite marks a failed snapshot write. The in-memory change is kept.
	ErrPersistenceWrite = errors.New("failed to save")
)
