package antok

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSegments is returned when a trainer is created with an empty corpus.
	ErrNoSegments = errors.New("corpus contains no segments")

	// ErrTrainerClosed is returned when Train is called on a closed trainer.
	ErrTrainerClosed = errors.New("trainer is closed")
)

// ErrInvalidGenerations indicates a non-positive generation count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidGenerations struct {
	Generations int
	cause       error
}

func (e *ErrInvalidGenerations) Error() string {
	return fmt.Sprintf("invalid generation count: %d", e.Generations)
}

func (e *ErrInvalidGenerations) Unwrap() error { return e.cause }
