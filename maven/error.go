package maven

import (
	"fmt"
	"time"
)

// PomError represents a descriptor that could not be read or parsed
type PomError struct {
	Op         string
	Path       string
	Underlying error
	Timestamp  time.Time
}

func newPomError(op, path string, err error) *PomError {
	return &PomError{Op: op, Path: path, Underlying: err, Timestamp: time.Now()}
}

// Error implements the error interface
func (e *PomError) Error() string {
	return fmt.Sprintf("maven: %s %s: %v", e.Op, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *PomError) Unwrap() error {
	return e.Underlying
}
