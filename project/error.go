package project

import (
	"fmt"
	"strings"
	"time"
)

// ParseError reports a source file that could not be read or parsed
type ParseError struct {
	Path       string
	Underlying error
	Timestamp  time.Time
}

func newParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Underlying: err, Timestamp: time.Now()}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// MultiError collects independent failures
type MultiError struct {
	Errors []error
}

// Error implements the error interface
func (e *MultiError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("%d error(s): %s", len(e.Errors), strings.Join(messages, "; "))
}

// Unwrap returns collected errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when nothing was collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}
