package classfile

import (
	"fmt"
	"time"
)

// DecodeError represents malformed class file content
type DecodeError struct {
	Op         string
	Offset     int64
	Underlying error
	Timestamp  time.Time
}

func newDecodeError(op string, offset int64, err error) *DecodeError {
	return &DecodeError{Op: op, Offset: offset, Underlying: err, Timestamp: time.Now()}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("classfile: %s failed at offset %d: %v", e.Op, e.Offset, e.Underlying)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Underlying
}
