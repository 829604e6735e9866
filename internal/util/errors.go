package util

import (
	"errors"
	"fmt"
)

var (
	ErrQuizNotFound      = errors.New("Quiz not found")
	ErrQuizUnavailable   = errors.New("Quiz is not currently available")
	ErrTimeLimitExceeded = errors.New("Time limit exceeded for this quiz")
)

// ValidationError is reported as 422. Fields is a field- or question-indexed
// detail map; it is nil for message-only failures.
type ValidationError struct {
	Message string
	Fields  map[string]interface{}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(fields map[string]interface{}) *ValidationError {
	return &ValidationError{Message: "Validation errors", Fields: fields}
}

func NewValidationMessage(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// MalformedRequestError is reported as 400.
type MalformedRequestError struct {
	Message string
}

func (e *MalformedRequestError) Error() string {
	return e.Message
}

func NewMalformedRequest(format string, args ...interface{}) *MalformedRequestError {
	return &MalformedRequestError{Message: fmt.Sprintf(format, args...)}
}

// DatabaseError wraps a persistence failure. Sensitive marks errors raised by
// a SQL driver whose text may carry statements or parameters.
type DatabaseError struct {
	Op        string
	Err       error
	Sensitive bool
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
