package jsonptr

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// Write-path failures
	ErrPathMalformed   = errors.New("path incompatible with tree")
	ErrIndexOutOfRange = errors.New("array index out of range")
	ErrInvalidRoot     = errors.New("root is not a container")

	// Degraded values; never returned from a write
	ErrCoercion = errors.New("value cannot be converted to a node")

	ErrInvalidJSON   = errors.New("invalid JSON format")
	ErrInvalidPath   = errors.New("invalid path expression")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMapperClosed  = errors.New("mapper is closed")
)

// PointerError represents a failed tree operation with its location
type PointerError struct {
	Op      string `json:"op"`      // Operation that failed
	Pointer string `json:"pointer"` // Pointer being resolved
	Segment string `json:"segment"` // Unescaped segment where resolution stopped
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *PointerError) Error() string {
	switch {
	case e.Segment != "":
		return fmt.Sprintf("JSON %s failed at segment '%s' of '%s': %s", e.Op, e.Segment, e.Pointer, e.Message)
	case e.Pointer != "":
		return fmt.Sprintf("JSON %s failed at pointer '%s': %s", e.Op, e.Pointer, e.Message)
	default:
		return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
	}
}

// Unwrap returns the underlying error for error chain support
func (e *PointerError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *PointerError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*PointerError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// newSetError creates a PointerError for a failed write
func newSetError(pointer, segment, message string, err error) error {
	return &PointerError{
		Op:      "set",
		Pointer: pointer,
		Segment: segment,
		Message: message,
		Err:     err,
	}
}

// newOperationError creates a PointerError for operation failures
func newOperationError(operation, message string, err error) error {
	return &PointerError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// errorType returns the sentinel text used to bucket errors in metrics
func errorType(err error) string {
	var pe *PointerError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return "unknown"
}
