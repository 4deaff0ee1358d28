// Package hipmatmul structured error types for the emulation surfaces
package hipmatmul

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Memory errors
	ErrTypeMemory ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Kernel launch errors
	ErrTypeLaunch
	// Device errors
	ErrTypeDevice
)

// EmuError represents a structured error with context.
// Precondition violations inside the hot path (out-of-range lane ids,
// partial wavefront participation) are programmer errors and panic or
// deadlock instead of surfacing here; EmuError covers the outer API only.
type EmuError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *EmuError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hipmatmul %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("hipmatmul %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *EmuError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeMemory:
		return "Memory"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeLaunch:
		return "Launch"
	case ErrTypeDevice:
		return "Device"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewMemoryError creates a memory-related error
func NewMemoryError(op string, message string, err error) error {
	return &EmuError{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &EmuError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewLaunchError creates a kernel launch error
func NewLaunchError(op string, message string, err error) error {
	return &EmuError{
		Type:    ErrTypeLaunch,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Common pre-defined errors

var (
	// ErrInvalidSize indicates invalid size parameter
	ErrInvalidSize = NewInvalidArgError("Malloc", "size must be positive")

	// ErrNullPointer indicates null pointer access
	ErrNullPointer = NewInvalidArgError("Memory", "null pointer")

	// ErrDoubleFree indicates double free attempt
	ErrDoubleFree = NewMemoryError("Free", "double free detected", nil)

	// ErrInvalidDevice indicates invalid device ID
	ErrInvalidDevice = NewInvalidArgError("SetDevice", "invalid device ID")

	// ErrNilKernel indicates a launch with no kernel function
	ErrNilKernel = NewLaunchError("Launch", "nil kernel", nil)
)

// IsMemoryError checks if an error is a memory error
func IsMemoryError(err error) bool {
	if e, ok := err.(*EmuError); ok {
		return e.Type == ErrTypeMemory
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*EmuError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsLaunchError checks if an error is a kernel launch error
func IsLaunchError(err error) bool {
	if e, ok := err.(*EmuError); ok {
		return e.Type == ErrTypeLaunch
	}
	return false
}
