// Package errors provides structured error handling for the expandtext
// widget kit.
//
// All failures in the core are programmer-usage errors surfaced
// synchronously: an unrecognized indicator variant, an invalid
// configuration value, or an attempt to force a horizontal layout. None of
// them are recovered. Errors raised asynchronously (inside a frame
// callback) go through the global handler via [Report].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid widget configuration, such as an
	// unrecognized indicator variant or a line cap below 1.
	KindConfig
	// KindOrientation indicates an attempt to force a horizontal layout on
	// the vertical-only widget.
	KindOrientation
	// KindMeasure indicates a text measurement failure.
	KindMeasure
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindOrientation:
		return "orientation"
	case KindMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the widget kit.
type Error struct {
	// Op is the operation that failed (e.g., "widget.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config returns a KindConfig error for op wrapping a formatted message.
func Config(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindConfig, Err: fmt.Errorf(format, args...)}
}

// Orientation returns a KindOrientation error for op.
func Orientation(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindOrientation, Err: fmt.Errorf(format, args...)}
}

// Measure returns a KindMeasure error for op wrapping err.
func Measure(op string, err error) *Error {
	return &Error{Op: op, Kind: KindMeasure, Err: err}
}

// ErrorHandler receives errors reported by the widget kit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
}
