package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategorySlot     Category = "slot"
	CategoryDocument Category = "document"
	CategoryPublish  Category = "publish"
	CategoryServer   Category = "server"
)

// Location represents a position in a source file.
type Location struct {
	File string
	Line int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// SlotError is a structured error with a code, category and fix hint.
type SlotError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (config, slot, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Location is the file the error refers to, if any.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SlotError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SlotError) Unwrap() error {
	return e.Wrapped
}

// Is matches another *SlotError with the same code, so callers can write
// errors.Is(err, errors.New("E201")).
func (e *SlotError) Is(target error) bool {
	t, ok := target.(*SlotError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation adds a file location to the error.
func (e *SlotError) WithLocation(file string, line int) *SlotError {
	e.Location = &Location{File: file, Line: line}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SlotError) WithSuggestion(s string) *SlotError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *SlotError) WithDetail(d string) *SlotError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with formatting.
func (e *SlotError) WithDetailf(format string, args ...any) *SlotError {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// Wrap wraps another error.
func (e *SlotError) Wrap(err error) *SlotError {
	e.Wrapped = err
	if e.Detail == "" && err != nil {
		e.Detail = err.Error()
	}
	return e
}

// New creates a SlotError from a registered error code.
func New(code string) *SlotError {
	template, ok := registry[code]
	if !ok {
		return &SlotError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SlotError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new SlotError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SlotError {
	return &SlotError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SlotError.
// An error that already contains a SlotError is returned as that SlotError.
func FromError(err error, code string) *SlotError {
	if err == nil {
		return nil
	}
	var se *SlotError
	if stderrors.As(err, &se) {
		return se
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first SlotError in err's chain, or "".
func Code(err error) string {
	var se *SlotError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}
