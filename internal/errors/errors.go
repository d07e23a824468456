package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	ErrTypeLoad     ErrorType = "LOAD"
	ErrTypeSchema   ErrorType = "SCHEMA"
	ErrTypeRender   ErrorType = "RENDER"
	ErrTypeConfig   ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for the error taxonomy

// NewNotFoundError creates an error for an input path that does not exist.
// The path is part of the message so the top-level diagnostic names it.
func NewNotFoundError(path string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("input file %q not found", path), nil).
		WithContext("path", path)
}

// NewLoadError creates an error for a file that exists but cannot be
// parsed as a spreadsheet, wrapping the underlying parse failure.
func NewLoadError(path string, cause error) *AppError {
	return NewAppError(ErrTypeLoad, fmt.Sprintf("failed to load spreadsheet %q", path), cause).
		WithContext("path", path)
}

// NewSchemaError creates an error for a required column missing from the
// loaded sheet.
func NewSchemaError(column string) *AppError {
	return NewAppError(ErrTypeSchema, fmt.Sprintf("required column %q not found", column), nil).
		WithContext("column", column)
}

// NewRenderError creates an error for a report artifact that could not be
// written.
func NewRenderError(path string, cause error) *AppError {
	return NewAppError(ErrTypeRender, fmt.Sprintf("failed to write report to %q", path), cause).
		WithContext("path", path)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
