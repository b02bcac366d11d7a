package apierrors

import (
	"errors"
	"fmt"
)

// AppError defines a standard application error.
type AppError struct {
	Code       string        // Application-specific error code
	Message    string        // User-friendly error message
	Category   ErrorCategory // Business or application
	StatusCode int           // Optional HTTP status override, 0 means "derive from Code"
	Err        error         // Original underlying error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		// Include cause for better internal logging
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithStatus pins the HTTP status used when the error reaches the HTTP layer.
func (e *AppError) WithStatus(statusCode int) *AppError {
	e.StatusCode = statusCode
	return e
}

// NewBusinessError creates an error for a violated business rule.
func NewBusinessError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryBusiness,
		Err:      cause,
	}
}

// NewApplicationError creates an error for a technical or infrastructure failure.
func NewApplicationError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryApplication,
		Err:      cause,
	}
}

// InvalidData is shorthand for the most common business error.
func InvalidData(message string) *AppError {
	return NewBusinessError(ErrCodeInvalidData, message, nil)
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return appErr.Code == code
	}
	return false
}
