package errors

import (
	"errors"
	"net/http"
)

// AppError encodes domain specific error details. Status is the HTTP status
// the failure should surface with; zero means 500.
type AppError struct {
	Code    string
	Message string
	Status  int
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Upstream builds an AppError that forwards a third-party failure.
func Upstream(code, message string, status int, details string, err error) error {
	return &AppError{Code: code, Message: message, Status: status, Details: details, Err: err}
}

// IsCode helps callers differentiate failures.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// StatusOf returns the HTTP status attached to err, or 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status > 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
