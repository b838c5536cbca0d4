package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/h0m10/citypulse-api/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message, details string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Details: details, Err: err}
}

// fromDomainError maps a domain failure onto the wire error, keeping its status and details.
func fromDomainError(err error) error {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return err
	}
	return &HTTPError{
		Status:  apperrors.StatusOf(err),
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
