package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
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
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// fromDomainError maps engine failures onto transport errors. Validation and
// timezone lookups are the caller's fault; anything else is ours.
func fromDomainError(err error) *HTTPError {
	switch code := apperrors.CodeOf(err); code {
	case apperrors.CodeInvalidInput, apperrors.CodeUnknownTimeZone:
		return NewHTTPError(http.StatusBadRequest, code, errMessage(err), err)
	case apperrors.CodeUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, code, errMessage(err), err)
	case apperrors.CodeInvalidToken:
		return NewHTTPError(http.StatusForbidden, code, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return fromDomainError(err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
