package httpclient

import (
	goerrors "errors"
	"fmt"

	"github.com/deespora/backoffice/internal/errors"
	"github.com/tidwall/gjson"
)

// Error represents a non-2xx response from an upstream service
type Error struct {
	*errors.InternalError
	StatusCode int
	Response   []byte
}

func (e *Error) Unwrap() error {
	return e.InternalError.Unwrap()
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.InternalError.Error(), e.StatusCode)
}

// Message returns the message the upstream put in its JSON body, if any.
// The backend uses both "message" and "error".
func (e *Error) Message() string {
	if !gjson.ValidBytes(e.Response) {
		return ""
	}
	for _, path := range []string{"message", "error", "error.message"} {
		if v := gjson.GetBytes(e.Response, path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// NewError creates a new HTTP client error
func NewError(statusCode int, response []byte) *Error {
	return &Error{
		InternalError: errors.New(errors.ErrCodeHTTPClient, "http client error"),
		StatusCode:    statusCode,
		Response:      response,
	}
}

// IsHTTPError checks if an error is an HTTP client error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if goerrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
