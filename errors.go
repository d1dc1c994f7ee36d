package contactform

import (
	"net/http"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/middlewares"
)

// Texts rendered by PlainTextErrorHandler.
const (
	TextInternalError    = "An error occurred while processing your request."
	TextTimeout          = "The request timed out."
	TextNotFound         = "Not Found"
	TextMethodNotAllowed = "Method Not Allowed"
)

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// AsHTTPError extracts the HTTPError from an error chain, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// PlainTextErrorHandler renders handler errors as text/plain:
//
//   - *HTTPError: its own status code and message
//   - *middlewares.TimeoutError: 503
//   - anything else, panics included: 500 with a generic message
//
// The cause is logged and never sent to the client.
func PlainTextErrorHandler() ErrorHandler {
	return func(c Context, err error) error {
		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			if httpErr.Code >= http.StatusInternalServerError {
				c.LogError("request failed", "status", httpErr.Code, "error", err)
			}
			return c.String(httpErr.Code, httpErr.Message)
		}

		if te, ok := middlewares.AsTimeoutError(err); ok {
			c.LogError("request timed out", "timeout", te.Duration.String())
			return c.String(http.StatusServiceUnavailable, TextTimeout)
		}

		c.LogError("unhandled error", "error", err)
		return c.String(http.StatusInternalServerError, TextInternalError)
	}
}

// NotFound answers unknown paths with a plain-text 404.
func NotFound(c Context) error {
	return c.String(http.StatusNotFound, TextNotFound)
}

// MethodNotAllowed answers known paths hit with the wrong method.
func MethodNotAllowed(c Context) error {
	return c.String(http.StatusMethodNotAllowed, TextMethodNotAllowed)
}
