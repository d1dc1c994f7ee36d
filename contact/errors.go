package contact

import "errors"

var (
	// ErrInvalidJSON is returned for a body that is not a JSON object with string fields.
	ErrInvalidJSON = errors.New("contact: invalid JSON body")

	// ErrMissingFields is returned when a required field is absent or empty.
	ErrMissingFields = errors.New("contact: missing required fields")

	// ErrSenderNotConfigured means SENDER_EMAIL is not set.
	ErrSenderNotConfigured = errors.New("contact: sender email not configured")

	// ErrReceiverNotConfigured means RECEIVER_EMAIL is not set.
	ErrReceiverNotConfigured = errors.New("contact: receiver email not configured")

	// ErrBodyRead is returned when the request body cannot be read, e.g. it is too large.
	ErrBodyRead = errors.New("contact: failed to read request body")
)
