package mailer

import "errors"

var (
	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrUnknownProvider indicates an unsupported provider name was configured.
	ErrUnknownProvider = errors.New("unknown mail provider")
)
