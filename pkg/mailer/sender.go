package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and makes exactly one delivery attempt.
type Sender interface {
	// Send delivers an email message.
	// Returns an error if the provider rejects the message or cannot be reached.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
