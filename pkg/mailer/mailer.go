package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

// Mailer checks messages before handing them to a Sender and tags
// provider failures with ErrSendFailed.
// Mailer itself implements Sender, so it can wrap any provider transparently.
type Mailer struct {
	sender Sender
	logger *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used to report delivery results.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer around the given sender.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and makes a single delivery attempt.
// Validation errors are returned as-is; provider errors are joined with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	if err := m.sender.Send(ctx, email); err != nil {
		m.logger.ErrorContext(ctx, "error sending email", slog.String("error", err.Error()))
		return errors.Join(ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "email sent successfully", slog.Int("recipients", len(email.To)))
	return nil
}
