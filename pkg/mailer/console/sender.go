// Package console provides a mailer.Sender that writes messages to the log
// instead of delivering them. Intended for local development.
package console

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
)

// Sender logs every email at info level and the bodies at debug level.
type Sender struct {
	logger *slog.Logger
}

// New creates a console sender. A nil logger discards output.
func New(l *slog.Logger) *Sender {
	if l == nil {
		l = logger.NewNope()
	}
	return &Sender{logger: l}
}

// Send implements mailer.Sender. It never fails.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	s.logger.InfoContext(ctx, "console: email sent (dev mode)",
		slog.String("from", email.From),
		slog.String("to", strings.Join(email.To, ", ")),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
	)
	s.logger.DebugContext(ctx, "console: email body",
		slog.String("html", email.HTML),
		slog.String("text", email.Text),
	)
	return nil
}
