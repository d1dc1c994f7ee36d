// Package provider selects and constructs the configured mailer.Sender.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/console"
	"github.com/dmitrymomot/contactform/pkg/mailer/resend"
	"github.com/dmitrymomot/contactform/pkg/mailer/sendgrid"
	"github.com/dmitrymomot/contactform/pkg/mailer/ses"
)

// Supported provider names.
const (
	SendGrid = "sendgrid"
	Resend   = "resend"
	SES      = "ses"
	Console  = "console"
)

// Config selects a provider and carries the settings of every provider.
// Only the selected provider's section is used.
type Config struct {
	Name     string `env:"MAIL_PROVIDER" envDefault:"sendgrid"`
	SendGrid sendgrid.Config
	Resend   resend.Config
	SES      ses.Config
}

// New builds the Sender named by cfg.Name.
// The logger is only used by the console provider.
func New(ctx context.Context, cfg Config, log *slog.Logger) (mailer.Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case SendGrid, "":
		return sendgrid.New(cfg.SendGrid), nil
	case Resend:
		return resend.New(cfg.Resend)
	case SES:
		return ses.NewFromConfig(ctx, cfg.SES)
	case Console:
		return console.New(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, cfg.Name)
	}
}
