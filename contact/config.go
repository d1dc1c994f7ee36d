package contact

import (
	"context"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/health"
	"github.com/dmitrymomot/contactform/pkg/mailer"
)

// Config holds the addresses a submission is relayed between.
// Values are not checked at construction; a missing address surfaces as a
// failed submission and as an unhealthy readiness check.
type Config struct {
	SenderEmail   string `env:"SENDER_EMAIL"`
	SenderName    string `env:"SENDER_NAME"`
	ReceiverEmail string `env:"RECEIVER_EMAIL"`
}

// from returns the From header value, or "" when no sender address is set.
func (c Config) from() string {
	addr := strings.TrimSpace(c.SenderEmail)
	if addr == "" {
		return ""
	}
	return mailer.Recipient(c.SenderName, addr)
}

// ConfigCheck reports whether the sender and receiver addresses are set.
func ConfigCheck(cfg Config) health.CheckFunc {
	return func(context.Context) error {
		switch {
		case strings.TrimSpace(cfg.SenderEmail) == "":
			return ErrSenderNotConfigured
		case strings.TrimSpace(cfg.ReceiverEmail) == "":
			return ErrReceiverNotConfigured
		}
		return nil
	}
}
