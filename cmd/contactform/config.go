package main

import (
	"strings"
	"time"

	"github.com/dmitrymomot/contactform/contact"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer/provider"
)

type Config struct {
	Address string `env:"ADDRESS" envDefault:":8080"`
	// Set by the Azure Functions host when this binary runs as a custom handler.
	FunctionsPort string `env:"FUNCTIONS_CUSTOMHANDLER_PORT"`

	ContactPath     string        `env:"CONTACT_PATH" envDefault:"/contact-form"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Contact contact.Config
	Mail    provider.Config
	Log     logger.Config
	Sentry  logger.SentryConfig
}

// listenAddress prefers the port handed over by the Azure Functions host.
func (c Config) listenAddress() string {
	if port := strings.TrimSpace(c.FunctionsPort); port != "" {
		return ":" + port
	}
	return c.Address
}
