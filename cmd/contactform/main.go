package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/contactform"
	"github.com/dmitrymomot/contactform/contact"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/mailer/provider"
)

func main() {
	cfg, err := config.Load[Config]()
	if err != nil {
		logger.New().Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor())

	sender, err := provider.New(context.Background(), cfg.Mail, log)
	if err != nil {
		log.Error("failed to create mail sender", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := newApp(cfg, sender, log)

	// Blocks until SIGINT/SIGTERM, then drains requests and flushes Sentry.
	if err := app.Run(cfg.listenAddress(),
		contactform.Logger(log),
		contactform.ShutdownTimeout(cfg.ShutdownTimeout),
		contactform.ShutdownHook(logger.SentryFlush(cfg.Sentry)),
	); err != nil {
		log.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newApp wires the HTTP surface: middleware, the contact handler and probes.
func newApp(cfg Config, sender mailer.Sender, log *slog.Logger) *contactform.App {
	return contactform.New(
		contactform.WithCustomLogger(log),
		contactform.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		contactform.WithErrorHandler(contactform.PlainTextErrorHandler()),
		contactform.WithNotFoundHandler(contactform.NotFound),
		contactform.WithMethodNotAllowedHandler(contactform.MethodNotAllowed),
		contactform.WithHealthChecks(
			contactform.WithReadinessCheck("mailer", contact.ConfigCheck(cfg.Contact)),
		),
		contactform.WithHandlers(
			contact.NewHandler(cfg.Contact, sender,
				contact.WithLogger(log),
				contact.WithPath(cfg.ContactPath),
				contact.WithMaxBodyBytes(cfg.MaxBodyBytes),
			),
		),
	)
}
