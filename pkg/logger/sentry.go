package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels are stored in Sentry (warn stores warnings and errors).
	MinLevel slog.Level
}

// Enabled reports whether a DSN is configured.
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

// NewWithSentry creates a logger that writes to stdout and Sentry.
// Without a DSN, or when the SDK fails to initialize, only stdout is used.
// Errors create Sentry issues; records at MinLevel and above are stored as logs.
func NewWithSentry(cfg Config, scfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := jsonHandler(os.Stdout, cfg)

	if !scfg.Enabled() {
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         scfg.DSN,
		Environment: scfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if scfg.MinLevel >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}

	sh := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(fanoutHandler{stdout, sh}, extractors...))
}

// SentryFlush returns a shutdown hook that flushes buffered Sentry events.
// It is a no-op when Sentry is not configured.
func SentryFlush(scfg SentryConfig) func(context.Context) error {
	return func(ctx context.Context) error {
		if !scfg.Enabled() {
			return nil
		}
		timeout := 2 * time.Second
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		sentry.Flush(timeout)
		return nil
	}
}
