// Package logger builds the service's structured loggers on top of log/slog.
//
// Loggers emit JSON to stdout. Context extractors attach request-scoped values
// (request IDs) to every record:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "email sent")
//	// {"level":"INFO","msg":"email sent","service":"contactform","request_id":"..."}
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a DSN is
// configured, and falls back to stdout-only logging otherwise:
//
//	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor())
//	defer logger.SentryFlush(cfg.Sentry)(context.Background())
//
// NewNope returns a logger that discards everything; it is the default for
// components that were not given a logger.
package logger
