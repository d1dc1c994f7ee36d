package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactform/internal"
)

// RequestLogger returns middleware that logs one record per request with
// method, path, status, size and duration. Register it after RequestID so
// the record carries the request ID. A returned error is rendered before the
// record is written, so failed requests log the status the client received.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.RenderError(err)
			}

			rw := c.ResponseWriter()
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Duration("duration", time.Since(start)),
			}
			if rw.Written() {
				attrs = append(attrs, slog.Int("status", rw.Status()), slog.Int64("size", rw.Size()))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				c.LogWarn("request failed", attrs...)
				return err
			}

			c.LogInfo("request completed", attrs...)
			return nil
		}
	}
}
