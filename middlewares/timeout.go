package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/contactform/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that attaches a deadline to the request context.
//
// The handler runs on the request goroutine and is expected to observe the
// deadline through its context (mail senders do). When the deadline passes
// and the handler has not written a response, a TimeoutError is returned to
// the app's ErrorHandler. A handler that already answered keeps its answer.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)

			if c.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return err
			}

			c.LogWarn("request timeout", "timeout", timeout.String())
			return &TimeoutError{Duration: timeout, Err: err}
		}
	}
}
