// Package internal holds the HTTP hosting layer behind the contactform package:
// the App, the Router handlers declare routes on, the per-request Context,
// HTTPError and the graceful-shutdown runtime.
//
// Import "github.com/dmitrymomot/contactform" instead; it re-exports the
// public API.
//
// # Handlers
//
// Handlers receive their dependencies through constructors and declare routes:
//
//	func (h *Handler) Routes(r internal.Router) {
//	    r.POST("/contact-form", h.submit)
//	}
//
// A HandlerFunc returns an error instead of writing one. The error travels
// back up through the global middleware, so Timeout or a request logger can
// see it, and the outermost layer passes it to the configured ErrorHandler
// unless a response was already written.
//
// # Context
//
// Context embeds context.Context, so it can be handed to anything that takes
// a standard context, including mail senders that should observe request
// cancellation.
//
// # Runtime
//
// App.Run listens, serves and on SIGINT/SIGTERM drains in-flight requests
// within the shutdown timeout before running shutdown hooks in order.
package internal
