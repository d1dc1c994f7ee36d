package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    sender mailer.Sender
//	}
//
//	func (h *ContactHandler) Routes(r contactform.Router) {
//	    r.POST("/contact-form", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func Timing(next contactform.HandlerFunc) contactform.HandlerFunc {
//	    return func(c contactform.Context) error {
//	        start := time.Now()
//	        err := next(c)
//	        c.LogDebug("handled", "duration", time.Since(start))
//	        return err
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
