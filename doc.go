// Package contactform hosts a contact form endpoint that relays submissions
// as email.
//
// The package re-exports the small HTTP layer from internal: an App built on
// chi, handlers that declare routes on a Router, a per-request Context and
// graceful shutdown. The submission logic lives in package contact and the
// delivery providers under pkg/mailer.
//
// # Quick Start
//
//	sender, err := provider.New(ctx, cfg.Mail, log)
//	if err != nil {
//	    return err
//	}
//
//	app := contactform.New(
//	    contactform.WithCustomLogger(log),
//	    contactform.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	    contactform.WithErrorHandler(contactform.PlainTextErrorHandler()),
//	    contactform.WithHandlers(contact.NewHandler(cfg.Contact, sender)),
//	)
//
//	return app.Run(cfg.Address, contactform.Logger(log))
//
// # Handlers
//
// Handlers implement [Handler] and get their dependencies from constructors:
//
//	func (h *Handler) Routes(r contactform.Router) {
//	    r.POST("/contact-form", h.submit)
//	}
//
// A [HandlerFunc] may return an error instead of writing a response. The
// error passes back up through the global middleware and is rendered by the
// [ErrorHandler]; [PlainTextErrorHandler] never exposes the cause.
package contactform
