// Package middlewares provides the HTTP middleware the contact form service
// runs behind.
//
//   - RequestID reuses an upstream request ID or generates a UUID, stores it
//     in the request context and echoes it as X-Request-ID. Pair it with
//     RequestIDExtractor so every log line carries request_id.
//   - RequestLogger logs one record per request.
//   - Recover converts panics into *PanicError.
//   - Timeout attaches a deadline to the request context and reports
//     *TimeoutError when the handler did not answer in time.
//   - CORS answers preflight requests for browser forms on other origins.
//
// A typical stack, outermost first:
//
//	app := contactform.New(
//	    contactform.WithCustomLogger(log),
//	    contactform.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	        middlewares.CORS(middlewares.WithAllowOrigins(origins...)),
//	        middlewares.Timeout(30*time.Second),
//	    ),
//	)
//
// PanicError and TimeoutError are meant for the app's ErrorHandler, which
// decides the status code and the text the client sees.
package middlewares
