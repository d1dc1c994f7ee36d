// Package contact turns contact form posts into email.
//
// A submission is a JSON object with name, email, subject and message. All
// four must be present and non-empty; nothing else is validated. A valid
// submission is rendered into an HTML body, with every field escaped, plus a
// plain-text alternative, and handed to a mailer.Sender exactly once.
//
// Status codes and texts:
//
//	200  Thank you for your message! We will get back to you shortly.
//	400  All fields (name, email, subject, message) are required.
//	500  An error occurred while processing your request.
//
// 500 covers malformed JSON, an oversized body, missing sender or receiver
// configuration and provider failures. Causes are logged, never returned.
//
// Handler.Handle works on a raw body and is shared by the HTTP route and
// the Lambda entry point.
package contact
