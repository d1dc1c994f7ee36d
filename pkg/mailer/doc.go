// Package mailer defines the delivery boundary of the service.
//
// A Sender is anything that can deliver one prepared Email. Providers live in
// sub-packages (sendgrid, resend, ses, console) and are selected at startup;
// tests substitute a mock or a SenderFunc.
//
//	sender := sendgrid.New(sendgrid.Config{APIKey: os.Getenv("SENDGRID_API_KEY")})
//	m := mailer.New(sender, mailer.WithLogger(log))
//
//	err := m.Send(ctx, &mailer.Email{
//		From:    "site@example.com",
//		To:      []string{"owner@example.com"},
//		Subject: "Hello",
//		HTML:    "<p>Hello!</p>",
//	})
//	if errors.Is(err, mailer.ErrSendFailed) {
//		// provider rejected the message or was unreachable
//	}
//
// Mailer validates the message first: a missing sender, recipient, subject or
// HTML body is reported with ErrNoSender, ErrNoRecipient, ErrNoSubject or
// ErrNoContent and the provider is not called. Exactly one delivery attempt is
// made; retries are left to the caller.
package mailer
