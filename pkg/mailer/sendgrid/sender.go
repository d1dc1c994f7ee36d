// Package sendgrid implements mailer.Sender on top of the SendGrid v3 mail API.
package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"

	sg "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dmitrymomot/contactform/pkg/mailer"
)

const sendEndpoint = "/v3/mail/send"

// ErrUnexpectedStatus indicates SendGrid answered with a non-2xx status.
// The SendGrid client does not treat these as transport errors, so the
// sender converts them.
var ErrUnexpectedStatus = errors.New("sendgrid: unexpected response status")

// Sender implements mailer.Sender using the SendGrid API.
type Sender struct {
	config Config
}

// New creates a new SendGrid sender.
func New(cfg Config) *Sender {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg := s.buildMessage(email)

	// A request is built per call: the SDK client mutates its shared request body.
	req := sg.GetRequest(s.config.APIKey, sendEndpoint, s.config.Host)
	req.Method = "POST"
	req.Body = sgmail.GetRequestBody(msg)

	resp, err := sg.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to send email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, resp.Body)
	}

	return nil
}

func (s *Sender) buildMessage(email *mailer.Email) *sgmail.SGMailV3 {
	msg := sgmail.NewV3Mail()
	msg.SetFrom(address(email.From))
	msg.Subject = email.Subject

	p := sgmail.NewPersonalization()
	for _, to := range email.To {
		p.AddTos(address(to))
	}
	msg.AddPersonalizations(p)

	// SendGrid requires text/plain to precede text/html.
	if email.Text != "" {
		msg.AddContent(sgmail.NewContent("text/plain", email.Text))
	}
	msg.AddContent(sgmail.NewContent("text/html", email.HTML))

	if email.ReplyTo != "" {
		msg.SetReplyTo(address(email.ReplyTo))
	}

	if len(s.config.Categories) > 0 {
		msg.AddCategories(s.config.Categories...)
	}

	if len(email.Tags) > 0 {
		keys := make([]string, 0, len(email.Tags))
		for k := range email.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg.SetCustomArg(k, email.Tags[k])
		}
	}

	return msg
}

// address splits "Name <addr>" into SendGrid's email type.
// Unparseable input is passed through as a bare address and left for the API to reject.
func address(s string) *sgmail.Email {
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return sgmail.NewEmail("", s)
	}
	return sgmail.NewEmail(parsed.Name, parsed.Address)
}
