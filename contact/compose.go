package contact

import (
	"bytes"
	"html/template"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/mailer"
	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

// Tag attached to every relayed message so providers can group them.
const sourceTag = "contact-form"

// html/template escapes every field, so submitted markup arrives as text.
// Message lines are joined with <br> to keep the sender's line breaks.
var htmlBody = template.Must(template.New("body").Parse(
	`<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
`))

type bodyData struct {
	*Submission
	MessageLines []string
}

// composeEmail builds the message relayed to the receiver.
func composeEmail(cfg Config, sub *Submission) (*mailer.Email, error) {
	var buf bytes.Buffer
	err := htmlBody.Execute(&buf, bodyData{
		Submission:   sub,
		MessageLines: splitLines(sub.Message),
	})
	if err != nil {
		return nil, err
	}

	return &mailer.Email{
		From:    cfg.from(),
		To:      []string{strings.TrimSpace(cfg.ReceiverEmail)},
		ReplyTo: replyTo(sub.Email),
		Subject: sub.Subject,
		HTML:    sanitizer.SanitizeEmailHTML(buf.String()),
		Text:    textBody(sub),
		Tags:    mailer.Tags{"source": sourceTag},
	}, nil
}

// replyTo returns the submitter's address when it parses as one.
// The field is free text, and providers reject a malformed Reply-To.
func replyTo(s string) string {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Address
}

func textBody(sub *Submission) string {
	var b strings.Builder
	b.WriteString("Name: " + sub.Name + "\n")
	b.WriteString("Email: " + sub.Email + "\n")
	b.WriteString("Subject: " + sub.Subject + "\n\n")
	b.WriteString("Message:\n" + sub.Message + "\n")
	return b.String()
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
