package mailer

import (
	"fmt"
	"strings"
)

// Tags are provider-specific key/value labels attached to a message.
type Tags map[string]string

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Tags    Tags     // Provider-specific tags/categories
	From    string   // Sender address, optionally "Name <addr>"
	ReplyTo string   // Reply-to address
	Subject string   // Email subject
	HTML    string   // HTML body content
	Text    string   // Plain text alternative
	To      []string // Recipients (at least one required)
}

// Validate checks the fields every provider needs.
func (e *Email) Validate() error {
	switch {
	case e == nil:
		return ErrNoContent
	case e.From == "":
		return ErrNoSender
	case len(e.To) == 0 || allBlank(e.To):
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "":
		return ErrNoContent
	}
	return nil
}

func allBlank(v []string) bool {
	for _, s := range v {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
