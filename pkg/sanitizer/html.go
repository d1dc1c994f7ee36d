// Package sanitizer cleans HTML produced from user-supplied content.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Markup allowed in relayed email bodies: paragraphs and light formatting only.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
		)
	})
}

// SanitizeEmailHTML strips everything from s except paragraphs, line breaks
// and bold/italic markup. Attributes, links, scripts, styles and event
// handlers are removed. Escaped text stays escaped.
func SanitizeEmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}
