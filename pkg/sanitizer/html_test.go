package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

func TestSanitizeEmailHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps paragraphs and strong",
			input:    `<p><strong>Name:</strong> Ann</p>`,
			expected: `<p><strong>Name:</strong> Ann</p>`,
		},
		{
			name:     "keeps line breaks and emphasis",
			input:    `<p>one<br>two <em>three</em></p>`,
			expected: `<p>one<br>two <em>three</em></p>`,
		},
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: `<p>Hello</p>`,
		},
		{
			name:     "strips event handlers",
			input:    `<p onclick="alert(1)">Hi</p>`,
			expected: `<p>Hi</p>`,
		},
		{
			name:     "strips links but keeps text",
			input:    `<p><a href="javascript:alert('xss')">click</a></p>`,
			expected: `<p>click</p>`,
		},
		{
			name:     "strips images",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: ``,
		},
		{
			name:     "strips style attributes",
			input:    `<p style="background:url(javascript:alert(1))">content</p>`,
			expected: `<p>content</p>`,
		},
		{
			name:     "keeps escaped text escaped",
			input:    `<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>`,
			expected: `<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>`,
		},
		{
			name:     "plain text untouched",
			input:    "normal text without HTML",
			expected: "normal text without HTML",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeEmailHTML(tt.input))
		})
	}
}
