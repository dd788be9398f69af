package security

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeInput strips markup and control characters from user-supplied
// text. It is applied to every free-form string (usernames, emails before
// lookup, report descriptions) before the value is persisted or compared.
func SanitizeInput(input string) string {
	cleaned := strictPolicy.Sanitize(input)
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)

	return strings.TrimSpace(cleaned)
}

// NormalizeEmail sanitizes and lowercases an email address for lookup and
// storage. Emails are compared case-insensitively throughout.
func NormalizeEmail(email string) string {
	return strings.ToLower(SanitizeInput(email))
}
