package security

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidEmail checks the syntactic shape of an email address. There is no
// MX or deliverability check.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsStrongPassword enforces the registration password policy: at least 8
// characters with uppercase, lowercase, digit and special character.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	return upper && lower && digit && special
}
