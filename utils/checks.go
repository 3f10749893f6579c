package utils

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

/**
 * This file is the single home of the field-format rules. The mobile client
 * and both backend variants used to carry their own diverging copies of the
 * password/age/email checks; everything now validates through here.
 */

const (
	MinAge            = 12
	MinUsernameLength = 3
	MinPasswordLength = 6
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{9,15}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func IsValidUsername(username string) bool {
	// characters, not bytes: "ñoño" is four characters
	return utf8.RuneCountInString(username) >= MinUsernameLength
}

// IsValidPassword applies the strictest of the old per-call-site rules:
// minimum length plus at least one uppercase, one lowercase, one digit and
// one symbol.
func IsValidPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsSpace(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
