// Package validate holds the format and password policy rules applied to
// user input. Predicates are pure; the field checks return apperr
// validation errors naming the offending field.
package validate

import (
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"social_backend/internal/shared/apperr"
)

const (
	// MinPasswordLength is the minimum password length in characters.
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
	// MinPasswordScore is the minimum accepted zxcvbn score.
	MinPasswordScore = 2
)

// Client-visible messages.
const (
	MsgUsername     = "Please enter an alphanumeric username"
	MsgEmail        = "Invalid email"
	MsgWeakPassword = "Password is too weak. Please choose a stronger password"
	MsgShortPass    = "Password must be at least 8 characters"
	MsgLongPass     = "Password must be at most 72 bytes"
	MsgFirstName    = "Not valid first name (only alphabets are allowed)"
	MsgLastName     = "Not valid last name (only alphabets are allowed)"
	MsgDateOfBirth  = "Not valid date of birth"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// dateLayouts are tried in order when parsing a date of birth.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// IsAlphanumeric reports whether s is non-empty and made of ASCII letters and digits.
func IsAlphanumeric(s string) bool {
	return v.Var(s, "required,alphanum") == nil
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return v.Var(s, "required,email") == nil
}

// IsAlpha reports whether s is non-empty and made of ASCII letters.
func IsAlpha(s string) bool {
	return v.Var(s, "required,alpha") == nil
}

// ParsePastDate parses s as a calendar date and reports whether it is
// strictly before now.
func ParsePastDate(s string, now time.Time) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t, t.Before(now)
	}
	return time.Time{}, false
}

// PasswordStrength returns the zxcvbn score (0..4) of p. userInputs are
// treated as known words, so passwords built from them score lower.
func PasswordStrength(p string, userInputs ...string) int {
	return zxcvbn.PasswordStrength(p, userInputs).Score
}

// Username checks the username format.
func Username(s string) error {
	if !IsAlphanumeric(s) {
		return apperr.Validation("username", MsgUsername)
	}
	return nil
}

// Email checks the email format.
func Email(s string) error {
	if !IsEmail(s) {
		return apperr.Validation("email", MsgEmail)
	}
	return nil
}

// Password applies the password policy. The strength score and the length
// are independent gates; the score is checked first.
func Password(p string, userInputs ...string) error {
	if PasswordStrength(p, userInputs...) < MinPasswordScore {
		return apperr.Validation("password", MsgWeakPassword)
	}
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return apperr.Validation("password", MsgShortPass)
	}
	if len(p) > MaxPasswordBytes {
		return apperr.Validation("password", MsgLongPass)
	}
	return nil
}

// FirstName checks an alphabetic first name.
func FirstName(s string) error {
	if !IsAlpha(s) {
		return apperr.Validation("firstName", MsgFirstName)
	}
	return nil
}

// LastName checks an alphabetic last name.
func LastName(s string) error {
	if !IsAlpha(s) {
		return apperr.Validation("lastName", MsgLastName)
	}
	return nil
}

// DateOfBirth parses s and requires it to be in the past.
func DateOfBirth(s string, now time.Time) (time.Time, error) {
	t, ok := ParsePastDate(s, now)
	if !ok {
		return time.Time{}, apperr.Validation("dob", MsgDateOfBirth)
	}
	return t, nil
}
