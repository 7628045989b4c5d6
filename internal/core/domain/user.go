package domain

import (
	"unicode"
	"unicode/utf8"
)

// User models a credential holder. PasswordHash is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidPassword reports whether the password satisfies the strength policy:
// at least MinPasswordLength characters with at least one lowercase letter,
// one uppercase letter, one digit, and one symbol. Underscore does not count
// as a symbol.
func ValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && r != '_':
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
