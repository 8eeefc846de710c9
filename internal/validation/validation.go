// Package validation holds the pure input checks applied before any
// credential ever reaches the hasher or the database.
package validation

import "regexp"

// MinPasswordLen is the minimum accepted password length in bytes.
const MinPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s looks like local-part@domain.tld. The final
// label must be at least two alphabetic characters. No DNS lookup is done.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether the password meets the minimum length.
func ValidPassword(s string) bool {
	return len(s) >= MinPasswordLen
}
