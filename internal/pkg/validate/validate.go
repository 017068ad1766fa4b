// Package validate holds the pure input checks shared by the public
// submission endpoints. No state, no store access.
package validate

import (
	"regexp"
	"strings"
)

// emailRE is the same loose local@domain.tld shape the submission forms check.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRE.MatchString(s)
}

// NonBlank reports whether s contains any non-whitespace character.
func NonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// AnySelection reports whether at least one of the given sets is non-empty.
func AnySelection(sets ...[]string) bool {
	for _, set := range sets {
		if len(set) > 0 {
			return true
		}
	}
	return false
}
