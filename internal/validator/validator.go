// Package validator checks a candidate employee record before it reaches the store.
package validator

import (
	"regexp"
	"strings"

	"github.com/csg33k/roster/internal/domain"
)

// Message is the notification shown when a submitted record is rejected.
const Message = "Please fill all fields correctly."

// emailPattern: one "@", a "." somewhere after it, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Valid reports whether e has every required field and a well-formed email.
func Valid(e domain.Employee) bool {
	return notBlank(e.FirstName) &&
		notBlank(e.LastName) &&
		ValidEmail(e.Email) &&
		notBlank(e.Department) &&
		notBlank(e.Role)
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
