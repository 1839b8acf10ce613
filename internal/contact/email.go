package contact

import (
	"regexp"
	"strings"
)

// EmailConstraints is shown when an email address is rejected.
const EmailConstraints = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, " +
	"excluding the parentheses, (+_.-). The local-part may not start or end with any special " +
	"characters, and may not contain consecutive periods.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain " +
	"labels separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any.\n" +
	"3. The email should not exceed 100 characters."

const maxEmailLength = 100

var (
	emailLocal  = regexp.MustCompile(`^[A-Za-z0-9]+(?:[+_.\-]+[A-Za-z0-9]+)*$`)
	emailDomain = regexp.MustCompile(`^(?:[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*\.)*[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*$`)
)

// Email is an optional email address. The zero value is "unset".
type Email struct{ value string }

// IsValidEmail accepts the empty string or a local@domain address of at
// most 100 characters whose last domain label has two adjacent alphanumerics.
func IsValidEmail(raw string) bool {
	if raw == "" {
		return true
	}
	if len(raw) > maxEmailLength {
		return false
	}
	at := strings.LastIndexByte(raw, '@')
	if at <= 0 {
		return false
	}
	local, domain := raw[:at], raw[at+1:]
	if !emailLocal.MatchString(local) || strings.Contains(local, "..") {
		return false
	}
	if !emailDomain.MatchString(domain) {
		return false
	}
	last := domain[strings.LastIndexByte(domain, '.')+1:]
	for _, part := range strings.Split(last, "-") {
		if len(part) >= 2 {
			return true
		}
	}
	return false
}

// NewEmail validates raw.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, invalid("email", raw, EmailConstraints)
	}
	return Email{value: raw}, nil
}

// MustEmail is NewEmail for trusted input; it panics on a bad value.
func MustEmail(raw string) Email { return must(NewEmail(raw)) }

func (e Email) String() string { return e.value }

// IsZero reports whether no email is recorded.
func (e Email) IsZero() bool { return e.value == "" }
