package contact

import (
	"regexp"
	"strconv"
	"strings"
)

// AgeConstraints is shown when an age is rejected.
const AgeConstraints = "Age should be between 10 and 120 (inclusive)."

const (
	MinAge = 10
	MaxAge = 120
)

var agePattern = regexp.MustCompile(`^\d{1,3}$`)

// Age is an optional age in years. The zero value is "unset".
type Age struct{ years int }

// IsValidAge accepts the empty string or up to three digits whose
// numeric value lies in [MinAge, MaxAge].
func IsValidAge(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	if !agePattern.MatchString(raw) {
		return false
	}
	n, err := strconv.Atoi(raw)
	return err == nil && n >= MinAge && n <= MaxAge
}

// NewAge parses raw. Leading zeros are dropped, so "025" and "25" are equal.
func NewAge(raw string) (Age, error) {
	if !IsValidAge(raw) {
		return Age{}, invalid("age", raw, AgeConstraints)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Age{}, nil
	}
	n, _ := strconv.Atoi(raw)
	return Age{years: n}, nil
}

// MustAge is NewAge for trusted input; it panics on a bad value.
func MustAge(raw string) Age { return must(NewAge(raw)) }

// Years returns the age, or 0 when unset.
func (a Age) Years() int { return a.years }

// IsZero reports whether no age is recorded.
func (a Age) IsZero() bool { return a.years == 0 }

func (a Age) String() string {
	if a.years == 0 {
		return ""
	}
	return strconv.Itoa(a.years)
}
