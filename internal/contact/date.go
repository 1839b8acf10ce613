package contact

import (
	"regexp"
	"strings"
	"time"
)

// LastContactedConstraints is shown when a last-contacted date is rejected.
const LastContactedConstraints = "Last contacted date should be in YYYY-MM-DD format (e.g., 2025-09-20), " +
	"should be a valid calendar date, and cannot be a future date."

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// today is replaced in tests to pin "now".
var today = func() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LastContactedDate is the calendar day a contact was last reached.
// The zero value is "unset".
type LastContactedDate struct{ day time.Time }

// IsValidLastContactedDate accepts the empty string or a real YYYY-MM-DD
// calendar date that is not after today.
func IsValidLastContactedDate(raw string) bool {
	_, ok := parseDay(strings.TrimSpace(raw))
	return ok
}

func parseDay(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	if !datePattern.MatchString(raw) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if t.After(today()) {
		return time.Time{}, false
	}
	return t, true
}

// NewLastContactedDate parses raw as YYYY-MM-DD.
func NewLastContactedDate(raw string) (LastContactedDate, error) {
	t, ok := parseDay(strings.TrimSpace(raw))
	if !ok {
		return LastContactedDate{}, invalid("last contacted date", raw, LastContactedConstraints)
	}
	return LastContactedDate{day: t}, nil
}

// MustLastContactedDate is NewLastContactedDate for trusted input; it panics on a bad value.
func MustLastContactedDate(raw string) LastContactedDate { return must(NewLastContactedDate(raw)) }

// Time returns the date at midnight UTC, or the zero time when unset.
func (d LastContactedDate) Time() time.Time { return d.day }

// IsZero reports whether no date is recorded.
func (d LastContactedDate) IsZero() bool { return d.day.IsZero() }

// String returns YYYY-MM-DD, or "" when unset.
func (d LastContactedDate) String() string {
	if d.day.IsZero() {
		return ""
	}
	return d.day.Format(dateLayout)
}

// Display returns String, or "N/A" when unset.
func (d LastContactedDate) Display() string {
	if d.day.IsZero() {
		return "N/A"
	}
	return d.String()
}
