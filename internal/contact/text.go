package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Constraint messages shown to the user when a free-text field is rejected.
const (
	NameConstraints = "Names should not be blank."

	PhoneConstraints = "Phone numbers should only contain numbers, and it should be between 4 to 17 digits long"

	AddressConstraints = "Addresses should only contain alphanumeric characters, spaces, and these special characters: " +
		"comma (,), period (.), hyphen (-), hash (#), forward slash (/), and it should not be blank"

	OccupationConstraints = "Occupation should not be blank or start with whitespace."
)

const (
	minPhoneDigits = 4
	maxPhoneDigits = 17
)

var (
	whitespaceRun = regexp.MustCompile(`[ \t\n\r]+`)
	spaceRun      = regexp.MustCompile(` {2,}`)
	phonePattern  = regexp.MustCompile(`^[\d\s]{4,}$`)
	addrPattern   = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ,.\-#/]*$`)
)

// Name is a contact's display name with whitespace runs collapsed.
type Name struct{ value string }

// IsValidName reports whether raw has at least one non-whitespace character.
func IsValidName(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// NewName normalizes raw and validates it.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, invalid("name", raw, NameConstraints)
	}
	return Name{value: strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))}, nil
}

// MustName is NewName for trusted input; it panics on a bad value.
func MustName(raw string) Name { return must(NewName(raw)) }

func (n Name) String() string { return n.value }

// Phone holds 4 to 17 digits with all whitespace removed.
type Phone struct{ value string }

// IsValidPhone reports whether raw is made of digits and whitespace only
// and carries between 4 and 17 digits.
func IsValidPhone(raw string) bool {
	if !phonePattern.MatchString(raw) {
		return false
	}
	n := len(stripSpace(raw))
	return n >= minPhoneDigits && n <= maxPhoneDigits
}

// NewPhone validates raw and strips its whitespace.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, invalid("phone", raw, PhoneConstraints)
	}
	return Phone{value: stripSpace(raw)}, nil
}

// MustPhone is NewPhone for trusted input; it panics on a bad value.
func MustPhone(raw string) Phone { return must(NewPhone(raw)) }

func (p Phone) String() string { return p.value }

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Address is an optional postal address. The zero value is "unset".
type Address struct{ value string }

// IsValidAddress accepts the empty string, or text that starts with a
// letter or digit and otherwise holds only letters, digits, spaces and , . - # /.
func IsValidAddress(raw string) bool {
	return raw == "" || addrPattern.MatchString(raw)
}

// NewAddress validates raw and collapses runs of spaces.
func NewAddress(raw string) (Address, error) {
	if !IsValidAddress(raw) {
		return Address{}, invalid("address", raw, AddressConstraints)
	}
	return Address{value: strings.TrimSpace(spaceRun.ReplaceAllString(raw, " "))}, nil
}

// MustAddress is NewAddress for trusted input; it panics on a bad value.
func MustAddress(raw string) Address { return must(NewAddress(raw)) }

func (a Address) String() string { return a.value }

// IsZero reports whether no address is recorded.
func (a Address) IsZero() bool { return a.value == "" }

// Occupation is an optional free-text job title. The zero value is "unset".
type Occupation struct{ value string }

// IsValidOccupation accepts the empty string or any text whose first
// character is not whitespace.
func IsValidOccupation(raw string) bool {
	if raw == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return !unicode.IsSpace(r)
}

// NewOccupation trims raw. Whitespace-only input yields the unset value.
func NewOccupation(raw string) (Occupation, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidOccupation(trimmed) {
		return Occupation{}, invalid("occupation", raw, OccupationConstraints)
	}
	return Occupation{value: trimmed}, nil
}

// MustOccupation is NewOccupation for trusted input; it panics on a bad value.
func MustOccupation(raw string) Occupation { return must(NewOccupation(raw)) }

func (o Occupation) String() string { return o.value }

// IsZero reports whether no occupation is recorded.
func (o Occupation) IsZero() bool { return o.value == "" }
