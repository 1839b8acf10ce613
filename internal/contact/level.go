package contact

import (
	"fmt"
	"strings"
)

const (
	PriorityConstraints      = "Priority should be one of: NONE, LOW, MEDIUM, HIGH (case-insensitive)"
	IncomeBracketConstraints = "Income bracket should be one of: low, middle, high (case-insensitive)"
)

// Priority ranks how urgently a contact should be followed up.
// The zero value is PriorityNone.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var priorityNames = [...]string{"NONE", "LOW", "MEDIUM", "HIGH"}

// ParsePriority accepts a level name in any letter case.
func ParsePriority(raw string) (Priority, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for i, name := range priorityNames {
		if s == name {
			return Priority(i), nil
		}
	}
	return PriorityNone, invalid("priority", raw, PriorityConstraints)
}

// IsValidPriority reports whether ParsePriority would accept raw.
func IsValidPriority(raw string) bool {
	_, err := ParsePriority(raw)
	return err == nil
}

// MustPriority is ParsePriority for trusted input; it panics on a bad value.
func MustPriority(raw string) Priority { return must(ParsePriority(raw)) }

func (p Priority) String() string {
	if p < PriorityNone || p > PriorityHigh {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// IncomeBracket is a coarse income band. Contacts carry it as an optional
// value, so there is no "unset" bracket.
type IncomeBracket int

const (
	IncomeLow IncomeBracket = iota + 1
	IncomeMiddle
	IncomeHigh
)

var incomeNames = map[IncomeBracket][2]string{
	IncomeLow:    {"LOW", "Low Income"},
	IncomeMiddle: {"MIDDLE", "Middle Income"},
	IncomeHigh:   {"HIGH", "High Income"},
}

// ParseIncomeBracket accepts low, middle or high in any letter case.
func ParseIncomeBracket(raw string) (IncomeBracket, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for b, names := range incomeNames {
		if s == names[0] {
			return b, nil
		}
	}
	return 0, invalid("income bracket", raw, IncomeBracketConstraints)
}

// IsValidIncomeBracket reports whether ParseIncomeBracket would accept raw.
func IsValidIncomeBracket(raw string) bool {
	_, err := ParseIncomeBracket(raw)
	return err == nil
}

// MustIncomeBracket is ParseIncomeBracket for trusted input; it panics on a bad value.
func MustIncomeBracket(raw string) IncomeBracket { return must(ParseIncomeBracket(raw)) }

// String returns the enum name used on disk, e.g. "MIDDLE".
func (b IncomeBracket) String() string {
	if names, ok := incomeNames[b]; ok {
		return names[0]
	}
	return fmt.Sprintf("IncomeBracket(%d)", int(b))
}

// Display returns the label shown to users, e.g. "Middle Income".
func (b IncomeBracket) Display() string {
	if names, ok := incomeNames[b]; ok {
		return names[1]
	}
	return b.String()
}
