// Package parser turns a line of user input into a command.
//
// A line is a command word followed by an argument string. Arguments are
// split on prefix markers such as "n/" and "p/"; text before the first
// marker is the preamble.
package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Prefix marks the start of a field value in an argument string.
type Prefix string

const (
	PrefixName          Prefix = "n/"
	PrefixPhone         Prefix = "p/"
	PrefixEmail         Prefix = "e/"
	PrefixAddress       Prefix = "a/"
	PrefixOccupation    Prefix = "o/"
	PrefixTag           Prefix = "t/"
	PrefixPriority      Prefix = "pr/"
	PrefixAge           Prefix = "age/"
	PrefixIncome        Prefix = "i/"
	PrefixLastContacted Prefix = "lc/"
)

var friendlyNames = map[Prefix]string{
	PrefixName:          "name",
	PrefixPhone:         "phone",
	PrefixEmail:         "email",
	PrefixAddress:       "address",
	PrefixOccupation:    "occupation",
	PrefixPriority:      "priority",
	PrefixAge:           "age",
	PrefixIncome:        "income bracket",
	PrefixLastContacted: "last contacted date",
}

// ArgMultimap holds the preamble and every value given for each prefix,
// in input order.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first recognized prefix.
func (m ArgMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (m ArgMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Has reports whether p appeared at least once.
func (m ArgMultimap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

// VerifyNoDuplicates fails when any of the given single-valued prefixes
// appears more than once. The message names every offender.
func (m ArgMultimap) VerifyNoDuplicates(prefixes ...Prefix) error {
	var dups []Prefix
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &Error{Msg: duplicatePrefixMessage(dups)}
}

func duplicatePrefixMessage(dups []Prefix) string {
	if len(dups) == 1 && dups[0] == PrefixOccupation {
		return "Only one o/ (occupation) input is allowed. Remove the extra occurrences and try again."
	}
	parts := make([]string, len(dups))
	for i, p := range dups {
		name, ok := friendlyNames[p]
		if !ok {
			name = string(p)
		}
		parts[i] = fmt.Sprintf("%s (%s)", p, name)
	}
	return fmt.Sprintf("Please specify each of the following fields at most once: %s. "+
		"Remove duplicate entries and try again.", strings.Join(parts, ", "))
}

type marker struct {
	prefix Prefix
	at     int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// sits at the start of args or right after whitespace, so "http://a/b"
// is not split on "a/".
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	var marks []marker
	for _, p := range prefixes {
		marks = append(marks, findPrefix(args, p)...)
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].at < marks[j].at })

	m := ArgMultimap{values: make(map[Prefix][]string)}
	if len(marks) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}
	m.preamble = strings.TrimSpace(args[:marks[0].at])
	for i, mk := range marks {
		end := len(args)
		if i+1 < len(marks) {
			end = marks[i+1].at
		}
		value := strings.TrimSpace(args[mk.at+len(mk.prefix) : end])
		m.values[mk.prefix] = append(m.values[mk.prefix], value)
	}
	return m
}

func findPrefix(args string, p Prefix) []marker {
	var out []marker
	from := 0
	for {
		i := strings.Index(args[from:], string(p))
		if i < 0 {
			return out
		}
		at := from + i
		if at == 0 || unicode.IsSpace(rune(args[at-1])) {
			out = append(out, marker{prefix: p, at: at})
		}
		from = at + len(p)
	}
}
