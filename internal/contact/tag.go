package contact

import (
	"strings"
	"unicode/utf8"
)

// TagConstraints is shown when a tag name is rejected.
const TagConstraints = "Tag names should not be blank and should be at most 30 characters long."

// DNCTagName is the name of the distinguished Do Not Call tag.
const DNCTagName = "Do Not Call"

const maxTagLength = 30

// Tag is a label on a contact. A tag is either a plain label or the
// distinguished Do Not Call marker, which freezes the contact.
type Tag struct {
	name string
	dnc  bool
}

// DNCTag returns the Do Not Call tag.
func DNCTag() Tag { return Tag{name: DNCTagName, dnc: true} }

// IsValidTagName reports whether raw is non-empty and at most 30 characters.
func IsValidTagName(raw string) bool {
	return strings.TrimSpace(raw) != "" && utf8.RuneCountInString(raw) <= maxTagLength
}

// NewTag builds a tag. Any spelling of "do not call" yields DNCTag.
func NewTag(raw string) (Tag, error) {
	if !IsValidTagName(raw) {
		return Tag{}, invalid("tag", raw, TagConstraints)
	}
	if strings.EqualFold(strings.Join(strings.Fields(raw), " "), DNCTagName) {
		return DNCTag(), nil
	}
	return Tag{name: raw}, nil
}

// MustTag is NewTag for trusted input; it panics on a bad value.
func MustTag(raw string) Tag { return must(NewTag(raw)) }

// Name returns the tag's label.
func (t Tag) Name() string { return t.name }

// IsDNC reports whether t is the Do Not Call tag.
func (t Tag) IsDNC() bool { return t.dnc }

func (t Tag) String() string { return t.name }

// TagSet is an ordered, duplicate-free set of tags.
type TagSet struct{ tags []Tag }

// NewTagSet collects tags, dropping repeated names. Order of first
// appearance is kept.
func NewTagSet(tags ...Tag) TagSet {
	var out []Tag
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if seen[t.name] {
			continue
		}
		seen[t.name] = true
		out = append(out, t)
	}
	return TagSet{tags: out}
}

// Tags returns a copy of the tags.
func (s TagSet) Tags() []Tag {
	return append([]Tag(nil), s.tags...)
}

// Len returns the number of tags.
func (s TagSet) Len() int { return len(s.tags) }

// HasDNC reports whether the set holds the Do Not Call tag.
func (s TagSet) HasDNC() bool {
	for _, t := range s.tags {
		if t.dnc {
			return true
		}
	}
	return false
}

// Names returns the tag names in set order.
func (s TagSet) Names() []string {
	names := make([]string, len(s.tags))
	for i, t := range s.tags {
		names[i] = t.name
	}
	return names
}

// Equal reports whether both sets hold the same tags, ignoring order.
func (s TagSet) Equal(o TagSet) bool {
	if len(s.tags) != len(o.tags) {
		return false
	}
	have := make(map[Tag]bool, len(s.tags))
	for _, t := range s.tags {
		have[t] = true
	}
	for _, t := range o.tags {
		if !have[t] {
			return false
		}
	}
	return true
}
