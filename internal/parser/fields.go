package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smileynet/insurabook/internal/contact"
)

var digits = regexp.MustCompile(`^\d+$`)

// ParseIndex parses a 1-based index. Zero, signs, non-digits and values
// beyond int32 all fail the same way.
func ParseIndex(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if !digits.MatchString(s) {
		return 0, &Error{Msg: MessageInvalidIndex, Err: ErrInvalidIndex}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n <= 0 {
		return 0, &Error{Msg: MessageInvalidIndex, Err: ErrInvalidIndex}
	}
	return int(n), nil
}

// fieldError keeps the field's constraint message as the parse message.
func fieldError(err error) error {
	return &Error{Msg: err.Error(), Err: err}
}

func ParseName(raw string) (contact.Name, error) {
	v, err := contact.NewName(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParsePhone(raw string) (contact.Phone, error) {
	v, err := contact.NewPhone(strings.TrimSpace(raw))
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseEmail(raw string) (contact.Email, error) {
	v, err := contact.NewEmail(strings.TrimSpace(raw))
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseAddress(raw string) (contact.Address, error) {
	v, err := contact.NewAddress(strings.TrimSpace(raw))
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseOccupation(raw string) (contact.Occupation, error) {
	v, err := contact.NewOccupation(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseAge(raw string) (contact.Age, error) {
	v, err := contact.NewAge(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParsePriority(raw string) (contact.Priority, error) {
	v, err := contact.ParsePriority(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseIncomeBracket(raw string) (contact.IncomeBracket, error) {
	v, err := contact.ParseIncomeBracket(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseLastContacted(raw string) (contact.LastContactedDate, error) {
	v, err := contact.NewLastContactedDate(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func ParseTag(raw string) (contact.Tag, error) {
	v, err := contact.NewTag(strings.TrimSpace(raw))
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

// ParseTags builds a tag set from every t/ value.
func ParseTags(raws []string) (contact.TagSet, error) {
	tags := make([]contact.Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := ParseTag(raw)
		if err != nil {
			return contact.TagSet{}, err
		}
		tags = append(tags, t)
	}
	return contact.NewTagSet(tags...), nil
}
