package parser

import (
	"strings"

	"github.com/smileynet/insurabook/internal/command"
	"github.com/smileynet/insurabook/internal/contact"
)

// singleValued lists the prefixes that may appear at most once in add and edit.
var singleValued = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixOccupation,
	PrefixPriority, PrefixAge, PrefixIncome, PrefixLastContacted,
}

var recordPrefixes = append(append([]Prefix(nil), singleValued...), PrefixTag)

// parseAdd builds an Add from "n/NAME p/PHONE [...]".
func parseAdd(args string) (command.Command, error) {
	m := Tokenize(args, recordPrefixes...)
	if !m.Has(PrefixName) || !m.Has(PrefixPhone) || m.Preamble() != "" {
		return nil, formatError(command.AddUsage, nil)
	}
	if err := m.VerifyNoDuplicates(singleValued...); err != nil {
		return nil, err
	}

	d, err := parseDescriptor(m, false)
	if err != nil {
		return nil, err
	}
	c := contact.New(*d.Name, *d.Phone)
	d.Name, d.Phone = nil, nil
	return command.Add{Contact: d.Apply(c)}, nil
}

// parseEdit builds an Edit from "INDEX [n/NAME] [...]". A lone empty "t/"
// clears the tags.
func parseEdit(args string) (command.Command, error) {
	m := Tokenize(args, recordPrefixes...)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, formatError(command.EditUsage, err)
	}
	if err := m.VerifyNoDuplicates(singleValued...); err != nil {
		return nil, err
	}

	d, err := parseDescriptor(m, true)
	if err != nil {
		return nil, err
	}
	if !d.IsAnyFieldSet() {
		return nil, &Error{Msg: command.MessageNotEdited}
	}
	return command.Edit{Index: index, Changes: d}, nil
}

// parseDescriptor converts every present field. Add and edit share it;
// only edit lets a lone empty "t/" mean "no tags".
func parseDescriptor(m ArgMultimap, allowClearTags bool) (command.Descriptor, error) {
	var d command.Descriptor
	var err error
	if v, ok := m.Value(PrefixName); ok {
		if d.Name, err = parseField(ParseName, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixPhone); ok {
		if d.Phone, err = parseField(ParsePhone, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixEmail); ok {
		if d.Email, err = parseField(ParseEmail, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixAddress); ok {
		if d.Address, err = parseField(ParseAddress, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixOccupation); ok {
		if d.Occupation, err = parseField(ParseOccupation, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixAge); ok {
		if d.Age, err = parseField(ParseAge, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixPriority); ok {
		if d.Priority, err = parseField(ParsePriority, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixIncome); ok {
		if d.Income, err = parseField(ParseIncomeBracket, v); err != nil {
			return d, err
		}
	}
	if v, ok := m.Value(PrefixLastContacted); ok {
		if d.LastContacted, err = parseField(ParseLastContacted, v); err != nil {
			return d, err
		}
	}
	if m.Has(PrefixTag) {
		raws := m.AllValues(PrefixTag)
		if allowClearTags && len(raws) == 1 && raws[0] == "" {
			raws = nil
		}
		tags, err := ParseTags(raws)
		if err != nil {
			return d, err
		}
		d.Tags = &tags
	}
	return d, nil
}

func parseField[T any](parse func(string) (T, error), raw string) (*T, error) {
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseTag builds a Tag from "INDEX t/TAG [t/TAG]...".
func parseTag(args string) (command.Command, error) {
	m := Tokenize(args, PrefixTag)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, formatError(command.TagUsage, err)
	}
	if !m.Has(PrefixTag) {
		return nil, formatError(command.TagUsage, nil)
	}
	tags, err := ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, formatError(command.TagUsage, err)
	}
	return command.Tag{Index: index, Tags: tags}, nil
}

// parseDnc builds a Dnc from "INDEX".
func parseDnc(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(command.DncUsage, err)
	}
	return command.Dnc{Index: index}, nil
}

// parseDelete builds a Delete from "INDEX".
func parseDelete(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(command.DeleteUsage, err)
	}
	return command.Delete{Index: index}, nil
}

// parsePriority builds a Priority from "INDEX LEVEL".
func parsePriority(args string) (command.Command, error) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return nil, formatError(command.PriorityUsage, nil)
	}
	index, err := ParseIndex(parts[0])
	if err != nil {
		return nil, formatError(command.PriorityUsage, err)
	}
	level, err := ParsePriority(parts[1])
	if err != nil {
		return nil, formatError(command.PriorityUsage, err)
	}
	return command.Priority{Index: index, Level: level}, nil
}

// parseList builds a List from "[pr/asc|desc]" or "[i/asc|desc]".
func parseList(args string) (command.Command, error) {
	m := Tokenize(args, PrefixPriority, PrefixIncome)
	if m.Preamble() != "" {
		return nil, formatError(command.ListUsage, nil)
	}
	if err := m.VerifyNoDuplicates(PrefixPriority, PrefixIncome); err != nil {
		return nil, formatError(command.ListUsage, err)
	}
	byPriority, byIncome := m.Has(PrefixPriority), m.Has(PrefixIncome)
	switch {
	case byPriority && byIncome:
		return nil, formatError(command.ListUsage, nil)
	case !byPriority && !byIncome:
		return command.List{}, nil
	}

	field, prefix := command.SortPriority, PrefixPriority
	if byIncome {
		field, prefix = command.SortIncome, PrefixIncome
	}
	order, _ := m.Value(prefix)
	switch strings.ToLower(order) {
	case "asc":
		return command.List{Field: field, Ascending: true}, nil
	case "desc":
		return command.List{Field: field}, nil
	default:
		return nil, formatError(command.ListUsage, nil)
	}
}

// parseFind builds a Find from "KEYWORD [MORE_KEYWORDS]...".
func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, formatError(command.FindUsage, nil)
	}
	return command.Find{Keywords: keywords}, nil
}
