package storage

import (
	"errors"
	"fmt"

	"github.com/smileynet/insurabook/internal/contact"
)

// ErrMissingField is wrapped when a required field is absent from a record.
var ErrMissingField = errors.New("storage: missing field")

// jsonPerson is the on-disk shape of a contact. String fields hold "" when
// unset; incomeBracket is the enum name or null. Pointers tell a missing key
// apart from an empty one.
type jsonPerson struct {
	Name              *string  `json:"name"`
	Phone             *string  `json:"phone"`
	Email             *string  `json:"email"`
	Address           *string  `json:"address"`
	Occupation        *string  `json:"occupation"`
	Age               *string  `json:"age"`
	Priority          *string  `json:"priority"`
	IncomeBracket     *string  `json:"incomeBracket"`
	LastContactedDate *string  `json:"lastContactedDate"`
	Tags              []string `json:"tags"`
}

func str(s string) *string { return &s }

func fromContact(c contact.Contact) jsonPerson {
	p := jsonPerson{
		Name:              str(c.Name().String()),
		Phone:             str(c.Phone().String()),
		Email:             str(c.Email().String()),
		Address:           str(c.Address().String()),
		Occupation:        str(c.Occupation().String()),
		Age:               str(c.Age().String()),
		Priority:          str(c.Priority().String()),
		LastContactedDate: str(c.LastContacted().String()),
		Tags:              c.Tags().Names(),
	}
	if b, ok := c.Income(); ok {
		p.IncomeBracket = str(b.String())
	}
	return p
}

func missing(field string) error {
	return fmt.Errorf("%w: Person's %s field is missing!", ErrMissingField, field)
}

// toContact validates every field. Absent optional fields fall back to
// unset, NONE or no income so older files still load.
func (p jsonPerson) toContact() (contact.Contact, error) {
	if p.Name == nil {
		return contact.Contact{}, missing("Name")
	}
	name, err := contact.NewName(*p.Name)
	if err != nil {
		return contact.Contact{}, err
	}
	if p.Phone == nil {
		return contact.Contact{}, missing("Phone")
	}
	phone, err := contact.NewPhone(*p.Phone)
	if err != nil {
		return contact.Contact{}, err
	}
	c := contact.New(name, phone)

	if v := deref(p.Email); v != "" {
		email, err := contact.NewEmail(v)
		if err != nil {
			return contact.Contact{}, err
		}
		c = c.WithEmail(email)
	}
	if v := deref(p.Address); v != "" {
		addr, err := contact.NewAddress(v)
		if err != nil {
			return contact.Contact{}, err
		}
		c = c.WithAddress(addr)
	}
	occ, err := contact.NewOccupation(deref(p.Occupation))
	if err != nil {
		return contact.Contact{}, err
	}
	c = c.WithOccupation(occ)

	age, err := contact.NewAge(deref(p.Age))
	if err != nil {
		return contact.Contact{}, err
	}
	c = c.WithAge(age)

	if v := deref(p.Priority); v != "" {
		pr, err := contact.ParsePriority(v)
		if err != nil {
			return contact.Contact{}, err
		}
		c = c.WithPriority(pr)
	}
	if v := deref(p.IncomeBracket); v != "" {
		b, err := contact.ParseIncomeBracket(v)
		if err != nil {
			return contact.Contact{}, err
		}
		c = c.WithIncome(b)
	}
	date, err := contact.NewLastContactedDate(deref(p.LastContactedDate))
	if err != nil {
		return contact.Contact{}, err
	}
	c = c.WithLastContacted(date)

	tags := make([]contact.Tag, 0, len(p.Tags))
	for _, raw := range p.Tags {
		t, err := contact.NewTag(raw)
		if err != nil {
			return contact.Contact{}, err
		}
		tags = append(tags, t)
	}
	return c.WithTags(contact.NewTagSet(tags...)), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
