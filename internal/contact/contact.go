// Package contact defines the InsuraBook contact record and the
// self-validating field types it is built from.
//
// Every type is an immutable value: constructors validate and normalize raw
// input, and two values built from equivalent input compare equal with ==.
// Optional fields use their zero value for "unset".
package contact

import (
	"strings"
)

// Contact is one record in the book. Contacts are never mutated in place;
// the With* methods return modified copies.
type Contact struct {
	name       Name
	phone      Phone
	email      Email
	address    Address
	occupation Occupation
	age        Age
	priority   Priority
	income     IncomeBracket
	hasIncome  bool
	lastSeen   LastContactedDate
	tags       TagSet
}

// New creates a contact with every optional field unset and priority NONE.
func New(name Name, phone Phone) Contact {
	return Contact{name: name, phone: phone}
}

func (c Contact) Name() Name { return c.name }
func (c Contact) Phone() Phone { return c.phone }
func (c Contact) Email() Email { return c.email }
func (c Contact) Address() Address { return c.address }
func (c Contact) Occupation() Occupation { return c.occupation }
func (c Contact) Age() Age { return c.age }
func (c Contact) Priority() Priority { return c.priority }
func (c Contact) LastContacted() LastContactedDate { return c.lastSeen }
func (c Contact) Tags() TagSet { return c.tags }
func (c Contact) Income() (IncomeBracket, bool) { return c.income, c.hasIncome }

func (c Contact) WithName(v Name) Contact {
	c.name = v
	return c
}

func (c Contact) WithPhone(v Phone) Contact {
	c.phone = v
	return c
}

func (c Contact) WithEmail(v Email) Contact {
	c.email = v
	return c
}

func (c Contact) WithAddress(v Address) Contact {
	c.address = v
	return c
}

func (c Contact) WithOccupation(v Occupation) Contact {
	c.occupation = v
	return c
}

func (c Contact) WithAge(v Age) Contact {
	c.age = v
	return c
}

func (c Contact) WithPriority(v Priority) Contact {
	c.priority = v
	return c
}

func (c Contact) WithLastContacted(v LastContactedDate) Contact {
	c.lastSeen = v
	return c
}

// WithIncome sets the income bracket.
func (c Contact) WithIncome(v IncomeBracket) Contact {
	c.income, c.hasIncome = v, true
	return c
}

// WithoutIncome clears the income bracket.
func (c Contact) WithoutIncome() Contact {
	c.income, c.hasIncome = 0, false
	return c
}

// WithTags replaces the whole tag set.
func (c Contact) WithTags(tags TagSet) Contact {
	c.tags = tags
	return c
}

// IsDNC reports whether the contact carries the Do Not Call tag.
func (c Contact) IsDNC() bool { return c.tags.HasDNC() }

// Equal reports whether every field of c and o matches. Tag order is ignored.
func (c Contact) Equal(o Contact) bool {
	return c.name == o.name &&
		c.phone == o.phone &&
		c.email == o.email &&
		c.address == o.address &&
		c.occupation == o.occupation &&
		c.age == o.age &&
		c.priority == o.priority &&
		c.hasIncome == o.hasIncome &&
		c.income == o.income &&
		c.lastSeen == o.lastSeen &&
		c.tags.Equal(o.tags)
}

// Format renders c for result messages, e.g.
// "Alex Yeoh; Phone: 87438807; Age: ; Priority: NONE".
func Format(c Contact) string {
	var b strings.Builder
	b.WriteString(c.name.String())
	b.WriteString("; Phone: ")
	b.WriteString(c.phone.String())
	if !c.occupation.IsZero() {
		b.WriteString("; Occupation: ")
		b.WriteString(c.occupation.String())
	}
	b.WriteString("; Age: ")
	b.WriteString(c.age.String())
	b.WriteString("; Priority: ")
	b.WriteString(c.priority.String())
	if !c.email.IsZero() {
		b.WriteString("; Email: ")
		b.WriteString(c.email.String())
	}
	if !c.address.IsZero() {
		b.WriteString("; Address: ")
		b.WriteString(c.address.String())
	}
	if !c.lastSeen.IsZero() {
		b.WriteString("; Last Contacted: ")
		b.WriteString(c.lastSeen.String())
	}
	if c.tags.Len() > 0 {
		b.WriteString("; Tags: ")
		b.WriteString(strings.Join(c.tags.Names(), ", "))
	}
	return b.String()
}
