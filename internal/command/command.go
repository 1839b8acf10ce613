// Package command implements the InsuraBook commands. Each command reads a
// snapshot of the contact store, validates, and submits whole-record
// replacements; a failed command leaves the store untouched.
package command

import (
	"github.com/smileynet/insurabook/internal/book"
	"github.com/smileynet/insurabook/internal/contact"
)

// Store is the record store a command executes against.
// *book.Book satisfies it.
type Store interface {
	All() []contact.Contact
	At(oneBased int) (contact.Contact, bool)
	Add(c contact.Contact)
	Set(old, updated contact.Contact) error
	Remove(c contact.Contact) error
	Reset(contacts []contact.Contact)
	SetFilter(p book.Predicate)
	SetOrder(cmp book.Compare)
}

var _ Store = (*book.Book)(nil)

// Result is the outcome of a successful command.
type Result struct {
	Feedback string // Message for the presentation sink.
	Changed  bool   // The contact list was modified and should be persisted.
	Exit     bool   // The session should end.
}

// Command is a parsed, ready-to-run user command.
type Command interface {
	Execute(s Store) (Result, error)
}

// MessageInvalidFormat prefixes every parse failure; the command's usage follows it.
const MessageInvalidFormat = "Invalid command format! \n"

// resolve looks up the displayed contact at a 1-based index.
func resolve(s Store, index int) (contact.Contact, error) {
	c, ok := s.At(index)
	if !ok {
		return contact.Contact{}, errInvalidIndex()
	}
	return c, nil
}

// replace swaps old for updated and resets the view so the change is visible.
func replace(s Store, old, updated contact.Contact) error {
	if err := s.Set(old, updated); err != nil {
		return err
	}
	s.SetFilter(book.ShowAll)
	return nil
}
