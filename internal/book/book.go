// Package book holds the in-memory contact list and the filtered, sorted
// view of it that index-based commands resolve against.
package book

import (
	"errors"
	"slices"

	"github.com/smileynet/insurabook/internal/contact"
)

// ErrNotFound indicates the contact to replace or remove is not in the book.
var ErrNotFound = errors.New("book: contact not found")

// Predicate selects the contacts shown in the displayed view.
type Predicate func(contact.Contact) bool

// Compare orders the displayed view. It follows the slices.SortStableFunc
// convention of returning a negative, zero or positive number.
type Compare func(a, b contact.Contact) int

// ShowAll is the predicate that keeps every contact.
func ShowAll(contact.Contact) bool { return true }

// Book owns the canonical contact list. It is not safe for concurrent use;
// a session drives it from a single input loop.
type Book struct {
	contacts []contact.Contact
	filter   Predicate
	order    Compare
}

// New returns a book holding a copy of contacts.
func New(contacts ...contact.Contact) *Book {
	return &Book{contacts: slices.Clone(contacts), filter: ShowAll}
}

// All returns a copy of every contact in insertion order.
func (b *Book) All() []contact.Contact {
	return slices.Clone(b.contacts)
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.contacts) }

// Add appends c.
func (b *Book) Add(c contact.Contact) {
	b.contacts = append(b.contacts, c)
}

// Set replaces old with updated in place, keeping its position.
func (b *Book) Set(old, updated contact.Contact) error {
	i := b.indexOf(old)
	if i < 0 {
		return ErrNotFound
	}
	b.contacts[i] = updated
	return nil
}

// Remove deletes c.
func (b *Book) Remove(c contact.Contact) error {
	i := b.indexOf(c)
	if i < 0 {
		return ErrNotFound
	}
	b.contacts = slices.Delete(b.contacts, i, i+1)
	return nil
}

// Reset replaces the whole list and clears the view.
func (b *Book) Reset(contacts []contact.Contact) {
	b.contacts = slices.Clone(contacts)
	b.filter, b.order = ShowAll, nil
}

// SetFilter narrows the displayed view. A nil predicate shows everything.
func (b *Book) SetFilter(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	b.filter = p
}

// SetOrder sorts the displayed view. A nil compare keeps insertion order.
func (b *Book) SetOrder(cmp Compare) {
	b.order = cmp
}

// Displayed returns the filtered, stably sorted view that 1-based command
// indices refer to.
func (b *Book) Displayed() []contact.Contact {
	out := make([]contact.Contact, 0, len(b.contacts))
	for _, c := range b.contacts {
		if b.filter(c) {
			out = append(out, c)
		}
	}
	if b.order != nil {
		slices.SortStableFunc(out, b.order)
	}
	return out
}

// At resolves a 1-based index against the displayed view.
func (b *Book) At(oneBased int) (contact.Contact, bool) {
	shown := b.Displayed()
	if oneBased < 1 || oneBased > len(shown) {
		return contact.Contact{}, false
	}
	return shown[oneBased-1], true
}

func (b *Book) indexOf(c contact.Contact) int {
	return slices.IndexFunc(b.contacts, c.Equal)
}
