package command

import (
	"cmp"

	"github.com/smileynet/insurabook/internal/book"
	"github.com/smileynet/insurabook/internal/contact"
)

const ListUsage = "list: Lists all persons in the InsuraBook.\n" +
	"Optionally sorts by priority or income bracket.\n" +
	"Parameters: [pr/ORDER] or [i/ORDER] where ORDER is 'asc' or 'desc'\n" +
	"Examples:\n" +
	"list (lists all persons)\n" +
	"list pr/asc (lists all persons sorted by priority in ascending order: LOW to HIGH)\n" +
	"list pr/desc (lists all persons sorted by priority in descending order: HIGH to LOW)\n" +
	"list i/asc (lists all persons sorted by income bracket in ascending order: LOW to HIGH)\n" +
	"list i/desc (lists all persons sorted by income bracket in descending order: HIGH to LOW)"

// SortField selects what List orders by.
type SortField int

const (
	SortNone SortField = iota
	SortPriority
	SortIncome
)

// List shows every contact, optionally sorted.
type List struct {
	Field     SortField
	Ascending bool
}

func (l List) Execute(s Store) (Result, error) {
	s.SetFilter(book.ShowAll)
	s.SetOrder(l.compare())
	return Result{Feedback: l.message()}, nil
}

func (l List) message() string {
	switch {
	case l.Field == SortPriority && l.Ascending:
		return "Listed all persons sorted by priority in ascending order (LOW to HIGH)"
	case l.Field == SortPriority:
		return "Listed all persons sorted by priority in descending order (HIGH to LOW)"
	case l.Field == SortIncome && l.Ascending:
		return "Listed all persons sorted by income bracket in ascending order (LOW to HIGH)"
	case l.Field == SortIncome:
		return "Listed all persons sorted by income bracket in descending order (HIGH to LOW)"
	default:
		return "Listed all persons"
	}
}

// compare ranks unset values above every set value, so they trail an
// ascending sort and lead a descending one.
func (l List) compare() book.Compare {
	var rank func(contact.Contact) int
	switch l.Field {
	case SortPriority:
		rank = func(c contact.Contact) int {
			if c.Priority() == contact.PriorityNone {
				return int(contact.PriorityHigh) + 1
			}
			return int(c.Priority())
		}
	case SortIncome:
		rank = func(c contact.Contact) int {
			b, ok := c.Income()
			if !ok {
				return int(contact.IncomeHigh) + 1
			}
			return int(b)
		}
	default:
		return nil
	}
	if l.Ascending {
		return func(a, b contact.Contact) int { return cmp.Compare(rank(a), rank(b)) }
	}
	return func(a, b contact.Contact) int { return cmp.Compare(rank(b), rank(a)) }
}
