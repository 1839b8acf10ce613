package command

import (
	"fmt"

	"github.com/smileynet/insurabook/internal/book"
	"github.com/smileynet/insurabook/internal/contact"
)

const AddUsage = "add: Adds a person to the InsuraBook. " +
	"Parameters: n/NAME p/PHONE [e/EMAIL] [a/ADDRESS] [o/OCCUPATION] [age/AGE] [pr/PRIORITY] " +
	"[i/INCOME_BRACKET] [lc/LAST_CONTACTED_DATE] [t/TAG]...\n" +
	"Example: add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 " +
	"o/Engineer age/35 pr/HIGH i/middle lc/2025-09-20 t/interested t/follow up"

// Add inserts a new contact.
type Add struct {
	Contact contact.Contact
}

func (a Add) Execute(s Store) (Result, error) {
	if a.Contact.IsDNC() {
		return Result{}, errCannotAddDncTag()
	}
	if err := checkUnique(s.All(), a.Contact, true); err != nil {
		return Result{}, err
	}
	s.Add(a.Contact)
	s.SetFilter(book.ShowAll)
	return Result{Feedback: fmt.Sprintf("New person added: %s", contact.Format(a.Contact)), Changed: true}, nil
}

// checkUnique rejects candidate when another contact in others shares its
// phone, with a more specific error when the name matches too. Name-only
// matches are allowed. When checkEmail is set a non-empty email shared with
// another contact is also rejected.
func checkUnique(others []contact.Contact, candidate contact.Contact, checkEmail bool) error {
	var samePhone, sameNameAndPhone bool
	for _, o := range others {
		if o.Phone() != candidate.Phone() {
			continue
		}
		samePhone = true
		if o.Name() == candidate.Name() {
			sameNameAndPhone = true
		}
	}
	switch {
	case sameNameAndPhone:
		return errDuplicateNamePhone()
	case samePhone:
		return errDuplicatePhone()
	}

	if !checkEmail || candidate.Email().IsZero() {
		return nil
	}
	for _, o := range others {
		if o.Email() == candidate.Email() {
			return errDuplicateEmail()
		}
	}
	return nil
}
