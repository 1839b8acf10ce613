package command

import (
	"fmt"

	"github.com/smileynet/insurabook/internal/contact"
)

const EditUsage = "edit: Edits the details of the person identified " +
	"by the index number used in the displayed person list. " +
	"Existing values will be overwritten by the input values.\n" +
	"Parameters: INDEX (must be a positive integer) \n" +
	"[n/NAME] \n" +
	"[p/PHONE] \n" +
	"[e/EMAIL] \n" +
	"[a/ADDRESS] \n" +
	"[o/OCCUPATION] \n" +
	"[age/AGE] \n" +
	"[pr/PRIORITY] \n" +
	"[i/INCOME_BRACKET] \n" +
	"[lc/LAST_CONTACTED_DATE] \n" +
	"[t/TAG]...\n" +
	"Example: edit 1 p/91234567 e/johndoe@example.com i/high lc/2025-09-22"

// MessageNotEdited is returned by the parser for an edit with no fields.
const MessageNotEdited = "At least one field to edit must be provided."

// Descriptor lists the fields an edit changes. Nil fields keep the
// existing value.
type Descriptor struct {
	Name          *contact.Name
	Phone         *contact.Phone
	Email         *contact.Email
	Address       *contact.Address
	Occupation    *contact.Occupation
	Age           *contact.Age
	Priority      *contact.Priority
	Income        *contact.IncomeBracket
	LastContacted *contact.LastContactedDate
	Tags          *contact.TagSet
}

// IsAnyFieldSet reports whether the descriptor changes anything.
func (d Descriptor) IsAnyFieldSet() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Occupation != nil || d.Age != nil || d.Priority != nil || d.Income != nil ||
		d.LastContacted != nil || d.Tags != nil
}

// Apply overlays the set fields onto c.
func (d Descriptor) Apply(c contact.Contact) contact.Contact {
	if d.Name != nil {
		c = c.WithName(*d.Name)
	}
	if d.Phone != nil {
		c = c.WithPhone(*d.Phone)
	}
	if d.Email != nil {
		c = c.WithEmail(*d.Email)
	}
	if d.Address != nil {
		c = c.WithAddress(*d.Address)
	}
	if d.Occupation != nil {
		c = c.WithOccupation(*d.Occupation)
	}
	if d.Age != nil {
		c = c.WithAge(*d.Age)
	}
	if d.Priority != nil {
		c = c.WithPriority(*d.Priority)
	}
	if d.Income != nil {
		c = c.WithIncome(*d.Income)
	}
	if d.LastContacted != nil {
		c = c.WithLastContacted(*d.LastContacted)
	}
	if d.Tags != nil {
		c = c.WithTags(*d.Tags)
	}
	return c
}

// Edit changes the fields named by Changes on the displayed contact at Index.
type Edit struct {
	Index   int
	Changes Descriptor
}

func (e Edit) Execute(s Store) (Result, error) {
	orig, err := resolve(s, e.Index)
	if err != nil {
		return Result{}, err
	}
	if orig.IsDNC() && e.Changes.IsAnyFieldSet() {
		return Result{}, errDncImmutable()
	}
	if e.Changes.Tags != nil && e.Changes.Tags.HasDNC() {
		return Result{}, errCannotAddDncTag()
	}

	edited := e.Changes.Apply(orig)
	emailChanged := edited.Email() != orig.Email()
	if err := checkUnique(without(s.All(), orig), edited, emailChanged); err != nil {
		return Result{}, err
	}

	if err := replace(s, orig, edited); err != nil {
		return Result{}, fmt.Errorf("command: edit: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Edited Person: %s", contact.Format(edited)), Changed: true}, nil
}

// without returns all minus the first contact equal to c.
func without(all []contact.Contact, c contact.Contact) []contact.Contact {
	out := make([]contact.Contact, 0, len(all))
	skipped := false
	for _, o := range all {
		if !skipped && o.Equal(c) {
			skipped = true
			continue
		}
		out = append(out, o)
	}
	return out
}
