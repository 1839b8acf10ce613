package command

import (
	"fmt"

	"github.com/smileynet/insurabook/internal/contact"
)

const TagUsage = "tag: Edits the tag of the person identified " +
	"by the index number used in the last person listing. " +
	"Existing tag will be overwritten by the input.\n" +
	"Parameters: INDEX (must be a positive integer) t/[TAG]\n" +
	"Example: tag 1 t/interested."

const DncUsage = "dnc: Marks the person identified " +
	"by the index number used in the last person listing as Do Not Call.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: dnc 1"

// Tag replaces the whole tag set of the displayed contact at Index.
type Tag struct {
	Index int
	Tags  contact.TagSet
}

func (t Tag) Execute(s Store) (Result, error) {
	orig, err := resolve(s, t.Index)
	if err != nil {
		return Result{}, err
	}
	if orig.IsDNC() {
		return Result{}, errDncImmutable()
	}
	if t.Tags.HasDNC() {
		return Result{}, errCannotAddDncTag()
	}

	edited := orig.WithTags(t.Tags)
	if err := replace(s, orig, edited); err != nil {
		return Result{}, fmt.Errorf("command: tag: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Changed tag of Person: %s", contact.Format(edited)), Changed: true}, nil
}

// Dnc marks the displayed contact at Index as Do Not Call. Its tags are
// replaced by the single DNC tag. There is no way back.
type Dnc struct {
	Index int
}

func (d Dnc) Execute(s Store) (Result, error) {
	orig, err := resolve(s, d.Index)
	if err != nil {
		return Result{}, err
	}
	if orig.IsDNC() {
		return Result{}, errAlreadyDnc()
	}

	edited := orig.WithTags(contact.NewTagSet(contact.DNCTag()))
	if err := replace(s, orig, edited); err != nil {
		return Result{}, fmt.Errorf("command: dnc: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Marked person as Do Not Call: %s", contact.Format(edited)), Changed: true}, nil
}
