package command

import (
	"fmt"

	"github.com/smileynet/insurabook/internal/contact"
)

const PriorityUsage = "priority: Sets the priority of the person identified " +
	"by the index number used in the last person listing.\n" +
	"Parameters: INDEX (must be a positive integer) LEVEL (NONE, LOW, MEDIUM or HIGH)\n" +
	"Example: priority 1 HIGH"

// Priority sets the priority of the displayed contact at Index.
type Priority struct {
	Index int
	Level contact.Priority
}

func (p Priority) Execute(s Store) (Result, error) {
	orig, err := resolve(s, p.Index)
	if err != nil {
		return Result{}, err
	}
	if orig.IsDNC() {
		return Result{}, errDncImmutable()
	}

	edited := orig.WithPriority(p.Level)
	if err := replace(s, orig, edited); err != nil {
		return Result{}, fmt.Errorf("command: priority: %w", err)
	}
	return Result{
		Feedback: fmt.Sprintf("Updated priority of Person: %s to %s", contact.Format(edited), p.Level),
		Changed:  true,
	}, nil
}
