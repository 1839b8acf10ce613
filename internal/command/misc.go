package command

import (
	"fmt"
	"strings"

	"github.com/smileynet/insurabook/internal/contact"
)

const DeleteUsage = "delete: Deletes the person identified by the index number used in the displayed person list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: delete 1"

const FindUsage = "find: Finds all persons whose names or phone numbers contain any of " +
	"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: find alice 9123"

const HelpUsage = "help: Shows the command summary.\n" +
	"Example: help"

// Delete removes the displayed contact at Index. Do Not Call contacts may
// be deleted.
type Delete struct {
	Index int
}

func (d Delete) Execute(s Store) (Result, error) {
	target, err := resolve(s, d.Index)
	if err != nil {
		return Result{}, err
	}
	if err := s.Remove(target); err != nil {
		return Result{}, fmt.Errorf("command: delete: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Deleted Person: %s", contact.Format(target)), Changed: true}, nil
}

// Find narrows the view to contacts whose name or phone contains any keyword.
type Find struct {
	Keywords []string
}

func (f Find) Execute(s Store) (Result, error) {
	s.SetFilter(f.matches)
	n := 0
	for _, c := range s.All() {
		if f.matches(c) {
			n++
		}
	}
	return Result{Feedback: fmt.Sprintf("%d persons listed!", n)}, nil
}

func (f Find) matches(c contact.Contact) bool {
	name := strings.ToLower(c.Name().String())
	phone := c.Phone().String()
	for _, kw := range f.Keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(name, kw) || strings.Contains(phone, kw) {
			return true
		}
	}
	return false
}

// Clear removes every contact.
type Clear struct{}

func (Clear) Execute(s Store) (Result, error) {
	s.Reset(nil)
	return Result{Feedback: "InsuraBook has been cleared!", Changed: true}, nil
}

// Help lists the available commands.
type Help struct{}

func (Help) Execute(Store) (Result, error) {
	return Result{Feedback: HelpText}, nil
}

// Exit ends the session.
type Exit struct{}

func (Exit) Execute(Store) (Result, error) {
	return Result{Feedback: "Exiting InsuraBook as requested ...", Exit: true}, nil
}

// HelpText is the command summary shown by help.
var HelpText = strings.Join([]string{
	"Commands:",
	"  add n/NAME p/PHONE [e/EMAIL] [a/ADDRESS] [o/OCCUPATION] [age/AGE] [pr/PRIORITY] [i/INCOME] [lc/DATE] [t/TAG]...",
	"  edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [o/OCCUPATION] [age/AGE] [pr/PRIORITY] [i/INCOME] [lc/DATE] [t/TAG]...",
	"  tag INDEX t/TAG [t/TAG]...",
	"  dnc INDEX",
	"  priority INDEX LEVEL",
	"  list [pr/asc|desc] [i/asc|desc]",
	"  find KEYWORD [MORE_KEYWORDS]...",
	"  delete INDEX",
	"  clear",
	"  help",
	"  exit",
}, "\n")
