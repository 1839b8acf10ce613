package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/insurabook/internal/contact"
)

// Priority badge colors indexed by contact.Priority.
// NONE=gray, LOW=blue, MEDIUM=yellow, HIGH=red.
var priorityColors = [4]lipgloss.AdaptiveColor{
	{Light: "240", Dark: "245"}, // NONE: gray
	{Light: "4", Dark: "12"},    // LOW: blue
	{Light: "3", Dark: "11"},    // MEDIUM: yellow
	{Light: "1", Dark: "9"},     // HIGH: red
}

var (
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	dncColor    = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle      = lipgloss.NewStyle().Foreground(dimColor)
	dncStyle      = lipgloss.NewStyle().Bold(true).Foreground(dncColor)
	errorStyle    = lipgloss.NewStyle().Foreground(dncColor)
	feedbackStyle = lipgloss.NewStyle()
)

// PriorityBadge returns a styled priority label like "[HIGH]".
func PriorityBadge(p contact.Priority) string {
	label := fmt.Sprintf("[%s]", p)
	if p < contact.PriorityNone || p > contact.PriorityHigh {
		return lipgloss.NewStyle().Foreground(dimColor).Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(priorityColors[p]).
		Render(label)
}

// ListBorder returns the rounded border around the contact list.
func ListBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)
}

// renderContact renders one list entry: a headline with index, name, phone,
// priority and tags, then a dim line with whichever details are recorded.
func renderContact(index int, c contact.Contact) string {
	name := c.Name().String()
	if c.IsDNC() {
		name = dncStyle.Render(name + " (DNC)")
	}
	head := fmt.Sprintf("%d. %s  %s  %s", index, name, c.Phone(), PriorityBadge(c.Priority()))
	if names := c.Tags().Names(); len(names) > 0 && !c.IsDNC() {
		head += "  " + dimStyle.Render(strings.Join(names, ", "))
	}

	var details []string
	if !c.Email().IsZero() {
		details = append(details, c.Email().String())
	}
	if !c.Address().IsZero() {
		details = append(details, c.Address().String())
	}
	if !c.Occupation().IsZero() {
		details = append(details, c.Occupation().String())
	}
	if !c.Age().IsZero() {
		details = append(details, "age "+c.Age().String())
	}
	if b, ok := c.Income(); ok {
		details = append(details, b.Display())
	}
	details = append(details, "last contacted "+c.LastContacted().Display())

	return head + "\n   " + dimStyle.Render(strings.Join(details, " | "))
}

// renderList renders every displayed contact, or a placeholder when empty.
func renderList(contacts []contact.Contact) string {
	if len(contacts) == 0 {
		return dimStyle.Render("No contacts to show.")
	}
	rows := make([]string, len(contacts))
	for i, c := range contacts {
		rows[i] = renderContact(i+1, c)
	}
	return strings.Join(rows, "\n")
}
