// Package tui provides the interactive InsuraBook shell: a Bubble Tea model
// for terminals and a plain line loop for everything else.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/insurabook/internal/command"
	"github.com/smileynet/insurabook/internal/contact"
)

// Executor runs command lines and exposes the displayed contacts.
// *shell.Session satisfies it.
type Executor interface {
	Execute(line string) (command.Result, error)
	Displayed() []contact.Contact
}

const (
	// fixedLines counts the title, the input and the list's two border rows.
	fixedLines   = 4
	borderChrome = 2
)

// Model is the Bubble Tea model for the interactive shell.
type Model struct {
	exec     Executor
	keys     keyMap
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	feedback string
	failed   bool
	quitting bool
	width    int
	height   int
}

// NewModel creates a Model with a focused command input and the current
// contact list loaded into the viewport.
func NewModel(exec Executor) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a command, e.g. list or help"
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		exec:     exec,
		keys:     DefaultKeyMap(),
		input:    ti,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		feedback: "Welcome to InsuraBook.",
	}
	m.refresh()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.viewport.Width = max(msg.Width-borderChrome, 0)
		m.viewport.Height = m.listHeight()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.viewport.Height = m.listHeight()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the input line and shows its result.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	res, err := m.exec.Execute(line)
	if err != nil {
		m.feedback = err.Error()
		m.failed = true
		m.viewport.Height = m.listHeight()
		return m, nil
	}
	m.feedback = res.Feedback
	m.failed = false
	m.viewport.Height = m.listHeight()
	m.refresh()
	if res.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// refresh reloads the displayed contacts into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(renderList(m.exec.Displayed()))
	m.viewport.GotoTop()
}

// listHeight returns the usable height for the contact list.
func (m Model) listHeight() int {
	helpLines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(col))
		}
	}
	feedbackLines := strings.Count(m.feedback, "\n") + 1
	h := m.height - fixedLines - helpLines - feedbackLines
	if h < 1 {
		return 1
	}
	return h
}

// View renders the title, contact list, result line, input and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	list := ListBorder().
		Width(max(m.width-borderChrome, 0)).
		Render(m.viewport.View())

	style := feedbackStyle
	if m.failed {
		style = errorStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("InsuraBook"),
		list,
		style.Render(m.feedback),
		m.input.View(),
		m.help.View(m.keys),
	)
}
