package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/insurabook/internal/contact"
	"github.com/smileynet/insurabook/internal/parser"
)

// Runner drives an interactive session until exit or end of input.
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerOptions configures runner creation.
type RunnerOptions struct {
	Reader     io.Reader // Command source (default: os.Stdin).
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the line shell even if TTY.
}

// NewRunner returns the TUI when the writer is a TTY, or a plain line shell
// otherwise. ForcePlain overrides TTY detection.
func NewRunner(exec Executor, opts RunnerOptions) Runner {
	if opts.Reader == nil {
		opts.Reader = os.Stdin
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return &PlainRunner{exec: exec, r: opts.Reader, w: opts.Writer}
	}

	return &TUIRunner{exec: exec, r: opts.Reader, w: opts.Writer}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainRunner reads one command per line and writes each result as text.
type PlainRunner struct {
	exec Executor
	r    io.Reader
	w    io.Writer
}

// Run executes lines until an exit command, end of input, or cancellation.
// Command failures are printed and do not stop the loop.
func (p *PlainRunner) Run(ctx context.Context) error {
	sc := bufio.NewScanner(p.r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if line == "" {
			continue
		}

		res, err := p.exec.Execute(line)
		if err != nil {
			_, _ = fmt.Fprintln(p.w, err.Error())
			continue
		}
		_, _ = fmt.Fprintln(p.w, res.Feedback)
		if res.Exit {
			return nil
		}
		switch parser.CommandWord(line) {
		case parser.WordList, parser.WordFind:
			p.renderList(p.exec.Displayed())
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("tui: reading commands: %w", err)
	}
	return nil
}

func (p *PlainRunner) renderList(contacts []contact.Contact) {
	for i, c := range contacts {
		_, _ = fmt.Fprintf(p.w, "%d. %s\n", i+1, contact.Format(c))
	}
}

// TUIRunner runs the Bubble Tea shell.
// Falls back to PlainRunner if the TUI program fails.
type TUIRunner struct {
	exec Executor
	r    io.Reader
	w    io.Writer
}

// Run starts the Bubble Tea program on the alternate screen.
func (t *TUIRunner) Run(ctx context.Context) error {
	p := tea.NewProgram(NewModel(t.exec),
		tea.WithContext(ctx),
		tea.WithInput(t.r),
		tea.WithOutput(t.w),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		plain := &PlainRunner{exec: t.exec, r: t.r, w: t.w}
		return plain.Run(ctx)
	}
	return nil
}
