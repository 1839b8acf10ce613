// Package shell runs command lines against the contact book: parse, execute,
// then persist the full collection whenever a command changed it.
package shell

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/smileynet/insurabook"
	"github.com/smileynet/insurabook/internal/book"
	"github.com/smileynet/insurabook/internal/command"
	"github.com/smileynet/insurabook/internal/contact"
	"github.com/smileynet/insurabook/internal/parser"
	"github.com/smileynet/insurabook/internal/storage"
)

// Saver persists the whole contact list.
type Saver interface {
	Save(contacts []contact.Contact) error
}

// Store loads and saves the contact list. *storage.FileStore satisfies it.
type Store interface {
	Saver
	Load() ([]contact.Contact, bool, error)
}

var _ Store = (*storage.FileStore)(nil)

// Session owns the book for one run of the application.
type Session struct {
	book   *book.Book
	saver  Saver
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// New creates a Session over b. A nil book starts empty.
func New(b *book.Book, opts ...Option) *Session {
	if b == nil {
		b = book.New()
	}
	s := &Session{
		book:   b,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithStore persists the book through sv after every change.
func WithStore(sv Saver) Option {
	return func(s *Session) { s.saver = sv }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads the book from store. When no data file exists and samples is
// non-nil, the sample contacts are used instead; they are written on the
// first change.
func Open(store Store, samples fs.FS, opts ...Option) (*Session, error) {
	s := New(nil, append([]Option{WithStore(store)}, opts...)...)

	contacts, found, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("shell: loading contacts: %w", err)
	}
	if !found && samples != nil {
		contacts, err = storage.SampleContacts(samples, insurabook.SampleFile)
		if err != nil {
			return nil, fmt.Errorf("shell: seeding contacts: %w", err)
		}
		s.logger.Info("seeded sample contacts", zap.Int("count", len(contacts)))
	}
	s.book.Reset(contacts)
	s.logger.Debug("book opened", zap.Int("contacts", len(contacts)), zap.Bool("found", found))
	return s, nil
}

// Execute parses and runs one command line. Parse and command failures are
// returned unchanged and leave the book untouched. A failed save is logged
// and does not fail the command.
func (s *Session) Execute(line string) (command.Result, error) {
	word := parser.CommandWord(line)
	s.logger.Debug("executing command", zap.String("command", word))

	cmd, err := parser.Parse(line)
	if err != nil {
		s.logger.Info("command rejected", zap.String("command", word), zap.Error(err))
		return command.Result{}, err
	}

	res, err := cmd.Execute(s.book)
	if err != nil {
		s.logger.Info("command failed", zap.String("command", word), zap.Error(err))
		return command.Result{}, err
	}

	if res.Changed && s.saver != nil {
		if err := s.saver.Save(s.book.All()); err != nil {
			s.logger.Error("saving contacts", zap.String("command", word), zap.Error(err))
		}
	}
	return res, nil
}

// Displayed returns the contacts currently shown, in display order.
func (s *Session) Displayed() []contact.Contact {
	return s.book.Displayed()
}

// Len returns the total number of contacts, ignoring any filter.
func (s *Session) Len() int {
	return s.book.Len()
}
