package parser

import (
	"errors"

	"github.com/smileynet/insurabook/internal/command"
)

var (
	// ErrUnknownCommand is wrapped when the command word is not recognized.
	ErrUnknownCommand = errors.New("parser: unknown command")
	// ErrInvalidIndex is wrapped when an index is not a positive integer.
	ErrInvalidIndex = errors.New("parser: invalid index")
)

const (
	MessageUnknownCommand = "Unknown command"
	MessageInvalidIndex   = "Index is not a non-zero unsigned integer."
)

// Error is a parse-time failure. Msg is shown to the user; Err, when set,
// is the underlying cause (a field violation or a sentinel above).
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// formatError reports a malformed argument string with the command's usage.
func formatError(usage string, cause error) *Error {
	return &Error{Msg: command.MessageInvalidFormat + usage, Err: cause}
}
