package command

import "errors"

// Sentinels for the execution-time failure kinds. Every *Error unwraps to one.
var (
	ErrInvalidIndex          = errors.New("command: invalid index")
	ErrDncImmutable          = errors.New("command: do-not-call contact is immutable")
	ErrAlreadyDnc            = errors.New("command: contact already do-not-call")
	ErrCannotAddDncTag       = errors.New("command: do-not-call tag not allowed here")
	ErrDuplicatePhone        = errors.New("command: duplicate phone")
	ErrDuplicateNameAndPhone = errors.New("command: duplicate name and phone")
	ErrDuplicateEmail        = errors.New("command: duplicate email")
)

// User-facing messages for each failure kind.
const (
	MessageInvalidIndex          = "The person index provided is invalid"
	MessageDncImmutable          = "Cannot modify fields of a Do Not Call contact."
	MessageAlreadyDnc            = "This contact is already marked as Do Not Call."
	MessageCannotAddDncTag       = "The Do Not Call tag can only be set with the dnc command."
	MessageDuplicatePhone        = "A person with this phone number already exists in the address book."
	MessageDuplicateNameAndPhone = "A person with this name and phone number already exists in the address book."
	MessageDuplicateEmail        = "A person with this email address already exists in the address book."
)

// Error is an execution-time failure. Its message is shown to the user as is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func errInvalidIndex() error       { return &Error{Kind: ErrInvalidIndex, Msg: MessageInvalidIndex} }
func errDncImmutable() error       { return &Error{Kind: ErrDncImmutable, Msg: MessageDncImmutable} }
func errAlreadyDnc() error         { return &Error{Kind: ErrAlreadyDnc, Msg: MessageAlreadyDnc} }
func errCannotAddDncTag() error    { return &Error{Kind: ErrCannotAddDncTag, Msg: MessageCannotAddDncTag} }
func errDuplicatePhone() error     { return &Error{Kind: ErrDuplicatePhone, Msg: MessageDuplicatePhone} }
func errDuplicateEmail() error     { return &Error{Kind: ErrDuplicateEmail, Msg: MessageDuplicateEmail} }
func errDuplicateNamePhone() error { return &Error{Kind: ErrDuplicateNameAndPhone, Msg: MessageDuplicateNameAndPhone} }
