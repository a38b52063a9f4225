// Package errs defines the error kinds shared by the tabular, column,
// transform and primer packages. Errors are raised where they are detected
// and travel unchanged to the command line layer, which alone decides how
// to print them and which exit code to use.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// Validation covers malformed or out-of-range user input.
	Validation Kind = iota + 1
	// Delimiter is returned when sniffing fails and no delimiter was forced.
	Delimiter
	// UserIntervention means the file structure is ambiguous and a
	// different argument is needed, not different data.
	UserIntervention
	// Undeveloped marks input shapes that are deliberately not handled yet.
	Undeveloped
	// NullData is a data-quality problem: an empty or NA-like value.
	NullData
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation error"
	case Delimiter:
		return "delimiter error"
	case UserIntervention:
		return "user intervention required"
	case Undeveloped:
		return "not supported yet"
	case NullData:
		return "null data"
	}
	return "error"
}

// Error carries a kind, a message and an optional remedy.
type Error struct {
	Kind Kind
	Msg  string
	Hint string
}

func (e *Error) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Msg, e.Hint)
}

// Is matches another *Error of the same kind, so the sentinels below work
// with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Msg == ""
}

// WithHint returns a copy of e with a suggested remedy attached.
func (e *Error) WithHint(hint string) *Error {
	c := *e
	c.Hint = hint
	return &c
}

var (
	ErrValidation       = &Error{Kind: Validation}
	ErrDelimiter        = &Error{Kind: Delimiter}
	ErrUserIntervention = &Error{Kind: UserIntervention}
	ErrUndeveloped      = &Error{Kind: Undeveloped}
	ErrNullData         = &Error{Kind: NullData}
)

func newf(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

func Validationf(format string, a ...any) *Error   { return newf(Validation, format, a...) }
func Delimiterf(format string, a ...any) *Error    { return newf(Delimiter, format, a...) }
func Interventionf(format string, a ...any) *Error { return newf(UserIntervention, format, a...) }
func Undevelopedf(format string, a ...any) *Error  { return newf(Undeveloped, format, a...) }
func NullDataf(format string, a ...any) *Error     { return newf(NullData, format, a...) }

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCode maps an error to a process exit code.
//
//	0 ok, 2 validation / null data, 3 I/O and anything unclassified,
//	4 delimiter or user intervention, 5 not supported yet.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case Validation, NullData:
		return 2
	case Delimiter, UserIntervention:
		return 4
	case Undeveloped:
		return 5
	}
	return 3
}
