// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jload

import "fmt"

// NoPosition is the Line and Column value of an Error whose position is not
// known, such as a failure to open the input.
const NoPosition = -1

// maxErrorText bounds the length of a diagnostic message, matching the fixed
// error buffer of the original C library.
const maxErrorText = 160

// An Error describes a failure to parse a document: a syntax error, an
// invalid encoding, or an I/O failure. It is the concrete type of all errors
// reported by the Parse functions, except errors returned by a Builder,
// which are passed through unchanged.
type Error struct {
	Line    int    // 1-based line of the failure, or NoPosition
	Column  int    // reserved; always NoPosition
	Message string // diagnostic text, at most maxErrorText bytes

	err error // wrapped cause, if any (I/O failures)
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Line == NoPosition {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.err }

// errNear formats a syntax diagnostic from the state of lex. The message is
// suffixed with the raw text of the current token, or with "near end of
// file" when no raw text remains. A nil lex reports the message verbatim
// with no position.
func errNear(lex *lexer, msg string) *Error {
	if lex == nil {
		return &Error{Line: NoPosition, Column: NoPosition, Message: truncate(msg)}
	}
	if raw := lex.saved.String(); raw != "" {
		msg += " near '" + raw + "'"
	} else {
		msg += " near end of file"
	}
	return &Error{Line: lex.line, Column: NoPosition, Message: truncate(msg)}
}

// ioError wraps an underlying system error with no position information.
func ioError(msg string, err error) *Error {
	return &Error{Line: NoPosition, Column: NoPosition, Message: truncate(msg), err: err}
}

func truncate(s string) string {
	if len(s) > maxErrorText {
		return s[:maxErrorText]
	}
	return s
}
