// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package jdom

import "fmt"

// SyntaxError is the concrete type of errors reported for malformed input
// text: unterminated strings, unrecognized bytes, and structural violations
// found during parsing. It carries the position of the offending token.
type SyntaxError struct {
	Pos     LineCol
	Message string

	Err error // optional underlying cause
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Syntaxf constructs a SyntaxError at pos with a formatted message.
func Syntaxf(pos LineCol, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(msg, args...)}
}
