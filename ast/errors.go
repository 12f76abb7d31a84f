// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package ast

import "fmt"

// A ValueError reports an operation applied to a value of the wrong
// variant, a malformed string escape sequence, or an array operation that
// hit an empty-collection or out-of-range edge case.
type ValueError struct {
	Message string
}

// Error satisfies the error interface.
func (e *ValueError) Error() string { return "value error: " + e.Message }

// A KeyError reports an object key lookup or insert that violated the
// presence or uniqueness contract.
type KeyError struct {
	Key     string
	Message string
}

// Error satisfies the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %s", e.Key, e.Message)
}

// An IndexError reports an array position outside the valid insertion or
// removal range.
type IndexError struct {
	Message string
}

// Error satisfies the error interface.
func (e *IndexError) Error() string { return "index error: " + e.Message }
