// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package ast

import "fmt"

// Path traverses v by the given path elements and returns the value it
// arrives at. A string element selects the member of an object with that
// key; an int element selects the element of an array at that offset, with
// negative offsets counting from the end. An empty path returns v itself.
//
// Path reports a *ValueError when a path element meets a value of the
// wrong kind, a *KeyError for a missing object key, and a *ValueError for
// an array offset out of range.
func Path(v Value, path ...any) (Value, error) {
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, err := AsObject(v)
			if err != nil {
				return nil, err
			}
			m, err := o.Get(t)
			if err != nil {
				return nil, err
			}
			v = m
		case int:
			a, err := AsArray(v)
			if err != nil {
				return nil, err
			}
			i := t
			if i < 0 {
				i += a.Len()
			}
			m, err := a.At(i)
			if err != nil {
				return nil, err
			}
			v = m
		default:
			return nil, &ValueError{Message: fmt.Sprintf(
				"invalid path element %T", elt)}
		}
	}
	return v, nil
}

// At is Path without the error result: it panics if any path element fails
// to resolve. It is a convenience for call sites that have already
// validated the shape of v, not a safety boundary; callers needing
// recoverable behavior must use Path or the named accessors.
func At(v Value, path ...any) Value {
	out, err := Path(v, path...)
	if err != nil {
		panic(err)
	}
	return out
}
