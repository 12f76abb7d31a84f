// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

// Package ast defines the dynamically-typed value tree built from parsed
// documents, and the checked and unchecked accessors used to navigate,
// mutate, cast, and render it.
package ast

import (
	"fmt"
	"sort"
)

// Kind identifies the variant stored in a Value.
type Kind int

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is one node of a document tree: Null, a Bool, a Number, a String,
// an *Array, or an *Object. The set of implementations is closed. Container
// values own their descendants outright; accessors return views into the
// tree, so mutating a retrieved container mutates the tree that holds it.
type Value interface {
	// Kind reports the variant stored in the value.
	Kind() Kind

	// String renders the value as indented text; see the method comments on
	// the concrete types for the exact grammar.
	String() string

	// JSON renders the value as compact text with string escaping applied.
	JSON() string

	isValue()
}

type null struct{}

// Null is the value representing the absence of a value.
var Null Value = null{}

func (null) Kind() Kind { return KindNull }
func (null) isValue()   {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) isValue()   {}

// A Number is a numeric value. All numbers are 64-bit floats.
type Number float64

func (Number) Kind() Kind { return KindNumber }
func (Number) isValue()   {}

// A String is a string value. Its contents are fully decoded; it carries no
// quotation marks or escape sequences.
type String string

func (String) Kind() Kind { return KindString }
func (String) isValue()   {}

// An Array is an ordered sequence of values. Order is preserved exactly as
// parsed or mutated.
type Array struct {
	elts []Value
}

// NewArray constructs an array holding the given values. The array takes
// ownership of the slice.
func NewArray(vs ...Value) *Array { return &Array{elts: vs} }

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elts) }

// Elements returns the elements of a. The slice is a view into the array;
// the caller must not grow or shrink it.
func (a *Array) Elements() []Value { return a.elts }

// At returns the element at offset i. It reports a *ValueError if i is out
// of bounds.
func (a *Array) At(i int) (Value, error) {
	if i < 0 || i >= len(a.elts) {
		return nil, a.bounds(i)
	}
	return a.elts[i], nil
}

// Set replaces the element at offset i. It reports a *ValueError if i is
// out of bounds.
func (a *Array) Set(i int, v Value) error {
	if i < 0 || i >= len(a.elts) {
		return a.bounds(i)
	}
	a.elts[i] = v
	return nil
}

// Push appends v to the end of a.
func (a *Array) Push(v Value) { a.elts = append(a.elts, v) }

// Pop removes and returns the last element of a. It reports a *ValueError
// if a is empty.
func (a *Array) Pop() (Value, error) {
	if len(a.elts) == 0 {
		return nil, &ValueError{Message: "pop from empty array"}
	}
	last := a.elts[len(a.elts)-1]
	a.elts = a.elts[:len(a.elts)-1]
	return last, nil
}

// Insert inserts v at offset pos, shifting later elements up. Inserting at
// pos == Len() appends. It reports an *IndexError if pos is negative or
// exceeds the length.
func (a *Array) Insert(pos int, v Value) error {
	if pos < 0 || pos > len(a.elts) {
		return &IndexError{Message: fmt.Sprintf(
			"insert position %d outside length %d", pos, len(a.elts))}
	}
	a.elts = append(a.elts, nil)
	copy(a.elts[pos+1:], a.elts[pos:])
	a.elts[pos] = v
	return nil
}

// Remove removes and returns the element at offset pos, shifting later
// elements down. It reports an *IndexError if no element exists at pos.
func (a *Array) Remove(pos int) (Value, error) {
	if pos < 0 || pos >= len(a.elts) {
		return nil, &IndexError{Message: fmt.Sprintf(
			"remove position %d outside length %d", pos, len(a.elts))}
	}
	out := a.elts[pos]
	a.elts = append(a.elts[:pos], a.elts[pos+1:]...)
	return out, nil
}

func (a *Array) bounds(i int) *ValueError {
	return &ValueError{Message: fmt.Sprintf(
		"index %d out of range [0..%d)", i, len(a.elts))}
}

// An Object is a collection of key-value members. Keys are unique within an
// object; iteration order is unspecified.
type Object struct {
	m map[string]Value
}

// NewObject constructs an empty object.
func NewObject() *Object { return &Object{m: make(map[string]Value)} }

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.m) }

// Has reports whether o contains a member with the given key.
func (o *Object) Has(key string) bool { _, ok := o.m[key]; return ok }

// Get returns the value mapped by key. It reports a *KeyError if key is not
// present.
func (o *Object) Get(key string) (Value, error) {
	v, ok := o.m[key]
	if !ok {
		return nil, &KeyError{Key: key, Message: "not found"}
	}
	return v, nil
}

// Insert adds a new member to o. It reports a *KeyError if key is already
// present; the existing value is left unchanged. Use Set to overwrite.
func (o *Object) Insert(key string, v Value) error {
	if _, ok := o.m[key]; ok {
		return &KeyError{Key: key, Message: "already present"}
	}
	o.set(key, v)
	return nil
}

// Set maps key to v, replacing any existing member with that key.
func (o *Object) Set(key string, v Value) { o.set(key, v) }

func (o *Object) set(key string, v Value) {
	if o.m == nil {
		o.m = make(map[string]Value)
	}
	o.m[key] = v
}

// Remove removes and returns the value mapped by key. It reports a
// *KeyError if key is not present.
func (o *Object) Remove(key string) (Value, error) {
	v, ok := o.m[key]
	if !ok {
		return nil, &KeyError{Key: key, Message: "not found"}
	}
	delete(o.m, key)
	return v, nil
}

// Keys returns the member keys of o in sorted order. Since map iteration
// order is unspecified, callers that need stable rendering should walk the
// object through Keys.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.m))
	for k := range o.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsObject returns v as an *Object, or reports a *ValueError naming the
// variant actually found.
func AsObject(v Value) (*Object, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, wrongKind(KindObject, v)
	}
	return o, nil
}

// AsArray returns v as an *Array, or reports a *ValueError naming the
// variant actually found.
func AsArray(v Value) (*Array, error) {
	a, ok := v.(*Array)
	if !ok {
		return nil, wrongKind(KindArray, v)
	}
	return a, nil
}

// Get returns the member of v with the given key. It reports a *ValueError
// if v is not an object, or a *KeyError if key is not present.
func Get(v Value, key string) (Value, error) {
	o, err := AsObject(v)
	if err != nil {
		return nil, err
	}
	return o.Get(key)
}

// Index returns the element of v at offset i. It reports a *ValueError if v
// is not an array or i is out of bounds.
func Index(v Value, i int) (Value, error) {
	a, err := AsArray(v)
	if err != nil {
		return nil, err
	}
	return a.At(i)
}

func wrongKind(want Kind, got Value) *ValueError {
	if got == nil {
		return &ValueError{Message: fmt.Sprintf("want %v, got nil", want)}
	}
	return &ValueError{Message: fmt.Sprintf("want %v, got %v", want, got.Kind())}
}
