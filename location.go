// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package jdom

import "fmt"

// A LineCol describes the position of a byte in source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
