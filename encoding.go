// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package jdom

import (
	"errors"

	"github.com/jsondom/jdom/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a quoted string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a quoted string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for an incomplete or invalid escape sequence,
// and for a \u escape that does not denote a valid code point.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}
