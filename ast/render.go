// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package ast

import (
	"strconv"
	"strings"

	"github.com/jsondom/jdom"
)

// String renders values as indented text: four spaces per nesting level,
// one element per line, no trailing comma after the last element. Booleans
// and numbers print their literal text and Null prints "null". String
// bodies are emitted verbatim between double quotation marks with no
// escaping re-applied, so the output of a value holding quotes or control
// characters is not guaranteed to re-parse byte for byte; use JSON for
// round-trip safe output. Object members follow map iteration order, which
// is not stable between runs; callers that need stable output should walk
// the object through Keys instead.
func (null) String() string      { return "null" }
func (b Bool) String() string    { return pretty(b) }
func (n Number) String() string  { return pretty(n) }
func (s String) String() string  { return pretty(s) }
func (a *Array) String() string  { return pretty(a) }
func (o *Object) String() string { return pretty(o) }

// JSON renders values as compact single-line text with string escaping
// applied, suitable for byte-for-byte round trips through the parser.
// Object members follow map iteration order.
func (null) JSON() string      { return "null" }
func (b Bool) JSON() string    { return compact(b) }
func (n Number) JSON() string  { return compact(n) }
func (s String) JSON() string  { return compact(s) }
func (a *Array) JSON() string  { return compact(a) }
func (o *Object) JSON() string { return compact(o) }

const indentUnit = "    "

func pretty(v Value) string {
	var sb strings.Builder
	writePretty(&sb, v, 0)
	return sb.String()
}

func writePretty(sb *strings.Builder, v Value, depth int) {
	switch t := v.(type) {
	case null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(t)))
	case Number:
		sb.WriteString(formatNumber(float64(t)))
	case String:
		sb.WriteByte('"')
		sb.WriteString(string(t))
		sb.WriteByte('"')
	case *Array:
		if len(t.elts) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, e := range t.elts {
			writeIndent(sb, depth+1)
			writePretty(sb, e, depth+1)
			if i < len(t.elts)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		writeIndent(sb, depth)
		sb.WriteByte(']')
	case *Object:
		if len(t.m) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		i := 0
		for k, e := range t.m {
			writeIndent(sb, depth+1)
			sb.WriteByte('"')
			sb.WriteString(k)
			sb.WriteString(`": `)
			writePretty(sb, e, depth+1)
			if i < len(t.m)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
			i++
		}
		writeIndent(sb, depth)
		sb.WriteByte('}')
	}
}

func compact(v Value) string {
	var sb strings.Builder
	writeCompact(&sb, v)
	return sb.String()
}

func writeCompact(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(t)))
	case Number:
		sb.WriteString(formatNumber(float64(t)))
	case String:
		sb.WriteString(jdom.Quote(string(t)))
	case *Array:
		sb.WriteByte('[')
		for i, e := range t.elts {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCompact(sb, e)
		}
		sb.WriteByte(']')
	case *Object:
		sb.WriteByte('{')
		i := 0
		for k, e := range t.m {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(jdom.Quote(k))
			sb.WriteByte(':')
			writeCompact(sb, e)
			i++
		}
		sb.WriteByte('}')
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentUnit)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
