// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsondom/jdom"
	"github.com/jsondom/jdom/ast"
)

// valueDiff compares two value trees structurally. Object member order is
// irrelevant by construction: members live in a map.
func valueDiff(want, got ast.Value) string {
	return cmp.Diff(want, got, cmp.AllowUnexported(ast.Array{}, ast.Object{}))
}

const testDoc = `{
    "name": "sensor-7",
    "online": true,
    "reading": -12.25,
    "tags": ["a", "b", "c"],
    "prev": null,
    "window": {
        "open": 1,
        "close": 2e3
    }
}`

func TestParseBytes(t *testing.T) {
	v, err := ast.ParseBytes([]byte(testDoc))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	want := ast.ToValue(map[string]any{
		"name":    "sensor-7",
		"online":  true,
		"reading": -12.25,
		"tags":    []any{"a", "b", "c"},
		"prev":    nil,
		"window":  map[string]any{"open": 1, "close": 2000.0},
	})
	if diff := valueDiff(want, v); diff != "" {
		t.Errorf("Parsed value: (-want, +got)\n%s", diff)
	}

	// Spot checks through the dynamic accessors.
	if got := ast.At(v, "tags", 1); got != ast.String("b") {
		t.Errorf(`At(v, "tags", 1): got %v, want "b"`, got)
	}
	if got := ast.At(v, "tags", -1); got != ast.String("c") {
		t.Errorf(`At(v, "tags", -1): got %v, want "c"`, got)
	}
	f, err := ast.Cast[float64](ast.At(v, "window", "close"))
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if f != 2000 {
		t.Errorf("Cast: got %v, want 2000", f)
	}
}

func TestParseEmpties(t *testing.T) {
	v, err := ast.ParseBytes([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseBytes({}): %v", err)
	}
	o, err := ast.AsObject(v)
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	if o.Len() != 0 {
		t.Errorf("Object length: got %d, want 0", o.Len())
	}

	v, err = ast.ParseBytes([]byte(` [ ] `))
	if err != nil {
		t.Fatalf("ParseBytes([]): %v", err)
	}
	a, err := ast.AsArray(v)
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("Array length: got %d, want 0", a.Len())
	}
}

func TestParseEscapes(t *testing.T) {
	// The escapes in the input decode to a quote, a line feed, and "A".
	tests := []struct {
		input string
		want  ast.Value
	}{
		{`"a\"b\n\u0041"`, ast.String("a\"b\nA")},
		{`"\b\f\r\t\/"`, ast.String("\b\f\r\t/")},
		{`"\u0021"`, ast.String("!")},
	}
	for _, tc := range tests {
		v, err := ast.ParseBytes([]byte(tc.input))
		if err != nil {
			t.Errorf("ParseBytes(%#q): %v", tc.input, err)
			continue
		}
		if diff := valueDiff(tc.want, v); diff != "" {
			t.Errorf("ParseBytes(%#q): (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantPos jdom.LineCol // zero for errors without a checked position
		value   bool         // expect *ast.ValueError instead of *jdom.SyntaxError
	}{
		{"ValueExpected", `{"a": }`, `unexpected "}"`, jdom.LineCol{Line: 1, Column: 7}, false},
		{"MissingColon", `{"a" 1}`, `expected ":"`, jdom.LineCol{Line: 1, Column: 6}, false},
		{"MissingComma", `[1 2]`, `expected ",", got number`, jdom.LineCol{Line: 1, Column: 4}, false},
		{"NonStringKey", `{1: 2}`, "expected object key, got number", jdom.LineCol{Line: 1, Column: 2}, false},
		{"UnknownIdent", `tru`, `unknown identifier "tru"`, jdom.LineCol{Line: 1, Column: 1}, false},
		{"BadNumber", `[1.2.3]`, `invalid number "1.2.3"`, jdom.LineCol{Line: 1, Column: 2}, false},
		{"DuplicateKey", `{"a": 1, "a": 2}`, `duplicate object key "a"`, jdom.LineCol{Line: 1, Column: 10}, false},
		{"TrailingInput", "{} []", `unexpected "[" after value`, jdom.LineCol{Line: 1, Column: 4}, false},
		{"EmptyInput", "", "unexpected end of input", jdom.LineCol{Line: 1, Column: 1}, false},
		{"Truncated", `{"a":`, "unexpected end of input", jdom.LineCol{Line: 1, Column: 5}, false},
		{"MultiLine", "{\n\"a\": ]\n}", `unexpected "]"`, jdom.LineCol{Line: 2, Column: 6}, false},
		{"BadEscape", `"\q"`, "invalid escape char", jdom.LineCol{}, true},
		{"BadHex", `"\u00zz"`, "invalid Unicode escape", jdom.LineCol{}, true},
		{"Surrogate", `"\ud800"`, "not a valid code point", jdom.LineCol{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ast.ParseBytes([]byte(tc.input))
			if err == nil {
				t.Fatalf("ParseBytes(%#q): got nil, want error", tc.input)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Error: got %q, want substring %q", err, tc.wantMsg)
			}
			if tc.value {
				var verr *ast.ValueError
				if !errors.As(err, &verr) {
					t.Fatalf("Error type: got %T (%v), want *ValueError", err, err)
				}
				return
			}
			var serr *jdom.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Error type: got %T (%v), want *SyntaxError", err, err)
			}
			if serr.Pos != tc.wantPos {
				t.Errorf("Position: got %v, want %v", serr.Pos, tc.wantPos)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Rendering then reparsing reproduces the same structure. Object key
	// order in the rendered text is not stable and is deliberately not part
	// of this check: equality is structural.
	vals := []ast.Value{
		ast.Null,
		ast.Bool(true),
		ast.Number(-3.5),
		ast.String("plain text, no escapes"),
		ast.NewArray(ast.Number(1), ast.String("two"), ast.Null),
		ast.ToValue(map[string]any{
			"a": []any{1.5, false, "x"},
			"b": map[string]any{"nested": nil},
			"c": "words",
		}),
	}
	for _, v := range vals {
		got, err := ast.ParseBytes([]byte(v.String()))
		if err != nil {
			t.Errorf("Reparse of %#q failed: %v", v.String(), err)
			continue
		}
		if diff := valueDiff(v, got); diff != "" {
			t.Errorf("Round trip of %#q: (-want, +got)\n%s", v.String(), diff)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	// JSON applies escaping, so values holding quotes and control
	// characters survive the trip too.
	vals := []ast.Value{
		ast.String("a \"quoted\" word"),
		ast.String("line\nbreak\tand tab"),
		ast.NewArray(ast.String(`back\slash`)),
	}
	for _, v := range vals {
		got, err := ast.ParseBytes([]byte(v.JSON()))
		if err != nil {
			t.Errorf("Reparse of %#q failed: %v", v.JSON(), err)
			continue
		}
		if diff := valueDiff(v, got); diff != "" {
			t.Errorf("Round trip of %#q: (-want, +got)\n%s", v.JSON(), diff)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), "\"a \t b\""},

		{ast.Number(-0.00239), `-0.00239`},
		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(-25), `-25`},

		{ast.NewArray(), `[]`},
		{ast.NewObject(), `{}`},

		{ast.NewArray(ast.Bool(false)), "[\n    false\n]"},
		{ast.NewArray(
			ast.Number(1),
			ast.NewArray(ast.Bool(true)),
			ast.String("x"),
		), "[\n    1,\n    [\n        true\n    ],\n    \"x\"\n]"},

		// Single-member objects render deterministically.
		{ast.ToValue(map[string]any{"xs": nil}), "{\n    \"xs\": null\n}"},
		{ast.ToValue(map[string]any{
			"a": []any{1, 2},
		}), "{\n    \"a\": [\n        1,\n        2\n    ]\n}"},
	}
	for _, test := range tests {
		got := test.input.String()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %q\nWant: %q", test.input, got, test.want)
		}
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},
		{ast.Bool(true), "true"},
		{ast.Number(199), `199`},
		{ast.String("free"), `"free"`},
		{ast.String("say \"hi\""), `"say \"hi\""`},
		{ast.NewArray(), `[]`},
		{ast.NewArray(ast.Bool(true), ast.Number(199)), `[true,199]`},
		{ast.NewObject(), `{}`},
		{ast.ToValue(map[string]any{"xs": []any{5, true}}), `{"xs":[5,true]}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}
