// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package jdom

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
	Unknown              // unrecognized identifier, rejected by the parser
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	Unknown: "unknown identifier",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Lexeme is a single positioned token of the input. The Text field is a
// view into the scanned buffer; string tokens retain both surrounding
// quotation marks, and escape sequences are left undecoded.
type Lexeme struct {
	Token Token
	Text  []byte
	Pos   LineCol // position of the first byte of the token
}

// A Scanner reads lexical tokens from a buffer fully resident in memory.
// Each call to Next advances the scanner to the next token, or reports an
// error.
type Scanner struct {
	buf []byte
	pos int // offset of the next unread byte

	// Apparent line and column of buf[pos] (1-based).
	line, col int

	tok  Token
	text []byte
	tpos LineCol
	err  error
}

// NewScanner constructs a new lexical scanner that consumes input from data.
// The scanner does not copy or modify the buffer.
func NewScanner(data []byte) *Scanner {
	return &Scanner{buf: data, line: 1, col: 1}
}

// Next advances s to the next token of the input. It returns false when the
// input is exhausted or a lexical error occurs; after Next returns false,
// Err reports the error, if any.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.tok, s.text = Invalid, nil

	for s.pos < len(s.buf) {
		ch := s.buf[s.pos]

		// Discard whitespace. Only space and line feed separate tokens;
		// anything else outside a string is an unrecognized byte.
		if ch == ' ' || ch == '\n' {
			s.advance(1)
			continue
		}

		s.tpos = LineCol{Line: s.line, Column: s.col}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			start := s.pos
			s.advance(1)
			s.tok, s.text = t, s.buf[start:s.pos]
			return true
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber()
		}

		// Handle identifiers: true, false, null, or an Unknown token for
		// anything else, diagnosed with context by the parser.
		if isLetter(ch) {
			return s.scanName()
		}

		return s.failf("unexpected character %q", ch)
	}
	return false
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the raw (undecoded) text of the current token. The returned
// slice aliases the scanned buffer.
func (s *Scanner) Text() []byte { return s.text }

// Pos returns the position of the first byte of the current token.
func (s *Scanner) Pos() LineCol { return s.tpos }

// Err returns the error that stopped the scan, or nil if the input was
// consumed completely.
func (s *Scanner) Err() error { return s.err }

// scanString consumes a string literal including both quotation marks. The
// terminator search is escape-aware: a quote preceded by an unconsumed
// backslash does not end the token.
func (s *Scanner) scanString() bool {
	start := s.pos
	s.advance(1) // opening quote

	var esc bool
	for s.pos < len(s.buf) {
		ch := s.buf[s.pos]
		s.advance(1)
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			s.tok, s.text = String, s.buf[start:s.pos]
			return true
		}
	}
	return s.failf("string terminator not found")
}

// scanNumber consumes a maximal run of numeric characters. The run is not
// validated here; the parser reports malformed numbers when it converts the
// text to a float.
func (s *Scanner) scanNumber() bool {
	start := s.pos
	for s.pos < len(s.buf) && isNumRune(s.buf[s.pos]) {
		s.advance(1)
	}
	s.tok, s.text = Number, s.buf[start:s.pos]
	return true
}

// scanName consumes a maximal run of ASCII letters and classifies it as one
// of the keyword constants, or as Unknown.
func (s *Scanner) scanName() bool {
	start := s.pos
	for s.pos < len(s.buf) && isLetter(s.buf[s.pos]) {
		s.advance(1)
	}
	s.text = s.buf[start:s.pos]

	got := mem.B(s.text)
	switch {
	case got.Equal(mem.S("true")):
		s.tok = True
	case got.Equal(mem.S("false")):
		s.tok = False
	case got.Equal(mem.S("null")):
		s.tok = Null
	default:
		s.tok = Unknown
	}
	return true
}

// advance moves the scan position forward n bytes, updating the line and
// column counters for any line feeds advanced over.
func (s *Scanner) advance(n int) {
	for _, ch := range s.buf[s.pos : s.pos+n] {
		if ch == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.pos += n
}

func (s *Scanner) failf(msg string, args ...any) bool {
	s.err = &SyntaxError{Pos: s.tpos, Message: fmt.Sprintf(msg, args...)}
	return false
}

// Tokenize converts data into its complete ordered token sequence, or
// reports a *SyntaxError describing the first lexical fault.
func Tokenize(data []byte) ([]Lexeme, error) {
	s := NewScanner(data)
	var toks []Lexeme
	for s.Next() {
		toks = append(toks, Lexeme{Token: s.Token(), Text: s.Text(), Pos: s.Pos()})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-'
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
