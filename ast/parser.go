// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsondom/jdom"
)

// Parse reads all of r and parses a single document value from it. In case
// of malformed input the returned error has type *jdom.SyntaxError, or
// *ValueError for an invalid string escape sequence.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses a single document value from data. Tokens remaining
// after the first complete value are a syntax error.
func ParseBytes(data []byte) (_ Value, err error) {
	toks, terr := jdom.Tokenize(data)
	if terr != nil {
		return nil, terr
	}
	p := &parser{toks: toks}
	defer p.recoverParseError(&err)

	v := p.parseValue()
	if p.pos < len(p.toks) {
		lx := p.toks[p.pos]
		p.failf(lx, "unexpected %v after value", lx.Token)
	}
	return v, nil
}

// A parser consumes a token sequence with a single forward-moving cursor,
// building one value per grammar production. Expectation failures unwind
// through panic and are converted back to errors at the entry point.
type parser struct {
	toks []jdom.Lexeme
	pos  int
}

type parsePanic struct{ err error }

func (p *parser) recoverParseError(errp *error) {
	if v := recover(); v != nil {
		pe, ok := v.(parsePanic)
		if !ok {
			panic(v)
		}
		*errp = pe.err
	}
}

func (p *parser) fail(err error) {
	panic(parsePanic{err})
}

func (p *parser) failf(at jdom.Lexeme, msg string, args ...any) {
	p.fail(jdom.Syntaxf(at.Pos, msg, args...))
}

// cur returns the token under the cursor, failing if the input is
// exhausted.
func (p *parser) cur() jdom.Lexeme {
	if p.pos >= len(p.toks) {
		pos := jdom.LineCol{Line: 1, Column: 1}
		if n := len(p.toks); n > 0 {
			pos = p.toks[n-1].Pos
		}
		p.fail(jdom.Syntaxf(pos, "unexpected end of input"))
	}
	return p.toks[p.pos]
}

func (p *parser) advance() { p.pos++ }

// expect consumes the token under the cursor, which must have the given
// type.
func (p *parser) expect(tok jdom.Token) jdom.Lexeme {
	lx := p.cur()
	if lx.Token != tok {
		p.failf(lx, "expected %v, got %v", tok, lx.Token)
	}
	p.advance()
	return lx
}

// parseValue consumes a single value of any type. On return the cursor
// rests on the token immediately following the value's last token.
func (p *parser) parseValue() Value {
	lx := p.cur()
	switch lx.Token {
	case jdom.LBrace:
		return p.parseObject()
	case jdom.LSquare:
		return p.parseArray()
	case jdom.String:
		p.advance()
		return String(p.unquote(lx))
	case jdom.Number:
		p.advance()
		f, err := strconv.ParseFloat(string(lx.Text), 64)
		if err != nil {
			p.failf(lx, "invalid number %q", lx.Text)
		}
		return Number(f)
	case jdom.True:
		p.advance()
		return Bool(true)
	case jdom.False:
		p.advance()
		return Bool(false)
	case jdom.Null:
		p.advance()
		return Null
	case jdom.Unknown:
		p.failf(lx, "unknown identifier %q", lx.Text)
	default:
		p.failf(lx, "unexpected %v", lx.Token)
	}
	panic("unreachable")
}

// parseObject consumes an object.
// Precondition: the cursor rests on LBrace.
func (p *parser) parseObject() *Object {
	p.expect(jdom.LBrace)
	obj := NewObject()
	if p.cur().Token == jdom.RBrace {
		p.advance()
		return obj
	}
	for {
		key := p.cur()
		if key.Token != jdom.String {
			p.failf(key, "expected object key, got %v", key.Token)
		}
		p.advance()
		name := p.unquote(key)
		p.expect(jdom.Colon)

		if err := obj.Insert(name, p.parseValue()); err != nil {
			p.failf(key, "duplicate object key %q", name)
		}
		if p.cur().Token == jdom.RBrace {
			p.advance()
			return obj
		}
		p.expect(jdom.Comma)
	}
}

// parseArray consumes an array.
// Precondition: the cursor rests on LSquare.
func (p *parser) parseArray() *Array {
	p.expect(jdom.LSquare)
	arr := NewArray()
	if p.cur().Token == jdom.RSquare {
		p.advance()
		return arr
	}
	for {
		arr.Push(p.parseValue())
		if p.cur().Token == jdom.RSquare {
			p.advance()
			return arr
		}
		p.expect(jdom.Comma)
	}
}

// unquote strips the quotation marks of a string token and decodes its
// escape sequences. Decoding failures are reported as a *ValueError with
// the token's position.
func (p *parser) unquote(lx jdom.Lexeme) string {
	dec, err := jdom.Unquote(lx.Text)
	if err != nil {
		p.fail(&ValueError{Message: fmt.Sprintf("at %s: %v", lx.Pos, err)})
	}
	return string(dec)
}
