// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

// Package jdom implements a lexical scanner for a JSON-like interchange
// format, along with the string quoting codec shared by the scanner and the
// value tree in the ast subpackage.
//
// # Scanning
//
// The Scanner type reads tokens from a byte buffer fully resident in
// memory. Construct a scanner from the buffer and call its Next method to
// iterate over the input. Next advances to the next token and reports
// whether one was found:
//
//	s := jdom.NewScanner(data)
//	for s.Next() {
//	   log.Printf("Next token: %v at %v", s.Token(), s.Pos())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Each token carries its 1-based line and column, computed from the line
// feeds advanced over. To collect the complete positioned token sequence of
// a buffer in one call, use Tokenize:
//
//	toks, err := jdom.Tokenize(data)
//
// The scanner knows nothing of document structure beyond token shapes: it
// keeps the raw text of string tokens (quotes included, escapes undecoded)
// and accepts any maximal run of numeric characters as a number token.
// Runs of letters that are not "true", "false", or "null" are reported as
// Unknown tokens so the parser can reject them with position context.
//
// # Parsing
//
// Package jdom/ast consumes the token sequence and builds a dynamically
// typed value tree; see its documentation for the value model, accessors,
// and rendering.
package jdom
