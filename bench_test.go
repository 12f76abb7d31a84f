// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package jdom_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/jsondom/jdom"
	"github.com/jsondom/jdom/ast"
)

// benchInput synthesizes a document mixing strings with escapes, numbers,
// constants, and nested containers, big enough that scan cost dominates
// setup cost.
func benchInput() []byte {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i := 0; i < 500; i++ {
		if i > 0 {
			buf.WriteString(",\n")
		}
		fmt.Fprintf(&buf, `{"id": %d, "name": "item-%d\n", "score": %g, `+
			`"ok": %v, "prev": null, "tags": ["x", "y", "%d"]}`,
			i, i, float64(i)*1.25, i%2 == 0, i)
	}
	buf.WriteString("\n]")
	return buf.Bytes()
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := jdom.Tokenize(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("ParseBytes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ast.ParseBytes(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
