// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph_test

import (
	"io"
	"strings"
	"testing"

	"github.com/creachadair/bpgraph"
	"github.com/creachadair/bpgraph/ast"
	"github.com/creachadair/bpgraph/internal/testutil"
)

func BenchmarkParse(b *testing.B) {
	// Concatenate all the fixtures, repeated, to get a realistically sized
	// clipboard export.
	var sb strings.Builder
	for range 50 {
		for _, name := range testutil.Graphs() {
			sb.WriteString(testutil.Graph(name))
		}
	}
	input := sb.String()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Parse", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if _, err := ast.ParseString(input); err != nil {
				b.Fatalf("Parse: unexpected error: %v", err)
			}
		}
	})

	doc := ast.MustParse(input)
	b.Run("JSON", func(b *testing.B) {
		for b.Loop() {
			_ = doc.JSON()
		}
	})
	b.Run("Format", func(b *testing.B) {
		for b.Loop() {
			if err := ast.Format(io.Discard, doc); err != nil {
				b.Fatalf("Format: unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkLiterals(b *testing.B) {
	b.Run("UUID", func(b *testing.B) {
		in := bpgraph.NewInput("39364FF3470F9B07BCE5F6A5FB580445")
		for b.Loop() {
			if _, _, err := bpgraph.UUIDLiteral(in); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("String", func(b *testing.B) {
		in := bpgraph.NewInput(`"/Script/BlueprintGraph.K2Node_\"VariableGet\""`)
		for b.Loop() {
			if _, _, err := bpgraph.StringLiteral(in); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("Double", func(b *testing.B) {
		in := bpgraph.NewInput("-560.123400")
		for b.Loop() {
			if _, _, err := bpgraph.Double(in); err != nil {
				b.Fatal(err)
			}
		}
	})
}
