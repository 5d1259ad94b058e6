// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph_test

import (
	"testing"

	"github.com/creachadair/bpgraph"
	"github.com/creachadair/mds/mtest"
)

func TestInput(t *testing.T) {
	in := bpgraph.NewInput("Begin Object\r\n  Key=1\n")

	if in.Pos() != 0 || in.AtEOF() || in.Len() != 22 {
		t.Fatalf("NewInput: pos=%d len=%d eof=%v", in.Pos(), in.Len(), in.AtEOF())
	}
	if _, err := in.Tag("End "); err == nil {
		t.Error("Tag(End): got nil, want error")
	}
	cur, err := in.Tag("Begin ")
	if err != nil {
		t.Fatalf("Tag(Begin): unexpected error: %v", err)
	}
	word, cur := cur.TakeWhile(bpgraph.IsAlnum)
	if word != "Object" {
		t.Errorf("TakeWhile: got %q, want Object", word)
	}
	if !cur.AtLineEnd() {
		t.Errorf("AtLineEnd at %q: got false, want true", cur.String())
	}
	cur, err = cur.LineEnding()
	if err != nil {
		t.Fatalf("LineEnding: unexpected error: %v", err)
	}
	if got := cur.Location(); got != (bpgraph.LineCol{Line: 2, Column: 0}) {
		t.Errorf("Location: got %v, want 2:0", got)
	}

	if got := cur.SkipBlanks(); got.Peek() != 'K' {
		t.Errorf("SkipBlanks: next is %q, want K", got.Peek())
	}
	if _, err := cur.LineEnding(); err == nil {
		t.Error("LineEnding: got nil, want error")
	}
	key, rest := cur.SkipSpace().TakeWhile(bpgraph.IsAlnum)
	if key != "Key" || rest.Location().Column != 5 {
		t.Errorf("TakeWhile: got %q at %v, want Key at 2:5", key, rest.Location())
	}
	if got := in.Span(rest); got.Len() != rest.Pos() {
		t.Errorf("Span: got %+v, want length %d", got, rest.Pos())
	}
	if got := in.Text(rest); got != "Begin Object\r\n  Key" {
		t.Errorf("Text: got %q", got)
	}

	end := rest.Advance(rest.Len())
	if !end.AtEOF() || end.Peek() != 0 || !end.AtLineEnd() {
		t.Errorf("Advance to end: eof=%v peek=%q", end.AtEOF(), end.Peek())
	}
	mtest.MustPanic(t, func() { end.Advance(1) })
	mtest.MustPanic(t, func() { in.Advance(-1) })

	// The original input is unaffected by derived inputs.
	if in.Pos() != 0 || !in.HasPrefix("Begin") {
		t.Errorf("Input was modified: pos=%d", in.Pos())
	}
}

func TestInputBytes(t *testing.T) {
	buf := []byte("True")
	in := bpgraph.NewInputBytes(buf)
	v, rest, err := bpgraph.Boolean(in)
	if err != nil || !v || !rest.AtEOF() {
		t.Errorf("Boolean: got %v, %v, eof=%v", v, err, rest.AtEOF())
	}
}

func TestLocation(t *testing.T) {
	const text = "ab\ncd\n\nx"
	tests := []struct {
		pos  int
		want string
	}{
		{0, "1:0"},
		{1, "1:1"},
		{2, "1:2"},
		{3, "2:0"},
		{5, "2:2"},
		{6, "3:0"},
		{7, "4:0"},
		{8, "4:1"},
	}
	in := bpgraph.NewInput(text)
	for _, tc := range tests {
		if got := in.Advance(tc.pos).Location().String(); got != tc.want {
			t.Errorf("Location at %d: got %s, want %s", tc.pos, got, tc.want)
		}
	}
}
