// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph

import (
	"go4.org/mem"
)

// An Input is a read-only view of source text together with the offset of
// its first unconsumed byte.
//
// Input is a value type. Parsing functions take an Input and return a new
// Input for the remainder; the argument is never modified, so an alternative
// that fails leaves the caller positioned where it started.
type Input struct {
	src mem.RO // the complete source text
	pos int    // offset of the first unconsumed byte
}

// NewInput constructs an Input positioned at the start of text.
func NewInput(text string) Input { return Input{src: mem.S(text)} }

// NewInputBytes constructs an Input positioned at the start of text.
// The caller must not modify text while the Input or any value derived from
// it is in use.
func NewInputBytes(text []byte) Input { return Input{src: mem.B(text)} }

// Pos reports the offset of the first unconsumed byte of in.
func (in Input) Pos() int { return in.pos }

// Len reports the number of unconsumed bytes in in.
func (in Input) Len() int { return in.src.Len() - in.pos }

// AtEOF reports whether in has no unconsumed bytes.
func (in Input) AtEOF() bool { return in.pos >= in.src.Len() }

// Rest returns a view of the unconsumed text of in.
func (in Input) Rest() mem.RO { return in.src.SliceFrom(in.pos) }

// String returns a copy of the unconsumed text of in.
func (in Input) String() string { return in.Rest().StringCopy() }

// Peek returns the next unconsumed byte of in, or 0 at the end of input.
func (in Input) Peek() byte {
	if in.AtEOF() {
		return 0
	}
	return in.src.At(in.pos)
}

// HasPrefix reports whether the unconsumed text of in begins with s.
func (in Input) HasPrefix(s string) bool { return mem.HasPrefix(in.Rest(), mem.S(s)) }

// Advance returns a copy of in with n more bytes consumed.
// It panics if fewer than n bytes remain.
func (in Input) Advance(n int) Input {
	if n < 0 || n > in.Len() {
		panic("bpgraph: advance out of range")
	}
	return Input{src: in.src, pos: in.pos + n}
}

// Span returns the span of source text from in to end.
// Both inputs must share the same source.
func (in Input) Span(end Input) Span { return Span{Pos: in.pos, End: end.pos} }

// Text returns a copy of the source text from in up to end.
func (in Input) Text(end Input) string { return in.src.Slice(in.pos, end.pos).StringCopy() }

// Location returns the line and column of the first unconsumed byte of in.
// The cost is proportional to the offset, so it is meant for reporting.
func (in Input) Location() LineCol {
	line, start := 1, 0
	head := in.src.SliceTo(in.pos)
	for {
		i := mem.IndexByte(head.SliceFrom(start), '\n')
		if i < 0 {
			break
		}
		line++
		start += i + 1
	}
	return LineCol{Line: line, Column: in.pos - start}
}

// Tag consumes the literal text s from the front of in.
func (in Input) Tag(s string) (Input, error) {
	if !in.HasPrefix(s) {
		return in, in.Errorf("expected %q", s)
	}
	return in.Advance(len(s)), nil
}

// TakeWhile consumes the longest prefix of in whose bytes all satisfy f, and
// returns its text along with the remainder. The prefix may be empty.
func (in Input) TakeWhile(f func(byte) bool) (string, Input) {
	end := in.scan(f)
	return in.Text(end), end
}

// SkipSpace consumes any spaces, tabs, carriage returns and newlines.
func (in Input) SkipSpace() Input { return in.scan(IsSpace) }

// SkipBlanks consumes any spaces and tabs, stopping at a line break.
func (in Input) SkipBlanks() Input { return in.scan(IsBlank) }

// LineEnding consumes a single "\n" or "\r\n".
func (in Input) LineEnding() (Input, error) {
	switch {
	case in.HasPrefix("\n"):
		return in.Advance(1), nil
	case in.HasPrefix("\r\n"):
		return in.Advance(2), nil
	}
	return in, in.Errorf("expected end of line")
}

// AtLineEnd reports whether in is at a line break or at the end of input.
func (in Input) AtLineEnd() bool {
	return in.AtEOF() || in.HasPrefix("\n") || in.HasPrefix("\r\n")
}

func (in Input) scan(f func(byte) bool) Input {
	end := in.pos
	for end < in.src.Len() && f(in.src.At(end)) {
		end++
	}
	return Input{src: in.src, pos: end}
}

// IsSpace reports whether b is a space, tab, carriage return, or newline.
func IsSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

// IsBlank reports whether b is a space or tab.
func IsBlank(b byte) bool { return b == ' ' || b == '\t' }

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || IsDigit(b)
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return '0' <= b && b <= '9' }

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
