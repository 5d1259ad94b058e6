// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph

import (
	"errors"
	"fmt"

	"github.com/creachadair/mds/mstr"
	"go4.org/mem"
)

var (
	// ErrTrailingText is reported when text remains after the last complete
	// object of a document.
	ErrTrailingText = errors.New("text remains after parsing")

	// ErrUnsupportedDomain is reported for a custom property whose domain has
	// no registered handler.
	ErrUnsupportedDomain = errors.New("unsupported custom-property domain")

	// ErrTooDeep is reported when parenthesized lists nest more deeply than
	// the parser permits.
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError is the concrete type of errors reported when the input does not
// match the grammar.
type SyntaxError struct {
	Offset  int    // byte offset in the source where matching failed
	Message string // description of the failure

	src mem.RO
	err error
}

// Location reports the line and column where matching failed.
func (s *SyntaxError) Location() LineCol { return Input{src: s.src, pos: s.Offset}.Location() }

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location(), s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Errorf returns a *SyntaxError at the current offset of in.
func (in Input) Errorf(msg string, args ...any) error {
	return &SyntaxError{Offset: in.pos, Message: fmt.Sprintf(msg, args...), src: in.src}
}

// Fail returns a *SyntaxError at the current offset of in wrapping err.
// The message is err's text, followed by the given detail if it is not empty.
func (in Input) Fail(err error, detail string) error {
	msg := err.Error()
	if detail != "" {
		msg += ": " + detail
	}
	return &SyntaxError{Offset: in.pos, Message: msg, src: in.src, err: err}
}

// Snippet returns a short quotable prefix of the unconsumed text of in, for
// use in error messages.
func (in Input) Snippet() string {
	const maxSnippet = 32

	rest := in.Rest()
	if i := mem.IndexByte(rest, '\n'); i >= 0 {
		rest = rest.SliceTo(i)
	}
	s := rest.StringCopy()
	if t := mstr.Trunc(s, maxSnippet); t != s {
		return t + "..."
	}
	return s
}

// Within annotates err with the grammar rule that was being parsed when it
// occurred. It returns nil if err == nil.
func Within(rule string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("while parsing %s: %w", rule, err)
}

// Offset reports the source offset recorded by the *SyntaxError in the chain
// of err, or -1 if there is none.
func Offset(err error) int {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Offset
	}
	return -1
}

// Furthest returns the error among errs whose failure offset lies furthest
// into the input, preferring later arguments when offsets are equal. Nil
// errors are ignored; if all are nil, Furthest returns nil.
func Furthest(errs ...error) error {
	var best error
	bestPos := -2
	for _, err := range errs {
		if err == nil {
			continue
		}
		if pos := Offset(err); pos >= bestPos {
			best, bestPos = err, pos
		}
	}
	return best
}
