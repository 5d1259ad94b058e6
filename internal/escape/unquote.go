// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of string literals, both for
// the object-dump format and for JSON output.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote for a backslash at the end of input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unquote decodes the contents of an object-dump string literal. The input
// must have the enclosing double quotation marks already removed.
//
// The recognized escapes are \\ \" \' \n \t and \r. Any other character
// following a backslash is an error; the returned offset is the position of
// that backslash in src.
func Unquote(src mem.RO) ([]byte, int, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), 0, nil
	}

	base := 0 // offset of src in the original input
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		if i+1 >= src.Len() {
			return nil, base + i, ErrIncomplete
		}
		switch c := src.At(i + 1); c {
		case '\\', '"', '\'':
			dec = append(dec, c)
		case 'n':
			dec = append(dec, '\n')
		case 't':
			dec = append(dec, '\t')
		case 'r':
			dec = append(dec, '\r')
		default:
			return nil, base + i, fmt.Errorf("invalid escape %q", []byte{'\\', c})
		}
		src = src.SliceFrom(i + 2)
		base += i + 2

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), 0, nil
		}
	}
}
