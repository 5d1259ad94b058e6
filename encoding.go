// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph

import (
	"errors"
	"strings"

	"github.com/creachadair/bpgraph/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as an object-dump string literal. The contents are
// escaped and double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes an object-dump string literal. Double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents. Unquote reports an error for an unrecognized or incomplete
// escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, _, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
