// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package bpgraph

import (
	"math"
	"strconv"

	"github.com/creachadair/bpgraph/internal/escape"
	"github.com/google/uuid"
	"go4.org/mem"
)

// None is the text of the null object reference. It parses as the object
// reference whose class and path are both None.
const None = "None"

// UUIDDigits is the number of hexadecimal digits in a UUID literal.
const UUIDDigits = 32

// StringLiteral parses a double-quoted string literal and returns its decoded
// contents. The escapes \\ \" \' \n \t and \r are recognized; the literal ""
// denotes the empty string.
func StringLiteral(in Input) (string, Input, error) {
	if in.Peek() != '"' {
		return "", in, in.Errorf("expected string literal")
	}
	start := in.pos + 1
	end := start
	for {
		if end >= in.src.Len() {
			// Report at the point where the input ran out, so that a string
			// that was opened but never closed counts as progress.
			return "", in, Input{src: in.src, pos: end}.Errorf("unterminated string literal")
		}
		switch in.src.At(end) {
		case '"':
			dec, off, err := escape.Unquote(in.src.Slice(start, end))
			if err != nil {
				return "", in, Input{src: in.src, pos: start + off}.Fail(err, "")
			}
			return string(dec), Input{src: in.src, pos: end + 1}, nil
		case '\\':
			end++ // skip the escaped character, checked by Unquote
		}
		end++
	}
}

// UUIDLiteral parses exactly 32 hexadecimal digits as a UUID. It fails if the
// digits are immediately followed by another hexadecimal digit, so that a
// longer hexadecimal run is never silently truncated.
func UUIDLiteral(in Input) (uuid.UUID, Input, error) {
	end := in.scan(IsHexDigit)
	switch n := end.pos - in.pos; {
	case n < UUIDDigits:
		return uuid.Nil, in, in.Errorf("expected %d hexadecimal digits, found %d", UUIDDigits, n)
	case n > UUIDDigits:
		return uuid.Nil, in, in.Advance(UUIDDigits).Errorf("hexadecimal run longer than %d digits", UUIDDigits)
	}
	id, err := uuid.Parse(in.Text(end))
	if err != nil {
		return uuid.Nil, in, in.Fail(err, "")
	}
	return id, end, nil
}

// Boolean parses the constant True or False. No other spellings are accepted.
func Boolean(in Input) (bool, Input, error) {
	switch {
	case in.HasPrefix("True"):
		return true, in.Advance(4), nil
	case in.HasPrefix("False"):
		return false, in.Advance(5), nil
	}
	return false, in, in.Errorf("expected True or False")
}

// Integer parses an optionally-signed decimal integer that fits in 64 bits.
func Integer(in Input) (int64, Input, error) {
	digits := in
	if b := in.Peek(); b == '+' || b == '-' {
		digits = in.Advance(1)
	}
	end := digits.scan(IsDigit)
	if end.pos == digits.pos {
		return 0, in, in.Errorf("expected integer")
	}
	v, err := mem.ParseInt(in.src.Slice(in.pos, end.pos), 10, 64)
	if err != nil {
		return 0, in, in.Errorf("integer %s out of range", in.Text(end))
	}
	return v, end, nil
}

// Double parses a floating-point literal: an integer part, a decimal point,
// and one or more fractional digits. Exponents are not recognized.
//
// Each fractional digit d at position k (starting from 1) contributes d/10^k
// to the magnitude of the result. The sign of the fraction is the sign written
// in front of the integer part, so "-0.5" denotes -0.5.
func Double(in Input) (float64, Input, error) {
	whole, rest, err := Integer(in)
	if err != nil {
		return 0, in, err
	}
	if rest.Peek() != '.' {
		return 0, in, rest.Errorf("expected decimal point")
	}
	frac := rest.Advance(1)
	end := frac.scan(IsDigit)
	if end.pos == frac.pos {
		return 0, in, frac.Errorf("expected digits after decimal point")
	}

	sign := 1.0
	if in.Peek() == '-' {
		sign = -1
	}
	v := float64(whole)
	for i := frac.pos; i < end.pos; i++ {
		d := float64(in.src.At(i) - '0')
		v += sign * d / math.Pow(10, float64(i-frac.pos+1))
	}
	return v, end, nil
}

// NSLOCText parses a localized-text literal of the form
//
//	NSLOCTEXT("namespace", "key", "source text")
//
// and returns its three strings in order. Commas between the strings are
// optional, and a trailing comma before the closing parenthesis is allowed.
func NSLOCText(in Input) ([3]string, Input, error) {
	var out [3]string
	cur, err := in.Tag("NSLOCTEXT(")
	if err != nil {
		return out, in, err
	}
	for i := range out {
		s, rest, err := StringLiteral(cur)
		if err != nil {
			return out, in, Within("NSLOCTEXT", err)
		}
		out[i] = s
		cur = rest.SkipSpace()
		if cur.Peek() == ',' {
			cur = cur.Advance(1).SkipSpace()
		}
	}
	if cur.Peek() != ')' {
		return out, in, Within("NSLOCTEXT", cur.Errorf("expected ')' after three strings"))
	}
	return out, cur.Advance(1), nil
}

// ObjectLiteral parses an object reference, either the constant None or a
// class-qualified path of the form
//
//	Class'"/Script/Engine.Actor"'
//
// where the path follows the same escaping rules as StringLiteral. For None,
// both the class and the path are reported as None.
func ObjectLiteral(in Input) (class, path string, _ Input, _ error) {
	if in.HasPrefix(None) {
		return None, None, in.Advance(len(None)), nil
	}
	class, cur := in.TakeWhile(isIdent)
	if class == "" {
		return "", "", in, in.Errorf("expected object reference")
	}
	if cur.Peek() != '\'' {
		return "", "", in, cur.Errorf("expected \"'\" after class name %q", class)
	}
	path, cur, err := StringLiteral(cur.Advance(1))
	if err != nil {
		return "", "", in, Within("object reference", err)
	}
	if cur.Peek() != '\'' {
		return "", "", in, cur.Errorf("expected \"'\" after object path")
	}
	return class, path, cur.Advance(1), nil
}

// LinkedObject parses a reference to a linked node or pin: a name, one or more
// spaces or tabs, and a UUID literal. The name may not contain whitespace,
// parentheses, commas, quotation marks or "=".
func LinkedObject(in Input) (string, uuid.UUID, Input, error) {
	name, cur := in.TakeWhile(isNameByte)
	if name == "" {
		return "", uuid.Nil, in, in.Errorf("expected linked object name")
	}
	gap := cur.SkipBlanks()
	if gap.pos == cur.pos {
		return "", uuid.Nil, in, cur.Errorf("expected space after linked object name %q", name)
	}
	id, rest, err := UUIDLiteral(gap)
	if err != nil {
		return "", uuid.Nil, in, Within("linked object "+strconv.Quote(name), err)
	}
	return name, id, rest, nil
}

// List parses a parenthesized, comma-separated list whose elements are parsed
// by elem. The text "()" is an empty list, and a trailing comma before the
// closing parenthesis is allowed.
func List[T any](in Input, elem func(Input) (T, Input, error)) ([]T, Input, error) {
	if in.HasPrefix("()") {
		return nil, in.Advance(2), nil
	}
	cur, err := in.Tag("(")
	if err != nil {
		return nil, in, err
	}

	var out []T
	var elemErr error // why the element list stopped, if it did
	if v, next, err := elem(cur.SkipSpace()); err != nil {
		elemErr = err
	} else {
		out, cur = append(out, v), next
		for {
			sep := cur.SkipSpace()
			if sep.Peek() != ',' {
				break
			}
			v, next, err := elem(sep.Advance(1).SkipSpace())
			if err != nil {
				elemErr = err
				break
			}
			out, cur = append(out, v), next
		}
	}

	end := cur.SkipSpace()
	if end.Peek() == ',' {
		end = end.Advance(1).SkipSpace()
	}
	if end.Peek() != ')' {
		return nil, in, Furthest(end.Errorf("expected ',' or ')'"), elemErr)
	}
	return out, end.Advance(1), nil
}

func isIdent(b byte) bool    { return IsAlnum(b) || b == '_' }
func isNameByte(b byte) bool {
	switch b {
	case '(', ')', ',', '"', '=':
		return false
	}
	return !IsSpace(b)
}
