// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"text/tabwriter"
)

// A Formatter carries the settings for pretty-printing syntax trees as JSON.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text added at each level of nesting.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string { return cmp.Or(f.Indent, "  ") }

func (f Formatter) maxLineItems() int { return 3 }

// Format renders a pretty-printed JSON representation of v to w with default
// settings.
func Format(w io.Writer, v Node) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Node) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed JSON representation of v to w using the
// settings from f. The output has the same meaning as v.JSON(), and ends with
// a newline.
func (f Formatter) Format(w io.Writer, v Node) error {
	tw := tabwriter.NewWriter(w, 4, 4, 1, ' ', 0)
	f.formatNode(tw, v.tree(), "", "")
	io.WriteString(tw, "\n")
	return tw.Flush()
}

type writeFlusher interface {
	io.Writer
	Flush() error
}

// formatNode writes a representation of n to w, prefixed by init, with
// nested lines indented by indent.
func (f Formatter) formatNode(w writeFlusher, n jnode, init, indent string) {
	switch t := n.(type) {
	case jtext:
		fmt.Fprint(w, init, string(t))
	case jarray:
		f.formatArray(w, t, init, indent)
	case jobject:
		f.formatObject(w, t, init, indent)
	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

func (f Formatter) formatArray(w writeFlusher, a jarray, init, indent string) {
	if f.isBoring(a) {
		fmt.Fprint(w, init, "[")
		for i, v := range a {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatNode(w, v, "", "")
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, init, "[\n")
	adent := indent + f.indent()
	for i, v := range a {
		f.formatNode(w, v, adent, adent)
		if i < len(a)-1 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatObject(w writeFlusher, o jobject, init, indent string) {
	if f.isBoring(o) {
		fmt.Fprint(w, init, "{")
		for i, m := range o {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, jstring(m.key), ": ")
			f.formatNode(w, m.value, "", "")
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, init, "{\n")
	mdent := indent + f.indent()
	for i, m := range o {
		fmt.Fprint(w, mdent, jstring(m.key), f.objSep(m.value))
		f.formatNode(w, m.value, "", mdent)
		if i < len(o)-1 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

// objSep returns a key-value separator for the given value.
// Boring values get indented so they line up in columns;
// non-boring values are stapled directly to the key.
func (f Formatter) objSep(n jnode) string {
	if f.isBoring(n) {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether n has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(n jnode) bool {
	switch t := n.(type) {
	case jtext:
		return true
	case jarray:
		if len(t) > f.maxLineItems() {
			return false
		}
		for _, v := range t {
			if _, ok := v.(jtext); !ok {
				return false
			}
		}
		return true
	case jobject:
		if len(t) > 2 {
			return false
		}
		for _, m := range t {
			if _, ok := m.value.(jtext); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
