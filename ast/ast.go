// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for exported graph objects, a parser that
// constructs syntax trees from source text, and their JSON rendering.
package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/bpgraph"
	"github.com/google/uuid"
)

// Variant tags, used as the discriminant of each variant in JSON output.
const (
	TagString          = "String"
	TagInteger         = "Integer"
	TagDouble          = "Double"
	TagBoolean         = "Boolean"
	TagUUID            = "Uuid"
	TagNSLOCText       = "NslocText"
	TagObjectReference = "ObjectReference"
	TagLinkedToList    = "LinkedToList"
	TagPropList        = "PropList"

	TagProp       = "Prop"
	TagCustomProp = "CustomProp"

	TagPin = "Pin"
)

// A Node is a part of a syntax tree that has a JSON encoding.
type Node interface {
	// JSON returns the compact JSON encoding of the node.
	JSON() string

	tree() jnode
}

// A Value is the value of a property. The concrete type is one of String,
// Integer, Double, Bool, UUID, NSLOCText, ObjectRef, LinkedToList, or
// PropList.
type Value interface {
	Node

	// Tag returns the variant name of the value.
	Tag() string
}

// An Element is one entry in the body of an object.
// The concrete type is Prop or CustomProp.
type Element interface {
	Node

	// Tag returns the variant name of the element.
	Tag() string
}

// A CustomValue is the decoded body of a custom property.
// The concrete type is Pin or Custom.
type CustomValue interface {
	Node

	// Tag returns the variant name of the value.
	Tag() string
}

// A Document is the ordered sequence of objects in an export.
type Document []*Object

// An Object is one Begin ... End block.
type Object struct {
	Header   ObjectHeader
	Elements []Element

	// Span is the extent of the block in its source text.
	// It is not part of the JSON encoding.
	Span bpgraph.Span
}

// Find returns the first property in the body of o with the given key, or nil.
func (o *Object) Find(key string) *Prop {
	for _, e := range o.Elements {
		if p, ok := e.(Prop); ok && p.Key == key {
			return &p
		}
	}
	return nil
}

// Props returns the properties in the body of o, in order.
func (o *Object) Props() PropList {
	var out PropList
	for _, e := range o.Elements {
		if p, ok := e.(Prop); ok {
			out = append(out, p)
		}
	}
	return out
}

// Pins returns the Pin custom properties of o, in order.
func (o *Object) Pins() []Pin {
	var out []Pin
	for _, e := range o.Elements {
		if cp, ok := e.(CustomProp); ok {
			if pin, ok := cp.Value.(Pin); ok {
				out = append(out, pin)
			}
		}
	}
	return out
}

// Class returns the value of the Class property of the header of o, or "".
func (o *Object) Class() string { return o.Header.text("Class") }

// Name returns the value of the Name property of the header of o, or "".
func (o *Object) Name() string { return o.Header.text("Name") }

func (o *Object) String() string {
	return fmt.Sprintf("Object(type=%s, name=%q, len=%d)", o.Header.ObjectType, o.Name(), len(o.Elements))
}

// An ObjectHeader is the opening line of an object block.
type ObjectHeader struct {
	ObjectType string   // the word following Begin, e.g. "Object"
	Props      PropList // properties on the same line as Begin
}

// Find returns the first property of h with the given key, or nil.
func (h ObjectHeader) Find(key string) *Prop { return h.Props.Find(key) }

func (h ObjectHeader) text(key string) string {
	if p := h.Find(key); p != nil {
		if s, ok := p.Value.(String); ok {
			return string(s)
		}
	}
	return ""
}

// A Prop is a key-value property. Keys need not be unique.
type Prop struct {
	Key   string
	Value Value
}

// Tag satisfies the Element interface.
func (Prop) Tag() string { return TagProp }

func (p Prop) String() string { return fmt.Sprintf("Prop(key=%q)", p.Key) }

// A CustomProp is a property line of the form
//
//	CustomProperties <Domain> <body>
type CustomProp struct {
	Domain string
	Value  CustomValue
}

// Tag satisfies the Element interface.
func (CustomProp) Tag() string { return TagCustomProp }

// A Pin is the body of a CustomProperties Pin line.
type Pin []Prop

// Tag satisfies the CustomValue interface.
func (Pin) Tag() string { return TagPin }

// Find returns the first property of p with the given key, or nil.
func (p Pin) Find(key string) *Prop { return PropList(p).Find(key) }

// A Custom is the body of a custom property in a domain handled by a
// DomainFunc registered with WithDomain. Its tag is the domain name.
type Custom struct {
	Domain string
	Value  Value
}

// Tag satisfies the CustomValue interface.
func (c Custom) Tag() string { return c.Domain }

// A String is a quoted string value.
type String string

// Tag satisfies the Value interface.
func (String) Tag() string { return TagString }

// An Integer is an integer value.
type Integer int64

// Tag satisfies the Value interface.
func (Integer) Tag() string { return TagInteger }

func (z Integer) String() string { return strconv.FormatInt(int64(z), 10) }

// A Double is a floating-point value.
type Double float64

// Tag satisfies the Value interface.
func (Double) Tag() string { return TagDouble }

// A Bool is a Boolean constant, True or False.
type Bool bool

// Tag satisfies the Value interface.
func (Bool) Tag() string { return TagBoolean }

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}

// A UUID is a 128-bit identifier written as 32 hexadecimal digits.
type UUID uuid.UUID

// Tag satisfies the Value interface.
func (UUID) Tag() string { return TagUUID }

// String returns the canonical hyphenated form of u.
func (u UUID) String() string { return uuid.UUID(u).String() }

// An NSLOCText is a localized text literal.
type NSLOCText struct {
	Namespace string
	Key       string
	Text      string
}

// Tag satisfies the Value interface.
func (NSLOCText) Tag() string { return TagNSLOCText }

// An ObjectRef is a reference to an object by class and path.
type ObjectRef struct {
	Class string
	Path  string
}

// NoneRef is the reference denoted by the constant None.
var NoneRef = ObjectRef{Class: bpgraph.None, Path: bpgraph.None}

// IsNone reports whether r is the None reference.
func (r ObjectRef) IsNone() bool { return r == NoneRef }

// Tag satisfies the Value interface.
func (ObjectRef) Tag() string { return TagObjectReference }

func (r ObjectRef) String() string {
	if r.IsNone() {
		return bpgraph.None
	}
	return r.Class + "'" + bpgraph.Quote(r.Path) + "'"
}

// A LinkedTo is a reference to a connected node or pin.
type LinkedTo struct {
	Name string
	UUID uuid.UUID
}

// A LinkedToList is a list of connection references.
type LinkedToList []LinkedTo

// Tag satisfies the Value interface.
func (LinkedToList) Tag() string { return TagLinkedToList }

// A PropList is a parenthesized list of properties. Its elements may
// themselves have PropList values.
type PropList []Prop

// Tag satisfies the Value interface.
func (PropList) Tag() string { return TagPropList }

// Find returns the first property of l with the given key, or nil.
func (l PropList) Find(key string) *Prop {
	for i, p := range l {
		if p.Key == key {
			return &l[i]
		}
	}
	return nil
}

// Len reports the number of properties in l.
func (l PropList) Len() int { return len(l) }
