// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/creachadair/bpgraph"
	"github.com/google/uuid"
)

// DefaultMaxDepth is the default limit on the nesting depth of parenthesized
// lists in a single value.
const DefaultMaxDepth = 256

// A DomainFunc parses the body of a custom property for one domain. The input
// is positioned after the domain name and the blanks following it. On
// success, it returns the decoded value and the remaining input; on failure,
// it returns in unchanged.
type DomainFunc func(p *Parser, in bpgraph.Input) (CustomValue, bpgraph.Input, error)

// A Parser parses exported graph objects. A zero Parser is not ready for use;
// call NewParser to construct one. A Parser is safe for concurrent use once
// configured.
type Parser struct {
	domains  map[string]DomainFunc
	maxDepth int
	log      *slog.Logger
}

// NewParser constructs a parser with default settings. The default parser
// recognizes the Pin custom-property domain.
func NewParser() *Parser {
	return &Parser{
		domains:  map[string]DomainFunc{TagPin: parsePin},
		maxDepth: DefaultMaxDepth,
		log:      slog.New(slog.DiscardHandler),
	}
}

// WithDomain registers parse as the handler for custom properties of the
// given domain, replacing any previous handler. If parse == nil, the domain is
// removed. It returns p to permit chaining.
func (p *Parser) WithDomain(domain string, parse DomainFunc) *Parser {
	if parse == nil {
		delete(p.domains, domain)
	} else {
		p.domains[domain] = parse
	}
	return p
}

// WithMaxDepth sets the limit on nesting of parenthesized lists. A value of
// zero or less restores DefaultMaxDepth. It returns p to permit chaining.
func (p *Parser) WithMaxDepth(n int) *Parser {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
	return p
}

// WithLogger sets the logger to which p writes debug traces. If lg == nil,
// traces are discarded. It returns p to permit chaining.
func (p *Parser) WithLogger(lg *slog.Logger) *Parser {
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}
	p.log = lg
	return p
}

var defaultParser = NewParser()

// Parse parses the complete contents of r as a document using default
// settings.
func Parse(r io.Reader) (Document, error) { return defaultParser.Parse(r) }

// ParseString parses src as a document using default settings.
func ParseString(src string) (Document, error) { return defaultParser.ParseString(src) }

// MustParse parses src as a document using default settings, and panics if
// parsing fails. It is intended for use in tests and static initializers.
func MustParse(src string) Document {
	doc, err := ParseString(src)
	if err != nil {
		panic(fmt.Sprintf("ast.MustParse: %v", err))
	}
	return doc
}

// Parse parses the complete contents of r as a document.
func (p *Parser) Parse(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return p.parse(bpgraph.NewInputBytes(data))
}

// ParseString parses src as a document.
func (p *Parser) ParseString(src string) (Document, error) {
	return p.parse(bpgraph.NewInput(src))
}

// parse parses a document and requires that it consume all of in.
func (p *Parser) parse(in bpgraph.Input) (Document, error) {
	doc, rest, err := p.Objects(in)
	if err != nil {
		return nil, bpgraph.Within("document", err)
	}
	if !rest.AtEOF() {
		p.log.Debug("unparsed input", "offset", rest.Pos(), "remaining", rest.Len())
		return nil, bpgraph.Within("document", rest.Fail(bpgraph.ErrTrailingText, strconv.Quote(rest.Snippet())))
	}
	p.log.Debug("parsed document", "objects", len(doc), "bytes", in.Len())
	return doc, nil
}

// Objects parses a sequence of zero or more objects separated by optional
// whitespace. It stops without error at the first position where no object
// begins. If an object begins but is malformed, Objects reports an error.
func (p *Parser) Objects(in bpgraph.Input) (Document, bpgraph.Input, error) {
	var doc Document
	cur := in.SkipSpace()
	for !cur.AtEOF() {
		obj, rest, err := p.Object(cur)
		if err != nil {
			if bpgraph.Offset(err) > cur.Pos() {
				return nil, in, err
			}
			break
		}
		doc = append(doc, obj)
		cur = rest.SkipSpace()
	}
	return doc, cur, nil
}

// Object parses a single Begin ... End block. The type named by End must
// match the type named by Begin.
func (p *Parser) Object(in bpgraph.Input) (*Object, bpgraph.Input, error) {
	hdr, cur, err := p.ObjectBegin(in)
	if err != nil {
		return nil, in, bpgraph.Within("object", err)
	}
	label := "object"
	if name := hdr.text("Name"); name != "" {
		label += " " + strconv.Quote(name)
	}

	elems, cur, stop := p.content(cur)
	end := cur.SkipSpace()
	typ, rest, err := p.ObjectEnd(end)
	if err != nil {
		if end.HasPrefix("Begin ") {
			err = end.Errorf("nested object blocks are not supported")
		} else {
			err = bpgraph.Furthest(stop, err)
		}
		return nil, in, bpgraph.Within(label, err)
	}
	if typ != hdr.ObjectType {
		return nil, in, bpgraph.Within(label, end.Errorf("End %s does not match Begin %s", typ, hdr.ObjectType))
	}

	obj := &Object{Header: hdr, Elements: elems, Span: in.Span(rest)}
	p.log.Debug("parsed object", "type", typ, "class", obj.Class(), "name", obj.Name(),
		"elements", len(elems), "line", in.Location().Line)
	return obj, rest, nil
}

// ObjectBegin parses the opening line of an object block, consisting of the
// keyword Begin, an object type, and zero or more header properties separated
// by blanks, through the end of the line.
//
// A header property of the form Class=<path> takes the path verbatim up to
// the next whitespace. Other header properties use the same grammar as body
// properties.
func (p *Parser) ObjectBegin(in bpgraph.Input) (ObjectHeader, bpgraph.Input, error) {
	cur, err := in.Tag("Begin ")
	if err != nil {
		return ObjectHeader{}, in, err
	}
	typ, cur := cur.TakeWhile(bpgraph.IsAlnum)
	if typ == "" {
		return ObjectHeader{}, in, cur.Errorf("expected object type after Begin")
	}

	hdr := ObjectHeader{ObjectType: typ}
	for {
		next := cur.SkipBlanks()
		if next.AtLineEnd() {
			cur = next
			break
		} else if next.Pos() == cur.Pos() {
			return ObjectHeader{}, in, bpgraph.Within("object header", next.Errorf("expected space before header property"))
		}
		prop, rest, err := p.headerProp(next)
		if err != nil {
			return ObjectHeader{}, in, bpgraph.Within("object header", err)
		}
		hdr.Props = append(hdr.Props, prop)
		cur = rest
	}
	rest, err := cur.LineEnding()
	if err != nil {
		return ObjectHeader{}, in, bpgraph.Within("object header", err)
	}
	return hdr, rest, nil
}

func (p *Parser) headerProp(in bpgraph.Input) (Prop, bpgraph.Input, error) {
	if cur, err := in.Tag("Class="); err == nil {
		path, rest := cur.TakeWhile(func(b byte) bool { return !bpgraph.IsSpace(b) })
		if path == "" {
			return Prop{}, in, cur.Errorf("expected class path after Class=")
		}
		return Prop{Key: "Class", Value: String(path)}, rest, nil
	}
	return p.prop(in, 0)
}

// ObjectContent parses the body of an object block, a sequence of properties
// and custom properties separated by whitespace. It stops at the first
// position where neither matches, and returns the elements parsed so far.
func (p *Parser) ObjectContent(in bpgraph.Input) ([]Element, bpgraph.Input) {
	elems, rest, _ := p.content(in)
	return elems, rest
}

// content is ObjectContent, also reporting why the body ended.
func (p *Parser) content(in bpgraph.Input) ([]Element, bpgraph.Input, error) {
	var elems []Element
	cur := in
	for {
		start := cur.SkipSpace()
		prop, rest, perr := p.prop(start, 0)
		if perr == nil {
			elems = append(elems, prop)
			cur = rest
			continue
		}
		cprop, rest, cerr := p.CustomProp(start)
		if cerr == nil {
			elems = append(elems, cprop)
			cur = rest
			continue
		}
		return elems, cur, bpgraph.Furthest(perr, cerr)
	}
}

// ObjectEnd parses the closing line of an object block, consisting of the
// keyword End and an object type, followed by a line break or the end of
// input. It returns the object type.
func (p *Parser) ObjectEnd(in bpgraph.Input) (string, bpgraph.Input, error) {
	cur, err := in.Tag("End ")
	if err != nil {
		return "", in, err
	}
	typ, cur := cur.TakeWhile(bpgraph.IsAlnum)
	if typ == "" {
		return "", in, cur.Errorf("expected object type after End")
	}
	cur = cur.SkipBlanks()
	if cur.AtEOF() {
		return typ, cur, nil
	}
	rest, err := cur.LineEnding()
	if err != nil {
		return "", in, err
	}
	return typ, rest, nil
}

// CustomProp parses a custom property of the form
//
//	CustomProperties <Domain> <body>
//
// where the body is parsed by the DomainFunc registered for the domain. An
// unregistered domain reports bpgraph.ErrUnsupportedDomain.
func (p *Parser) CustomProp(in bpgraph.Input) (CustomProp, bpgraph.Input, error) {
	start := in.SkipSpace()
	cur, err := start.Tag("CustomProperties")
	if err != nil {
		return CustomProp{}, in, err
	}
	name := cur.SkipBlanks()
	if name.Pos() == cur.Pos() {
		return CustomProp{}, in, cur.Errorf("expected space after CustomProperties")
	}
	domain, cur := name.TakeWhile(bpgraph.IsAlnum)
	if domain == "" {
		return CustomProp{}, in, name.Errorf("expected custom-property domain")
	}
	body := cur.SkipBlanks()
	if body.Pos() == cur.Pos() {
		return CustomProp{}, in, cur.Errorf("expected space after domain %q", domain)
	}
	parse, ok := p.domains[domain]
	if !ok {
		p.log.Debug("unsupported custom-property domain", "domain", domain, "line", name.Location().Line)
		return CustomProp{}, in, name.Fail(bpgraph.ErrUnsupportedDomain, strconv.Quote(domain))
	}
	v, rest, err := parse(p, body)
	if err != nil {
		return CustomProp{}, in, bpgraph.Within("custom property "+domain, err)
	}
	return CustomProp{Domain: domain, Value: v}, rest, nil
}

func parsePin(p *Parser, in bpgraph.Input) (CustomValue, bpgraph.Input, error) {
	props, rest, err := p.PropList(in)
	if err != nil {
		return nil, in, err
	}
	return Pin(props), rest, nil
}

// Prop parses a property of the form key=value, with optional whitespace
// before the key and around the "=". The key is a nonempty run of characters
// other than whitespace and "=".
func (p *Parser) Prop(in bpgraph.Input) (Prop, bpgraph.Input, error) { return p.prop(in, 0) }

func (p *Parser) prop(in bpgraph.Input, depth int) (Prop, bpgraph.Input, error) {
	start := in.SkipSpace()
	key, cur := start.TakeWhile(isKeyByte)
	if key == "" {
		return Prop{}, in, start.Errorf("expected property key")
	}
	cur = cur.SkipSpace()
	if cur.Peek() != '=' {
		return Prop{}, in, cur.Errorf("expected '=' after key %q", key)
	}
	v, rest, err := p.value(cur.Advance(1).SkipSpace(), depth)
	if err != nil {
		return Prop{}, in, bpgraph.Within("property "+strconv.Quote(key), err)
	}
	return Prop{Key: key, Value: v}, rest, nil
}

func isKeyByte(b byte) bool { return b != '=' && !bpgraph.IsSpace(b) }

// PropList parses a parenthesized, comma-separated list of properties.
func (p *Parser) PropList(in bpgraph.Input) (PropList, bpgraph.Input, error) {
	return p.propList(in, 1)
}

// propList parses a property list nested depth levels deep.
func (p *Parser) propList(in bpgraph.Input, depth int) (PropList, bpgraph.Input, error) {
	if in.Peek() == '(' && depth > p.maxDepth {
		return nil, in, in.Fail(bpgraph.ErrTooDeep, fmt.Sprintf("limit is %d", p.maxDepth))
	}
	props, rest, err := bpgraph.List(in, func(in bpgraph.Input) (Prop, bpgraph.Input, error) {
		return p.prop(in, depth)
	})
	if err != nil {
		return nil, in, err
	}
	return PropList(props), rest, nil
}

// LinkedToList parses a parenthesized, comma-separated list of linked object
// references.
func (p *Parser) LinkedToList(in bpgraph.Input) (LinkedToList, bpgraph.Input, error) {
	links, rest, err := bpgraph.List(in, func(in bpgraph.Input) (LinkedTo, bpgraph.Input, error) {
		name, id, rest, err := bpgraph.LinkedObject(in)
		if err != nil {
			return LinkedTo{}, in, err
		}
		return LinkedTo{Name: name, UUID: id}, rest, nil
	})
	if err != nil {
		return nil, in, err
	}
	return LinkedToList(links), rest, nil
}

// A valueFunc parses one alternative of a property value.
type valueFunc func(in bpgraph.Input, depth int) (Value, bpgraph.Input, error)

// literal adapts a literal parser to a valueFunc.
func literal[T any](parse func(bpgraph.Input) (T, bpgraph.Input, error), wrap func(T) Value) valueFunc {
	return func(in bpgraph.Input, _ int) (Value, bpgraph.Input, error) {
		v, rest, err := parse(in)
		if err != nil {
			return nil, in, err
		}
		return wrap(v), rest, nil
	}
}

func objectRef(in bpgraph.Input) (ObjectRef, bpgraph.Input, error) {
	class, path, rest, err := bpgraph.ObjectLiteral(in)
	if err != nil {
		return ObjectRef{}, in, err
	}
	return ObjectRef{Class: class, Path: path}, rest, nil
}

var (
	boolValue    = literal(bpgraph.Boolean, func(v bool) Value { return Bool(v) })
	uuidValue    = literal(bpgraph.UUIDLiteral, func(v uuid.UUID) Value { return UUID(v) })
	stringValue  = literal(bpgraph.StringLiteral, func(v string) Value { return String(v) })
	nslocValue   = literal(bpgraph.NSLOCText, func(v [3]string) Value { return NSLOCText{v[0], v[1], v[2]} })
	objectValue  = literal(objectRef, func(v ObjectRef) Value { return v })
	doubleValue  = literal(bpgraph.Double, func(v float64) Value { return Double(v) })
	integerValue = literal(bpgraph.Integer, func(v int64) Value { return Integer(v) })
)

func (p *Parser) propListValue(in bpgraph.Input, depth int) (Value, bpgraph.Input, error) {
	v, rest, err := p.propList(in, depth+1)
	if err != nil {
		return nil, in, err
	}
	return v, rest, nil
}

func (p *Parser) linkedToListValue(in bpgraph.Input, _ int) (Value, bpgraph.Input, error) {
	v, rest, err := p.LinkedToList(in)
	if err != nil {
		return nil, in, err
	}
	return v, rest, nil
}

// Value parses a property value. The alternatives are tried in order, and the
// first that matches is used:
//
//	Boolean, UUID, String, NSLOCText, ObjectReference, Double, Integer,
//	PropList, LinkedToList
//
// If none matches, Value reports the error of the alternative that got
// furthest into the input.
func (p *Parser) Value(in bpgraph.Input) (Value, bpgraph.Input, error) { return p.value(in, 0) }

func (p *Parser) value(in bpgraph.Input, depth int) (Value, bpgraph.Input, error) {
	// UUID must precede Double and Integer, so that a 32-digit run is not
	// read as a number.
	alts := [...]valueFunc{
		boolValue, uuidValue, stringValue, nslocValue, objectValue,
		doubleValue, integerValue, p.propListValue, p.linkedToListValue,
	}
	var best error
	for _, alt := range alts {
		v, rest, err := alt(in, depth)
		if err == nil {
			return v, rest, nil
		} else if errors.Is(err, bpgraph.ErrTooDeep) {
			return nil, in, err
		}
		best = bpgraph.Furthest(err, best)
	}
	if bpgraph.Offset(best) <= in.Pos() {
		return nil, in, in.Errorf("no value alternative matches %q", in.Snippet())
	}
	return nil, in, best
}
