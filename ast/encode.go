// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/bpgraph/internal/escape"
	"go4.org/mem"
)

// A jnode is a node of the intermediate JSON tree shared by the compact and
// indented renderers.
type jnode interface{ isJSON() }

// A jtext is the complete encoding of a JSON string, number, or constant.
type jtext string

type jarray []jnode

type jobject []jfield

type jfield struct {
	key   string // unquoted
	value jnode
}

func (jtext) isJSON()   {}
func (jarray) isJSON()  {}
func (jobject) isJSON() {}

func jstring(s string) jtext { return jtext(`"` + string(escape.JSON(mem.S(s))) + `"`) }

// tagged returns the adjacently-tagged encoding of a variant.
func tagged(tag string, payload jnode) jnode {
	return jobject{{"type", jstring(tag)}, {"value", payload}}
}

func jdouble(v float64) jtext {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "null"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return jtext(s)
}

func jbool(b bool) jtext {
	if b {
		return "true"
	}
	return "false"
}

func compact(n jnode) string {
	var sb strings.Builder
	writeCompact(&sb, n)
	return sb.String()
}

func writeCompact(sb *strings.Builder, n jnode) {
	switch t := n.(type) {
	case jtext:
		sb.WriteString(string(t))
	case jarray:
		sb.WriteByte('[')
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCompact(sb, v)
		}
		sb.WriteByte(']')
	case jobject:
		sb.WriteByte('{')
		for i, f := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(string(jstring(f.key)))
			sb.WriteByte(':')
			writeCompact(sb, f.value)
		}
		sb.WriteByte('}')
	}
}

func (d Document) tree() jnode {
	out := make(jarray, len(d))
	for i, o := range d {
		out[i] = o.tree()
	}
	return out
}

func (o *Object) tree() jnode {
	elts := make(jarray, len(o.Elements))
	for i, e := range o.Elements {
		elts[i] = tagged(e.Tag(), e.tree())
	}
	return jobject{{"header", o.Header.tree()}, {"elements", elts}}
}

func (h ObjectHeader) tree() jnode {
	return jobject{{"object_type", jstring(h.ObjectType)}, {"header_props", h.Props.props()}}
}

func (p Prop) tree() jnode {
	var v jnode = jtext("null")
	if p.Value != nil {
		v = p.Value.tree()
	}
	return jobject{{"key", jstring(p.Key)}, {"value", v}}
}

func (c CustomProp) tree() jnode {
	var v jnode = jtext("null")
	if c.Value != nil {
		v = c.Value.tree()
	}
	return jobject{{"domain", jstring(c.Domain)}, {"value", v}}
}

func (p Pin) tree() jnode { return tagged(TagPin, PropList(p).props()) }

func (c Custom) tree() jnode {
	var v jnode = jtext("null")
	if c.Value != nil {
		v = c.Value.tree()
	}
	return tagged(c.Domain, v)
}

func (s String) tree() jnode    { return tagged(TagString, jstring(string(s))) }
func (z Integer) tree() jnode   { return tagged(TagInteger, jtext(strconv.FormatInt(int64(z), 10))) }
func (f Double) tree() jnode    { return tagged(TagDouble, jdouble(float64(f))) }
func (b Bool) tree() jnode      { return tagged(TagBoolean, jbool(bool(b))) }
func (u UUID) tree() jnode      { return tagged(TagUUID, jstring(u.String())) }
func (l PropList) tree() jnode  { return tagged(TagPropList, l.props()) }
func (r ObjectRef) tree() jnode { return tagged(TagObjectReference, jarray{jstring(r.Class), jstring(r.Path)}) }

func (t NSLOCText) tree() jnode {
	return tagged(TagNSLOCText, jarray{jstring(t.Namespace), jstring(t.Key), jstring(t.Text)})
}

func (l LinkedToList) tree() jnode {
	out := make(jarray, len(l))
	for i, lt := range l {
		out[i] = jobject{{"name", jstring(lt.Name)}, {"uuid", jstring(lt.UUID.String())}}
	}
	return tagged(TagLinkedToList, out)
}

// props returns the untagged encoding of the properties of l.
func (l PropList) props() jarray {
	out := make(jarray, len(l))
	for i, p := range l {
		out[i] = p.tree()
	}
	return out
}

// JSON encodes d as a JSON array of objects.
func (d Document) JSON() string { return compact(d.tree()) }

// JSON encodes o as a JSON object with header and elements fields.
func (o *Object) JSON() string { return compact(o.tree()) }

// JSON encodes h as a JSON object with object_type and header_props fields.
func (h ObjectHeader) JSON() string { return compact(h.tree()) }

// JSON encodes p as a JSON object with key and value fields.
func (p Prop) JSON() string { return compact(p.tree()) }

// JSON encodes c as a JSON object with domain and value fields.
func (c CustomProp) JSON() string { return compact(c.tree()) }

func (p Pin) JSON() string          { return compact(p.tree()) }
func (c Custom) JSON() string       { return compact(c.tree()) }
func (s String) JSON() string       { return compact(s.tree()) }
func (z Integer) JSON() string      { return compact(z.tree()) }
func (f Double) JSON() string       { return compact(f.tree()) }
func (b Bool) JSON() string         { return compact(b.tree()) }
func (u UUID) JSON() string         { return compact(u.tree()) }
func (t NSLOCText) JSON() string    { return compact(t.tree()) }
func (r ObjectRef) JSON() string    { return compact(r.tree()) }
func (l LinkedToList) JSON() string { return compact(l.tree()) }
func (l PropList) JSON() string     { return compact(l.tree()) }

// MarshalJSON implements the json.Marshaler interface.
func (d Document) MarshalJSON() ([]byte, error) { return []byte(d.JSON()), nil }

// MarshalJSON implements the json.Marshaler interface.
func (o *Object) MarshalJSON() ([]byte, error) { return []byte(o.JSON()), nil }

// MarshalJSON implements the json.Marshaler interface.
func (p Prop) MarshalJSON() ([]byte, error) { return []byte(p.JSON()), nil }
