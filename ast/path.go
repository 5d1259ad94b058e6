// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting property keys) or
// integers (denoting offsets into lists). If the path is valid, the value
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// If a path element is a string, the corresponding value must be a PropList,
// and the string resolves to the value of the first property with that key.
//
// If a path element is an integer, the corresponding value must be a
// PropList or a LinkedToList. For a PropList the integer resolves to the
// value of the property at that index. For a LinkedToList it resolves to a
// LinkedToList containing only the element at that index. Negative indices
// count backward from the end of the list (-1 is last, -2 second last, etc.).
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			c, ok := cur.(PropList)
			if !ok {
				return v, fmt.Errorf("cannot traverse %s with %q", tagOf(cur), elt)
			}
			p := c.Find(t)
			if p == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = p.Value
		case int:
			switch c := cur.(type) {
			case PropList:
				i, ok := fixListBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("list index %d out of bounds (n=%d)", i, len(c))
				}
				cur = c[i].Value
			case LinkedToList:
				i, ok := fixListBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("list index %d out of bounds (n=%d)", i, len(c))
				}
				cur = c[i : i+1]
			default:
				return v, fmt.Errorf("cannot traverse %s with %v", tagOf(cur), elt)
			}
		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

// Path traverses a path starting from the value of the first property in the
// body of o with the given key. See [Path] for the meaning of path elements.
func (o *Object) Path(key string, path ...any) (Value, error) {
	p := o.Find(key)
	if p == nil {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return Path(p.Value, path...)
}

func tagOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Tag()
}

func fixListBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
