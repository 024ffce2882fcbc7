// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// object is a document object together with its location, so that every
// accessor can report failures against the right path and declaration.
// A field holding null is treated as absent.
type object struct {
	fields map[string]interface{}
	path   string
	decl   EncodedCompoundIdentifier
}

func (o object) at(field string) string {
	return fieldPath(o.path, field)
}

// fieldPath extends a document path with an object field.
func fieldPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

// indexPath extends a document path with an array index.
func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func (o object) withDecl(name EncodedCompoundIdentifier) object {
	o.decl = name
	return o
}

func (o object) lookup(field string) (interface{}, bool) {
	v, ok := o.fields[field]
	return v, ok && v != nil
}

func (o object) missing(field string) error {
	return &Error{Kind: MissingField, Decl: o.decl, Field: field, Path: o.at(field)}
}

func (o object) badShape(field, want string, v interface{}) error {
	return &Error{
		Kind:   MalformedDocument,
		Decl:   o.decl,
		Field:  field,
		Path:   o.at(field),
		Detail: fmt.Sprintf("expected %s, got %s", want, describe(v)),
	}
}

func (o object) unknownVariant(field, tag string) error {
	return &Error{Kind: UnknownVariant, Decl: o.decl, Field: field, Path: o.at(field), Detail: tag}
}

func (o object) str(field string) (string, error) {
	s, ok, err := o.optStr(field)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", o.missing(field)
	}
	return s, nil
}

func (o object) optStr(field string) (string, bool, error) {
	v, ok := o.lookup(field)
	if !ok {
		return "", false, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", false, o.badShape(field, "a string", v)
	}
	return s, true, nil
}

func (o object) boolean(field string) (bool, error) {
	b, err := o.optBool(field)
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, o.missing(field)
	}
	return *b, nil
}

func (o object) optBool(field string) (*bool, error) {
	v, ok := o.lookup(field)
	if !ok {
		return nil, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return nil, o.badShape(field, "a boolean", v)
	}
	return &b, nil
}

func (o object) optNumberText(field string) (string, bool, error) {
	v, ok := o.lookup(field)
	if !ok {
		return "", false, nil
	}
	// Producers have emitted numeric literal values both as strings and as
	// bare numbers.
	if s, isStr := v.(string); isStr {
		return s, true, nil
	}
	text, isNum := numberText(v)
	if !isNum {
		return "", false, o.badShape(field, "a number", v)
	}
	return text, true, nil
}

func (o object) uint(field string, bits int) (uint64, bool, error) {
	v, ok := o.lookup(field)
	if !ok {
		return 0, false, nil
	}
	text, isNum := numberText(v)
	if !isNum {
		return 0, false, o.badShape(field, "a number", v)
	}
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, false, &Error{
			Kind:   MalformedDocument,
			Decl:   o.decl,
			Field:  field,
			Path:   o.at(field),
			Detail: fmt.Sprintf("%s is not a %d-bit unsigned integer", text, bits),
		}
	}
	return n, true, nil
}

func (o object) u32(field string) (uint32, error) {
	n, ok, err := o.uint(field, 32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, o.missing(field)
	}
	return uint32(n), nil
}

func (o object) optU32(field string) (*uint32, error) {
	n, ok, err := o.uint(field, 32)
	if err != nil || !ok {
		return nil, err
	}
	v := uint32(n)
	return &v, nil
}

func (o object) u64(field string) (uint64, error) {
	n, ok, err := o.uint(field, 64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, o.missing(field)
	}
	return n, nil
}

func (o object) child(path string, v interface{}) (object, bool) {
	fields, ok := v.(map[string]interface{})
	return object{fields: fields, path: path, decl: o.decl}, ok
}

func (o object) obj(field string) (object, error) {
	v, ok := o.lookup(field)
	if !ok {
		return object{}, o.missing(field)
	}
	c, isObj := o.child(o.at(field), v)
	if !isObj {
		return object{}, o.badShape(field, "an object", v)
	}
	return c, nil
}

func (o object) list(field string) ([]interface{}, bool, error) {
	v, ok := o.lookup(field)
	if !ok {
		return nil, false, nil
	}
	arr, isArr := v.([]interface{})
	if !isArr {
		return nil, false, o.badShape(field, "an array", v)
	}
	return arr, true, nil
}

func (o object) objects(field string) ([]object, error) {
	objs, ok, err := o.optObjects(field)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, o.missing(field)
	}
	return objs, nil
}

func (o object) optObjects(field string) ([]object, bool, error) {
	arr, ok, err := o.list(field)
	if err != nil || !ok {
		return nil, ok, err
	}
	objs := make([]object, len(arr))
	for i, v := range arr {
		path := indexPath(o.at(field), i)
		c, isObj := o.child(path, v)
		if !isObj {
			return nil, false, &Error{
				Kind:   MalformedDocument,
				Decl:   o.decl,
				Field:  field,
				Path:   path,
				Detail: fmt.Sprintf("expected an object, got %s", describe(v)),
			}
		}
		objs[i] = c
	}
	return objs, true, nil
}

func (o object) strs(field string) ([]string, error) {
	arr, ok, err := o.list(field)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, o.missing(field)
	}
	ss := make([]string, len(arr))
	for i, v := range arr {
		s, isStr := v.(string)
		if !isStr {
			return nil, &Error{
				Kind:   MalformedDocument,
				Decl:   o.decl,
				Field:  field,
				Path:   fmt.Sprintf("%s[%d]", o.at(field), i),
				Detail: fmt.Sprintf("expected a string, got %s", describe(v)),
			}
		}
		ss[i] = s
	}
	return ss, nil
}

// declMap reads an object mapping declaration names to kinds. Keys are
// visited in sorted order so the first bad entry is reported consistently.
func (o object) declMap(field string) (DeclMap, error) {
	m, err := o.obj(field)
	if err != nil {
		return nil, err
	}
	decls := make(DeclMap, len(m.fields))
	keys := make([]string, 0, len(m.fields))
	for k := range m.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kind, err := m.str(k)
		if err != nil {
			return nil, err
		}
		dt := DeclType(kind)
		if !dt.IsValid() {
			return nil, &Error{Kind: UnknownVariant, Decl: EncodedCompoundIdentifier(k), Field: field, Path: m.at(k), Detail: kind}
		}
		decls[EncodedCompoundIdentifier(k)] = dt
	}
	return decls, nil
}

func (o object) attributes() (Attributes, error) {
	return optDecodeList(o, "maybe_attributes", func(a object) (Attribute, error) {
		name, err := a.str("name")
		if err != nil {
			return Attribute{}, err
		}
		value, err := a.str("value")
		return Attribute{Name: Identifier(name), Value: value}, err
	})
}

// memberHeader reads the name and attributes of a member.
func (o object) memberHeader() (Identifier, Attributes, error) {
	name, err := o.str("name")
	if err != nil {
		return "", nil, err
	}
	attrs, err := o.attributes()
	return Identifier(name), attrs, err
}

func (o object) fieldShape() (FieldShape, error) {
	var s FieldShape
	var err error
	if s.Size, err = o.u32("size"); err != nil {
		return s, err
	}
	if s.MaxOutOfLine, err = o.u32("max_out_of_line"); err != nil {
		return s, err
	}
	if s.Alignment, err = o.u32("alignment"); err != nil {
		return s, err
	}
	s.Offset, err = o.u32("offset")
	return s, err
}

// optFieldShape reads a shape that may be omitted as a whole. If any of its
// fields is present, all of them are required.
func (o object) optFieldShape() (*FieldShape, error) {
	for _, f := range []string{"size", "max_out_of_line", "alignment", "offset"} {
		if _, ok := o.lookup(f); ok {
			s, err := o.fieldShape()
			if err != nil {
				return nil, err
			}
			return &s, nil
		}
	}
	return nil, nil
}

func (o object) typ(field string) (Type, error) {
	c, err := o.obj(field)
	if err != nil {
		return nil, err
	}
	return decodeType(c)
}

func (o object) constant(field string) (Constant, error) {
	c, err := o.obj(field)
	if err != nil {
		return nil, err
	}
	return decodeConstant(c)
}

func (o object) optConstant(field string) (Constant, error) {
	if _, ok := o.lookup(field); !ok {
		return nil, nil
	}
	return o.constant(field)
}

// numberText returns the decimal text of a numeric document node. Besides
// Number it accepts the numeric types found in hand-built documents.
func numberText(v interface{}) (string, bool) {
	switch n := v.(type) {
	case Number:
		return string(n), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return strconv.FormatFloat(n, 'g', -1, 64), true
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case fmt.Stringer:
		return n.String(), true
	}
	return "", false
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "an object"
	case []interface{}:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	}
	if _, ok := numberText(v); ok {
		return "a number"
	}
	return fmt.Sprintf("%T", v)
}
