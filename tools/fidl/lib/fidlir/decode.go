// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultDecoder accepts the IR format versions this package understands.
var DefaultDecoder = Decoder{Versions: []string{"0.0.1"}}

// Decoder turns a parsed IR document into a Library.
type Decoder struct {
	// Versions lists the accepted values of the document's "version" field.
	// An empty list accepts any version.
	Versions []string
}

// Decode decodes doc with DefaultDecoder.
func Decode(doc interface{}) (*Library, error) {
	return DefaultDecoder.Decode(doc)
}

// Decode validates doc and builds a Library from it. doc is a document tree
// as produced by ParseJSON or ParseYAML.
//
// Decoding stops at the first problem found while walking the document in a
// fixed order: version, name, the declaration arrays (const, bits, enum,
// interface, struct, table, union, xunion), declaration_order, declarations
// and library_dependencies. The returned error is always an *Error.
func (dec Decoder) Decode(doc interface{}) (*Library, error) {
	fields, ok := doc.(map[string]interface{})
	if !ok {
		return nil, malformed(fmt.Sprintf("document root is %s, not an object", describe(doc)), nil)
	}
	root := object{fields: fields}
	version, err := root.str("version")
	if err != nil {
		return nil, err
	}
	if !dec.accepts(version) {
		return nil, &Error{Kind: UnsupportedVersion, Field: "version", Path: "version", Detail: version}
	}
	d := libraryDecoder{
		lib:   &Library{Version: version},
		kinds: map[EncodedCompoundIdentifier]DeclType{},
	}
	if err := d.decode(root); err != nil {
		return nil, err
	}
	return d.lib, nil
}

func (dec Decoder) accepts(version string) bool {
	if len(dec.Versions) == 0 {
		return true
	}
	for _, v := range dec.Versions {
		if v == version {
			return true
		}
	}
	return false
}

type libraryDecoder struct {
	lib *Library
	// kinds holds every local declaration decoded so far.
	kinds map[EncodedCompoundIdentifier]DeclType
	// declared lists the same names in document order.
	declared []EncodedCompoundIdentifier
}

func (d *libraryDecoder) decode(root object) error {
	name, err := root.str("name")
	if err != nil {
		return err
	}
	d.lib.Name = EncodedLibraryIdentifier(name)

	steps := []func(object) error{
		d.decodeDecls,
		d.decodeDeclOrder,
		d.decodeDeclMap,
		d.decodeDependencies,
	}
	for _, step := range steps {
		if err := step(root); err != nil {
			return err
		}
	}

	d.lib.local = make(map[EncodedCompoundIdentifier]Decl, len(d.declared))
	d.lib.ForEachDecl(func(decl Decl) {
		d.lib.local[decl.GetName()] = decl
	})
	return nil
}

func (d *libraryDecoder) decodeDecls(root object) error {
	lib := d.lib
	lists := []struct {
		field    string
		required bool
		decode   func(object) error
	}{
		{"const_declarations", true, func(o object) error {
			c, err := d.decodeConst(o)
			lib.Consts = append(lib.Consts, c)
			return err
		}},
		{"bits_declarations", false, func(o object) error {
			b, err := d.decodeBits(o)
			lib.Bits = append(lib.Bits, b)
			return err
		}},
		{"enum_declarations", true, func(o object) error {
			e, err := d.decodeEnum(o)
			lib.Enums = append(lib.Enums, e)
			return err
		}},
		{"interface_declarations", true, func(o object) error {
			p, err := d.decodeProtocol(o)
			lib.Protocols = append(lib.Protocols, p)
			return err
		}},
		{"struct_declarations", true, func(o object) error {
			s, err := d.decodeStruct(o)
			lib.Structs = append(lib.Structs, s)
			return err
		}},
		{"table_declarations", true, func(o object) error {
			t, err := d.decodeTable(o)
			lib.Tables = append(lib.Tables, t)
			return err
		}},
		{"union_declarations", true, func(o object) error {
			u, err := d.decodeUnion(o)
			lib.Unions = append(lib.Unions, u)
			return err
		}},
		{"xunion_declarations", true, func(o object) error {
			x, err := d.decodeXUnion(o)
			lib.XUnions = append(lib.XUnions, x)
			return err
		}},
	}
	for _, l := range lists {
		elems, ok, err := root.optObjects(l.field)
		if err != nil {
			return err
		}
		if !ok {
			if l.required {
				return root.missing(l.field)
			}
			continue
		}
		for _, e := range elems {
			if err := l.decode(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// declare reads the name and attributes shared by every declaration and
// registers the name. The returned object reports errors against the new
// declaration.
func (d *libraryDecoder) declare(o object, kind DeclType) (decl, object, error) {
	name, err := o.str("name")
	if err != nil {
		return decl{}, o, err
	}
	n := EncodedCompoundIdentifier(name)
	o = o.withDecl(n)
	if prev, dup := d.kinds[n]; dup {
		return decl{}, o, &Error{
			Kind:   DuplicateDeclaration,
			Decl:   n,
			Path:   o.at("name"),
			Detail: fmt.Sprintf("already declared as %s", prev),
		}
	}
	d.kinds[n] = kind
	d.declared = append(d.declared, n)
	attrs, err := o.attributes()
	return decl{Name: n, Attributes: attrs}, o, err
}

func (d *libraryDecoder) decodeConst(o object) (Const, error) {
	var c Const
	var err error
	if c.decl, o, err = d.declare(o, ConstDeclType); err != nil {
		return c, err
	}
	if c.Type, err = o.typ("type"); err != nil {
		return c, err
	}
	c.Value, err = o.constant("value")
	return c, err
}

func (d *libraryDecoder) decodeBits(o object) (Bits, error) {
	var b Bits
	var err error
	if b.decl, o, err = d.declare(o, BitsDeclType); err != nil {
		return b, err
	}
	if b.Type, err = o.typ("type"); err != nil {
		return b, err
	}
	if mask, ok, err := o.optNumberText("mask"); err != nil {
		return b, err
	} else if ok {
		b.Mask = mask
	}
	b.Members, err = decodeList(o, "members", func(m object) (BitsMember, error) {
		name, attrs, err := m.memberHeader()
		if err != nil {
			return BitsMember{}, err
		}
		value, err := m.constant("value")
		return BitsMember{Name: name, Attributes: attrs, Value: value}, err
	})
	return b, err
}

func (d *libraryDecoder) decodeEnum(o object) (Enum, error) {
	var e Enum
	var err error
	if e.decl, o, err = d.declare(o, EnumDeclType); err != nil {
		return e, err
	}
	subtype, err := o.str("type")
	if err != nil {
		return e, err
	}
	e.Type = PrimitiveSubtype(subtype)
	e.Members, err = decodeList(o, "members", func(m object) (EnumMember, error) {
		name, attrs, err := m.memberHeader()
		if err != nil {
			return EnumMember{}, err
		}
		value, err := m.constant("value")
		return EnumMember{Name: name, Attributes: attrs, Value: value}, err
	})
	return e, err
}

func (d *libraryDecoder) decodeProtocol(o object) (Protocol, error) {
	var p Protocol
	var err error
	if p.decl, o, err = d.declare(o, InterfaceDeclType); err != nil {
		return p, err
	}
	ordinals := map[uint64]Identifier{}
	p.Methods, err = decodeList(o, "methods", func(m object) (Method, error) {
		method, err := decodeMethod(m)
		if err != nil {
			return method, err
		}
		ord := method.WireOrdinal()
		if other, dup := ordinals[ord]; dup {
			return method, &Error{
				Kind:   DuplicateOrdinal,
				Decl:   m.decl,
				Field:  string(method.Name),
				Path:   m.at("ordinal"),
				Detail: fmt.Sprintf("ordinal %d is also used by %s", ord, other),
			}
		}
		ordinals[ord] = method.Name
		return method, nil
	})
	return p, err
}

func decodeMethod(o object) (Method, error) {
	var m Method
	var err error
	if m.Name, m.Attributes, err = o.memberHeader(); err != nil {
		return m, err
	}
	if m.Ordinal, err = o.u64("ordinal"); err != nil {
		return m, err
	}
	if m.GeneratedOrdinal, err = o.u64("generated_ordinal"); err != nil {
		return m, err
	}
	if m.HasRequest, err = o.boolean("has_request"); err != nil {
		return m, err
	}
	if m.Request, err = optDecodeList(o, "maybe_request", decodeStructMember); err != nil {
		return m, err
	}
	if m.RequestSize, err = o.optU32("maybe_request_size"); err != nil {
		return m, err
	}
	if m.RequestAlignment, err = o.optU32("maybe_request_alignment"); err != nil {
		return m, err
	}
	if m.HasResponse, err = o.boolean("has_response"); err != nil {
		return m, err
	}
	if m.Response, err = optDecodeList(o, "maybe_response", decodeStructMember); err != nil {
		return m, err
	}
	if m.ResponseSize, err = o.optU32("maybe_response_size"); err != nil {
		return m, err
	}
	if m.ResponseAlignment, err = o.optU32("maybe_response_alignment"); err != nil {
		return m, err
	}
	if !m.HasRequest && !m.HasResponse {
		return m, &Error{
			Kind:   EmptyMethod,
			Decl:   o.decl,
			Field:  string(m.Name),
			Path:   o.path,
			Detail: "method has neither a request nor a response",
		}
	}
	if m.Ordinal == 0 && m.GeneratedOrdinal == 0 {
		return m, &Error{
			Kind:   InvalidOrdinal,
			Decl:   o.decl,
			Field:  string(m.Name),
			Path:   o.at("ordinal"),
			Detail: "ordinal and generated_ordinal are both zero",
		}
	}
	return m, nil
}

func (d *libraryDecoder) decodeStruct(o object) (Struct, error) {
	var s Struct
	var err error
	if s.decl, o, err = d.declare(o, StructDeclType); err != nil {
		return s, err
	}
	if s.Members, err = decodeList(o, "members", decodeStructMember); err != nil {
		return s, err
	}
	if s.Size, err = o.u32("size"); err != nil {
		return s, err
	}
	if s.MaxOutOfLine, err = o.u32("max_out_of_line"); err != nil {
		return s, err
	}
	if s.MaxHandles, err = o.optU32("max_handles"); err != nil {
		return s, err
	}
	s.Anonymous, err = o.optBool("anonymous")
	return s, err
}

func decodeStructMember(o object) (StructMember, error) {
	var m StructMember
	var err error
	if m.Name, m.Attributes, err = o.memberHeader(); err != nil {
		return m, err
	}
	if m.Type, err = o.typ("type"); err != nil {
		return m, err
	}
	if m.FieldShape, err = o.fieldShape(); err != nil {
		return m, err
	}
	m.MaybeDefaultValue, err = o.optConstant("maybe_default_value")
	return m, err
}

func (d *libraryDecoder) decodeTable(o object) (Table, error) {
	var t Table
	var err error
	if t.decl, o, err = d.declare(o, TableDeclType); err != nil {
		return t, err
	}
	elems, err := o.objects("members")
	if err != nil {
		return t, err
	}
	seen := map[uint64]bool{}
	for _, e := range elems {
		m, err := decodeTableMember(e)
		if err != nil {
			return t, err
		}
		if m.Ordinal == 0 || m.Ordinal > uint64(len(elems)) {
			return t, &Error{
				Kind:   InvalidOrdinal,
				Decl:   e.decl,
				Field:  string(m.Name),
				Path:   e.at("ordinal"),
				Detail: fmt.Sprintf("ordinal %d is outside 1..%d", m.Ordinal, len(elems)),
			}
		}
		if seen[m.Ordinal] {
			return t, &Error{
				Kind:   DuplicateOrdinal,
				Decl:   e.decl,
				Field:  string(m.Name),
				Path:   e.at("ordinal"),
				Detail: fmt.Sprintf("ordinal %d is used twice", m.Ordinal),
			}
		}
		seen[m.Ordinal] = true
		t.Members = append(t.Members, m)
	}
	if t.Size, err = o.u32("size"); err != nil {
		return t, err
	}
	t.MaxOutOfLine, err = o.u32("max_out_of_line")
	return t, err
}

func decodeTableMember(o object) (TableMember, error) {
	var m TableMember
	var err error
	if m.Reserved, err = o.boolean("reserved"); err != nil {
		return m, err
	}
	if m.Ordinal, err = o.u64("ordinal"); err != nil {
		return m, err
	}
	if m.Reserved {
		m.Attributes, err = o.attributes()
		return m, err
	}
	if m.Name, m.Attributes, err = o.memberHeader(); err != nil {
		return m, err
	}
	if m.Type, err = o.typ("type"); err != nil {
		return m, err
	}
	if m.Shape, err = o.optFieldShape(); err != nil {
		return m, err
	}
	m.MaybeDefaultValue, err = o.optConstant("maybe_default_value")
	return m, err
}

func (d *libraryDecoder) decodeUnion(o object) (Union, error) {
	var u Union
	var err error
	if u.decl, o, err = d.declare(o, UnionDeclType); err != nil {
		return u, err
	}
	u.Members, err = decodeList(o, "members", func(m object) (UnionMember, error) {
		var um UnionMember
		var err error
		if um.Name, um.Attributes, err = m.memberHeader(); err != nil {
			return um, err
		}
		if um.Type, err = m.typ("type"); err != nil {
			return um, err
		}
		um.FieldShape, err = m.fieldShape()
		return um, err
	})
	if err != nil {
		return u, err
	}
	if u.Size, err = o.u32("size"); err != nil {
		return u, err
	}
	if u.Alignment, err = o.u32("alignment"); err != nil {
		return u, err
	}
	if u.MaxOutOfLine, err = o.u32("max_out_of_line"); err != nil {
		return u, err
	}
	u.MaxHandles, err = o.optU32("max_handles")
	return u, err
}

func (d *libraryDecoder) decodeXUnion(o object) (XUnion, error) {
	var x XUnion
	var err error
	if x.decl, o, err = d.declare(o, XUnionDeclType); err != nil {
		return x, err
	}
	// xunion ordinals are hashes, so only zero and repeats are rejected.
	seen := map[uint64]bool{}
	x.Members, err = optDecodeList(o, "members", func(m object) (XUnionMember, error) {
		var xm XUnionMember
		var err error
		if xm.Ordinal, err = m.u64("ordinal"); err != nil {
			return xm, err
		}
		if xm.Name, xm.Attributes, err = m.memberHeader(); err != nil {
			return xm, err
		}
		if xm.Type, err = m.typ("type"); err != nil {
			return xm, err
		}
		if xm.FieldShape, err = m.fieldShape(); err != nil {
			return xm, err
		}
		switch {
		case xm.Ordinal == 0:
			return xm, &Error{Kind: InvalidOrdinal, Decl: m.decl, Field: string(xm.Name), Path: m.at("ordinal"), Detail: "ordinal is zero"}
		case seen[xm.Ordinal]:
			return xm, &Error{Kind: DuplicateOrdinal, Decl: m.decl, Field: string(xm.Name), Path: m.at("ordinal"), Detail: fmt.Sprintf("ordinal %d is used twice", xm.Ordinal)}
		}
		seen[xm.Ordinal] = true
		return xm, nil
	})
	if err != nil {
		return x, err
	}
	if x.Size, err = o.optU32("size"); err != nil {
		return x, err
	}
	if x.Alignment, err = o.optU32("alignment"); err != nil {
		return x, err
	}
	x.MaxOutOfLine, err = o.optU32("max_out_of_line")
	return x, err
}

func (d *libraryDecoder) decodeDeclOrder(root object) error {
	const field = "declaration_order"
	order, err := root.strs(field)
	if err != nil {
		return err
	}
	inOrder := make(map[EncodedCompoundIdentifier]bool, len(order))
	for i, s := range order {
		name := EncodedCompoundIdentifier(s)
		path := fmt.Sprintf("%s[%d]", field, i)
		if inOrder[name] {
			return &Error{Kind: DuplicateDeclaration, Decl: name, Field: field, Path: path, Detail: "listed twice in the declaration order"}
		}
		if _, ok := d.kinds[name]; !ok {
			return &Error{Kind: DanglingOrderEntry, Decl: name, Field: field, Path: path, Detail: "no such declaration"}
		}
		inOrder[name] = true
		d.lib.DeclOrder = append(d.lib.DeclOrder, name)
	}
	for _, name := range d.declared {
		if !inOrder[name] {
			return &Error{Kind: MissingOrderEntry, Decl: name, Field: field, Path: field, Detail: "declaration is absent from the declaration order"}
		}
	}
	return nil
}

func (d *libraryDecoder) decodeDeclMap(root object) error {
	const field = "declarations"
	decls, err := root.declMap(field)
	if err != nil {
		return err
	}
	for _, name := range sortedNames(decls) {
		kind := decls[name]
		if local, ok := d.kinds[name]; ok {
			if local != kind {
				return &Error{
					Kind:   KindMismatch,
					Decl:   name,
					Field:  field,
					Path:   root.at(field + "." + string(name)),
					Detail: fmt.Sprintf("indexed as %s but declared as %s", kind, local),
				}
			}
			continue
		}
		if name.LibraryName() == d.lib.Name {
			return &Error{Kind: DanglingIndexEntry, Decl: name, Field: field, Path: root.at(field + "." + string(name)), Detail: "no such declaration"}
		}
	}
	for _, name := range d.declared {
		if _, ok := decls[name]; !ok {
			return &Error{Kind: MissingIndexEntry, Decl: name, Field: field, Path: field, Detail: "declaration is absent from the declarations index"}
		}
	}
	d.lib.Decls = decls
	return nil
}

func (d *libraryDecoder) decodeDependencies(root object) error {
	deps, err := decodeList(root, "library_dependencies", func(o object) (LibraryDependency, error) {
		var dep LibraryDependency
		name, err := o.str("name")
		if err != nil {
			return dep, err
		}
		dep.Name = EncodedLibraryIdentifier(name)
		dep.Decls, err = o.declMap("declarations")
		return dep, err
	})
	if err != nil {
		return err
	}
	d.lib.Dependencies = deps

	for _, name := range sortedNames(d.lib.Decls) {
		if _, ok := d.kinds[name]; ok {
			continue
		}
		kind := d.lib.Decls[name]
		for i, dep := range deps {
			depKind, ok := dep.Decls[name]
			if !ok {
				continue
			}
			if depKind != kind {
				return &Error{
					Kind:   KindMismatch,
					Decl:   name,
					Field:  "declarations",
					Path:   fmt.Sprintf("library_dependencies[%d].declarations.%s", i, name),
					Detail: fmt.Sprintf("indexed as %s but %s declares it as %s", kind, dep.Name, depKind),
				}
			}
			break
		}
	}
	return nil
}

func sortedNames(m DeclMap) []EncodedCompoundIdentifier {
	names := make([]EncodedCompoundIdentifier, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// decodeList decodes the required array of objects at field.
func decodeList[T any](o object, field string, decode func(object) (T, error)) ([]T, error) {
	elems, err := o.objects(field)
	if err != nil {
		return nil, err
	}
	return decodeEach(elems, decode)
}

// optDecodeList is decodeList for an optional field; absence yields nil.
func optDecodeList[T any](o object, field string, decode func(object) (T, error)) ([]T, error) {
	elems, _, err := o.optObjects(field)
	if err != nil {
		return nil, err
	}
	return decodeEach(elems, decode)
}

func decodeEach[T any](elems []object, decode func(object) (T, error)) ([]T, error) {
	if len(elems) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		v, err := decode(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeType(o object) (Type, error) {
	kind, err := o.str("kind")
	if err != nil {
		return nil, err
	}
	switch TypeKind(strings.ToLower(kind)) {
	case ArrayKind:
		t := &ArrayType{}
		if t.ElementType, err = o.typ("element_type"); err != nil {
			return nil, err
		}
		if t.ElementCount, err = o.u32("element_count"); err != nil {
			return nil, err
		}
		return t, nil
	case VectorKind:
		t := &VectorType{}
		if t.ElementType, err = o.typ("element_type"); err != nil {
			return nil, err
		}
		if t.Nullable, err = o.boolean("nullable"); err != nil {
			return nil, err
		}
		if t.MaybeElementCount, err = o.optU32("maybe_element_count"); err != nil {
			return nil, err
		}
		return t, nil
	case StringKind:
		t := &StringType{}
		if t.Nullable, err = o.boolean("nullable"); err != nil {
			return nil, err
		}
		if t.MaybeElementCount, err = o.optU32("maybe_element_count"); err != nil {
			return nil, err
		}
		return t, nil
	case HandleKind:
		t := &HandleType{}
		subtype, err := o.str("subtype")
		if err != nil {
			return nil, err
		}
		t.Subtype = HandleSubtype(subtype)
		if !t.Subtype.IsValid() {
			return nil, o.unknownVariant("subtype", subtype)
		}
		if t.Nullable, err = o.boolean("nullable"); err != nil {
			return nil, err
		}
		return t, nil
	case RequestKind:
		t := &RequestType{}
		subtype, err := o.str("subtype")
		if err != nil {
			return nil, err
		}
		t.Subtype = EncodedCompoundIdentifier(subtype)
		if t.Nullable, err = o.boolean("nullable"); err != nil {
			return nil, err
		}
		return t, nil
	case PrimitiveKind:
		subtype, err := o.str("subtype")
		if err != nil {
			return nil, err
		}
		return &PrimitiveType{Subtype: PrimitiveSubtype(subtype)}, nil
	case IdentifierKind:
		t := &IdentifierType{}
		identifier, err := o.str("identifier")
		if err != nil {
			return nil, err
		}
		t.Identifier = EncodedCompoundIdentifier(identifier)
		if t.Nullable, err = o.boolean("nullable"); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, o.unknownVariant("kind", kind)
}

func decodeLiteral(o object) (Literal, error) {
	kind, err := o.str("kind")
	if err != nil {
		return nil, err
	}
	switch LiteralKind(strings.ToLower(kind)) {
	case StringLiteralKind:
		value, err := o.str("value")
		if err != nil {
			return nil, err
		}
		return &StringLiteral{Value: value}, nil
	case NumericLiteralKind:
		value, ok, err := o.optNumberText("value")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, o.missing("value")
		}
		return &NumericLiteral{Value: value}, nil
	case TrueLiteralKind:
		return &TrueLiteral{}, nil
	case FalseLiteralKind:
		return &FalseLiteral{}, nil
	case DefaultLiteralKind:
		return &DefaultLiteral{}, nil
	}
	return nil, o.unknownVariant("kind", kind)
}

func decodeConstant(o object) (Constant, error) {
	kind, err := o.str("kind")
	if err != nil {
		return nil, err
	}
	switch ConstantKind(strings.ToLower(kind)) {
	case IdentifierConstantKind:
		identifier, err := o.str("identifier")
		if err != nil {
			return nil, err
		}
		return &IdentifierConstant{Identifier: EncodedCompoundIdentifier(identifier)}, nil
	case LiteralConstantKind:
		lit, err := o.obj("literal")
		if err != nil {
			return nil, err
		}
		l, err := decodeLiteral(lit)
		if err != nil {
			return nil, err
		}
		return &LiteralConstant{Literal: l}, nil
	}
	return nil, o.unknownVariant("kind", kind)
}
