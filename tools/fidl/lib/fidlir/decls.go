// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

type Attribute struct {
	Name  Identifier
	Value string
}

// Attributes is the list of attributes the producer attached to an element.
// An absent "maybe_attributes" field and an empty one both decode to nil.
type Attributes []Attribute

func (as Attributes) LookupAttribute(name Identifier) (Attribute, bool) {
	for _, a := range as {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

func (as Attributes) HasAttribute(name Identifier) bool {
	_, ok := as.LookupAttribute(name)
	return ok
}

// GetAttribute returns the value of the named attribute, or "" if absent.
func (as Attributes) GetAttribute(name Identifier) string {
	a, _ := as.LookupAttribute(name)
	return a.Value
}

// Decl is a top-level declaration. It is implemented by exactly the eight
// declaration kinds below.
type Decl interface {
	GetName() EncodedCompoundIdentifier
	GetAttributes() Attributes
	DeclType() DeclType
	isDecl()
}

var _ = []Decl{
	(*Const)(nil),
	(*Bits)(nil),
	(*Enum)(nil),
	(*Protocol)(nil),
	(*Struct)(nil),
	(*Table)(nil),
	(*Union)(nil),
	(*XUnion)(nil),
}

type decl struct {
	Name       EncodedCompoundIdentifier
	Attributes Attributes
}

func (d *decl) GetName() EncodedCompoundIdentifier { return d.Name }
func (d *decl) GetAttributes() Attributes          { return d.Attributes }
func (*decl) isDecl()                              {}

// FieldShape is the producer-computed placement of a field on the wire.
type FieldShape struct {
	Size         uint32
	Alignment    uint32
	Offset       uint32
	MaxOutOfLine uint32
}

// Const represents a FIDL declaration of a named constant.
type Const struct {
	decl
	Type  Type
	Value Constant
}

// Bits represents a FIDL declaration of a bits.
type Bits struct {
	decl
	Type    Type
	Mask    string
	Members []BitsMember
}

// BitsMember represents a single flag in a FIDL bits.
type BitsMember struct {
	Name       Identifier
	Attributes Attributes
	Value      Constant
}

// Enum represents a FIDL declaration of an enum.
type Enum struct {
	decl
	Type    PrimitiveSubtype
	Members []EnumMember
}

// EnumMember represents a single variant in a FIDL enum.
type EnumMember struct {
	Name       Identifier
	Attributes Attributes
	Value      Constant
}

// Protocol represents the declaration of a FIDL protocol. The IR calls these
// "interface" declarations.
type Protocol struct {
	decl
	Methods []Method
}

// Method represents the declaration of a FIDL method.
type Method struct {
	Name       Identifier
	Attributes Attributes

	// Ordinal identifies the method on the wire. It is zero when the
	// producer only derived GeneratedOrdinal.
	Ordinal          uint64
	GeneratedOrdinal uint64

	HasRequest       bool
	Request          []StructMember
	RequestSize      *uint32
	RequestAlignment *uint32

	HasResponse       bool
	Response          []StructMember
	ResponseSize      *uint32
	ResponseAlignment *uint32
}

// WireOrdinal is the ordinal used for dispatch: the explicit ordinal when
// there is one, the generated one otherwise.
func (m *Method) WireOrdinal() uint64 {
	if m.Ordinal != 0 {
		return m.Ordinal
	}
	return m.GeneratedOrdinal
}

// IsOneWay reports whether the method is a request with no reply.
func (m *Method) IsOneWay() bool {
	return m.HasRequest && !m.HasResponse
}

// IsTwoWay reports whether the method is a request with a reply.
func (m *Method) IsTwoWay() bool {
	return m.HasRequest && m.HasResponse
}

// IsEvent reports whether the method is server-initiated.
func (m *Method) IsEvent() bool {
	return !m.HasRequest && m.HasResponse
}

// Struct represents a declaration of a FIDL struct.
type Struct struct {
	decl
	Members      []StructMember
	Size         uint32
	MaxOutOfLine uint32
	MaxHandles   *uint32
	Anonymous    *bool
}

// StructMember represents the declaration of a field in a FIDL struct, or a
// parameter of a method.
type StructMember struct {
	Name       Identifier
	Attributes Attributes
	Type       Type
	FieldShape
	MaybeDefaultValue Constant
}

// Table represents a declaration of a FIDL table.
type Table struct {
	decl
	Members      []TableMember
	Size         uint32
	MaxOutOfLine uint32
}

// TableMember represents the declaration of a field in a FIDL table. A
// reserved member only occupies its ordinal: Name is empty and Type and Shape
// are nil.
type TableMember struct {
	Reserved   bool
	Ordinal    uint64
	Name       Identifier
	Attributes Attributes
	Type       Type
	// Shape is nil when the producer did not emit layout for the member.
	Shape             *FieldShape
	MaybeDefaultValue Constant
}

// MembersNoReserved returns the table's members in declaration order,
// excluding reserved members.
func (t *Table) MembersNoReserved() []TableMember {
	var members []TableMember
	for _, m := range t.Members {
		if !m.Reserved {
			members = append(members, m)
		}
	}
	return members
}

// Union represents the declaration of a FIDL union.
type Union struct {
	decl
	Members      []UnionMember
	Size         uint32
	Alignment    uint32
	MaxOutOfLine uint32
	MaxHandles   *uint32
}

// UnionMember represents the declaration of a variant of a FIDL union.
type UnionMember struct {
	Name       Identifier
	Attributes Attributes
	Type       Type
	FieldShape
}

// XUnion represents the declaration of a FIDL extensible union. Older
// producers emit only the name and attributes.
type XUnion struct {
	decl
	Members      []XUnionMember
	Size         *uint32
	Alignment    *uint32
	MaxOutOfLine *uint32
}

// XUnionMember represents a variant of an extensible union, identified on the
// wire by its ordinal.
type XUnionMember struct {
	Ordinal    uint64
	Name       Identifier
	Attributes Attributes
	Type       Type
	FieldShape
}

func (*Const) DeclType() DeclType    { return ConstDeclType }
func (*Bits) DeclType() DeclType     { return BitsDeclType }
func (*Enum) DeclType() DeclType     { return EnumDeclType }
func (*Protocol) DeclType() DeclType { return InterfaceDeclType }
func (*Struct) DeclType() DeclType   { return StructDeclType }
func (*Table) DeclType() DeclType    { return TableDeclType }
func (*Union) DeclType() DeclType    { return UnionDeclType }
func (*XUnion) DeclType() DeclType   { return XUnionDeclType }

// LibraryDependency represents a FIDL dependency on a separate library. Only
// the names and kinds of its declarations are known.
type LibraryDependency struct {
	Name  EncodedLibraryIdentifier
	Decls DeclMap
}

// Library is the top-level object for a decoded FIDL library. It contains
// lists of all declarations and dependencies within the library.
//
// A Library is never modified after Decode returns it, so it may be shared
// between goroutines.
type Library struct {
	Version      string
	Name         EncodedLibraryIdentifier
	Consts       []Const
	Bits         []Bits
	Enums        []Enum
	Protocols    []Protocol
	Structs      []Struct
	Tables       []Table
	Unions       []Union
	XUnions      []XUnion
	DeclOrder    []EncodedCompoundIdentifier
	Decls        DeclMap
	Dependencies []LibraryDependency

	local map[EncodedCompoundIdentifier]Decl
}

// ForEachDecl calls cb on each local declaration, grouped by kind in the
// order const, bits, enum, interface, struct, table, union, xunion.
func (l *Library) ForEachDecl(cb func(Decl)) {
	for i := range l.Consts {
		cb(&l.Consts[i])
	}
	for i := range l.Bits {
		cb(&l.Bits[i])
	}
	for i := range l.Enums {
		cb(&l.Enums[i])
	}
	for i := range l.Protocols {
		cb(&l.Protocols[i])
	}
	for i := range l.Structs {
		cb(&l.Structs[i])
	}
	for i := range l.Tables {
		cb(&l.Tables[i])
	}
	for i := range l.Unions {
		cb(&l.Unions[i])
	}
	for i := range l.XUnions {
		cb(&l.XUnions[i])
	}
}

// OrderedDecls returns the local declarations in declaration order.
func (l *Library) OrderedDecls() []Decl {
	decls := make([]Decl, 0, len(l.DeclOrder))
	for _, name := range l.DeclOrder {
		if d, ok := l.local[name]; ok {
			decls = append(decls, d)
		}
	}
	return decls
}

// DeclInfo returns the kind of every local and imported declaration. Local
// declarations take precedence over dependency entries of the same name.
func (l *Library) DeclInfo() DeclMap {
	m := DeclMap{}
	for i := len(l.Dependencies) - 1; i >= 0; i-- {
		for k, v := range l.Dependencies[i].Decls {
			m[k] = v
		}
	}
	l.ForEachDecl(func(d Decl) {
		m[d.GetName()] = d.DeclType()
	})
	return m
}
