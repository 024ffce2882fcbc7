// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"fmt"
	"strconv"
)

/*
This file contains the variant sets of the FIDL IR: types, literals and
constants, together with the closed enumerations they reference.

Each variant set is a sealed interface with one pointer type per variant.
Consumers that must handle every variant should implement the matching
visitor interface; adding a variant adds a visitor method, which breaks every
visitor at compile time instead of letting the new variant fall through a
type switch unnoticed.
*/

type DeclType string

const (
	ConstDeclType     DeclType = "const"
	BitsDeclType      DeclType = "bits"
	EnumDeclType      DeclType = "enum"
	InterfaceDeclType DeclType = "interface"
	StructDeclType    DeclType = "struct"
	TableDeclType     DeclType = "table"
	UnionDeclType     DeclType = "union"
	XUnionDeclType    DeclType = "xunion"
)

var declTypes = map[DeclType]struct{}{
	ConstDeclType:     {},
	BitsDeclType:      {},
	EnumDeclType:      {},
	InterfaceDeclType: {},
	StructDeclType:    {},
	TableDeclType:     {},
	UnionDeclType:     {},
	XUnionDeclType:    {},
}

// IsValid reports whether dt is one of the declaration kinds the IR defines.
func (dt DeclType) IsValid() bool {
	_, ok := declTypes[dt]
	return ok
}

// DeclMap maps fully-qualified declaration names to their kind.
type DeclMap map[EncodedCompoundIdentifier]DeclType

type HandleSubtype string

const (
	HandleSubtypeNone      HandleSubtype = "handle"
	HandleSubtypeProcess   HandleSubtype = "process"
	HandleSubtypeThread    HandleSubtype = "thread"
	HandleSubtypeVmo       HandleSubtype = "vmo"
	HandleSubtypeChannel   HandleSubtype = "channel"
	HandleSubtypeEvent     HandleSubtype = "event"
	HandleSubtypePort      HandleSubtype = "port"
	HandleSubtypeInterrupt HandleSubtype = "interrupt"
	HandleSubtypeDebugLog  HandleSubtype = "debuglog"
	HandleSubtypeSocket    HandleSubtype = "socket"
	HandleSubtypeResource  HandleSubtype = "resource"
	HandleSubtypeEventpair HandleSubtype = "eventpair"
	HandleSubtypeJob       HandleSubtype = "job"
	HandleSubtypeVmar      HandleSubtype = "vmar"
	HandleSubtypeFifo      HandleSubtype = "fifo"
	HandleSubtypeGuest     HandleSubtype = "guest"
	HandleSubtypeTime      HandleSubtype = "timer"
	HandleSubtypeBti       HandleSubtype = "bti"
	HandleSubtypeProfile   HandleSubtype = "profile"
)

var handleSubtypes = map[HandleSubtype]struct{}{
	HandleSubtypeNone:      {},
	HandleSubtypeProcess:   {},
	HandleSubtypeThread:    {},
	HandleSubtypeVmo:       {},
	HandleSubtypeChannel:   {},
	HandleSubtypeEvent:     {},
	HandleSubtypePort:      {},
	HandleSubtypeInterrupt: {},
	HandleSubtypeDebugLog:  {},
	HandleSubtypeSocket:    {},
	HandleSubtypeResource:  {},
	HandleSubtypeEventpair: {},
	HandleSubtypeJob:       {},
	HandleSubtypeVmar:      {},
	HandleSubtypeFifo:      {},
	HandleSubtypeGuest:     {},
	HandleSubtypeTime:      {},
	HandleSubtypeBti:       {},
	HandleSubtypeProfile:   {},
}

// IsValid reports whether s is a known handle subtype.
func (s HandleSubtype) IsValid() bool {
	_, ok := handleSubtypes[s]
	return ok
}

// PrimitiveSubtype names a primitive. The set is not closed: the IR passes
// the name through and generators map the ones they know.
type PrimitiveSubtype string

const (
	Bool    PrimitiveSubtype = "bool"
	Status  PrimitiveSubtype = "status"
	Int8    PrimitiveSubtype = "int8"
	Int16   PrimitiveSubtype = "int16"
	Int32   PrimitiveSubtype = "int32"
	Int64   PrimitiveSubtype = "int64"
	Uint8   PrimitiveSubtype = "uint8"
	Uint16  PrimitiveSubtype = "uint16"
	Uint32  PrimitiveSubtype = "uint32"
	Uint64  PrimitiveSubtype = "uint64"
	Float32 PrimitiveSubtype = "float32"
	Float64 PrimitiveSubtype = "float64"
)

type TypeKind string

const (
	ArrayKind      TypeKind = "array"
	VectorKind     TypeKind = "vector"
	StringKind     TypeKind = "string"
	HandleKind     TypeKind = "handle"
	RequestKind    TypeKind = "request"
	PrimitiveKind  TypeKind = "primitive"
	IdentifierKind TypeKind = "identifier"
)

// Type is a FIDL type. It is implemented by exactly the seven variant types
// below.
type Type interface {
	fmt.Stringer
	Kind() TypeKind
	Accept(TypeVisitor)
	isType()
}

// TypeVisitor has one method per Type variant.
type TypeVisitor interface {
	VisitArray(*ArrayType)
	VisitVector(*VectorType)
	VisitString(*StringType)
	VisitHandle(*HandleType)
	VisitRequest(*RequestType)
	VisitPrimitive(*PrimitiveType)
	VisitIdentifier(*IdentifierType)
}

type ArrayType struct {
	ElementType  Type
	ElementCount uint32
}

type VectorType struct {
	ElementType       Type
	Nullable          bool
	MaybeElementCount *uint32
}

type StringType struct {
	Nullable          bool
	MaybeElementCount *uint32
}

type HandleType struct {
	Subtype  HandleSubtype
	Nullable bool
}

// RequestType is the server end of a channel speaking the named protocol.
type RequestType struct {
	Subtype  EncodedCompoundIdentifier
	Nullable bool
}

type PrimitiveType struct {
	Subtype PrimitiveSubtype
}

// IdentifierType refers to another declaration, possibly in a dependency.
type IdentifierType struct {
	Identifier EncodedCompoundIdentifier
	Nullable   bool
}

func (*ArrayType) Kind() TypeKind      { return ArrayKind }
func (*VectorType) Kind() TypeKind     { return VectorKind }
func (*StringType) Kind() TypeKind     { return StringKind }
func (*HandleType) Kind() TypeKind     { return HandleKind }
func (*RequestType) Kind() TypeKind    { return RequestKind }
func (*PrimitiveType) Kind() TypeKind  { return PrimitiveKind }
func (*IdentifierType) Kind() TypeKind { return IdentifierKind }

func (t *ArrayType) Accept(v TypeVisitor)      { v.VisitArray(t) }
func (t *VectorType) Accept(v TypeVisitor)     { v.VisitVector(t) }
func (t *StringType) Accept(v TypeVisitor)     { v.VisitString(t) }
func (t *HandleType) Accept(v TypeVisitor)     { v.VisitHandle(t) }
func (t *RequestType) Accept(v TypeVisitor)    { v.VisitRequest(t) }
func (t *PrimitiveType) Accept(v TypeVisitor)  { v.VisitPrimitive(t) }
func (t *IdentifierType) Accept(v TypeVisitor) { v.VisitIdentifier(t) }

func (*ArrayType) isType()      {}
func (*VectorType) isType()     {}
func (*StringType) isType()     {}
func (*HandleType) isType()     {}
func (*RequestType) isType()    {}
func (*PrimitiveType) isType()  {}
func (*IdentifierType) isType() {}

var _ = []Type{
	(*ArrayType)(nil),
	(*VectorType)(nil),
	(*StringType)(nil),
	(*HandleType)(nil),
	(*RequestType)(nil),
	(*PrimitiveType)(nil),
	(*IdentifierType)(nil),
}

func nullableSuffix(nullable bool) string {
	if nullable {
		return "?"
	}
	return ""
}

func boundSuffix(count *uint32) string {
	if count == nil {
		return ""
	}
	return ":" + strconv.FormatUint(uint64(*count), 10)
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("array<%s>:%d", t.ElementType, t.ElementCount)
}

func (t *VectorType) String() string {
	return fmt.Sprintf("vector<%s>%s%s", t.ElementType, boundSuffix(t.MaybeElementCount), nullableSuffix(t.Nullable))
}

func (t *StringType) String() string {
	return "string" + boundSuffix(t.MaybeElementCount) + nullableSuffix(t.Nullable)
}

func (t *HandleType) String() string {
	if t.Subtype == HandleSubtypeNone {
		return "handle" + nullableSuffix(t.Nullable)
	}
	return fmt.Sprintf("handle<%s>%s", t.Subtype, nullableSuffix(t.Nullable))
}

func (t *RequestType) String() string {
	return fmt.Sprintf("request<%s>%s", t.Subtype, nullableSuffix(t.Nullable))
}

func (t *PrimitiveType) String() string {
	return string(t.Subtype)
}

func (t *IdentifierType) String() string {
	return string(t.Identifier) + nullableSuffix(t.Nullable)
}

// ElementTypeOf returns the directly nested type of an array or vector, and
// nil for every other variant.
func ElementTypeOf(t Type) Type {
	switch t := t.(type) {
	case *ArrayType:
		return t.ElementType
	case *VectorType:
		return t.ElementType
	}
	return nil
}

type LiteralKind string

const (
	StringLiteralKind  LiteralKind = "string"
	NumericLiteralKind LiteralKind = "numeric"
	TrueLiteralKind    LiteralKind = "true"
	FalseLiteralKind   LiteralKind = "false"
	DefaultLiteralKind LiteralKind = "default"
)

// Literal is an inline constant value.
type Literal interface {
	fmt.Stringer
	Kind() LiteralKind
	Accept(LiteralVisitor)
	isLiteral()
}

// LiteralVisitor has one method per Literal variant.
type LiteralVisitor interface {
	VisitStringLiteral(*StringLiteral)
	VisitNumericLiteral(*NumericLiteral)
	VisitTrueLiteral(*TrueLiteral)
	VisitFalseLiteral(*FalseLiteral)
	VisitDefaultLiteral(*DefaultLiteral)
}

type StringLiteral struct {
	Value string
}

// NumericLiteral holds the producer's text for a number. It is parsed only on
// request, because the value may not fit any fixed-width type.
type NumericLiteral struct {
	Value string
}

type TrueLiteral struct{}

type FalseLiteral struct{}

type DefaultLiteral struct{}

func (*StringLiteral) Kind() LiteralKind  { return StringLiteralKind }
func (*NumericLiteral) Kind() LiteralKind { return NumericLiteralKind }
func (*TrueLiteral) Kind() LiteralKind    { return TrueLiteralKind }
func (*FalseLiteral) Kind() LiteralKind   { return FalseLiteralKind }
func (*DefaultLiteral) Kind() LiteralKind { return DefaultLiteralKind }

func (l *StringLiteral) Accept(v LiteralVisitor)  { v.VisitStringLiteral(l) }
func (l *NumericLiteral) Accept(v LiteralVisitor) { v.VisitNumericLiteral(l) }
func (l *TrueLiteral) Accept(v LiteralVisitor)    { v.VisitTrueLiteral(l) }
func (l *FalseLiteral) Accept(v LiteralVisitor)   { v.VisitFalseLiteral(l) }
func (l *DefaultLiteral) Accept(v LiteralVisitor) { v.VisitDefaultLiteral(l) }

func (*StringLiteral) isLiteral()  {}
func (*NumericLiteral) isLiteral() {}
func (*TrueLiteral) isLiteral()    {}
func (*FalseLiteral) isLiteral()   {}
func (*DefaultLiteral) isLiteral() {}

var _ = []Literal{
	(*StringLiteral)(nil),
	(*NumericLiteral)(nil),
	(*TrueLiteral)(nil),
	(*FalseLiteral)(nil),
	(*DefaultLiteral)(nil),
}

func (l *StringLiteral) String() string  { return strconv.Quote(l.Value) }
func (l *NumericLiteral) String() string { return l.Value }
func (*TrueLiteral) String() string      { return "true" }
func (*FalseLiteral) String() string     { return "false" }
func (*DefaultLiteral) String() string   { return "default" }

type ConstantKind string

const (
	IdentifierConstantKind ConstantKind = "identifier"
	LiteralConstantKind    ConstantKind = "literal"
)

// Constant is either a reference to another constant (or enum member) or an
// inline literal.
type Constant interface {
	fmt.Stringer
	Kind() ConstantKind
	Accept(ConstantVisitor)
	isConstant()
}

// ConstantVisitor has one method per Constant variant.
type ConstantVisitor interface {
	VisitIdentifierConstant(*IdentifierConstant)
	VisitLiteralConstant(*LiteralConstant)
}

type IdentifierConstant struct {
	Identifier EncodedCompoundIdentifier
}

type LiteralConstant struct {
	Literal Literal
}

func (*IdentifierConstant) Kind() ConstantKind { return IdentifierConstantKind }
func (*LiteralConstant) Kind() ConstantKind    { return LiteralConstantKind }

func (c *IdentifierConstant) Accept(v ConstantVisitor) { v.VisitIdentifierConstant(c) }
func (c *LiteralConstant) Accept(v ConstantVisitor)    { v.VisitLiteralConstant(c) }

func (*IdentifierConstant) isConstant() {}
func (*LiteralConstant) isConstant()    {}

var _ = []Constant{
	(*IdentifierConstant)(nil),
	(*LiteralConstant)(nil),
}

func (c *IdentifierConstant) String() string { return string(c.Identifier) }
func (c *LiteralConstant) String() string    { return c.Literal.String() }

