// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import "fmt"

// DeclRef is the result of resolving a declaration name.
type DeclRef struct {
	Name EncodedCompoundIdentifier
	Type DeclType
	// Library is the library that declares Name.
	Library EncodedLibraryIdentifier
	// Decl is the full declaration, available only for local names.
	// Dependencies contribute kinds, not definitions.
	Decl Decl
	// Member is set when a constant names an enum or bits member.
	Member Identifier
}

// IsLocal reports whether the reference was resolved within the library
// itself.
func (r DeclRef) IsLocal() bool {
	return r.Decl != nil
}

// LookupDecl returns the local declaration with the given name.
func (l *Library) LookupDecl(name EncodedCompoundIdentifier) (Decl, bool) {
	d, ok := l.local[name]
	return d, ok
}

// Resolve finds a declaration by name. Local declarations are searched first,
// then each dependency in the order the library lists them. A name found
// nowhere yields an *Error of kind NotFound.
func (l *Library) Resolve(name EncodedCompoundIdentifier) (DeclRef, error) {
	if d, ok := l.local[name]; ok {
		return DeclRef{Name: name, Type: d.DeclType(), Library: l.Name, Decl: d}, nil
	}
	for _, dep := range l.Dependencies {
		if kind, ok := dep.Decls[name]; ok {
			return DeclRef{Name: name, Type: kind, Library: dep.Name}, nil
		}
	}
	return DeclRef{}, &Error{Kind: NotFound, Decl: name, Detail: l.notFoundDetail(name)}
}

func (l *Library) notFoundDetail(name EncodedCompoundIdentifier) string {
	lib := name.Parse().Library.Encode()
	if lib == "" || lib == l.Name {
		return fmt.Sprintf("not declared by %s or its dependencies", l.Name)
	}
	for _, dep := range l.Dependencies {
		if dep.Name == lib {
			return fmt.Sprintf("not listed by dependency %s", lib)
		}
	}
	return fmt.Sprintf("library %s is not a dependency of %s", lib, l.Name)
}

// ResolveConstant resolves the declaration an identifier constant refers to.
// A reference to an enum or bits member resolves to the enclosing declaration
// with Member set; for local declarations the member must exist.
func (l *Library) ResolveConstant(c Constant) (DeclRef, error) {
	ic, ok := c.(*IdentifierConstant)
	if !ok {
		if c == nil {
			return DeclRef{}, &Error{Kind: NotFound, Detail: "no constant"}
		}
		return DeclRef{}, &Error{Kind: NotFound, Detail: fmt.Sprintf("%s constant %s does not name a declaration", c.Kind(), c)}
	}
	ref, err := l.Resolve(ic.Identifier.DeclName())
	if err != nil {
		return DeclRef{}, err
	}
	ref.Member = ic.Identifier.Parse().Member
	if ref.Member == "" || ref.Decl == nil {
		return ref, nil
	}
	if !hasMember(ref.Decl, ref.Member) {
		return DeclRef{}, &Error{Kind: NotFound, Decl: ref.Name, Field: string(ref.Member), Detail: fmt.Sprintf("%s has no member %s", ref.Name, ref.Member)}
	}
	return ref, nil
}

func hasMember(d Decl, name Identifier) bool {
	switch d := d.(type) {
	case *Enum:
		for _, m := range d.Members {
			if m.Name == name {
				return true
			}
		}
	case *Bits:
		for _, m := range d.Members {
			if m.Name == name {
				return true
			}
		}
	}
	return false
}

// ResolveType resolves the declaration a type refers to. Only identifier and
// request types refer to declarations.
func (l *Library) ResolveType(t Type) (DeclRef, error) {
	switch t := t.(type) {
	case *IdentifierType:
		return l.Resolve(t.Identifier)
	case *RequestType:
		return l.Resolve(t.Subtype)
	case nil:
		return DeclRef{}, &Error{Kind: NotFound, Detail: "no type"}
	}
	return DeclRef{}, &Error{Kind: NotFound, Detail: fmt.Sprintf("%s type %s does not name a declaration", t.Kind(), t)}
}
