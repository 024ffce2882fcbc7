// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"strings"
)

// Identifier is a single, unqualified name: a declaration's local name, a
// member name, or one component of a library name.
type Identifier string

// A LibraryIdentifier identifies a FIDL library, from the library declaration
// at the start of a FIDL file.
type LibraryIdentifier []Identifier

// A CompoundIdentifier identifies a particular declaration in a library or
// member in a declaration.
type CompoundIdentifier struct {
	// Library the declaration is in.
	Library LibraryIdentifier
	// Name of the declaration.
	Name Identifier
	// Member of the declaration. If empty, the identifier refers to the
	// declaration itself.
	Member Identifier
}

// An EncodedLibraryIdentifier is a LibraryIdentifier encoded as a string,
// suitable for use in map keys.
type EncodedLibraryIdentifier string

// An EncodedCompoundIdentifier is a CompoundIdentifier encoded as a string,
// suitable for use in map keys. This is the fully-qualified name used
// throughout the IR, e.g. "fuchsia.io/Node".
type EncodedCompoundIdentifier string

// Encode formats a LibraryIdentifier as a string by joining the identifier
// components with ".", e.g. "my.fidl.library".
func (li LibraryIdentifier) Encode() EncodedLibraryIdentifier {
	ss := make([]string, len(li))
	for i, s := range li {
		ss[i] = string(s)
	}
	return EncodedLibraryIdentifier(strings.Join(ss, "."))
}

// EncodeDecl encodes the declaration portion of the CompoundIdentifier, e.g.
// "my.fidl.library/MyProtocol".
func (ci CompoundIdentifier) EncodeDecl() EncodedCompoundIdentifier {
	return EncodedCompoundIdentifier(string(ci.Library.Encode()) + "/" + string(ci.Name))
}

// Parts splits the library identifier back into component parts.
func (eli EncodedLibraryIdentifier) Parts() []string {
	return strings.Split(string(eli), ".")
}

// Parse decodes an EncodedLibraryIdentifier back into a LibraryIdentifier.
func (eli EncodedLibraryIdentifier) Parse() LibraryIdentifier {
	parts := eli.Parts()
	idents := make([]Identifier, len(parts))
	for i, part := range parts {
		idents[i] = Identifier(part)
	}
	return LibraryIdentifier(idents)
}

// Parts splits an EncodedCompoundIdentifier into an optional library name and
// a declaration or member id.
func (eci EncodedCompoundIdentifier) Parts() []string {
	return strings.SplitN(string(eci), "/", 2)
}

// LibraryName retrieves the library name from an EncodedCompoundIdentifier.
// Built-in names have no library and yield "".
func (eci EncodedCompoundIdentifier) LibraryName() EncodedLibraryIdentifier {
	if parts := eci.Parts(); len(parts) == 2 {
		return EncodedLibraryIdentifier(parts[0])
	}
	return ""
}

// DeclName strips any member suffix, leaving the fully-qualified declaration
// name. This operation is idempotent.
func (eci EncodedCompoundIdentifier) DeclName() EncodedCompoundIdentifier {
	ci := eci.Parse()
	if len(eci.Parts()) == 1 {
		return EncodedCompoundIdentifier(ci.Name)
	}
	return ci.EncodeDecl()
}

// Parse converts an EncodedCompoundIdentifier back into a CompoundIdentifier.
func (eci EncodedCompoundIdentifier) Parse() CompoundIdentifier {
	parts := eci.Parts()
	rawLibrary := ""
	rawName := parts[0]
	if len(parts) == 2 {
		rawLibrary = parts[0]
		rawName = parts[1]
	}
	var library LibraryIdentifier
	if rawLibrary != "" {
		library = EncodedLibraryIdentifier(rawLibrary).Parse()
	}
	nameParts := strings.SplitN(rawName, ".", 2)
	ci := CompoundIdentifier{Library: library, Name: Identifier(nameParts[0])}
	if len(nameParts) == 2 {
		ci.Member = Identifier(nameParts[1])
	}
	return ci
}
