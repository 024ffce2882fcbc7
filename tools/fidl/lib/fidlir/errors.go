// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	// IoError means the document could not be read.
	IoError ErrorKind = "io_error"
	// MalformedDocument means the input is not a decodable shape: not JSON,
	// not an object, or a field with the wrong JSON type.
	MalformedDocument    ErrorKind = "malformed_document"
	UnsupportedVersion   ErrorKind = "unsupported_version"
	UnknownVariant       ErrorKind = "unknown_variant"
	MissingField         ErrorKind = "missing_field"
	DuplicateDeclaration ErrorKind = "duplicate_declaration"
	DanglingOrderEntry   ErrorKind = "dangling_order_entry"
	MissingOrderEntry    ErrorKind = "missing_order_entry"
	KindMismatch         ErrorKind = "kind_mismatch"
	DanglingIndexEntry   ErrorKind = "dangling_index_entry"
	MissingIndexEntry    ErrorKind = "missing_index_entry"
	InvalidOrdinal       ErrorKind = "invalid_ordinal"
	DuplicateOrdinal     ErrorKind = "duplicate_ordinal"
	EmptyMethod          ErrorKind = "empty_method"
	// NotFound is returned by Resolve; it is never a decode failure.
	NotFound ErrorKind = "not_found"
	// LayoutMismatch is reported by CheckLayout.
	LayoutMismatch ErrorKind = "layout_mismatch"
)

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind ErrorKind
	// Decl is the enclosing declaration, empty for library-level fields.
	Decl EncodedCompoundIdentifier
	// Field names the offending field or member, if any.
	Field string
	// Path locates the offending value in the document, e.g.
	// "struct_declarations[1].members[0].type".
	Path string
	// Detail carries the unrecognized tag, the conflicting value, etc.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Decl != "" {
		fmt.Fprintf(&b, " in %s", e.Decl)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s)", e.Field)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
