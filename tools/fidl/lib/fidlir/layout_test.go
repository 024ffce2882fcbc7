// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

func TestCheckLayoutConsistent(t *testing.T) {
	if err := CheckLayout(decodeIR(t, exampleIR)); err != nil {
		t.Errorf("CheckLayout: %v", err)
	}
}

func TestCheckLayoutMismatches(t *testing.T) {
	doc := parseDoc(t, exampleIR)
	// Misaligned struct member.
	fieldObj(doc, "struct_declarations", 0, "members", 1)["offset"] = Number("6")
	// Union variant past the end of the union.
	fieldObj(doc, "union_declarations", 0, "members", 0)["size"] = Number("8")
	// Request parameter past the end of the message.
	fieldObj(doc, "interface_declarations", 0, "methods", 0)["maybe_request_size"] = Number("24")
	lib, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	type issue struct {
		Decl  EncodedCompoundIdentifier
		Field string
	}
	var got []issue
	for _, err := range multierr.Errors(CheckLayout(lib)) {
		e := asError(t, err)
		if e.Kind != LayoutMismatch {
			t.Errorf("got kind %s, want %s", e.Kind, LayoutMismatch)
		}
		got = append(got, issue{e.Decl, e.Field})
	}
	want := []issue{
		{"example/Echo", "EchoString.request.value"},
		// y is both misaligned and, at 6+4, past the 8-byte struct.
		{"example/Point", "y"},
		{"example/Point", "y"},
		{"example/Payload", "num"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout issues (-want +got):\n%s", diff)
	}
}
