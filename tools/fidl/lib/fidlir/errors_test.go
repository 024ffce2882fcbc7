// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	type testCase struct {
		err  *Error
		want string
	}
	tests := []testCase{
		{
			err:  &Error{Kind: MissingField, Path: "name"},
			want: "missing_field at name",
		},
		{
			err: &Error{
				Kind:   EmptyMethod,
				Decl:   "example/Echo",
				Field:  "OnPing",
				Path:   "interface_declarations[0].methods[1]",
				Detail: "method has neither a request nor a response",
			},
			want: "empty_method in example/Echo (OnPing) at interface_declarations[0].methods[1]: method has neither a request nor a response",
		},
		{
			err:  &Error{Kind: IoError, Detail: "lib.json", Err: fs.ErrNotExist},
			want: "io_error: lib.json: file does not exist",
		},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("reading lib.json: %w", &Error{Kind: IoError, Err: fs.ErrNotExist})
	if !IsKind(err, IoError) {
		t.Errorf("IsKind(%v, io_error) = false", err)
	}
	if IsKind(err, MalformedDocument) {
		t.Errorf("IsKind(%v, malformed_document) = true", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%v does not unwrap to fs.ErrNotExist", err)
	}
	if IsKind(errors.New("plain"), IoError) {
		t.Errorf("IsKind matched a plain error")
	}
}
