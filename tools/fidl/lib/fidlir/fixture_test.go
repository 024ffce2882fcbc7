// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"errors"
	"strings"
	"testing"
)

// exampleIR is a small but complete library touching every declaration kind.
const exampleIR = `{
  "version": "0.0.1",
  "name": "example",
  "const_declarations": [
    {
      "name": "example/MAX",
      "type": {"kind": "primitive", "subtype": "uint32"},
      "value": {"kind": "literal", "literal": {"kind": "numeric", "value": "10"}}
    }
  ],
  "bits_declarations": [
    {
      "name": "example/Flags",
      "maybe_attributes": [{"name": "Doc", "value": "flags"}],
      "type": {"kind": "primitive", "subtype": "uint8"},
      "mask": "3",
      "members": [
        {"name": "A", "value": {"kind": "literal", "literal": {"kind": "numeric", "value": "1"}}},
        {"name": "B", "value": {"kind": "literal", "literal": {"kind": "numeric", "value": "2"}}}
      ]
    }
  ],
  "enum_declarations": [
    {
      "name": "example/Color",
      "type": "uint32",
      "members": [
        {"name": "RED", "value": {"kind": "literal", "literal": {"kind": "numeric", "value": "1"}}}
      ]
    }
  ],
  "interface_declarations": [
    {
      "name": "example/Echo",
      "maybe_attributes": [{"name": "Discoverable", "value": ""}],
      "methods": [
        {
          "name": "EchoString",
          "ordinal": 1,
          "generated_ordinal": 1108195967,
          "has_request": true,
          "maybe_request": [
            {
              "name": "value",
              "type": {"kind": "string", "nullable": true, "maybe_element_count": 64},
              "size": 16, "max_out_of_line": 64, "alignment": 8, "offset": 16
            }
          ],
          "maybe_request_size": 32,
          "maybe_request_alignment": 8,
          "has_response": true,
          "maybe_response": [
            {
              "name": "response",
              "type": {"kind": "string", "nullable": true},
              "size": 16, "max_out_of_line": 4294967295, "alignment": 8, "offset": 16
            }
          ],
          "maybe_response_size": 32,
          "maybe_response_alignment": 8
        },
        {
          "name": "OnPing",
          "ordinal": 0,
          "generated_ordinal": 2001,
          "has_request": false,
          "has_response": true,
          "maybe_response": [],
          "maybe_response_size": 16,
          "maybe_response_alignment": 8
        }
      ]
    }
  ],
  "struct_declarations": [
    {
      "name": "example/Point",
      "members": [
        {"name": "x", "type": {"kind": "primitive", "subtype": "int32"}, "size": 4, "max_out_of_line": 0, "alignment": 4, "offset": 0},
        {"name": "y", "type": {"kind": "primitive", "subtype": "int32"}, "size": 4, "max_out_of_line": 0, "alignment": 4, "offset": 4}
      ],
      "size": 8,
      "max_out_of_line": 0,
      "max_handles": 0
    },
    {
      "name": "example/Holder",
      "members": [
        {
          "name": "grid",
          "type": {
            "kind": "vector",
            "element_type": {"kind": "array", "element_type": {"kind": "primitive", "subtype": "int32"}, "element_count": 4},
            "nullable": false,
            "maybe_element_count": 8
          },
          "size": 16, "max_out_of_line": 128, "alignment": 8, "offset": 0
        },
        {
          "name": "remote",
          "type": {"kind": "identifier", "identifier": "dep/Remote", "nullable": true},
          "size": 8, "max_out_of_line": 16, "alignment": 8, "offset": 16,
          "maybe_default_value": {"kind": "identifier", "identifier": "dep/DEFAULT_REMOTE"}
        }
      ],
      "size": 24,
      "max_out_of_line": 144,
      "anonymous": false
    }
  ],
  "table_declarations": [
    {
      "name": "example/Settings",
      "members": [
        {"reserved": true, "ordinal": 1},
        {
          "reserved": false,
          "ordinal": 2,
          "name": "volume",
          "type": {"kind": "primitive", "subtype": "uint8"},
          "size": 1, "max_out_of_line": 0, "alignment": 1, "offset": 0
        }
      ],
      "size": 16,
      "max_out_of_line": 24
    }
  ],
  "union_declarations": [
    {
      "name": "example/Payload",
      "members": [
        {"name": "num", "type": {"kind": "primitive", "subtype": "int32"}, "size": 4, "max_out_of_line": 0, "alignment": 4, "offset": 4},
        {"name": "chan", "type": {"kind": "handle", "subtype": "channel", "nullable": false}, "size": 4, "max_out_of_line": 0, "alignment": 4, "offset": 4}
      ],
      "size": 8,
      "alignment": 4,
      "max_out_of_line": 0,
      "max_handles": 1
    }
  ],
  "xunion_declarations": [
    {"name": "example/Ext"}
  ],
  "declaration_order": [
    "example/Color",
    "example/Flags",
    "example/MAX",
    "example/Point",
    "example/Holder",
    "example/Payload",
    "example/Settings",
    "example/Ext",
    "example/Echo"
  ],
  "declarations": {
    "example/MAX": "const",
    "example/Flags": "bits",
    "example/Color": "enum",
    "example/Echo": "interface",
    "example/Point": "struct",
    "example/Holder": "struct",
    "example/Settings": "table",
    "example/Payload": "union",
    "example/Ext": "xunion",
    "dep/Remote": "struct",
    "dep/DEFAULT_REMOTE": "const"
  },
  "library_dependencies": [
    {
      "name": "dep",
      "declarations": {
        "dep/Remote": "struct",
        "dep/DEFAULT_REMOTE": "const"
      }
    },
    {
      "name": "other",
      "declarations": {
        "dep/Remote": "union",
        "other/Thing": "table"
      }
    }
  ]
}`

// minimalIR is the smallest document Decode accepts.
const minimalIR = `{
  "version": "0.0.1",
  "name": "empty",
  "const_declarations": [],
  "enum_declarations": [],
  "interface_declarations": [],
  "struct_declarations": [],
  "table_declarations": [],
  "union_declarations": [],
  "xunion_declarations": [],
  "declaration_order": [],
  "declarations": {},
  "library_dependencies": []
}`

func parseDoc(t *testing.T, ir string) map[string]interface{} {
	t.Helper()
	doc, err := ParseJSON(strings.NewReader(ir))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	return doc.(map[string]interface{})
}

func decodeIR(t *testing.T, ir string) *Library {
	t.Helper()
	lib, err := Decode(parseDoc(t, ir))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return lib
}

// field walks a document by object keys and array indices.
func field(v interface{}, keys ...interface{}) interface{} {
	for _, k := range keys {
		switch k := k.(type) {
		case string:
			v = v.(map[string]interface{})[k]
		case int:
			v = v.([]interface{})[k]
		}
	}
	return v
}

func fieldObj(v interface{}, keys ...interface{}) map[string]interface{} {
	return field(v, keys...).(map[string]interface{})
}

func asError(t *testing.T, err error) *Error {
	t.Helper()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got error %v (%T), want *Error", err, err)
	}
	return e
}
