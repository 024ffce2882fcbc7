// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.fuchsia.dev/fidlir/tools/fidl/lib/fidlir"
	"go.fuchsia.dev/fidlir/tools/lib/logger"

	"github.com/google/go-cmp/cmp"
)

const demoIR = `{
  "version": "0.0.1",
  "name": "demo",
  "const_declarations": [],
  "enum_declarations": [],
  "interface_declarations": [
    {
      "name": "demo/Pinger",
      "methods": [
        {
          "name": "Ping",
          "ordinal": 1,
          "generated_ordinal": 1,
          "has_request": true,
          "maybe_request": [
            {
              "name": "target",
              "type": {"kind": "identifier", "identifier": "dep/Target", "nullable": false},
              "size": 8, "max_out_of_line": 0, "alignment": 8, "offset": 16
            }
          ],
          "maybe_request_size": 24,
          "maybe_request_alignment": 8,
          "has_response": false
        }
      ]
    }
  ],
  "struct_declarations": [
    {
      "name": "demo/Point",
      "members": [
        {"name": "x", "type": {"kind": "primitive", "subtype": "int32"}, "size": 4, "max_out_of_line": 0, "alignment": 4, "offset": 0},
        {
          "name": "blob",
          "type": {
            "kind": "vector",
            "element_type": {"kind": "array", "element_type": {"kind": "primitive", "subtype": "uint8"}, "element_count": 4},
            "nullable": false
          },
          "size": 16, "max_out_of_line": 64, "alignment": 8, "offset": 8
        }
      ],
      "size": 24,
      "max_out_of_line": 64,
      "max_handles": 0
    }
  ],
  "table_declarations": [],
  "union_declarations": [],
  "xunion_declarations": [{"name": "demo/Ext"}],
  "declaration_order": ["demo/Point", "demo/Ext", "demo/Pinger"],
  "declarations": {
    "demo/Point": "struct",
    "demo/Ext": "xunion",
    "demo/Pinger": "interface",
    "dep/Target": "struct"
  },
  "library_dependencies": [
    {"name": "dep", "declarations": {"dep/Target": "struct"}}
  ]
}`

func testContext() context.Context {
	return logger.WithLogger(context.Background(), logger.NewLogger(logger.ErrorLevel, io.Discard, io.Discard, ""))
}

func writeIR(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestResolveCmd(t *testing.T) {
	cmd := &resolveCmd{irCmd{format: formatAuto, ir: writeIR(t, "demo.fidl.json", demoIR)}}
	var out bytes.Buffer
	err := cmd.execute(testContext(), &out, "demo/Point", "dep/Target", "dep/Target.FOO", "demo/Point.x", "demo/Missing")
	if err == nil {
		t.Errorf("resolving a missing name succeeded")
	}
	want := []string{
		"demo/Point: struct declared in demo",
		"dep/Target: struct imported from dep",
		"dep/Target.FOO: member FOO of struct dep/Target imported from dep",
		"demo/Point.x: not found",
		"demo/Missing: not found",
	}
	if diff := cmp.Diff(want, lines(out.String())); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}

	if err := (&resolveCmd{irCmd{format: formatAuto}}).execute(testContext(), &out, "demo/Point"); err == nil {
		t.Errorf("resolve without -ir succeeded")
	}
}

func TestTypesCmd(t *testing.T) {
	cmd := &typesCmd{irCmd{format: formatAuto, ir: writeIR(t, "demo.fidl.json", demoIR)}}
	var out bytes.Buffer
	if err := cmd.execute(testContext(), &out); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"interface demo/Pinger",
		"  identifier -> struct dep/Target",
		"struct demo/Point",
		"  primitive int32",
		"  vector vector<array<uint8>:4>",
		"    array array<uint8>:4",
		"      primitive uint8",
	}
	if diff := cmp.Diff(want, lines(out.String())); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestLayoutCmd(t *testing.T) {
	cmd := &layoutCmd{irCmd{format: formatAuto, ir: writeIR(t, "demo.fidl.json", demoIR)}}
	var out bytes.Buffer
	if err := cmd.execute(testContext(), &out); err != nil {
		t.Fatal(err)
	}
	var got [][]string
	for _, line := range lines(out.String()) {
		got = append(got, strings.Fields(line))
	}
	want := [][]string{
		{"KIND", "NAME", "INLINE", "OUT-OF-LINE", "HANDLES"},
		{"struct", "demo/Point", "24", "B", "64", "B", "0"},
		{"xunion", "demo/Ext", "-", "-", "-"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestDumpCmd(t *testing.T) {
	cmd := &dumpCmd{irCmd{format: formatAuto}}
	var out bytes.Buffer
	if err := cmd.execute(testContext(), &out, writeIR(t, "demo.fidl.json", demoIR)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"library demo (IR version 0.0.1)\n",
		"  uses dep (1 declarations)\n",
		"struct demo/Point &fidlir.Struct{",
		"xunion demo/Ext &fidlir.XUnion{",
		"interface demo/Pinger &fidlir.Protocol{",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("dump output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestCheckCmd(t *testing.T) {
	good := writeIR(t, "good.fidl.json", demoIR)
	bad := writeIR(t, "bad.fidl.json", strings.Replace(demoIR, `"name": "demo",`, "", 1))
	misaligned := writeIR(t, "misaligned.fidl.json", strings.Replace(demoIR, `"alignment": 8, "offset": 8`, `"alignment": 8, "offset": 4`, 1))

	type testCase struct {
		name     string
		layout   bool
		files    []string
		want     []string
		wantKind fidlir.ErrorKind
	}
	tests := []testCase{
		{
			name:  "all good",
			files: []string{good},
			want:  []string{good + ": ok"},
		},
		{
			name:     "one bad file",
			files:    []string{good, bad},
			want:     []string{good + ": ok", bad + ": FAILED"},
			wantKind: fidlir.MissingField,
		},
		{
			name:  "layout not requested",
			files: []string{misaligned},
			want:  []string{misaligned + ": ok"},
		},
		{
			name:     "layout requested",
			layout:   true,
			files:    []string{good, misaligned},
			want:     []string{good + ": ok", misaligned + ": FAILED"},
			wantKind: fidlir.LayoutMismatch,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmd := &checkCmd{irCmd: irCmd{format: formatAuto}, layout: test.layout}
			var out bytes.Buffer
			err := cmd.execute(testContext(), &out, test.files...)
			if diff := cmp.Diff(test.want, lines(out.String())); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			switch {
			case test.wantKind == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case test.wantKind != "" && !fidlir.IsKind(err, test.wantKind):
				t.Errorf("got error %v, want %s", err, test.wantKind)
			}
		})
	}
}

func TestDocFormat(t *testing.T) {
	var f docFormat
	if err := f.Set("xml"); err == nil {
		t.Errorf("Set(xml) succeeded")
	}
	if err := f.Set("auto"); err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]docFormat{
		"lib.fidl.json": formatJSON,
		"lib.yaml":      formatYAML,
		"lib.YML":       formatYAML,
		"lib":           formatJSON,
	} {
		if got := f.forPath(path); got != want {
			t.Errorf("forPath(%s) = %s, want %s", path, got, want)
		}
	}
	f = formatYAML
	if got := f.forPath("lib.json"); got != formatYAML {
		t.Errorf("explicit format overridden by extension: %s", got)
	}
}

const demoYAML = `
version: "0.0.1"
name: ydemo
const_declarations: []
enum_declarations: []
interface_declarations: []
struct_declarations: []
table_declarations: []
union_declarations: []
xunion_declarations:
  - name: ydemo/Ext
declaration_order: [ydemo/Ext]
declarations: {ydemo/Ext: xunion}
library_dependencies: []
`

func TestLoadYAML(t *testing.T) {
	cmd := &resolveCmd{irCmd{format: formatAuto, ir: writeIR(t, "demo.yaml", demoYAML)}}
	var out bytes.Buffer
	if err := cmd.execute(testContext(), &out, "ydemo/Ext"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "ydemo/Ext: xunion declared in ydemo\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
