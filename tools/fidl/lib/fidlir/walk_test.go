// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type walkStep struct {
	Node, Parent string
}

func collectWalk(t Type) []walkStep {
	var steps []walkStep
	for node, parent := range WalkType(t) {
		step := walkStep{Node: node.String()}
		if parent != nil {
			step.Parent = parent.String()
		}
		steps = append(steps, step)
	}
	return steps
}

func TestWalkType(t *testing.T) {
	prim := &PrimitiveType{Subtype: Int32}
	arr := &ArrayType{ElementType: prim, ElementCount: 4}
	vec := &VectorType{ElementType: arr}

	type testCase struct {
		name string
		root Type
		want []walkStep
	}
	tests := []testCase{
		{
			name: "vector of arrays",
			root: vec,
			want: []walkStep{
				{Node: "vector<array<int32>:4>"},
				{Node: "array<int32>:4", Parent: "vector<array<int32>:4>"},
				{Node: "int32", Parent: "array<int32>:4"},
			},
		},
		{
			name: "leaf",
			root: &HandleType{Subtype: HandleSubtypeVmo, Nullable: true},
			want: []walkStep{{Node: "handle<vmo>?"}},
		},
		{
			name: "nil",
			root: nil,
			want: nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, collectWalk(test.root)); diff != "" {
				t.Errorf("walk (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkTypeParentsAreNodes(t *testing.T) {
	prim := &PrimitiveType{Subtype: Int32}
	arr := &ArrayType{ElementType: prim, ElementCount: 4}
	vec := &VectorType{ElementType: arr}

	var nodes, parents []Type
	for node, parent := range WalkType(vec) {
		nodes = append(nodes, node)
		parents = append(parents, parent)
	}
	if len(nodes) != 3 || nodes[0] != vec || nodes[1] != arr || nodes[2] != prim {
		t.Fatalf("got nodes %v", nodes)
	}
	if parents[0] != nil || parents[1] != vec || parents[2] != arr {
		t.Errorf("got parents %v", parents)
	}
}

func TestWalkTypeRestartable(t *testing.T) {
	seq := WalkType(&VectorType{ElementType: &ArrayType{ElementType: &StringType{}, ElementCount: 2}})
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 3 || second != 3 {
		t.Errorf("walked %d then %d nodes, want 3 both times", first, second)
	}
}

func TestWalkTypeStopsEarly(t *testing.T) {
	seq := WalkType(&VectorType{ElementType: &ArrayType{ElementType: &StringType{}, ElementCount: 2}})
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("visited %d nodes", n)
	}
}

func TestWalkTypes(t *testing.T) {
	lib := decodeIR(t, exampleIR)

	type use struct {
		Decl EncodedCompoundIdentifier
		Type string
	}
	var got []use
	for d, typ := range lib.WalkTypes() {
		got = append(got, use{d.GetName(), typ.String()})
	}
	want := []use{
		{"example/MAX", "uint32"},
		{"example/Flags", "uint8"},
		{"example/Echo", "string:64?"},
		{"example/Echo", "string?"},
		{"example/Point", "int32"},
		{"example/Point", "int32"},
		{"example/Holder", "vector<array<int32>:4>:8"},
		{"example/Holder", "dep/Remote?"},
		{"example/Settings", "uint8"},
		{"example/Payload", "int32"},
		{"example/Payload", "handle<channel>"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WalkTypes (-want +got):\n%s", diff)
	}

	n := 0
	for range lib.WalkTypes() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early break visited %d types", n)
	}
}
