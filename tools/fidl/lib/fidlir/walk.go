// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import "iter"

// WalkType yields every node of the type tree rooted at t in depth-first
// pre-order, paired with its parent. The root's parent is nil. Only array and
// vector types have children. The sequence may be iterated any number of
// times.
func WalkType(t Type) iter.Seq2[Type, Type] {
	return func(yield func(Type, Type) bool) {
		walkType(t, nil, yield)
	}
}

func walkType(t, parent Type, yield func(Type, Type) bool) bool {
	if t == nil {
		return true
	}
	if !yield(t, parent) {
		return false
	}
	if elem := ElementTypeOf(t); elem != nil {
		return walkType(elem, t, yield)
	}
	return true
}

// WalkTypes yields each top-level type used by the library's local
// declarations, with the declaration using it: const types, bits underlying
// types, and member and method parameter types. Declarations are visited in
// ForEachDecl order. Nested element types are reachable through WalkType.
func (l *Library) WalkTypes() iter.Seq2[Decl, Type] {
	return func(yield func(Decl, Type) bool) {
		stopped := false
		emit := func(d Decl, t Type) {
			if !stopped && t != nil && !yield(d, t) {
				stopped = true
			}
		}
		l.ForEachDecl(func(d Decl) {
			if stopped {
				return
			}
			switch d := d.(type) {
			case *Const:
				emit(d, d.Type)
			case *Bits:
				emit(d, d.Type)
			case *Protocol:
				for _, m := range d.Methods {
					for _, p := range m.Request {
						emit(d, p.Type)
					}
					for _, p := range m.Response {
						emit(d, p.Type)
					}
				}
			case *Struct:
				for _, m := range d.Members {
					emit(d, m.Type)
				}
			case *Table:
				for _, m := range d.Members {
					emit(d, m.Type)
				}
			case *Union:
				for _, m := range d.Members {
					emit(d, m.Type)
				}
			case *XUnion:
				for _, m := range d.Members {
					emit(d, m.Type)
				}
			}
		})
	}
}
