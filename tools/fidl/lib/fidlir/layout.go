// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"fmt"

	"go.uber.org/multierr"
)

// CheckLayout cross-checks the layout numbers the producer attached to each
// member. It reports a member whose offset is not a multiple of its
// alignment, or which extends past the end of the struct, union or message
// containing it. Tables and xunions place members out of line, so only
// alignment is checked for them.
//
// Every problem found is returned, combined with multierr; each one is an
// *Error of kind LayoutMismatch.
func CheckLayout(lib *Library) error {
	var c layoutChecker
	lib.ForEachDecl(func(d Decl) {
		switch d := d.(type) {
		case *Protocol:
			for _, m := range d.Methods {
				c.message(d, m.Name, "request", m.Request, m.RequestSize)
				c.message(d, m.Name, "response", m.Response, m.ResponseSize)
			}
		case *Struct:
			for _, m := range d.Members {
				c.check(d, string(m.Name), m.FieldShape, &d.Size)
			}
		case *Table:
			for _, m := range d.Members {
				if m.Shape != nil {
					c.check(d, string(m.Name), *m.Shape, nil)
				}
			}
		case *Union:
			for _, m := range d.Members {
				c.check(d, string(m.Name), m.FieldShape, &d.Size)
			}
		case *XUnion:
			for _, m := range d.Members {
				c.check(d, string(m.Name), m.FieldShape, nil)
			}
		}
	})
	return c.err
}

type layoutChecker struct {
	err error
}

func (c *layoutChecker) message(p *Protocol, method Identifier, which string, params []StructMember, size *uint32) {
	for _, m := range params {
		c.check(p, fmt.Sprintf("%s.%s.%s", method, which, m.Name), m.FieldShape, size)
	}
}

func (c *layoutChecker) check(d Decl, field string, s FieldShape, size *uint32) {
	if s.Alignment != 0 && s.Offset%s.Alignment != 0 {
		c.report(d, field, fmt.Sprintf("offset %d is not a multiple of alignment %d", s.Offset, s.Alignment))
	}
	if size != nil && uint64(s.Offset)+uint64(s.Size) > uint64(*size) {
		c.report(d, field, fmt.Sprintf("bytes %d..%d lie beyond the %d-byte container", s.Offset, uint64(s.Offset)+uint64(s.Size), *size))
	}
}

func (c *layoutChecker) report(d Decl, field, detail string) {
	c.err = multierr.Append(c.err, &Error{
		Kind:   LayoutMismatch,
		Decl:   d.GetName(),
		Field:  field,
		Detail: detail,
	})
}
