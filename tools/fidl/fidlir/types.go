// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.fuchsia.dev/fidlir/tools/fidl/lib/fidlir"

	"github.com/google/subcommands"
)

type typesCmd struct {
	irCmd
}

func (*typesCmd) Name() string {
	return "types"
}

func (*typesCmd) Usage() string {
	return "types -ir file [flags...]\n\nflags:\n"
}

func (*typesCmd) Synopsis() string {
	return "prints every type used by each declaration, nested types indented"
}

func (cmd *typesCmd) SetFlags(f *flag.FlagSet) {
	cmd.SetIRFlag(f)
}

func (cmd *typesCmd) execute(ctx context.Context, w io.Writer) error {
	lib, err := cmd.loadIR(ctx)
	if err != nil {
		return err
	}
	var current fidlir.Decl
	for d, t := range lib.WalkTypes() {
		if d != current {
			fmt.Fprintf(w, "%s %s\n", d.DeclType(), d.GetName())
			current = d
		}
		depth := map[fidlir.Type]int{}
		for node, parent := range fidlir.WalkType(t) {
			if parent != nil {
				depth[node] = depth[parent] + 1
			}
			fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth[node]+1), node.Kind())
			if ref, err := lib.ResolveType(node); err == nil {
				fmt.Fprintf(w, " -> %s %s", ref.Type, ref.Name)
			} else if node.Kind() == fidlir.IdentifierKind || node.Kind() == fidlir.RequestKind {
				fmt.Fprintf(w, " -> unresolved %s", node)
			} else {
				fmt.Fprintf(w, " %s", node)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func (cmd *typesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, w io.Writer) error {
		return cmd.execute(ctx, w)
	})
}
