// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"go.fuchsia.dev/fidlir/tools/fidl/lib/fidlir"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"
)

type layoutCmd struct {
	irCmd
}

func (*layoutCmd) Name() string {
	return "layout"
}

func (*layoutCmd) Usage() string {
	return "layout -ir file [flags...]\n\nflags:\n"
}

func (*layoutCmd) Synopsis() string {
	return "lists the inline and out-of-line sizes of each aggregate"
}

func (cmd *layoutCmd) SetFlags(f *flag.FlagSet) {
	cmd.SetIRFlag(f)
}

func bytesOrDash(n *uint32) string {
	if n == nil {
		return "-"
	}
	return humanize.IBytes(uint64(*n))
}

func countOrDash(n *uint32) string {
	if n == nil {
		return "-"
	}
	return humanize.Comma(int64(*n))
}

func (cmd *layoutCmd) execute(ctx context.Context, w io.Writer) error {
	lib, err := cmd.loadIR(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tINLINE\tOUT-OF-LINE\tHANDLES")
	for _, d := range lib.OrderedDecls() {
		var size, outOfLine, handles *uint32
		switch d := d.(type) {
		case *fidlir.Struct:
			size, outOfLine, handles = &d.Size, &d.MaxOutOfLine, d.MaxHandles
		case *fidlir.Table:
			size, outOfLine = &d.Size, &d.MaxOutOfLine
		case *fidlir.Union:
			size, outOfLine, handles = &d.Size, &d.MaxOutOfLine, d.MaxHandles
		case *fidlir.XUnion:
			size, outOfLine = d.Size, d.MaxOutOfLine
		default:
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.DeclType(), d.GetName(), bytesOrDash(size), bytesOrDash(outOfLine), countOrDash(handles))
	}
	return tw.Flush()
}

func (cmd *layoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, w io.Writer) error {
		return cmd.execute(ctx, w)
	})
}
