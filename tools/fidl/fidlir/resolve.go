// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.fuchsia.dev/fidlir/tools/fidl/lib/fidlir"

	"github.com/google/subcommands"
)

type resolveCmd struct {
	irCmd
}

func (*resolveCmd) Name() string {
	return "resolve"
}

func (*resolveCmd) Usage() string {
	return "resolve -ir file [flags...] [names...]\n\nflags:\n"
}

func (*resolveCmd) Synopsis() string {
	return "looks up declaration and member names in a library and its dependencies"
}

func (cmd *resolveCmd) SetFlags(f *flag.FlagSet) {
	cmd.SetIRFlag(f)
}

func (cmd *resolveCmd) execute(ctx context.Context, w io.Writer, names ...string) error {
	if len(names) == 0 {
		return errors.New("no names supplied")
	}
	lib, err := cmd.loadIR(ctx)
	if err != nil {
		return err
	}
	missing := 0
	for _, name := range names {
		ref, err := lib.ResolveConstant(&fidlir.IdentifierConstant{Identifier: fidlir.EncodedCompoundIdentifier(name)})
		kind := string(ref.Type)
		if ref.Member != "" {
			kind = fmt.Sprintf("member %s of %s %s", ref.Member, ref.Type, ref.Name)
		}
		switch {
		case fidlir.IsKind(err, fidlir.NotFound):
			missing++
			fmt.Fprintf(w, "%s: not found\n", name)
		case err != nil:
			return err
		case ref.IsLocal():
			fmt.Fprintf(w, "%s: %s declared in %s\n", name, kind, ref.Library)
		default:
			fmt.Fprintf(w, "%s: %s imported from %s\n", name, kind, ref.Library)
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d names not found in %s", missing, len(names), lib.Name)
	}
	return nil
}

func (cmd *resolveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, w io.Writer) error {
		return cmd.execute(ctx, w, f.Args()...)
	})
}
