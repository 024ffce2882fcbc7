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

	"github.com/google/subcommands"
	"github.com/kr/pretty"
)

type dumpCmd struct {
	irCmd
}

func (*dumpCmd) Name() string {
	return "dump"
}

func (*dumpCmd) Usage() string {
	return "dump [flags...] [files...]\n\nflags:\n"
}

func (*dumpCmd) Synopsis() string {
	return "decodes IR files and prints every declaration"
}

func (cmd *dumpCmd) SetFlags(f *flag.FlagSet) {
	cmd.SetCommonFlags(f)
}

func (cmd *dumpCmd) execute(ctx context.Context, w io.Writer, files ...string) error {
	if len(files) == 0 {
		return errors.New("no files supplied")
	}
	for _, path := range files {
		lib, err := cmd.load(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "library %s (IR version %s)\n", lib.Name, lib.Version)
		for _, dep := range lib.Dependencies {
			fmt.Fprintf(w, "  uses %s (%d declarations)\n", dep.Name, len(dep.Decls))
		}
		for _, d := range lib.OrderedDecls() {
			fmt.Fprintf(w, "%s %s ", d.DeclType(), d.GetName())
			pretty.Fprintf(w, "%# v\n", d)
		}
	}
	return nil
}

func (cmd *dumpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, w io.Writer) error {
		return cmd.execute(ctx, w, f.Args()...)
	})
}
