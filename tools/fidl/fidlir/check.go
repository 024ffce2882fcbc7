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
	"go.fuchsia.dev/fidlir/tools/lib/logger"

	"github.com/google/subcommands"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type checkCmd struct {
	irCmd
	layout bool
}

func (*checkCmd) Name() string {
	return "check"
}

func (*checkCmd) Usage() string {
	return "check [flags...] [files...]\n\nflags:\n"
}

func (*checkCmd) Synopsis() string {
	return "validates IR files, reporting every file that fails"
}

func (cmd *checkCmd) SetFlags(f *flag.FlagSet) {
	cmd.SetCommonFlags(f)
	f.BoolVar(&cmd.layout, "layout", false, "also cross-check member offsets, sizes and alignments")
}

// checkFile decodes one file and, if requested, checks its layout.
func (cmd *checkCmd) checkFile(ctx context.Context, path string) error {
	lib, err := cmd.load(ctx, path)
	if err != nil {
		return err
	}
	if cmd.layout {
		var errs error
		for _, err := range multierr.Errors(fidlir.CheckLayout(lib)) {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
		if errs != nil {
			return errs
		}
	}
	n := 0
	lib.ForEachDecl(func(fidlir.Decl) { n++ })
	logger.Debugf(ctx, "%s: library %s, %d declarations", path, lib.Name, n)
	return nil
}

func (cmd *checkCmd) execute(ctx context.Context, w io.Writer, files ...string) error {
	if len(files) == 0 {
		return errors.New("no files supplied")
	}
	results := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = cmd.checkFile(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, err := range results {
		status := "ok"
		if err != nil {
			status = "FAILED"
			failed++
		}
		fmt.Fprintf(w, "%s: %s\n", files[i], status)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed: %w", failed, len(files), multierr.Combine(results...))
	}
	logger.Infof(ctx, "%d files ok", len(files))
	return nil
}

func (cmd *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, w io.Writer) error {
		return cmd.execute(ctx, w, f.Args()...)
	})
}
