// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

// Inspects and validates FIDL JSON IR files.

import (
	"context"
	"flag"
	"log"
	"os"

	"go.fuchsia.dev/fidlir/tools/lib/logger"

	"github.com/google/subcommands"
)

var level = logger.InfoLevel

func init() {
	flag.Var(&level, "level", "output verbosity, can be fatal, error, warning, info, debug or trace")
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&dumpCmd{}, "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&resolveCmd{}, "")
	subcommands.Register(&typesCmd{}, "")
	subcommands.Register(&layoutCmd{}, "")

	flag.Parse()

	log.SetFlags(0)

	// Command output goes to stdout, so diagnostics all go to stderr.
	l := logger.NewLogger(level, os.Stderr, os.Stderr, "fidlir ")
	l.SetFlags(0)
	ctx := logger.WithLogger(context.Background(), l)

	os.Exit(int(subcommands.Execute(ctx)))
}
