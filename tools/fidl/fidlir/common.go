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
	"os"
	"path/filepath"
	"strings"

	"go.fuchsia.dev/fidlir/tools/fidl/lib/fidlir"
	"go.fuchsia.dev/fidlir/tools/lib/logger"

	"github.com/google/subcommands"
)

// docFormat selects the parser for an IR file. It implements flag.Value.
type docFormat string

const (
	formatAuto docFormat = "auto"
	formatJSON docFormat = "json"
	formatYAML docFormat = "yaml"
)

func (f *docFormat) String() string {
	return string(*f)
}

func (f *docFormat) Set(s string) error {
	switch v := docFormat(s); v {
	case formatAuto, formatJSON, formatYAML:
		*f = v
		return nil
	}
	return fmt.Errorf("%s is not a valid format, want auto, json or yaml", s)
}

// forPath resolves formatAuto from the file extension.
func (f docFormat) forPath(path string) docFormat {
	if f != formatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

// irCmd holds the flags shared by commands that read IR.
type irCmd struct {
	format docFormat
	ir     string
}

func (cmd *irCmd) SetCommonFlags(f *flag.FlagSet) {
	cmd.format = formatAuto
	f.Var(&cmd.format, "format", "IR file format, can be auto, json or yaml")
}

// SetIRFlag registers the -ir flag for commands working on one library.
func (cmd *irCmd) SetIRFlag(f *flag.FlagSet) {
	cmd.SetCommonFlags(f)
	f.StringVar(&cmd.ir, "ir", "", "path to the FIDL JSON IR file")
}

// load parses and decodes the library at path.
func (cmd *irCmd) load(ctx context.Context, path string) (*fidlir.Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := cmd.format.forPath(path)
	logger.Debugf(ctx, "parsing %s as %s", path, format)
	var doc interface{}
	switch format {
	case formatYAML:
		doc, err = fidlir.ParseYAML(f)
	default:
		doc, err = fidlir.ParseJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lib, err := fidlir.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf(ctx, "decoded library %s from %s", lib.Name, path)
	return lib, nil
}

// loadIR loads the library named by the -ir flag.
func (cmd *irCmd) loadIR(ctx context.Context) (*fidlir.Library, error) {
	if cmd.ir == "" {
		return nil, errors.New("no -ir file supplied")
	}
	return cmd.load(ctx, cmd.ir)
}

// run adapts a command body to subcommands, writing output to stdout.
func run(ctx context.Context, execute func(context.Context, io.Writer) error) subcommands.ExitStatus {
	if err := execute(ctx, os.Stdout); err != nil {
		logger.Errorf(ctx, "%s", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
