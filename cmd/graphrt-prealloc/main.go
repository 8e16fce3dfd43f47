// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command graphrt-prealloc runs the buffer preallocation step of graph
// preparation over one or more pass manifests and reports where every
// initializer was placed.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/graphrt/graphrt/internal/manifest"
	"github.com/graphrt/graphrt/memory"
	"golang.org/x/sync/errgroup"
)

const usage = `Graph buffer preallocator.
Usage:
  graphrt-prealloc [--alignment=<n>] [--json] [--checked] [--log-level=<lvl>] <manifest>...
  graphrt-prealloc -h | --help
Options:
  -h --help            Show this screen.
  --alignment=<n>      Buffer size alignment in bytes, or "auto" for the host cache line.
  --json               Print the report as JSON.
  --checked            Track allocations and fail if a pass leaks a buffer.
  --log-level=<lvl>    One of debug, info, warn, error [default: info].`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	for _, arg := range argv {
		if arg == "-h" || arg == "--help" {
			fmt.Fprintln(stdout, usage)
			return 0
		}
	}

	parser := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
	args, err := parser.ParseArgs(usage, argv, "")
	if err != nil {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	logger, err := newLogger(stderr, stringArg(args, "--log-level"))
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	opts := passOptions{}
	opts.checked, _ = args.Bool("--checked")
	if opts.alignment, err = parseAlignment(stringArg(args, "--alignment")); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	paths, _ := args["<manifest>"].([]string)
	reports := make([]*passReport, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			rep, err := runPass(path, m, opts, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		level.Error(logger).Log("msg", "preparation failed", "err", err)
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if jsonOut, _ := args.Bool("--json"); jsonOut {
		err = writeJSON(stdout, reports)
	} else {
		err = writeText(stdout, reports)
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func stringArg(args docopt.Opts, key string) string {
	s, _ := args[key].(string)
	return s
}

func parseAlignment(s string) (int, error) {
	switch s {
	case "":
		return 0, nil
	case "auto":
		return memory.DefaultAlignment(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !memory.IsPowerOf2(n) {
		return 0, fmt.Errorf("invalid alignment %q", s)
	}
	return n, nil
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var allow level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		allow = level.AllowDebug()
	case "", "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("invalid log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
