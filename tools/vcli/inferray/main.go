// Copyright 2015 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The inferray command line tool offers load, saturate, and export
// subcommands over a single in-memory reasoning graph. Each invocation runs
// exactly one subcommand against a freshly created graph and then exits;
// the graph is not kept between invocations, so subcommands run in
// separate invocations do not see each other's triples.
package main

import (
	"fmt"
	"os"

	"github.com/google/inferray/infgraph"
	"github.com/google/inferray/tools/vcli/inferray/command"
	"github.com/google/inferray/tools/vcli/inferray/export"
	"github.com/google/inferray/tools/vcli/inferray/load"
	"github.com/google/inferray/tools/vcli/inferray/saturate"
	"github.com/google/inferray/tools/vcli/inferray/version"
)

// defaultBulkSize is how many triples load buffers before flushing into
// the graph's dictionary/store.
const defaultBulkSize = 1000

func main() {
	g := infgraph.New()

	// Registration of the available commands. Please keep sorted.
	cmds := []*command.Command{
		export.New(g),
		load.New(g, defaultBulkSize),
		saturate.New(g),
		version.New(),
	}

	args := os.Args
	cmd := ""
	if len(args) >= 2 {
		cmd = args[1]
	}
	if cmd == "help" {
		os.Exit(help(cmds, args))
	}
	for _, c := range cmds {
		if c.Name() == cmd {
			os.Exit(c.Run(args))
		}
	}
	if cmd == "" {
		fmt.Fprintf(os.Stderr, "missing command. Usage:\n\n\t$ inferray [command]\n\nPlease run\n\n\t$ inferray help\n\n")
	} else {
		fmt.Fprintf(os.Stderr, "command %q not recognized. Usage:\n\n\t$ inferray [command]\n\nPlease run\n\n\t$ inferray help\n\n", cmd)
	}
	os.Exit(1)
}

func help(cmds []*command.Command, args []string) int {
	cmdName := ""
	if len(args) >= 3 {
		cmdName = args[2]
	}
	for _, c := range cmds {
		if c.Name() == cmdName {
			return c.Usage()
		}
	}
	if cmdName == "" {
		fmt.Fprintf(os.Stderr, "missing help command. Usage:\n\n\t$ inferray help [command]\n\nAvailable help commands\n\n")
		for _, c := range cmds {
			fmt.Fprintf(os.Stderr, "\t%s\t- %s\n", c.Name(), c.Short)
		}
		fmt.Fprintln(os.Stderr, "")
		return 0
	}
	fmt.Fprintf(os.Stderr, "help command %q not recognized. Usage:\n\n\t$ inferray help\n\n", cmdName)
	return 2
}
