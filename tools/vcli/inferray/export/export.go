// Copyright 2016 Google Inc. All rights reserved.
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

// Package export contains the vCli command that dumps every triple held
// by a graph into a file, adapted from tools/vcli/bw/export.
package export

import (
	"fmt"
	"log"
	"os"

	"github.com/google/inferray/infgraph"
	"github.com/google/inferray/tools/vcli/inferray/command"
)

// New creates the export command against g.
func New(g *infgraph.InfGraph) *command.Command {
	cmd := &command.Command{
		UsageLine: "export <file_path>",
		Short:     "export every triple in the graph into a file.",
		Long:      `Writes every triple currently held by the graph into the provided file, one per line.`,
	}
	cmd.Run = func(args []string) int {
		return Eval(cmd.UsageLine+"\n\n"+cmd.Long, args, g)
	}
	return cmd
}

// Eval drains g.Triples() into the file named by args.
func Eval(usage string, args []string, g *infgraph.InfGraph) int {
	if len(args) < 3 {
		log.Printf("[ERROR] Missing required file path.\n\n%s", usage)
		return 2
	}
	path := args[2]

	f, err := os.Create(path)
	if err != nil {
		log.Printf("[ERROR] Failed to open target file %q: %v\n", path, err)
		return 2
	}
	defer f.Close()

	cnt := 0
	for t := range g.Triples() {
		if _, err := f.WriteString(t.String() + "\n"); err != nil {
			log.Printf("[ERROR] Failed to write triple %s to file %q: %v\n", t, path, err)
			return 2
		}
		cnt++
	}

	fmt.Printf("Successfully written %d triples to file %q.\n", cnt, path)
	return 0
}
