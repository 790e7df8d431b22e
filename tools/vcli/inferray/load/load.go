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

// Package load contains the vCli command that bulk-loads term-triples
// from a file into a graph, adapted from tools/vcli/bw/load.
package load

import (
	"fmt"
	"log"

	"github.com/google/inferray/infgraph"
	"github.com/google/inferray/term"
	"github.com/google/inferray/tools/vcli/inferray/command"
	"github.com/google/inferray/tools/vcli/inferray/fileio"
)

// New creates the load command against g, flushing every bulkSize triples.
func New(g *infgraph.InfGraph, bulkSize int) *command.Command {
	cmd := &command.Command{
		UsageLine: "load <file_path>",
		Short:     "load triples in bulk from a file.",
		Long: `Loads all the triples stored in a file into the graph. Each triple
needs to be placed on a single line and formatted as <subject> <predicate>
<object>, the same term syntax term.Parse accepts. A line starting with
# is treated as a comment.
`,
	}
	cmd.Run = func(args []string) int {
		return Eval(cmd.UsageLine+"\n\n"+cmd.Long, args, g, bulkSize)
	}
	return cmd
}

// Eval loads the triples in the file named by args into g.
func Eval(usage string, args []string, g *infgraph.InfGraph, bulkSize int) int {
	if len(args) < 3 {
		log.Printf("[ERROR] Missing required file path.\n\n%s", usage)
		return 2
	}
	path := args[2]

	var batch []term.Triple
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := g.Load(batch)
		batch = batch[:0]
		return err
	}

	cnt, err := fileio.ProcessLines(path, func(line string) error {
		t, err := term.ParseTriple(line)
		if err != nil {
			return err
		}
		batch = append(batch, t)
		if len(batch) >= bulkSize {
			return flush()
		}
		return nil
	})
	if err == nil {
		err = flush()
	}
	if err != nil {
		log.Printf("[ERROR] Failed to process file %q at line %d: %v\n", path, cnt, err)
		return 2
	}

	fmt.Printf("Successfully loaded %d lines from file %q.\nGraph now holds %d triples.\n", cnt, path, g.Size())
	return 0
}
