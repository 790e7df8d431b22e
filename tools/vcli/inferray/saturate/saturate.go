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

// Package saturate contains the vCli command that runs one named rule
// profile against a graph to a fixed point.
package saturate

import (
	"fmt"
	"log"
	"time"

	"github.com/google/inferray/infgraph"
	"github.com/google/inferray/rules"
	"github.com/google/inferray/tools/vcli/inferray/command"
)

// profiles maps the CLI-facing profile name to its rules.Profile builder.
var profiles = map[string]func() rules.Profile{
	"rdfs":      rules.RDFS,
	"rhodf":     rules.RhoDF,
	"rdfs-plus": rules.RDFSPlus,
}

// New creates the saturate command against g.
func New(g *infgraph.InfGraph) *command.Command {
	cmd := &command.Command{
		UsageLine: "saturate <rdfs|rhodf|rdfs-plus>",
		Short:     "saturate the graph under one entailment profile.",
		Long: `Runs forward-chaining entailment against the graph using the named
rule profile, to a fixed point. Available profiles: rdfs, rhodf, rdfs-plus.
`,
	}
	cmd.Run = func(args []string) int {
		return Eval(cmd.UsageLine+"\n\n"+cmd.Long, args, g)
	}
	return cmd
}

// Eval runs the profile named by args against g.
func Eval(usage string, args []string, g *infgraph.InfGraph) int {
	if len(args) < 3 {
		log.Printf("[ERROR] Missing required profile name.\n\n%s", usage)
		return 2
	}
	name := args[2]
	build, ok := profiles[name]
	if !ok {
		log.Printf("[ERROR] Unknown profile %q.\n\n%s", name, usage)
		return 2
	}

	before := g.Size()
	start := time.Now()
	if err := g.Process(build()); err != nil {
		log.Printf("[ERROR] Saturation under profile %q failed: %v\n", name, err)
		return 2
	}
	fmt.Printf("Saturated under profile %q in %s: %d -> %d triples.\n", name, time.Since(start), before, g.Size())
	return 0
}
