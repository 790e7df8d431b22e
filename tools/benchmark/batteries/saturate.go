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

// Package batteries assembles runtime.Entry lists for the standard
// saturation scenarios, adapted from tools/benchmark/batteries' BQL
// add/remove batteries: instead of timing triple inserts/deletes against
// BQL, these batteries time Load+Process against a generated schema
// lattice, the LUBM-ontology-challenge shape inferrust's own
// benches/inferrust.rs and examples/challenge.rs exercise.
package batteries

import (
	"fmt"

	"github.com/google/inferray/infgraph"
	"github.com/google/inferray/rules"
	"github.com/google/inferray/tools/benchmark/generator/schema"
	"github.com/google/inferray/tools/benchmark/runtime"
)

// profiles is the fixed set of entailment profiles every battery below
// exercises.
var profiles = []struct {
	name  string
	build func() rules.Profile
}{
	{"rdfs", rules.RDFS},
	{"rhodf", rules.RhoDF},
	{"rdfs-plus", rules.RDFSPlus},
}

// SaturationBattery builds one runtime.Entry per entailment profile,
// each loading a freshly generated lattice and running it to a fixed
// point once per repetition.
func SaturationBattery(lattice schema.Lattice, reps int) ([]*runtime.Entry, error) {
	var entries []*runtime.Entry
	for _, p := range profiles {
		p := p
		var g *infgraph.InfGraph
		entries = append(entries, &runtime.Entry{
			BatteryID: "saturate",
			ID:        fmt.Sprintf("%s/depth=%d/fanout=%d/instances=%d", p.name, lattice.Depth, lattice.FanOut, lattice.Instances),
			Triples:   lattice.Instances,
			Reps:      reps,
			Setup: func() error {
				triples, err := lattice.Generate()
				if err != nil {
					return err
				}
				g = infgraph.New()
				return g.Load(triples)
			},
			Run: func() error {
				return g.Process(p.build())
			},
			TearDown: func() error {
				g = nil
				return nil
			},
		})
	}
	return entries, nil
}
