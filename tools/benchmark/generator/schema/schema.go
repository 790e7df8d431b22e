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

// Package schema generates rdfs:subClassOf lattices and random rdf:type
// instance data for saturation benchmarks (no rdfs:subPropertyOf triples
// are generated), adapted
// from tools/benchmark/generator/graph's random edge generator: instead
// of arbitrary /gn node edges it targets the exact predicates inferray's
// alpha/beta/gamma rules and transitive closure pass exercise.
package schema

import (
	"fmt"
	"math/rand"

	"github.com/google/inferray/term"
)

const (
	nsClass    = "http://inferray.bench/class#"
	nsProperty = "http://inferray.bench/property#"
	nsInstance = "http://inferray.bench/instance#"
)

var (
	rdfType        = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	rdfsSubClassOf = mustIRI("http://www.w3.org/2000/01/rdf-schema#subClassOf")
)

func mustIRI(s string) term.Term {
	t, err := term.NewIRI(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Lattice generates a random classification schema: depth*fanOut classes
// arranged into a subClassOf chain of the given depth with fanOut
// siblings per level, plus instances rdf:type'd to the leaf classes.
// Instances controls the number of instance triples produced.
type Lattice struct {
	Depth, FanOut, Instances int
}

// Generate builds the lattice's triples: a subClassOf chain through
// every level, and Instances instance triples rdf:type'd to a randomly
// chosen leaf class.
func (l Lattice) Generate() ([]term.Triple, error) {
	if l.Depth < 1 || l.FanOut < 1 {
		return nil, fmt.Errorf("schema.Lattice: depth and fanOut must be >= 1, got depth=%d fanOut=%d", l.Depth, l.FanOut)
	}

	var out []term.Triple
	var leaves []term.Term
	for level := 0; level < l.Depth; level++ {
		for branch := 0; branch < l.FanOut; branch++ {
			class := mustIRI(fmt.Sprintf("%sL%dB%d", nsClass, level, branch))
			if level > 0 {
				parent := mustIRI(fmt.Sprintf("%sL%dB%d", nsClass, level-1, branch%l.FanOut))
				out = append(out, term.Triple{Subject: class, Predicate: rdfsSubClassOf, Object: parent})
			}
			if level == l.Depth-1 {
				leaves = append(leaves, class)
			}
		}
	}

	for i := 0; i < l.Instances; i++ {
		inst := mustIRI(fmt.Sprintf("%si%d", nsInstance, i))
		leaf := leaves[rand.Intn(len(leaves))]
		out = append(out, term.Triple{Subject: inst, Predicate: rdfType, Object: leaf})
	}
	return out, nil
}
