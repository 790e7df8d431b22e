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

package term

import (
	"fmt"
	"regexp"
	"strings"
)

// Parse parses a single pretty-printed term: <iri>, _:label, or
// "value"^^<datatype>. It is a minimal stand-in for the real parser, which
// is an external collaborator per spec.md §1; inferray's CLI tooling uses
// it to load line-oriented fixture files the way tools/vcli/bw/load does
// for BQL's triple.ParseTriple.
func Parse(s string) (Term, error) {
	raw := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(raw, "_:"):
		return NewBlankNodeWithLabel(strings.TrimPrefix(raw, "_:"))
	case strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">"):
		return NewIRI(raw[1 : len(raw)-1])
	case strings.HasPrefix(raw, `"`):
		return parseLiteral(raw)
	default:
		return Term{}, fmt.Errorf("term.Parse(%q): unrecognized term syntax", s)
	}
}

var litSplit = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"(\^\^<([^>]*)>)?$`)

func parseLiteral(raw string) (Term, error) {
	m := litSplit.FindStringSubmatch(raw)
	if m == nil {
		return Term{}, fmt.Errorf("term.Parse(%q): malformed literal", raw)
	}
	value := strings.ReplaceAll(m[1], `\"`, `"`)
	return NewLiteral(value, m[3]), nil
}

// tripleSplit separates "subject predicate object" into three fields,
// where subject and predicate are always a single space-free token
// (<iri> or _:label) but object may be a literal containing internal
// whitespace; the remainder of the line after the predicate is taken
// verbatim as the object, the way badwolf's triple.ParseTriple splits a
// line on structural boundaries rather than on whitespace alone.
var tripleSplit = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(.*)$`)

// ParseTriple parses one line into a Triple. Each component must be
// individually well-formed per Parse; this does not attempt full
// Turtle/N-Triples grammar.
func ParseTriple(line string) (Triple, error) {
	raw := strings.TrimSpace(line)
	m := tripleSplit.FindStringSubmatch(raw)
	if m == nil {
		return Triple{}, fmt.Errorf("term.ParseTriple(%q): expected \"subject predicate object\"", line)
	}
	s, err := Parse(m[1])
	if err != nil {
		return Triple{}, fmt.Errorf("term.ParseTriple: subject: %v", err)
	}
	p, err := Parse(m[2])
	if err != nil {
		return Triple{}, fmt.Errorf("term.ParseTriple: predicate: %v", err)
	}
	o, err := Parse(m[3])
	if err != nil {
		return Triple{}, fmt.Errorf("term.ParseTriple: object: %v", err)
	}
	return Triple{Subject: s, Predicate: p, Object: o}, nil
}
