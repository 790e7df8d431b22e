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

import "testing"

func TestNewIRIRejectsMalformed(t *testing.T) {
	table := []string{"", "has space", "has\ttab", "<bracketed>"}
	for _, s := range table {
		if _, err := NewIRI(s); err == nil {
			t.Errorf("NewIRI(%q) should have failed", s)
		}
	}
}

func TestNewIRIKeyRoundTrips(t *testing.T) {
	a, err := NewIRI("http://example.org/a")
	if err != nil {
		t.Fatalf("NewIRI: %v", err)
	}
	b, err := NewIRI("http://example.org/a")
	if err != nil {
		t.Fatalf("NewIRI: %v", err)
	}
	if a.Key() != b.Key() {
		t.Errorf("Key(): two IRIs built from the same string should share a key, got %q vs %q", a.Key(), b.Key())
	}
}

func TestNewBlankNodeIsUnique(t *testing.T) {
	a := NewBlankNode()
	b := NewBlankNode()
	if a.Key() == b.Key() {
		t.Errorf("NewBlankNode() returned the same label twice: %q", a.Key())
	}
	if a.Kind() != Blank {
		t.Errorf("NewBlankNode().Kind() = %v, want Blank", a.Kind())
	}
}

func TestNewLiteralDefaultsDatatype(t *testing.T) {
	l := NewLiteral("42", "")
	if l.Datatype() != XSDString {
		t.Errorf("NewLiteral with empty datatype: got %q, want %q", l.Datatype(), XSDString)
	}
}

func TestLiteralKeyDistinguishesDatatype(t *testing.T) {
	a := NewLiteral("42", XSDNonNegativeInteger)
	b := NewLiteral("42", XSDString)
	if a.Key() == b.Key() {
		t.Errorf("literals with different datatypes should not share a key, got %q", a.Key())
	}
}

func TestTermIDPanicsWithoutWithID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Term.ID() on an unassigned term should have panicked")
		}
	}()
	iri, err := NewIRI("http://example.org/a")
	if err != nil {
		t.Fatalf("NewIRI: %v", err)
	}
	_ = iri.ID()
}

func TestTermWithIDRoundTrips(t *testing.T) {
	iri, err := NewIRI("http://example.org/a")
	if err != nil {
		t.Fatalf("NewIRI: %v", err)
	}
	iri = iri.WithID(7)
	if got, want := iri.ID(), int64(7); got != want {
		t.Errorf("ID() = %d, want %d", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	table := []struct {
		in   string
		kind Kind
	}{
		{"<http://example.org/a>", IRI},
		{"_:b0", Blank},
		{`"hello"^^<http://www.w3.org/2001/XMLSchema#string>`, Literal},
		{`"hello"`, Literal},
	}
	for _, tc := range table {
		tm, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if tm.Kind() != tc.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tc.in, tm.Kind(), tc.kind)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	table := []string{"", "bare", `"unterminated`, "<no-close"}
	for _, s := range table {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should have failed", s)
		}
	}
}

func TestParseTriple(t *testing.T) {
	tr, err := ParseTriple(`<http://example.org/a> <http://example.org/p> "hello world"^^<http://www.w3.org/2001/XMLSchema#string>`)
	if err != nil {
		t.Fatalf("ParseTriple: %v", err)
	}
	if tr.Subject.Value() != "http://example.org/a" {
		t.Errorf("Subject = %q, want http://example.org/a", tr.Subject.Value())
	}
	if tr.Predicate.Value() != "http://example.org/p" {
		t.Errorf("Predicate = %q, want http://example.org/p", tr.Predicate.Value())
	}
	if tr.Object.Value() != "hello world" {
		t.Errorf("Object = %q, want \"hello world\"", tr.Object.Value())
	}
}

func TestParseTripleRejectsIncomplete(t *testing.T) {
	table := []string{"", "<http://example.org/a>", "<http://example.org/a> <http://example.org/p>"}
	for _, s := range table {
		if _, err := ParseTriple(s); err == nil {
			t.Errorf("ParseTriple(%q) should have failed", s)
		}
	}
}
