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

package dictionary

import (
	"testing"

	"github.com/google/inferray/term"
	"github.com/google/inferray/vocab"
)

func mustIRI(t *testing.T, s string) term.Term {
	t.Helper()
	tm, err := term.NewIRI(s)
	if err != nil {
		t.Fatalf("term.NewIRI(%q): %v", s, err)
	}
	return tm
}

func TestNewPreInternsReservedVocabulary(t *testing.T) {
	d := New()
	id, ok := d.GetIndex(mustIRI(t, vocab.NSRDF+"type"))
	if !ok {
		t.Fatalf("rdf:type should be pre-interned")
	}
	if id != vocab.RDFType {
		t.Errorf("rdf:type id = %d, want %d", id, vocab.RDFType)
	}
}

func TestEncodeTripleInternsOrdinaryTermsAsResources(t *testing.T) {
	d := New()
	tr := term.Triple{
		Subject:   mustIRI(t, "http://example.org/alice"),
		Predicate: mustIRI(t, vocab.NSRDF+"type"),
		Object:    mustIRI(t, "http://example.org/Person"),
	}
	s, p, o := d.EncodeTriple(tr)
	if p != vocab.RDFType {
		t.Errorf("predicate id = %d, want %d", p, vocab.RDFType)
	}
	if !IsProperty(p) {
		t.Errorf("predicate id %d should be a property id", p)
	}
	if IsProperty(s) || IsProperty(o) {
		t.Errorf("plain rdf:type subject/object should be resource ids, got s=%d o=%d", s, o)
	}
}

func TestEncodeTripleSamePredicateReturnsSameID(t *testing.T) {
	d := New()
	p1 := mustIRI(t, "http://example.org/knows")
	tr := term.Triple{Subject: mustIRI(t, "http://example.org/a"), Predicate: p1, Object: mustIRI(t, "http://example.org/b")}
	_, id1, _ := d.EncodeTriple(tr)
	_, id2, _ := d.EncodeTriple(tr)
	if id1 != id2 {
		t.Errorf("interning the same predicate twice produced different ids: %d vs %d", id1, id2)
	}
}

func TestEncodeTripleRDFSDomainForcesSubjectProperty(t *testing.T) {
	d := New()
	p := mustIRI(t, "http://example.org/knows")
	tr := term.Triple{Subject: p, Predicate: mustIRI(t, vocab.NSRDFS+"domain"), Object: mustIRI(t, "http://example.org/Person")}
	s, _, o := d.EncodeTriple(tr)
	if !IsProperty(s) {
		t.Errorf("rdfs:domain subject should be forced to a property id, got %d", s)
	}
	if IsProperty(o) {
		t.Errorf("rdfs:domain object should remain a resource id, got %d", o)
	}
}

func TestEncodeTripleSubPropertyOfForcesBothSides(t *testing.T) {
	d := New()
	p1 := mustIRI(t, "http://example.org/p1")
	p2 := mustIRI(t, "http://example.org/p2")
	tr := term.Triple{Subject: p1, Predicate: mustIRI(t, vocab.NSRDFS+"subPropertyOf"), Object: p2}
	s, _, o := d.EncodeTriple(tr)
	if !IsProperty(s) || !IsProperty(o) {
		t.Errorf("rdfs:subPropertyOf should force both subject and object to property ids, got s=%d o=%d", s, o)
	}
}

func TestPromoteResourceIDRecordsRemap(t *testing.T) {
	d := New()
	a := mustIRI(t, "http://example.org/a")
	tr := term.Triple{Subject: a, Predicate: mustIRI(t, vocab.NSRDF+"type"), Object: mustIRI(t, "http://example.org/Thing")}
	resID, _, _ := d.EncodeTriple(tr)
	if IsProperty(resID) {
		t.Fatalf("setup: expected a to be interned as a resource first, got property id %d", resID)
	}

	propID := d.PromoteResourceID(resID)
	if !IsProperty(propID) {
		t.Errorf("PromoteResourceID should return a property id, got %d", propID)
	}
	if !d.WasRemapped(resID) {
		t.Errorf("WasRemapped(%d) = false, want true after promotion", resID)
	}

	newID, ok := d.GetIndex(a)
	if !ok || newID != propID {
		t.Errorf("GetIndex after promotion = (%d, %v), want (%d, true)", newID, ok, propID)
	}

	remapped := d.Remapped()
	if len(remapped) != 1 || remapped[0].Old != resID || remapped[0].New != propID {
		t.Errorf("Remapped() = %v, want a single entry {Old: %d, New: %d}", remapped, resID, propID)
	}
}

func TestPromoteResourceIDIsIdempotentOnPropertyID(t *testing.T) {
	d := New()
	if got := d.PromoteResourceID(vocab.RDFType); got != vocab.RDFType {
		t.Errorf("PromoteResourceID on an already-property id should be a no-op, got %d want %d", got, vocab.RDFType)
	}
}

func TestRemapTriplesRewritesStaleReferences(t *testing.T) {
	d := New()
	a := mustIRI(t, "http://example.org/a")

	resID, _, _ := d.EncodeTriple(term.Triple{Subject: a, Predicate: mustIRI(t, vocab.NSRDF+"type"), Object: mustIRI(t, "http://example.org/Thing")})
	buf := [][3]uint64{{resID, vocab.RDFType, resID}}

	propID := d.PromoteResourceID(resID)

	d.RemapTriples(buf)
	if buf[0][0] != propID || buf[0][2] != propID {
		t.Errorf("RemapTriples left stale ids in buf: got %v, want subject/object = %d", buf[0], propID)
	}
}

func TestGetTermRoundTripsEncodedIDs(t *testing.T) {
	d := New()
	a := mustIRI(t, "http://example.org/a")
	s, _, _ := d.EncodeTriple(term.Triple{Subject: a, Predicate: mustIRI(t, vocab.NSRDF+"type"), Object: mustIRI(t, "http://example.org/Thing")})
	got := d.GetTerm(s)
	if got.Value() != a.Value() {
		t.Errorf("GetTerm(%d).Value() = %q, want %q", s, got.Value(), a.Value())
	}
}

func TestGetTermPanicsOutOfRange(t *testing.T) {
	d := New()
	defer func() {
		if recover() == nil {
			t.Errorf("GetTerm on an unassigned id should have panicked")
		}
	}()
	_ = d.GetTerm(vocab.Start + 1000000)
}

func TestPropIdxOffsetRoundTrips(t *testing.T) {
	for _, id := range []uint64{vocab.RDFType, vocab.RDFSSubClassOf, vocab.OWLSameAs} {
		off := PropIdxToOffset(id)
		if got := OffsetToPropIdx(off); got != id {
			t.Errorf("OffsetToPropIdx(PropIdxToOffset(%d)) = %d, want %d", id, got, id)
		}
	}
}
