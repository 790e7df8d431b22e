package infgraph

import (
	"sort"
	"testing"

	"github.com/google/inferray/rules"
	"github.com/google/inferray/term"
	"github.com/google/inferray/vocab"
)

const (
	rdfType        = vocab.NSRDF + "type"
	rdfsSubClassOf = vocab.NSRDFS + "subClassOf"
	owlSameAs      = vocab.NSOWL + "sameAs"
)

func mustIRI(t *testing.T, s string) term.Term {
	t.Helper()
	iri, err := term.NewIRI(s)
	if err != nil {
		t.Fatalf("NewIRI(%q): %v", s, err)
	}
	return iri
}

func triple(t *testing.T, s, p, o string) term.Triple {
	return term.Triple{
		Subject:   mustIRI(t, s),
		Predicate: mustIRI(t, p),
		Object:    mustIRI(t, o),
	}
}

func collect(ch <-chan term.Triple) []term.Triple {
	var out []term.Triple
	for tr := range ch {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func TestLoadThenContains(t *testing.T) {
	g := New()
	in := []term.Triple{
		triple(t, "ex:alice", "ex:knows", "ex:bob"),
	}
	if err := g.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.Contains(in[0].Subject, in[0].Predicate, in[0].Object) {
		t.Fatalf("Contains: expected loaded triple to be present")
	}
	if g.Contains(in[0].Subject, in[0].Predicate, mustIRI(t, "ex:carol")) {
		t.Fatalf("Contains: unexpected match against an unrelated object")
	}
}

func TestProcessRDFSSubClassChain(t *testing.T) {
	g := New()
	in := []term.Triple{
		triple(t, "ex:Cat", rdfsSubClassOf, "ex:Mammal"),
		triple(t, "ex:Mammal", rdfsSubClassOf, "ex:Animal"),
		triple(t, "ex:tom", rdfType, "ex:Cat"),
	}
	if err := g.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := g.Process(rules.RDFS()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !g.Contains(mustIRI(t, "ex:tom"), mustIRI(t, rdfType), mustIRI(t, "ex:Animal")) {
		t.Fatalf("expected ex:tom rdf:type ex:Animal to be entailed")
	}
	if !g.Contains(mustIRI(t, "ex:Cat"), mustIRI(t, rdfsSubClassOf), mustIRI(t, "ex:Animal")) {
		t.Fatalf("expected subClassOf transitivity ex:Cat -> ex:Animal")
	}
}

func TestTriplesMatchingBySubject(t *testing.T) {
	g := New()
	in := []term.Triple{
		triple(t, "ex:alice", "ex:knows", "ex:bob"),
		triple(t, "ex:alice", "ex:knows", "ex:carol"),
		triple(t, "ex:dave", "ex:knows", "ex:bob"),
	}
	if err := g.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}

	alice := mustIRI(t, "ex:alice")
	got := collect(g.TriplesMatching(&alice, nil, nil))
	if len(got) != 2 {
		t.Fatalf("TriplesMatching(alice, _, _): got %d triples, want 2", len(got))
	}
	for _, tr := range got {
		if tr.Subject.Value() != "ex:alice" {
			t.Fatalf("TriplesMatching(alice, _, _): unexpected subject %v", tr.Subject)
		}
	}
}

func TestTriplesEnumeratesEverything(t *testing.T) {
	g := New()
	in := []term.Triple{
		triple(t, "ex:a", "ex:p", "ex:b"),
		triple(t, "ex:c", "ex:q", "ex:d"),
	}
	if err := g.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := collect(g.Triples())
	if len(got) != len(in) {
		t.Fatalf("Triples(): got %d, want %d", len(got), len(in))
	}
}

func TestProcessRDFSPlusSameAsTransport(t *testing.T) {
	g := New()
	in := []term.Triple{
		triple(t, "ex:alice", owlSameAs, "ex:alicia"),
		triple(t, "ex:alice", "ex:age", "ex:thirty"),
	}
	if err := g.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := g.Process(rules.RDFSPlus()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !g.Contains(mustIRI(t, "ex:alicia"), mustIRI(t, "ex:age"), mustIRI(t, "ex:thirty")) {
		t.Fatalf("expected sameAs to transport ex:age onto ex:alicia")
	}
	if !g.Contains(mustIRI(t, "ex:alicia"), mustIRI(t, owlSameAs), mustIRI(t, "ex:alice")) {
		t.Fatalf("expected owl:sameAs symmetry")
	}
}
