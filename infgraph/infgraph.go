// Package infgraph is inferray's facade: it wires a parser's term-triples
// through NodeDictionary encoding, TripleStore construction, transitive
// closures, and rule-set saturation, and exposes the result through a
// term-indexed, channel-based query API. Grounded on
// github.com/google/badwolf's storage.Graph interface (ID, channel-typed
// enumeration) and storage/memory's package, which is the concrete Graph
// implementation badwolf's own in-memory backend wraps behind the same
// shape this package wraps TripleStore/Dictionary behind.
package infgraph

import (
	"fmt"
	"sync"

	"github.com/pborman/uuid"

	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/rules"
	"github.com/google/inferray/store"
	"github.com/google/inferray/term"
	"github.com/google/inferray/vocab"
)

// InfGraph owns a Dictionary and a TripleStore and is the unit InfGraph's
// external collaborators (a parser, a serializer, CLI tooling) hold.
type InfGraph struct {
	mu sync.RWMutex

	id   string
	dict *dictionary.Dictionary
	ts   *store.TripleStore
}

// New creates an empty graph with a fresh, globally unique id.
func New() *InfGraph {
	return &InfGraph{
		id:   uuid.New(),
		dict: dictionary.New(),
		ts:   store.New(nil),
	}
}

// ID returns this graph's id.
func (g *InfGraph) ID() string { return g.id }

// Size reports the total number of triples currently held.
func (g *InfGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ts.Size()
}

// Load encodes and merges a batch of parser-facing triples into the
// graph. Per spec.md §9, a term may be seen as a resource before its
// predicate use is discovered; Load runs the dictionary's remap sweep
// over the whole batch before building a store from it, so that every
// triple in the batch reflects each term's final id, not its
// first-encountered one.
func (g *InfGraph) Load(triples []term.Triple) error {
	buf := make([][3]uint64, len(triples))
	for i, t := range triples {
		s, p, o := g.dict.EncodeTriple(t)
		buf[i] = [3]uint64{s, p, o}
	}
	g.dict.RemapTriples(buf)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ts.Merge(store.New(buf))
	return nil
}

// Process runs one full saturation pass per spec.md §4.5's top-level
// algorithm: closures, before-rules, the EQ-REP-P pre-pass, axiomatic
// triples, the rule fixed point, and the optional after-rule.
func (g *InfGraph) Process(profile rules.Profile) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if profile.ClosureProfile.OnSubClassOf {
		g.ts.TransitiveClosure(dictionary.PropIdxToOffset(vocab.RDFSSubClassOf))
	}
	if profile.ClosureProfile.OnSubPropertyOf {
		g.ts.TransitiveClosure(dictionary.PropIdxToOffset(vocab.RDFSSubPropertyOf))
	}
	if profile.ClosureProfile.OnSameAs {
		g.ts.TransitiveClosure(dictionary.PropIdxToOffset(vocab.OWLSameAs))
	}
	if profile.ClosureProfile.OnDeclaredTransitive {
		for _, propID := range g.declaredTransitiveProperties() {
			g.ts.TransitiveClosure(dictionary.PropIdxToOffset(propID))
		}
	}

	if err := profile.BeforeRules.Process(g.ts); err != nil {
		return fmt.Errorf("infgraph.Process: before-rules: %w", err)
	}

	rules.PreRun(g.dict, g.ts)

	if profile.AxiomaticTriples {
		axiomatic := make([][3]uint64, len(vocab.Axiomatic))
		for i, t := range vocab.Axiomatic {
			axiomatic[i] = [3]uint64{t.S, t.P, t.O}
		}
		g.ts.MergeTriples(axiomatic)
	}

	if err := profile.Rules.Process(g.ts); err != nil {
		return fmt.Errorf("infgraph.Process: rules: %w", err)
	}

	if profile.AfterRule != nil {
		g.ts.MergeTriples(profile.AfterRule(g.dict, g.ts))
	}
	return nil
}

// declaredTransitiveProperties returns every property id typed
// owl:TransitiveProperty, the set RDFS-Plus's closure profile discovers
// dynamically rather than takes as a fixed list. A subject typed
// owl:TransitiveProperty but never used in predicate position is still
// interned as a resource id; it is skipped here rather than handed to
// TransitiveClosure, which indexes its chunks by property offset only.
func (g *InfGraph) declaredTransitiveProperties() []uint64 {
	typeOffset := dictionary.PropIdxToOffset(vocab.RDFType)
	os := g.ts.ChunkAt(typeOffset).OS()
	matches := store.SubjectRange(os, vocab.OWLTransitiveProperty)
	var props []uint64
	for _, m := range matches {
		if dictionary.IsProperty(m.O()) {
			props = append(props, m.O())
		}
	}
	return props
}

// Triples enumerates every triple currently held, term-indexed, over a
// channel the caller drains to completion (the badwolf storage.Graph
// idiom: Triples/Objects/Predicates are all read-only channels, not
// slices, so a large graph never forces its whole contents into memory at
// once for a consumer that only wants the first few results).
func (g *InfGraph) Triples() <-chan term.Triple {
	ch := make(chan term.Triple)
	g.mu.RLock()
	go func() {
		defer g.mu.RUnlock()
		defer close(ch)
		for offset, chunk := range g.ts.Chunks() {
			pid := dictionary.OffsetToPropIdx(offset)
			predTerm := g.dict.GetTerm(pid)
			for _, pr := range chunk.SO() {
				ch <- term.Triple{
					Subject:   g.dict.GetTerm(pr.S()),
					Predicate: predTerm,
					Object:    g.dict.GetTerm(pr.O()),
				}
			}
		}
	}()
	return ch
}

// TriplesMatching enumerates every triple matching the given subject,
// predicate, and/or object; a nil pointer is a wildcard. Per spec.md §6,
// a predicate-anchored query (p non-nil) is O(result size); any other
// shape walks every Chunk but skips empty ones and uses binary search
// within each Chunk's sorted pair list.
func (g *InfGraph) TriplesMatching(s, p, o *term.Term) <-chan term.Triple {
	ch := make(chan term.Triple)
	g.mu.RLock()
	go func() {
		defer g.mu.RUnlock()
		defer close(ch)

		if p != nil {
			pid, ok := g.dict.GetIndex(*p)
			if !ok {
				return
			}
			g.emitChunkMatches(ch, dictionary.PropIdxToOffset(pid), pid, s, o)
			return
		}
		for offset := range g.ts.Chunks() {
			pid := dictionary.OffsetToPropIdx(offset)
			g.emitChunkMatches(ch, offset, pid, s, o)
		}
	}()
	return ch
}

func (g *InfGraph) emitChunkMatches(ch chan<- term.Triple, offset int, pid uint64, s, o *term.Term) {
	chunk := g.ts.ChunkAt(offset)
	if chunk.IsEmpty() {
		return
	}
	predTerm := g.dict.GetTerm(pid)

	if s != nil {
		sid, ok := g.dict.GetIndex(*s)
		if !ok {
			return
		}
		var oid uint64
		if o != nil {
			var ok2 bool
			oid, ok2 = g.dict.GetIndex(*o)
			if !ok2 {
				return
			}
		}
		for _, pr := range store.SubjectRange(chunk.SO(), sid) {
			if o != nil && pr.O() != oid {
				continue
			}
			ch <- term.Triple{Subject: *s, Predicate: predTerm, Object: g.dict.GetTerm(pr.O())}
		}
		return
	}

	if o != nil {
		oid, ok := g.dict.GetIndex(*o)
		if !ok {
			return
		}
		for _, pr := range store.SubjectRange(chunk.OS(), oid) {
			ch <- term.Triple{Subject: g.dict.GetTerm(pr.O()), Predicate: predTerm, Object: *o}
		}
		return
	}

	for _, pr := range chunk.SO() {
		ch <- term.Triple{
			Subject:   g.dict.GetTerm(pr.S()),
			Predicate: predTerm,
			Object:    g.dict.GetTerm(pr.O()),
		}
	}
}

// Contains is the three-part containment test: it returns true iff (s, p,
// o) is a triple in the graph, without allocating a channel or a result
// slice.
func (g *InfGraph) Contains(s, p, o term.Term) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sid, ok := g.dict.GetIndex(s)
	if !ok {
		return false
	}
	pid, ok := g.dict.GetIndex(p)
	if !ok {
		return false
	}
	oid, ok := g.dict.GetIndex(o)
	if !ok {
		return false
	}
	chunk := g.ts.ChunkAt(dictionary.PropIdxToOffset(pid))
	for _, pr := range store.SubjectRange(chunk.SO(), sid) {
		if pr.O() == oid {
			return true
		}
	}
	return false
}
