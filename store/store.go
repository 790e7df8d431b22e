package store

import (
	"github.com/google/inferray/closure"
	"github.com/google/inferray/dictionary"
)

// TripleStore holds every Chunk of a saturated (or saturating) graph,
// indexed by predicate offset (dictionary.PropIdxToOffset), plus a cached
// total size. Grounded on inferrust's src/inferray/store.rs TripleStore.
type TripleStore struct {
	chunks []*Chunk
	size   int
}

// New buckets triples by predicate offset and builds one Chunk per
// predicate, summing their sizes into the store's total.
func New(triples [][3]uint64) *TripleStore {
	buckets := make(map[int][]Pair)
	maxOffset := -1
	for _, t := range triples {
		offset := dictionary.PropIdxToOffset(t[1])
		buckets[offset] = append(buckets[offset], Pair{t[0], t[2]})
		if offset > maxOffset {
			maxOffset = offset
		}
	}

	ts := &TripleStore{}
	if maxOffset < 0 {
		return ts
	}
	ts.chunks = make([]*Chunk, maxOffset+1)
	for offset, pairs := range buckets {
		c := NewChunk(pairs)
		ts.chunks[offset] = c
		ts.size += c.Len()
	}
	for i, c := range ts.chunks {
		if c == nil {
			ts.chunks[i] = Empty()
		}
	}
	return ts
}

// Chunks returns the store's Chunks, indexed by predicate offset. A nil
// entry never appears; predicates with no triples get an empty Chunk so
// that offset arithmetic stays a direct index rather than a lookup.
func (ts *TripleStore) Chunks() []*Chunk { return ts.chunks }

// Size reports the total number of triples across every Chunk.
func (ts *TripleStore) Size() int { return ts.size }

// ChunkAt returns the Chunk at offset, or an empty Chunk if offset is past
// the end of the store (a predicate that has never received a triple).
func (ts *TripleStore) ChunkAt(offset int) *Chunk {
	if offset < 0 || offset >= len(ts.chunks) {
		return Empty()
	}
	return ts.chunks[offset]
}

// ensureLen grows ts.chunks with empty Chunks so offset is addressable.
func (ts *TripleStore) ensureLen(offset int) {
	for len(ts.chunks) <= offset {
		ts.chunks = append(ts.chunks, Empty())
	}
}

// Merge unions other into ts: shared predicate offsets are Chunk-merged,
// and the store is extended to cover any offset only other has. Size is
// recomputed afterward rather than tracked incrementally, since a Chunk
// merge's net new-triple count isn't known without re-summing.
func (ts *TripleStore) Merge(other *TripleStore) {
	if other == nil {
		return
	}
	ts.ensureLen(len(other.chunks) - 1)
	for offset, oc := range other.chunks {
		if oc == nil || oc.IsEmpty() {
			continue
		}
		if ts.chunks[offset] == nil {
			ts.chunks[offset] = Empty()
		}
		ts.chunks[offset].Merge(oc)
	}
	ts.recomputeSize()
}

// MergeTriples is a convenience wrapper building a TripleStore from triples
// and merging it into ts in one step, the shape most rule output takes.
func (ts *TripleStore) MergeTriples(triples [][3]uint64) {
	if len(triples) == 0 {
		return
	}
	ts.Merge(New(triples))
}

func (ts *TripleStore) recomputeSize() {
	size := 0
	for _, c := range ts.chunks {
		if c != nil {
			size += c.Len()
		}
	}
	ts.size = size
}

// TransitiveClosure replaces the Chunk at predicateOffset with the SO pairs
// of its reflexive-free transitive closure, computed by the closure
// package's Nuutila-equivalent SCC algorithm. Used by InfGraph before
// rule evaluation for subClassOf, subPropertyOf, sameAs, and every declared
// transitive property, per spec.md §4.4 and §9 (cyclic schema graphs).
func (ts *TripleStore) TransitiveClosure(predicateOffset int) {
	if predicateOffset < 0 {
		return
	}
	ts.ensureLen(predicateOffset)
	c := ts.chunks[predicateOffset]
	if c == nil || c.IsEmpty() {
		return
	}

	so := c.SO()
	pairs := make([][2]uint64, len(so))
	for i, p := range so {
		pairs[i] = [2]uint64{p.S(), p.O()}
	}

	reach := closure.New(pairs).Close()
	var closed []Pair
	for s, os := range reach {
		for _, o := range os {
			closed = append(closed, Pair{s, o})
		}
	}
	ts.chunks[predicateOffset] = NewChunk(closed)
	ts.recomputeSize()
}
