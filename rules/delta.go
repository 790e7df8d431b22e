// Delta rules substitute one predicate for another wherever a schema
// assertion declares two predicates equivalent or inverse: PRP-INV-1/2
// rewrite both directions of an owl:inverseOf pair (swapping subject and
// object), PRP-EQP-1/2 rewrite both directions of an
// owl:equivalentProperty pair (preserving direction). Grounded on
// inferrust's src/rules/delta_rules.rs apply_delta_rule, which folds the
// "-1" and "-2" halves of each rule into one pass over the schema Chunk.
package rules

import (
	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// applyDeltaRule walks schemaOffset's (p1, p2) pairs; for each, it
// rewrites every triple of p1's Chunk into a p2-predicated triple and
// every triple of p2's Chunk into a p1-predicated triple. When invert is
// set it swaps subject and object during the rewrite (owl:inverseOf);
// otherwise it preserves them (owl:equivalentProperty).
func applyDeltaRule(ts *store.TripleStore, schemaOffset int, invert bool) []Triple {
	schema := ts.ChunkAt(schemaOffset)
	if schema.IsEmpty() {
		return nil
	}
	pairsOf := func(propID uint64) []store.Pair {
		c := ts.ChunkAt(dictionary.PropIdxToOffset(propID))
		if invert {
			return c.OS()
		}
		return c.SO()
	}

	var output []Triple
	for _, pair := range schema.SO() {
		p1, p2 := pair.S(), pair.O()
		if p1 == p2 {
			continue
		}
		for _, u := range pairsOf(p1) {
			output = append(output, Triple{u.S(), p2, u.O()})
		}
		for _, u := range pairsOf(p2) {
			output = append(output, Triple{u.S(), p1, u.O()})
		}
	}
	return output
}

// PRPINV12: (p1 owl:inverseOf p2), (s p1 o) => (o p2 s), and symmetrically
// (s p2 o) => (o p1 s).
func PRPINV12(ts *store.TripleStore) []Triple {
	return applyDeltaRule(ts, dictionary.PropIdxToOffset(vocab.OWLInverseOf), true)
}

// PRPEQP12: (p1 owl:equivalentProperty p2), (s p1 o) => (s p2 o), and
// symmetrically (s p2 o) => (s p1 o).
func PRPEQP12(ts *store.TripleStore) []Triple {
	return applyDeltaRule(ts, dictionary.PropIdxToOffset(vocab.OWLEquivalentProperty), false)
}
