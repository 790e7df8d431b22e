// Beta rules relate two predicates that are the same in both directions:
// SCM-SCO-EQC2/SCM-SPO-EQP2 detect a schema-level 2-cycle (c1 rel c2, c2
// rel c1) and promote it to an equivalence; SCM-EQC1/SCM-EQP1 run the
// reverse, expanding a declared equivalence back into its two subClassOf
// or subPropertyOf halves. Grounded on inferrust's
// src/rules/beta_rules.rs apply_beta_rule / apply_inverse_beta_rule.
package rules

import (
	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// applyBetaRule merge-joins a Chunk's OS against its own SO on "o1 == s2"
// (both lists are sorted, so this is a two-pointer walk, not a nested
// scan): for schema pairs (s1, o1) and (s2, o2) of the same predicate
// where o1 == s2, a 2-cycle s1 -> o1 -> s1 becomes an inferP equivalence
// in both directions; any other match re-derives the rule predicate's
// transitive composition s1 -> o2.
func applyBetaRule(ts *store.TripleStore, ruleOffset, inferOffset int) []Triple {
	chunk := ts.ChunkAt(ruleOffset)
	if chunk.IsEmpty() {
		return nil
	}
	ruleP := dictionary.OffsetToPropIdx(ruleOffset)
	inferP := dictionary.OffsetToPropIdx(inferOffset)

	os := chunk.OS() // pairs (o, s), sorted by o then s
	so := chunk.SO() // pairs (s, o), sorted by s then o

	var output []Triple
	counter := 0
	for _, pair1 := range os {
		s1, o1 := pair1.O(), pair1.S()
		for j := counter; j < len(so); j++ {
			pair2 := so[j]
			s2, o2 := pair2.S(), pair2.O()
			if s2 < o1 {
				counter = j + 1
				continue
			}
			if s2 > o1 {
				break
			}
			if s1 == o2 {
				output = append(output, Triple{s1, inferP, o1}, Triple{s2, inferP, o2})
			} else {
				output = append(output, Triple{s1, ruleP, o2})
			}
		}
	}
	return output
}

// applyInverseBetaRule expands every (c1, ruleP, c2) pair [the equivalence]
// back into its two directed halves under inferP, plus a re-assertion of
// the equivalence itself (redundant with the existing triple, harmless
// under merge dedup).
func applyInverseBetaRule(ts *store.TripleStore, ruleOffset, inferOffset int) []Triple {
	chunk := ts.ChunkAt(ruleOffset)
	if chunk.IsEmpty() {
		return nil
	}
	ruleP := dictionary.OffsetToPropIdx(ruleOffset)
	inferP := dictionary.OffsetToPropIdx(inferOffset)

	var output []Triple
	for _, p := range chunk.SO() {
		output = append(output,
			Triple{p.S(), inferP, p.O()},
			Triple{p.O(), inferP, p.S()},
			Triple{p.S(), ruleP, p.O()},
		)
	}
	return output
}

// SCMSCOEQC2: a subClassOf 2-cycle becomes an owl:equivalentClass pair.
func SCMSCOEQC2(ts *store.TripleStore) []Triple {
	return applyBetaRule(ts,
		dictionary.PropIdxToOffset(vocab.RDFSSubClassOf),
		dictionary.PropIdxToOffset(vocab.OWLEquivalentClass))
}

// SCMSPOEQP2: a subPropertyOf 2-cycle becomes an owl:equivalentProperty pair.
func SCMSPOEQP2(ts *store.TripleStore) []Triple {
	return applyBetaRule(ts,
		dictionary.PropIdxToOffset(vocab.RDFSSubPropertyOf),
		dictionary.PropIdxToOffset(vocab.OWLEquivalentProperty))
}

// SCMEQC1: owl:equivalentClass expands to both subClassOf directions.
func SCMEQC1(ts *store.TripleStore) []Triple {
	return applyInverseBetaRule(ts,
		dictionary.PropIdxToOffset(vocab.OWLEquivalentClass),
		dictionary.PropIdxToOffset(vocab.RDFSSubClassOf))
}

// SCMEQP1: owl:equivalentProperty expands to both subPropertyOf directions.
func SCMEQP1(ts *store.TripleStore) []Triple {
	return applyInverseBetaRule(ts,
		dictionary.PropIdxToOffset(vocab.OWLEquivalentProperty),
		dictionary.PropIdxToOffset(vocab.RDFSSubPropertyOf))
}
