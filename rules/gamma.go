// Gamma rules rewrite every triple of one predicate's Chunk based on a
// schema assertion about that predicate: PRP-DOM/PRP-RNG turn domain/range
// declarations into rdf:type triples, PRP-SPO1 rewrites the predicate
// itself, PRP-SYMP swaps subject and object, and EQ-TRANS composes
// owl:sameAs with itself. Grounded on inferrust's
// src/rules/gamma_rules.rs (apply_gamma_rule, PRP_SYMP, EQ_TRANS).
package rules

import (
	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// applyGammaRule joins headOffset's SO pairs (p, c) against the Chunk of
// predicate p itself, emitting one output triple per triple that uses p.
// subjectSide selects which half of the p-triple feeds the output
// subject; outputProp fixes the output predicate.
func applyGammaRule(ts *store.TripleStore, headOffset int, outputProp uint64, subjectSide bool) []Triple {
	head := ts.ChunkAt(headOffset)
	if head.IsEmpty() {
		return nil
	}
	var output []Triple
	for _, p1 := range head.SO() {
		prop, c := p1.S(), p1.O()
		for _, p2 := range ts.ChunkAt(dictionary.PropIdxToOffset(prop)).SO() {
			if subjectSide {
				output = append(output, Triple{p2.S(), outputProp, c})
			} else {
				output = append(output, Triple{p2.O(), outputProp, c})
			}
		}
	}
	return output
}

// PRPDOM: (p rdfs:domain c), (s p o) => (s rdf:type c).
func PRPDOM(ts *store.TripleStore) []Triple {
	return applyGammaRule(ts, dictionary.PropIdxToOffset(vocab.RDFSDomain), vocab.RDFType, true)
}

// PRPRNG: (p rdfs:range c), (s p o) => (o rdf:type c).
func PRPRNG(ts *store.TripleStore) []Triple {
	return applyGammaRule(ts, dictionary.PropIdxToOffset(vocab.RDFSRange), vocab.RDFType, false)
}

// PRPSPO1: (p1 rdfs:subPropertyOf p2), (s p1 o) => (s p2 o).
func PRPSPO1(ts *store.TripleStore) []Triple {
	head := ts.ChunkAt(dictionary.PropIdxToOffset(vocab.RDFSSubPropertyOf))
	if head.IsEmpty() {
		return nil
	}
	var output []Triple
	for _, p1 := range head.SO() {
		p1id, p2id := p1.S(), p1.O()
		for _, p2 := range ts.ChunkAt(dictionary.PropIdxToOffset(p1id)).SO() {
			output = append(output, Triple{p2.S(), p2id, p2.O()})
		}
	}
	return output
}

// PRPSYMP: (p rdf:type owl:SymmetricProperty), (s p o) => (o p s).
func PRPSYMP(ts *store.TripleStore) []Triple {
	typeOS := chunkOS(ts, vocab.RDFType) // (o, s) i.e. (type-object, subject)
	var output []Triple
	for _, pair := range typeOS {
		if pair.S() != vocab.OWLSymmetricProperty {
			continue
		}
		p := pair.O()
		for _, p2 := range ts.ChunkAt(dictionary.PropIdxToOffset(p)).SO() {
			output = append(output, Triple{p2.O(), p, p2.S()})
		}
	}
	return output
}

// EQTRANS: (a owl:sameAs b), (b owl:sameAs c), a != c => (a owl:sameAs c)
// and its symmetric pair. A binary-search join (store.SubjectRange) over
// owl:sameAs's own SO list, rather than the nested nested nothing-skipped
// nested scan gamma_rules.rs's EQ_TRANS uses, since SO is already sorted
// by subject and this is exactly what CAX-SCO's chainRule join does.
func EQTRANS(ts *store.TripleStore) []Triple {
	so := chunkSO(ts, vocab.OWLSameAs)
	var output []Triple
	for _, p1 := range so {
		for _, p2 := range store.SubjectRange(so, p1.O()) {
			if p1.S() != p2.O() {
				output = append(output, Triple{p1.S(), vocab.OWLSameAs, p2.O()}, Triple{p2.O(), vocab.OWLSameAs, p1.S()})
			}
		}
	}
	return output
}
