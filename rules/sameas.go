// Package rules' same-as rule and its load-time companion. The
// consolidated owl:sameAs rule covers EQ-SYM, EQ-REP-S, and EQ-REP-O; the
// remaining case, EQ-REP-P (a sameAs pair whose subject is itself a
// property id, so the predicate of every triple using it is rewritten),
// is split out into PreRun. Grounded on inferrust's
// src/rules/same_as_rules.rs apply_same_as_rule and
// src/rules/_rules.rs PRP_FP/PRP_IFP.
package rules

import (
	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// PreRun resolves EQ-REP-P once, before the fixed-point loop starts. For
// every (a, b) in owl:sameAs where a is already a property id, every
// triple of predicate a is rewritten to predicate b. If b itself has never
// been used as a predicate, it is force-promoted to a property id here —
// the dictionary is still mutable at this point in InfGraph.Process (load,
// closures and before-rules have finished; the rule fixed point has not
// begun), so this does not violate the
// "dictionary is not mutated during saturation" invariant spec.md §5
// states for the fixed-point proper. Resolves the open question in
// spec.md §9 via its option (b): restricting predicate-level sameAs
// substitution to an explicit pre-pass rather than attempting it as a
// steady-state rule, where a mid-loop promotion would have nowhere safe
// to record the new id.
func PreRun(dict *dictionary.Dictionary, ts *store.TripleStore) {
	sameChunk := ts.ChunkAt(dictionary.PropIdxToOffset(vocab.OWLSameAs))
	if sameChunk.IsEmpty() {
		return
	}

	remap := make(map[uint64]uint64)
	for _, p := range sameChunk.SO() {
		a, b := p.S(), p.O()
		if !dictionary.IsProperty(a) {
			continue
		}
		remap[a] = dict.PromoteResourceID(b)
	}
	if len(remap) == 0 {
		return
	}

	var rewritten [][3]uint64
	for oldP, newP := range remap {
		for _, pr := range ts.ChunkAt(dictionary.PropIdxToOffset(oldP)).SO() {
			rewritten = append(rewritten, [3]uint64{pr.S(), newP, pr.O()})
		}
	}
	ts.MergeTriples(rewritten)
}

// SAMEAS is the steady-state same-as rule: for every (a, b) in
// owl:sameAs, it emits the symmetric pair (EQ-SYM); if a is a resource id
// it additionally scans every other Chunk's SO for subjects equal to a
// (EQ-REP-S) and OS for objects equal to a (EQ-REP-O), replacing a with b.
// A pair whose a is a property id skips the Chunk scan entirely: that
// case is EQ-REP-P, resolved once by PreRun before this rule ever runs.
func SAMEAS(ts *store.TripleStore) []Triple {
	sameChunk := ts.ChunkAt(dictionary.PropIdxToOffset(vocab.OWLSameAs))
	if sameChunk.IsEmpty() {
		return nil
	}

	var output []Triple
	for _, p := range sameChunk.SO() {
		a, b := p.S(), p.O()
		output = append(output, Triple{b, vocab.OWLSameAs, a})
		if dictionary.IsProperty(a) {
			continue
		}
		for offset, chunk := range ts.Chunks() {
			pred := dictionary.OffsetToPropIdx(offset)
			if pred == vocab.OWLSameAs {
				continue
			}
			for _, m := range store.SubjectRange(chunk.SO(), a) {
				output = append(output, Triple{b, pred, m.O()})
			}
			for _, m := range store.SubjectRange(chunk.OS(), a) {
				output = append(output, Triple{m.O(), pred, b})
			}
		}
	}
	return output
}

// groupEmitSameAs groups already-sorted pairs by their first component and
// emits a sameAs pair for every two distinct second components within a
// group: the shared shape behind PRP-FP (grouped by subject, since a
// functional property has at most one value per subject) and PRP-IFP
// (grouped by object, via the OS list, since an inverse-functional
// property has at most one subject per value).
func groupEmitSameAs(pairs []store.Pair) []Triple {
	var output []Triple
	for i := 0; i < len(pairs); {
		j := i
		for j < len(pairs) && pairs[j].S() == pairs[i].S() {
			j++
		}
		group := pairs[i:j]
		for x := range group {
			for y := range group {
				if group[x].O() != group[y].O() {
					output = append(output, Triple{group[x].O(), vocab.OWLSameAs, group[y].O()})
				}
			}
		}
		i = j
	}
	return output
}

func functionalRule(ts *store.TripleStore, markerClass uint64, useOS bool) []Triple {
	typeOS := chunkOS(ts, vocab.RDFType)
	var output []Triple
	for _, p := range store.SubjectRange(typeOS, markerClass) {
		chunk := ts.ChunkAt(dictionary.PropIdxToOffset(p.O()))
		pairs := chunk.SO()
		if useOS {
			pairs = chunk.OS()
		}
		output = append(output, groupEmitSameAs(pairs)...)
	}
	return output
}

// PRPFP: two distinct values of a owl:FunctionalProperty for the same
// subject are the same thing.
func PRPFP(ts *store.TripleStore) []Triple {
	return functionalRule(ts, vocab.OWLFunctionalProperty, false)
}

// PRPIFP: two distinct subjects sharing a value of an
// owl:InverseFunctionalProperty are the same thing.
func PRPIFP(ts *store.TripleStore) []Triple {
	return functionalRule(ts, vocab.OWLInverseFunctionalProperty, true)
}
