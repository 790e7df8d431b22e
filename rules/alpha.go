package rules

import (
	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// chainRule joins every pair in baseSO against index (a sorted pair list,
// either a Chunk's SO or its OS) by a join key extracted from the base
// pair, and emits one triple per match via out. This is the shared shape
// behind every alpha rule: a single Chunk scan joined against one schema
// Chunk through a binary-search range lookup (store.SubjectRange), mirrored
// from inferrust's rules/gamma_rules.rs apply_gamma_rule and
// rules/delta_rules.rs apply_delta_rule, which factor their rule bodies
// into one parameterized join plus several thin named wrappers the same
// way.
func chainRule(baseSO []store.Pair, index []store.Pair, key func(store.Pair) uint64, out func(base, match store.Pair) Triple) []Triple {
	var output []Triple
	for _, b := range baseSO {
		for _, m := range store.SubjectRange(index, key(b)) {
			output = append(output, out(b, m))
		}
	}
	return output
}

func chunkSO(ts *store.TripleStore, propID uint64) []store.Pair {
	return ts.ChunkAt(dictionary.PropIdxToOffset(propID)).SO()
}

func chunkOS(ts *store.TripleStore, propID uint64) []store.Pair {
	return ts.ChunkAt(dictionary.PropIdxToOffset(propID)).OS()
}

func objectKey(p store.Pair) uint64  { return p.O() }
func subjectKey(p store.Pair) uint64 { return p.S() }

// CAXSCO: (x rdf:type c1), (c1 rdfs:subClassOf c2) => (x rdf:type c2).
func CAXSCO(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFType), chunkSO(ts, vocab.RDFSSubClassOf), objectKey,
		func(base, match store.Pair) Triple { return Triple{base.S(), vocab.RDFType, match.O()} })
}

// CAXEQC1: (x rdf:type c1), (c1 owl:equivalentClass c2) => (x rdf:type c2).
func CAXEQC1(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFType), chunkSO(ts, vocab.OWLEquivalentClass), objectKey,
		func(base, match store.Pair) Triple { return Triple{base.S(), vocab.RDFType, match.O()} })
}

// CAXEQC2: (x rdf:type c1), (c2 owl:equivalentClass c1) => (x rdf:type c2).
func CAXEQC2(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFType), chunkOS(ts, vocab.OWLEquivalentClass), objectKey,
		func(base, match store.Pair) Triple { return Triple{base.S(), vocab.RDFType, match.O()} })
}

// SCMDOM1: (p rdfs:domain c1), (c1 rdfs:subClassOf c2) => (p rdfs:domain c2).
func SCMDOM1(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFSDomain), chunkSO(ts, vocab.RDFSSubClassOf), objectKey,
		func(base, match store.Pair) Triple { return Triple{base.S(), vocab.RDFSDomain, match.O()} })
}

// SCMDOM2: (p1 rdfs:subPropertyOf p2), (p2 rdfs:domain c) => (p1 rdfs:domain c).
func SCMDOM2(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFSDomain), chunkOS(ts, vocab.RDFSSubPropertyOf), subjectKey,
		func(base, match store.Pair) Triple { return Triple{match.O(), vocab.RDFSDomain, base.O()} })
}

// SCMRNG1: (p rdfs:range c1), (c1 rdfs:subClassOf c2) => (p rdfs:range c2).
func SCMRNG1(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFSRange), chunkSO(ts, vocab.RDFSSubClassOf), objectKey,
		func(base, match store.Pair) Triple { return Triple{base.S(), vocab.RDFSRange, match.O()} })
}

// SCMRNG2: (p1 rdfs:subPropertyOf p2), (p2 rdfs:range c) => (p1 rdfs:range c).
func SCMRNG2(ts *store.TripleStore) []Triple {
	return chainRule(chunkSO(ts, vocab.RDFSRange), chunkOS(ts, vocab.RDFSSubPropertyOf), subjectKey,
		func(base, match store.Pair) Triple { return Triple{match.O(), vocab.RDFSRange, base.O()} })
}
