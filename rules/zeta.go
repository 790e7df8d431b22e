// Zeta rules are cheap, one-pass typing trivia over the rdf:type Chunk:
// RDFS6/8/10/12/13 assert self-evident membership facts about anything
// already typed as one of the built-in schema classes, SCM-DP-OP and
// SCM-CLS do the same for owl:DatatypeProperty/ObjectProperty and
// owl:Class, and RDFS4 propagates rdfs:Resource typing. Grounded on
// inferrust's src/rules/zeta_rules.rs.
package rules

import (
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// applyZetaRule scans the rdf:type Chunk's OS list (sorted by object, so a
// single matching run is contiguous) for subjects typed inputO, and for
// each emits either (s, outputP, outputO) or, when reflexive is set,
// (s, outputP, s).
func applyZetaRule(ts *store.TripleStore, inputO, outputP, outputO uint64, reflexive bool) []Triple {
	typeOS := chunkOS(ts, vocab.RDFType)
	var output []Triple
	for _, p := range store.SubjectRange(typeOS, inputO) {
		s := p.O()
		if reflexive {
			output = append(output, Triple{s, outputP, s})
		} else {
			output = append(output, Triple{s, outputP, outputO})
		}
	}
	return output
}

// RDFS6: (p rdf:type rdf:Property) => (p rdfs:subPropertyOf p).
func RDFS6(ts *store.TripleStore) []Triple {
	return applyZetaRule(ts, vocab.RDFProperty, vocab.RDFSSubPropertyOf, 0, true)
}

// RDFS8: (c rdf:type rdfs:Class) => (c rdfs:subClassOf rdfs:Resource).
func RDFS8(ts *store.TripleStore) []Triple {
	return applyZetaRule(ts, vocab.RDFSClass, vocab.RDFSSubClassOf, vocab.RDFSResource, false)
}

// RDFS10: (c rdf:type rdfs:Class) => (c rdfs:subClassOf c).
func RDFS10(ts *store.TripleStore) []Triple {
	return applyZetaRule(ts, vocab.RDFSClass, vocab.RDFSSubClassOf, 0, true)
}

// RDFS12: (p rdf:type rdfs:ContainerMembershipProperty) => (p
// rdfs:subPropertyOf rdfs:member).
func RDFS12(ts *store.TripleStore) []Triple {
	return applyZetaRule(ts, vocab.RDFSContainerMembershipProperty, vocab.RDFSSubPropertyOf, vocab.RDFSMember, false)
}

// RDFS13: (d rdf:type rdfs:Datatype) => (d rdfs:subClassOf rdfs:Literal).
func RDFS13(ts *store.TripleStore) []Triple {
	return applyZetaRule(ts, vocab.RDFSDatatype, vocab.RDFSSubClassOf, vocab.RDFSLiteral, false)
}

// SCMDPOP: anything typed owl:DatatypeProperty or owl:ObjectProperty is
// subPropertyOf and equivalentProperty to itself.
func SCMDPOP(ts *store.TripleStore) []Triple {
	typeOS := chunkOS(ts, vocab.RDFType)
	var output []Triple
	for _, inputO := range []uint64{vocab.OWLDataTypeProperty, vocab.OWLObjectProperty} {
		for _, p := range store.SubjectRange(typeOS, inputO) {
			s := p.O()
			output = append(output,
				Triple{s, vocab.RDFSSubPropertyOf, s},
				Triple{s, vocab.OWLEquivalentProperty, s},
			)
		}
	}
	return output
}

// SCMCLS: anything typed owl:Class is subClassOf and equivalentClass to
// itself, is a subclass of owl:Thing, and has owl:Nothing as a subclass.
func SCMCLS(ts *store.TripleStore) []Triple {
	typeOS := chunkOS(ts, vocab.RDFType)
	var output []Triple
	for _, p := range store.SubjectRange(typeOS, vocab.OWLClass) {
		s := p.O()
		output = append(output,
			Triple{s, vocab.RDFSSubClassOf, s},
			Triple{s, vocab.OWLEquivalentClass, s},
			Triple{s, vocab.RDFSSubClassOf, vocab.OWLThing},
			Triple{vocab.OWLNothing, vocab.RDFSSubClassOf, s},
		)
	}
	return output
}

// RDFS4: let resources be every subject already typed rdfs:Resource; any
// triple whose object names a known resource types that triple's subject
// as rdfs:Resource too. Faithfully reproduces inferrust's RDFS4, which
// propagates from an existing resources_idx seed rather than
// unconditionally typing every term (the literal "everything in a
// statement is a resource" reading would make this rule redundant with
// the finalize pass, which does exactly that over the whole dictionary).
func RDFS4(ts *store.TripleStore) []Triple {
	typeOS := chunkOS(ts, vocab.RDFType)
	resources := make(map[uint64]bool)
	for _, p := range store.SubjectRange(typeOS, vocab.RDFSResource) {
		resources[p.O()] = true
	}
	if len(resources) == 0 {
		return nil
	}

	var output []Triple
	for _, chunk := range ts.Chunks() {
		for _, p := range chunk.SO() {
			if resources[p.O()] {
				output = append(output, Triple{p.S(), vocab.RDFType, vocab.RDFSResource})
			}
		}
	}
	return output
}
