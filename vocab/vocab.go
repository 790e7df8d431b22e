// Package vocab holds the well-known RDF, RDFS, OWL, and XSD vocabulary
// IRIs and the reserved id layout inferray's dictionary assigns to them at
// construction, before any user triple is loaded. Grounded on
// pchampin/tbourg-sophia-test's inferrust crate (src/inferray/dictionary.rs
// init_const), which pins exactly this set of terms to exactly this id
// layout so that tests can depend on stable ids across runs.
package vocab

import "math"

// Start is the id-space pivot: property ids count downward from Start-1,
// resource ids count upward from Start+1. It is u32::MAX in the source
// layout, preserved here as a uint64 so id arithmetic never wraps.
const Start uint64 = math.MaxUint32

// Reserved resource ids, Start+1 upward, in the source's declaration order.
const (
	RDFSResource uint64 = Start + 1 + iota
	RDFSClass
	RDFSDatatype
	RDFSLiteral
	RDFSContainer
	RDFList
	RDFAlt
	RDFBag
	RDFSeq
	RDFXMLLiteral
	RDFStatement
	RDFNil
	XSDNonNegativeInteger
	XSDString
	OWLClass
)

// Reserved property ids, Start-1 downward, in the source's declaration
// order.
const (
	RDFSDomain uint64 = Start - 1 - iota
	RDFSRange
	RDFSSubClassOf
	RDFSSubPropertyOf
	RDFSSeeAlso
	RDFSIsDefinedBy
	RDFSComment
	RDFSMember
	RDFSContainerMembershipProperty
	RDFSLabel
	RDFProperty
	RDFType
	RDFSubject
	RDFObject
	RDFPredicate
	RDFFirst
	RDFRest
	RDFValue
	RDF1
	OWLThing
	OWLTransitiveProperty
	OWLEquivalentClass
	OWLEquivalentProperty
	OWLObjectProperty
	OWLDataTypeProperty
	OWLSameAs
	OWLInverseOf
	OWLPropertyDisjointWith
	OWLDifferentFrom
	OWLAllDifferent
	OWLAllDisjointClasses
	OWLAllValuesFrom
	OWLAnnotationProperty
	OWLAssertionProperty
	OWLComplementOf
	OWLDisjointWith
	OWLDistinctMembers
	OWLFunctionalProperty
	OWLIntersectionOf
	OWLUnionOf
	OWLInverseFunctionalProperty
	OWLIrreflexiveProperty
	OWLMaxCardinality
	OWLMembers
	OWLNothing
	OWLOnClass
	OWLOnProperty
	OWLOneOf
	OWLPropertyChainAxiom
	OWLSomeValuesFrom
	OWLSourceIndividual
	OWLSymmetricProperty
	OWLTargetIndividual
	OWLTargetValue
	OWLMaxQualifiedCardinality
)

// IRI namespaces.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSOWL  = "http://www.w3.org/2002/07/owl#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// IRI text for every reserved id, keyed by id, in the same order the ids
// were declared above. Entry construction lives in a table rather than
// individual constant declarations because the dictionary needs both
// directions (id -> IRI for reverse lookup seeding, IRI -> id for interning
// seeding) and a single table keeps them from drifting apart.
var Reserved = []struct {
	ID  uint64
	IRI string
}{
	{RDFSResource, NSRDFS + "Resource"},
	{RDFSClass, NSRDFS + "Class"},
	{RDFSDatatype, NSRDFS + "Datatype"},
	{RDFSLiteral, NSRDFS + "Literal"},
	{RDFSContainer, NSRDFS + "Container"},
	{RDFList, NSRDF + "List"},
	{RDFAlt, NSRDF + "Alt"},
	{RDFBag, NSRDF + "Bag"},
	{RDFSeq, NSRDF + "Seq"},
	{RDFXMLLiteral, NSRDF + "XMLLiteral"},
	{RDFStatement, NSRDF + "Statement"},
	{RDFNil, NSRDF + "nil"},
	{XSDNonNegativeInteger, NSXSD + "nonNegativeInteger"},
	{XSDString, NSXSD + "string"},
	{OWLClass, NSOWL + "Class"},

	{RDFSDomain, NSRDFS + "domain"},
	{RDFSRange, NSRDFS + "range"},
	{RDFSSubClassOf, NSRDFS + "subClassOf"},
	{RDFSSubPropertyOf, NSRDFS + "subPropertyOf"},
	{RDFSSeeAlso, NSRDFS + "seeAlso"},
	{RDFSIsDefinedBy, NSRDFS + "isDefinedBy"},
	{RDFSComment, NSRDFS + "comment"},
	{RDFSMember, NSRDFS + "member"},
	{RDFSContainerMembershipProperty, NSRDFS + "ContainerMembershipProperty"},
	{RDFSLabel, NSRDFS + "label"},
	{RDFProperty, NSRDF + "Property"},
	{RDFType, NSRDF + "type"},
	{RDFSubject, NSRDF + "subject"},
	{RDFObject, NSRDF + "object"},
	{RDFPredicate, NSRDF + "predicate"},
	{RDFFirst, NSRDF + "first"},
	{RDFRest, NSRDF + "rest"},
	{RDFValue, NSRDF + "value"},
	{RDF1, NSRDF + "_1"},
	{OWLThing, NSOWL + "Thing"},
	{OWLTransitiveProperty, NSOWL + "TransitiveProperty"},
	{OWLEquivalentClass, NSOWL + "equivalentClass"},
	{OWLEquivalentProperty, NSOWL + "equivalentProperty"},
	{OWLObjectProperty, NSOWL + "ObjectProperty"},
	{OWLDataTypeProperty, NSOWL + "DatatypeProperty"},
	{OWLSameAs, NSOWL + "sameAs"},
	{OWLInverseOf, NSOWL + "inverseOf"},
	{OWLPropertyDisjointWith, NSOWL + "propertyDisjointWith"},
	{OWLDifferentFrom, NSOWL + "differentFrom"},
	{OWLAllDifferent, NSOWL + "AllDifferent"},
	{OWLAllDisjointClasses, NSOWL + "AllDisjointClasses"},
	{OWLAllValuesFrom, NSOWL + "allValuesFrom"},
	{OWLAnnotationProperty, NSOWL + "AnnotationProperty"},
	{OWLAssertionProperty, NSOWL + "assertionProperty"},
	{OWLComplementOf, NSOWL + "complementOf"},
	{OWLDisjointWith, NSOWL + "disjointWith"},
	{OWLDistinctMembers, NSOWL + "distinctMembers"},
	{OWLFunctionalProperty, NSOWL + "FunctionalProperty"},
	{OWLIntersectionOf, NSOWL + "intersectionOf"},
	{OWLUnionOf, NSOWL + "unionOf"},
	{OWLInverseFunctionalProperty, NSOWL + "InverseFunctionalProperty"},
	{OWLIrreflexiveProperty, NSOWL + "IrreflexiveProperty"},
	{OWLMaxCardinality, NSOWL + "maxCardinality"},
	{OWLMembers, NSOWL + "members"},
	{OWLNothing, NSOWL + "Nothing"},
	{OWLOnClass, NSOWL + "onClass"},
	{OWLOnProperty, NSOWL + "onProperty"},
	{OWLOneOf, NSOWL + "oneOf"},
	{OWLPropertyChainAxiom, NSOWL + "propertyChainAxiom"},
	{OWLSomeValuesFrom, NSOWL + "someValuesFrom"},
	{OWLSourceIndividual, NSOWL + "sourceIndividual"},
	{OWLSymmetricProperty, NSOWL + "SymmetricProperty"},
	{OWLTargetIndividual, NSOWL + "targetIndividual"},
	{OWLTargetValue, NSOWL + "targetValue"},
	{OWLMaxQualifiedCardinality, NSOWL + "maxQualifiedCardinality"},
}

// Triple is a reserved-id axiomatic triple, expressed directly in ids since
// every term it mentions is already in the reserved set above.
type Triple struct {
	S, P, O uint64
}

// Axiomatic is the fixed RDF/RDFS axiomatic triple table the RDFS profile
// injects when its axiomatic-triples flag is set. It is a verbatim
// transcription, triple for triple and in the same order, of inferrust's
// src/inferray/graph.rs init_axiomatic_triples: 59 triples typing the
// RDF/RDFS built-in properties and classes, not a hand-picked subset.
var Axiomatic = []Triple{
	// rdf:_1 and the other RDF/RDFS built-in properties are themselves
	// rdf:Property; rdf:nil is an rdf:List.
	{RDFType, RDFType, RDFProperty},
	{RDFSubject, RDFType, RDFProperty},
	{RDFPredicate, RDFType, RDFProperty},
	{RDFObject, RDFType, RDFProperty},
	{RDFFirst, RDFType, RDFProperty},
	{RDFRest, RDFType, RDFProperty},
	{RDFValue, RDFType, RDFProperty},
	{RDF1, RDFType, RDFProperty},
	{RDFNil, RDFType, RDFList},

	// Domain.
	{RDFType, RDFSDomain, RDFSResource},
	{RDFSDomain, RDFSDomain, RDFProperty},
	{RDFSRange, RDFSDomain, RDFProperty},
	{RDFSSubClassOf, RDFSDomain, RDFProperty},
	{RDFSSubPropertyOf, RDFSDomain, RDFProperty},
	{RDFSubject, RDFSDomain, RDFStatement},
	{RDFPredicate, RDFSDomain, RDFStatement},
	{RDFObject, RDFSDomain, RDFStatement},
	{RDFSMember, RDFSDomain, RDFSResource},
	{RDFFirst, RDFSDomain, RDFList},
	{RDFRest, RDFSDomain, RDFList},
	{RDFSSeeAlso, RDFSDomain, RDFSResource},
	{RDFSIsDefinedBy, RDFSDomain, RDFSResource},
	{RDFSComment, RDFSDomain, RDFSResource},
	{RDFSLabel, RDFSDomain, RDFSResource},
	{RDFValue, RDFSDomain, RDFSResource},

	// Range.
	{RDFType, RDFSRange, RDFSClass},
	{RDFSDomain, RDFSRange, RDFSClass},
	{RDFSRange, RDFSRange, RDFSClass},
	{RDFSSubClassOf, RDFSRange, RDFSClass},
	{RDFSSubPropertyOf, RDFSRange, RDFProperty},
	{RDFSubject, RDFSRange, RDFSResource},
	{RDFPredicate, RDFSRange, RDFSResource},
	{RDFObject, RDFSRange, RDFSResource},
	{RDFSMember, RDFSRange, RDFSResource},
	{RDFFirst, RDFSRange, RDFSResource},
	{RDFRest, RDFSRange, RDFList},
	{RDFSSeeAlso, RDFSRange, RDFSResource},
	{RDFSIsDefinedBy, RDFSRange, RDFSResource},
	{RDFSComment, RDFSRange, RDFSLiteral},
	{RDFSLabel, RDFSRange, RDFSLiteral},
	{RDFValue, RDFSRange, RDFSResource},

	// Misc: class hierarchy, rdf:_1's container-membership typing, and the
	// reflexive/self-describing subPropertyOf closures the source's table
	// seeds directly rather than leaving for the rule engine to derive.
	{RDFAlt, RDFSSubClassOf, RDFSContainer},
	{RDFBag, RDFSSubClassOf, RDFSContainer},
	{RDFSeq, RDFSSubClassOf, RDFSContainer},
	{RDFSContainerMembershipProperty, RDFSSubClassOf, RDFProperty},
	{RDF1, RDFType, RDFSContainerMembershipProperty},
	{RDF1, RDFSDomain, RDFSResource},
	{RDF1, RDFSRange, RDFSResource},
	{RDFSIsDefinedBy, RDFSSubPropertyOf, RDFSSeeAlso},
	{RDFXMLLiteral, RDFType, RDFSDatatype},
	{RDFXMLLiteral, RDFSSubClassOf, RDFSLiteral},
	{RDFSDatatype, RDFSSubClassOf, RDFSClass},
	{XSDNonNegativeInteger, RDFType, RDFSDatatype},
	{XSDString, RDFType, RDFSDatatype},
	{RDFType, RDFSSubPropertyOf, RDFType},
	{RDFSDomain, RDFSSubPropertyOf, RDFSDomain},
	{RDFSRange, RDFSSubPropertyOf, RDFSRange},
	{RDFSSubPropertyOf, RDFSSubPropertyOf, RDFSSubPropertyOf},
	{RDFSSubClassOf, RDFSSubPropertyOf, RDFSSubClassOf},
}
