package rules

import (
	"testing"

	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// Resource ids used by these tests sit well above any reserved id, the
// same convention store.New relies on: PropIdxToOffset is pure arithmetic,
// so any uint64 stands in for a resource as long as it never collides with
// vocab.Reserved.
const (
	resA = vocab.Start + 1000001
	resB = vocab.Start + 1000002
	resC = vocab.Start + 1000003
	resX = vocab.Start + 1000004
)

// propP1/propP2 stand in for arbitrary, non-reserved predicates: ids below
// vocab.Start, counting downward the way every real property id does.
const (
	propP1 = vocab.Start - 10001
	propP2 = vocab.Start - 10002
)

func hasTriple(triples []Triple, s, p, o uint64) bool {
	for _, t := range triples {
		if t[0] == s && t[1] == p && t[2] == o {
			return true
		}
	}
	return false
}

func TestCAXSCOWalksSubClassChain(t *testing.T) {
	ts := store.New([][3]uint64{
		{resX, vocab.RDFType, resA},
		{resA, vocab.RDFSSubClassOf, resB},
	})
	out := CAXSCO(ts)
	if !hasTriple(out, resX, vocab.RDFType, resB) {
		t.Errorf("CAXSCO: expected (x rdf:type B), got %v", out)
	}
}

func TestCAXEQC1And2AreSymmetric(t *testing.T) {
	forward := store.New([][3]uint64{
		{resX, vocab.RDFType, resA},
		{resA, vocab.OWLEquivalentClass, resB},
	})
	out := CAXEQC1(forward)
	if !hasTriple(out, resX, vocab.RDFType, resB) {
		t.Errorf("CAXEQC1: expected (x rdf:type B), got %v", out)
	}

	backward := store.New([][3]uint64{
		{resX, vocab.RDFType, resA},
		{resB, vocab.OWLEquivalentClass, resA},
	})
	out2 := CAXEQC2(backward)
	if !hasTriple(out2, resX, vocab.RDFType, resB) {
		t.Errorf("CAXEQC2: expected (x rdf:type B), got %v", out2)
	}
}

func TestSCMDOM1And2PropagateDomain(t *testing.T) {
	viaClass := store.New([][3]uint64{
		{resA, vocab.RDFSDomain, resB},
		{resB, vocab.RDFSSubClassOf, resC},
	})
	if out := SCMDOM1(viaClass); !hasTriple(out, resA, vocab.RDFSDomain, resC) {
		t.Errorf("SCMDOM1: expected (p1 rdfs:domain C), got %v", out)
	}

	viaProperty := store.New([][3]uint64{
		{resA, vocab.RDFSSubPropertyOf, resB},
		{resB, vocab.RDFSDomain, resC},
	})
	if out := SCMDOM2(viaProperty); !hasTriple(out, resA, vocab.RDFSDomain, resC) {
		t.Errorf("SCMDOM2: expected (p1 rdfs:domain C), got %v", out)
	}
}

func TestPRPDOMAndPRPRNGAssertTypes(t *testing.T) {
	ts := store.New([][3]uint64{
		{propP1, vocab.RDFSDomain, resC},
		{propP1, vocab.RDFSRange, resC},
		{resX, propP1, resB},
	})
	if out := PRPDOM(ts); !hasTriple(out, resX, vocab.RDFType, resC) {
		t.Errorf("PRPDOM: expected (s rdf:type C), got %v", out)
	}
	if out := PRPRNG(ts); !hasTriple(out, resB, vocab.RDFType, resC) {
		t.Errorf("PRPRNG: expected (o rdf:type C), got %v", out)
	}
}

func TestPRPSPO1RewritesPredicate(t *testing.T) {
	ts := store.New([][3]uint64{
		{propP1, vocab.RDFSSubPropertyOf, propP2},
		{resX, propP1, resC},
	})
	out := PRPSPO1(ts)
	if !hasTriple(out, resX, propP2, resC) {
		t.Errorf("PRPSPO1: expected (s p2 o), got %v", out)
	}
}

func TestPRPSYMPSwapsSubjectAndObject(t *testing.T) {
	ts := store.New([][3]uint64{
		{propP1, vocab.RDFType, vocab.OWLSymmetricProperty},
		{resX, propP1, resB},
	})
	out := PRPSYMP(ts)
	if !hasTriple(out, resB, propP1, resX) {
		t.Errorf("PRPSYMP: expected (o p s), got %v", out)
	}
}

func TestEQTRANSChainsSameAs(t *testing.T) {
	ts := store.New([][3]uint64{
		{resA, vocab.OWLSameAs, resB},
		{resB, vocab.OWLSameAs, resC},
	})
	out := EQTRANS(ts)
	if !hasTriple(out, resA, vocab.OWLSameAs, resC) {
		t.Errorf("EQTRANS: expected (a owl:sameAs c), got %v", out)
	}
	if !hasTriple(out, resC, vocab.OWLSameAs, resA) {
		t.Errorf("EQTRANS: expected symmetric (c owl:sameAs a), got %v", out)
	}
}

func TestPRPINV12SwapsSubjectAndObject(t *testing.T) {
	ts := store.New([][3]uint64{
		{propP1, vocab.OWLInverseOf, propP2},
		{resX, propP1, resC},
	})
	out := PRPINV12(ts)
	if !hasTriple(out, resC, propP2, resX) {
		t.Errorf("PRPINV12: expected (o p2 s), got %v", out)
	}
}

func TestPRPEQP12PreservesDirection(t *testing.T) {
	ts := store.New([][3]uint64{
		{propP1, vocab.OWLEquivalentProperty, propP2},
		{resX, propP1, resC},
	})
	out := PRPEQP12(ts)
	if !hasTriple(out, resX, propP2, resC) {
		t.Errorf("PRPEQP12: expected (s p2 o), got %v", out)
	}
}

func TestSCMSCOEQC2DetectsTwoCycle(t *testing.T) {
	ts := store.New([][3]uint64{
		{resA, vocab.RDFSSubClassOf, resB},
		{resB, vocab.RDFSSubClassOf, resA},
	})
	out := SCMSCOEQC2(ts)
	if !hasTriple(out, resA, vocab.OWLEquivalentClass, resB) {
		t.Errorf("SCMSCOEQC2: expected (A owl:equivalentClass B), got %v", out)
	}
}

func TestSCMEQC1ExpandsEquivalence(t *testing.T) {
	ts := store.New([][3]uint64{
		{resA, vocab.OWLEquivalentClass, resB},
	})
	out := SCMEQC1(ts)
	if !hasTriple(out, resA, vocab.RDFSSubClassOf, resB) {
		t.Errorf("SCMEQC1: expected (A rdfs:subClassOf B), got %v", out)
	}
	if !hasTriple(out, resB, vocab.RDFSSubClassOf, resA) {
		t.Errorf("SCMEQC1: expected (B rdfs:subClassOf A), got %v", out)
	}
}
