package rules

import (
	"github.com/google/inferray/dictionary"
	"github.com/google/inferray/store"
	"github.com/google/inferray/vocab"
)

// AfterRule is a rule that additionally needs the dictionary, the shape
// the finalize pass requires (it must enumerate every resource id, a
// dictionary-level concept a plain Rule has no access to).
type AfterRule func(dict *dictionary.Dictionary, ts *store.TripleStore) []Triple

// ClosureProfile selects which predicates get a transitive-closure pass
// before rule evaluation begins. OnDeclaredTransitive additionally closes
// every predicate InfGraph discovers typed owl:TransitiveProperty.
type ClosureProfile struct {
	OnSubClassOf         bool
	OnSubPropertyOf      bool
	OnSameAs             bool
	OnDeclaredTransitive bool
}

// Profile is an immutable bundle of rule-set choices selected once at
// saturation time, mirroring inferrust's RuleProfile.
type Profile struct {
	Name             string
	ClosureProfile   ClosureProfile
	AxiomaticTriples bool
	BeforeRules      StaticRuleSet
	Rules            FixPointRuleSet
	AfterRule        AfterRule // nil if the profile has none
}

// RDFS is the full RDFS entailment profile: axiomatic triples on,
// closures on subClassOf/subPropertyOf, and a finalize after-rule typing
// every resource as rdfs:Resource.
func RDFS() Profile {
	return Profile{
		Name: "RDFS",
		ClosureProfile: ClosureProfile{
			OnSubClassOf:    true,
			OnSubPropertyOf: true,
		},
		AxiomaticTriples: true,
		BeforeRules: StaticRuleSet{Rules: RuleSet{
			RDFS4, RDFS6, RDFS8, RDFS10, RDFS12, RDFS13,
		}},
		Rules: FixPointRuleSet{Rules: StaticRuleSet{Rules: RuleSet{
			CAXSCO, SCMDOM1, SCMDOM2, SCMRNG1, SCMRNG2,
			PRPDOM, PRPRNG, PRPSPO1,
		}}},
		AfterRule: Finalize,
	}
}

// RhoDF is the minimal ρdf profile: no axiomatic triples, a narrower rule
// set, and no finalize pass.
func RhoDF() Profile {
	return Profile{
		Name: "RhoDF",
		ClosureProfile: ClosureProfile{
			OnSubClassOf:    true,
			OnSubPropertyOf: true,
		},
		AxiomaticTriples: false,
		BeforeRules:      StaticRuleSet{Rules: RuleSet{RDFS4}},
		Rules: FixPointRuleSet{Rules: StaticRuleSet{Rules: RuleSet{
			CAXSCO, SCMDOM2, SCMRNG2, PRPDOM, PRPRNG, PRPSPO1,
		}}},
	}
}

// RDFSPlus is the richest profile: closures on subClassOf, subPropertyOf,
// sameAs and every declared transitive property; the full alpha/beta/
// gamma/delta/same-as/functional rule catalog.
func RDFSPlus() Profile {
	return Profile{
		Name: "RDFS-Plus",
		ClosureProfile: ClosureProfile{
			OnSubClassOf:         true,
			OnSubPropertyOf:      true,
			OnSameAs:             true,
			OnDeclaredTransitive: true,
		},
		AxiomaticTriples: false,
		BeforeRules: StaticRuleSet{Rules: RuleSet{
			RDFS4, SCMDPOP, SCMCLS,
		}},
		Rules: FixPointRuleSet{Rules: StaticRuleSet{Rules: RuleSet{
			CAXSCO, CAXEQC1, CAXEQC2, SCMDOM1, SCMDOM2, SCMRNG1, SCMRNG2,
			SCMSCOEQC2, SCMSPOEQP2, SCMEQC1, SCMEQP1,
			PRPINV12, PRPEQP12,
			PRPDOM, PRPRNG, PRPSPO1, PRPSYMP, EQTRANS,
			SAMEAS,
			PRPFP, PRPIFP,
		}}},
	}
}

// Finalize types every resource id that was never promoted to a property
// id as rdfs:Resource. It is an after-rule rather than a fixed-point rule
// because it emits O(|resources|) triples in one pass; running it to a
// fixed point would be redundant work, per spec.md §9.
func Finalize(dict *dictionary.Dictionary, ts *store.TripleStore) []Triple {
	var output []Triple
	for id := vocab.Start + 1; id <= dict.ResourceCeiling(); id++ {
		if dict.WasRemapped(id) {
			continue
		}
		output = append(output, Triple{id, vocab.RDFType, vocab.RDFSResource})
	}
	return output
}
