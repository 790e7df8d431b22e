// Package rules holds inferray's rule catalog and its orchestration:
// StaticRuleSet runs a batch of pure rule functions in parallel over one
// immutable TripleStore snapshot, and FixPointRuleSet repeats that until
// the store stops growing. Grounded on pchampin/tbourg-sophia-test's
// inferrust crate (src/rules.rs RuleSet/StaticRuleSet/FixPointRuleSet),
// with parallel dispatch reworked into Go's idiom the way
// github.com/google/badwolf's bql/planner package fans out row-independent
// work across golang.org/x/sync/errgroup and joins with grp.Wait().
package rules

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/google/inferray/store"
)

// Triple is an integer-encoded (subject, predicate, object) triple, the
// unit every rule emits.
type Triple = [3]uint64

// Rule is a pure function from an immutable store snapshot to a list of
// inferred triples. A rule must never mutate ts, and must not assume
// anything about what other rules in the same pass have produced: all
// rules in a pass see the same snapshot (spec.md §4.5, §5).
type Rule func(ts *store.TripleStore) []Triple

// RuleSet is an ordered batch of rules dispatched together.
type RuleSet []Rule

// StaticRuleSet runs its rules once, in parallel, and merges their output
// into the graph's store.
type StaticRuleSet struct {
	Rules RuleSet
}

// Process runs every rule in r.Rules concurrently over ts, then merges
// the union of their output back into ts. Rules are dispatched to
// errgroup's goroutine pool rather than a hand-rolled WaitGroup, the way
// bql/planner.specifyClauseWithTable fans out per-row work.
func (r StaticRuleSet) Process(ts *store.TripleStore) error {
	if len(r.Rules) == 0 {
		return nil
	}
	outputs := make([][]Triple, len(r.Rules))
	grp, _ := errgroup.WithContext(context.Background())
	for i, rule := range r.Rules {
		i, rule := i, rule
		grp.Go(func() error {
			outputs[i] = rule(ts)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	var all []Triple
	for _, out := range outputs {
		all = append(all, out...)
	}
	ts.MergeTriples(all)
	return nil
}

// FixPointRuleSet repeats a StaticRuleSet.Process until the store's size
// stops changing. The first "previous size" is set to size+1 specifically
// to force at least one iteration even on an already-saturated store.
type FixPointRuleSet struct {
	Rules StaticRuleSet
}

// Process iterates r.Rules.Process to a fixed point, per spec.md §4.5.
// Convergence is guaranteed because the id universe is finite and every
// iteration is monotone (rules only add triples, never remove them).
func (r FixPointRuleSet) Process(ts *store.TripleStore) error {
	size := ts.Size()
	prevSize := size + 1
	for prevSize != size {
		prevSize = size
		if err := r.Rules.Process(ts); err != nil {
			return err
		}
		size = ts.Size()
	}
	return nil
}
