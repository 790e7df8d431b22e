// Package closure computes the transitive closure of a single predicate's
// (subject, object) pair set, viewed as a directed graph. It implements the
// Nuutila & Soisalon-Soininen SCC-based transitive-closure algorithm
// described in inferray's design notes: strongly connected components are
// collapsed to a single representative, and reachability is then
// propagated across the condensation DAG by set union, so that no pair of
// mutually reachable nodes is ever expanded more than once.
//
// Source shape: pchampin/tbourg-sophia-test's inferrust crate
// (src/closure/utils.rs) walks this with a hand-rolled recursive DFS
// carrying per-node DFS numbers, a root pointer, and an in-component flag.
// This package reaches the same result by building the graph on
// gonum.org/v1/gonum/graph/simple and reusing gonum's graph/topo package
// for strongly connected component identification (topo.TarjanSCC —
// Tarjan's algorithm, the SCC primitive Nuutila's own paper builds on),
// then propagates reachability across the resulting condensation by hand,
// since no pack library expresses the spec's exact reflexive-pair and
// root-selection rules for the condensation walk.
package closure

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a directed graph over uint64 ids, built from a predicate's SO
// pair list. It is Close's input.
type Graph struct {
	g         *simple.DirectedGraph
	selfLoops map[int64]bool
}

// New builds a Graph from a predicate's (subject, object) pairs. Every id
// appearing in either position becomes a node, even if it never appears as
// a subject, so that closure results can be looked up by either role.
func New(pairs [][2]uint64) *Graph {
	g := simple.NewDirectedGraph()
	selfLoops := make(map[int64]bool)
	ensure := func(id int64) {
		if g.Node(id) == nil {
			g.AddNode(simple.Node(id))
		}
	}
	for _, p := range pairs {
		s, o := int64(p[0]), int64(p[1])
		ensure(s)
		ensure(o)
		if s == o {
			selfLoops[s] = true
			continue
		}
		if !g.HasEdgeFromTo(s, o) {
			g.SetEdge(simple.Edge{F: simple.Node(s), T: simple.Node(o)})
		}
	}
	return &Graph{g: g, selfLoops: selfLoops}
}

// Close computes the reflexive-free transitive closure and returns it as a
// map from subject id to its sorted, duplicate-free list of reachable
// object ids. A self-loop (x, x) appears in the result for x iff x sits in
// a non-trivial strongly connected component (a genuine cycle of length
// greater than one) or x had an explicit self-loop in the input pairs —
// the edge policy from inferray's design notes.
func (cg *Graph) Close() map[uint64][]uint64 {
	sccs := topo.TarjanSCC(cg.g)

	compOf := make(map[int64]int)
	for ci, members := range sccs {
		for _, n := range members {
			compOf[n.ID()] = ci
		}
	}

	// Condensation adjacency: component -> distinct directly reachable
	// components (self edges excluded; handled by the non-trivial-SCC
	// reflexive rule below) plus each component's in-degree, used for the
	// Kahn-style topological ordering below.
	condAdj := make([][]int, len(sccs))
	indeg := make([]int, len(sccs))
	seen := make([]map[int]bool, len(sccs))
	for i := range seen {
		seen[i] = make(map[int]bool)
	}
	nodes := cg.g.Nodes()
	for nodes.Next() {
		u := nodes.Node().ID()
		cu := compOf[u]
		to := cg.g.From(u)
		for to.Next() {
			v := to.Node().ID()
			cv := compOf[v]
			if cu == cv || seen[cu][cv] {
				continue
			}
			seen[cu][cv] = true
			condAdj[cu] = append(condAdj[cu], cv)
			indeg[cv]++
		}
	}

	// Kahn's algorithm over the condensation DAG: components with no
	// remaining predecessor are ready. The resulting order has every
	// edge's source before its target.
	order := make([]int, 0, len(sccs))
	ready := make([]int, 0, len(sccs))
	rem := append([]int(nil), indeg...)
	for c := range sccs {
		if rem[c] == 0 {
			ready = append(ready, c)
		}
	}
	for len(ready) > 0 {
		c := ready[0]
		ready = ready[1:]
		order = append(order, c)
		for _, succ := range condAdj[c] {
			rem[succ]--
			if rem[succ] == 0 {
				ready = append(ready, succ)
			}
		}
	}

	// Process successors before predecessors: walk the topological
	// order backwards so every component's reachable set is complete
	// before anything that points into it is resolved.
	compTC := make([]map[int]struct{}, len(sccs))
	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		set := make(map[int]struct{})
		if len(sccs[c]) > 1 {
			set[c] = struct{}{}
		}
		for _, succ := range condAdj[c] {
			set[succ] = struct{}{}
			for r := range compTC[succ] {
				set[r] = struct{}{}
			}
		}
		compTC[c] = set
	}

	result := make(map[uint64][]uint64)
	for c, members := range sccs {
		reachComponents := compTC[c]
		if len(reachComponents) == 0 {
			continue
		}
		var reach []uint64
		for rc := range reachComponents {
			for _, n := range sccs[rc] {
				reach = append(reach, uint64(n.ID()))
			}
		}
		sort.Slice(reach, func(i, j int) bool { return reach[i] < reach[j] })
		for _, n := range members {
			result[uint64(n.ID())] = reach
		}
	}
	for id := range cg.selfLoops {
		u := uint64(id)
		reach := result[u]
		if !containsU64(reach, u) {
			reach = append(reach, u)
			sort.Slice(reach, func(i, j int) bool { return reach[i] < reach[j] })
			result[u] = reach
		}
	}
	return result
}

func containsU64(xs []uint64, x uint64) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
