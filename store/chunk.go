// Package store holds the saturation engine's compact triple storage: a
// Chunk per predicate (sorted subject/object pairs plus a lazily built
// inverted index) and a TripleStore array of Chunks indexed by predicate
// offset. Grounded on pchampin/tbourg-sophia-test's inferrust crate
// (src/inferray/chunk.rs, src/inferray/store.rs), reworked into Go's
// idiom. The only synchronization is the sync.Once guarding each Chunk's
// lazily built OS index; TripleStore itself holds no lock.
package store

import (
	"sort"
	"sync"
)

// Pair is an ordered (subject, object) pair belonging to an implicit
// predicate.
type Pair [2]uint64

// S returns the subject half of the pair.
func (p Pair) S() uint64 { return p[0] }

// O returns the object half of the pair.
func (p Pair) O() uint64 { return p[1] }

func less(a, b Pair) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

// Chunk holds the (subject, object) pairs for one predicate as two
// parallel sorted, duplicate-free lists: SO (ordered by subject then
// object) and OS (ordered by object then subject). OS is a cached
// derivation of SO, materialized on first read.
type Chunk struct {
	so []Pair

	osOnce sync.Once
	os     []Pair
}

// Empty returns an empty Chunk.
func Empty() *Chunk {
	return &Chunk{}
}

// NewChunk builds a Chunk from an unsorted, possibly duplicate-laden pair
// list.
func NewChunk(pairs []Pair) *Chunk {
	c := &Chunk{}
	c.so = bucketSortPairs(append([]Pair(nil), pairs...))
	return c
}

// Len reports the number of triples in this chunk.
func (c *Chunk) Len() int { return len(c.so) }

// IsEmpty reports whether this chunk holds no triples.
func (c *Chunk) IsEmpty() bool { return len(c.so) == 0 }

// SO returns the pairs ordered by subject, then object.
func (c *Chunk) SO() []Pair { return c.so }

// OS returns the pairs ordered by object, then subject, materializing the
// inverted index on first call. Concurrent callers observe the same
// result and exactly one of them performs the work, via sync.Once — the
// one synchronization primitive the hot rule-evaluation path needs, per
// inferray's concurrency design.
func (c *Chunk) OS() []Pair {
	c.osOnce.Do(func() {
		os := make([]Pair, len(c.so))
		for i, p := range c.so {
			os[i] = Pair{p[1], p[0]}
		}
		sort.Slice(os, func(i, j int) bool { return less(os[i], os[j]) })
		c.os = os
	})
	return c.os
}

// AddPairs appends new pairs to this chunk's SO list and re-sorts,
// invalidating any materialized OS.
func (c *Chunk) AddPairs(pairs []Pair) {
	if len(pairs) == 0 {
		return
	}
	c.so = bucketSortPairs(append(c.so, pairs...))
	c.osOnce = sync.Once{}
	c.os = nil
}

// Merge produces the sorted, duplicate-free union of c and other's SO
// lists and stores it back into c, invalidating any materialized OS.
func (c *Chunk) Merge(other *Chunk) {
	if other == nil || other.IsEmpty() {
		return
	}
	c.so = mergeSortedPairs(c.so, other.so)
	c.osOnce = sync.Once{}
	c.os = nil
}

// FirstSubject returns the index of the first pair whose subject is >= s,
// or len(so) if every subject is smaller. When s does not appear this is
// the index where it would be inserted, not necessarily len(so). SO must
// already be sorted, which it always is by construction.
func FirstSubject(so []Pair, s uint64) int {
	return sort.Search(len(so), func(i int) bool { return so[i][0] >= s })
}

// SubjectRange returns the slice of pairs whose subject equals s.
func SubjectRange(so []Pair, s uint64) []Pair {
	lo := FirstSubject(so, s)
	hi := lo
	for hi < len(so) && so[hi][0] == s {
		hi++
	}
	return so[lo:hi]
}

// bucketSortPairs sorts pairs lexicographically and removes duplicates.
// It buckets by subject first (subjects are dense after dictionary
// encoding within a working set, per inferray's design notes), sorts each
// bucket by object, then concatenates buckets in ascending subject order
// and drops adjacent duplicates in one linear pass.
func bucketSortPairs(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return pairs
	}
	buckets := make(map[uint64][]uint64, len(pairs))
	subjects := make([]uint64, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := buckets[p[0]]; !ok {
			subjects = append(subjects, p[0])
		}
		buckets[p[0]] = append(buckets[p[0]], p[1])
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i] < subjects[j] })

	out := make([]Pair, 0, len(pairs))
	for _, s := range subjects {
		objs := buckets[s]
		sort.Slice(objs, func(i, j int) bool { return objs[i] < objs[j] })
		var prev uint64
		first := true
		for _, o := range objs {
			if !first && o == prev {
				continue
			}
			out = append(out, Pair{s, o})
			prev = o
			first = false
		}
	}
	return out
}

// mergeSortedPairs merges two already-sorted, duplicate-free pair slices
// into one sorted, duplicate-free slice, the way inferrust's merge_sort
// does for two sorted Vecs.
func mergeSortedPairs(a, b []Pair) []Pair {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	r := make([]Pair, 0, len(a)+len(b))
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		switch {
		case less(a[ia], b[ib]):
			r = append(r, a[ia])
			ia++
		case less(b[ib], a[ia]):
			r = append(r, b[ib])
			ib++
		default:
			r = append(r, a[ia])
			ia++
			ib++
		}
	}
	r = append(r, a[ia:]...)
	r = append(r, b[ib:]...)
	return r
}
