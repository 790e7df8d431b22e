// Package dictionary interns RDF terms into the split integer id space
// inferray's storage layer is built around: property ids counted downward
// from vocab.Start, resource ids counted upward. Grounded on
// pchampin/tbourg-sophia-test's inferrust crate (src/inferray/dictionary.rs),
// reworked into Go's idiom the way github.com/google/badwolf's
// storage/memoization package wraps a map behind method calls rather than
// exposing it directly.
package dictionary

import (
	"fmt"
	"sync"

	"github.com/google/inferray/term"
	"github.com/google/inferray/vocab"
)

// position records which slots of a schema triple must be encoded as
// property ids instead of resource ids, because the predicate itself
// semantically relates properties to properties.
type position int

const (
	positionNone position = iota
	positionSubject
	positionSubjectAndObject
)

// propertyPositioned maps a property id to the position rule its
// appearance as a predicate imposes on the surrounding triple. Grounded on
// inferrust's contains_prop_in_s_or_o: rdfs:domain/rdfs:range only force
// their subject to be a property id (the thing the domain/range describes);
// owl:equivalentProperty, owl:inverseOf, and rdfs:subPropertyOf relate two
// properties, so both subject and object are forced.
var propertyPositioned = map[uint64]position{
	vocab.RDFSDomain:             positionSubject,
	vocab.RDFSRange:              positionSubject,
	vocab.OWLEquivalentProperty:  positionSubjectAndObject,
	vocab.OWLInverseOf:           positionSubjectAndObject,
	vocab.RDFSSubPropertyOf:      positionSubjectAndObject,
}

// Remap is a recorded promotion of a resource id to a property id,
// discovered when a term already interned as a resource is later used in
// predicate position.
type Remap struct {
	Old uint64
	New uint64
}

// Dictionary interns term.Term values into the split id space and tracks
// promotions. The zero value is not usable; construct with New.
type Dictionary struct {
	mu sync.RWMutex

	resources []term.Term // index i holds the term for id vocab.Start+1+i
	properties []term.Term // index i holds the term for id vocab.Start-1-i

	index map[string]uint64 // term.Key() -> current id

	remapped []Remap
}

// New builds a Dictionary with every reserved RDF/RDFS/OWL/XSD vocabulary
// term pre-interned at its fixed id, per vocab.Reserved.
func New() *Dictionary {
	d := &Dictionary{
		index: make(map[string]uint64),
	}
	for _, r := range vocab.Reserved {
		t, err := term.NewIRI(r.IRI)
		if err != nil {
			panic(fmt.Sprintf("dictionary.New: reserved IRI %q: %v", r.IRI, err))
		}
		if r.ID > vocab.Start {
			d.resources = append(d.resources, t)
			if got := vocab.Start + 1 + uint64(len(d.resources)-1); got != r.ID {
				panic(fmt.Sprintf("dictionary.New: reserved resource id table out of order: %s", r.IRI))
			}
		} else {
			d.properties = append(d.properties, t)
			if got := vocab.Start - 1 - uint64(len(d.properties)-1); got != r.ID {
				panic(fmt.Sprintf("dictionary.New: reserved property id table out of order: %s", r.IRI))
			}
		}
		d.index[t.Key()] = r.ID
	}
	return d
}

// GetIndex returns the id currently assigned to t, if any.
func (d *Dictionary) GetIndex(t term.Term) (uint64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.index[t.Key()]
	return id, ok
}

// GetTerm returns the term assigned to id. Panics if id is out of range,
// per spec.md §7: a reference to an id beyond the dictionary range is a
// programmer error, not a recoverable one.
func (d *Dictionary) GetTerm(id uint64) term.Term {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if id < vocab.Start {
		offset := vocab.Start - id - 1
		if offset >= uint64(len(d.properties)) {
			panic(fmt.Sprintf("dictionary.GetTerm(%d): property id out of range", id))
		}
		return d.properties[offset].WithID(id)
	}
	offset := id - vocab.Start - 1
	if offset >= uint64(len(d.resources)) {
		panic(fmt.Sprintf("dictionary.GetTerm(%d): resource id out of range", id))
	}
	return d.resources[offset].WithID(id)
}

// PromoteResourceID force-promotes an already-interned resource id to a
// property id, returning its new id (a no-op returning id unchanged if id
// is already a property id). This is the load-time counterpart rules.PreRun
// uses for EQ-REP-P's replacement predicate: spec.md §9 flags mid-saturation
// promotion as unsafe, since the dictionary must not be mutated once the
// rule fixed-point begins, so callers must only invoke this before
// saturation starts.
func (d *Dictionary) PromoteResourceID(id uint64) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id < vocab.Start {
		return id
	}
	offset := id - vocab.Start - 1
	if offset >= uint64(len(d.resources)) {
		panic(fmt.Sprintf("dictionary.PromoteResourceID(%d): resource id out of range", id))
	}
	return d.addProperty(d.resources[offset])
}

// ResourceCeiling returns the highest resource id ever assigned (the
// finalize after-rule's upper iteration bound).
func (d *Dictionary) ResourceCeiling() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return vocab.Start + uint64(len(d.resources))
}

// WasRemapped reports whether res was, at some point, promoted from a
// resource id to a property id.
func (d *Dictionary) WasRemapped(res uint64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, r := range d.remapped {
		if r.Old == res {
			return true
		}
	}
	return false
}

// Remapped returns a copy of the recorded promotion log.
func (d *Dictionary) Remapped() []Remap {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Remap(nil), d.remapped...)
}

// addResource interns t as a resource if not already interned, returning
// its current id (which may already be a property id, if t was previously
// promoted).
func (d *Dictionary) addResource(t term.Term) uint64 {
	key := t.Key()
	if id, ok := d.index[key]; ok {
		return id
	}
	d.resources = append(d.resources, t)
	id := vocab.Start + 1 + uint64(len(d.resources)-1)
	d.index[key] = id
	return id
}

// addProperty interns t as a property, promoting it from a resource id if
// it was already interned as one. Promotion appends a Remap entry.
func (d *Dictionary) addProperty(t term.Term) uint64 {
	key := t.Key()
	oldID, existed := d.index[key]
	if existed && oldID < vocab.Start {
		return oldID
	}

	d.properties = append(d.properties, t)
	newID := vocab.Start - 1 - uint64(len(d.properties)-1)
	d.index[key] = newID

	if existed {
		d.remapped = append(d.remapped, Remap{Old: oldID, New: newID})
	}
	return newID
}

// EncodeTriple interns s, p, o and returns their assigned ids, applying the
// property-position rules a schema predicate imposes on its surrounding
// triple (spec.md §4.1). p is always interned as a property id; s and/or o
// follow suit only for the handful of predicates relating properties to
// properties.
func (d *Dictionary) EncodeTriple(t term.Triple) (s, p, o uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p = d.addProperty(t.Predicate)
	switch propertyPositioned[p] {
	case positionSubject:
		s = d.addProperty(t.Subject)
		o = d.addResource(t.Object)
	case positionSubjectAndObject:
		s = d.addProperty(t.Subject)
		o = d.addProperty(t.Object)
	default:
		s = d.addResource(t.Subject)
		o = d.addResource(t.Object)
	}
	return s, p, o
}

// RemapTriples rewrites the subject and object of every triple in buf in
// place, applying every promotion recorded so far. Predicate positions are
// never rewritten: they were already interned as property ids by
// EncodeTriple. This is the single sweep spec.md §9 calls for: a term may
// be promoted well after its first (resource-typed) appearance in the
// staging buffer, and this sweep reconciles every stale reference in one
// pass before the store is built.
func (d *Dictionary) RemapTriples(buf [][3]uint64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.remapped) == 0 {
		return
	}
	m := make(map[uint64]uint64, len(d.remapped))
	for _, r := range d.remapped {
		m[r.Old] = r.New
	}
	for i, t := range buf {
		if newS, ok := m[t[0]]; ok {
			buf[i][0] = newS
		}
		if newO, ok := m[t[2]]; ok {
			buf[i][2] = newO
		}
	}
}

// PropIdxToOffset converts a property id into the dense array offset
// store.TripleStore indexes its Chunks by.
func PropIdxToOffset(propID uint64) int {
	return int(vocab.Start - propID - 1)
}

// OffsetToPropIdx is the inverse of PropIdxToOffset.
func OffsetToPropIdx(offset int) uint64 {
	return vocab.Start - uint64(offset) - 1
}

// IsProperty reports whether id lies in the property half-space.
func IsProperty(id uint64) bool { return id < vocab.Start }
