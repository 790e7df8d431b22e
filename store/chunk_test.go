package store

import (
	"reflect"
	"testing"
)

func TestNewChunkSortsAndDedupes(t *testing.T) {
	c := NewChunk([]Pair{{3, 1}, {1, 2}, {1, 1}, {1, 2}, {2, 5}})
	want := []Pair{{1, 1}, {1, 2}, {2, 5}, {3, 1}}
	if !reflect.DeepEqual(c.SO(), want) {
		t.Errorf("SO() = %v, want %v", c.SO(), want)
	}
}

func TestChunkOSIsSwappedAndSorted(t *testing.T) {
	c := NewChunk([]Pair{{1, 3}, {2, 3}, {2, 1}})
	want := []Pair{{1, 2}, {3, 1}, {3, 2}}
	if !reflect.DeepEqual(c.OS(), want) {
		t.Errorf("OS() = %v, want %v", c.OS(), want)
	}
}

func TestChunkAddPairsInvalidatesOS(t *testing.T) {
	c := NewChunk([]Pair{{1, 2}})
	_ = c.OS()
	c.AddPairs([]Pair{{3, 4}})
	want := []Pair{{2, 1}, {4, 3}}
	if !reflect.DeepEqual(c.OS(), want) {
		t.Errorf("OS() after AddPairs = %v, want %v", c.OS(), want)
	}
}

func TestChunkMerge(t *testing.T) {
	a := NewChunk([]Pair{{1, 2}, {3, 4}})
	b := NewChunk([]Pair{{1, 2}, {2, 3}})
	a.Merge(b)
	want := []Pair{{1, 2}, {2, 3}, {3, 4}}
	if !reflect.DeepEqual(a.SO(), want) {
		t.Errorf("Merge result = %v, want %v", a.SO(), want)
	}
}

func TestSubjectRange(t *testing.T) {
	so := []Pair{{1, 1}, {2, 1}, {2, 2}, {2, 3}, {5, 1}}
	got := SubjectRange(so, 2)
	want := []Pair{{2, 1}, {2, 2}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectRange(2) = %v, want %v", got, want)
	}
	if got := SubjectRange(so, 9); len(got) != 0 {
		t.Errorf("SubjectRange(9) = %v, want empty", got)
	}
}

func TestChunkConcurrentOS(t *testing.T) {
	c := NewChunk([]Pair{{1, 2}, {2, 3}, {3, 1}})
	done := make(chan []Pair, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- c.OS() }()
	}
	var first []Pair
	for i := 0; i < 8; i++ {
		os := <-done
		if first == nil {
			first = os
		} else if !reflect.DeepEqual(first, os) {
			t.Errorf("concurrent OS() calls disagreed: %v vs %v", first, os)
		}
	}
}
