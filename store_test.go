package huffman

import (
	"math/rand"
	"testing"
)

// refStore is a trivially-correct model of PriorityStore's ordering:
// lowest frequency first, most recently inserted first among equals.
type refStore struct {
	items []refItem
	seq   int
}

type refItem struct {
	entry Entry
	seq   int
}

func (s *refStore) Insert(e Entry) {
	s.seq++
	s.items = append(s.items, refItem{e, s.seq})
}

func (s *refStore) ExtractMin() (Entry, bool) {
	if len(s.items) == 0 {
		return Entry{}, false
	}
	best := 0
	for i, item := range s.items {
		b := s.items[best]
		if item.entry.Freq < b.entry.Freq || (item.entry.Freq == b.entry.Freq && item.seq > b.seq) {
			best = i
		}
	}
	e := s.items[best].entry
	s.items = append(s.items[:best], s.items[best+1:]...)
	return e, true
}

func TestPriorityStore_Empty(t *testing.T) {
	var s PriorityStore
	if s.Len() != 0 {
		t.Errorf("expected Len 0, got %d", s.Len())
	}
	if e, ok := s.ExtractMin(); ok {
		t.Errorf("expected empty store, got %+v", e)
	}

	s.Insert(Entry{Freq: 7, Node: 3})
	e, ok := s.ExtractMin()
	if !ok || e != (Entry{Freq: 7, Node: 3}) {
		t.Errorf("wrong entry:\n\texpect: %+v\n\tactual: %+v", Entry{Freq: 7, Node: 3}, e)
	}
	if _, ok := s.ExtractMin(); ok {
		t.Errorf("expected empty store after draining")
	}
}

func TestPriorityStore_Ties(t *testing.T) {
	var s PriorityStore
	freqs := []uint64{5, 3, 5, 1, 3, 5}
	for i, freq := range freqs {
		s.Insert(Entry{Freq: freq, Node: NodeID(i)})
	}

	expectNodes := []NodeID{3, 4, 1, 5, 2, 0}
	for i, expect := range expectNodes {
		e, ok := s.ExtractMin()
		if !ok {
			t.Fatalf("store ran dry after %d entries", i)
		}
		if e.Node != expect {
			t.Errorf("extraction %d: expected node %d, got %d (freq %d)", i, expect, e.Node, e.Freq)
		}
	}
}

func TestPriorityStore_MatchesModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		var s PriorityStore
		var ref refStore
		var next NodeID
		var last uint64

		for step := 0; step < 300; step++ {
			if rng.Intn(3) != 0 || s.Len() == 0 {
				e := Entry{Freq: uint64(rng.Intn(8)), Node: next}
				next++
				s.Insert(e)
				ref.Insert(e)
				continue
			}
			actual, ok1 := s.ExtractMin()
			expect, ok2 := ref.ExtractMin()
			if ok1 != ok2 || actual != expect {
				t.Fatalf("round %d step %d: wrong entry:\n\texpect: %+v\n\tactual: %+v", round, step, expect, actual)
			}
		}

		if s.Len() != len(ref.items) {
			t.Fatalf("round %d: expected Len %d, got %d", round, len(ref.items), s.Len())
		}

		last = 0
		for s.Len() != 0 {
			actual, _ := s.ExtractMin()
			expect, _ := ref.ExtractMin()
			if actual != expect {
				t.Fatalf("round %d drain: wrong entry:\n\texpect: %+v\n\tactual: %+v", round, expect, actual)
			}
			if actual.Freq < last {
				t.Fatalf("round %d drain: frequency went down from %d to %d", round, last, actual.Freq)
			}
			last = actual.Freq
		}
	}
}
