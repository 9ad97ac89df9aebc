package sets

import "testing"

func TestKnownSetBasicAlgebra(t *testing.T) {
	s := KnownSetOf(NewKnown(1), NewKnown(5), NewKnown(9))
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !s.Has(NewKnown(5)) {
		t.Errorf("Has(5) = false, want true")
	}
	if s.Has(NewKnown(2)) {
		t.Errorf("Has(2) = true, want false")
	}

	without := s.Without(NewKnown(5))
	if without.Has(NewKnown(5)) || without.Len() != 2 {
		t.Errorf("Without(5) = %v, want 5 removed and Len 2", without)
	}
}

func TestKnownSetComplement(t *testing.T) {
	s := KnownSetOf(NewKnown(1), NewKnown(2))
	comp := s.Complement()
	if comp.HasAny(s) {
		t.Errorf("Complement() overlaps original")
	}
	if comp.Union(s) != FullKnownSet() {
		t.Errorf("s ∪ Complement(s) should be the full set")
	}
}

func TestKnownSetAsSingle(t *testing.T) {
	single := KnownSetOf(NewKnown(7))
	k, ok := single.AsSingle()
	if !ok || k != NewKnown(7) {
		t.Fatalf("AsSingle() = (%v, %v), want (7, true)", k, ok)
	}

	multi := KnownSetOf(NewKnown(7), NewKnown(8))
	if _, ok := multi.AsSingle(); ok {
		t.Errorf("AsSingle() on a 2-member set should fail")
	}
}

func TestKnownSetPopOrdering(t *testing.T) {
	s := KnownSetOf(NewKnown(9), NewKnown(1), NewKnown(5))
	knowns := s.Knowns()
	want := []Known{NewKnown(1), NewKnown(5), NewKnown(9)}
	for i := range want {
		if knowns[i] != want[i] {
			t.Fatalf("Knowns() = %v, want %v", knowns, want)
		}
	}
}

func TestKnownSetPairs(t *testing.T) {
	s := KnownSetOf(NewKnown(1), NewKnown(2), NewKnown(3))
	pairs := s.Pairs()
	if len(pairs) != 3 {
		t.Fatalf("Pairs() len = %d, want 3", len(pairs))
	}
}
