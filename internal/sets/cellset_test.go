package sets

import "testing"

func TestCellSetBasicAlgebra(t *testing.T) {
	s := EmptyCellSet().With(Cell(0)).With(Cell(63)).With(Cell(64)).With(Cell(80))

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	for _, c := range []Cell{0, 63, 64, 80} {
		if !s.Has(c) {
			t.Errorf("Has(%d) = false, want true", c)
		}
	}
	if s.Has(Cell(1)) {
		t.Errorf("Has(1) = true, want false")
	}

	without := s.Without(Cell(64))
	if without.Has(Cell(64)) || without.Len() != 3 {
		t.Errorf("Without(64) = %+v, want 64 removed and Len 3", without)
	}
}

func TestCellSetUnionIntersectDiff(t *testing.T) {
	a := CellSetOf(0, 1, 2, 64)
	b := CellSetOf(1, 2, 3, 64, 80)

	union := a.Union(b)
	if union.Len() != 6 {
		t.Fatalf("Union len = %d, want 6", union.Len())
	}

	intersect := a.Intersect(b)
	want := CellSetOf(1, 2, 64)
	if !intersect.Equals(want) {
		t.Fatalf("Intersect = %+v, want %+v", intersect, want)
	}

	diff := a.Diff(b)
	wantDiff := CellSetOf(0)
	if !diff.Equals(wantDiff) {
		t.Fatalf("Diff = %+v, want %+v", diff, wantDiff)
	}
}

func TestCellSetFullAndComplement(t *testing.T) {
	full := FullCellSet()
	if full.Len() != CellCount {
		t.Fatalf("FullCellSet().Len() = %d, want %d", full.Len(), CellCount)
	}
	if !full.IsFull() {
		t.Fatalf("IsFull() = false for FullCellSet()")
	}

	s := CellSetOf(5, 10, 75)
	comp := s.Complement()
	if comp.HasAny(s) {
		t.Fatalf("Complement() overlaps original set")
	}
	if comp.Union(s).Len() != CellCount {
		t.Fatalf("s ∪ Complement(s) should cover all %d cells, got %d", CellCount, comp.Union(s).Len())
	}
}

func TestCellSetSubsetAndSingle(t *testing.T) {
	s := CellSetOf(3, 4, 5)
	if !CellSetOf(3, 4).IsSubsetOf(s) {
		t.Errorf("{3,4} should be a subset of %+v", s)
	}
	if CellSetOf(3, 6).IsSubsetOf(s) {
		t.Errorf("{3,6} should not be a subset of %+v", s)
	}

	single := CellSetOf(42)
	c, ok := single.AsSingle()
	if !ok || c != 42 {
		t.Fatalf("AsSingle() = (%d, %v), want (42, true)", c, ok)
	}
	if _, ok := s.AsSingle(); ok {
		t.Errorf("AsSingle() on a 3-member set should fail")
	}
}

func TestCellSetPopAndCellsOrdering(t *testing.T) {
	s := CellSetOf(80, 0, 40, 1)
	cells := s.Cells()
	want := []Cell{0, 1, 40, 80}
	if len(cells) != len(want) {
		t.Fatalf("Cells() = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("Cells()[%d] = %d, want %d", i, cells[i], want[i])
		}
	}

	c, rest, ok := s.Pop()
	if !ok || c != 0 {
		t.Fatalf("Pop() first = (%d, _, %v), want (0, _, true)", c, ok)
	}
	if rest.Has(0) {
		t.Errorf("Pop() should remove the popped cell from the remainder")
	}
}

func TestCellSetPairsAndTriples(t *testing.T) {
	s := CellSetOf(1, 2, 3)
	pairs := s.Pairs()
	if len(pairs) != 3 {
		t.Fatalf("Pairs() len = %d, want 3", len(pairs))
	}
	triples := s.Triples()
	if len(triples) != 1 {
		t.Fatalf("Triples() len = %d, want 1", len(triples))
	}
	if triples[0] != [3]Cell{1, 2, 3} {
		t.Fatalf("Triples()[0] = %v, want [1 2 3]", triples[0])
	}
}

func TestCellSetHouseProjection(t *testing.T) {
	row := NewHouse(Row, Coord(0)).Cells()
	rows := row.Rows()
	if rows.Len() != 1 {
		t.Fatalf("Rows() of a single full row = %d houses, want 1", rows.Len())
	}

	twoRows := row.Union(NewHouse(Row, Coord(1)).Cells().Intersect(CellSetOf(NewCell(1, 0))))
	if twoRows.Rows().Len() != 2 {
		t.Fatalf("cells from two distinct rows should project to 2 row-houses, got %d", twoRows.Rows().Len())
	}
}
