package strategy

import (
	"testing"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// solvedGridMissingOne returns a board built from a known valid solution with
// one cell's given withheld, so peer propagation leaves that cell with
// exactly one candidate: both a naked and a hidden single.
func solvedGridMissingOne(t *testing.T) (board.Board, sets.Cell, sets.Known) {
	t.Helper()
	solution := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	holed := "." + solution[1:]
	b, ok := board.NewFromPacked(holed)
	if !ok {
		t.Fatalf("NewFromPacked rejected an 80-given puzzle built from a valid solution")
	}
	return b, sets.NewCell(0, 0), sets.NewKnown(5)
}

func TestNakedSinglesFindsTheLastCell(t *testing.T) {
	b, cell, want := solvedGridMissingOne(t)

	effects := NakedSingles(b, true)
	if effects == nil || len(effects.Actions) != 1 {
		t.Fatalf("NakedSingles found %v actions, want 1", effects)
	}
	got, ok := effects.Actions[0].Set[cell]
	if !ok || got != want {
		t.Fatalf("NakedSingles proposed %v at %v, want %v", effects.Actions[0].Set, cell, want)
	}
}

func TestHiddenSinglesFindsTheLastCell(t *testing.T) {
	b, cell, want := solvedGridMissingOne(t)

	effects := HiddenSingles(b, true)
	if effects == nil || len(effects.Actions) != 1 {
		t.Fatalf("HiddenSingles found %v actions, want 1", effects)
	}
	got, ok := effects.Actions[0].Set[cell]
	if !ok || got != want {
		t.Fatalf("HiddenSingles proposed %v at %v, want %v", effects.Actions[0].Set, cell, want)
	}
}

func TestNakedSinglesReturnsNilOnFreshBoard(t *testing.T) {
	if got := NakedSingles(board.New(), false); got != nil {
		t.Fatalf("NakedSingles on a fresh board = %v, want nil", got)
	}
}

func TestHiddenSinglesReturnsNilOnFreshBoard(t *testing.T) {
	if got := HiddenSingles(board.New(), false); got != nil {
		t.Fatalf("HiddenSingles on a fresh board = %v, want nil", got)
	}
}

// TestPointingPairsErasesOutsideTheBlock confines known 5 within block 0 to
// its top row, then checks PointingPairs erases 5 from the rest of row 0.
func TestPointingPairsErasesOutsideTheBlock(t *testing.T) {
	b := board.New()
	five := sets.NewKnown(5)
	confinedTo := []sets.Cell{
		sets.NewCell(1, 0), sets.NewCell(1, 1), sets.NewCell(1, 2),
		sets.NewCell(2, 0), sets.NewCell(2, 1), sets.NewCell(2, 2),
	}
	for _, c := range confinedTo {
		var effects action.Effects
		var ok bool
		b, ok = b.RemoveCandidate(c, five, &effects)
		if !ok {
			t.Fatalf("RemoveCandidate(%v, 5) failed unexpectedly", c)
		}
	}

	effects := PointingPairs(b, true)
	if effects == nil || len(effects.Actions) != 1 {
		t.Fatalf("PointingPairs found %v, want 1 action", effects)
	}
	erase := effects.Actions[0].Erase
	for col := 3; col < 9; col++ {
		c := sets.NewCell(0, col)
		if ks, ok := erase[c]; !ok || !ks.Has(five) {
			t.Errorf("PointingPairs should erase 5 at %v, got %v", c, erase)
		}
	}
	for col := 0; col < 3; col++ {
		c := sets.NewCell(0, col)
		if _, ok := erase[c]; ok {
			t.Errorf("PointingPairs should not touch %v inside the confining block", c)
		}
	}
}

func TestPointingPairsReturnsNilOnFreshBoard(t *testing.T) {
	if got := PointingPairs(board.New(), false); got != nil {
		t.Fatalf("PointingPairs on a fresh board = %v, want nil", got)
	}
}

// TestNakedPairsErasesFromRestOfHouse builds a row where two cells share
// exactly the candidates {1,2} and checks NakedPairs clears 1 and 2 from the
// rest of the row.
func TestNakedPairsErasesFromRestOfHouse(t *testing.T) {
	b := board.New()
	row := sets.NewHouse(sets.Row, 0).Cells().Cells()
	pairCells := []sets.Cell{row[0], row[1]}
	rest := row[2:]

	for _, c := range pairCells {
		for k := 3; k <= 9; k++ {
			var effects action.Effects
			var ok bool
			b, ok = b.RemoveCandidate(c, sets.NewKnown(k), &effects)
			if !ok {
				t.Fatalf("RemoveCandidate(%v, %d) failed unexpectedly", c, k)
			}
		}
	}

	effects := NakedPairs(b, true)
	if effects == nil || len(effects.Actions) == 0 {
		t.Fatalf("NakedPairs found %v, want at least 1 action", effects)
	}
	found := false
	for _, a := range effects.Actions {
		for _, c := range rest {
			if ks, ok := a.Erase[c]; ok && ks.Has(sets.NewKnown(1)) && ks.Has(sets.NewKnown(2)) {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("NakedPairs should erase {1,2} from the rest of the row, got %v", effects.Actions)
	}
}
