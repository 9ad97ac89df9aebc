package changer

import (
	"testing"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

func TestSetGivenAppliesAndCascades(t *testing.T) {
	ch := New(AllOptions())
	b := board.New()

	res := ch.SetGiven(b, sets.NewCell(0, 0), sets.NewKnown(5))
	if res.Kind != ResultValid {
		t.Fatalf("Kind = %v, want ResultValid", res.Kind)
	}
	v, solved := res.After.Value(sets.NewCell(0, 0))
	if !solved || v != sets.NewKnown(5) {
		t.Fatalf("cell not solved to 5 after SetGiven")
	}
}

func TestApplyReturnsNoneWhenNothingChanges(t *testing.T) {
	ch := New(AllOptions())
	b := board.New()

	res := ch.RemoveCandidate(b, sets.NewCell(0, 0), sets.NewKnown(1))
	if res.Kind != ResultValid {
		t.Fatalf("removing a present candidate should produce ResultValid, got %v", res.Kind)
	}

	// Removing the same candidate again should be a no-op: nothing changes.
	res2 := ch.RemoveCandidate(res.After, sets.NewCell(0, 0), sets.NewKnown(1))
	if res2.Kind != ResultNone {
		t.Fatalf("removing an absent candidate should produce ResultNone, got %v", res2.Kind)
	}
}

func TestOptionsGateCascade(t *testing.T) {
	opts := AllOptions()
	opts.SolveNakedSingles = false
	opts.SolveHiddenSingles = false
	ch := New(opts)

	b := board.New()
	row := sets.NewHouse(sets.Row, 0).Cells().Cells()
	for i, c := range row[:8] {
		res := ch.SetGiven(b, c, sets.NewKnown(i+1))
		if res.Kind != ResultValid {
			t.Fatalf("SetGiven(%v, %d) failed: %v", c, i+1, res)
		}
		b = res.After
	}

	last := row[8]
	if _, solved := b.Value(last); solved {
		t.Fatal("with SolveNakedSingles disabled, the ninth cell should not auto-solve")
	}
	if b.Candidates(last).Len() != 1 {
		t.Fatalf("the ninth cell should still have exactly one candidate left, got %d", b.Candidates(last).Len())
	}
}

func TestStopOnErrorAbortsCascade(t *testing.T) {
	ch := New(AllOptions())
	b := board.New()

	res := ch.SetGiven(b, sets.NewCell(0, 0), sets.NewKnown(1))
	b = res.After

	res2 := ch.SetKnown(b, sets.NewCell(0, 0), sets.NewKnown(2))
	if res2.Kind != ResultInvalid {
		t.Fatalf("solving an already-solved cell should produce ResultInvalid, got %v", res2.Kind)
	}
	if !res2.Effects.HasErrors() {
		t.Fatal("ResultInvalid should carry errors")
	}
}

func TestNoOptionsDefersSinglesToCaller(t *testing.T) {
	ch := New(NoOptions())
	b := board.New()
	row := sets.NewHouse(sets.Row, 0).Cells().Cells()

	for i, c := range row[:8] {
		res := ch.SetGiven(b, c, sets.NewKnown(i+1))
		if res.Kind != ResultValid {
			t.Fatalf("SetGiven(%v, %d) failed: %v", c, i+1, res)
		}
		b = res.After
	}

	last := row[8]
	if _, solved := b.Value(last); solved {
		t.Fatal("with NoOptions, a forced naked single should not auto-solve")
	}
	if len(b.Candidates(last).Knowns()) != 1 {
		t.Fatalf("the ninth cell should still have exactly one candidate left")
	}
}
