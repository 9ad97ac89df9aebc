package action

import (
	"strings"
	"testing"

	"sudoku-engine/internal/sets"
)

func TestNewActionIsEmpty(t *testing.T) {
	a := New(TagNakedSingle)
	if !a.IsEmpty() {
		t.Fatal("a freshly created Action should be empty")
	}
}

func TestWithSetMakesActionNonEmpty(t *testing.T) {
	a := New(TagNakedSingle).WithSet(sets.NewCell(0, 0), sets.NewKnown(5))
	if a.IsEmpty() {
		t.Fatal("an Action with a Set entry should not be empty")
	}
	if a.Set[sets.NewCell(0, 0)] != sets.NewKnown(5) {
		t.Fatalf("Set[c] = %v, want 5", a.Set[sets.NewCell(0, 0)])
	}
}

func TestWithEraseIgnoresEmptyKnownSet(t *testing.T) {
	a := New(TagPeer).WithErase(sets.NewCell(0, 0), sets.EmptyKnownSet())
	if !a.IsEmpty() {
		t.Fatal("WithErase with an empty KnownSet should leave the Action empty")
	}
}

func TestWithEraseUnionsRepeatedCalls(t *testing.T) {
	c := sets.NewCell(0, 0)
	a := New(TagPeer).
		WithErase(c, sets.KnownSetOf(sets.NewKnown(1))).
		WithErase(c, sets.KnownSetOf(sets.NewKnown(2)))
	want := sets.KnownSetOf(sets.NewKnown(1), sets.NewKnown(2))
	if a.Erase[c] != want {
		t.Fatalf("Erase[c] = %v, want %v", a.Erase[c], want)
	}
}

func TestWithClueAppendsInOrder(t *testing.T) {
	c1, c2 := sets.NewCell(0, 0), sets.NewCell(0, 1)
	a := New(TagHiddenSingle).
		WithClue(c1, sets.NewKnown(1)).
		WithClue(c2, sets.NewKnown(2))
	if len(a.Clues) != 2 || a.Clues[0].Cell != c1 || a.Clues[1].Cell != c2 {
		t.Fatalf("Clues = %v, want [{%v 1} {%v 2}]", a.Clues, c1, c2)
	}
}

func TestEffectsAddActionSkipsEmpty(t *testing.T) {
	e := NewEffects()
	if e.AddAction(New(TagPeer)) {
		t.Fatal("AddAction should reject an empty Action")
	}
	if !e.IsEmpty() {
		t.Fatal("Effects should still be empty after rejecting an empty Action")
	}

	nonEmpty := New(TagPeer).WithSet(sets.NewCell(0, 0), sets.NewKnown(1))
	if !e.AddAction(nonEmpty) {
		t.Fatal("AddAction should accept a non-empty Action")
	}
	if e.IsEmpty() {
		t.Fatal("Effects should not be empty after accepting an Action")
	}
}

func TestEffectsAddErrorAndHasErrors(t *testing.T) {
	e := NewEffects()
	if e.HasErrors() {
		t.Fatal("a fresh Effects should have no errors")
	}
	e.AddError(Error{Kind: AlreadySolved, Cell: sets.NewCell(0, 0)})
	if !e.HasErrors() {
		t.Fatal("Effects should report errors after AddError")
	}
}

func TestEffectsMerge(t *testing.T) {
	e := NewEffects()
	e.AddAction(New(TagPeer).WithSet(sets.NewCell(0, 0), sets.NewKnown(1)))
	e.AddError(Error{Kind: NotCandidate})

	other := NewEffects()
	other.AddAction(New(TagPeer).WithSet(sets.NewCell(1, 1), sets.NewKnown(2)))
	other.AddError(Error{Kind: UnsolvableCell})

	e.Merge(other)
	if len(e.Actions) != 2 || len(e.Errors) != 2 {
		t.Fatalf("Merge produced %d actions, %d errors; want 2, 2", len(e.Actions), len(e.Errors))
	}
}

func TestMergeWithNilIsNoop(t *testing.T) {
	e := NewEffects()
	e.AddError(Error{Kind: NotCandidate})
	e.Merge(nil)
	if len(e.Errors) != 1 {
		t.Fatalf("Merge(nil) changed Errors to %v", e.Errors)
	}
}

func TestErrorStringsMentionTheirSubject(t *testing.T) {
	c := sets.NewCell(2, 3)
	err := Error{Kind: AlreadySolved, Cell: c}
	if got := err.Error(); !strings.Contains(got, c.Label()) {
		t.Fatalf("Error() = %q, should mention cell %s", got, c.Label())
	}
}
