package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// NakedSingles finds every unsolved cell with exactly one remaining
// candidate and proposes solving it. The Changer already folds this cascade
// into set_known/remove_candidate automatically; this standalone pass exists
// for callers (the logical solver, the generator's pruning search) that want
// to run it in isolation or restart the ladder from the bottom.
func NakedSingles(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, c := range b.CellsWithNCandidates(1).Cells() {
		k, ok := b.Candidates(c).AsSingle()
		if !ok {
			continue
		}
		effects.AddAction(action.New(action.TagNakedSingle).WithSet(c, k).WithClue(c, k))
		if single {
			return effects
		}
	}
	if effects.IsEmpty() {
		return nil
	}
	return effects
}

// HiddenSingles finds every house where a known has exactly one remaining
// candidate cell and proposes solving it there.
func HiddenSingles(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, h := range sets.AllHouses() {
		for _, k := range sets.AllKnowns() {
			cells := b.HouseCandidateCells(h, k)
			cell, ok := cells.AsSingle()
			if !ok {
				continue
			}
			effects.AddAction(action.New(action.TagHiddenSingle).WithSet(cell, k).WithClue(cell, k))
			if single {
				return effects
			}
		}
	}
	if effects.IsEmpty() {
		return nil
	}
	return effects
}
