package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// BUG (bivalue universal grave) fires when every unsolved cell except one
// has exactly two candidates and that one cell has exactly three: a puzzle
// with a unique solution can never actually reach the all-bivalue deadlock
// a BUG represents, so the deficient cell must hold whichever of its three
// candidates would otherwise appear an odd number of times in each of its
// houses.
func BUG(b board.Board, single bool) *action.Effects {
	unsolved := sets.FullCellSet().Diff(b.Knowns()).Cells()

	var deficient sets.Cell
	found := false
	for _, c := range unsolved {
		n := b.Candidates(c).Len()
		if n == 3 {
			if found {
				return nil
			}
			deficient, found = c, true
		} else if n != 2 {
			return nil
		}
	}
	if !found {
		return nil
	}

	var forced sets.Known
	forcedCount := 0
	for _, k := range b.Candidates(deficient).Knowns() {
		oddInAll := true
		for _, h := range deficient.Houses() {
			if b.HouseCandidateCells(h, k).Len()%2 == 0 {
				oddInAll = false
				break
			}
		}
		if oddInAll {
			forced = k
			forcedCount++
		}
	}
	if forcedCount != 1 {
		return nil
	}

	effects := action.NewEffects()
	effects.AddAction(action.New(action.TagIntersectionRemove).WithSet(deficient, forced).WithClue(deficient, forced))
	_ = single
	return effects
}
