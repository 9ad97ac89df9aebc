package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// NakedPairs finds two cells in a house sharing exactly the same two
// candidates and erases those candidates from the rest of the house.
func NakedPairs(b board.Board, single bool) *action.Effects { return nakedSubset(b, single, 2, action.TagIntersectionRemove) }

// NakedTriples finds three cells in a house whose candidates union to
// exactly three knowns and erases those candidates from the rest of the house.
func NakedTriples(b board.Board, single bool) *action.Effects { return nakedSubset(b, single, 3, action.TagIntersectionRemove) }

// NakedQuads is NakedTriples generalized to four cells.
func NakedQuads(b board.Board, single bool) *action.Effects { return nakedSubset(b, single, 4, action.TagIntersectionRemove) }

// HiddenPairs finds two knowns confined to exactly the same two cells of a
// house and erases every other candidate from those cells.
func HiddenPairs(b board.Board, single bool) *action.Effects { return hiddenSubset(b, single, 2) }

// HiddenTriples generalizes HiddenPairs to three knowns.
func HiddenTriples(b board.Board, single bool) *action.Effects { return hiddenSubset(b, single, 3) }

// HiddenQuads generalizes HiddenPairs to four knowns.
func HiddenQuads(b board.Board, single bool) *action.Effects { return hiddenSubset(b, single, 4) }

func nakedSubset(b board.Board, single bool, n int, tag action.Tag) *action.Effects {
	effects := action.NewEffects()
	for _, h := range sets.AllHouses() {
		unsolved := h.Cells().Diff(b.Knowns())
		candidates := unsolved.Cells()
		if len(candidates) < n {
			continue
		}
		var pool []sets.Cell
		for _, c := range candidates {
			if b.Candidates(c).Len() >= 2 && b.Candidates(c).Len() <= n {
				pool = append(pool, c)
			}
		}
		for _, combo := range cellCombinations(pool, n) {
			union := b.AllCandidates(cellSetOfSlice(combo))
			if union.Len() != n {
				continue
			}
			a := action.New(tag)
			for _, c := range unsolved.Cells() {
				if cellSetOfSlice(combo).Has(c) {
					continue
				}
				overlap := b.Candidates(c).Intersect(union)
				if !overlap.IsEmpty() {
					a.WithErase(c, overlap)
				}
			}
			if !a.IsEmpty() {
				effects.AddAction(a)
				if single {
					return effects
				}
			}
		}
	}
	if effects.IsEmpty() {
		return nil
	}
	return effects
}

func hiddenSubset(b board.Board, single bool, n int) *action.Effects {
	effects := action.NewEffects()
	for _, h := range sets.AllHouses() {
		var pool []sets.Known
		for _, k := range sets.AllKnowns() {
			cells := b.HouseCandidateCells(h, k)
			if cells.Len() >= 1 && cells.Len() <= n {
				pool = append(pool, k)
			}
		}
		for _, combo := range knownCombinations(pool, n) {
			var cellUnion sets.CellSet
			for _, k := range combo {
				cellUnion = cellUnion.Union(b.HouseCandidateCells(h, k))
			}
			if cellUnion.Len() != n {
				continue
			}
			ks := knownSetOfSlice(combo)
			a := action.New(action.TagIntersectionRemove)
			for _, c := range cellUnion.Cells() {
				extra := b.Candidates(c).Diff(ks)
				if !extra.IsEmpty() {
					a.WithErase(c, extra)
				}
			}
			if !a.IsEmpty() {
				effects.AddAction(a)
				if single {
					return effects
				}
			}
		}
	}
	if effects.IsEmpty() {
		return nil
	}
	return effects
}
