package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// WXYZWing finds a pivot cell holding four candidates and three pincer
// cells, each a subset of the pivot's candidates and each seeing the pivot,
// whose combined candidates are exactly those four digits. If every digit
// but one is restricted (every cell holding it sees every other cell
// holding it), the remaining non-restricted digit can be erased from any
// cell that sees every cell holding it, since one of those cells must hold it.
func WXYZWing(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	unsolved := sets.FullCellSet().Diff(b.Knowns())

	for _, pivot := range unsolved.Cells() {
		quad := b.Candidates(pivot)
		if quad.Len() != 4 {
			continue
		}
		var pincers []sets.Cell
		peers := pivot.Peers().Intersect(unsolved)
		for _, c := range peers.Cells() {
			cand := b.Candidates(c)
			if cand.Len() >= 2 && cand.Len() <= 3 && cand.IsSubsetOf(quad) {
				pincers = append(pincers, c)
			}
		}

		for _, combo := range cellCombinations(pincers, 3) {
			cells := append([]sets.Cell{pivot}, combo...)
			union := quad
			for _, c := range combo {
				union = union.Union(b.Candidates(c))
			}
			if union != quad {
				continue
			}

			var nonRestricted sets.Known
			found := false
			ambiguous := false
			for _, k := range quad.Knowns() {
				holders := holdersOf(b, cells, k)
				if len(holders) < 2 || allSeeEachOther(holders) {
					continue
				}
				if found {
					ambiguous = true
					break
				}
				found = true
				nonRestricted = k
			}
			if ambiguous || !found {
				continue
			}

			holders := holdersOf(b, cells, nonRestricted)
			target := sets.FullCellSet()
			for _, h := range holders {
				target = target.Intersect(h.Peers())
			}
			if a := eraseKnownFrom(b, target, nonRestricted); a != nil {
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

func holdersOf(b board.Board, cells []sets.Cell, k sets.Known) []sets.Cell {
	var out []sets.Cell
	for _, c := range cells {
		if b.IsCandidate(c, k) {
			out = append(out, c)
		}
	}
	return out
}

func allSeeEachOther(cells []sets.Cell) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !cells[i].Peers().Has(cells[j]) {
				return false
			}
		}
	}
	return true
}
