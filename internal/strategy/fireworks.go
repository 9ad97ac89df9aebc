package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// fireworksWing is one candidate digit's contribution to a firework pattern:
// the digit's candidate cells inside the pivot's block, and its candidate
// cells in the row/column outside that block (its "wing" cell, if any).
type fireworksWing struct {
	known   sets.Known
	inBlock sets.CellSet
	outside sets.CellSet
}

// Fireworks finds an unsolved pivot cell and three digits that each appear
// in the pivot's block and both the pivot's row and column, with each
// digit's cells outside the block confined to at most one row-wing and one
// column-wing cell. When those wings resolve to exactly two cells that
// don't see each other, and together with the pivot they carry every digit
// of the triple, every other candidate can be erased from the pivot and
// both wings.
func Fireworks(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	unsolved := sets.FullCellSet().Diff(b.Knowns())

	for _, pivot := range unsolved.Cells() {
		row := pivot.House(sets.Row).Cells()
		column := pivot.House(sets.Column).Cells()
		block := pivot.House(sets.Block).Cells()
		disjoint := row.Union(column).Diff(block)

		shared := b.AllCandidates(row).Intersect(b.AllCandidates(column))
		var wings []fireworksWing
		for _, k := range shared.Knowns() {
			cells := b.CandidateCells(k)
			if !cells.HasAny(row) || !cells.HasAny(column) {
				continue
			}
			inBlock := cells.Intersect(block)
			outside := cells.Intersect(disjoint)
			if inBlock.IsEmpty() || outside.Len() > 2 {
				continue
			}
			wings = append(wings, fireworksWing{k, inBlock, outside})
		}

		for i := 0; i < len(wings); i++ {
			for j := i + 1; j < len(wings); j++ {
				for l := j + 1; l < len(wings); l++ {
					w1, w2, w3 := wings[i], wings[j], wings[l]
					triple := sets.KnownSetOf(w1.known, w2.known, w3.known)

					wingCells := w1.outside.Union(w2.outside).Union(w3.outside)
					if wingCells.Len() != 2 {
						continue
					}
					pair := wingCells.Cells()
					if pair[0].Peers().Has(pair[1]) {
						continue
					}

					cells := wingCells.With(pivot)
					if !b.AllCandidates(cells).HasAll(triple) {
						continue
					}

					a := action.New(action.TagIntersectionRemove)
					for _, c := range cells.Cells() {
						extra := b.Candidates(c).Diff(triple)
						a.WithErase(c, extra)
					}
					if a.IsEmpty() {
						continue
					}
					effects.AddAction(a)
					if single {
						return effects
					}
				}
			}
		}
	}

	if effects.IsEmpty() {
		return nil
	}
	return effects
}
