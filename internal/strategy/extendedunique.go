package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// ExtendedUniqueRectangle generalizes the unique rectangle from two lines to
// three: pick one row from each of the three row-bands (or one column from
// each column-stack) together with two of the three lines crossing them
// inside a single block-stack. If every cell of that 3x2 region is
// unsolved, and the two crossing lines' combined candidates overlap in at
// least three digits with one side confined to exactly those three, the
// shared digits are redundant on any cell of the region that also carries
// an extra candidate, since the confined side alone can cover the three
// digits across the puzzle's only valid completion. (This implements the
// "type 1" triple-confinement elimination from the original algorithm; its
// "type 4" conjugate-pair variant, which reasons about a single excluded
// line instead of the confined triple, is not implemented here.)
func ExtendedUniqueRectangle(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	knowns := b.Knowns()

	configs := []struct {
		main, cross sets.Shape
		blocks      [3]int
	}{
		{sets.Row, sets.Column, [3]int{0, 1, 2}},
		{sets.Column, sets.Row, [3]int{0, 3, 6}},
	}

	for _, cfg := range configs {
		for t := 0; t < 3; t++ {
			top := sets.NewHouse(cfg.main, sets.Coord(t))
			for m := 3; m < 6; m++ {
				middle := sets.NewHouse(cfg.main, sets.Coord(m))
				for bo := 6; bo < 9; bo++ {
					bottom := sets.NewHouse(cfg.main, sets.Coord(bo))
					mainCells := top.Cells().Union(middle.Cells()).Union(bottom.Cells())

					for shift, third := range cfg.blocks {
						block := sets.NewHouse(sets.Block, sets.Coord(third))
						for c := 0; c < 3; c++ {
							exclude := sets.NewHouse(cfg.cross, sets.Coord(3*shift+c))
							crosses := block.Cells().Houses(cfg.cross).Without(exclude).Houses()
							if len(crosses) != 2 {
								continue
							}
							leftCells := mainCells.Intersect(crosses[0].Cells())
							if knowns.HasAny(leftCells) {
								continue
							}
							rightCells := mainCells.Intersect(crosses[1].Cells())
							if knowns.HasAny(rightCells) {
								continue
							}

							leftCandidates := b.AllCandidates(leftCells)
							rightCandidates := b.AllCandidates(rightCells)
							common := leftCandidates.Intersect(rightCandidates)
							if common.Len() < 3 {
								continue
							}

							if !tripleConfined(b, leftCandidates, rightCandidates, rightCells) &&
								!tripleConfined(b, rightCandidates, leftCandidates, leftCells) {
								continue
							}

							a := action.New(action.TagIntersectionRemove)
							for _, cc := range leftCells.Union(rightCells).Cells() {
								cand := b.Candidates(cc)
								if !cand.Diff(common).IsEmpty() {
									a.WithErase(cc, cand.Intersect(common))
								}
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
		}
	}

	if effects.IsEmpty() {
		return nil
	}
	return effects
}

// tripleConfined reports whether subset names exactly three digits, all
// contained in superset, and exactly one cell of cells (the superset side's
// line) carries a candidate beyond that triple.
func tripleConfined(b board.Board, subset, superset sets.KnownSet, cells sets.CellSet) bool {
	if subset.Len() != 3 || superset.Len() <= 3 || !superset.HasAll(subset) {
		return false
	}
	extraCount := 0
	for _, c := range cells.Cells() {
		if !b.Candidates(c).Diff(subset).IsEmpty() {
			extraCount++
		}
	}
	return extraCount == 1
}
