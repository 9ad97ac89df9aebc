package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// EmptyRectangle finds a block whose candidates for a known all fit inside
// one of its rows and one of its columns (an "empty rectangle": the other
// two rows and two columns of the block hold none of them). That row/column
// pair then behaves like a single strong link reaching out of the block: if
// a line crossing the column (or row) end has only two candidates, one of
// which shares the empty rectangle's row (or column), the other end of that
// line can be traced back through the block to a landing cell that must not
// hold the known.
func EmptyRectangle(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, k := range sets.AllKnowns() {
		for _, block := range sets.AllHouses()[18:27] {
			cells, row, column, ok := fitRowColumn(b, block, k)
			if !ok {
				continue
			}

			erased := sets.EmptyCellSet()
			orientations := [2][2]sets.House{{row, column}, {column, row}}
			for _, o := range orientations {
				top, left := o[0], o[1]
				candidates := b.HouseCandidateCells(left, k).Diff(cells)

				for _, start := range b.HouseCandidateCells(top, k).Diff(cells).Cells() {
					if erased.Has(start) {
						continue
					}
					right := start.House(left.Shape)
					pivot, ok := b.HouseCandidateCells(right, k).Without(start).AsSingle()
					if !ok {
						continue
					}
					if start.Block() == pivot.Block() {
						continue
					}
					bottom := pivot.House(top.Shape)
					ends := b.HouseCandidateCells(bottom, k).Without(pivot)
					end, ok := ends.Intersect(candidates).AsSingle()
					if !ok {
						continue
					}

					erased = erased.With(end)
					if a := eraseKnownFrom(b, sets.CellSetOf(end), k); a != nil {
						effects.AddAction(a)
						if single {
							return effects
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

// fitRowColumn reports whether block's remaining candidates for k fit
// entirely inside one of its rows unioned with one of its columns, and
// returns that row/column pair along with the candidate cells.
func fitRowColumn(b board.Board, block sets.House, k sets.Known) (sets.CellSet, sets.House, sets.House, bool) {
	cells := b.HouseCandidateCells(block, k)
	if cells.Len() < 3 {
		return sets.CellSet{}, sets.House{}, sets.House{}, false
	}
	for _, row := range block.Cells().Rows().Houses() {
		for _, column := range block.Cells().Columns().Houses() {
			if cells.IsSubsetOf(row.Cells().Union(column.Cells())) {
				return cells, row, column, true
			}
		}
	}
	return sets.CellSet{}, sets.House{}, sets.House{}, false
}
