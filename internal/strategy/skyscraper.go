package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// Skyscraper finds two rows (or two columns) each with exactly two
// candidate cells for a known, one pair of which shares a column (or row):
// the other two cells are the tips, and the known is erased from every cell
// seeing both tips.
func Skyscraper(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, shape := range []sets.Shape{sets.Row, sets.Column} {
		connector := sets.Column
		if shape == sets.Column {
			connector = sets.Row
		}
		if a := twoHouseTips(b, shape, connector, single, &effects); a && single {
			return effects
		}
	}
	if effects.IsEmpty() {
		return nil
	}
	return effects
}

// TwoStringKite finds a row and a column each with exactly two candidate
// cells for a known, connected through a shared block, and erases the known
// from every cell seeing both tips.
func TwoStringKite(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, k := range sets.AllKnowns() {
		var rows, cols []sets.House
		for coord := sets.Coord(0); int(coord) < sets.CoordCount; coord++ {
			if b.HouseCandidateCells(sets.NewHouse(sets.Row, coord), k).Len() == 2 {
				rows = append(rows, sets.NewHouse(sets.Row, coord))
			}
			if b.HouseCandidateCells(sets.NewHouse(sets.Column, coord), k).Len() == 2 {
				cols = append(cols, sets.NewHouse(sets.Column, coord))
			}
		}
		for _, row := range rows {
			for _, col := range cols {
				rowCells := b.HouseCandidateCells(row, k).Cells()
				colCells := b.HouseCandidateCells(col, k).Cells()
				connector, tipRow, okR := shareBlock(rowCells, colCells)
				if !okR {
					continue
				}
				tipCol := otherCell(colCells, connector)
				target := tipRow.Peers().Intersect(tipCol.Peers())
				if a := eraseKnownFrom(b, target, k); a != nil {
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

// twoHouseTips implements the shared Skyscraper search for a base shape and
// a connecting shape.
func twoHouseTips(b board.Board, base, connector sets.Shape, single bool, effects **action.Effects) bool {
	found := false
	for _, k := range sets.AllKnowns() {
		var bases []sets.House
		for coord := sets.Coord(0); int(coord) < sets.CoordCount; coord++ {
			h := sets.NewHouse(base, coord)
			if b.HouseCandidateCells(h, k).Len() == 2 {
				bases = append(bases, h)
			}
		}
		for i := 0; i < len(bases); i++ {
			for j := i + 1; j < len(bases); j++ {
				cells1 := b.HouseCandidateCells(bases[i], k).Cells()
				cells2 := b.HouseCandidateCells(bases[j], k).Cells()
				shared, tip1, ok := shareHouse(cells1, cells2, connector)
				if !ok {
					continue
				}
				tip2 := otherCell(cells2, shared)
				target := tip1.Peers().Intersect(tip2.Peers())
				if a := eraseKnownFrom(b, target, k); a != nil {
					(*effects).AddAction(a)
					found = true
					if single {
						return true
					}
				}
			}
		}
	}
	return found
}

// shareHouse looks for a cell in cells1 and a cell in cells2 that lie in the
// same house of shape, returning that shared cell's partner (of cells2) and
// the non-shared cell of cells1.
func shareHouse(cells1, cells2 []sets.Cell, shape sets.Shape) (shared sets.Cell, tip1 sets.Cell, ok bool) {
	for _, c1 := range cells1 {
		for _, c2 := range cells2 {
			if c1.House(shape) == c2.House(shape) {
				return c2, otherCell(cells1, c1), true
			}
		}
	}
	return 0, 0, false
}

// shareBlock looks for a cell in rowCells and a cell in colCells sharing a
// block, returning the shared colCells member and the tip of rowCells.
func shareBlock(rowCells, colCells []sets.Cell) (shared sets.Cell, tip sets.Cell, ok bool) {
	return shareHouse(rowCells, colCells, sets.Block)
}

func otherCell(cells []sets.Cell, not sets.Cell) sets.Cell {
	for _, c := range cells {
		if c != not {
			return c
		}
	}
	return not
}
