package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// PointingPairs finds a known confined within one block to a single row or
// column and erases it from the rest of that row or column.
func PointingPairs(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for coord := sets.Coord(0); int(coord) < sets.CoordCount; coord++ {
		block := sets.NewHouse(sets.Block, coord)
		for _, k := range sets.AllKnowns() {
			cells := b.HouseCandidateCells(block, k)
			if cells.Len() < 2 {
				continue
			}
			if line, ok := singleHouse(cells, sets.Row); ok {
				if a := eraseOutside(b, k, line, block); a != nil {
					effects.AddAction(a)
					if single {
						return effects
					}
				}
			}
			if line, ok := singleHouse(cells, sets.Column); ok {
				if a := eraseOutside(b, k, line, block); a != nil {
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

// BoxLineReductions finds a known confined within one row or column to a
// single block and erases it from the rest of that block.
func BoxLineReductions(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, shape := range []sets.Shape{sets.Row, sets.Column} {
		for coord := sets.Coord(0); int(coord) < sets.CoordCount; coord++ {
			line := sets.NewHouse(shape, coord)
			for _, k := range sets.AllKnowns() {
				cells := b.HouseCandidateCells(line, k)
				if cells.Len() < 2 {
					continue
				}
				if block, ok := singleHouse(cells, sets.Block); ok {
					if a := eraseOutside(b, k, block, line); a != nil {
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

// singleHouse reports whether every cell of cells shares the same house of
// the given shape, returning that house.
func singleHouse(cells sets.CellSet, shape sets.Shape) (sets.House, bool) {
	first := true
	var h sets.House
	for _, c := range cells.Cells() {
		ch := c.House(shape)
		if first {
			h = ch
			first = false
		} else if ch != h {
			return sets.House{}, false
		}
	}
	return h, !first
}

// eraseOutside erases k from target's candidate cells that aren't also in
// exclude.
func eraseOutside(b board.Board, k sets.Known, target, exclude sets.House) *action.Action {
	a := action.New(action.TagIntersectionRemove)
	for _, c := range b.HouseCandidateCells(target, k).Diff(exclude.Cells()).Cells() {
		a.WithErase(c, sets.KnownSetOf(k))
	}
	if a.IsEmpty() {
		return nil
	}
	return a
}
