package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// pendingHiddenRect carries a two-bivalue-corner rectangle through to the
// second pass of HiddenUniqueRectangle, once every rectangle has been
// classified.
type pendingHiddenRect struct {
	rect  sets.Rectangle
	floor sets.CellSet
	pair  sets.KnownSet
}

// HiddenUniqueRectangle finds a two-block rectangle whose four corners all
// carry the same candidate pair, reasoning from conjugate pairs (strong
// links) rather than from which corners are already bivalue:
//
// Type 1: exactly one corner is bivalue. If, for one of the pair's two
// digits, both lines running from the diagonally opposite corner back to
// this one are conjugate pairs for that digit, the other digit can be
// erased from the opposite corner, since that digit being true there would
// leave both lines needing the first digit solved by the rectangle itself.
//
// Type 2/2b: exactly two corners (sharing a row or column) are bivalue. If
// a line connecting one of them to a roof corner is a conjugate pair for
// one of the pair's digits, the other roof corner can drop the remaining
// digit.
func HiddenUniqueRectangle(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	knowns := b.Knowns()
	bivalues := b.CellsWithNCandidates(2)

	var type2s []pendingHiddenRect

rects:
	for _, rect := range sets.AllRectangles() {
		if rect.Cells.HasAny(knowns) {
			continue
		}
		rectBiValues := rect.Cells.Intersect(bivalues)
		origin, ok := rectBiValues.First()
		if !ok {
			continue
		}
		pair := b.Candidates(origin)
		if !b.CommonCandidates(rect.Cells).HasAll(pair) {
			continue
		}

		switch rectBiValues.Len() {
		case 1:
			rr := rect.WithOrigin(origin)
			for _, k := range pair.Knowns() {
				row, okRow := commonLineHouse(rr.BottomRight, rr.BottomLeft)
				column, okColumn := commonLineHouse(rr.BottomRight, rr.TopRight)
				if !okRow || !okColumn {
					continue
				}
				if b.HouseCandidateCells(row, k).Len() == 2 && b.HouseCandidateCells(column, k).Len() == 2 {
					if a := eraseKnownsFrom(b, rr.BottomRight, pair.Diff(sets.KnownSetOf(k))); a != nil {
						effects.AddAction(a)
						if single {
							return effects
						}
					}
					continue rects
				}
			}
		case 2:
			type2s = append(type2s, pendingHiddenRect{rect, rectBiValues, pair})
		default:
			continue
		}
	}

	for _, p := range type2s {
		floorPair := p.floor.Cells()
		if len(floorPair) != 2 {
			continue
		}
		floor1, floor2 := floorPair[0], floorPair[1]
		if _, ok := commonLineHouse(floor1, floor2); !ok {
			continue
		}
		roofPair := p.rect.Cells.Diff(p.floor).Cells()
		if len(roofPair) != 2 {
			continue
		}
		roof1, roof2 := roofPair[0], roofPair[1]

		walls := [2][3]sets.Cell{
			{floor1, roof1, roof2},
			{floor2, roof2, roof1},
		}
		for _, k := range p.pair.Knowns() {
			for _, w := range walls {
				wall1, wall2, erase := w[0], w[1], w[2]
				house, ok := commonLineHouse(wall1, wall2)
				if !ok || b.HouseCandidateCells(house, k).Len() != 2 {
					continue
				}
				if a := eraseKnownsFrom(b, erase, p.pair.Diff(sets.KnownSetOf(k))); a != nil {
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

// commonLineHouse returns the row or column shared by c1 and c2, preferring
// the row, or false if they share neither.
func commonLineHouse(c1, c2 sets.Cell) (sets.House, bool) {
	for _, shape := range []sets.Shape{sets.Row, sets.Column} {
		if c1.House(shape) == c2.House(shape) {
			return c1.House(shape), true
		}
	}
	return sets.House{}, false
}
