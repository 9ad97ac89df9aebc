package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// AvoidableRectangle looks for a two-block rectangle with no given among its
// four corners, reasoning that a puzzle with a unique solution could never
// have reached a state that lets the solver swap two corner values and stay
// consistent with the other two.
//
// Type 1: exactly one corner is unsolved, and the other three resolve so
// that the two corners diagonal from each other (relative to the unsolved
// one) hold equal values; the unsolved corner may not hold the remaining
// corner's value, since choosing it would make the rectangle swappable.
//
// Type 2: exactly two (row- or column-adjacent) corners are unsolved; if
// their combined remaining candidates, minus the two solved corners'
// values, reduce to a single digit, that digit is forced into one of the
// two unsolved corners, so it can be erased from the rest of their shared
// house(s). (Type 3, the naked-tuple generalization of this case, and the
// uncommon all-diagonal variants are not implemented here: the combinatorial
// search they require mirrors naked_tuples.is_degenerate in the Rust
// original and is left for a future pass.)
func AvoidableRectangle(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	givens := b.Givens()
	knowns := b.Knowns()

	for _, r := range sets.AllRectangles() {
		if r.Cells.HasAny(givens) {
			continue
		}

		if c, ok := r.Cells.Diff(knowns).AsSingle(); ok {
			rr := r.WithOrigin(c)
			vTR, okTR := b.Value(rr.TopRight)
			vBL, okBL := b.Value(rr.BottomLeft)
			vBR, okBR := b.Value(rr.BottomRight)
			if okTR && okBL && okBR && vTR == vBL && b.IsCandidate(c, vBR) {
				if a := eraseKnownsFrom(b, c, sets.KnownSetOf(vBR)); a != nil {
					effects.AddAction(a)
					if single {
						return effects
					}
				}
			}
			continue
		}

		unsolved := r.Cells.Diff(knowns)
		if unsolved.Len() != 2 {
			continue
		}
		pair := unsolved.Cells()
		c1, c2 := pair[0], pair[1]
		houses := commonHouses(c1, c2)
		if len(houses) == 0 {
			continue
		}

		solvedPair := r.Cells.Diff(unsolved).Cells()
		if len(solvedPair) != 2 {
			continue
		}
		c3, c4 := solvedPair[0], solvedPair[1]
		k3, _ := b.Value(c3)
		k4, _ := b.Value(c4)
		ks1, ks2 := b.Candidates(c1), b.Candidates(c2)
		if ks1.Has(k4) && ks2.Has(k3) {
			// already matches
		} else if ks1.Has(k3) && ks2.Has(k4) {
			k3, k4 = k4, k3
		} else {
			continue
		}

		pseudo := ks1.Union(ks2).Diff(sets.KnownSetOf(k3, k4))
		k, ok := pseudo.AsSingle()
		if !ok {
			continue
		}
		for _, h := range houses {
			erase := b.HouseCandidateCells(h, k).Diff(unsolved)
			if a := eraseKnownFrom(b, erase, k); a != nil {
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

// commonHouses returns every house shape (row, column, or block) that c1
// and c2 both belong to.
func commonHouses(c1, c2 sets.Cell) []sets.House {
	var out []sets.House
	for _, shape := range sets.AllShapes {
		if c1.House(shape) == c2.House(shape) {
			out = append(out, c1.House(shape))
		}
	}
	return out
}
