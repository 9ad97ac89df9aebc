package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// XWing is the fish pattern of size 2: a known confined to the same two
// columns in each of two rows (or vice versa), erased from the rest of
// those columns (or rows).
func XWing(b board.Board, single bool) *action.Effects { return fish(b, single, 2, action.TagIntersectionRemove) }

// Swordfish generalizes XWing to three base houses.
func Swordfish(b board.Board, single bool) *action.Effects { return fish(b, single, 3, action.TagIntersectionRemove) }

// Jellyfish generalizes XWing to four base houses.
func Jellyfish(b board.Board, single bool) *action.Effects { return fish(b, single, 4, action.TagIntersectionRemove) }

func fish(b board.Board, single bool, n int, tag action.Tag) *action.Effects {
	effects := action.NewEffects()
	for _, orientation := range []struct{ base, cover sets.Shape }{{sets.Row, sets.Column}, {sets.Column, sets.Row}} {
		for _, k := range sets.AllKnowns() {
			var bases []sets.House
			for coord := sets.Coord(0); int(coord) < sets.CoordCount; coord++ {
				h := sets.NewHouse(orientation.base, coord)
				n2 := b.HouseCandidateCells(h, k).Len()
				if n2 >= 1 && n2 <= n {
					bases = append(bases, h)
				}
			}
			if len(bases) < n {
				continue
			}
			for _, combo := range houseCombinations(bases, n) {
				var cellUnion sets.CellSet
				for _, h := range combo {
					cellUnion = cellUnion.Union(b.HouseCandidateCells(h, k))
				}
				coverSet := cellUnion.Houses(orientation.cover)
				if coverSet.Len() != n {
					continue
				}

				var baseCells sets.CellSet
				for _, h := range combo {
					baseCells = baseCells.Union(h.Cells())
				}

				a := action.New(tag)
				for _, cover := range coverSet.Houses() {
					for _, c := range b.HouseCandidateCells(cover, k).Diff(baseCells).Cells() {
						a.WithErase(c, sets.KnownSetOf(k))
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
	}
	if effects.IsEmpty() {
		return nil
	}
	return effects
}

func houseCombinations(houses []sets.House, n int) [][]sets.House {
	var out [][]sets.House
	var pick func(start int, chosen []sets.House)
	pick = func(start int, chosen []sets.House) {
		if len(chosen) == n {
			cp := make([]sets.House, n)
			copy(cp, chosen)
			out = append(out, cp)
			return
		}
		for i := start; i < len(houses); i++ {
			pick(i+1, append(chosen, houses[i]))
		}
	}
	pick(0, nil)
	return out
}
