package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// UniqueRectangleType1 finds a two-block rectangle where three corners are
// bivalue with the same pair of candidates and the fourth (the "roof")
// contains that pair plus extra candidates. Since a uniquely-solvable puzzle
// can never need the roof to resolve to the pair (that would let the other
// three swap freely), the pair is erased from the roof.
func UniqueRectangleType1(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, r := range sets.AllRectangles() {
		corners := [4]sets.Cell{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
		for roof := 0; roof < 4; roof++ {
			var pair sets.KnownSet
			floorOK := true
			for i, c := range corners {
				if i == roof {
					continue
				}
				cand := b.Candidates(c)
				if cand.Len() != 2 {
					floorOK = false
					break
				}
				if pair.IsEmpty() {
					pair = cand
				} else if cand != pair {
					floorOK = false
					break
				}
			}
			if !floorOK || pair.IsEmpty() {
				continue
			}
			roofCand := b.Candidates(corners[roof])
			if !pair.IsSubsetOf(roofCand) || roofCand.Len() <= pair.Len() {
				continue
			}
			a := eraseKnownsFrom(b, corners[roof], pair)
			if a != nil {
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

func eraseKnownsFrom(b board.Board, c sets.Cell, ks sets.KnownSet) *action.Action {
	overlap := b.Candidates(c).Intersect(ks)
	if overlap.IsEmpty() {
		return nil
	}
	return action.New(action.TagIntersectionRemove).WithErase(c, overlap)
}

// rectangleRoof returns the two corners of r other than the two named by
// i and j into corners.
func rectangleRoof(corners [4]sets.Cell, i, j int) []sets.Cell {
	var roof []sets.Cell
	for k, c := range corners {
		if k != i && k != j {
			roof = append(roof, c)
		}
	}
	return roof
}

// UniqueRectangleType2 finds a two-block rectangle whose two floor corners
// are bivalue with the same pair, and whose two roof corners each carry
// that pair plus one more shared extra candidate. A valid puzzle could
// never need the roof cells to collapse to the bare pair, so the extra
// candidate must appear in at least one roof cell; since both roof cells
// carry it identically, it can be erased from any cell that sees both.
func UniqueRectangleType2(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, r := range sets.AllRectangles() {
		corners := [4]sets.Cell{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				floor1, floor2 := corners[i], corners[j]
				pair := b.Candidates(floor1)
				if pair.Len() != 2 || b.Candidates(floor2) != pair {
					continue
				}
				roof := rectangleRoof(corners, i, j)
				if len(roof) != 2 {
					continue
				}
				roof1, roof2 := roof[0], roof[1]
				cand1, cand2 := b.Candidates(roof1), b.Candidates(roof2)
				if !cand1.HasAll(pair) || !cand2.HasAll(pair) {
					continue
				}
				extra1, extra2 := cand1.Diff(pair), cand2.Diff(pair)
				z, ok := extra1.AsSingle()
				if !ok || extra2 != extra1 {
					continue
				}
				target := roof1.Peers().Intersect(roof2.Peers())
				if a := eraseKnownFrom(b, target, z); a != nil {
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

// UniqueRectangleType3 finds a bivalue floor pair and a roof whose combined
// extra candidates (beyond the pair) name exactly two digits. Treating the
// roof as a single pseudo-cell holding those two digits, any real cell
// sharing a house with both roof corners that also holds exactly those two
// digits forms a naked pair with it, letting the pair be erased from the
// rest of that house.
func UniqueRectangleType3(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, r := range sets.AllRectangles() {
		corners := [4]sets.Cell{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				floor1, floor2 := corners[i], corners[j]
				pair := b.Candidates(floor1)
				if pair.Len() != 2 || b.Candidates(floor2) != pair {
					continue
				}
				roof := rectangleRoof(corners, i, j)
				if len(roof) != 2 {
					continue
				}
				roof1, roof2 := roof[0], roof[1]
				cand1, cand2 := b.Candidates(roof1), b.Candidates(roof2)
				if !cand1.HasAll(pair) || !cand2.HasAll(pair) {
					continue
				}
				extras := cand1.Union(cand2).Diff(pair)
				if extras.Len() != 2 {
					continue
				}
				for _, h := range commonHouses(roof1, roof2) {
					others := h.Cells().Diff(sets.CellSetOf(roof1, roof2))
					for _, other := range others.Cells() {
						if b.Knowns().Has(other) || b.Candidates(other) != extras {
							continue
						}
						erase := h.Cells().Diff(sets.CellSetOf(roof1, roof2, other))
						a := action.New(action.TagIntersectionRemove)
						for _, c := range erase.Cells() {
							a.WithErase(c, b.Candidates(c).Intersect(extras))
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
	if effects.IsEmpty() {
		return nil
	}
	return effects
}

// UniqueRectangleType4 finds a bivalue floor pair sharing a house, and a
// roof pair sharing the opposite house, where one of the pair's two digits
// is a conjugate pair (its only two candidates in that house) confined to
// exactly the roof corners. That digit must occupy one roof cell or the
// other, so the remaining digit of the pair can never be forced into both
// roof cells at once and is erased from each that still carries it.
func UniqueRectangleType4(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, r := range sets.AllRectangles() {
		corners := [4]sets.Cell{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				floor1, floor2 := corners[i], corners[j]
				pair := b.Candidates(floor1)
				if pair.Len() != 2 || b.Candidates(floor2) != pair {
					continue
				}
				if len(commonHouses(floor1, floor2)) == 0 {
					continue
				}
				roof := rectangleRoof(corners, i, j)
				if len(roof) != 2 {
					continue
				}
				roof1, roof2 := roof[0], roof[1]
				if !b.Candidates(roof1).HasAny(pair) || !b.Candidates(roof2).HasAny(pair) {
					continue
				}
				for _, h := range commonHouses(roof1, roof2) {
					for _, k := range pair.Knowns() {
						cells := b.HouseCandidateCells(h, k)
						if cells.Len() != 2 || !cells.Equals(sets.CellSetOf(roof1, roof2)) {
							continue
						}
						other, ok := pair.Without(k).AsSingle()
						if !ok {
							continue
						}
						a := action.New(action.TagIntersectionRemove)
						if b.IsCandidate(roof1, other) {
							a.WithErase(roof1, sets.KnownSetOf(other))
						}
						if b.IsCandidate(roof2, other) {
							a.WithErase(roof2, sets.KnownSetOf(other))
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
	if effects.IsEmpty() {
		return nil
	}
	return effects
}
