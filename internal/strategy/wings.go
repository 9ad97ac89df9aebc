package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// XYWing finds a bivalue pivot {x,y} with two bivalue peers {x,z} and {y,z},
// and erases z from every cell that sees both peers.
func XYWing(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	unsolved := sets.FullCellSet().Diff(b.Knowns())
	for _, p := range unsolved.Cells() {
		pivot := b.Candidates(p)
		if pivot.Len() != 2 {
			continue
		}
		x, y := pivotPair(pivot)
		peers := p.Peers().Intersect(unsolved)
		pincers1 := bivaluePeersWith(b, peers, x, y)
		pincers2 := bivaluePeersWith(b, peers, y, x)
		for _, c1 := range pincers1 {
			z1, _ := b.Candidates(c1).Diff(sets.KnownSetOf(x)).First()
			for _, c2 := range pincers2 {
				if c1 == c2 {
					continue
				}
				z2, _ := b.Candidates(c2).Diff(sets.KnownSetOf(y)).First()
				if z1 != z2 {
					continue
				}
				target := c1.Peers().Intersect(c2.Peers()).Without(p)
				a := eraseKnownFrom(b, target, z1)
				if a != nil {
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

// XYZWing finds a trivalue pivot {x,y,z} with two bivalue peers covering
// {x,z} and {y,z}, and erases z from every cell that sees all three.
func XYZWing(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	unsolved := sets.FullCellSet().Diff(b.Knowns())
	for _, p := range unsolved.Cells() {
		pivot := b.Candidates(p)
		if pivot.Len() != 3 {
			continue
		}
		peers := p.Peers().Intersect(unsolved)
		var bivalue []sets.Cell
		for _, c := range peers.Cells() {
			cand := b.Candidates(c)
			if cand.Len() == 2 && cand.IsSubsetOf(pivot) {
				bivalue = append(bivalue, c)
			}
		}
		for i := 0; i < len(bivalue); i++ {
			for j := i + 1; j < len(bivalue); j++ {
				c1, c2 := bivalue[i], bivalue[j]
				cand1, cand2 := b.Candidates(c1), b.Candidates(c2)
				if cand1.Union(cand2) != pivot || cand1 == cand2 {
					continue
				}
				z, ok := cand1.Intersect(cand2).AsSingle()
				if !ok {
					continue
				}
				target := p.Peers().Intersect(c1.Peers()).Intersect(c2.Peers())
				a := eraseKnownFrom(b, target, z)
				if a != nil {
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

func pivotPair(s sets.KnownSet) (sets.Known, sets.Known) {
	ks := s.Knowns()
	return ks[0], ks[1]
}

// bivaluePeersWith returns the cells of peers whose candidates are exactly
// {have, other-digit} for some digit other than miss.
func bivaluePeersWith(b board.Board, peers sets.CellSet, have, miss sets.Known) []sets.Cell {
	var out []sets.Cell
	for _, c := range peers.Cells() {
		cand := b.Candidates(c)
		if cand.Len() == 2 && cand.Has(have) && !cand.Has(miss) {
			out = append(out, c)
		}
	}
	return out
}

func eraseKnownFrom(b board.Board, cells sets.CellSet, k sets.Known) *action.Action {
	a := action.New(action.TagIntersectionRemove)
	for _, c := range cells.Cells() {
		if b.IsCandidate(c, k) {
			a.WithErase(c, sets.KnownSetOf(k))
		}
	}
	if a.IsEmpty() {
		return nil
	}
	return a
}
