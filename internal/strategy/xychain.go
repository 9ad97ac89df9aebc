package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// XYChain walks a chain of bivalue cells linked by a shared candidate: each
// step moves from a cell holding {have, next} to a peer holding {next, have2}
// through their common digit next. If the chain returns to the starting
// digit after at least two links, then that digit must be true at the start
// or at the end of the chain, so it can be erased from every cell that sees
// both ends.
func XYChain(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	bivalues := b.CellsWithNCandidates(2).Cells()

	type link struct {
		cell sets.Cell
		know sets.Known
	}
	edges := make(map[link][]sets.Cell)
	for i, c1 := range bivalues {
		for _, c2 := range bivalues[i+1:] {
			if !c1.Peers().Has(c2) {
				continue
			}
			shared := b.Candidates(c1).Intersect(b.Candidates(c2))
			k, ok := shared.AsSingle()
			if !ok {
				continue
			}
			edges[link{c1, k}] = append(edges[link{c1, k}], c2)
			edges[link{c2, k}] = append(edges[link{c2, k}], c1)
		}
	}

	otherOf := func(c sets.Cell, known sets.Known) sets.Known {
		o, _ := b.Candidates(c).Without(known).AsSingle()
		return o
	}

	for _, start := range bivalues {
		for _, z := range b.Candidates(start).Knowns() {
			visited := sets.CellSetOf(start)
			stop := false

			var walk func(cur sets.Cell, need sets.Known, length int)
			walk = func(cur sets.Cell, need sets.Known, length int) {
				if stop {
					return
				}
				for _, next := range edges[link{cur, need}] {
					if stop || visited.Has(next) {
						continue
					}
					nextOther := otherOf(next, need)
					if length >= 2 && nextOther == z {
						target := start.Peers().Intersect(next.Peers())
						if a := eraseKnownFrom(b, target, z); a != nil {
							effects.AddAction(a)
							if single {
								stop = true
								return
							}
						}
					}
					visited = visited.With(next)
					walk(next, nextOther, length+1)
					visited = visited.Without(next)
					if stop {
						return
					}
				}
			}
			walk(start, otherOf(start, z), 1)
			if stop {
				return effects
			}
		}
	}

	if effects.IsEmpty() {
		return nil
	}
	return effects
}
