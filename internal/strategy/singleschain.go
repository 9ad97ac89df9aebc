package strategy

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// SinglesChain builds a strong-link graph for each known: an edge joins two
// cells whenever they are the only two candidates for that known in some
// house. Two-coloring each connected component lets two elimination rules
// fire: if two same-colored cells see each other, that color can never hold
// and the known is erased from every cell wearing it; if an outside cell
// sees a cell of each color, one color or the other must hold the known
// there, so it is erased from that cell too.
func SinglesChain(b board.Board, single bool) *action.Effects {
	effects := action.NewEffects()
	for _, k := range sets.AllKnowns() {
		links := singlesChainLinks(b, k)
		if len(links) == 0 {
			continue
		}

		colored := make(map[sets.Cell]int, len(links))
		for start := sets.Cell(0); int(start) < sets.CellCount; start++ {
			if _, has := links[start]; !has {
				continue
			}
			if _, done := colored[start]; done {
				continue
			}

			color0, color1 := colorComponent(links, colored, start)
			if color0.Len() < 2 && color1.Len() < 2 {
				continue
			}

			for _, group := range [2]sets.CellSet{color0, color1} {
				if seesWithinGroup(group) {
					if a := eraseKnownFrom(b, group, k); a != nil {
						effects.AddAction(a)
						if single {
							return effects
						}
					}
				}
			}

			outside := sets.FullCellSet().Diff(color0).Diff(color1).Diff(b.Knowns())
			for _, c := range outside.Cells() {
				if !b.IsCandidate(c, k) {
					continue
				}
				if c.Peers().HasAny(color0) && c.Peers().HasAny(color1) {
					if a := eraseKnownFrom(b, sets.CellSetOf(c), k); a != nil {
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

// singlesChainLinks returns, for known k, every cell that takes part in a
// conjugate pair for k, mapped to its linked partners.
func singlesChainLinks(b board.Board, k sets.Known) map[sets.Cell][]sets.Cell {
	links := make(map[sets.Cell][]sets.Cell)
	for _, h := range sets.AllHouses() {
		cells := b.HouseCandidateCells(h, k)
		if cells.Len() != 2 {
			continue
		}
		pair := cells.Cells()
		links[pair[0]] = appendIfMissing(links[pair[0]], pair[1])
		links[pair[1]] = appendIfMissing(links[pair[1]], pair[0])
	}
	return links
}

// colorComponent walks the connected component reachable from start,
// alternating the two colors across each link, and records every visited
// cell in colored so the caller can skip it as a future start.
func colorComponent(links map[sets.Cell][]sets.Cell, colored map[sets.Cell]int, start sets.Cell) (sets.CellSet, sets.CellSet) {
	var color0, color1 sets.CellSet
	colored[start] = 0
	color0 = color0.With(start)
	queue := []sets.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curColor := colored[cur]
		for _, next := range links[cur] {
			if _, seen := colored[next]; seen {
				continue
			}
			nextColor := 1 - curColor
			colored[next] = nextColor
			if nextColor == 0 {
				color0 = color0.With(next)
			} else {
				color1 = color1.With(next)
			}
			queue = append(queue, next)
		}
	}
	return color0, color1
}

func seesWithinGroup(group sets.CellSet) bool {
	cells := group.Cells()
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if cells[i].Peers().Has(cells[j]) {
				return true
			}
		}
	}
	return false
}

func appendIfMissing(list []sets.Cell, c sets.Cell) []sets.Cell {
	for _, x := range list {
		if x == c {
			return list
		}
	}
	return append(list, c)
}
