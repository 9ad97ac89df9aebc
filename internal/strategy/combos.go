package strategy

import "sudoku-engine/internal/sets"

// cellCombinations returns every n-element subset of cells, in ascending
// index order.
func cellCombinations(cells []sets.Cell, n int) [][]sets.Cell {
	var out [][]sets.Cell
	var pick func(start int, chosen []sets.Cell)
	pick = func(start int, chosen []sets.Cell) {
		if len(chosen) == n {
			cp := make([]sets.Cell, n)
			copy(cp, chosen)
			out = append(out, cp)
			return
		}
		for i := start; i < len(cells); i++ {
			pick(i+1, append(chosen, cells[i]))
		}
	}
	pick(0, nil)
	return out
}

// knownCombinations returns every n-element subset of knowns, in ascending
// value order.
func knownCombinations(knowns []sets.Known, n int) [][]sets.Known {
	var out [][]sets.Known
	var pick func(start int, chosen []sets.Known)
	pick = func(start int, chosen []sets.Known) {
		if len(chosen) == n {
			cp := make([]sets.Known, n)
			copy(cp, chosen)
			out = append(out, cp)
			return
		}
		for i := start; i < len(knowns); i++ {
			pick(i+1, append(chosen, knowns[i]))
		}
	}
	pick(0, nil)
	return out
}

func cellSetOfSlice(cells []sets.Cell) sets.CellSet {
	var s sets.CellSet
	for _, c := range cells {
		s = s.With(c)
	}
	return s
}

func knownSetOfSlice(knowns []sets.Known) sets.KnownSet {
	var s sets.KnownSet
	for _, k := range knowns {
		s = s.With(k)
	}
	return s
}
