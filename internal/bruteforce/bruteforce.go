// Package bruteforce implements the backtracking oracle: an explicit-stack
// DFS used to verify unique solvability and as a fallback when the logical
// solver's strategies run dry. Grounded on the teacher's internal/sudoku/dp
// package (recursive backtracking + solution counting) but reworked to the
// explicit-stack shape the core requires so search state is inspectable and
// cancellation-aware at every frame, not just on recursive return.
package bruteforce

import (
	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/cancel"
	"sudoku-engine/internal/sets"
	"sudoku-engine/pkg/constants"
)

// Status classifies how a search ended.
type Status int

const (
	AlreadySolved Status = iota
	TooFewKnowns
	UnsolvableCells
	Canceled
	Unsolvable
	Solved
	MultipleSolutions
)

// Result is the outcome of a brute-force search.
type Result struct {
	Status    Status
	Board     board.Board
	Solutions []board.Board
	Empties   sets.CellSet
}

// frame is one level of the explicit DFS stack: the board at that point,
// the next unsolved cell to try, and the candidates left to attempt there.
type frame struct {
	b          board.Board
	cell       sets.Cell
	candidates sets.KnownSet
}

// Find runs the backtracking search against b, stopping once maxSolutions
// solutions have been found (2 is enough to distinguish "unique" from
// "multiple"). Polls the process cancellation flag at the top of every
// frame pop.
func Find(b board.Board, maxSolutions int) Result {
	if b.IsSolved() {
		return Result{Status: AlreadySolved, Board: b}
	}
	if b.Knowns().Len() < constants.MinGivens {
		return Result{Status: TooFewKnowns, Board: b}
	}

	empties := sets.FullCellSet().Diff(b.Knowns())
	for _, c := range empties.Cells() {
		if b.Candidates(c).IsEmpty() {
			return Result{Status: UnsolvableCells, Board: b, Empties: sets.CellSetOf(c)}
		}
	}

	stack := []frame{{b: b, cell: firstUnsolved(b, 0)}}
	stack[0].candidates = b.Candidates(stack[0].cell)

	var solutions []board.Board

	for len(stack) > 0 {
		if cancel.Requested() {
			return Result{Status: Canceled, Board: b, Solutions: solutions}
		}

		top := &stack[len(stack)-1]
		k, rest, ok := top.candidates.Pop()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		top.candidates = rest

		var effects action.Effects
		next, applied := top.b.SetKnown(top.cell, k, &effects)
		if !applied || effects.HasErrors() || !next.IsValid() {
			continue
		}

		if next.IsSolved() {
			solutions = append(solutions, next)
			if len(solutions) >= maxSolutions {
				break
			}
			continue
		}

		nc := firstUnsolved(next, int(top.cell)+1)
		stack = append(stack, frame{b: next, cell: nc, candidates: next.Candidates(nc)})
	}

	switch {
	case len(solutions) == 0:
		return Result{Status: Unsolvable, Board: b}
	case len(solutions) == 1:
		return Result{Status: Solved, Board: solutions[0], Solutions: solutions}
	default:
		return Result{Status: MultipleSolutions, Board: b, Solutions: solutions}
	}
}

// HasUniqueSolution reports whether b has exactly one solution.
func HasUniqueSolution(b board.Board) bool {
	return Find(b, 2).Status == Solved
}

func firstUnsolved(b board.Board, from int) sets.Cell {
	for c := sets.Cell(from); c < sets.CellCount; c++ {
		if !b.Knowns().Has(c) {
			return c
		}
	}
	return sets.Cell(from)
}
