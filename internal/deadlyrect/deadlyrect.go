// Package deadlyrect exposes the uniqueness guard as a standalone component
// for callers outside the board (the generator's pruning heuristic, tests).
// The detection logic itself lives on board.Board since Board.SetKnown must
// invoke it inline on every mutation; this package is a thin facade so the
// rest of the engine can depend on a component named the way spec.md names
// it rather than reaching into board directly.
package deadlyrect

import (
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// Find returns every existing deadly rectangle on b.
func Find(b board.Board) []sets.Rectangle {
	return board.FindDeadlyRectangles(b)
}

// Creates returns every rectangle that would become deadly if cell were set
// to known.
func Creates(b board.Board, cell sets.Cell, known sets.Known) []sets.Rectangle {
	return board.CreatesDeadlyRectangles(b, cell, known)
}
