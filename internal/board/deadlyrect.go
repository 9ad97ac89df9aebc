package board

import "sudoku-engine/internal/sets"

// solved returns the cells the player has deduced, excluding givens: a given
// can never participate in a deadly rectangle since its value isn't free to
// swap.
func (b Board) solved() sets.CellSet {
	return b.knowns.Diff(b.givens)
}

// FindDeadlyRectangles returns every already-solved rectangle whose opposite
// corners hold equal values and whose adjacent corners differ: a pattern
// that means the two values could be swapped, so the puzzle would have more
// than one solution. A puzzle with a correct, unique solution never has one.
func FindDeadlyRectangles(b Board) []sets.Rectangle {
	solved := b.solved()
	var found []sets.Rectangle
	for _, r := range sets.AllRectangles() {
		if !solved.HasAll(r.Cells) {
			continue
		}
		tl, _ := b.Value(r.TopLeft)
		tr, _ := b.Value(r.TopRight)
		bl, _ := b.Value(r.BottomLeft)
		br, _ := b.Value(r.BottomRight)
		if tl == br && tr == bl {
			found = append(found, r)
		}
	}
	return found
}

// CreatesDeadlyRectangles returns every rectangle that would become deadly
// if cell were set to known: a rectangle containing cell whose other three
// corners are already solved (and not given), with cell's own corner
// matching its diagonal partner and the other two corners agreeing with
// each other.
func CreatesDeadlyRectangles(b Board, cell sets.Cell, known sets.Known) []sets.Rectangle {
	if b.knowns.Has(cell) || !b.knownCandidates[cell].Has(known) {
		return nil
	}
	solved := b.solved()
	var found []sets.Rectangle
	for _, r := range sets.AllRectangles() {
		if !r.Cells.Has(cell) {
			continue
		}
		if r.Cells.Diff(solved).Len() != 1 {
			continue
		}
		oriented := r.WithOrigin(cell)
		br, ok := b.Value(oriented.BottomRight)
		if !ok || br != known {
			continue
		}
		tr, okTR := b.Value(oriented.TopRight)
		bl, okBL := b.Value(oriented.BottomLeft)
		if !okTR || !okBL || tr != bl {
			continue
		}
		found = append(found, oriented)
	}
	return found
}
