// Package board implements the central mutable Sudoku board: givens, solved
// values, and the candidate bitmaps that constraint propagation keeps
// consistent as cells are solved. Board is a small value type; every
// mutating operation returns a new Board rather than mutating in place, so
// callers (the Changer, brute-force search, the generator and finder) can
// explore by cloning cheaply instead of snapshotting and restoring state.
package board

import (
	"strings"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/sets"
)

// Board holds the full state of a Sudoku grid in progress: which cells are
// given, which are solved, and the remaining candidates for every unsolved
// cell, kept consistent from both the cell's and the known's point of view.
type Board struct {
	givens sets.CellSet
	knowns sets.CellSet
	values [sets.CellCount]sets.Known

	knownCandidates [sets.CellCount]sets.KnownSet
	cellCandidates  [sets.KnownCount]sets.CellSet
	cellKnowns      [sets.KnownCount]sets.CellSet

	valid bool
}

// New returns an empty board: no cells solved, every cell a candidate for
// every known.
func New() Board {
	var b Board
	b.valid = true
	full := sets.FullKnownSet()
	for c := sets.Cell(0); c < sets.CellCount; c++ {
		b.knownCandidates[c] = full
	}
	fullCells := sets.FullCellSet()
	for k := 0; k < sets.KnownCount; k++ {
		b.cellCandidates[k] = fullCells
	}
	return b
}

// IsValid reports whether the board has not yet hit a contradiction.
func (b Board) IsValid() bool { return b.valid }

// Givens returns the set of clue cells.
func (b Board) Givens() sets.CellSet { return b.givens }

// Knowns returns the set of solved cells.
func (b Board) Knowns() sets.CellSet { return b.knowns }

// IsSolved reports whether every cell has a value.
func (b Board) IsSolved() bool { return b.knowns.IsFull() }

// Value returns the solved value of c and true, or (0, false) if unsolved.
func (b Board) Value(c sets.Cell) (sets.Known, bool) {
	if !b.knowns.Has(c) {
		return 0, false
	}
	return b.values[c], true
}

// Candidates returns the remaining candidates at c.
func (b Board) Candidates(c sets.Cell) sets.KnownSet {
	return b.knownCandidates[c]
}

// IsCandidate reports whether k is still possible at c.
func (b Board) IsCandidate(c sets.Cell, k sets.Known) bool {
	return b.knownCandidates[c].Has(k)
}

// CandidateCells returns the cells that still admit k.
func (b Board) CandidateCells(k sets.Known) sets.CellSet {
	return b.cellCandidates[k]
}

// HouseCandidateCells returns the cells of h that still admit k.
func (b Board) HouseCandidateCells(h sets.House, k sets.Known) sets.CellSet {
	return h.Cells().Intersect(b.cellCandidates[k])
}

// KnownCells returns the cells already solved to k.
func (b Board) KnownCells(k sets.Known) sets.CellSet {
	return b.cellKnowns[k]
}

// AllCandidates returns the union of candidates across cells.
func (b Board) AllCandidates(cells sets.CellSet) sets.KnownSet {
	var out sets.KnownSet
	for _, c := range cells.Cells() {
		out = out.Union(b.knownCandidates[c])
	}
	return out
}

// CommonCandidates returns the intersection of candidates across cells, or
// the full set if cells is empty.
func (b Board) CommonCandidates(cells sets.CellSet) sets.KnownSet {
	out := sets.FullKnownSet()
	for _, c := range cells.Cells() {
		out = out.Intersect(b.knownCandidates[c])
	}
	return out
}

// CellsWithNCandidates returns the unsolved cells with exactly n candidates.
func (b Board) CellsWithNCandidates(n int) sets.CellSet {
	var out sets.CellSet
	for _, c := range sets.FullCellSet().Diff(b.knowns).Cells() {
		if b.knownCandidates[c].Len() == n {
			out = out.With(c)
		}
	}
	return out
}

// CellCandidatesWithNCandidates returns the knowns whose candidate-cell set
// within h has exactly n members.
func (b Board) CellCandidatesWithNCandidates(h sets.House, n int) sets.KnownSet {
	var out sets.KnownSet
	for _, k := range sets.AllKnowns() {
		if b.HouseCandidateCells(h, k).Len() == n {
			out = out.With(k)
		}
	}
	return out
}

// SetGiven solves c to k as a clue: as SetKnown, but c is also recorded as a
// given.
func (b Board) SetGiven(c sets.Cell, k sets.Known, effects *action.Effects) (Board, bool) {
	nb, ok := b.SetKnown(c, k, effects)
	if !ok {
		return nb, false
	}
	nb.givens = nb.givens.With(c)
	return nb, true
}

// SetKnown solves cell c to known k. Fails (returns the board unchanged and
// false) if k is not currently a candidate of c, or if c is already solved.
// On success it empties c's candidates, removes k from every peer's
// candidates, and folds the resulting cascade (unsolvable cells/houses,
// naked and hidden singles, deadly rectangles) into effects.
func (b Board) SetKnown(c sets.Cell, k sets.Known, effects *action.Effects) (Board, bool) {
	if b.knowns.Has(c) {
		effects.AddError(action.Error{Kind: action.AlreadySolved, Cell: c})
		return b, false
	}
	if !b.knownCandidates[c].Has(k) {
		effects.AddError(action.Error{Kind: action.NotCandidate, Cell: c, Known: k})
		return b, false
	}

	rects := CreatesDeadlyRectangles(b, c, k)

	nb := b
	nb.knowns = nb.knowns.With(c)
	nb.values[c] = k
	for _, k2 := range nb.knownCandidates[c].Knowns() {
		nb.cellCandidates[k2] = nb.cellCandidates[k2].Without(c)
	}
	nb.knownCandidates[c] = sets.EmptyKnownSet()
	nb.cellKnowns[k] = nb.cellKnowns[k].With(c)

	for _, p := range c.Peers().Cells() {
		if !nb.knownCandidates[p].Has(k) {
			continue
		}
		nb.removeCandidateRaw(p, k)
		effects.AddAction(action.New(action.TagPeer).WithErase(p, sets.KnownSetOf(k)))

		if nb.knownCandidates[p].IsEmpty() {
			effects.AddError(action.Error{Kind: action.UnsolvableCell, Cell: p})
			nb.valid = false
		} else if single, ok := nb.knownCandidates[p].AsSingle(); ok {
			effects.AddAction(action.New(action.TagNakedSingle).WithSet(p, single).WithClue(p, single))
		}
	}

	for _, h := range c.Houses() {
		for _, k2 := range sets.AllKnowns() {
			candCells := h.Cells().Intersect(nb.cellCandidates[k2])
			if candCells.IsEmpty() {
				if !nb.cellKnowns[k2].HasAny(h.Cells()) {
					effects.AddError(action.Error{Kind: action.UnsolvableHouse, House: h, Known: k2})
					nb.valid = false
				}
				continue
			}
			if cell, ok := candCells.AsSingle(); ok {
				effects.AddAction(action.New(action.TagHiddenSingle).WithSet(cell, k2).WithClue(cell, k2))
			}
		}
	}

	if len(rects) > 0 {
		effects.AddError(action.Error{Kind: action.DeadlyRectangle, Rect: rects[0]})
		nb.valid = false
	}

	return nb, true
}

// RemoveCandidate removes k from c's candidates. Fails (returns the board
// unchanged and false) if k was not a candidate. On success it folds the
// resulting naked/hidden single or contradiction into effects.
func (b Board) RemoveCandidate(c sets.Cell, k sets.Known, effects *action.Effects) (Board, bool) {
	if !b.knownCandidates[c].Has(k) {
		return b, false
	}

	nb := b
	nb.removeCandidateRaw(c, k)

	if nb.knownCandidates[c].IsEmpty() {
		effects.AddError(action.Error{Kind: action.UnsolvableCell, Cell: c})
		nb.valid = false
	} else if single, ok := nb.knownCandidates[c].AsSingle(); ok {
		effects.AddAction(action.New(action.TagNakedSingle).WithSet(c, single).WithClue(c, single))
	}

	for _, h := range c.Houses() {
		candCells := h.Cells().Intersect(nb.cellCandidates[k])
		if candCells.IsEmpty() {
			if !nb.cellKnowns[k].HasAny(h.Cells()) {
				effects.AddError(action.Error{Kind: action.UnsolvableHouse, House: h, Known: k})
				nb.valid = false
			}
			continue
		}
		if cell, ok := candCells.AsSingle(); ok {
			effects.AddAction(action.New(action.TagHiddenSingle).WithSet(cell, k).WithClue(cell, k))
		}
	}

	return nb, true
}

// removeCandidateRaw updates the bookkeeping for removing k from c without
// computing any derived actions. Callers must already know k is a candidate.
func (b *Board) removeCandidateRaw(c sets.Cell, k sets.Known) {
	b.knownCandidates[c] = b.knownCandidates[c].Without(k)
	b.cellCandidates[k] = b.cellCandidates[k].Without(c)
}

// WithGivens returns a new board restricted to the given cells: only cells
// in keep remain givens/knowns, and candidates are recomputed from scratch.
func (b Board) WithGivens(keep sets.CellSet) Board {
	nb := New()
	for _, c := range b.givens.Intersect(keep).Cells() {
		v, _ := b.Value(c)
		var effects action.Effects
		nb, _ = nb.SetGiven(c, v, &effects)
	}
	return nb
}

// Without returns a new board with c un-set: its given/known status removed
// and candidates recomputed from the remaining givens.
func (b Board) Without(c sets.Cell) Board {
	return b.WithGivens(b.givens.Without(c))
}

// NewFromPacked parses an 81-character packed puzzle string in row-major
// order. Digits 1-9 set a given; '.', '0', or any other character denotes an
// empty cell.
func NewFromPacked(s string) (Board, bool) {
	if len(s) != sets.CellCount {
		return Board{}, false
	}
	b := New()
	var effects action.Effects
	ok := true
	for i, r := range s {
		if r < '1' || r > '9' {
			continue
		}
		k := sets.NewKnown(int(r - '0'))
		var solved bool
		b, solved = b.SetGiven(sets.Cell(i), k, &effects)
		if !solved {
			ok = false
		}
	}
	return b, ok && !effects.HasErrors()
}

// Packed renders the board as an 81-character string, '.' for unsolved cells.
func (b Board) Packed() string {
	var sb strings.Builder
	sb.Grow(sets.CellCount)
	for c := sets.Cell(0); c < sets.CellCount; c++ {
		if v, ok := b.Value(c); ok {
			sb.WriteByte(byte('0' + v.Value()))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
