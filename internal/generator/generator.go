// Package generator builds a fully-solved board from scratch via DFS,
// shuffling candidate order at each cell and pruning branches that would
// create a deadly rectangle or fail intersection removal. Grounded on the
// teacher's internal/sudoku/dp.GenerateFullGrid/fillGrid (same LCG shuffle
// idiom) but reworked onto the Board/Changer/strategy stack so the search
// stays cancellation-aware and produces real Effects instead of a raw grid.
package generator

import (
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/cancel"
	"sudoku-engine/internal/changer"
	"sudoku-engine/internal/sets"
)

// rng is the same linear-congruential generator the teacher's puzzle
// carving uses, kept deterministic so a seed reproduces a grid.
type rng struct{ state int64 }

func newRNG(seed int64) *rng { return &rng{state: seed} }

func (r *rng) next() int64 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return r.state
}

func (r *rng) shuffleKnowns(ks []sets.Known) {
	for i := len(ks) - 1; i > 0; i-- {
		j := int(r.next()) % (i + 1)
		ks[i], ks[j] = ks[j], ks[i]
	}
}

type frame struct {
	b          board.Board
	cell       sets.Cell
	candidates []sets.Known
}

// Generate builds a fully-solved board using ch (typically configured with
// peer removal and naked/hidden singles enabled so the DFS doesn't have to
// rediscover forced cells on its own). Returns (board, true) on success, or
// (zero-board, false) if cancellation was observed or the search ran out of
// branches without completing a grid.
func Generate(ch changer.Changer, seed int64) (board.Board, bool) {
	r := newRNG(seed)
	b := board.New()

	cell, ok := nextUnsolved(b, 0)
	if !ok {
		return b, true
	}
	stack := []frame{newFrame(b, cell, r)}

	last := b
	placedAny := false
	for len(stack) > 0 {
		if cancel.Requested() {
			if placedAny {
				return last, true
			}
			return board.Board{}, false
		}

		top := &stack[len(stack)-1]
		if len(top.candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		k := top.candidates[0]
		top.candidates = top.candidates[1:]

		if !top.b.IsCandidate(top.cell, k) {
			continue
		}

		result := ch.SetKnown(top.b, top.cell, k)
		if result.Kind != changer.ResultValid {
			continue
		}
		placedAny = true
		last = result.After

		if result.After.IsSolved() {
			return result.After, true
		}

		nc, ok := nextUnsolved(result.After, int(top.cell)+1)
		if !ok {
			return result.After, true
		}
		stack = append(stack, newFrame(result.After, nc, r))
	}

	return board.Board{}, false
}

func newFrame(b board.Board, cell sets.Cell, r *rng) frame {
	ks := b.Candidates(cell).Knowns()
	r.shuffleKnowns(ks)
	return frame{b: b, cell: cell, candidates: ks}
}

func nextUnsolved(b board.Board, from int) (sets.Cell, bool) {
	for c := sets.Cell(from); c < sets.CellCount; c++ {
		if !b.Knowns().Has(c) {
			return c, true
		}
	}
	return 0, false
}
