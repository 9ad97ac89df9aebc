// Package logicalsolver drives the strategy registry through the Changer in
// difficulty order, restarting from the cheapest tier after every change
// (a cheap naked single found late is still cheaper than the advanced
// technique that would otherwise be needed), tracking the hardest tier
// actually used as the puzzle's difficulty.
package logicalsolver

import (
	"time"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/cancel"
	"sudoku-engine/internal/changer"
	"sudoku-engine/internal/strategy"
	"sudoku-engine/internal/timing"
	"sudoku-engine/pkg/constants"
)

// Kind classifies how a solve attempt ended.
type Kind int

const (
	Canceled Kind = iota
	Failed
	Unsolved
	Solved
)

// Resolution is the result of running the logical solver to completion or
// to the point it got stuck.
type Resolution struct {
	Kind       Kind
	Board      board.Board
	Applied    int
	Difficulty string
	Action     *action.Action
	Errors     []action.Error
}

var tierRank = map[string]int{
	constants.TierBasic:      0,
	constants.TierTough:      1,
	constants.TierDiabolical: 2,
	constants.TierExtreme:    3,
}

func higherTier(a, b string) string {
	if tierRank[b] > tierRank[a] {
		return b
	}
	return a
}

// Solve runs the registry's strategies against b through ch until the board
// is solved, a strategy produces an unrecoverable error, or no enabled
// strategy finds anything further. reporter may be nil.
func Solve(b board.Board, ch changer.Changer, registry *strategy.Registry, reporter timing.Reporter) Resolution {
	difficulty := constants.TierBasic
	applied := 0

	for {
		if cancel.Requested() {
			return Resolution{Kind: Canceled, Board: b, Applied: applied, Difficulty: difficulty}
		}
		if b.IsSolved() {
			return Resolution{Kind: Solved, Board: b, Applied: applied, Difficulty: difficulty}
		}

		progressed := false
		for _, d := range registry.Ordered() {
			if !d.Enabled {
				continue
			}
			start := time.Now()
			effects := d.Run(b, true)
			elapsed := time.Since(start)

			foundCount := 0
			if effects != nil {
				foundCount = len(effects.Actions)
			}
			if reporter != nil {
				reporter.Add(d.Slug, foundCount, elapsed)
			}
			if effects == nil || effects.IsEmpty() {
				continue
			}

			result := ch.ApplyAll(b, effects)
			switch result.Kind {
			case changer.ResultInvalid:
				return Resolution{
					Kind: Failed, Board: result.After, Applied: applied, Difficulty: difficulty,
					Action: result.Action, Errors: result.Effects.Errors,
				}
			case changer.ResultValid:
				b = result.After
				applied++
				difficulty = higherTier(difficulty, d.Tier)
				progressed = true
			}
			if progressed {
				break
			}
		}

		if !progressed {
			return Resolution{Kind: Unsolved, Board: b, Applied: applied, Difficulty: difficulty}
		}
	}
}
