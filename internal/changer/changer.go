// Package changer is the sole mutator of a Board: strategies only propose
// Actions, the Changer applies them and folds in whatever automatic cascade
// its Options enable, looping to a fixpoint.
package changer

import (
	"sort"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
	"sudoku-engine/internal/strategy"
)

// Options controls which automatic cascade the Changer folds into a
// mutation versus leaving for the caller to apply explicitly.
type Options struct {
	StopOnError               bool
	RemovePeers               bool
	SolveNakedSingles         bool
	SolveHiddenSingles        bool
	SolveIntersectionRemovals bool
}

// AllOptions enables the full automatic cascade, stopping on the first
// error: the configuration a human player or the logical solver wants.
func AllOptions() Options {
	return Options{
		StopOnError:               true,
		RemovePeers:               true,
		SolveNakedSingles:         true,
		SolveHiddenSingles:        true,
		SolveIntersectionRemovals: true,
	}
}

// NoOptions defers every automatic action to the caller.
func NoOptions() Options { return Options{} }

func (o Options) shouldApply(tag action.Tag) bool {
	switch tag {
	case action.TagPeer:
		return o.RemovePeers
	case action.TagNakedSingle:
		return o.SolveNakedSingles
	case action.TagHiddenSingle:
		return o.SolveHiddenSingles
	case action.TagIntersectionRemove:
		return o.SolveIntersectionRemovals
	default:
		return true
	}
}

// ResultKind distinguishes the three shapes a ChangeResult can take.
type ResultKind int

const (
	// ResultNone means nothing changed.
	ResultNone ResultKind = iota
	// ResultValid means the mutation (and its cascade) applied cleanly.
	ResultValid
	// ResultInvalid means stop_on_error aborted on the first error.
	ResultInvalid
)

// Result is the outcome of applying one Action (and any automatic actions
// it triggers) to a Board.
type Result struct {
	Kind      ResultKind
	Before    board.Board
	After     board.Board
	Action    *action.Action
	Effects   *action.Effects
	Unapplied *action.Effects
}

// Changer applies Actions to a Board according to Options. None of its
// methods mutate the Board passed in.
type Changer struct {
	Options Options
}

// New returns a Changer configured with opts.
func New(opts Options) Changer {
	return Changer{Options: opts}
}

// SetGiven solves cell to known as a clue.
func (c Changer) SetGiven(b board.Board, cell sets.Cell, known sets.Known) Result {
	return c.Apply(b, action.New(action.TagGiven).WithSet(cell, known))
}

// SetKnown solves cell to one of its candidates.
func (c Changer) SetKnown(b board.Board, cell sets.Cell, known sets.Known) Result {
	return c.Apply(b, action.New(action.TagSolve).WithSet(cell, known))
}

// RemoveCandidate erases known from cell's candidates.
func (c Changer) RemoveCandidate(b board.Board, cell sets.Cell, known sets.Known) Result {
	return c.Apply(b, action.New(action.TagErase).WithErase(cell, sets.KnownSetOf(known)))
}

// Apply applies act to b and folds in any automatic cascade it triggers.
func (c Changer) Apply(b board.Board, act *action.Action) Result {
	after := b
	effects := action.NewEffects()
	changed := applyActionTo(&after, act, effects)

	if c.Options.StopOnError && effects.HasErrors() {
		return Result{Kind: ResultInvalid, Before: b, After: after, Action: act, Effects: effects}
	}
	return c.applyAllChanged(b, after, effects, changed)
}

// ApplyAll applies a ready-made Effects list (e.g. a strategy's output) to a
// board, folding in the automatic cascade it triggers in turn.
func (c Changer) ApplyAll(b board.Board, effects *action.Effects) Result {
	return c.applyAllChanged(b, b, effects, false)
}

func (c Changer) applyAllChanged(before, start board.Board, initial *action.Effects, changed bool) Result {
	good := start
	applying := initial
	unapplied := action.NewEffects()

	for len(applying.Actions) > 0 {
		next := action.NewEffects()
		for _, act := range applying.Actions {
			if !c.Options.shouldApply(act.Tag) {
				unapplied.AddAction(act)
				continue
			}
			maybe := good
			actChanged := applyActionTo(&maybe, act, next)
			changed = changed || actChanged
			if c.Options.StopOnError && next.HasErrors() {
				return Result{Kind: ResultInvalid, Before: before, After: maybe, Action: act, Effects: next}
			}
			good = maybe
		}

		if c.Options.SolveIntersectionRemovals && next.IsEmpty() {
			if found := strategy.PointingPairs(good, false); found != nil {
				next = found
			} else if found := strategy.BoxLineReductions(good, false); found != nil {
				next = found
			}
		}

		applying = next
	}

	if !changed {
		return Result{Kind: ResultNone}
	}
	return Result{Kind: ResultValid, Before: before, After: good, Unapplied: unapplied}
}

// applyActionTo applies a single action's erases (ascending cell, ascending
// known) then sets to board, recording any cascade into effects. Returns
// whether anything actually changed.
func applyActionTo(b *board.Board, act *action.Action, effects *action.Effects) bool {
	changed := false

	eraseCells := sortedCells(act.Erase)
	for _, c := range eraseCells {
		for _, k := range act.Erase[c].Knowns() {
			nb, ok := b.RemoveCandidate(c, k, effects)
			if ok {
				*b = nb
				changed = true
			}
		}
	}

	setCells := sortedCells(act.Set)
	for _, c := range setCells {
		k := act.Set[c]
		if v, solved := b.Value(c); solved && v == k {
			continue
		}
		var nb board.Board
		var ok bool
		if act.Tag == action.TagGiven {
			nb, ok = b.SetGiven(c, k, effects)
		} else {
			nb, ok = b.SetKnown(c, k, effects)
		}
		if ok {
			*b = nb
			changed = true
		}
	}

	return changed
}

func sortedCells[V any](m map[sets.Cell]V) []sets.Cell {
	out := make([]sets.Cell, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
