// Package action defines the outputs strategies produce and the errors a
// Board can report while applying them. Actions and Effects are plain data:
// strategies never mutate a Board directly, they only describe the mutation
// the Changer should perform.
package action

import (
	"fmt"

	"sudoku-engine/internal/sets"
)

// Tag identifies which strategy (or trivial board mechanism) produced an
// Action.
type Tag string

const (
	TagGiven              Tag = "given"
	TagSolve              Tag = "solve"
	TagErase              Tag = "erase"
	TagPeer               Tag = "peer"
	TagNakedSingle        Tag = "naked_single"
	TagHiddenSingle       Tag = "hidden_single"
	TagIntersectionRemove Tag = "intersection_removal"
)

// Clue is an informational (cell, known) pair attached to an Action to
// explain why it fired. Clues never affect application.
type Clue struct {
	Cell  sets.Cell
	Known sets.Known
}

// Action is one strategy's proposed mutation: a set of cells to solve and a
// set of candidates to erase, plus the strategy tag that produced it and any
// explanatory clues.
type Action struct {
	Tag   Tag
	Set   map[sets.Cell]sets.Known
	Erase map[sets.Cell]sets.KnownSet
	Clues []Clue
}

// New returns an empty Action tagged with tag.
func New(tag Tag) *Action {
	return &Action{
		Tag:   tag,
		Set:   make(map[sets.Cell]sets.Known),
		Erase: make(map[sets.Cell]sets.KnownSet),
	}
}

// IsEmpty reports whether the action has no sets and no erases.
func (a *Action) IsEmpty() bool {
	return len(a.Set) == 0 && len(a.Erase) == 0
}

// WithSet records that cell c should be solved to known k.
func (a *Action) WithSet(c sets.Cell, k sets.Known) *Action {
	a.Set[c] = k
	return a
}

// WithErase records that candidates ks should be removed from cell c.
func (a *Action) WithErase(c sets.Cell, ks sets.KnownSet) *Action {
	if ks.IsEmpty() {
		return a
	}
	a.Erase[c] = a.Erase[c].Union(ks)
	return a
}

// WithClue attaches an explanatory clue.
func (a *Action) WithClue(c sets.Cell, k sets.Known) *Action {
	a.Clues = append(a.Clues, Clue{Cell: c, Known: k})
	return a
}

// ErrorKind classifies why a Board rejected or was invalidated by a mutation.
type ErrorKind int

const (
	NotCandidate ErrorKind = iota
	AlreadySolved
	UnsolvableCell
	UnsolvableHouse
	DeadlyRectangle
)

func (k ErrorKind) String() string {
	switch k {
	case NotCandidate:
		return "not a candidate"
	case AlreadySolved:
		return "already solved"
	case UnsolvableCell:
		return "unsolvable cell"
	case UnsolvableHouse:
		return "unsolvable house"
	case DeadlyRectangle:
		return "deadly rectangle"
	default:
		return "unknown error"
	}
}

// Error reports a single contradiction or rejected mutation discovered while
// applying an Action to a Board.
type Error struct {
	Kind  ErrorKind
	Cell  sets.Cell
	Known sets.Known
	House sets.House
	Rect  sets.Rectangle
}

func (e Error) Error() string {
	switch e.Kind {
	case NotCandidate:
		return fmt.Sprintf("%s is not a candidate at %s", e.Known, e.Cell.Label())
	case AlreadySolved:
		return fmt.Sprintf("%s is already solved", e.Cell.Label())
	case UnsolvableCell:
		return fmt.Sprintf("%s has no remaining candidates", e.Cell.Label())
	case UnsolvableHouse:
		return fmt.Sprintf("%s has no cell left for %s", e.House, e.Known)
	case DeadlyRectangle:
		return fmt.Sprintf("placing a known would create a deadly rectangle at %s", e.Rect)
	default:
		return "sudoku: unknown board error"
	}
}

// Effects is the ordered record of what happened (or failed to happen) while
// applying one or more Actions: the actions actually taken, plus any errors
// encountered along the way.
type Effects struct {
	Actions []*Action
	Errors  []Error
}

// NewEffects returns an empty Effects.
func NewEffects() *Effects {
	return &Effects{}
}

// AddAction appends action to the list, unless it is empty. Returns whether
// it was added.
func (e *Effects) AddAction(a *Action) bool {
	if a == nil || a.IsEmpty() {
		return false
	}
	e.Actions = append(e.Actions, a)
	return true
}

// AddError appends err to the list.
func (e *Effects) AddError(err Error) {
	e.Errors = append(e.Errors, err)
}

// HasErrors reports whether any error was recorded.
func (e *Effects) HasErrors() bool {
	return len(e.Errors) > 0
}

// IsEmpty reports whether no actions and no errors were recorded.
func (e *Effects) IsEmpty() bool {
	return len(e.Actions) == 0 && len(e.Errors) == 0
}

// Merge appends other's actions and errors onto e.
func (e *Effects) Merge(other *Effects) {
	if other == nil {
		return
	}
	e.Actions = append(e.Actions, other.Actions...)
	e.Errors = append(e.Errors, other.Errors...)
}
