// Package timing records how long the logical solver spends in each
// strategy and how many findings it produced, and renders a summary table
// for CLI tools. Grounded on kpitt-sudoku's internal/solver/print.go
// fatih/color convention.
package timing

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
)

// Entry is one strategy's accumulated statistics across a solve.
type Entry struct {
	Strategy string
	Found    int
	Elapsed  time.Duration
}

// Reporter receives one Add call per strategy invocation.
type Reporter interface {
	Add(strategy string, found int, elapsed time.Duration)
}

// Recorder is an in-memory Reporter that accumulates totals per strategy.
type Recorder struct {
	byStrategy map[string]*Entry
	order      []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{byStrategy: make(map[string]*Entry)}
}

// Add folds one strategy invocation's stats into the running totals.
func (r *Recorder) Add(strategy string, found int, elapsed time.Duration) {
	e, ok := r.byStrategy[strategy]
	if !ok {
		e = &Entry{Strategy: strategy}
		r.byStrategy[strategy] = e
		r.order = append(r.order, strategy)
	}
	e.Found += found
	e.Elapsed += elapsed
}

// Entries returns the recorded entries in first-seen order.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.byStrategy[name])
	}
	return out
}

// BySlowest returns the recorded entries sorted by total time descending.
func (r *Recorder) BySlowest() []Entry {
	out := r.Entries()
	sort.Slice(out, func(i, j int) bool { return out[i].Elapsed > out[j].Elapsed })
	return out
}

// PrintSummary writes a colorized table of entries to w: strategy name in
// cyan, a positive find count in green, elapsed time in yellow.
func PrintSummary(w io.Writer, entries []Entry) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for _, e := range entries {
		cyan.Fprintf(w, "%-28s", e.Strategy)
		if e.Found > 0 {
			green.Fprintf(w, " found=%-4d", e.Found)
		} else {
			fmt.Fprintf(w, " found=%-4d", e.Found)
		}
		yellow.Fprintf(w, " elapsed=%s\n", e.Elapsed)
	}
}
