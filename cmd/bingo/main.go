// Command bingo generates a batch of puzzles and tabulates how many land at
// each difficulty tier, exercising internal/generator, internal/finder, and
// internal/logicalsolver end to end. Grounded on the original Rust
// implementation's commands/bingo.rs batch-diagnostic CLI shape, adapted
// from a single-puzzle Bowman's-Bingo trace into a difficulty histogram
// since spec.md's Non-goals exclude interactive/step tracing but not a
// pipeline smoke-test tool.
package main

import (
	"flag"
	"fmt"
	"sort"
	"time"

	"sudoku-engine/internal/changer"
	"sudoku-engine/internal/finder"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/logicalsolver"
	"sudoku-engine/internal/strategy"
)

func main() {
	count := flag.Int("n", 500, "Number of puzzles to sample")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	clues := flag.Int("clues", 24, "Target clue count to carve toward")
	budget := flag.Duration("budget", 3*time.Second, "Per-puzzle carving time budget")
	flag.Parse()

	ch := changer.New(changer.AllOptions())
	registry := strategy.NewRegistry()

	histogram := make(map[string]int)
	start := time.Now()

	for i := 0; i < *count; i++ {
		seed := *startSeed + int64(i)
		solved, ok := generator.Generate(ch, seed)
		if !ok {
			histogram["canceled"]++
			continue
		}
		result := finder.Find(ch, registry, solved, *clues, *budget, seed)
		resolution := logicalsolver.Solve(result.Board, ch, registry, nil)
		if resolution.Kind != logicalsolver.Solved {
			histogram["unsolved"]++
			continue
		}
		histogram[resolution.Difficulty]++
	}

	elapsed := time.Since(start)
	tiers := make([]string, 0, len(histogram))
	for tier := range histogram {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)

	fmt.Printf("sampled %d puzzles in %v\n", *count, elapsed)
	for _, tier := range tiers {
		fmt.Printf("  %-14s %d\n", tier, histogram[tier])
	}
}
