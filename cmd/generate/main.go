// Command generate batches full-grid generation and minimal-clue carving
// across a worker pool, writing a compact JSON puzzle file. Grounded on the
// teacher's cmd/generate/main.go worker-pool shape (flag-configured count/
// workers/seed, channel-distributed work, atomic progress counter), rewired
// from internal/sudoku/dp onto internal/generator + internal/finder +
// internal/logicalsolver so each puzzle's difficulty label reflects what the
// logical solver actually needed, not just its clue count.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/changer"
	"sudoku-engine/internal/finder"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/logicalsolver"
	"sudoku-engine/internal/puzzleio"
	"sudoku-engine/internal/strategy"
	"sudoku-engine/pkg/constants"
)

// CompactPuzzle stores one solved grid plus, for each difficulty tier
// reached while carving, the cell indices that remain as givens.
type CompactPuzzle struct {
	S string           `json:"s"`
	G map[string][]int `json:"g"`
}

// PuzzleFile is the top-level structure for the output JSON file.
type PuzzleFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

var targetCluesByTier = map[string]int{
	constants.TierBasic:      40,
	constants.TierTough:      32,
	constants.TierDiabolical: 27,
	constants.TierExtreme:    23,
}

func main() {
	count := flag.Int("n", 10000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	puzzles := make([]CompactPuzzle, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(int(*count)-int(g)) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := changer.New(changer.AllOptions())
			registry := strategy.NewRegistry()
			for idx := range work {
				seed := *startSeed + int64(idx)
				puzzles[idx] = generatePuzzle(ch, registry, seed)
				atomic.AddInt64(&generated, 1)
			}
		}()
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	fmt.Printf("Writing to %s...\n", *output)
	file := PuzzleFile{Version: 1, Count: *count, Puzzles: puzzles}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}

func generatePuzzle(ch changer.Changer, registry *strategy.Registry, seed int64) CompactPuzzle {
	solved, ok := generator.Generate(ch, seed)
	if !ok {
		return CompactPuzzle{G: map[string][]int{}}
	}

	givens := make(map[string][]int)
	for _, target := range targetCluesByTier {
		result := finder.Find(ch, registry, solved, target, 2*time.Second, seed)
		resolution := logicalsolver.Solve(result.Board, ch, registry, nil)
		if resolution.Kind != logicalsolver.Solved {
			continue
		}
		givens[resolution.Difficulty] = cellIndices(result.Board)
	}

	return CompactPuzzle{S: puzzleio.URL(solved), G: givens}
}

func cellIndices(b board.Board) []int {
	packed := b.Packed()
	var out []int
	for i, r := range packed {
		if r != '.' {
			out = append(out, i)
		}
	}
	return out
}
