// Command find generates full grids and carves each down to a minimal-clue
// puzzle, printing the packed puzzle, its solution, and the difficulty tier
// the logical solver needed. Grounded on the teacher's cmd/generate.go
// worker-pool shape, rewired onto internal/generator + internal/finder.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku-engine/internal/changer"
	"sudoku-engine/internal/finder"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/logicalsolver"
	"sudoku-engine/internal/puzzleio"
	"sudoku-engine/internal/strategy"
)

func main() {
	count := flag.Int("n", 100, "Number of puzzles to find")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	clues := flag.Int("clues", 24, "Target clue count to stop carving at")
	budget := flag.Duration("budget", 3*time.Second, "Per-puzzle carving time budget")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	work := make(chan int64, *count)
	for i := 0; i < *count; i++ {
		work <- *startSeed + int64(i)
	}
	close(work)

	results := make(chan string, *count)
	var wg sync.WaitGroup
	var found int64

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := changer.New(changer.AllOptions())
			registry := strategy.NewRegistry()
			for seed := range work {
				solved, ok := generator.Generate(ch, seed)
				if !ok {
					continue
				}
				result := finder.Find(ch, registry, solved, *clues, *budget, seed)
				resolution := logicalsolver.Solve(result.Board, ch, registry, nil)
				results <- fmt.Sprintf("%s solution=%s clues=%d difficulty=%s",
					puzzleio.URL(result.Board), puzzleio.URL(solved),
					result.Board.Knowns().Len(), resolution.Difficulty)
				atomic.AddInt64(&found, 1)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for line := range results {
		fmt.Println(line)
	}
}
