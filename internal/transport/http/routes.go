// Package http is the ambient transport collaborator: a thin gin surface
// demonstrating the deduction core's external interfaces (generate a
// puzzle, analyze a board's difficulty, take one hint step). It owns no
// persistence and no accounts; every handler is a direct call into
// internal/board, internal/changer, internal/logicalsolver,
// internal/bruteforce, and internal/generator.
package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/bruteforce"
	"sudoku-engine/internal/changer"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/logicalsolver"
	"sudoku-engine/internal/puzzleio"
	"sudoku-engine/internal/strategy"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var registry = strategy.NewRegistry()

// RegisterRoutes wires the demo endpoints onto r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/generate", generateHandler(cfg))
		api.POST("/analyze", analyzeHandler)
		api.POST("/hint", hintHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

type generateRequest struct {
	Seed int64 `json:"seed"`
}

func generateHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		_ = c.ShouldBindJSON(&req)
		seed := req.Seed
		if seed == 0 {
			seed = cfg.GeneratorSeed
		}

		solved, ok := generator.Generate(changer.New(changer.AllOptions()), seed)
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation canceled"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"solution": puzzleio.URL(solved),
			"seed":     seed,
		})
	}
}

type boardRequest struct {
	Puzzle string `json:"puzzle"`
}

func parseBoard(c *gin.Context) (board.Board, bool) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return board.Board{}, false
	}
	b, ok := board.NewFromPacked(req.Puzzle)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puzzle string"})
		return board.Board{}, false
	}
	return b, true
}

func analyzeHandler(c *gin.Context) {
	b, ok := parseBoard(c)
	if !ok {
		return
	}

	resolution := logicalsolver.Solve(b, changer.New(changer.AllOptions()), registry, nil)

	resp := gin.H{
		"difficulty": resolution.Difficulty,
		"applied":    resolution.Applied,
	}
	switch resolution.Kind {
	case logicalsolver.Solved:
		resp["status"] = "solved"
		resp["solution"] = puzzleio.URL(resolution.Board)
	case logicalsolver.Unsolved:
		resp["status"] = "unsolved"
		result := bruteforce.Find(b, 2)
		resp["brute_force_status"] = bruteforceStatusLabel(result.Status)
	case logicalsolver.Failed:
		resp["status"] = "invalid"
	}

	c.JSON(http.StatusOK, resp)
}

func hintHandler(c *gin.Context) {
	b, ok := parseBoard(c)
	if !ok {
		return
	}
	if b.IsSolved() {
		c.JSON(http.StatusOK, gin.H{"status": "solved"})
		return
	}

	for _, d := range registry.Ordered() {
		if !d.Enabled {
			continue
		}
		effects := d.Run(b, true)
		if effects == nil || effects.IsEmpty() {
			continue
		}
		c.JSON(http.StatusOK, gin.H{
			"strategy": d.Name,
			"tier":     d.Tier,
			"clues":    clueSummary(effects),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "no_hint_found"})
}

func clueSummary(effects *action.Effects) []string {
	var out []string
	for _, a := range effects.Actions {
		for _, clue := range a.Clues {
			out = append(out, fmt.Sprintf("%s=%s", clue.Cell.Label(), clue.Known))
		}
	}
	return out
}

func bruteforceStatusLabel(s bruteforce.Status) string {
	switch s {
	case bruteforce.AlreadySolved:
		return "already_solved"
	case bruteforce.TooFewKnowns:
		return "too_few_knowns"
	case bruteforce.UnsolvableCells:
		return "unsolvable_cells"
	case bruteforce.Canceled:
		return "canceled"
	case bruteforce.Unsolvable:
		return "unsolvable"
	case bruteforce.Solved:
		return "solved"
	case bruteforce.MultipleSolutions:
		return "multiple_solutions"
	default:
		return "unknown"
	}
}
