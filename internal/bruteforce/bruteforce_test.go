package bruteforce

import (
	"strings"
	"testing"

	"sudoku-engine/internal/board"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
const easySolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestFindSolvesAUniquePuzzle(t *testing.T) {
	b, ok := board.NewFromPacked(easyPuzzle)
	if !ok {
		t.Fatalf("NewFromPacked rejected the puzzle")
	}

	res := Find(b, 2)
	if res.Status != Solved {
		t.Fatalf("Status = %v, want Solved", res.Status)
	}
	if res.Board.Packed() != easySolution {
		t.Fatalf("Board.Packed() = %q, want %q", res.Board.Packed(), easySolution)
	}
}

func TestFindReportsAlreadySolved(t *testing.T) {
	b, _ := board.NewFromPacked(easySolution)
	res := Find(b, 2)
	if res.Status != AlreadySolved {
		t.Fatalf("Status = %v, want AlreadySolved", res.Status)
	}
}

// keepFirstNGivens blanks out every digit in s after the first n, in reading
// order, replacing it with '.'.
func keepFirstNGivens(s string, n int) string {
	var sb strings.Builder
	kept := 0
	for _, r := range s {
		if r >= '1' && r <= '9' {
			kept++
			if kept > n {
				sb.WriteByte('.')
				continue
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestFindRejectsTooFewGivens(t *testing.T) {
	sparse := keepFirstNGivens(easyPuzzle, 10)
	b, _ := board.NewFromPacked(sparse)
	if b.Knowns().Len() >= 17 {
		t.Fatalf("test setup error: board has %d givens, want < 17", b.Knowns().Len())
	}

	res := Find(b, 2)
	if res.Status != TooFewKnowns {
		t.Fatalf("Status = %v, want TooFewKnowns", res.Status)
	}
}

func TestHasUniqueSolutionTrueForAUniquePuzzle(t *testing.T) {
	b, _ := board.NewFromPacked(easyPuzzle)
	if !HasUniqueSolution(b) {
		t.Fatal("HasUniqueSolution should be true for a known-unique puzzle")
	}
}

func TestHasUniqueSolutionFalseForAnUnderdeterminedBoard(t *testing.T) {
	b := board.New()
	if HasUniqueSolution(b) {
		t.Fatal("HasUniqueSolution should be false for an empty board (many solutions)")
	}
}
