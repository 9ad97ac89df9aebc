package puzzleio

import (
	"strings"
	"testing"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestConsoleUsesDotsAndSpacesBetweenRows(t *testing.T) {
	b, _ := board.NewFromPacked(easyPuzzle)
	got := Console(b)
	if strings.Count(got, " ") != 8 {
		t.Fatalf("Console should separate 9 rows with 8 spaces, got %q", got)
	}
	if strings.Count(got, ".") == 0 {
		t.Fatal("Console should render unsolved cells as '.'")
	}
}

func TestURLUsesZerosAndNoSpaces(t *testing.T) {
	b, _ := board.NewFromPacked(easyPuzzle)
	got := URL(b)
	if strings.Contains(got, " ") {
		t.Fatal("URL should have no spaces")
	}
	if got != easyPuzzle {
		t.Fatalf("URL(b) = %q, want %q", got, easyPuzzle)
	}
}

func TestParseThenURLRoundTrips(t *testing.T) {
	b, ok := Parse("5 3 . 0 7 0 0 0 0\n6 0 0 1 9 5 0 0 0\n0 9 8 0 0 0 0 6 0\n8 0 0 0 6 0 0 0 3\n4 0 0 8 0 3 0 0 1\n7 0 0 0 2 0 0 0 6\n0 6 0 0 0 0 2 8 0\n0 0 0 4 1 9 0 0 5\n0 0 0 0 8 0 0 7 9\n")
	if !ok {
		t.Fatal("Parse rejected a well-formed space-separated puzzle")
	}
	if got := URL(b); got != easyPuzzle {
		t.Fatalf("round trip through Parse/URL = %q, want %q", got, easyPuzzle)
	}
}

func TestParseSkipsBordersAndUnderscores(t *testing.T) {
	b, ok := Parse("|5_3_._0_7_0_0_0_0|\n|6_0_0_1_9_5_0_0_0|\n|0_9_8_0_0_0_0_6_0|\n|8_0_0_0_6_0_0_0_3|\n|4_0_0_8_0_3_0_0_1|\n|7_0_0_0_2_0_0_0_6|\n|0_6_0_0_0_0_2_8_0|\n|0_0_0_4_1_9_0_0_5|\n|0_0_0_0_8_0_0_7_9|\n")
	if !ok {
		t.Fatal("Parse rejected a bordered puzzle")
	}
	if got := URL(b); got != easyPuzzle {
		t.Fatalf("Parse with borders = %q, want %q", got, easyPuzzle)
	}
}

func TestParseRejectsTooFewCells(t *testing.T) {
	_, ok := Parse("123456789123456789")
	if ok {
		t.Fatal("Parse should reject input with fewer than 81 cells")
	}
}

func TestWikiEncodesAGivenAsValuePlusOne(t *testing.T) {
	b := board.New()
	var effects action.Effects
	b, ok := b.SetGiven(sets.NewCell(0, 0), sets.NewKnown(5), &effects)
	if !ok {
		t.Fatal("SetGiven failed")
	}
	got := Wiki(b)
	if got[:2] != "11" {
		t.Fatalf("Wiki code for a given 5 at cell 0 = %q, want \"11\"", got[:2])
	}
}

func TestWikiEncodesAnUnsolvedCellAsCandidateBitmap(t *testing.T) {
	b := board.New()
	got := Wiki(b)
	if got[:2] != "vu" {
		t.Fatalf("Wiki code for a fresh cell's full candidate set = %q, want \"vu\"", got[:2])
	}
}

func TestGridHasBorderedOutput(t *testing.T) {
	b, _ := board.NewFromPacked(easyPuzzle)
	got := Grid(b)
	lines := strings.Split(got, "\n")
	if len(lines) != 13 {
		t.Fatalf("Grid should render 13 lines (4 borders + 9 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "+-") {
		t.Fatalf("Grid should start with a border line, got %q", lines[0])
	}
}
