// Package puzzleio formats and parses the textual puzzle representations
// described by spec.md's SudokuWiki-compatible string and ASCII-grid
// formats. Grounded on original_source/src/io/format.rs and io/parse.rs,
// reworked onto board.Board and the byte-oriented string building Go idiom
// favors over the Rust original's String concatenation.
package puzzleio

import (
	"strconv"
	"strings"

	"sudoku-engine/internal/action"
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/sets"
)

// Packed renders b as a single-line packed string, one character per cell
// in row-major order, using unknown for any unsolved cell. spaces adds a
// space between rows for readability.
func Packed(b board.Board, unknown byte, spaces bool) string {
	var sb strings.Builder
	sb.Grow(sets.CellCount + 9)
	for _, row := range sets.AllHouses()[:9] {
		if spaces && row.Coord > 0 {
			sb.WriteByte(' ')
		}
		for _, c := range row.Cells().Cells() {
			if v, ok := b.Value(c); ok {
				sb.WriteByte(byte('0' + v.Value()))
			} else {
				sb.WriteByte(unknown)
			}
		}
	}
	return sb.String()
}

// Console renders b the way a terminal session prints a puzzle: '.' for
// unsolved cells, spaced rows.
func Console(b board.Board) string { return Packed(b, '.', true) }

// URL renders b with '0' for unsolved cells, the format used when a puzzle
// is embedded in a query string.
func URL(b board.Board) string { return Packed(b, '0', false) }

// Wiki renders b into the two-characters-per-cell base-32 encoding
// https://www.sudokuwiki.org/Sudoku_String_Definitions uses: a solved given
// encodes as (1<<value)+1, a solved non-given as 1<<value, and an unsolved
// cell encodes its candidate bitmap shifted left by one.
func Wiki(b board.Board) string {
	var sb strings.Builder
	sb.Grow(sets.CellCount * 2)
	for c := sets.Cell(0); c < sets.CellCount; c++ {
		var value int
		if v, ok := b.Value(c); ok {
			value = 1 << uint(v.Value())
			if b.Givens().Has(c) {
				value++
			}
		} else {
			value = int(b.Candidates(c)) << 1
		}
		if value < 32 {
			sb.WriteByte('0')
			sb.WriteByte(base32Digit(value))
		} else {
			sb.WriteByte(base32Digit(value / 32))
			sb.WriteByte(base32Digit(value % 32))
		}
	}
	return sb.String()
}

func base32Digit(v int) byte {
	const digits = "0123456789abcdefghijklmnopqrstuv"
	return digits[v]
}

// Grid renders b as a bordered ASCII grid, one cell per column, showing the
// solved value or the full candidate list for every unsolved cell.
func Grid(b board.Board) string {
	columns := sets.AllHouses()[9:18]
	widths := make([]int, 9)
	for i, col := range columns {
		width := 1
		for _, c := range col.Cells().Cells() {
			if !b.Knowns().Has(c) {
				if n := b.Candidates(c).Len(); n > width {
					width = n
				}
			}
		}
		widths[i] = width
	}

	var border strings.Builder
	for i := 0; i < 9; i++ {
		if i%3 == 0 {
			border.WriteString("+-")
		}
		border.WriteString(strings.Repeat("-", widths[i]+1))
		if i == 8 {
			border.WriteString("+")
		}
	}

	rows := make([]strings.Builder, 9)
	for colIdx, col := range columns {
		for r, c := range col.Cells().Cells() {
			var label string
			if v, ok := b.Value(c); ok {
				label = strconv.Itoa(v.Value())
			} else {
				for _, k := range b.Candidates(c).Knowns() {
					label += strconv.Itoa(k.Value())
				}
			}
			if colIdx%3 == 0 {
				rows[r].WriteString("| ")
			}
			rows[r].WriteString(label)
			rows[r].WriteString(strings.Repeat(" ", widths[colIdx]-len(label)+1))
			if colIdx == 8 {
				rows[r].WriteString("|")
			}
		}
	}

	lines := make([]string, 0, 13)
	for i := 0; i < 9; i++ {
		if i%3 == 0 {
			lines = append(lines, border.String())
		}
		lines = append(lines, rows[i].String())
	}
	lines = append(lines, border.String())
	return strings.Join(lines, "\n")
}

// Parse builds a board from input, setting a given for every '1'-'9'
// character encountered and skipping whitespace, '|', and '_' so callers
// can format puzzle strings for readability. Any other rune leaves the
// corresponding cell unsolved. Cells are assigned in the order digits and
// placeholders are encountered, not by counting skipped characters, so
// blank-separated rows of exactly nine meaningful characters each parse
// correctly regardless of indentation.
func Parse(input string) (board.Board, bool) {
	b := board.New()
	c := 0
	ok := true
	for _, r := range input {
		switch {
		case r == ' ' || r == '\r' || r == '\n' || r == '\t' || r == '|' || r == '_':
			continue
		case r >= '1' && r <= '9':
			if c >= sets.CellCount {
				break
			}
			k := sets.NewKnown(int(r - '0'))
			var effects action.Effects
			next, applied := b.SetGiven(sets.Cell(c), k, &effects)
			if !applied || effects.HasErrors() {
				ok = false
			} else {
				b = next
			}
			c++
		default:
			c++
		}
	}
	return b, ok && c >= sets.CellCount
}
