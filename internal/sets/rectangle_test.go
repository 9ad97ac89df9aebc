package sets

import "testing"

func TestAllRectanglesCountAndBlockCount(t *testing.T) {
	rects := AllRectangles()
	if len(rects) != 486 {
		t.Fatalf("AllRectangles() len = %d, want 486", len(rects))
	}
	for _, r := range rects {
		if r.BlockCount != 2 {
			t.Fatalf("rectangle %+v has BlockCount %d, want 2 (the iterator only emits same-band/stack pairs)", r, r.BlockCount)
		}
	}
}

func TestNewRectangleBlockCounts(t *testing.T) {
	tests := []struct {
		name           string
		topLeft, botRt Cell
		want           int
	}{
		{"same block", NewCell(0, 0), NewCell(1, 1), 1},
		{"same band, different blocks", NewCell(0, 0), NewCell(1, 3), 2},
		{"same stack, different blocks", NewCell(0, 0), NewCell(3, 1), 2},
		{"diagonal blocks", NewCell(0, 0), NewCell(3, 3), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRectangle(tt.topLeft, tt.botRt)
			if r.BlockCount != tt.want {
				t.Errorf("BlockCount = %d, want %d", r.BlockCount, tt.want)
			}
		})
	}
}

func TestRectangleCellsAreTheFourCorners(t *testing.T) {
	r := NewRectangle(NewCell(1, 1), NewCell(4, 4))
	want := CellSetOf(NewCell(1, 1), NewCell(1, 4), NewCell(4, 1), NewCell(4, 4))
	if !r.Cells.Equals(want) {
		t.Fatalf("Cells = %+v, want %+v", r.Cells, want)
	}
}
