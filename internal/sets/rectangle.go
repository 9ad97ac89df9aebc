package sets

// Rectangle is four cells forming axis-aligned corners: two rows crossed
// with two columns. BlockCount is 1 if all four corners share a block, 2 if
// the two blocks touched lie in the same block-band or block-stack, or 4 if
// they are diagonal from each other.
type Rectangle struct {
	TopLeft     Cell
	TopRight    Cell
	BottomLeft  Cell
	BottomRight Cell
	Cells       CellSet
	BlockCount  int
}

// NewRectangle builds the Rectangle with corners topLeft and bottomRight.
func NewRectangle(topLeft, bottomRight Cell) Rectangle {
	topRight := NewCell(topLeft.Row(), bottomRight.Column())
	bottomLeft := NewCell(bottomRight.Row(), topLeft.Column())
	cells := CellSetOf(topLeft, topRight, bottomLeft, bottomRight)

	tlBlock := topLeft.Block()
	brBlock := bottomRight.Block()
	var blockCount int
	switch {
	case tlBlock == brBlock:
		blockCount = 1
	case tlBlock%boxSize == brBlock%boxSize || tlBlock/boxSize == brBlock/boxSize:
		blockCount = 2
	default:
		blockCount = 4
	}

	return Rectangle{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
		Cells:       cells,
		BlockCount:  blockCount,
	}
}

// WithOrigin returns a copy of r relabeled so that origin becomes TopLeft.
// origin must be one of r's four corners; any other value returns r unchanged.
func (r Rectangle) WithOrigin(origin Cell) Rectangle {
	switch origin {
	case r.BottomRight:
		return Rectangle{
			TopLeft: r.BottomRight, TopRight: r.BottomLeft,
			BottomLeft: r.TopRight, BottomRight: r.TopLeft,
			Cells: r.Cells, BlockCount: r.BlockCount,
		}
	case r.TopRight:
		return Rectangle{
			TopLeft: r.TopRight, TopRight: r.TopLeft,
			BottomLeft: r.BottomRight, BottomRight: r.BottomLeft,
			Cells: r.Cells, BlockCount: r.BlockCount,
		}
	case r.BottomLeft:
		return Rectangle{
			TopLeft: r.BottomLeft, TopRight: r.BottomRight,
			BottomLeft: r.TopLeft, BottomRight: r.TopRight,
			Cells: r.Cells, BlockCount: r.BlockCount,
		}
	default:
		return r
	}
}

func (r Rectangle) String() string {
	return r.TopLeft.Label() + " " + r.TopRight.Label() + " " + r.BottomLeft.Label() + " " + r.BottomRight.Label()
}

// RectangleIter enumerates every two-block axis-aligned rectangle exactly
// once, in a stable order: horizontal band pairs first, then vertical stack
// pairs, each carrying its 9 block-pairs x 27 cell-pairs.
type RectangleIter struct {
	horizVert int
	block     int
	cell      int
	done      bool
}

// NewRectangleIter returns a fresh iterator positioned before the first rectangle.
func NewRectangleIter() *RectangleIter {
	return &RectangleIter{}
}

// Next returns the next rectangle and true, or a zero Rectangle and false
// once exhausted.
func (it *RectangleIter) Next() (Rectangle, bool) {
	if it.done || it.horizVert == 2 {
		it.done = true
		return Rectangle{}, false
	}

	fromBlock, toBlock := rectBlocks[it.horizVert][it.block][0], rectBlocks[it.horizVert][it.block][1]
	coords := rectCellCoords[it.horizVert][it.cell]
	tl := blockCellAt(fromBlock, coords[0])
	br := blockCellAt(toBlock, coords[1])
	rect := NewRectangle(tl, br)

	it.cell++
	if it.cell == 27 {
		it.cell = 0
		it.block++
		if it.block == 9 {
			it.block = 0
			it.horizVert++
		}
	}
	return rect, true
}

// AllRectangles collects every two-block rectangle via RectangleIter.
func AllRectangles() []Rectangle {
	it := NewRectangleIter()
	var out []Rectangle
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func blockCellAt(block int, coord Coord) Cell {
	return House{Shape: Block, Coord: Coord(block)}.CellAt(coord)
}

// rectBlocks[dir][i] is the (from, to) block-coord pair for band/stack i.
var rectBlocks = [2][9][2]int{
	// horizontal: blocks sharing a block-row band
	{
		{0, 1}, {0, 2}, {1, 2},
		{3, 4}, {3, 5}, {4, 5},
		{6, 7}, {6, 8}, {7, 8},
	},
	// vertical: blocks sharing a block-column stack
	{
		{0, 3}, {0, 6}, {3, 6},
		{1, 4}, {1, 7}, {4, 7},
		{2, 5}, {2, 8}, {5, 8},
	},
}

// rectCellCoords[dir][i] is the (top-left, bottom-right) in-block coord pair
// for cell-combination i, shared across every block-pair in that direction.
var rectCellCoords = [2][27][2]Coord{
	horizontalCellCoords(),
	verticalCellCoords(),
}

func horizontalCellCoords() [27][2]Coord {
	raw := [27][2][2]int{
		{{0, 3}, {0, 3}}, {{0, 3}, {1, 4}}, {{0, 3}, {2, 5}},
		{{0, 6}, {0, 6}}, {{0, 6}, {1, 7}}, {{0, 6}, {2, 8}},
		{{3, 6}, {3, 6}}, {{3, 6}, {4, 7}}, {{3, 6}, {5, 8}},
		{{1, 4}, {0, 3}}, {{1, 4}, {1, 4}}, {{1, 4}, {2, 5}},
		{{1, 7}, {0, 6}}, {{1, 7}, {1, 7}}, {{1, 7}, {2, 8}},
		{{4, 7}, {3, 6}}, {{4, 7}, {4, 7}}, {{4, 7}, {5, 8}},
		{{2, 5}, {0, 3}}, {{2, 5}, {1, 4}}, {{2, 5}, {2, 5}},
		{{2, 8}, {0, 6}}, {{2, 8}, {1, 7}}, {{2, 8}, {2, 8}},
		{{5, 8}, {3, 6}}, {{5, 8}, {4, 7}}, {{5, 8}, {5, 8}},
	}
	return coordPairsFromRaw(raw)
}

func verticalCellCoords() [27][2]Coord {
	raw := [27][2][2]int{
		{{0, 1}, {0, 1}}, {{0, 1}, {3, 4}}, {{0, 1}, {6, 7}},
		{{0, 2}, {0, 2}}, {{0, 2}, {3, 5}}, {{0, 2}, {6, 8}},
		{{1, 2}, {1, 2}}, {{1, 2}, {4, 5}}, {{1, 2}, {7, 8}},
		{{3, 4}, {0, 1}}, {{3, 4}, {3, 4}}, {{3, 4}, {6, 7}},
		{{3, 5}, {0, 2}}, {{3, 5}, {3, 5}}, {{3, 5}, {6, 8}},
		{{4, 5}, {1, 2}}, {{4, 5}, {4, 5}}, {{4, 5}, {7, 8}},
		{{6, 7}, {0, 1}}, {{6, 7}, {3, 4}}, {{6, 7}, {6, 7}},
		{{6, 8}, {0, 2}}, {{6, 8}, {3, 5}}, {{6, 8}, {6, 8}},
		{{7, 8}, {1, 2}}, {{7, 8}, {4, 5}}, {{7, 8}, {7, 8}},
	}
	return coordPairsFromRaw(raw)
}

// coordPairsFromRaw takes (topLeftCoord, bottomRightCoord) pairs where each
// side is itself an (in-block-row, in-block-col)-style pair encoded as the
// first component only (the second component of each inner pair mirrors it
// for the opposite corner); only the top-left coord of the first pair and
// the bottom-right coord of the second pair are needed to build a rectangle.
func coordPairsFromRaw(raw [27][2][2]int) [27][2]Coord {
	var out [27][2]Coord
	for i, pair := range raw {
		tl := pair[0][0]
		br := pair[1][1]
		out[i] = [2]Coord{Coord(tl), Coord(br)}
	}
	return out
}
