package sets

// House is a row, column, or block: one of the 27 groups of nine cells that
// must contain each digit exactly once.
type House struct {
	Shape Shape
	Coord Coord
}

// NewHouse builds a House, panicking if coord is out of range.
func NewHouse(shape Shape, coord Coord) House {
	if !coord.Valid() {
		panic("sets: house coord out of range")
	}
	return House{Shape: shape, Coord: coord}
}

// Cells returns the nine member cells of h, precomputed at init time.
func (h House) Cells() CellSet {
	return houseCellsTable[h.Shape][h.Coord]
}

// CellAt returns the member cell at the given within-house position.
func (h House) CellAt(pos Coord) Cell {
	return houseMembersTable[h.Shape][h.Coord][pos]
}

func (h House) String() string {
	switch h.Shape {
	case Row:
		return string(rune(rowLetters[h.Coord])) + " row"
	case Column:
		return h.Coord.String() + " column"
	default:
		return "block " + h.Coord.String()
	}
}

var (
	houseCellsTable   [3][gridSize]CellSet
	houseMembersTable [3][gridSize][gridSize]Cell
)

func init() {
	for c := Cell(0); c < CellCount; c++ {
		for _, shape := range AllShapes {
			h := CellHouse(c, shape)
			houseCellsTable[shape][h.Coord] = houseCellsTable[shape][h.Coord].With(c)
		}
	}
	for shape := range houseMembersTable {
		for coord := 0; coord < gridSize; coord++ {
			cells := houseCellsTable[shape][coord].Cells()
			for pos, cell := range cells {
				houseMembersTable[shape][coord][pos] = cell
			}
		}
	}
}

// AllHouses returns the 27 houses in (Row, Column, Block) x Coord order.
func AllHouses() []House {
	out := make([]House, 0, 27)
	for _, shape := range AllShapes {
		for coord := 0; coord < gridSize; coord++ {
			out = append(out, House{Shape: shape, Coord: Coord(coord)})
		}
	}
	return out
}
