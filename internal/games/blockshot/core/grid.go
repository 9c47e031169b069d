package core

import "math"

// LossRow is the row watched by the game-over monitor.
// Row 0 sits on the shooter's side; the far wall is row Rows-1.
const LossRow = 0

// Coord identifies a grid cell.
type Coord struct {
	Row int
	Col int
}

// At is a shorthand constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Grid is a fixed-size matrix of optional blocks.
// Cells are stored in row-major order: index = row*Cols + col.
// Every accessor is bounds-checked: reads outside the grid see an empty
// cell and writes outside the grid are rejected.
type Grid struct {
	Rows  int
	Cols  int
	cells []*Block
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]*Block, rows*cols),
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Get returns the block at (row, col), or nil if the cell is empty or out
// of range. The returned pointer aliases the cell so merges can update it
// in place.
func (g *Grid) Get(row, col int) *Block {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[g.index(row, col)]
}

// Occupied reports whether (row, col) holds a block.
func (g *Grid) Occupied(row, col int) bool {
	return g.Get(row, col) != nil
}

// Set stores b at (row, col). A nil block empties the cell.
// Returns false, without writing, when the coordinate is out of range.
func (g *Grid) Set(row, col int, b *Block) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[g.index(row, col)] = b
	return true
}

// Place moves a block value into the grid. The grid owns the copy.
func (g *Grid) Place(row, col int, b Block) bool {
	return g.Set(row, col, &b)
}

// Remove empties (row, col) and returns the block that was there, if any.
func (g *Grid) Remove(row, col int) *Block {
	b := g.Get(row, col)
	if b != nil {
		g.cells[g.index(row, col)] = nil
	}
	return b
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

// RowOccupied reports whether any cell in the row holds a block.
func (g *Grid) RowOccupied(row int) bool {
	for col := range g.Cols {
		if g.Occupied(row, col) {
			return true
		}
	}
	return false
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, b := range g.cells {
		if b != nil {
			count++
		}
	}
	return count
}

// FilledCoords returns every occupied coordinate, ordered by row then column.
func (g *Grid) FilledCoords() []Coord {
	coords := make([]Coord, 0)
	for row := range g.Rows {
		for col := range g.Cols {
			if g.Occupied(row, col) {
				coords = append(coords, At(row, col))
			}
		}
	}
	return coords
}

// Clone returns a deep copy of the grid. Blocks are copied, not shared.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Rows, g.Cols)
	for i, b := range g.cells {
		if b != nil {
			cp := *b
			clone.cells[i] = &cp
		}
	}
	return clone
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, b := range g.cells {
		o := other.cells[i]
		if (b == nil) != (o == nil) {
			return false
		}
		if b != nil && *b != *o {
			return false
		}
	}
	return true
}

// Geometry maps continuous pixel coordinates onto grid cells.
// Pixel x grows rightward from the left wall; pixel y grows downward from
// the far wall, so the far wall band maps to row Rows-1 and the band next
// to the shooter maps to row 0.
type Geometry struct {
	Rows     int
	Cols     int
	CellSize float64
}

// Width returns the playfield width in pixels.
func (g Geometry) Width() float64 {
	return float64(g.Cols) * g.CellSize
}

// Height returns the playfield height in pixels.
func (g Geometry) Height() float64 {
	return float64(g.Rows) * g.CellSize
}

// ColumnToGrid maps a pixel x coordinate to a column by integer division.
// The result may be out of range when x sits past a wall.
func (g Geometry) ColumnToGrid(x float64) int {
	return int(math.Floor(x / g.CellSize))
}

// RowToGrid maps a pixel y coordinate to a row by integer division.
func (g Geometry) RowToGrid(y float64) int {
	return g.Rows - 1 - int(math.Floor(y/g.CellSize))
}

// ClampColumn restricts a column to the grid.
func (g Geometry) ClampColumn(col int) int {
	if col < 0 {
		return 0
	}
	if col > g.Cols-1 {
		return g.Cols - 1
	}
	return col
}

// CellCenter returns the pixel center of (row, col).
func (g Geometry) CellCenter(row, col int) (x, y float64) {
	x = (float64(col) + 0.5) * g.CellSize
	y = (float64(g.Rows-1-row) + 0.5) * g.CellSize
	return x, y
}
