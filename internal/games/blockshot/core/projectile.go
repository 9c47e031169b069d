package core

// Projectile is a block in flight.
type Projectile struct {
	ID    int
	X, Y  float64 // Center position in pixels
	DX    float64 // Horizontal velocity in pixels per tick
	DY    float64 // Vertical velocity in pixels per tick (negative is toward the far wall)
	Block Block

	// Last empty in-grid cell the projectile passed through.
	LastRow int
	LastCol int
}

// Advance integrates the position by dt ticks and reflects off the side
// walls. A projectile whose center is within half a cell of a wall while
// moving toward it has its horizontal velocity flipped; the position is not
// clamped, so it may sit past the wall for a tick.
func (p *Projectile) Advance(geo Geometry, dt float64) {
	p.X += p.DX * dt
	p.Y += p.DY * dt

	half := geo.CellSize / 2
	if (p.X < half && p.DX < 0) || (p.X > geo.Width()-half && p.DX > 0) {
		p.DX = -p.DX
	}
}

// Impact describes where a terminal projectile stopped.
type Impact struct {
	// Row is the terminal row: the occupied row that was hit, or Rows when
	// the projectile reached the far wall without hitting anything.
	Row int
	Col int

	// Fallback is the last empty cell on the projectile's path.
	Fallback Coord
}

// Wall reports whether the projectile stopped at the far wall.
func (i Impact) Wall(g *Grid) bool {
	return i.Row >= g.Rows
}

// SnapRow is the row just below the terminal row, toward the shooter.
func (i Impact) SnapRow() int {
	return max(0, i.Row-1)
}

// Hit returns the block the projectile struck, or nil at the far wall.
func (i Impact) Hit(g *Grid) *Block {
	if i.Wall(g) {
		return nil
	}
	return g.Get(i.Row, i.Col)
}

// Landing returns the empty cell the incoming block settles into.
// Normally that is (SnapRow, Col). A diagonal shot can cut the corner of a
// cell and hit a block whose snap cell is already taken; the projectile's
// last empty cell is used instead. ok is false when neither is free, which
// only happens once the loss row has filled.
func (i Impact) Landing(g *Grid) (c Coord, ok bool) {
	snap := At(i.SnapRow(), i.Col)
	if g.InBounds(snap.Row, snap.Col) && !g.Occupied(snap.Row, snap.Col) {
		return snap, true
	}
	if g.InBounds(i.Fallback.Row, i.Fallback.Col) && !g.Occupied(i.Fallback.Row, i.Fallback.Col) {
		return i.Fallback, true
	}
	return snap, false
}

// CheckTerminal inspects the projectile's current position. It is terminal
// when it has reached the far-wall row or the cell it maps onto is occupied.
// Otherwise the current cell is remembered as the last empty one.
func (p *Projectile) CheckTerminal(g *Grid, geo Geometry) (Impact, bool) {
	col := geo.ClampColumn(geo.ColumnToGrid(p.X))
	row := geo.RowToGrid(p.Y)
	if row < 0 {
		// Still below the playfield.
		return Impact{}, false
	}
	if row > g.Rows-1 {
		row = g.Rows - 1
	}

	fallback := At(p.LastRow, p.LastCol)
	switch {
	case g.Occupied(row, col):
		return Impact{Row: row, Col: col, Fallback: fallback}, true
	case row == g.Rows-1:
		return Impact{Row: g.Rows, Col: col, Fallback: fallback}, true
	}

	p.LastRow, p.LastCol = row, col
	return Impact{}, false
}

// ProjectileSet is the collection of in-flight projectiles, kept in firing
// order. Firing only appends.
type ProjectileSet struct {
	items  []*Projectile
	nextID int
}

// Spawn appends a new projectile and returns it.
func (s *ProjectileSet) Spawn(x, y, dx, dy float64, b Block, geo Geometry) *Projectile {
	s.nextID++
	col := geo.ClampColumn(geo.ColumnToGrid(x))
	row := max(0, min(geo.Rows-1, geo.RowToGrid(y)))
	p := &Projectile{
		ID:      s.nextID,
		X:       x,
		Y:       y,
		DX:      dx,
		DY:      dy,
		Block:   b,
		LastRow: row,
		LastCol: col,
	}
	s.items = append(s.items, p)
	return p
}

// Len returns the number of projectiles in flight.
func (s *ProjectileSet) Len() int {
	return len(s.items)
}

// Sweep visits every projectile in firing order. Projectiles for which fn
// returns true are removed from the set before Sweep returns, so each one
// is consumed at most once.
func (s *ProjectileSet) Sweep(fn func(p *Projectile) bool) {
	kept := s.items[:0]
	for _, p := range s.items {
		if !fn(p) {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
}

// Clear drops every projectile.
func (s *ProjectileSet) Clear() {
	s.items = nil
}

// Snapshot returns value copies of all projectiles.
func (s *ProjectileSet) Snapshot() []Projectile {
	out := make([]Projectile, len(s.items))
	for i, p := range s.items {
		out[i] = *p
	}
	return out
}
