package core

// neighbors4 are the orthogonal steps explored by the flood fill.
var neighbors4 = [4]Coord{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// FindRegion returns the connected region containing (row, col): every cell
// reachable through up/down/left/right steps whose block has the same color
// and kind as the starting block. The search uses an explicit work stack and
// a visited set, so its depth is bounded by the grid size rather than the
// call stack. An empty or out-of-range start yields nil.
func FindRegion(g *Grid, row, col int) []Coord {
	base := g.Get(row, col)
	if base == nil {
		return nil
	}

	visited := make(map[Coord]bool)
	stack := []Coord{At(row, col)}
	var region []Coord

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[c] {
			continue
		}
		visited[c] = true

		b := g.Get(c.Row, c.Col)
		if b == nil || !b.Matches(*base) {
			continue
		}
		region = append(region, c)

		for _, d := range neighbors4 {
			n := At(c.Row+d.Row, c.Col+d.Col)
			if g.InBounds(n.Row, n.Col) && !visited[n] {
				stack = append(stack, n)
			}
		}
	}

	return region
}

// CheckMatch clears the region around (row, col) when it reaches the match
// threshold and scores MatchBonus per cleared cell. Smaller regions are left
// untouched. Returns the number of cells cleared.
func (s *Sim) CheckMatch(row, col int) int {
	region := FindRegion(s.grid, row, col)
	if len(region) < s.settings.MatchThreshold {
		return 0
	}

	base := *s.grid.Get(row, col)
	for _, c := range region {
		s.grid.Remove(c.Row, c.Col)
	}

	points := len(region) * s.settings.MatchBonus
	s.addScore(points)
	s.stats.Matches++
	s.stats.Cleared += len(region)
	s.emit(Event{Kind: EventMatch, At: At(row, col), Block: base, Cleared: len(region), Points: points})

	return len(region)
}
