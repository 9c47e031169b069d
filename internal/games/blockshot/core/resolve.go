package core

// resolve applies one terminal projectile to the grid. Exactly one of the
// merge, explode and place rules fires, checked in that order, and the
// game-over monitor runs afterwards regardless of the branch taken.
func (s *Sim) resolve(b Block, imp Impact) {
	hit := imp.Hit(s.grid)
	landing, free := imp.Landing(s.grid)

	switch {
	case hit != nil && hit.Kind == KindNumber && b.Kind == KindNumber:
		// The incoming block is absorbed; the struck cell keeps its identity.
		hit.Value += b.Value
		s.addScore(hit.Value)
		s.stats.Merges++
		s.emit(Event{Kind: EventMerge, At: At(imp.Row, imp.Col), Block: *hit, Points: hit.Value})

	case b.Kind == KindBomb:
		s.Explode(landing.Row, landing.Col)

	case free:
		s.grid.Place(landing.Row, landing.Col, b)
		points := 0
		if b.Kind == KindNumber {
			points = b.Value
			s.addScore(points)
		}
		s.stats.Placed++
		s.emit(Event{Kind: EventPlace, At: landing, Block: b, Points: points})
		s.CheckMatch(landing.Row, landing.Col)
	}

	s.checkGameOver()
}

// Explode clears the square window of BlastRadius around (row, col),
// skipping cells outside the grid, and scores ExplodeBonus for every
// non-empty cell it clears. Nothing cascades from the cleared cells.
// Returns the number of blocks destroyed.
func (s *Sim) Explode(row, col int) int {
	radius := s.settings.BlastRadius
	cleared := 0
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if s.grid.Remove(row+dr, col+dc) != nil {
				cleared++
			}
		}
	}

	points := cleared * s.settings.ExplodeBonus
	s.addScore(points)
	s.stats.Explosions++
	s.stats.Cleared += cleared
	s.emit(Event{Kind: EventExplode, At: At(row, col), Cleared: cleared, Points: points})

	return cleared
}
