package core

// GameOverEvent is delivered once when the loss row fills.
type GameOverEvent struct {
	Score int
	Tick  uint64
	Stats Stats
}

// TopRowOccupied reports whether any cell of the loss row holds a block.
func TopRowOccupied(g *Grid) bool {
	return g.RowOccupied(LossRow)
}

// CheckGameOver runs the game-over monitor and reports whether the round
// has ended.
func (s *Sim) CheckGameOver() bool {
	s.checkGameOver()
	return s.over
}

func (s *Sim) checkGameOver() {
	if s.over || !TopRowOccupied(s.grid) {
		return
	}

	s.over = true
	ev := GameOverEvent{Score: s.score, Tick: s.tick, Stats: s.stats}
	s.emit(Event{Kind: EventGameOver, Points: s.score})
	if s.onGameOver != nil {
		s.onGameOver(ev)
	}
}
