package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Board   Board
	Score   int
	Moves   int
	MaxTile int
	State   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Board:   s.Board,
		Score:   s.Score,
		Moves:   s.Moves,
		MaxTile: s.Board.MaxTile(),
		State:   s.Status(),
	}
}
