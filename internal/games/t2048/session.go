package t2048

// Status summarizes a session for display and records.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"
	StatusGameOver Status = "game_over"
)

// Session is the complete state of one game. It is a plain value: Apply
// returns the next session and leaves the receiver untouched.
type Session struct {
	Board    Board
	Score    int
	Moves    int // Board-changing moves applied so far
	GameOver bool
	Won      bool // Sticky once a WinTile appears; play continues
}

// NewSession starts a game with two spawned tiles on an empty board.
func NewSession(src Source) Session {
	var board Board
	board = Spawn(board, src)
	board = Spawn(board, src)
	return Session{Board: board}
}

// Apply performs one move. It returns the next session and whether the board
// changed. A finished session or a move that changes nothing returns s as is,
// without spawning or consuming entropy.
func (s Session) Apply(dir Direction, src Source) (Session, bool) {
	if s.GameOver {
		return s, false
	}

	moved, gained := slide(s.Board, dir)
	if moved == s.Board {
		return s, false
	}

	next := s
	next.Score += gained
	next.Moves++
	next.Board = Spawn(moved, src)

	if next.Board.Contains(WinTile) {
		next.Won = true
	}
	if IsGameOver(next.Board) {
		next.GameOver = true
	}

	return next, true
}

// Status reports the session status. GameOver takes precedence over Won.
func (s Session) Status() Status {
	switch {
	case s.GameOver:
		return StatusGameOver
	case s.Won:
		return StatusWon
	default:
		return StatusPlaying
	}
}
