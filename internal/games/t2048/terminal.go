package t2048

// HasMove returns true if any direction can change the board: an empty cell
// exists or two horizontally or vertically adjacent cells are equal.
func HasMove(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if val == 0 {
				return true
			}
			// Right neighbor
			if c < BoardSize-1 && board[r][c+1] == val {
				return true
			}
			// Bottom neighbor
			if r < BoardSize-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true when the board is full and no move is possible.
// The emptiness check is kept separate from HasMove on purpose.
func IsGameOver(board Board) bool {
	return !board.HasEmpty() && !HasMove(board)
}
