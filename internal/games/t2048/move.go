package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Move slides the board in the given direction without spawning a tile.
// A result equal to the input means the move does nothing.
func Move(board Board, dir Direction) Board {
	moved, _ := slide(board, dir)
	return moved
}

// slide reorients the board so every direction becomes "reduce each row left",
// reduces, then undoes the reorientation. It also returns the merge total.
func slide(board Board, dir Direction) (Board, int) {
	if !dir.Valid() {
		return board, 0
	}

	b := board
	if dir == DirUp || dir == DirDown {
		b = transpose(b)
	}
	if dir == DirRight || dir == DirDown {
		b = reverseRows(b)
	}

	gained := 0
	for r := range BoardSize {
		row, score := reduceLine(Line(b[r]))
		b[r] = row
		gained += score
	}

	if dir == DirRight || dir == DirDown {
		b = reverseRows(b)
	}
	if dir == DirUp || dir == DirDown {
		b = transpose(b)
	}

	return b, gained
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for r := range BoardSize {
		for c := range BoardSize {
			result[r][c] = board[c][r]
		}
	}
	return result
}

// reverseRows mirrors every row horizontally.
func reverseRows(board Board) Board {
	var result Board
	for r := range BoardSize {
		for c := range BoardSize {
			result[r][c] = board[r][BoardSize-1-c]
		}
	}
	return result
}
