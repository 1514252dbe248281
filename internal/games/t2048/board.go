// Package t2048 implements the rules of the 2048 sliding-tile puzzle.
//
// Every transformation is a pure function from Board to Board. The Session
// type ties the pieces together and is passed by value: callers own its
// lifecycle and replace it with the value returned from each transition.
package t2048

import (
	"errors"
	"fmt"
)

// BoardSize is the board dimension.
const BoardSize = 4

// WinTile is the tile value that marks a session as won.
const WinTile = 2048

// ErrInvalidTile is returned by NewBoard for values that are neither 0 nor a power of two >= 2.
var ErrInvalidTile = errors.New("t2048: invalid tile value")

// Board represents a 4x4 game board. Zero means an empty cell.
type Board [BoardSize][BoardSize]int

// Line is a single row of the board, or a column after reorientation.
type Line [BoardSize]int

// Pos is a cell position.
type Pos struct {
	Row, Col int
}

// NewBoard builds a board from rows, rejecting values that cannot appear in a game.
func NewBoard(rows [BoardSize][BoardSize]int) (Board, error) {
	for r := range BoardSize {
		for c := range BoardSize {
			if !validTile(rows[r][c]) {
				return Board{}, fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTile, rows[r][c], r, c)
			}
		}
	}
	return Board(rows), nil
}

func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Cell returns the value at row r, column c.
func (b Board) Cell(r, c int) int {
	return b[r][c]
}

// Equal reports whether two boards hold the same values.
func (b Board) Equal(other Board) bool {
	return b == other
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for r := range BoardSize {
		for c := range BoardSize {
			total += b[r][c]
		}
	}
	return total
}

// EmptyCells returns positions of all empty cells in row-major order.
func (b Board) EmptyCells() []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmpty returns true if there's at least one empty cell.
func (b Board) HasEmpty() bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// Contains reports whether any cell holds exactly v.
func (b Board) Contains(v int) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// with returns a copy of b with a single cell replaced.
func (b Board) with(p Pos, v int) Board {
	b[p.Row][p.Col] = v
	return b
}
