package t2048

// Spawn2Prob is the probability that a spawned tile is a 2 rather than a 4.
const Spawn2Prob = 0.9

// Source is the entropy used by Spawn. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawn places a 2 (90%) or 4 (10%) in a uniformly chosen empty cell.
// A full board is returned unchanged and no entropy is consumed.
func Spawn(board Board, src Source) Board {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return board
	}

	cell := empty[src.Intn(len(empty))]

	value := 4
	if src.Float64() < Spawn2Prob {
		value = 2
	}

	return board.with(cell, value)
}
