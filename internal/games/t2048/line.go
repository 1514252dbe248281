package t2048

// Reduce slides a line to the left and merges equal neighbours.
// Each tile takes part in at most one merge, so [2 2 2 2] becomes [4 4 0 0].
func Reduce(line Line) Line {
	result, _ := reduceLine(line)
	return result
}

// reduceLine is Reduce that also returns the total value of the merged tiles.
func reduceLine(line Line) (result Line, gained int) {
	// Compact
	var compact [BoardSize]int
	n := 0
	for _, v := range line {
		if v != 0 {
			compact[n] = v
			n++
		}
	}

	// Merge pairs left to right; the remainder of result stays zero
	out := 0
	for i := 0; i < n; i++ {
		if i+1 < n && compact[i] == compact[i+1] {
			merged := compact[i] * 2
			result[out] = merged
			gained += merged
			i++
		} else {
			result[out] = compact[i]
		}
		out++
	}

	return result, gained
}
