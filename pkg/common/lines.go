package common

// RunLength counts contiguous side stones starting at m (inclusive) in direction d.
func RunLength(b *Board, m Move, d Direction, side Cell) int {
	var count = 0
	for b.InBounds(m) && b.At(m) == side {
		count++
		m = m.Add(d, 1)
	}
	return count
}

// IsWinningMove reports whether the stone at m completes five or more in a row.
// The cell at m is counted as side whether or not it is placed yet.
func IsWinningMove(b *Board, m Move, side Cell) bool {
	for _, d := range Axes {
		var count = 1
		count += RunLength(b, m.Add(d, 1), d, side)
		count += RunLength(b, m.Add(d, -1), d.Reverse(), side)
		if count >= WinLength {
			return true
		}
	}
	return false
}
