package common

// Candidates returns empty cells next to a stone in row-major order.
// On an empty board the only candidate is the center.
func Candidates(b *Board) []Move {
	if b.stones == 0 {
		return []Move{b.Center()}
	}
	var ml []Move
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			var m = Move{Row: i, Col: j}
			if b.cells[i*b.size+j] == Empty && hasNeighbour(b, m) {
				ml = append(ml, m)
			}
		}
	}
	return ml
}

func hasNeighbour(b *Board, m Move) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.At(Move{Row: m.Row + dr, Col: m.Col + dc}) != Empty {
				return true
			}
		}
	}
	return false
}
