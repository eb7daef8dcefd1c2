package common

import (
	"math/rand"
	"testing"
)

func TestRunLength(t *testing.T) {
	var b, _ = NewBoardFromRows(
		"......",
		".XXX..",
		"......",
		"......",
		"......",
		"......",
	)
	var m = Move{Row: 1, Col: 1}
	if n := RunLength(b, m, Axes[0], Black); n != 3 {
		t.Error("forward", n)
	}
	if n := RunLength(b, m, Axes[0].Reverse(), Black); n != 1 {
		t.Error("backward", n)
	}
	if n := RunLength(b, m, Axes[1], White); n != 0 {
		t.Error("other side", n)
	}
}

func TestIsWinningMove(t *testing.T) {
	var tests = []struct {
		rows []string
		move Move
		side Cell
		win  bool
	}{
		{[]string{
			".......",
			"XXXX...",
			".......",
			".......",
			".......",
			".......",
			".......",
		}, Move{Row: 1, Col: 4}, Black, true},
		{[]string{
			".......",
			"XX.XX..",
			".......",
			".......",
			".......",
			".......",
			".......",
		}, Move{Row: 1, Col: 2}, Black, true},
		{[]string{
			"O......",
			".O.....",
			"..O....",
			".......",
			"....O..",
			".......",
			".......",
		}, Move{Row: 3, Col: 3}, White, true},
		{[]string{
			"......O",
			".....O.",
			"....O..",
			".......",
			"..X....",
			".......",
			".......",
		}, Move{Row: 3, Col: 3}, White, false},
		{[]string{
			"XXX....",
			".......",
			".......",
			".......",
			".......",
			".......",
			".......",
		}, Move{Row: 0, Col: 3}, Black, false},
	}
	for i, test := range tests {
		var b, err = NewBoardFromRows(test.rows...)
		if err != nil {
			t.Fatal(err)
		}
		if IsWinningMove(b, test.move, test.side) != test.win {
			t.Error(i, test.move, test.win)
		}
	}
}

func TestIsWinningMoveRandom(t *testing.T) {
	var r = rand.New(rand.NewSource(1))
	for iter := 0; iter < 300; iter++ {
		var b = randomBoard(r, 9, 0.55)
		for i := 0; i < b.Size(); i++ {
			for j := 0; j < b.Size(); j++ {
				var m = Move{Row: i, Col: j}
				var side = b.At(m)
				if side == Empty {
					continue
				}
				var want = bruteForceFive(b, m, side)
				if IsWinningMove(b, m, side) != want {
					t.Fatal(b.String(), m, side, want)
				}
			}
		}
	}
}

func randomBoard(r *rand.Rand, size int, density float64) *Board {
	var b = NewBoard(size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if r.Float64() >= density {
				continue
			}
			var side = Black
			if r.Intn(2) == 0 {
				side = White
			}
			b.Place(Move{Row: i, Col: j}, side)
		}
	}
	return b
}

// bruteForceFive checks every five-cell window through m on every axis.
func bruteForceFive(b *Board, m Move, side Cell) bool {
	for _, d := range Axes {
		for shift := 0; shift < WinLength; shift++ {
			var start = m.Add(d, -shift)
			var all = true
			for k := 0; k < WinLength; k++ {
				var cell = start.Add(d, k)
				if !b.InBounds(cell) || b.At(cell) != side {
					all = false
					break
				}
			}
			if all {
				return true
			}
		}
	}
	return false
}
