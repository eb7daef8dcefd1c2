package engine

import (
	"math"

	. "github.com/ChizhovVadim/GobangGo/pkg/common"
)

const (
	// valueWin equals the evaluator's score for a completed five.
	valueWin      = 1_000_000
	valueLoss     = -valueWin
	valueInfinity = math.MaxInt
)

func sideToMove(maximizing bool, me Cell) Cell {
	if maximizing {
		return me
	}
	return me.Opponent()
}
