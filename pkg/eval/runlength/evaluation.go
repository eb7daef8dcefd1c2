package eval

import (
	. "github.com/ChizhovVadim/GobangGo/pkg/common"
)

const WinScore = 1_000_000

// Base score by run length, index is the run length.
var runScores = [WinLength]int{0, 10, 100, 1000, 10000}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate scores the board from side's point of view.
func (e *EvaluationService) Evaluate(b *Board, side Cell) int {
	return ScoreSide(b, side) - ScoreSide(b, side.Opponent())
}

// ScoreSide sums ScoreStone over every stone of side. A run of length L
// contributes once per stone it contains.
func ScoreSide(b *Board, side Cell) int {
	var score = 0
	for i := 0; i < b.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			var m = Move{Row: i, Col: j}
			if b.At(m) == side {
				score += ScoreStone(b, m, side)
			}
		}
	}
	return score
}

// ScoreStone scores the runs through m on the four axes. Blocked ends
// scale down everything accumulated so far, not only the current axis.
func ScoreStone(b *Board, m Move, side Cell) int {
	var score = 0
	for _, d := range Axes {
		var forward = RunLength(b, m, d, side)
		var backward = RunLength(b, m, d.Reverse(), side)
		var total = forward + backward - 1

		score += runScore(total)

		var frontBlocked = isBlocked(b, m.Add(d, forward), side)
		var backBlocked = isBlocked(b, m.Add(d, -backward), side)
		if frontBlocked && backBlocked {
			score /= 10
		} else if frontBlocked || backBlocked {
			score /= 3
		}
	}
	return score
}

func runScore(total int) int {
	if total >= WinLength {
		return WinScore
	}
	if total <= 0 {
		return 0
	}
	return runScores[total]
}

func isBlocked(b *Board, m Move, side Cell) bool {
	return !b.InBounds(m) || b.At(m) == side.Opponent()
}
