package eval

import (
	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

const stoneValue = 10

// EvaluationService counts stones only. It is a weak sparring partner
// for arena matches.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(b *common.Board, side common.Cell) int {
	var eval = 0
	for i := 0; i < b.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			switch b.At(common.Move{Row: i, Col: j}) {
			case side:
				eval += stoneValue
			case side.Opponent():
				eval -= stoneValue
			}
		}
	}
	return eval
}
