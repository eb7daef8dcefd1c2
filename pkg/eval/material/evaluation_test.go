package eval

import (
	"testing"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var b, err = common.NewBoardFromRows(
		"X....",
		".XO..",
		".....",
		"...X.",
		".....",
	)
	if err != nil {
		t.Fatal(err)
	}
	var e = NewEvaluationService()
	if score := e.Evaluate(b, common.Black); score != 2*stoneValue {
		t.Error(score)
	}
	if score := e.Evaluate(b, common.White); score != -2*stoneValue {
		t.Error(score)
	}
}
