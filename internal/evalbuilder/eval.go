package evalbuilder

import (
	"fmt"

	"github.com/ChizhovVadim/GobangGo/pkg/engine"
	material "github.com/ChizhovVadim/GobangGo/pkg/eval/material"
	runlength "github.com/ChizhovVadim/GobangGo/pkg/eval/runlength"
)

func Get(key string) (func() engine.Evaluator, error) {
	switch key {
	case "", "runlength":
		return func() engine.Evaluator { return runlength.NewEvaluationService() }, nil
	case "material":
		return func() engine.Evaluator { return material.NewEvaluationService() }, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
