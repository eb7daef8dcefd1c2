package engine

import (
	"errors"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

type Options struct {
	BoardSize   int
	Depth       int
	Threads     int
	EvalBuilder func() Evaluator
}

func NewOptions(evalBuilder func() Evaluator) Options {
	return Options{
		BoardSize:   common.DefaultBoardSize,
		Depth:       6,
		Threads:     1,
		EvalBuilder: evalBuilder,
	}
}

func (o *Options) Validate() error {
	if o.BoardSize < common.WinLength {
		return errors.New("board size too small")
	}
	if o.Depth < 1 {
		return errors.New("depth must be positive")
	}
	if o.Threads < 1 {
		return errors.New("threads must be positive")
	}
	if o.EvalBuilder == nil {
		return errors.New("no evaluation function")
	}
	return nil
}
