package engine

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	. "github.com/ChizhovVadim/GobangGo/pkg/common"
)

type Evaluator interface {
	Evaluate(b *Board, side Cell) int
}

// Engine holds the state of one game: the board and the side assignment.
type Engine struct {
	Options   Options
	board     *Board
	mySide    Cell
	evaluator Evaluator
	now       func() time.Time
}

type SearchInfo struct {
	Move     Move
	Score    int
	Nodes    int64
	Time     time.Duration
	Tactical bool
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
		mySide:  Black,
		now:     time.Now,
	}
}

// Prepare applies Options. The board is recreated only when its size changes.
func (e *Engine) Prepare() {
	if e.board == nil || e.board.Size() != e.Options.BoardSize {
		e.board = NewBoard(e.Options.BoardSize)
	}
	if e.evaluator == nil {
		e.evaluator = e.Options.EvalBuilder()
	}
}

// SetClock replaces the wall clock used for deadlines.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

func (e *Engine) Configure(mySide Cell) error {
	if !mySide.IsSide() {
		return errors.New("bad side")
	}
	e.mySide = mySide
	return nil
}

func (e *Engine) MySide() Cell {
	return e.mySide
}

func (e *Engine) Clear() {
	e.Prepare()
	e.board.Reset()
}

// SetPosition replaces the board with a copy of b.
func (e *Engine) SetPosition(b *Board) {
	e.Options.BoardSize = b.Size()
	e.board = b.Clone()
}

// Position returns a copy of the current board.
func (e *Engine) Position() *Board {
	e.Prepare()
	return e.board.Clone()
}

// RecordOpponentMove ignores illegal moves.
func (e *Engine) RecordOpponentMove(m Move) bool {
	e.Prepare()
	if !e.board.IsLegal(m) {
		return false
	}
	e.board.Place(m, e.mySide.Opponent())
	return true
}

// ChooseMove selects a move for my side and plays it on the board.
// It returns false only when the board has no empty cell.
func (e *Engine) ChooseMove(ctx context.Context, budget time.Duration) (Move, bool) {
	var si = e.Search(ctx, budget)
	var m = si.Move
	if !e.board.IsLegal(m) {
		var ok bool
		m, ok = e.board.FirstLegal()
		if !ok {
			return MoveEmpty, false
		}
		logrus.WithField("selected", si.Move).Debug("illegal selection, first free cell played")
	}
	e.board.Place(m, e.mySide)
	return m, true
}

// Search selects a move for my side without playing it.
func (e *Engine) Search(ctx context.Context, budget time.Duration) SearchInfo {
	e.Prepare()
	var tm = newTimeManager(ctx, e.now, budget)
	var si = e.selectMove(tm)
	si.Time = tm.Elapsed()
	logrus.WithFields(logrus.Fields{
		"move":     si.Move,
		"score":    si.Score,
		"nodes":    si.Nodes,
		"time":     si.Time,
		"tactical": si.Tactical,
		"depth":    e.Options.Depth,
		"threads":  e.Options.Threads,
	}).Debug("search finished")
	return si
}

func (e *Engine) newSearcher(b *Board, tm *timeManager) *searcher {
	return &searcher{
		board:     b,
		me:        e.mySide,
		evaluator: e.evaluator,
		tm:        tm,
	}
}
