package arena

import (
	"context"
	"time"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultBlackWins
	gameResultWhiteWins
)

type Player interface {
	SetPosition(b *common.Board)
	Configure(mySide common.Cell) error
	RecordOpponentMove(m common.Move) bool
	ChooseMove(ctx context.Context, budget time.Duration) (common.Move, bool)
}

type Config struct {
	Games       int
	Concurrency int
	BoardSize   int
	MoveTime    time.Duration
	Seed        int64
	NewPlayerA  func() Player
	NewPlayerB  func() Player
	// Progress is called from a single goroutine after every finished game.
	Progress func(GameResult, Result)
}

type gameInfo struct {
	opening        []common.Move
	engineAIsBlack bool
	gameNumber     int
}

type GameResult struct {
	GameNumber     int
	EngineAIsBlack bool
	Moves          []common.Move
	Comment        string
	result         int
}

func (r GameResult) String() string {
	switch r.result {
	case gameResultBlackWins:
		return "1-0"
	case gameResultWhiteWins:
		return "0-1"
	}
	return "1/2-1/2"
}

type Result struct {
	Wins, Losses, Draws int
	Stat                Statistics
}

func (r Result) Games() int {
	return r.Wins + r.Losses + r.Draws
}
