package arena

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

func playGame(
	ctx context.Context,
	engineA, engineB Player,
	config Config,
	info gameInfo,
) (GameResult, error) {

	logrus.WithField("game", info.gameNumber).Debug("started game")

	var board = common.NewBoard(config.BoardSize)
	var sideToMove = common.Black
	var moves []common.Move
	for _, m := range info.opening {
		board.Place(m, sideToMove)
		moves = append(moves, m)
		sideToMove = sideToMove.Opponent()
	}

	var blackEngine, whiteEngine = engineA, engineB
	if !info.engineAIsBlack {
		blackEngine, whiteEngine = engineB, engineA
	}
	for _, p := range []struct {
		player Player
		side   common.Cell
	}{{blackEngine, common.Black}, {whiteEngine, common.White}} {
		p.player.SetPosition(board)
		if err := p.player.Configure(p.side); err != nil {
			return GameResult{}, err
		}
	}

	var result = GameResult{
		GameNumber:     info.gameNumber,
		EngineAIsBlack: info.engineAIsBlack,
	}

	for {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if board.IsFull() {
			result.Moves = moves
			result.Comment = "board full"
			result.result = gameResultDraw
			return result, nil
		}

		var eng, opponent = blackEngine, whiteEngine
		if sideToMove == common.White {
			eng, opponent = whiteEngine, blackEngine
		}
		var m, ok = eng.ChooseMove(ctx, config.MoveTime)
		if !ok || !board.IsLegal(m) {
			return GameResult{}, fmt.Errorf("game %v: bad move %v by %v", info.gameNumber, m, sideToMove)
		}
		board.Place(m, sideToMove)
		opponent.RecordOpponentMove(m)
		moves = append(moves, m)

		if common.IsWinningMove(board, m, sideToMove) {
			result.Moves = moves
			result.Comment = "five in a row"
			result.result = gameResultBlackWins
			if sideToMove == common.White {
				result.result = gameResultWhiteWins
			}
			return result, nil
		}
		sideToMove = sideToMove.Opponent()
	}
}
