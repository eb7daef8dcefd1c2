package arena

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
)

func collectResults(
	ctx context.Context,
	config Config,
	gameResults <-chan GameResult,
	total *Result,
) error {
	for gameResult := range gameResults {
		if gameResult.result == gameResultDraw {
			total.Draws++
		} else if gameResult.result == gameResultBlackWins && gameResult.EngineAIsBlack ||
			gameResult.result == gameResultWhiteWins && !gameResult.EngineAIsBlack {
			total.Wins++
		} else {
			total.Losses++
		}
		total.Stat = computeStat(total.Wins, total.Losses, total.Draws)

		logrus.WithFields(logrus.Fields{
			"game":    gameResult.GameNumber,
			"result":  gameResult.String(),
			"comment": gameResult.Comment,
			"moves":   len(gameResult.Moves),
		}).Debug("finished game")

		if config.Progress != nil {
			config.Progress(gameResult, *total)
		}
	}
	return ctx.Err()
}

type Statistics struct {
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

// https://chessprogramming.wikispaces.com/Match%20Statistics
func computeStat(wins, losses, draws int) Statistics {
	var games = wins + losses + draws
	if games == 0 {
		return Statistics{WinningFraction: 0.5, LOS: 0.5}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses != 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return Statistics{
		WinningFraction: winningFraction,
		EloDifference:   eloDifference,
		LOS:             los,
	}
}
