package arena

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Run plays config.Games games between engine A and engine B.
func Run(ctx context.Context, config Config) (Result, error) {
	if config.Games <= 0 {
		return Result{}, errors.New("no games to play")
	}
	if config.NewPlayerA == nil || config.NewPlayerB == nil {
		return Result{}, errors.New("no players")
	}
	var gameConcurrency = config.Concurrency
	if gameConcurrency <= 0 {
		gameConcurrency = 1
	}

	logrus.WithFields(logrus.Fields{
		"NumCPU":          runtime.NumCPU(),
		"GOMAXPROCS":      runtime.GOMAXPROCS(0),
		"gameConcurrency": gameConcurrency,
		"games":           config.Games,
		"moveTime":        config.MoveTime,
	}).Info("arena started")
	defer logrus.Info("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan GameResult)
	var total Result

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, config, gameInfos)
	})

	g.Go(func() error {
		return collectResults(ctx, config, gameResults, &total)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < gameConcurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return total, err
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- GameResult,
) error {
	var engineA = config.NewPlayerA()
	var engineB = config.NewPlayerB()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, config, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
