package arena

import (
	"context"
	"math/rand"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

// openingRadius bounds random opening stones around the center.
const openingRadius = 2

// loadOpenings sends game pairs that share an opening with colours swapped.
func loadOpenings(
	ctx context.Context,
	config Config,
	gameInfos chan<- gameInfo,
) error {
	var r = rand.New(rand.NewSource(config.Seed))
	for i := 0; 2*i < config.Games; i++ {
		var opening = randomOpening(r, config.BoardSize)
		for j := 0; j < 2 && 2*i+j < config.Games; j++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- gameInfo{opening: opening, engineAIsBlack: j == 0, gameNumber: 1 + 2*i + j}:
			}
		}
	}
	return nil
}

// randomOpening places up to two stones, black first, near the center.
func randomOpening(r *rand.Rand, size int) []common.Move {
	var b = common.NewBoard(size)
	var center = b.Center()
	var count = r.Intn(3)
	var result []common.Move
	for len(result) < count {
		var m = common.Move{
			Row: center.Row + r.Intn(2*openingRadius+1) - openingRadius,
			Col: center.Col + r.Intn(2*openingRadius+1) - openingRadius,
		}
		if b.IsLegal(m) {
			b.Place(m, common.Black)
			result = append(result, m)
		}
	}
	return result
}
