package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GobangGo/internal/arena"
)

const SPIN = 31

// gobang arena
func Arena() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Play engine A against engine B",
		Long: heredoc.Doc(`arena plays a self-play match between two engine setups.
			Games come in pairs that share a short random opening with the
			colours swapped. Engine A uses --depth-a and --eval-a, engine B
			uses --depth-b and --eval-b; everything else comes from the
			common settings.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			games, _ := flags.GetInt("games")
			concurrency, _ := flags.GetInt("concurrency")
			seed, _ := flags.GetInt64("seed")
			depthA, _ := flags.GetInt("depth-a")
			depthB, _ := flags.GetInt("depth-b")
			evalA, _ := flags.GetString("eval-a")
			evalB, _ := flags.GetString("eval-b")

			// fail early on bad engine settings
			for _, p := range []struct {
				depth int
				eval  string
			}{{depthA, evalA}, {depthB, evalB}} {
				if _, err := newEngine(p.depth, p.eval); err != nil {
					return err
				}
			}

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = " starting"
			s.Start()
			defer s.Stop()

			res, err := arena.Run(cmd.Context(), arena.Config{
				Games:       games,
				Concurrency: concurrency,
				BoardSize:   settings.BoardSize,
				MoveTime:    settings.MoveTime,
				Seed:        seed,
				NewPlayerA:  newArenaPlayer(depthA, evalA),
				NewPlayerB:  newArenaPlayer(depthB, evalB),
				Progress: func(game arena.GameResult, total arena.Result) {
					s.Lock()
					s.Suffix = fmt.Sprintf(" %v/%v games  +%v -%v =%v",
						total.Games(), games, total.Wins, total.Losses, total.Draws)
					s.Unlock()
				},
			})
			s.Stop()
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"wins":   res.Wins,
				"losses": res.Losses,
				"draws":  res.Draws,
			}).Infof("Score [%.3f] Elo difference: %.1f, LOS: %.1f %%",
				res.Stat.WinningFraction, res.Stat.EloDifference, res.Stat.LOS*100)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("games", 20, "Number of games")
	flags.Int("concurrency", 2, "Number of games played at once")
	flags.Int64("seed", 1, "Seed for the random openings")
	flags.Int("depth-a", 4, "Search depth of engine A")
	flags.Int("depth-b", 2, "Search depth of engine B")
	flags.String("eval-a", "runlength", "Evaluation function of engine A")
	flags.String("eval-b", "runlength", "Evaluation function of engine B")
	return cmd
}

func newArenaPlayer(depth int, evalName string) func() arena.Player {
	return func() arena.Player {
		var eng, err = newEngine(depth, evalName)
		if err != nil {
			// settings are validated before the arena starts
			panic(err)
		}
		return eng
	}
}
