package main

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

var benchPositions = [][]string{
	{
		"............",
		"............",
		"............",
		"............",
		"............",
		"......X.....",
		"............",
		"............",
		"............",
		"............",
		"............",
		"............",
	},
	{
		"............",
		"............",
		"............",
		"............",
		".....O......",
		".....XX.....",
		"......O.....",
		"............",
		"............",
		"............",
		"............",
		"............",
	},
	{
		"............",
		"............",
		"............",
		"....X.......",
		"....OXO.....",
		"...XOOX.....",
		"....XO......",
		"............",
		"............",
		"............",
		"............",
		"............",
	},
	{
		"............",
		"............",
		"...O........",
		"...XXO......",
		"...XOX......",
		"..OXOO......",
		"...X.X......",
		"............",
		"............",
		"............",
		"............",
		"............",
	},
}

// gobang bench
func Bench() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Search a fixed set of positions",
		Long: heredoc.Doc(`bench searches built-in positions with the current settings
			and reports the nodes searched and the speed. The side to move
			is the one with fewer stones.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(settings.Depth, settings.Eval)
			if err != nil {
				return err
			}

			var start = time.Now()
			var nodes int64
			for i, rows := range benchPositions {
				b, err := common.NewBoardFromRows(rows...)
				if err != nil {
					return err
				}
				eng.SetPosition(b)
				if err = eng.Configure(sideToMove(b)); err != nil {
					return err
				}
				var si = eng.Search(cmd.Context(), settings.MoveTime)
				nodes += si.Nodes
				logrus.WithFields(logrus.Fields{
					"position": i + 1,
					"move":     si.Move,
					"score":    si.Score,
					"nodes":    si.Nodes,
					"time":     si.Time,
				}).Info("searched")
			}
			var elapsed = time.Since(start)
			logrus.WithFields(logrus.Fields{
				"time":  elapsed,
				"nodes": nodes,
				"kNPS":  nodes / (elapsed.Milliseconds() + 1),
			}).Info("benchmark finished")
			return nil
		},
	}
}

func sideToMove(b *common.Board) common.Cell {
	var black, white = 0, 0
	for i := 0; i < b.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			switch b.At(common.Move{Row: i, Col: j}) {
			case common.Black:
				black++
			case common.White:
				white++
			}
		}
	}
	if black > white {
		return common.White
	}
	return common.Black
}
