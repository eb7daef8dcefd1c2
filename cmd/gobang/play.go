package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GobangGo/pkg/protocol"
)

// gobang play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game over stdin and stdout",
		Long: heredoc.Doc(`play reads protocol commands from stdin and writes replies
			to stdout:

			  START <side>       side is 1 (black) or 2 (white), replies OK
			  PLACE <row> <col>  records the opponent's stone
			  TURN               replies with "<row> <col>" of our stone
			  END <result>       ends the game

			Malformed or illegal commands are ignored.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context())
		},
	}
}

func runPlay(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var eng, err = newEngine(settings.Depth, settings.Eval)
	if err != nil {
		return err
	}
	eng.Prepare()
	return protocol.New(eng, settings.MoveTime, os.Stdout).Run(ctx, os.Stdin)
}
