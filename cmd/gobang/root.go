package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GobangGo/internal/config"
	"github.com/ChizhovVadim/GobangGo/internal/evalbuilder"
	"github.com/ChizhovVadim/GobangGo/pkg/engine"
)

// settings is filled from the config file and flags before any command runs.
var settings config.Config

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "gobang",
		Short: "Five-in-a-row engine",
		Long: heredoc.Doc(`gobang is a five-in-a-row engine. Without a subcommand it
			speaks the line protocol on stdin and stdout, like "gobang play".

			Settings are read from the config file (by default
			$XDG_CONFIG_HOME/gobang/config.yaml) and can be overridden
			with flags.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to the config file (default "+config.DefaultPath()+")")
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.String("log-level", "", "Logging level (panic, fatal, error, warn, info, debug, trace)")
	flags.Int("board-size", 0, "Board size")
	flags.Int("depth", 0, "Search depth in plies")
	flags.Duration("move-time", 0, "Time budget per move")
	flags.Int("threads", 0, "Threads for the root search")
	flags.String("eval", "", "Evaluation function (runlength, material)")

	versionStr := fmt.Sprintf("%v %v (%v)\n", name, versionName, gitRevision)
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	root.AddCommand(Play())
	root.AddCommand(Arena())
	root.AddCommand(Bench())

	return root
}

func loadSettings(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	var err error
	settings, err = config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("board-size") {
		settings.BoardSize, _ = flags.GetInt("board-size")
	}
	if flags.Changed("depth") {
		settings.Depth, _ = flags.GetInt("depth")
	}
	if flags.Changed("move-time") {
		settings.MoveTime, _ = flags.GetDuration("move-time")
	}
	if flags.Changed("threads") {
		settings.Threads, _ = flags.GetInt("threads")
	}
	if flags.Changed("eval") {
		settings.Eval, _ = flags.GetString("eval")
	}
	if flags.Changed("log-level") {
		settings.LogLevel, _ = flags.GetString("log-level")
	}
	if err = settings.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	// If --trace flag is provided, set logging level to Trace.
	if flags.Changed("trace") {
		logrus.SetLevel(logrus.TraceLevel)
	}

	logVersion()
	logrus.WithField("settings", fmt.Sprintf("%+v", settings)).Debug("settings loaded")
	return nil
}

func newEngine(depth int, evalName string) (*engine.Engine, error) {
	var evalBuilder, err = evalbuilder.Get(evalName)
	if err != nil {
		return nil, err
	}
	var options = engine.NewOptions(evalBuilder)
	options.BoardSize = settings.BoardSize
	options.Depth = depth
	options.Threads = settings.Threads
	if err = options.Validate(); err != nil {
		return nil, err
	}
	return engine.NewEngine(options), nil
}
