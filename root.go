package main

import (
	"github.com/spf13/cobra"

	"wfccharts/bench"
	"wfccharts/common"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "wfccharts",
		Short:         "Render the backtracking benchmark figures",
		Long:          "Without a command, draws the enabled figures into " + common.DefaultFigDir + "/ like a bare run.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return common.InitLogger(logLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFigures(cmd, defaultConfig())
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "zerolog level (debug, info, warn, error)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newDriftCmd())
	return root
}

// loadSet reads the embedded revision, or the one in dir when set.
func loadSet(dir string) (*bench.Set, error) {
	if dir == "" {
		return bench.Load()
	}
	return bench.LoadDir(dir)
}
