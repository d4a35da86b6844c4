package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wfccharts/bench"
)

func newDriftCmd() *cobra.Command {
	var data, against string
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Show the values two revisions of the tables disagree on",
		Long: "Compares a revision of the benchmark tables with the embedded one (or --against).\n" +
			"Differences are reported, never reconciled.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := loadSet(against)
			if err != nil {
				return err
			}
			other, err := loadSet(data)
			if err != nil {
				return err
			}
			diffs := bench.Drift(base, other)
			out := cmd.OutOrStdout()
			if len(diffs) == 0 {
				fmt.Fprintln(out, "no differences")
				return nil
			}
			for _, d := range diffs {
				fmt.Fprintln(out, d)
			}
			log.Warn().Int("differences", len(diffs)).Msg("revisions disagree")
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "directory with the revision to check (required)")
	cmd.Flags().StringVar(&against, "against", "", "directory with the base revision (default: embedded)")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
