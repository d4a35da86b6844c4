package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wfccharts/bench"
	"wfccharts/report"
	"wfccharts/savedata"
)

func newTableCmd() *cobra.Command {
	var markdown bool
	var data string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the distribution table and per strategy summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadSet(data)
			if err != nil {
				return err
			}
			tables := []savedata.Table{report.DistributionTable(set.Decisions)}
			for _, m := range []*bench.Measurements{set.Time, set.Backtracks} {
				for _, size := range m.Sizes() {
					sc, err := m.BySize(size)
					if err != nil {
						return err
					}
					tables = append(tables, report.SummaryTable(m, sc, fmt.Sprintf("%s (%s)", m.Title(), size)))
				}
			}
			out := cmd.OutOrStdout()
			for _, t := range tables {
				if markdown {
					fmt.Fprintln(out, t.Markdown())
				} else {
					fmt.Fprintln(out, t.ASCII())
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print markdown instead of box drawn tables")
	cmd.Flags().StringVar(&data, "data", "", "directory with another revision of the benchmark tables")
	return cmd
}
