package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wfccharts/report"
	"wfccharts/savedata"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the figure routines in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadSet("")
			if err != nil {
				return err
			}
			t := savedata.Table{Header: []string{"Routine", "File", "Enabled"}}
			for _, r := range report.Default(set, report.DefaultOptions()) {
				enabled := "no"
				if r.Enabled {
					enabled = "yes"
				}
				t.Rows = append(t.Rows, []string{r.Name, r.File, enabled})
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.ASCII())
			return nil
		},
	}
}
