package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/scenario"
)

func (a *app) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <scenario>...",
		Short: "Run several scenario files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			parallel, _ := cmd.Flags().GetInt("parallel")

			a.logger.Debug("batch starting", "files", len(args), "parallel", parallel)
			reports, err := scenario.RunFiles(cmd.Context(), args, parallel)
			if err != nil {
				return err
			}
			found := 0
			for _, r := range reports {
				if r.Status == "success" {
					found++
				}
			}
			a.logger.Info("batch finished", "files", len(reports), "found", found)

			return writeReports(cmd.OutOrStdout(), output, reports...)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, yaml)")
	cmd.Flags().IntP("parallel", "p", runtime.GOMAXPROCS(0), "Maximum concurrent searches")

	return cmd
}
