package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/scenario"
)

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run a single scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("scenario loaded", "name", sc.Name, "budget", sc.Budget())

			rep, err := scenario.Run(cmd.Context(), sc)
			if err != nil {
				return err
			}
			a.logger.Info("search finished", "name", rep.Name, "status", rep.Status, "elapsed", rep.Elapsed())

			return writeReports(cmd.OutOrStdout(), output, rep)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, yaml)")

	return cmd
}
