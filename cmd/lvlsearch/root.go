package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/internal/logging"
	"github.com/katalvlaran/lvlsearch/scenario"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries state shared by the subcommands.
type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:           "lvlsearch",
		Short:         "Time-bounded A* search over graphs and grids",
		Long:          "lvlsearch loads search scenarios (edge lists or cost grids) from YAML\nand finds minimum-cost paths with a time-bounded A* search.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			levelFlag, _ := cmd.Flags().GetString("log-level")
			formatFlag, _ := cmd.Flags().GetString("log-format")
			level, err := logging.ParseLevel(levelFlag)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level, format)
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	root.AddCommand(a.newRunCmd(), a.newBatchCmd(), a.newServeCmd())

	return root
}

// writeReports renders reports in the requested output format.
func writeReports(w io.Writer, format string, reports ...scenario.Report) error {
	switch format {
	case "text":
		return scenario.WriteText(w, reports...)
	case "yaml":
		return scenario.WriteYAML(w, reports...)
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}
