// Package cli implements the disksched command line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sangn12/disksched/internal/logging"
)

var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the disksched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "disksched",
		Short: "disksched — disk-head scheduling simulator",
		Long: `disksched simulates the classical disk-head scheduling algorithms
(FCFS, SSTF, SCAN, C-SCAN, LOOK) over a request queue and compares their
total head movement, which stands in for seek time.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newServeCmd(),
	)

	return root
}
