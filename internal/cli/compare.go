package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sangn12/disksched/internal/disksim"
	"github.com/sangn12/disksched/internal/render"
	"github.com/sangn12/disksched/internal/scenario"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [scenarios.yaml]",
		Short: "Compare all algorithms over canned request patterns",
		Long: `Compare runs every algorithm over each scenario and prints a summary
table sorted by total head movement. Without an argument the built-in
patterns are used: random, sorted, reverse-sorted, and clustered requests.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := scenario.Builtin()
			if len(args) == 1 {
				var err error
				scenarios, err = scenario.Load(args[0])
				if err != nil {
					return err
				}
				logger.Debug("loaded scenarios", "file", args[0], "count", len(scenarios))
			}

			for _, s := range scenarios {
				render.Title(os.Stdout, s.Name)
				fmt.Printf("Disk %d-%d, head at %d, sweep %s, requests %v\n\n",
					s.Disk.MinCylinder, s.Disk.MaxCylinder, s.Disk.HeadStart, s.Dir(), s.Requests)

				results, err := disksim.RunAll(s.Disk, s.Requests, s.Dir())
				if err != nil {
					return fmt.Errorf("scenario %q: %w", s.Name, err)
				}

				render.Comparison(os.Stdout, results)
				fmt.Println()
			}
			return nil
		},
	}

	return cmd
}
