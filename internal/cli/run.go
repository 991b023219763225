package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sangn12/disksched/internal/disksim"
	"github.com/sangn12/disksched/internal/render"
)

func newRunCmd() *cobra.Command {
	var (
		minCyl    int
		maxCyl    int
		head      int
		direction string
		algorithm string
		reqList   string
		reqFile   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scheduling algorithm (or all) over a request queue",
		Long: `Run simulates a scheduling algorithm over a request queue and prints the
service order, the per-step head movement, and the total movement.

Requests come from --requests as a comma-separated list, or from --file as
CSV. With --algorithm all, every policy runs over the same queue and a
comparison summary is appended.`,
		Example: `  disksched run --head 53 --requests "98,183,37,122,14,124,65,67" --algorithm sstf
  disksched run --head 53 --file requests.csv --algorithm all --direction down`,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := gatherRequests(reqList, reqFile)
			if err != nil {
				return err
			}

			cfg := disksim.DiskConfig{MinCylinder: minCyl, MaxCylinder: maxCyl, HeadStart: head}
			dir, err := disksim.ParseDirection(direction)
			if err != nil {
				return err
			}

			logger.Debug("simulating",
				"algorithm", algorithm,
				"requests", len(requests),
				"head", head,
				"direction", dir.String(),
			)

			if algorithm == "all" {
				results, err := disksim.RunAll(cfg, requests, dir)
				if err != nil {
					return err
				}
				for _, result := range results {
					render.Title(os.Stdout, result.Algorithm.String())
					render.Steps(os.Stdout, result)
					fmt.Println()
				}
				render.Title(os.Stdout, "Comparison")
				render.Comparison(os.Stdout, results)
				return nil
			}

			algo, err := disksim.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			result, err := disksim.Simulate(algo, cfg, requests, dir)
			if err != nil {
				return err
			}

			render.Title(os.Stdout, result.Algorithm.String())
			render.Steps(os.Stdout, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&minCyl, "min", 0, "Minimum cylinder")
	cmd.Flags().IntVar(&maxCyl, "max", 199, "Maximum cylinder")
	cmd.Flags().IntVar(&head, "head", 0, "Initial head position")
	cmd.Flags().StringVar(&direction, "direction", "up", "Initial sweep direction for SCAN/C-SCAN/LOOK (up, down)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "Algorithm: fcfs, sstf, scan, c-scan, look, or all")
	cmd.Flags().StringVarP(&reqList, "requests", "r", "", "Comma-separated cylinder requests")
	cmd.Flags().StringVarP(&reqFile, "file", "f", "", "CSV file with cylinder requests")

	return cmd
}

func gatherRequests(reqList, reqFile string) ([]int, error) {
	switch {
	case reqList != "" && reqFile != "":
		return nil, fmt.Errorf("use --requests or --file, not both")
	case reqList != "":
		return parseRequestList(reqList)
	case reqFile != "":
		return loadRequestFile(reqFile)
	}
	return nil, fmt.Errorf("%w: pass --requests or --file", ErrNoRequests)
}
