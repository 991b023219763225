package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sangn12/disksched/internal/server"
)

// defaultAddr checks the DISKSCHED_ADDR env var before falling back.
func defaultAddr() string {
	if addr := os.Getenv("DISKSCHED_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator as a JSON API",
		Long: `Serve starts an HTTP server exposing the engine at /api/v1: simulate one
algorithm, compare all five, list algorithms, and a health check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(logger).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "Listen address (or DISKSCHED_ADDR env)")

	return cmd
}
