package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newSummaryCmd creates the "summary" command: recompute and render the
// aggregate over all stored activities.
func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total CO2e, category distribution, hotspots, and trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}

			agg := sess.service.Summary(cmd.Context())
			cmd.Print(renderSummary(agg, isTerminal(os.Stdout)))
			return nil
		},
	}
}
