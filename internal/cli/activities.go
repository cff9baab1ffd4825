package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newActivitiesCmd creates the "activities" command: list all computed
// activities ordered by date descending.
func newActivitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List computed activities, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}

			activities := sess.service.Activities(cmd.Context())
			if len(activities) == 0 {
				cmd.Println("No activities recorded yet. Run 'ecoledger ingest' first.")
				return nil
			}

			const tabPadding = 2
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "ID\tDate\tDescription\tCategory\tCO2e (kg)\tConfidence")
			fmt.Fprintln(w, "--\t----\t-----------\t--------\t---------\t----------")
			for _, a := range activities {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					a.ID,
					a.Date.Format("2006-01-02"),
					a.Description,
					a.Category,
					formatCO2e(a.CO2e),
					a.Confidence,
				)
			}
			return w.Flush()
		},
	}
}
