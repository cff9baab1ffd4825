package cli

import (
	"github.com/spf13/cobra"
)

// newExplainCmd creates the "explain" command: show one activity together
// with the provenance behind its CO2e value.
func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <activity-id>",
		Short: "Show an activity's calculation with its full provenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}

			activity, provenance, err := sess.service.Explain(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cmd.Printf("Activity %s\n", activity.ID)
			cmd.Printf("  Description: %s\n", activity.Description)
			cmd.Printf("  Date:        %s\n", activity.Date.Format("2006-01-02"))
			cmd.Printf("  Quantity:    %v %s\n", activity.Quantity, activity.Unit)
			cmd.Printf("  Category:    %s\n", activity.Category)
			cmd.Printf("  CO2e:        %s kg\n", formatCO2e(activity.CO2e))
			cmd.Printf("  Confidence:  %s\n", activity.Confidence)
			cmd.Println("Provenance")
			cmd.Printf("  Factor:      %v (%s)\n", provenance.Factor, provenance.UnitApplied)
			cmd.Printf("  Source:      %s\n", provenance.Source)
			cmd.Printf("  Formula:     %s\n", provenance.Formula)
			cmd.Printf("  Notes:       %s\n", provenance.Notes)
			return nil
		},
	}
}
