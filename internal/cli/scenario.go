package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecoledger/ecoledger/internal/engine"
)

// newScenarioCmd creates the "scenario" command: re-run the emission
// calculation for one activity with a substituted quantity and/or
// category and report the delta.
func newScenarioCmd() *cobra.Command {
	var (
		quantity float64
		category string
	)

	cmd := &cobra.Command{
		Use:   "scenario <activity-id>",
		Short: "Simulate a what-if change to an activity",
		Long: "Scenario recomputes an activity's CO2e under a modified quantity or category " +
			"and reports the difference against the original. Omitted overrides default to " +
			"the activity's stored values.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd)
			if err != nil {
				return err
			}

			var input engine.ScenarioInput
			if cmd.Flags().Changed("quantity") {
				input.Quantity = &quantity
			}
			if cmd.Flags().Changed("category") {
				cat := engine.ParseCategory(category)
				input.Category = &cat
			}

			result, err := sess.service.Simulate(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			cmd.Printf("Original:  %s kg CO2e\n", formatCO2e(result.OriginalCO2e))
			cmd.Printf("Simulated: %s kg CO2e\n", formatCO2e(result.SimulatedCO2e))
			cmd.Printf("Change:    %s kg CO2e (%s reduction)\n",
				formatCO2e(result.Difference), formatPercent(result.ReductionPercent))
			return nil
		},
	}

	cmd.Flags().Float64Var(&quantity, "quantity", 0, "substituted quantity")
	cmd.Flags().StringVar(&category, "category", "", "substituted category")

	return cmd
}
