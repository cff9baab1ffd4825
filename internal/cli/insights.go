package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecoledger/ecoledger/internal/insights"
)

// newInsightsCmd creates the "insights" command: rule-based
// recommendations, optionally followed by the narrative executive summary.
func newInsightsCmd() *cobra.Command {
	var narrative bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Rule-based recommendations and narrative summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			sess, err := openSession(cmd)
			if err != nil {
				return err
			}

			activities := sess.service.AllActivities(ctx)

			recs := insights.Recommend(activities)
			if len(recs) == 0 {
				cmd.Println("No activities recorded yet; no recommendations to make.")
			}
			for _, rec := range recs {
				cmd.Printf("[%s] %s\n", rec.Impact, rec.Title)
				cmd.Printf("    %s\n", rec.Suggestion)
			}

			if !narrative {
				return nil
			}

			var narrator insights.Narrator = insights.TemplateNarrator{}
			if cfg.NarrativeEnabled() {
				narrator = insights.FallbackNarrator{
					Primary: insights.ExternalNarrator{
						Endpoint: cfg.Narrative.Endpoint,
						APIKey:   cfg.Narrative.APIKey,
						Timeout:  cfg.Narrative.Timeout.Std(),
					},
					Fallback: insights.TemplateNarrator{},
				}
			}

			text, err := narrator.Narrate(ctx, activities)
			if err != nil {
				return err
			}
			cmd.Println()
			cmd.Println(text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&narrative, "narrative", false, "include the narrative executive summary")

	return cmd
}
