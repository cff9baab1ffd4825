package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecoledger/ecoledger/internal/ingest"
)

// newIngestCmd creates the "ingest" command: parse a CSV of raw activity
// records, classify and compute each one, and persist the results.
func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file.csv>",
		Short: "Ingest a CSV of activity records",
		Long: "Ingest reads activity rows (description, quantity, unit, optional date), " +
			"classifies each into an emission category, and computes its CO2e with provenance. " +
			"Defective rows are skipped; the rest of the batch continues.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()

			parsed, err := ingest.CSVReader{}.Read(ctx, f)
			if err != nil {
				return err
			}

			sess, err := openSession(cmd)
			if err != nil {
				return err
			}

			result := sess.service.Ingest(ctx, parsed.Records)
			if err := sess.save(); err != nil {
				return err
			}

			skipped := parsed.Skipped + result.Skipped
			cmd.Printf("Successfully processed %d activities", len(result.Created))
			if skipped > 0 {
				cmd.Printf(" (%d rows skipped)", skipped)
			}
			cmd.Println()
			return nil
		},
	}
}
