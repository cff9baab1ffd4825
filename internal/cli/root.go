// Package cli implements the ecoledger command-line interface.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecoledger/ecoledger/internal/config"
	"github.com/ecoledger/ecoledger/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// configKey is the context key the loaded config travels under.
type configKey struct{}

// contextWithConfig attaches the loaded configuration to ctx.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the loaded configuration, or defaults when the
// command runs without the root's PersistentPreRunE (tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// NewRootCmd creates the root Cobra command for the ecoledger CLI.
// It wires up logging and the subcommands (ingest, activities, summary,
// explain, scenario, insights).
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ecoledger",
		Short:   "EcoLedger carbon accounting CLI",
		Long:    "EcoLedger: classify activity records, compute CO2e with provenance, and derive insights",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			loggingCfg := cfg.Logging
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loggingCfg.Level = "debug"
				loggingCfg.Format = "console"
			}

			base := logging.New(loggingCfg.ToLoggingConfig())
			logger = logging.ComponentLogger(base, "cli")

			ctx := logging.ContextWithLogger(cmd.Context(), base)
			ctx = contextWithConfig(ctx, cfg)
			cmd.SetContext(ctx)

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", defaultConfigPath(), "path to config file")
	cmd.PersistentFlags().String("data", "ecoledger.json", "path to the activity ledger file")

	cmd.AddCommand(
		newIngestCmd(),
		newActivitiesCmd(),
		newSummaryCmd(),
		newExplainCmd(),
		newScenarioCmd(),
		newInsightsCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Ingest a CSV of activity records
  ecoledger ingest activities.csv

  # Show the aggregate emission summary
  ecoledger summary

  # List computed activities, newest first
  ecoledger activities

  # Explain one activity's calculation with provenance
  ecoledger explain 01JF8Z4Y9GQ2M3N4P5Q6R7S8T9

  # Simulate a what-if scenario
  ecoledger scenario 01JF8Z4Y9GQ2M3N4P5Q6R7S8T9 --quantity 250

  # Rule-based recommendations and narrative insight
  ecoledger insights --narrative`

// defaultConfigPath resolves the default config file location under the
// user's home directory.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ecoledger", "config.yaml")
}
