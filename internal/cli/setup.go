package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecoledger/ecoledger/internal/engine"
	"github.com/ecoledger/ecoledger/internal/store"
)

// session bundles the collaborators a subcommand runs against.
type session struct {
	service  *engine.Service
	store    *store.Memory
	dataPath string
}

// openSession loads the ledger file and wires the engine service from the
// active configuration.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg := configFromContext(cmd.Context())

	dataPath, _ := cmd.Flags().GetString("data")
	st, err := store.LoadFile(dataPath)
	if err != nil {
		return nil, err
	}

	classifier := engine.NewClassifier(cmd.Context(), cfg.Classifier.ModelPath)
	calc := engine.NewCalculator(cfg.Registry())

	return &session{
		service:  engine.NewService(classifier, calc, st),
		store:    st,
		dataPath: dataPath,
	}, nil
}

// save persists the ledger back to disk.
func (s *session) save() error {
	return store.SaveFile(s.dataPath, s.store)
}
