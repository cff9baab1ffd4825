// Command ecoledger is the EcoLedger carbon accounting CLI.
package main

import (
	"os"

	"github.com/ecoledger/ecoledger/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
