package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/dexdata/dexdb/internal/iodb"
	"github.com/dexdata/dexdb/internal/iopopulate"
)

// getVerifyCmd returns the verify command.
func getVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify referential integrity of the loaded data",
		Long: `Check the integrity of the loaded Pokédex data.

This command:
  1. Rebuilds the in-memory dataset from the SQLite snapshot,
     exercising every validation and invariant check
  2. Checks every foreign key of the database for orphaned rows

The database checks also run automatically at the end of
'dexdb populate'; this command reruns them on demand.

Examples:
  dexdb verify
  dexdb verify --jobs 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runVerify()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return verifyCmd
}

func runVerify() error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	verifier := iopopulate.NewVerifier(op)
	return verifier.Verify(ctx, cfg)
}
