package cmd

import (
	"context"
	"errors"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/dexdata/dexdb/internal/iodb"
	"github.com/dexdata/dexdb/internal/iopopulate"
	"github.com/dexdata/dexdb/pkg/errcode"
)

// getPopulateCmd returns the populate command.
func getPopulateCmd() *cobra.Command {
	var (
		snapshot string
		tables   []string
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database from a SQLite snapshot",
		Long: `Import Pokédex data from a SQLite snapshot into PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Opens the SQLite snapshot
  3. Copies every table with the COPY protocol, in dependency order
  4. Verifies referential integrity over all foreign keys
  5. Records the run in the dex_loads table

Examples:
  # Import everything from the configured snapshot
  dexdb populate

  # Import from a specific snapshot file
  dexdb populate --snapshot /data/pokedex.sqlite

  # Import selected tables only
  dexdb populate -t pokemon,pokemon_types`,
		Aliases: []string{"load"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, snapshot, tables)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringVarP(
		&snapshot, "snapshot", "s", "",
		"path to the SQLite snapshot",
	)
	populateCmd.Flags().StringSliceVarP(
		&tables, "tables", "t", []string{},
		"tables to import (empty = all)",
	)

	return populateCmd
}

func runPopulate(
	cmd *cobra.Command,
	snapshot string,
	tables []string,
) error {
	ctx := context.Background()

	if cmd.Flags().Changed("snapshot") {
		cfg.Populate.SnapshotPath = snapshot
	}
	if cmd.Flags().Changed("tables") {
		cfg.Populate.Tables = tables
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		return &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'dexdb create'</em> first to initialize the schema.`,
			Err: errors.New("cannot insert data into empty database"),
		}
	}

	populator := iopopulate.NewPopulator(op)

	gn.Info("Starting data population from the snapshot...")
	if err := populator.Populate(ctx, cfg); err != nil {
		return err
	}

	gn.Info(`Next steps:
  - Run '<em>dexdb verify</em>' to re-check references at any time
  - Database is ready for queries
`)

	return nil
}
