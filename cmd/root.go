// Package cmd implements the dexdb command-line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/dexdata/dexdb/internal/ioconfig"
	app "github.com/dexdata/dexdb/pkg"
	"github.com/dexdata/dexdb/pkg/config"
	"github.com/dexdata/dexdb/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "dexdb",
		Short:   "dexdb manages the lifecycle of the Pokédex PostgreSQL database",
		Long: `dexdb manages the lifecycle of the Pokédex PostgreSQL database.

Features:
  - Schema Management: create and migrate the reference schema
  - Data Population: bulk import from a SQLite snapshot
  - Verification: referential integrity checks over the loaded data

Configuration is read from dexdb.yaml, DEXDB_* environment
variables, and flags, in increasing order of precedence.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for dexdb")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to dexdb.yaml")
	pf.String("host", "", "PostgreSQL host")
	pf.Int("port", 0, "PostgreSQL port")
	pf.String("user", "", "PostgreSQL user")
	pf.String("password", "", "PostgreSQL password")
	pf.String("database", "", "PostgreSQL database name")
	pf.String("ssl-mode", "", "PostgreSQL SSL mode")
	pf.Int("jobs", 0, "number of concurrent workers")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getPopulateCmd(),
		getVerifyCmd(),
		getConfigCmd(),
	)

	return rootCmd
}

// bootstrap loads the configuration and sets up logging before any
// subcommand runs.
func bootstrap(cmd *cobra.Command, _ []string) error {
	res, err := ioconfig.Load(cfgFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg, err = ioconfig.BindFlags(cmd, res.Config)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.SetDefault(logger.New(&cfg.Log))

	if res.Source == "file" {
		slog.Info("Configuration loaded", "config_file", res.SourcePath)
	} else {
		slog.Info("Configuration loaded", "source", res.Source)
	}

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if ok, _ := cmd.Flags().GetBool("version"); ok {
		fmt.Printf("%s\n", cmd.Version)
		return nil
	}
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
