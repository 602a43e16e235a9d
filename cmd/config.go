package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dexdata/dexdb/internal/ioconfig"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	var initConfig bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
		Long: `Print the effective configuration after merging defaults,
the config file, environment variables, and flags.

With --init, write a default dexdb.yaml to the user config
directory instead. An existing file is never overwritten.

Examples:
  dexdb config
  dexdb config --init`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runConfig(initConfig)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	configCmd.Flags().BoolVar(&initConfig, "init", false,
		"write a default dexdb.yaml")

	return configCmd
}

func runConfig(initConfig bool) error {
	if initConfig {
		path, err := ioconfig.GenerateDefaultConfig()
		if err != nil {
			return err
		}
		gn.Info("Default configuration written to <em>%s</em>", path)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
