package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where the configuration lives and generate its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if a.ConfigManager != nil {
			fmt.Println(a.ConfigManager.ConfigFile())
			return nil
		}
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSchemaWrite bool

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Long: `Print the JSON schema of config.toml. With --write the schema is stored
as config.schema.json next to the config file for editor completion.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if configSchemaWrite {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			path, err := config.GenerateSchemaFile(dir)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		}

		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json into the config directory")
}
