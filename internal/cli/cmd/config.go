package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/infrastructure/config"
)

var schemaOutputDir string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file, database and log locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		configFile := ""
		if a.Manager != nil {
			configFile = a.Manager.GetConfigFile()
		}
		logDir := a.Config().Logging.LogDir
		if logDir == "" {
			logDir, _ = config.GetLogDir()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, a.Theme.RenderKeyValue("config", configFile))
		fmt.Fprintln(out, a.Theme.RenderKeyValue("database", a.Config().Database.Path))
		fmt.Fprintln(out, a.Theme.RenderKeyValue("logs", logDir))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of the configuration file, for editor completion.
With --output the schema is written next to other files in that directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaOutputDir != "" {
			path, err := config.GenerateSchemaFile(schemaOutputDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&schemaOutputDir, "output", "o", "", "write config.schema.json into this directory")
}
