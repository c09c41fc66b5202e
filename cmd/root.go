package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hoursync/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hoursync",
	Short: "Import local time entries and sync per-day totals to the ledger billing service.",
	Long: `hoursync keeps a local record of worked time and uploads each day's total
to the remote ledger billing service exactly once.

It imports time entries from CSV or Excel sources into a local SQLite
database, aggregates them per billing group and calendar day, checks the
ledger for days already recorded, and uploads only the remainder.`,
	Example: `
  # Create configuration file
  hoursync config create

  # Import a generic CSV source
  hoursync import -i entries.csv

  # Import a Toggl detailed report export
  hoursync import -i toggl_report.csv --mapper toggl

  # Preview what a sync would upload (no writes)
  hoursync sync --dry-run

  # Upload new day totals to the ledger
  hoursync sync

  # Export per-group daily totals
  hoursync export --output ./summary.csv
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.hoursync.yaml, then ./.hoursync.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Name() == "sync"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".hoursync" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hoursync")
	}

	viper.SetEnvPrefix("hoursync")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match (e.g. HOURSYNC_LEDGER_TOKEN)

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: hoursync config create")
	}
}
