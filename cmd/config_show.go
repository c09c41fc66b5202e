package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hoursync/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Print the configuration as resolved from file, environment and defaults.

The ledger token is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Printf("Config file: %s\n", used)
		}
		fmt.Printf("Ledger URL:    %s\n", cfg.Ledger.URL)
		fmt.Printf("Staff email:   %s\n", cfg.Ledger.StaffEmail)
		fmt.Printf("Ledger token:  %s\n", maskToken(cfg.Ledger.Token))
		fmt.Printf("Mappings:      %d\n", len(cfg.Mappings))
		for _, mapping := range cfg.Mappings {
			fmt.Printf("  - group=%q job_id=%s task_id=%s\n", mapping.Group, mapping.JobID, mapping.TaskID)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 4 {
		return "****"
	}
	return token[:2] + "****" + token[len(token)-2:]
}
