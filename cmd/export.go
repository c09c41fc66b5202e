package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hoursync/output"
	"hoursync/storage"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-group daily totals from SQLite to CSV/Excel",
	Long: `Export the aggregated view of local time entries: one row per billing
group and calendar day with total minutes, hours and the combined note.

Output format can be selected explicitly via --format or inferred from
the --output extension.`,
	Example: `
  # Export daily totals to CSV
  hoursync export --db ./hoursync.db --output ./summary.csv

  # Export daily totals to Excel
  hoursync export --db ./hoursync.db --output ./summary.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.ListEntries()
		if err != nil {
			return err
		}

		summaries := output.BuildGroupDaySummaries(entries)
		if err := output.WriteGroupDaySummaries(exportOutput, format, summaries); err != nil {
			return err
		}

		fmt.Printf("Export completed. Rows: %d, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./hoursync.db", "Path to local SQLite database")

	_ = exportCmd.MarkFlagRequired("output")
}
