package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hoursync/importer"
	"hoursync/storage"
)

var (
	importInputs []string
	importFormat string
	importMapper string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import time entries from CSV/Excel sources into SQLite",
	Long: `Read source files, normalize rows into time entries and store them in the
local SQLite database.

Rows already present (same group, start, duration, note and source file)
are ignored, so re-importing the same file is safe.`,
	Example: `
  # Import a generic CSV source
  hoursync import -i entries.csv

  # Import several Excel sources
  hoursync import -i january.xlsx -i february.xlsx

  # Import a Toggl detailed report export
  hoursync import -i toggl_report.csv --mapper toggl
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(importInputs) == 0 {
			return fmt.Errorf("at least one --input file is required")
		}

		mapper, err := importer.MapperByName(importMapper)
		if err != nil {
			return err
		}

		result, err := importer.Run(importInputs, importFormat, mapper)
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		inserted, err := store.InsertEntries(result.Entries)
		if err != nil {
			return err
		}

		fmt.Printf(
			"Import completed. Files: %d, Rows read: %d, Rows mapped: %d, Rows skipped: %d, New rows stored: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsMapped,
			result.RowsSkipped,
			inserted,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Source file to import (repeatable)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: csv|excel (optional, inferred from file extension)")
	importCmd.Flags().StringVar(&importMapper, "mapper", "generic", "Row mapper: generic|toggl")
	importCmd.Flags().StringVar(&importDBPath, "db", "./hoursync.db", "Path to local SQLite database")
}
