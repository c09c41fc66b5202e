package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hoursync/config"
	"hoursync/internal/timeutil"
	"hoursync/ledger"
	"hoursync/reconcile"
	"hoursync/storage"
	"hoursync/timelog"
)

var (
	syncDBPath  string
	syncURL     string
	syncToken   string
	syncFromDay string
	syncToDay   string
	syncTimeout time.Duration
	syncDryRun  bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload new per-day totals to the ledger billing service",
	Long: `Aggregate local time entries per billing group and calendar day, check the
ledger for days already recorded, and upload only the remainder.

For each mapped billing group the command queries the ledger once per day
(cached across groups within a run). A day is skipped when any remote
entry already carries the group's configured task id. Billing groups
without a mapping are skipped entirely and reported.

A failed day query aborts the run: without it, no safe upload decision can
be made. A failed upload is reported but does not stop uploads for other
days; re-running sync is the recovery path, since the dedup filter is
recomputed fresh against the ledger each run.`,
	Example: `
  # Upload everything not yet recorded remotely
  hoursync sync

  # Restrict to a date range (inclusive)
  hoursync sync --from 2026-03-01 --to 2026-03-31

  # Preview without writing to the ledger
  hoursync sync --dry-run

  # Override ledger URL and token from the config
  hoursync sync --url https://ledger.example.com --token $LEDGER_TOKEN
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		if strings.TrimSpace(syncURL) != "" {
			cfg.Ledger.URL = syncURL
		}
		if strings.TrimSpace(syncToken) != "" {
			cfg.Ledger.Token = syncToken
		}
		dryRun := syncDryRun || cfg.Sync.DryRunDefault

		store, err := storage.OpenSQLite(syncDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		allEntries, err := store.ListEntries()
		if err != nil {
			return err
		}

		from, to, err := parseSyncRange(syncFromDay, syncToDay)
		if err != nil {
			return err
		}
		entries := filterEntriesByDayRange(allEntries, from, to)
		if len(entries) == 0 {
			fmt.Println("No local entries to sync.")
			return nil
		}

		client, err := ledger.NewClient(ledger.ClientConfig{
			BaseURL:   cfg.Ledger.URL,
			Token:     cfg.Ledger.Token,
			UserAgent: "hoursync/1.0",
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		result, runErr := reconcile.Run(ctx, client, cfg, entries, reconcile.Options{DryRun: dryRun})
		if runErr != nil && result == nil {
			return runErr
		}

		printSyncSummary(result, dryRun)
		return runErr
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncDBPath, "db", "./hoursync.db", "Path to local SQLite database")
	syncCmd.Flags().StringVar(&syncURL, "url", "", "Override ledger URL from config")
	syncCmd.Flags().StringVar(&syncToken, "token", "", "Override ledger API token from config")
	syncCmd.Flags().StringVar(&syncFromDay, "from", "", "Filter start day (inclusive), format YYYY-MM-DD")
	syncCmd.Flags().StringVar(&syncToDay, "to", "", "Filter end day (inclusive), format YYYY-MM-DD")
	syncCmd.Flags().DurationVar(&syncTimeout, "timeout", 120*time.Second, "Timeout for the whole sync run")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute the upload set without writing to the ledger")
}

func printSyncSummary(result *reconcile.Result, dryRun bool) {
	for _, group := range result.SkippedGroups {
		fmt.Printf("Warning: skipping group %q: no job/task mapping configured\n", group)
	}

	if result.UploadsAttempted == 0 {
		fmt.Println("No new entries.")
		if result.DaysAlreadyRecorded > 0 {
			fmt.Printf("Days already recorded remotely: %d\n", result.DaysAlreadyRecorded)
		}
		return
	}

	hours := float64(result.MinutesUploaded) / 60.0
	if dryRun {
		fmt.Printf(
			"Dry-run: would upload %d day entr%s totalling %d minutes (%.2f hours).\n",
			result.UploadsAttempted,
			pluralYIes(result.UploadsAttempted),
			result.MinutesUploaded,
			hours,
		)
	} else {
		fmt.Printf(
			"Uploaded %d of %d day entr%s totalling %d minutes (%.2f hours).\n",
			result.UploadsSucceeded,
			result.UploadsAttempted,
			pluralYIes(result.UploadsAttempted),
			result.MinutesUploaded,
			hours,
		)
	}
	if result.DaysAlreadyRecorded > 0 {
		fmt.Printf("Days already recorded remotely: %d\n", result.DaysAlreadyRecorded)
	}
}

func pluralYIes(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func parseSyncRange(fromValue, toValue string) (*time.Time, *time.Time, error) {
	var from *time.Time
	var to *time.Time
	if strings.TrimSpace(fromValue) != "" {
		day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(fromValue), time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from value %q (expected YYYY-MM-DD)", fromValue)
		}
		normalized := timeutil.StartOfDay(day)
		from = &normalized
	}
	if strings.TrimSpace(toValue) != "" {
		day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(toValue), time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to value %q (expected YYYY-MM-DD)", toValue)
		}
		normalized := timeutil.StartOfDay(day)
		to = &normalized
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("invalid range: --from must be <= --to")
	}
	return from, to, nil
}

func filterEntriesByDayRange(entries []timelog.Entry, from, to *time.Time) []timelog.Entry {
	if from == nil && to == nil {
		return append([]timelog.Entry(nil), entries...)
	}

	out := make([]timelog.Entry, 0, len(entries))
	for _, entry := range entries {
		day := timeutil.StartOfDay(entry.Start)
		if from != nil && day.Before(*from) {
			continue
		}
		if to != nil && day.After(*to) {
			continue
		}
		out = append(out, entry)
	}
	return out
}
