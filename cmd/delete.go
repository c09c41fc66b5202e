package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteDBPath string
	deleteYes    bool
)

var (
	deletePromptInput  io.Reader = os.Stdin
	deletePromptOutput io.Writer = os.Stdout
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the local SQLite database",
	Long: `Remove the local SQLite database file and everything in it.

The whole file is removed, not individual entries. Unless --yes is
given, the command asks for confirmation first and proceeds only when
the answer is exactly "Y".`,
	Example: `
  # Remove the database after interactive confirmation
  hoursync delete --db ./hoursync.db

  # Remove it without a prompt, e.g. from a cleanup script
  hoursync delete --db ./hoursync.db --yes
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			confirmed, err := askDeleteConfirmation(deletePromptInput, deletePromptOutput, deleteDBPath)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted, nothing deleted.")
				return nil
			}
		}

		size, err := removeDatabase(deleteDBPath)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %s (%d bytes).\n", deleteDBPath, size)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVar(&deleteDBPath, "db", "./hoursync.db", "Path to local SQLite database")
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}

func askDeleteConfirmation(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("no input to confirm on, pass --yes to skip the prompt")
	}
	if output == nil {
		output = io.Discard
	}

	fmt.Fprintf(output, "This permanently removes %s and all imported entries.\n", path)
	fmt.Fprint(output, "Type Y to continue: ")

	answer, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return strings.TrimSpace(answer) == "Y", nil
}

func removeDatabase(path string) (int64, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("no database at %s, nothing to delete", path)
	}
	if err != nil {
		return 0, fmt.Errorf("stat database: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory, not a database file", path)
	}
	if err := os.Remove(path); err != nil {
		return 0, fmt.Errorf("remove database: %w", err)
	}
	return info.Size(), nil
}
