package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a question bank from a JSON file",
	Long:  "Validates the file against the question bank schema and upserts each question by id.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open bank file: %w", err)
		}
		defer f.Close()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.Questions(newRNG()).ImportBank(ctx, f)
		if err != nil {
			return fmt.Errorf("import bank: %w", err)
		}

		fmt.Printf("Imported %d question(s) from %s\n", n, args[0])
		return nil
	},
}
