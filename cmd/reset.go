package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current learner's profile and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes all progress for %q: XP, badges, streaks, and the review schedule.\n", userID)
			if n, err := st.Answers().CountForUser(ctx, userID); err == nil && n > 0 {
				fmt.Printf("Your %d logged answers stay in the history log.\n", n)
			}
			fmt.Print("Type 'reset' to confirm: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "reset" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.Profiles().Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}

		fmt.Printf("Profile %q reset. Your question bank is untouched.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
