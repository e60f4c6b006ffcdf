package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/config"
	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "docdot",
	Short: "Adaptive medical quiz companion",
	Long:  "Docdot — terminal quiz companion for medical students, with spaced repetition, XP, badges, and learning analytics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// API keys and overrides may live in a local .env file.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DOCDOT_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner profile to use (defaults to $USER)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file with engine overrides")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DOCDOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the learner id from --user, DOCDOT_USER, or $USER.
func resolveUser(cmd *cobra.Command) (string, error) {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u, nil
	}
	if u := os.Getenv("DOCDOT_USER"); u != "" {
		return u, nil
	}
	if u := os.Getenv("USER"); u != "" {
		return u, nil
	}
	return "", fmt.Errorf("cannot determine learner id: set --user or DOCDOT_USER")
}

// resolveConfig builds the engine configuration, applying file overrides
// when --config is given.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

// openState opens the store and loads the current learner's profile.
// The caller owns closing the returned store.
func openState(cmd *cobra.Command) (*learner.State, *store.Store, error) {
	userID, err := resolveUser(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	state, err := loadOrCreateState(cmd.Context(), st, userID)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return state, st, nil
}
