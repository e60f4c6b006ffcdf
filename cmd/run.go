package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docdot/docdot/internal/app"
	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/logging"
	"github.com/docdot/docdot/internal/quiz"
	"github.com/docdot/docdot/internal/screens/home"
	quizscreen "github.com/docdot/docdot/internal/screens/quiz"
	"github.com/docdot/docdot/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userID, err := resolveUser(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	state, err := loadOrCreateState(ctx, st, userID)
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger := logging.NewDefault(debug)
	defer func() { _ = logger.Sync() }()
	logger.Info("session start",
		zap.String("user_id", userID),
		zap.Int("level", state.Stats.Level))

	rng := newRNG()
	deps := home.Deps{
		Quiz: quizscreen.Deps{
			State:     state,
			Engine:    learner.NewEngine(cfg),
			Selector:  quiz.NewSelector(st.Questions(rng), cfg.Selector, rng),
			Profiles:  st.Profiles(),
			Answers:   st.Answers(),
			Logger:    logger,
			SessionID: uuid.NewString(),
		},
		Categories: cfg.Categories,
	}

	return app.Run(deps)
}

// loadOrCreateState fetches the learner's profile, creating a fresh one
// on first run.
func loadOrCreateState(ctx context.Context, st *store.Store, userID string) (*learner.State, error) {
	state, err := st.Profiles().Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", userID, err)
	}
	if state == nil {
		state = learner.NewState(userID, userID)
	}
	return state, nil
}

func newRNG() *rand.Rand {
	now := time.Now()
	return rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
}
