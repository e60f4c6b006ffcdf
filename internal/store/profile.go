package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docdot/docdot/ent"
	"github.com/docdot/docdot/ent/profile"
	"github.com/docdot/docdot/internal/learner"
)

// ProfileRepo persists learner states as JSON snapshots, one row per
// user. Load of an unknown user returns nil; the caller starts fresh.
type ProfileRepo struct {
	client *ent.Client
}

// Load returns the stored state for a user, or nil if none exists.
func (r *ProfileRepo) Load(ctx context.Context, userID string) (*learner.State, error) {
	p, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile %s: %w", userID, err)
	}

	snap, err := dataToSnapshot(p.Data)
	if err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	snap.UserID = p.UserID
	snap.DisplayName = p.DisplayName
	return learner.FromSnapshot(snap), nil
}

// Save upserts the state snapshot for its user.
func (r *ProfileRepo) Save(ctx context.Context, state *learner.State) error {
	data, err := snapshotToData(state.ToSnapshot())
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", state.UserID, err)
	}

	existing, err := r.client.Profile.Query().
		Where(profile.UserID(state.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query profile %s: %w", state.UserID, err)
		}
		_, err = r.client.Profile.Create().
			SetUserID(state.UserID).
			SetDisplayName(state.DisplayName).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile %s: %w", state.UserID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetDisplayName(state.DisplayName).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", state.UserID, err)
	}
	return nil
}

// All returns every stored learner state. Used by the leaderboard.
func (r *ProfileRepo) All(ctx context.Context) ([]*learner.State, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	states := make([]*learner.State, 0, len(rows))
	for _, p := range rows {
		snap, err := dataToSnapshot(p.Data)
		if err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", p.UserID, err)
		}
		snap.UserID = p.UserID
		snap.DisplayName = p.DisplayName
		states = append(states, learner.FromSnapshot(snap))
	}
	return states, nil
}

// Delete removes a user's stored state. Missing profiles are fine.
func (r *ProfileRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Profile.Delete().
		Where(profile.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", userID, err)
	}
	return nil
}

// snapshotToData converts a snapshot to the map form ent stores as JSON.
func snapshotToData(snap *learner.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// dataToSnapshot converts the stored map form back to a snapshot.
func dataToSnapshot(data map[string]any) (*learner.Snapshot, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var snap learner.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
