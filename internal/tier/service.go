package tier

import (
	"context"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/pkg/log"
)

type implManager struct {
	limits Limits
	store  Store
	l      log.Logger
}

// New creates a tier Manager backed by the given store.
func New(limits Limits, store Store, l log.Logger) Manager {
	return &implManager{
		limits: limits,
		store:  store,
		l:      l,
	}
}

// stateFor loads the user's state, defaulting new users to starter tier.
func (m *implManager) stateFor(userID string) (model.TierState, error) {
	state, found, err := m.store.Load(userID)
	if err != nil {
		return model.TierState{}, err
	}
	if !found {
		state = model.TierState{Tier: model.TierStarter, Usage: map[string]int{}}
	}
	if state.Usage == nil {
		state.Usage = map[string]int{}
	}
	return state, nil
}

func (m *implManager) CanUseFeature(ctx context.Context, userID, feature string) bool {
	state, err := m.stateFor(userID)
	if err != nil {
		m.l.Errorf(ctx, "tier: failed to load state for %q: %v", userID, err)
		return false
	}

	limit, ok := m.limits[state.Tier][feature]
	if !ok {
		return false
	}
	if limit < 0 { // unlimited
		return true
	}
	return state.Usage[feature] < limit
}

func (m *implManager) UpdateUsage(ctx context.Context, userID, feature string) error {
	if _, ok := m.limits[model.TierStarter][feature]; !ok {
		return ErrUnknownFeature
	}

	state, err := m.stateFor(userID)
	if err != nil {
		return err
	}
	state.Usage[feature]++

	if err := m.store.Save(userID, state); err != nil {
		m.l.Errorf(ctx, "tier: failed to persist usage for %q: %v", userID, err)
		return err
	}
	return nil
}

func (m *implManager) SetTier(ctx context.Context, userID string, t model.Tier) error {
	if _, ok := m.limits[t]; !ok {
		return ErrUnknownTier
	}

	state, err := m.stateFor(userID)
	if err != nil {
		return err
	}
	state.Tier = t

	if err := m.store.Save(userID, state); err != nil {
		m.l.Errorf(ctx, "tier: failed to persist tier for %q: %v", userID, err)
		return err
	}

	m.l.Infof(ctx, "tier: user %q switched to %s", userID, t)
	return nil
}

func (m *implManager) Current(ctx context.Context, userID string) (model.TierState, error) {
	return m.stateFor(userID)
}
