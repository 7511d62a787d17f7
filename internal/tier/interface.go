package tier

import (
	"context"

	"karobar-dashboard/internal/model"
)

// Manager answers feature-gating questions and records usage. It replaces
// the source app's ambient tier singleton: callers receive it explicitly
// and usage counters are plain data behind a Store.
type Manager interface {
	// CanUseFeature reports whether the user's tier still allows the feature.
	CanUseFeature(ctx context.Context, userID, feature string) bool

	// UpdateUsage increments the usage counter for the feature.
	UpdateUsage(ctx context.Context, userID, feature string) error

	// SetTier switches the user to the named tier. Unknown names are rejected.
	SetTier(ctx context.Context, userID string, t model.Tier) error

	// Current returns the user's tier state snapshot.
	Current(ctx context.Context, userID string) (model.TierState, error)
}

// Store persists tier state per user scope. The default implementation is a
// single JSON document on disk, the server-side analog of the source app's
// browser local storage.
type Store interface {
	Load(userID string) (model.TierState, bool, error)
	Save(userID string, state model.TierState) error
}
