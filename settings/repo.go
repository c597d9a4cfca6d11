package settings

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the user has never saved settings.
var ErrNotFound = errors.New("settings not found")

// Repo persists per-user settings documents.
type Repo interface {
	Get(ctx context.Context, userID string) (*Settings, error)
	// Upsert creates or replaces the settings keyed by UserID.
	Upsert(ctx context.Context, s *Settings) (*Settings, error)
}
