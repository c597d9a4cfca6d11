package sleep

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the user has no data for that week.
var ErrNotFound = errors.New("sleep week not found")

// Repo persists sleep-week documents, unique per (user, year, weekNumber).
type Repo interface {
	// Upsert creates or replaces the week keyed by (UserID, Year, WeekNumber).
	Upsert(ctx context.Context, week *Week) (*Week, error)
	Get(ctx context.Context, userID string, year, weekNumber int) (*Week, error)
	// ListByUser returns all weeks for a user, most recent first. A year of 0
	// means no year filter.
	ListByUser(ctx context.Context, userID string, year int) ([]*Week, error)
}
