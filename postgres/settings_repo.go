package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/simfrisk/SleepJournal/settings"
)

var _ settings.Repo = (*SettingsRepo)(nil)

// SettingsRepo is the postgres implementation of settings.Repo.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, userID string) (*settings.Settings, error) {
	query := `SELECT user_id, target_schedule, theme, view_mode, selected_day, updated_at
	          FROM user_settings WHERE user_id = $1`

	s := &settings.Settings{}
	var schedule []byte
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&s.UserID, &schedule, &s.Theme, &s.ViewMode, &s.SelectedDay, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrNotFound
		}
		return nil, errors.Wrap(err, "[SettingsRepo.Get] db error")
	}
	s.TargetSchedule = schedule
	return s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, s *settings.Settings) (*settings.Settings, error) {
	query := `INSERT INTO user_settings (user_id, target_schedule, theme, view_mode, selected_day, updated_at)
	          VALUES ($1, $2, $3, $4, $5, now())
	          ON CONFLICT (user_id)
	          DO UPDATE SET target_schedule = EXCLUDED.target_schedule,
	                        theme = EXCLUDED.theme,
	                        view_mode = EXCLUDED.view_mode,
	                        selected_day = EXCLUDED.selected_day,
	                        updated_at = now()
	          RETURNING updated_at`

	var schedule []byte
	if s.TargetSchedule != nil {
		schedule = []byte(s.TargetSchedule)
	}
	stored := *s
	err := r.db.QueryRowContext(ctx, query,
		s.UserID, schedule, s.Theme, s.ViewMode, s.SelectedDay).Scan(&stored.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "[SettingsRepo.Upsert] db error")
	}
	return &stored, nil
}
