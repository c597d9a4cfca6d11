package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/simfrisk/SleepJournal/sleep"
)

var _ sleep.Repo = (*WeekRepo)(nil)

// WeekRepo is the postgres implementation of sleep.Repo.
type WeekRepo struct {
	db *sql.DB
}

func NewWeekRepo(db *sql.DB) *WeekRepo {
	return &WeekRepo{db: db}
}

func (r *WeekRepo) Upsert(ctx context.Context, week *sleep.Week) (*sleep.Week, error) {
	query := `INSERT INTO sleep_weeks (user_id, year, week_number, week_start_date, week_data)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, year, week_number)
	          DO UPDATE SET week_start_date = EXCLUDED.week_start_date,
	                        week_data = EXCLUDED.week_data,
	                        updated_at = now()
	          RETURNING id, created_at, updated_at`

	stored := *week
	err := r.db.QueryRowContext(ctx, query,
		week.UserID, week.Year, week.WeekNumber, week.WeekStartDate, []byte(week.WeekData)).
		Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "[WeekRepo.Upsert] db error")
	}
	return &stored, nil
}

func (r *WeekRepo) Get(ctx context.Context, userID string, year, weekNumber int) (*sleep.Week, error) {
	query := `SELECT id, user_id, year, week_number, week_start_date, week_data, created_at, updated_at
	          FROM sleep_weeks WHERE user_id = $1 AND year = $2 AND week_number = $3`

	week := &sleep.Week{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, userID, year, weekNumber).
		Scan(&week.ID, &week.UserID, &week.Year, &week.WeekNumber, &week.WeekStartDate,
			&data, &week.CreatedAt, &week.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sleep.ErrNotFound
		}
		return nil, errors.Wrap(err, "[WeekRepo.Get] db error")
	}
	week.WeekData = data
	return week, nil
}

func (r *WeekRepo) ListByUser(ctx context.Context, userID string, year int) ([]*sleep.Week, error) {
	query := `SELECT id, user_id, year, week_number, week_start_date, week_data, created_at, updated_at
	          FROM sleep_weeks WHERE user_id = $1 AND ($2 = 0 OR year = $2)
	          ORDER BY year DESC, week_number DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, year)
	if err != nil {
		return nil, errors.Wrap(err, "[WeekRepo.ListByUser] db error")
	}
	defer rows.Close()

	weeks := make([]*sleep.Week, 0)
	for rows.Next() {
		week := &sleep.Week{}
		var data []byte
		if err := rows.Scan(&week.ID, &week.UserID, &week.Year, &week.WeekNumber,
			&week.WeekStartDate, &data, &week.CreatedAt, &week.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "[WeekRepo.ListByUser] scan")
		}
		week.WeekData = data
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "[WeekRepo.ListByUser] rows")
	}
	return weeks, nil
}
