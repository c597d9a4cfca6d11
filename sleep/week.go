package sleep

import (
	"encoding/json"
	"time"
)

// DaysPerWeek is the fixed length of a week's diary data.
const DaysPerWeek = 7

// Week is one user's sleep diary for a single ISO week. WeekData holds the
// seven per-day entries as the client submitted them; the server stores them
// opaquely and never interprets the sleep-quality fields.
type Week struct {
	ID            string          `json:"-"`
	UserID        string          `json:"-"`
	Year          int             `json:"year"`
	WeekNumber    int             `json:"weekNumber"`
	WeekStartDate string          `json:"weekStartDate"`
	WeekData      json.RawMessage `json:"weekData"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}
