package settings

import (
	"encoding/json"
	"time"
)

// Theme and view-mode values accepted from the client.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	ViewModeWeek      = "week"
	ViewModeDay       = "day"
	ViewModeAnalytics = "analytics"
)

// Settings is a user's stored UI preferences, unique per user. TargetSchedule
// is client-defined and stored opaquely.
type Settings struct {
	UserID         string          `json:"-"`
	TargetSchedule json.RawMessage `json:"targetSchedule,omitempty"`
	Theme          string          `json:"theme"`
	ViewMode       string          `json:"viewMode"`
	SelectedDay    int             `json:"selectedDay"`
	UpdatedAt      time.Time       `json:"-"`
}

// Defaults returns the settings a user has before ever saving any.
func Defaults(userID string) *Settings {
	return &Settings{
		UserID:      userID,
		Theme:       ThemeLight,
		ViewMode:    ViewModeWeek,
		SelectedDay: 0,
	}
}

// ValidTheme reports whether the value is an accepted theme.
func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

// ValidViewMode reports whether the value is an accepted view mode.
func ValidViewMode(mode string) bool {
	return mode == ViewModeWeek || mode == ViewModeDay || mode == ViewModeAnalytics
}

// ValidSelectedDay reports whether the day index is within the week.
func ValidSelectedDay(day int) bool {
	return day >= 0 && day <= 6
}
