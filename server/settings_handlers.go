package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/simfrisk/SleepJournal/settings"
)

// updateSettingsRequest carries a partial update; absent fields keep their
// stored value.
type updateSettingsRequest struct {
	TargetSchedule json.RawMessage `json:"targetSchedule"`
	Theme          *string         `json:"theme"`
	ViewMode       *string         `json:"viewMode"`
	SelectedDay    *int            `json:"selectedDay"`
}

// GetSettingsHandler returns the user's stored settings, falling back to the
// defaults when nothing has been saved yet.
func (s *Server) GetSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())

		stored, err := s.repos.Settings.Get(r.Context(), principal.UserID)
		if err != nil {
			if errors.Is(err, settings.ErrNotFound) {
				s.writeSuccess(w, http.StatusOK, map[string]any{"settings": settings.Defaults(principal.UserID)})
				return
			}
			log.Error().Err(err).Str("user_id", principal.UserID).Msg("get settings failed")
			s.writeError(w, codeServerError, "Failed to get settings", http.StatusInternalServerError, err.Error())
			return
		}

		s.writeSuccess(w, http.StatusOK, map[string]any{"settings": stored})
	}
}

// UpdateSettingsHandler merges the request into the user's stored settings and
// saves the result.
func (s *Server) UpdateSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())

		var body updateSettingsRequest
		if err := parseBody(r, &body); err != nil {
			s.writeError(w, codeValidation, err.Error(), http.StatusBadRequest, "")
			return
		}

		if body.Theme != nil && !settings.ValidTheme(*body.Theme) {
			s.writeError(w, codeValidation, `theme must be either "light" or "dark"`, http.StatusBadRequest, "")
			return
		}
		if body.ViewMode != nil && !settings.ValidViewMode(*body.ViewMode) {
			s.writeError(w, codeValidation, `viewMode must be "week", "day", or "analytics"`, http.StatusBadRequest, "")
			return
		}
		if body.SelectedDay != nil && !settings.ValidSelectedDay(*body.SelectedDay) {
			s.writeError(w, codeValidation, "selectedDay must be between 0 and 6", http.StatusBadRequest, "")
			return
		}

		current, err := s.repos.Settings.Get(r.Context(), principal.UserID)
		if err != nil {
			if !errors.Is(err, settings.ErrNotFound) {
				log.Error().Err(err).Str("user_id", principal.UserID).Msg("get settings failed")
				s.writeError(w, codeServerError, "Failed to update settings", http.StatusInternalServerError, err.Error())
				return
			}
			current = settings.Defaults(principal.UserID)
		}

		if body.TargetSchedule != nil {
			current.TargetSchedule = body.TargetSchedule
		}
		if body.Theme != nil {
			current.Theme = *body.Theme
		}
		if body.ViewMode != nil {
			current.ViewMode = *body.ViewMode
		}
		if body.SelectedDay != nil {
			current.SelectedDay = *body.SelectedDay
		}

		updated, err := s.repos.Settings.Upsert(r.Context(), current)
		if err != nil {
			log.Error().Err(err).Str("user_id", principal.UserID).Msg("update settings failed")
			s.writeError(w, codeServerError, "Failed to update settings", http.StatusInternalServerError, err.Error())
			return
		}

		s.writeSuccess(w, http.StatusOK, map[string]any{
			"message":  "Settings updated successfully",
			"settings": updated,
		})
	}
}
