package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/simfrisk/SleepJournal/sleep"
)

type saveWeekRequest struct {
	Year          int               `json:"year"`
	WeekNumber    int               `json:"weekNumber"`
	WeekStartDate string            `json:"weekStartDate"`
	WeekData      []json.RawMessage `json:"weekData"`
}

func weekSummary(w *sleep.Week) map[string]any {
	return map[string]any{
		"year":          w.Year,
		"weekNumber":    w.WeekNumber,
		"weekStartDate": w.WeekStartDate,
		"weekData":      w.WeekData,
	}
}

// SaveWeekHandler upserts one week of diary data for the authenticated user.
func (s *Server) SaveWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())

		var body saveWeekRequest
		if err := parseBody(r, &body); err != nil {
			s.writeError(w, codeValidation, err.Error(), http.StatusBadRequest, "")
			return
		}

		if body.Year == 0 || body.WeekNumber == 0 || body.WeekStartDate == "" || body.WeekData == nil {
			s.writeError(w, codeValidation,
				"year, weekNumber, weekStartDate, and weekData are required",
				http.StatusBadRequest, "")
			return
		}
		if len(body.WeekData) != sleep.DaysPerWeek {
			s.writeError(w, codeValidation, "weekData must be an array of 7 days", http.StatusBadRequest, "")
			return
		}

		weekData, err := json.Marshal(body.WeekData)
		if err != nil {
			s.writeError(w, codeValidation, "Invalid weekData", http.StatusBadRequest, "")
			return
		}

		week, err := s.repos.Weeks.Upsert(r.Context(), &sleep.Week{
			UserID:        principal.UserID,
			Year:          body.Year,
			WeekNumber:    body.WeekNumber,
			WeekStartDate: body.WeekStartDate,
			WeekData:      weekData,
		})
		if err != nil {
			log.Error().Err(err).Str("user_id", principal.UserID).Msg("save week failed")
			s.writeError(w, codeServerError, "Failed to save week data", http.StatusInternalServerError, err.Error())
			return
		}

		s.writeSuccess(w, http.StatusOK, map[string]any{
			"message": "Week data saved successfully",
			"weekId":  week.ID,
		})
	}
}

// GetWeekHandler returns one week of diary data, or week:null when the user
// has never saved that week.
func (s *Server) GetWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			s.writeError(w, codeValidation, "year must be a valid number", http.StatusBadRequest, "")
			return
		}
		weekNumber, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil {
			s.writeError(w, codeValidation, "week must be a valid number", http.StatusBadRequest, "")
			return
		}

		week, err := s.repos.Weeks.Get(r.Context(), principal.UserID, year, weekNumber)
		if err != nil {
			if errors.Is(err, sleep.ErrNotFound) {
				s.writeSuccess(w, http.StatusOK, map[string]any{"week": nil})
				return
			}
			log.Error().Err(err).Str("user_id", principal.UserID).Msg("get week failed")
			s.writeError(w, codeServerError, "Failed to get week data", http.StatusInternalServerError, err.Error())
			return
		}

		s.writeSuccess(w, http.StatusOK, map[string]any{"week": weekSummary(week)})
	}
}

// ListWeeksHandler returns all of the user's weeks, most recent first, with an
// optional year filter.
func (s *Server) ListWeeksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())

		year := 0
		if rawYear := r.URL.Query().Get("year"); rawYear != "" {
			parsed, err := strconv.Atoi(rawYear)
			if err != nil {
				s.writeError(w, codeValidation, "year must be a valid number", http.StatusBadRequest, "")
				return
			}
			year = parsed
		}

		weeks, err := s.repos.Weeks.ListByUser(r.Context(), principal.UserID, year)
		if err != nil {
			log.Error().Err(err).Str("user_id", principal.UserID).Msg("list weeks failed")
			s.writeError(w, codeServerError, "Failed to get weeks", http.StatusInternalServerError, err.Error())
			return
		}

		summaries := make([]map[string]any, 0, len(weeks))
		for _, week := range weeks {
			summaries = append(summaries, weekSummary(week))
		}
		s.writeSuccess(w, http.StatusOK, map[string]any{"weeks": summaries})
	}
}
