package server

import (
	"net/http"
	"time"

	"github.com/simfrisk/SleepJournal/users"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userSummary(u *users.User) map[string]any {
	return map[string]any{
		"id":          u.ID,
		"email":       u.Email,
		"lastLoginAt": u.LastLoginAt.Format(time.RFC3339),
	}
}

// SignupHandler creates a new account and starts a session for it.
func (s *Server) SignupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body credentialsRequest
		if err := parseBody(r, &body); err != nil {
			s.writeError(w, codeValidation, err.Error(), http.StatusBadRequest, "")
			return
		}

		session, err := s.sessions.Signup(r.Context(), body.Email, body.Password)
		if err != nil {
			s.writeServiceError(w, err, "Failed to create user")
			return
		}

		w.Header().Set("Set-Cookie", s.refreshCookie.BuildSetCookie(session.RefreshToken))
		s.writeSuccess(w, http.StatusCreated, map[string]any{
			"user": map[string]any{
				"id":    session.User.ID,
				"email": session.User.Email,
			},
			"accessToken": session.AccessToken,
		})
	}
}

// LoginHandler authenticates credentials and starts a session.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body credentialsRequest
		if err := parseBody(r, &body); err != nil {
			s.writeError(w, codeValidation, err.Error(), http.StatusBadRequest, "")
			return
		}

		session, err := s.sessions.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			s.writeServiceError(w, err, "Login failed")
			return
		}

		w.Header().Set("Set-Cookie", s.refreshCookie.BuildSetCookie(session.RefreshToken))
		s.writeSuccess(w, http.StatusOK, map[string]any{
			"user":        userSummary(session.User),
			"accessToken": session.AccessToken,
		})
	}
}

// RefreshHandler rotates the token pair carried by the refresh cookie. The new
// pair trusts the verified claims; no persistence lookup is performed.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshToken := ExtractFromCookieHeader(r.Header.Get("Cookie"))
		if refreshToken == "" {
			s.writeError(w, codeUnauthorized, "No refresh token provided", http.StatusUnauthorized, "")
			return
		}

		pair, err := s.sessions.Refresh(refreshToken)
		if err != nil {
			s.writeServiceError(w, err, "Failed to refresh token")
			return
		}

		w.Header().Set("Set-Cookie", s.refreshCookie.BuildSetCookie(pair.RefreshToken))
		s.writeSuccess(w, http.StatusOK, map[string]any{
			"accessToken": pair.AccessToken,
		})
	}
}

// LogoutHandler clears the refresh cookie. No token verification happens here;
// logout succeeds even with an invalid or missing token.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Set-Cookie", s.refreshCookie.BuildClearCookie())
		s.writeSuccess(w, http.StatusOK, map[string]any{
			"message": "Logged out successfully",
		})
	}
}
