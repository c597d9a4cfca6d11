package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/simfrisk/SleepJournal/auth"
	"github.com/simfrisk/SleepJournal/token"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Wire error codes shared with the SPA client.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUnauthorized       = "UNAUTHORIZED"
	codeUserExists         = "USER_EXISTS"
	codeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	codeServerError        = "SERVER_ERROR"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// setCORSHeaders attaches the permissive CORS headers every response carries.
func (s *Server) setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", s.config.GetAllowedOrigin())
	w.Header().Set("Access-Control-Allow-Methods", s.config.GetAllowedMethods())
	w.Header().Set("Access-Control-Allow-Headers", s.config.GetAllowedHeaders())
	w.Header().Set("Access-Control-Allow-Credentials", "true")
}

// writeSuccess writes {"success":true, ...data}.
func (s *Server) writeSuccess(w http.ResponseWriter, statusCode int, data map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range data {
		body[k] = v
	}
	s.writeJSON(w, statusCode, body)
}

// writeError writes {"success":false,"error":{code,message,details?}}. Details
// are included only outside production.
func (s *Server) writeError(w http.ResponseWriter, code, message string, statusCode int, details string) {
	e := errorBody{Code: code, Message: message}
	if !s.config.IsProduction() {
		e.Details = details
	}
	s.writeJSON(w, statusCode, map[string]any{"success": false, "error": e})
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	s.setCORSHeaders(w)
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError converts a session-service error to its wire form. Anything
// unrecognized is an internal failure: logged for the operator, returned as a
// SERVER_ERROR with the generic fallback message.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var validationErr *auth.ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.writeError(w, codeValidation, validationErr.Message, http.StatusBadRequest, "")
	case errors.Is(err, auth.ErrUserExists):
		s.writeError(w, codeUserExists, "User with this email already exists", http.StatusConflict, "")
	case errors.Is(err, auth.ErrInvalidCredentials):
		s.writeError(w, codeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized, "")
	case errors.Is(err, auth.ErrAccountDeactivated):
		s.writeError(w, codeUnauthorized, "Account is deactivated", http.StatusUnauthorized, "")
	case errors.Is(err, auth.ErrInvalidTokenType):
		s.writeError(w, codeUnauthorized, "Invalid token type", http.StatusUnauthorized, "")
	case errors.Is(err, token.ErrExpired):
		s.writeError(w, codeUnauthorized, "Token expired", http.StatusUnauthorized, "")
	case errors.Is(err, token.ErrMalformed):
		s.writeError(w, codeUnauthorized, "Invalid token", http.StatusUnauthorized, "")
	default:
		log.Error().Err(err).Msg(fallbackMessage)
		s.writeError(w, codeServerError, fallbackMessage, http.StatusInternalServerError, err.Error())
	}
}

// parseBody decodes a JSON request body into dst. An empty body decodes to the
// zero value, matching clients that POST without a payload.
func parseBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.New("Invalid JSON in request body")
	}
	return nil
}
