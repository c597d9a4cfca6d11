package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/simfrisk/SleepJournal/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyPrincipal stores the authenticated token claims.
const ContextKeyPrincipal ContextKey = "principal"

// AuthError is the structured failure produced by Authenticate. RequireAuth
// writes exactly this error, so callers can distinguish "not authenticated"
// from unrelated internal failures.
type AuthError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	return e.Message
}

func unauthorized(message string) *AuthError {
	return &AuthError{Code: codeUnauthorized, Message: message, StatusCode: http.StatusUnauthorized}
}

// ExtractBearer pulls the token out of an Authorization header value. Returns
// "" unless the value is exactly two space-separated parts with the literal
// scheme "Bearer"; the scheme comparison is case-sensitive.
func ExtractBearer(headerValue string) string {
	if headerValue == "" {
		return ""
	}
	parts := strings.Split(headerValue, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Authenticate extracts and verifies the bearer access token on a request.
// Every failure is normalized to an AuthError; library errors never escape.
func (s *Server) Authenticate(r *http.Request) (*token.Claims, *AuthError) {
	rawToken := ExtractBearer(r.Header.Get("Authorization"))
	if rawToken == "" {
		return nil, unauthorized("No authorization token provided")
	}

	claims, err := s.codec.Verify(rawToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, unauthorized("Token expired")
		}
		return nil, unauthorized("Invalid token")
	}

	if !claims.IsAccess() {
		return nil, unauthorized("Invalid token type")
	}

	return claims, nil
}

// RequireAuth guards a handler with Authenticate, writing the auth failure
// itself and injecting the principal into the request context on success.
func (s *Server) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authErr := s.Authenticate(r)
		if authErr != nil {
			s.writeError(w, authErr.Code, authErr.Message, authErr.StatusCode, "")
			return
		}
		ctx := context.WithValue(r.Context(), ContextKeyPrincipal, claims)
		next(w, r.WithContext(ctx))
	}
}

// PrincipalFromContext returns the claims RequireAuth stored, or nil when the
// request never passed through it.
func PrincipalFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(ContextKeyPrincipal).(*token.Claims)
	return claims
}
