package server

import (
	"net/http"
	"strings"
	"time"
)

// RefreshCookieName is the cookie carrying the refresh token between the
// browser and the refresh endpoint.
const RefreshCookieName = "refreshToken"

// RefreshCookie builds and parses the refresh-token cookie. The cookie is
// HTTP-only, path-scoped to /, SameSite=Strict, and Secure in production, so
// script can never read the refresh token and cross-site requests never send it.
type RefreshCookie struct {
	ttl    time.Duration
	secure bool
}

// NewRefreshCookie creates the transport. ttl becomes the cookie Max-Age;
// secure should be true in production.
func NewRefreshCookie(ttl time.Duration, secure bool) *RefreshCookie {
	return &RefreshCookie{ttl: ttl, secure: secure}
}

// BuildSetCookie returns the Set-Cookie header value attaching the refresh token.
func (rc *RefreshCookie) BuildSetCookie(refreshToken string) string {
	c := &http.Cookie{
		Name:     RefreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   rc.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(rc.ttl.Seconds()),
	}
	return c.String()
}

// BuildClearCookie returns the Set-Cookie header value instructing the browser
// to drop the refresh token immediately.
func (rc *RefreshCookie) BuildClearCookie() string {
	c := &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   rc.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1, // serialized as Max-Age=0
	}
	return c.String()
}

// ExtractFromCookieHeader parses a raw Cookie header and returns the refresh
// token value, or "" when the header is empty or carries no refreshToken entry.
// Tolerates any number of "; "-joined cookies.
func ExtractFromCookieHeader(headerValue string) string {
	if headerValue == "" {
		return ""
	}
	for _, part := range strings.Split(headerValue, ";") {
		part = strings.TrimSpace(part)
		if value, found := strings.CutPrefix(part, RefreshCookieName+"="); found {
			return value
		}
	}
	return ""
}
