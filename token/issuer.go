package token

import (
	"time"
)

const (
	// DefaultAccessTTL is the lifetime of an access token unless configured otherwise.
	DefaultAccessTTL = 15 * time.Minute
	// DefaultRefreshTTL is the lifetime of a refresh token unless configured otherwise.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Issuer mints paired access and refresh tokens for a principal. It is pure
// given its codec and clock; there is no side effect beyond token construction.
type Issuer struct {
	codec      *Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// IssuerOption defines a function type to modify the Issuer instance.
type IssuerOption func(*Issuer)

// WithTokenExpiry overrides the access and refresh token lifetimes.
func WithTokenExpiry(accessTTL, refreshTTL time.Duration) IssuerOption {
	return func(i *Issuer) {
		i.accessTTL = accessTTL
		i.refreshTTL = refreshTTL
	}
}

// NewIssuer creates an issuer with the default 15 minute / 7 day lifetimes.
func NewIssuer(codec *Codec, options ...IssuerOption) *Issuer {
	i := &Issuer{
		codec:      codec,
		accessTTL:  DefaultAccessTTL,
		refreshTTL: DefaultRefreshTTL,
	}
	for _, opt := range options {
		opt(i)
	}
	if i.accessTTL <= 0 {
		i.accessTTL = DefaultAccessTTL
	}
	if i.refreshTTL <= 0 {
		i.refreshTTL = DefaultRefreshTTL
	}
	return i
}

// AccessToken mints a short-lived access token for the given principal.
func (i *Issuer) AccessToken(userID, email string) (string, error) {
	return i.codec.Sign(&Claims{
		UserID:    userID,
		Email:     email,
		TokenType: TypeAccess,
	}, i.accessTTL)
}

// RefreshToken mints a long-lived refresh token for the given principal.
func (i *Issuer) RefreshToken(userID, email string) (string, error) {
	return i.codec.Sign(&Claims{
		UserID:    userID,
		Email:     email,
		TokenType: TypeRefresh,
	}, i.refreshTTL)
}

// RefreshTTL exposes the refresh lifetime; the cookie transport needs it for Max-Age.
func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}
