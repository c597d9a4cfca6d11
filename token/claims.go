package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Type discriminates the two token kinds minted by the Issuer. Access and
// refresh tokens share one encoding; every consumer must check the type, so an
// access token can never stand in for a refresh token or vice versa.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

// Claims is the payload embedded in both access and refresh tokens.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	TokenType Type   `json:"type"`
	jwt.RegisteredClaims
}

// IsAccess reports whether the claims belong to an access token.
func (c *Claims) IsAccess() bool {
	return c.TokenType == TypeAccess
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c *Claims) IsRefresh() bool {
	return c.TokenType == TypeRefresh
}
