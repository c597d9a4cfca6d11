package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpired is returned by Verify when the embedded expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrMalformed is returned by Verify when the signature or structure is invalid.
	ErrMalformed = errors.New("invalid token")
)

// Codec signs and verifies the compact token payload. Verification is a pure
// function of the token and the shared secret, so a single Codec can be used
// concurrently across requests without synchronization.
type Codec struct {
	signer  Signer
	nowFunc func() time.Time
}

// CodecOption defines a function type to modify the Codec instance.
type CodecOption func(*Codec)

// WithNowFunc sets the now time function (primarily for testing)
func WithNowFunc(now func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowFunc = now
	}
}

// NewCodec creates a codec over the given signer.
func NewCodec(signer Signer, options ...CodecOption) *Codec {
	c := &Codec{
		signer:  signer,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Sign stamps iat/exp/jti onto the claims and returns the signed token.
func (c *Codec) Sign(claims *Claims, ttl time.Duration) (string, error) {
	now := c.nowFunc()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	claims.ID = uuid.New().String()
	return c.signer.Sign(claims)
}

// Verify parses and validates a token. Every library failure is normalized to
// either ErrExpired or ErrMalformed so callers never see raw parser errors.
func (c *Codec) Verify(rawToken string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwt.WithTimeFunc(c.nowFunc),
	)
	parsed, err := parser.ParseWithClaims(rawToken, &Claims{}, c.signer.GetVerificationKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}

// Decode performs unchecked decoding for non-authoritative inspection, e.g. a
// client reading its own expiry. Never use the result for authorization.
func (c *Codec) Decode(rawToken string) *Claims {
	parsed, _, err := jwt.NewParser().ParseUnverified(rawToken, &Claims{})
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
