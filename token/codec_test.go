package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/simfrisk/SleepJournal/token"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-1234"
	testUserID = "user-1"
	testEmail  = "john.doe@example.com"
)

func newTestIssuer(t *testing.T, options ...token.IssuerOption) (*token.Issuer, *token.Codec) {
	t.Helper()
	codec := token.NewCodec(token.NewHMACSigner(testSecret))
	return token.NewIssuer(codec, options...), codec
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer, codec := newTestIssuer(t)

	raw, err := issuer.AccessToken(testUserID, testEmail)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, token.TypeAccess, claims.TokenType)
	require.Equal(t, testUserID, claims.UserID)
	require.Equal(t, testEmail, claims.Email)
	require.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	require.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	issuer, codec := newTestIssuer(t)

	raw, err := issuer.RefreshToken(testUserID, testEmail)
	require.NoError(t, err)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, token.TypeRefresh, claims.TokenType)
	require.True(t, claims.IsRefresh())
	require.False(t, claims.IsAccess())
}

func TestTokenLifetimes(t *testing.T) {
	issuer, codec := newTestIssuer(t, token.WithTokenExpiry(15*time.Minute, 7*24*time.Hour))

	access, err := issuer.AccessToken(testUserID, testEmail)
	require.NoError(t, err)
	refresh, err := issuer.RefreshToken(testUserID, testEmail)
	require.NoError(t, err)

	accessClaims, err := codec.Verify(access)
	require.NoError(t, err)
	refreshClaims, err := codec.Verify(refresh)
	require.NoError(t, err)

	accessLife := accessClaims.ExpiresAt.Sub(accessClaims.IssuedAt.Time)
	refreshLife := refreshClaims.ExpiresAt.Sub(refreshClaims.IssuedAt.Time)
	require.Equal(t, 15*time.Minute, accessLife)
	require.Equal(t, 7*24*time.Hour, refreshLife)
}

func TestVerifyExpiredToken(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	signingCodec := token.NewCodec(token.NewHMACSigner(testSecret), token.WithNowFunc(func() time.Time { return past }))
	issuer := token.NewIssuer(signingCodec, token.WithTokenExpiry(time.Minute, time.Minute))

	raw, err := issuer.AccessToken(testUserID, testEmail)
	require.NoError(t, err)

	verifyingCodec := token.NewCodec(token.NewHMACSigner(testSecret))
	claims, err := verifyingCodec.Verify(raw)
	require.Nil(t, claims)
	require.ErrorIs(t, err, token.ErrExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer, codec := newTestIssuer(t)

	raw, err := issuer.AccessToken(testUserID, testEmail)
	require.NoError(t, err)

	// Corrupt the signature segment.
	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := codec.Verify(tampered)
	require.Nil(t, claims)
	require.ErrorIs(t, err, token.ErrMalformed)
	require.NotErrorIs(t, err, token.ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, _ := newTestIssuer(t)

	raw, err := issuer.AccessToken(testUserID, testEmail)
	require.NoError(t, err)

	other := token.NewCodec(token.NewHMACSigner("a-different-secret"))
	_, err = other.Verify(raw)
	require.ErrorIs(t, err, token.ErrMalformed)
}

func TestVerifyGarbage(t *testing.T) {
	_, codec := newTestIssuer(t)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := codec.Verify(raw)
		require.ErrorIs(t, err, token.ErrMalformed, "input %q", raw)
	}
}

func TestDecodeIsUnchecked(t *testing.T) {
	issuer, _ := newTestIssuer(t)

	raw, err := issuer.AccessToken(testUserID, testEmail)
	require.NoError(t, err)

	// Decoding with a codec holding the wrong secret still yields the claims;
	// Decode never validates.
	other := token.NewCodec(token.NewHMACSigner("a-different-secret"))
	claims := other.Decode(raw)
	require.NotNil(t, claims)
	require.Equal(t, testUserID, claims.UserID)

	require.Nil(t, other.Decode("garbage"))
}
