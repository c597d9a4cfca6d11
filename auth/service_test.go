package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/simfrisk/SleepJournal/auth"
	"github.com/simfrisk/SleepJournal/token"
	"github.com/simfrisk/SleepJournal/users"
	fakeuserrepo "github.com/simfrisk/SleepJournal/users/repofake"
)

const (
	secretStr        = "1234"
	testUserEmail    = "john.doe@example.com"
	testUserPassword = "Password1"
)

// testFixture holds all test dependencies
type testFixture struct {
	userRepo *fakeuserrepo.FakeUserRepo
	codec    *token.Codec
	service  *auth.SessionService
}

func setupTestFixture(t *testing.T, options ...auth.SessionServiceOption) *testFixture {
	t.Helper()

	ur := fakeuserrepo.NewFakeUserRepo()
	codec := token.NewCodec(token.NewHMACSigner(secretStr))
	issuer := token.NewIssuer(codec)

	service, err := auth.NewSessionService(ur, issuer, codec, options...)
	require.NoError(t, err)

	return &testFixture{userRepo: ur, codec: codec, service: service}
}

func TestNewSessionServiceRequiresDependencies(t *testing.T) {
	codec := token.NewCodec(token.NewHMACSigner(secretStr))
	issuer := token.NewIssuer(codec)
	ur := fakeuserrepo.NewFakeUserRepo()

	_, err := auth.NewSessionService(nil, issuer, codec)
	require.Error(t, err)
	_, err = auth.NewSessionService(ur, nil, codec)
	require.Error(t, err)
	_, err = auth.NewSessionService(ur, issuer, nil)
	require.Error(t, err)
}

func TestSignup(t *testing.T) {
	f := setupTestFixture(t)

	session, err := f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.User.ID)
	require.Equal(t, testUserEmail, session.User.Email)
	require.True(t, session.User.IsActive)
	require.False(t, session.User.EmailVerified)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)

	// Stored hash is never the plaintext password.
	stored, err := f.userRepo.GetByEmail(context.Background(), testUserEmail)
	require.NoError(t, err)
	require.NotEqual(t, testUserPassword, stored.PasswordHash)
	require.True(t, users.CheckPasswordHash(testUserPassword, stored.PasswordHash))

	accessClaims, err := f.codec.Verify(session.AccessToken)
	require.NoError(t, err)
	require.True(t, accessClaims.IsAccess())
	require.Equal(t, session.User.ID, accessClaims.UserID)

	refreshClaims, err := f.codec.Verify(session.RefreshToken)
	require.NoError(t, err)
	require.True(t, refreshClaims.IsRefresh())
}

func TestSignupValidation(t *testing.T) {
	f := setupTestFixture(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", testUserPassword},
		{"empty password", testUserEmail, ""},
		{"invalid email", "not-an-email", testUserPassword},
		{"weak password", testUserEmail, "alllowercase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Signup(context.Background(), tt.email, tt.password)
			var validationErr *auth.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	_, err = f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.ErrorIs(t, err, auth.ErrUserExists)
}

func TestLogin(t *testing.T) {
	loginTime := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := setupTestFixture(t, auth.WithNowTime(func() time.Time { return loginTime }))

	_, err := f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	session, err := f.service.Login(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)
	require.Equal(t, testUserEmail, session.User.Email)
	require.Equal(t, loginTime, session.User.LastLoginAt)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)

	stored, err := f.userRepo.GetByEmail(context.Background(), testUserEmail)
	require.NoError(t, err)
	require.Equal(t, loginTime, stored.LastLoginAt)
}

func TestLoginWrongPasswordAndUnknownEmailMatch(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	_, wrongPasswordErr := f.service.Login(context.Background(), testUserEmail, "WrongPassword1")
	_, unknownEmailErr := f.service.Login(context.Background(), "nobody@example.com", testUserPassword)

	require.ErrorIs(t, wrongPasswordErr, auth.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmailErr, auth.ErrInvalidCredentials)
	require.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := setupTestFixture(t)

	passwordHash, err := users.HashPassword(testUserPassword)
	require.NoError(t, err)
	_, err = f.userRepo.Insert(context.Background(), &users.User{
		Email:        testUserEmail,
		PasswordHash: passwordHash,
		IsActive:     false,
	})
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), testUserEmail, testUserPassword)
	require.ErrorIs(t, err, auth.ErrAccountDeactivated)
}

func TestRefresh(t *testing.T) {
	f := setupTestFixture(t)

	session, err := f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	pair, err := f.service.Refresh(session.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, session.RefreshToken, pair.RefreshToken)

	claims, err := f.codec.Verify(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, claims.UserID)
	require.Equal(t, testUserEmail, claims.Email)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	f := setupTestFixture(t)

	session, err := f.service.Signup(context.Background(), testUserEmail, testUserPassword)
	require.NoError(t, err)

	_, err = f.service.Refresh(session.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidTokenType)
}

func TestRefreshInvalidToken(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Refresh("not.a.token")
	require.ErrorIs(t, err, token.ErrMalformed)
}

func TestRefreshExpiredToken(t *testing.T) {
	pastCodec := token.NewCodec(token.NewHMACSigner(secretStr),
		token.WithNowFunc(func() time.Time { return time.Now().Add(-time.Hour) }))
	pastIssuer := token.NewIssuer(pastCodec, token.WithTokenExpiry(time.Minute, time.Minute))
	expiredRefresh, err := pastIssuer.RefreshToken("user-1", testUserEmail)
	require.NoError(t, err)

	f := setupTestFixture(t)
	_, err = f.service.Refresh(expiredRefresh)
	require.ErrorIs(t, err, token.ErrExpired)
}
