package auth

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/simfrisk/SleepJournal/token"
	"github.com/simfrisk/SleepJournal/users"
)

// TokenPair is the access/refresh pair minted for one session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is the result of a successful signup or login.
type Session struct {
	User *users.User
	TokenPair
}

// SessionService composes the credential verifier, user collaborator, and token
// issuer into the four session-lifecycle flows. It holds no cross-request state.
type SessionService struct {
	userRepo users.UserRepo
	issuer   *token.Issuer
	codec    *token.Codec
	nowTime  func() time.Time
}

// SessionServiceOption defines a function type to modify the SessionService instance.
type SessionServiceOption func(*SessionService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) SessionServiceOption {
	return func(ss *SessionService) {
		ss.nowTime = nowFunc
	}
}

// NewSessionService initializes a SessionService with required dependencies.
func NewSessionService(userRepo users.UserRepo, issuer *token.Issuer, codec *token.Codec, options ...SessionServiceOption) (*SessionService, error) {
	if userRepo == nil {
		return nil, errors.New("[NewSessionService] user repo is required")
	}
	if issuer == nil {
		return nil, errors.New("[NewSessionService] token issuer is required")
	}
	if codec == nil {
		return nil, errors.New("[NewSessionService] token codec is required")
	}

	service := &SessionService{
		userRepo: userRepo,
		issuer:   issuer,
		codec:    codec,
		nowTime:  time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Signup validates the credentials, creates the user record, and mints a token
// pair for it.
func (ss *SessionService) Signup(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, validationErr("Email and password are required")
	}
	if err := users.ValidateEmail(email); err != nil {
		return nil, validationErr("Invalid email format")
	}
	if err := users.ValidatePasswordStrength(password); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if _, err := ss.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, errors.Wrap(err, "[SessionService.Signup] GetByEmail")
	}

	passwordHash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[SessionService.Signup] HashPassword")
	}

	now := ss.nowTime()
	user, err := ss.userRepo.Insert(ctx, &users.User{
		Email:         email,
		PasswordHash:  passwordHash,
		IsActive:      true,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
		LastLoginAt:   now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[SessionService.Signup] Insert")
	}

	pair, err := ss.issuePair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, TokenPair: *pair}, nil
}

// Login verifies the password against the stored hash and mints a token pair.
// Unknown email and wrong password produce the same error.
func (ss *SessionService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, validationErr("Email and password are required")
	}

	user, err := ss.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "[SessionService.Login] GetByEmail")
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := ss.nowTime()
	if err := ss.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, errors.Wrap(err, "[SessionService.Login] UpdateLastLogin")
	}
	user.LastLoginAt = now

	pair, err := ss.issuePair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, TokenPair: *pair}, nil
}

// Refresh verifies a refresh token and mints a brand-new pair from its claims.
// Rotation trusts the verified payload; no persistence lookup is performed, so
// a deactivated account keeps refreshing until the token's natural expiry.
func (ss *SessionService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := ss.codec.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefresh() {
		return nil, ErrInvalidTokenType
	}
	return ss.issuePair(claims.UserID, claims.Email)
}

func (ss *SessionService) issuePair(userID, email string) (*TokenPair, error) {
	accessToken, err := ss.issuer.AccessToken(userID, email)
	if err != nil {
		return nil, errors.Wrap(err, "[SessionService] AccessToken")
	}
	refreshToken, err := ss.issuer.RefreshToken(userID, email)
	if err != nil {
		return nil, errors.Wrap(err, "[SessionService] RefreshToken")
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
