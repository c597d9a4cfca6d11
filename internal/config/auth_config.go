package config

import (
	"time"
)

const (
	jwtSecretVar  = "JWT_SECRET"
	accessTTLVar  = "JWT_ACCESS_TTL"
	refreshTTLVar = "JWT_REFRESH_TTL"
)

type AuthConfig interface {
	GetJWTSecret() string
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetJWTSecret() string {
	return GetEnv(jwtSecretVar, "your-secret-key-change-in-production")
}

func (Auth) GetAccessTokenTTL() time.Duration {
	return getDuration(accessTTLVar, 15*time.Minute)
}

func (Auth) GetRefreshTokenTTL() time.Duration {
	return getDuration(refreshTTLVar, 7*24*time.Hour)
}

func getDuration(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
