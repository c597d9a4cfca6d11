package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar    = "PORT"
	appNameVar    = "APP_NAME"
	envVar        = "ENV"
	databaseURLVar = "DATABASE_URL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Sleep Journal")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return "development"
	}
	return env
}

// IsProduction selects the Secure cookie attribute and hides error details in
// response bodies.
func (e EnvVars) IsProduction() bool {
	return e.GetEnv() == "production"
}

func (EnvVars) GetDatabaseURL() string {
	return GetEnv(databaseURLVar, "postgres://localhost:5432/sleep_journal?sslmode=disable")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
