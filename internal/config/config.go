package config

type Config interface {
	EnvConfig
	CorsConfig
	AuthConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	IsProduction() bool
	GetDatabaseURL() string
}

type CorsConfig interface {
	GetAllowedOrigin() string
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Auth
}

func New() Config {
	return mainConfig{}
}
