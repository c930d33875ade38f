package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, read from environment
// variables via Viper.
type Config struct {
	Host           string
	Port           string
	Environment    string // "production" enables HSTS and hides /docs
	DatabasePath   string
	JWTSecret      string // empty means generate a throwaway key at startup
	TokenLifetime  time.Duration
	AllowedOrigins string // comma-separated CORS origins
	MistralAPIKey  string
	MistralAPIURL  string
	TLSCertFile    string
	TLSKeyFile     string
}

// Load reads the configuration from environment variables, falling back to
// development defaults.
func Load() Config {
	viper.SetDefault("APP_HOST", "0.0.0.0")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "fittrack.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_LIFETIME_MINUTES", 24*60)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("MISTRAL_API_KEY", "")
	viper.SetDefault("MISTRAL_API_URL", "")
	viper.SetDefault("TLS_CERT_FILE", "")
	viper.SetDefault("TLS_KEY_FILE", "")
	viper.AutomaticEnv()

	return Config{
		Host:           viper.GetString("APP_HOST"),
		Port:           viper.GetString("APP_PORT"),
		Environment:    viper.GetString("APP_ENV"),
		DatabasePath:   viper.GetString("DATABASE_PATH"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		TokenLifetime:  time.Duration(viper.GetInt("TOKEN_LIFETIME_MINUTES")) * time.Minute,
		AllowedOrigins: viper.GetString("ALLOWED_ORIGINS"),
		MistralAPIKey:  viper.GetString("MISTRAL_API_KEY"),
		MistralAPIURL:  viper.GetString("MISTRAL_API_URL"),
		TLSCertFile:    viper.GetString("TLS_CERT_FILE"),
		TLSKeyFile:     viper.GetString("TLS_KEY_FILE"),
	}
}

// Address joins host and port into a listen address.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// IsProduction reports whether the production environment flag is set.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
