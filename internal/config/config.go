package config

import (
	"fmt"
	"log"
	"os"
)

// DefaultJWTSecret is used when JWT_SECRET_KEY is unset. Deployments must
// override it; the fallback only exists so the demo runs out of the box.
const DefaultJWTSecret = "Your_Secret_Key_Should_Be_Long_Enough"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig contains database-related settings
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	JWTSecret      string
	PasswordScheme string // "sha256" or "bcrypt"
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "UsedPhonesShop.db"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET_KEY", ""),
			PasswordScheme: getEnv("PASSWORD_SCHEME", "sha256"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET_KEY not set, falling back to the built-in default secret")
		cfg.Auth.JWTSecret = DefaultJWTSecret
	}
	if s := cfg.Auth.PasswordScheme; s != "sha256" && s != "bcrypt" {
		return nil, fmt.Errorf("invalid PASSWORD_SCHEME %q, expected sha256 or bcrypt", s)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
