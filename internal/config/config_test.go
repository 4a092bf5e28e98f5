package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers restoration; the unset makes Load see no value
	for _, key := range []string{"SERVER_PORT", "DB_PATH", "JWT_SECRET_KEY", "PASSWORD_SCHEME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "UsedPhonesShop.db", cfg.Database.Path)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "sha256", cfg.Auth.PasswordScheme)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/shop.db")
	t.Setenv("JWT_SECRET_KEY", "super-secret")
	t.Setenv("PASSWORD_SCHEME", "bcrypt")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/shop.db", cfg.Database.Path)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordScheme)
}

func TestLoad_InvalidPasswordScheme(t *testing.T) {
	t.Setenv("PASSWORD_SCHEME", "md5")

	_, err := Load()
	assert.Error(t, err)
}
