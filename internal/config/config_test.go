package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "sailshr-dev-secret", cfg.JWT.Secret)
	assert.Equal(t, "1h", cfg.JWT.AccessExpiration)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_SECRET_KEY", "override-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local,http://b.local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "override-secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{App: AppConfig{Port: 4000}, JWT: JWTConfig{Secret: "s"}}
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "s"
	cfg.App.Port = 0
	assert.Error(t, cfg.Validate())
}
