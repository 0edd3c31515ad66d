package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("USERS_TABLE_NAME", "users")
	t.Setenv("MEDIA_TABLE_NAME", "media")
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "users", cfg.UsersTable)
		assert.Equal(t, "media", cfg.MediaTable)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
		assert.Equal(t, ":8080", cfg.ServerAddress)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET", "")

		_, err := New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("MissingUsersTable", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("USERS_TABLE_NAME", "")

		_, err := New()
		require.Error(t, err)
	})

	t.Run("MissingMediaTable", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MEDIA_TABLE_NAME", "")

		_, err := New()
		require.Error(t, err)
	})

	t.Run("TokenTTLOverride", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKEN_TTL", "30m")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	})
}

func TestNewAuthorizer(t *testing.T) {
	t.Run("OnlySecretRequired", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("USERS_TABLE_NAME", "")
		t.Setenv("MEDIA_TABLE_NAME", "")

		cfg, err := NewAuthorizer()
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.JWTSecret)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := NewAuthorizer()
		require.Error(t, err)
	})
}
