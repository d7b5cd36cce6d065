package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "@hourly", cfg.ReaperSchedule)
	assert.NotZero(t, cfg.BcryptCost)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "tomorrow")
		_, err := NewConfig()
		assert.Error(t, err)
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "99")
		_, err := NewConfig()
		assert.Error(t, err)
	})
}
