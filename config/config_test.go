package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRE", "72h")
	assert.Equal(t, 72*time.Hour, getDuration("JWT_EXPIRE", 24*time.Hour))

	t.Setenv("JWT_EXPIRE", "not-a-duration")
	assert.Equal(t, 24*time.Hour, getDuration("JWT_EXPIRE", 24*time.Hour))

	t.Setenv("JWT_EXPIRE", "")
	assert.Equal(t, 24*time.Hour, getDuration("JWT_EXPIRE", 24*time.Hour))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
}

func TestGoogleEnabled(t *testing.T) {
	assert.False(t, (&Config{}).GoogleEnabled())
	assert.True(t, (&Config{GoogleClientID: "id", GoogleClientSecret: "secret"}).GoogleEnabled())
}
