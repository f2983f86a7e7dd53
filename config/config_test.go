package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		def      bool
		expected bool
	}{
		{"", true, true},
		{"", false, false},
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"off", true, false},
		{"0", true, false},
		{"maybe", true, true},
	}

	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		assert.Equal(t, tt.expected, getEnvBool("TEST_BOOL", tt.def), "value %q", tt.value)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "")
	assert.Equal(t, 10, getEnvInt("TEST_INT", 10))

	t.Setenv("TEST_INT", "25")
	assert.Equal(t, 25, getEnvInt("TEST_INT", 10))

	t.Setenv("TEST_INT", "-3")
	assert.Equal(t, 10, getEnvInt("TEST_INT", 10))

	t.Setenv("TEST_INT", "ten")
	assert.Equal(t, 10, getEnvInt("TEST_INT", 10))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "")
	assert.Equal(t, time.Hour, getEnvDuration("TEST_TTL", time.Hour))

	t.Setenv("TEST_TTL", "90m")
	assert.Equal(t, 90*time.Minute, getEnvDuration("TEST_TTL", time.Hour))

	t.Setenv("TEST_TTL", "45")
	assert.Equal(t, 45*time.Minute, getEnvDuration("TEST_TTL", time.Hour))

	t.Setenv("TEST_TTL", "soon")
	assert.Equal(t, time.Hour, getEnvDuration("TEST_TTL", time.Hour))
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
