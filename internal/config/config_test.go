package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 1500*time.Millisecond, cfg.UploadDelay)
	assert.Equal(t, time.Second, cfg.VerifyDelay)
	assert.True(t, cfg.IsDevelopment())
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("VERIFY_DELAY", "10ms")
	t.Setenv("UPLOAD_DELAY", "not-a-duration")

	cfg := config.New()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Millisecond, cfg.VerifyDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.UploadDelay, "malformed durations fall back to the default")
}
