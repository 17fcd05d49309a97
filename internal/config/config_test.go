package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_PATH", "EMAIL_SMTP_SERVER", "EMAIL_SMTP_PORT", "EMAIL_SENDER",
		"EMAIL_PASSWORD", "EMAIL_USE_TLS", "EMAIL_USE_AUTH", "DATE_FORMAT", "DISPLAY_TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "database.db", cfg.DBPath)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "alexa@local.test", cfg.Mail.Sender)
	assert.True(t, cfg.Mail.UseTLS)
	assert.True(t, cfg.Mail.UseAuth)
	assert.Equal(t, "%d/%m/%Y %H:%M", cfg.DateFormat)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EMAIL_SMTP_SERVER", "smtp.example.org")
	t.Setenv("EMAIL_SMTP_PORT", "2525")
	t.Setenv("EMAIL_USE_TLS", "False")
	t.Setenv("EMAIL_USE_AUTH", "false")
	t.Setenv("DISPLAY_TIMEZONE", "Europe/Rome")
	t.Setenv("PROFILE_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.org", cfg.Mail.Server)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.False(t, cfg.Mail.UseTLS)
	assert.False(t, cfg.Mail.UseAuth)
	assert.Equal(t, "Europe/Rome", cfg.Location.String())
	assert.Equal(t, 3*time.Second, cfg.ProfileTimeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("EMAIL_SMTP_PORT", "submission")

	_, err := Load()
	assert.ErrorContains(t, err, "EMAIL_SMTP_PORT")
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VOICE_NOTES_TEST_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("VOICE_NOTES_TEST_KEY") })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("VOICE_NOTES_TEST_KEY"))
}
