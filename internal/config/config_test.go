package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("SMTP_HOST")
	defer os.Setenv("SMTP_HOST", origHost)

	os.Setenv("SMTP_HOST", "mail.test")
	os.Setenv("SMTP_PORT", "2525")
	os.Setenv("MAIL_RECIPIENT", "cases@clinic.test")
	os.Setenv("UPLOAD_MAX_FILES", "3")
	os.Setenv("MINIO_USE_SSL", "true")
	defer func() {
		os.Unsetenv("SMTP_PORT")
		os.Unsetenv("MAIL_RECIPIENT")
		os.Unsetenv("UPLOAD_MAX_FILES")
		os.Unsetenv("MINIO_USE_SSL")
	}()

	cfg := Load()

	assert.Equal(t, "mail.test", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "cases@clinic.test", cfg.Mail.Recipient)
	assert.Equal(t, 3, cfg.Upload.MaxFiles)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
