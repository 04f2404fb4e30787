package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("INSTAGRAM_USERNAME", "operator")
	t.Setenv("INSTAGRAM_PASSWORD", "secret")
}

func TestNewDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "instagram_session.json", cfg.Instagram.SessionFile)
	assert.Equal(t, "./extracted_data", cfg.Extractor.OutputDir)
	assert.Equal(t, 2, cfg.Extractor.RequestDelay)
	assert.True(t, cfg.Extractor.DownloadPhotos)
	assert.True(t, cfg.Extractor.DownloadVideos)
	assert.Equal(t, 0, cfg.Extractor.IntervalMinutes)
	assert.Equal(t, 168*time.Hour, cfg.Extractor.ArchiveRetention)
	assert.Equal(t, "instagram_extractor.log", cfg.App.LogFile)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestNewOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_FILE", "/tmp/session.json")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("REQUEST_DELAY", "0")
	t.Setenv("DOWNLOAD_PHOTOS", "false")
	t.Setenv("DOWNLOAD_VIDEOS", "FALSE")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_NAME", "extractor")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/session.json", cfg.Instagram.SessionFile)
	assert.Equal(t, "/tmp/out", cfg.Extractor.OutputDir)
	assert.Equal(t, 0, cfg.Extractor.RequestDelay)
	assert.False(t, cfg.Extractor.DownloadPhotos)
	assert.False(t, cfg.Extractor.DownloadVideos)
	assert.True(t, cfg.ArchiveEnabled())
	assert.Contains(t, cfg.GetDSN(), "host=localhost")
	assert.Contains(t, cfg.GetDSN(), "dbname=extractor")
}

func TestNewRejectsNegativeDelay(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REQUEST_DELAY", "-1")

	_, err := New()
	require.Error(t, err)
}

func TestValidateCredentials(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.ValidateCredentials())

	cfg.Instagram.Username = "operator"
	require.Error(t, cfg.ValidateCredentials())

	cfg.Instagram.Password = "secret"
	require.NoError(t, cfg.ValidateCredentials())
}

func TestDelayDurations(t *testing.T) {
	cfg := &Config{}
	cfg.Extractor.RequestDelay = 2

	assert.Equal(t, 2*time.Second, cfg.RequestDelayDuration())
	assert.Equal(t, time.Second, cfg.RelationshipDelayDuration())

	cfg.Extractor.RequestDelay = 0
	assert.Equal(t, time.Duration(0), cfg.RequestDelayDuration())
	assert.Equal(t, time.Duration(0), cfg.RelationshipDelayDuration())
}
