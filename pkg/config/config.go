package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
		LogFile   string `env:"LOG_FILE" env-default:"instagram_extractor.log"`
	}
	Instagram struct {
		Username    string `env:"INSTAGRAM_USERNAME"`
		Password    string `env:"INSTAGRAM_PASSWORD"`
		SessionFile string `env:"SESSION_FILE" env-default:"instagram_session.json"`
	}
	Extractor struct {
		OutputDir        string        `env:"OUTPUT_DIR" env-default:"./extracted_data"`
		RequestDelay     int           `env:"REQUEST_DELAY" env-default:"2"`
		DownloadPhotos   bool          `env:"DOWNLOAD_PHOTOS" env-default:"true"`
		DownloadVideos   bool          `env:"DOWNLOAD_VIDEOS" env-default:"true"`
		IntervalMinutes  int           `env:"EXTRACT_INTERVAL_MINUTES" env-default:"0"`
		ArchiveRetention time.Duration `env:"ARCHIVE_RETENTION" env-default:"168h"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
}

func New() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(".env"); err == nil {
		if err := cleanenv.ReadConfig(".env", cfg); err != nil {
			return nil, fmt.Errorf("failed to read .env configuration: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment configuration: %w", err)
	}

	if cfg.Extractor.RequestDelay < 0 {
		return nil, errors.New("REQUEST_DELAY must not be negative")
	}

	return cfg, nil
}

// ValidateCredentials checks the required Instagram credentials. The migrate
// tool shares this config without needing them, so this is not part of New.
func (c *Config) ValidateCredentials() error {
	if c.Instagram.Username == "" || c.Instagram.Password == "" {
		return errors.New("INSTAGRAM_USERNAME and INSTAGRAM_PASSWORD are required")
	}
	return nil
}

// RequestDelayDuration is the pause inserted before profile fetches and
// between successive post items.
func (c *Config) RequestDelayDuration() time.Duration {
	return time.Duration(c.Extractor.RequestDelay) * time.Second
}

// RelationshipDelayDuration is half the post delay, relationship pages carry
// a lighter payload per item.
func (c *Config) RelationshipDelayDuration() time.Duration {
	return c.RequestDelayDuration() / 2
}

// ArchiveEnabled reports whether the optional Postgres run archive is
// configured.
func (c *Config) ArchiveEnabled() bool {
	return c.Postgres.Host != ""
}

// GetDSN builds the Postgres connection string for the run archive.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode)
}
