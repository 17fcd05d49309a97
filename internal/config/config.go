package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// MailConfig holds the SMTP transport parameters used to deliver transcripts.
type MailConfig struct {
	Server   string
	Port     int
	Sender   string
	Password string
	UseTLS   bool
	UseAuth  bool
	Subject  string
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Config is built once at startup and passed explicitly to the components
// that need it.
type Config struct {
	Port   string
	DBPath string

	Mail MailConfig
	Log  LogConfig

	// DateFormat is a strftime pattern used for transcript timestamps.
	DateFormat string
	Location   *time.Location

	StringsFile    string
	ProfileTimeout time.Duration
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Port:   "5000",
		DBPath: "database.db",
		Mail: MailConfig{
			Server:  "localhost",
			Port:    587,
			Sender:  "alexa@local.test",
			UseTLS:  true,
			UseAuth: true,
			Subject: "Le tue note di Alexa",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		DateFormat:     "%d/%m/%Y %H:%M",
		Location:       time.UTC,
		ProfileTimeout: 10 * time.Second,
	}
}

// LoadEnv loads variables from the given .env file. A missing file is fine,
// the process environment is used as is.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func getIntEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func getDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// Load reads the environment on top of Default.
func Load() (*Config, error) {
	cfg := Default()
	var err error

	cfg.Port = getEnvDefault("PORT", cfg.Port)
	cfg.DBPath = getEnvDefault("DB_PATH", cfg.DBPath)

	cfg.Mail.Server = getEnvDefault("EMAIL_SMTP_SERVER", cfg.Mail.Server)
	if cfg.Mail.Port, err = getIntEnv("EMAIL_SMTP_PORT", cfg.Mail.Port); err != nil {
		return nil, err
	}
	cfg.Mail.Sender = getEnvDefault("EMAIL_SENDER", cfg.Mail.Sender)
	cfg.Mail.Password = os.Getenv("EMAIL_PASSWORD")
	if cfg.Mail.UseTLS, err = getBoolEnv("EMAIL_USE_TLS", cfg.Mail.UseTLS); err != nil {
		return nil, err
	}
	if cfg.Mail.UseAuth, err = getBoolEnv("EMAIL_USE_AUTH", cfg.Mail.UseAuth); err != nil {
		return nil, err
	}
	cfg.Mail.Subject = getEnvDefault("EMAIL_SUBJECT", cfg.Mail.Subject)

	cfg.Log.Level = getEnvDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(getEnvDefault("LOG_FORMAT", cfg.Log.Format))
	cfg.Log.File = os.Getenv("LOG_FILE")

	cfg.DateFormat = getEnvDefault("DATE_FORMAT", cfg.DateFormat)
	if tz := os.Getenv("DISPLAY_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	cfg.StringsFile = os.Getenv("STRINGS_FILE")
	if cfg.ProfileTimeout, err = getDurationEnv("PROFILE_TIMEOUT", cfg.ProfileTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}
