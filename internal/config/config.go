package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from defaults,
// then a .env file if present, then the process environment.
type Config struct {
	APIBaseURL string `env:"MAILVET_API_URL"`
	StateDir   string `env:"MAILVET_STATE_DIR"`

	DBPath    string
	TokenPath string
	LogPath   string

	RequestTimeout  time.Duration `env:"MAILVET_REQUEST_TIMEOUT"`
	TemplateListTTL time.Duration
	SupportListTTL  time.Duration
	MonitorInterval time.Duration `env:"MAILVET_MONITOR_INTERVAL"`
	FetchPageSize   int
}

// Load builds the configuration from defaults and environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:      "http://localhost:5000/api",
		StateDir:        filepath.Join(userConfigDir(), "mailvet"),
		RequestTimeout:  10 * time.Second,
		TemplateListTTL: 60 * time.Second,
		SupportListTTL:  5 * time.Minute,
		MonitorInterval: 30 * time.Second,
		FetchPageSize:   30,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	cfg.DBPath = filepath.Join(cfg.StateDir, "cache.db")
	cfg.TokenPath = filepath.Join(cfg.StateDir, "token")
	cfg.LogPath = filepath.Join(cfg.StateDir, "debug.log")
	return cfg, nil
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
