package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"stockforecast/internal/forecast"
)

type Forecast struct {
	BaseURL          string `json:"base_url"`
	DefaultSymbol    string `json:"default_symbol"`
	ScanAllFragments bool   `json:"scan_all_fragments"`
}

type HTTP struct {
	// RequestTimeoutSec of 0 keeps the transport default.
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	UserAgent         string `json:"user_agent"`
}

type Log struct {
	Level string `json:"level"`
}

type Config struct {
	Forecast Forecast `json:"forecast"`
	HTTP     HTTP     `json:"http"`
	Log      Log      `json:"log"`
}

func Default() Config {
	return Config{
		Forecast: Forecast{
			BaseURL:       forecast.DefaultBaseURL,
			DefaultSymbol: "gme",
		},
		HTTP: HTTP{UserAgent: "stock-forecast/1.0"},
		Log:  Log{Level: "info"},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override individual fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the fields the pipeline cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Forecast.BaseURL) == "" {
		return fmt.Errorf("forecast.base_url is required")
	}
	if c.HTTP.RequestTimeoutSec < 0 {
		return fmt.Errorf("http.request_timeout_sec must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FORECAST_BASE_URL"); v != "" {
		cfg.Forecast.BaseURL = v
	}
	if v := os.Getenv("FORECAST_DEFAULT_SYMBOL"); v != "" {
		cfg.Forecast.DefaultSymbol = v
	}
	if v := os.Getenv("FORECAST_SCAN_ALL"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			cfg.Forecast.ScanAllFragments = true
		case "0", "false", "no", "n":
			cfg.Forecast.ScanAllFragments = false
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		if _, err := fmt.Sscanf(v, "%d", &x); err == nil && x >= 0 {
			cfg.HTTP.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.HTTP.UserAgent = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
