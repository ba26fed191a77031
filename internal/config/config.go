package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by every binary.
type Config struct {
	Env       string
	LogLevel  string
	LogFormat string
}

// ServerConfig adds the settings only the HTTP API reads.
type ServerConfig struct {
	Config
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the shared configuration from the environment. When
// PASSGEN_ENV_FILE names a file, its variables are loaded first without
// overriding ones already set.
func Load() (Config, error) {
	if path := os.Getenv("PASSGEN_ENV_FILE"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	return Config{
		Env:       getEnv("PASSGEN_ENV", "development"),
		LogLevel:  getEnv("PASSGEN_LOG_LEVEL", "info"),
		LogFormat: getEnv("PASSGEN_LOG_FORMAT", "text"),
	}, nil
}

// LoadServer reads the shared configuration plus the listen port and the
// rate limit of the HTTP API.
func LoadServer() (ServerConfig, error) {
	base, err := Load()
	if err != nil {
		return ServerConfig{}, err
	}

	cfg := ServerConfig{
		Config: base,
		Port:   getEnv("PASSGEN_PORT", "8080"),
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("PASSGEN_RATE_LIMIT_RPS", "5"), 64); err != nil {
		return ServerConfig{}, fmt.Errorf("parse PASSGEN_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("PASSGEN_RATE_LIMIT_BURST", "10")); err != nil {
		return ServerConfig{}, fmt.Errorf("parse PASSGEN_RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return ServerConfig{}, fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return cfg, nil
}

// NewLogger builds a slog logger writing to w. Unknown levels fall back to info.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
