package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings dexter reads at startup.
type Config struct {
	BaseURL        string
	InitialCount   int
	RequestTimeout time.Duration
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/dexter/config.toml"
	defaultBaseURL        = "https://pokeapi.co/api/v2/"
	defaultInitialCount   = 20
	defaultRequestTimeout = 10 * time.Second
	defaultLogFile        = "~/.local/state/dexter/dexter.log"

	envBaseURL = "DEXTER_BASE_URL"
	envLogFile = "DEXTER_LOG_FILE"
)

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		BaseURL:        defaultBaseURL,
		InitialCount:   defaultInitialCount,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load reads the config file at path (or the default location), falling back
// to defaults when it is missing, then applies environment overrides. A .env
// file in the working directory is honored when present.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	_ = godotenv.Load()
	applyEnv(&cfg)

	cfg.LogFile = mustExpand(cfg.LogFile)
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL        string `toml:"base_url"`
		InitialCount   int    `toml:"initial_count"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.InitialCount > 0 {
		cfg.InitialCount = raw.InitialCount
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse request_timeout %q: %w", v, err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogFile)); v != "" {
		cfg.LogFile = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
