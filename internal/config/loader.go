package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// Environment variables that override file settings.
const (
	EnvAnswersFile = "WORDLE_ANSWERS_FILE"
	EnvAllowedFile = "WORDLE_ALLOWED_FILE"
	EnvRevealMS    = "WORDLE_REVEAL_MS"
	EnvDailySalt   = "WORDLE_DAILY_SALT"
)

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.wordle/wordle.yaml -> ./configs/wordle.yaml -> embedded default
//
// Keys missing from a file keep their default values. A .env file in the
// working directory is loaded first when present.
func Load(customPath string) (Config, error) {
	_ = godotenv.Load()

	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/wordle.yaml"}
	if p := userConfigPath("wordle.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := Default()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// applyEnv overlays non-empty environment values on cfg.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvAnswersFile); v != "" {
		cfg.Words.AnswersFile = v
	}
	if v := getenv(EnvAllowedFile); v != "" {
		cfg.Words.AllowedFile = v
	}
	if v := getenv(EnvRevealMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvRevealMS, v, err)
		}
		cfg.RevealIntervalMS = ms
	}
	if v := getenv(EnvDailySalt); v != "" {
		cfg.Daily.Salt = v
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", filename)
}
