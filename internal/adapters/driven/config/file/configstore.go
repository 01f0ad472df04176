package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// ConfigFileName is the TOML file read from the config directory.
const ConfigFileName = "config.toml"

// Environment variables overriding the model endpoint settings. The API
// key in particular is usually supplied via environment rather than
// written into the config file.
const (
	EnvAPIKey    = "OPENAI_API_KEY"
	EnvBaseURL   = "OPENAI_BASE_URL"
	EnvChatModel = "ORIONWIKI_CHAT_MODEL"
)

// DefaultConfigDir returns ~/.orionwiki, the default location for the
// config file, prompt files and data directory.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".orionwiki"), nil
}

// LoadConfig assembles the process configuration: pipeline defaults,
// overridden by the TOML file when present, overridden by environment
// variables. A missing config file is not an error. The result is
// validated before being returned.
func LoadConfig(configDir string) (domain.Config, error) {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return domain.Config{}, err
		}
		configDir = dir
	}

	cfg := domain.DefaultConfig()
	cfg.Storage.DataDir = filepath.Join(configDir, "data")

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file yet - defaults plus environment apply.
	case err != nil:
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if cfg.LLM.ChatModel == "" {
		cfg.LLM.ChatModel = "gpt-4o-mini"
	}
	if cfg.LLM.EmbedModel == "" {
		cfg.LLM.EmbedModel = "text-embedding-3-small"
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded config.
func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv(EnvChatModel); v != "" {
		cfg.LLM.ChatModel = v
	}
}

// WriteDefaultConfig creates a starter config file if none exists, so
// users have something concrete to edit. Existing files are left alone.
func WriteDefaultConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	cfg := domain.DefaultConfig()
	cfg.Storage.DataDir = filepath.Join(configDir, "data")
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
