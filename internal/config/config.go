package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the defaults fraglens reads from its config file. Command
// line flags and FRAGLENS_* environment variables override these.
type Config struct {
	URL               string  `toml:"url"`
	Model             string  `toml:"model"`
	Temperature       float64 `toml:"temperature"`
	LinesPerBlock     int     `toml:"lines_per_block"`
	BlocksPerFragment int     `toml:"blocks_per_fragment"`
	Theme             string  `toml:"theme"`
}

const (
	defaultConfigPath = "~/.config/fraglens/config.toml"

	DefaultURL               = "http://127.0.0.1:8080/v1/chat/completions"
	DefaultTemperature       = 0.2
	DefaultLinesPerBlock     = 10
	DefaultBlocksPerFragment = 3
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		URL:               DefaultURL,
		Temperature:       DefaultTemperature,
		LinesPerBlock:     DefaultLinesPerBlock,
		BlocksPerFragment: DefaultBlocksPerFragment,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. A present but unparseable file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := toml.Unmarshal(raw, &loaded); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if strings.TrimSpace(loaded.URL) != "" {
		cfg.URL = strings.TrimSpace(loaded.URL)
	}
	if strings.TrimSpace(loaded.Model) != "" {
		cfg.Model = strings.TrimSpace(loaded.Model)
	}
	if loaded.Temperature > 0 {
		cfg.Temperature = loaded.Temperature
	}
	if loaded.LinesPerBlock > 0 {
		cfg.LinesPerBlock = loaded.LinesPerBlock
	}
	if loaded.BlocksPerFragment > 0 {
		cfg.BlocksPerFragment = loaded.BlocksPerFragment
	}
	if strings.TrimSpace(loaded.Theme) != "" {
		cfg.Theme = strings.TrimSpace(loaded.Theme)
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
