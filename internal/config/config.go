package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the paths the application needs: where to persist board
// and theme state, where to find a catalog override, and where to write the
// optional debug log.
type Config struct {
	DataDir     string
	CatalogPath string
	DebugLog    string
}

const (
	defaultConfigPath  = "~/.config/eventbingo/config.toml"
	defaultDataDir     = "~/.local/share/eventbingo"
	defaultCatalogPath = "~/.config/eventbingo/catalog.toml"
)

// Load locates and parses the config file, falling back to defaults when
// missing. A missing config file is not an error; a present but malformed
// one is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:     mustExpand(defaultDataDir),
		CatalogPath: mustExpand(defaultCatalogPath),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir  string `toml:"data_dir"`
		Catalog  string `toml:"catalog"`
		DebugLog string `toml:"debug_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if cat := strings.TrimSpace(raw.Catalog); cat != "" {
		cfg.CatalogPath = mustExpand(cat)
	}
	if log := strings.TrimSpace(raw.DebugLog); log != "" {
		cfg.DebugLog = mustExpand(log)
	}

	return cfg, nil
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
