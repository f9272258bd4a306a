package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, the database and
// screenshots.
const AppDir = ".dinojump"

// Load loads the game configuration.
// Search order: customPath -> ~/.dinojump/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Keys missing from a file keep their default values. A file that exists
// but cannot be used is an error rather than skipped.
func Load(customPath string) (DinoConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parseFile(customPath, data)
	}

	for _, p := range []string{userConfigPath("dino.yaml"), filepath.Join("configs", "dino.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: cannot read %s: %w", p, err)
		}
		return parseFile(p, data)
	}

	cfg, err := parse(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

func parseFile(path string, data []byte) (DinoConfig, error) {
	cfg, err := parse(data)
	if err != nil {
		return DinoConfig{}, fmt.Errorf("config: cannot use %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
