package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the game configuration.
// Search order: customPath -> ~/.fruitcatch/config.yaml ->
// ./configs/fruitcatch.yaml -> embedded default.
// A customPath that cannot be read or parsed is an error; the implicit
// locations fall through silently.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "fruitcatch.yaml")); err == nil {
		if cfg, err := parse(data, "configs/fruitcatch.yaml"); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte, source string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config location, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruitcatch", "config.yaml")
}
