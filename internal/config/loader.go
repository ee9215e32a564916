package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appDir     = "platformer"
	configFile = "platformer.yaml"
)

// Load loads the platformer configuration and returns it together with the
// path it came from ("" for the embedded default).
// Search order: customPath -> $XDG_CONFIG_HOME/platformer/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (PlatformerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", configFile)
	if cfg, err := LoadFile(local); err == nil {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// LoadFile reads and validates a single configuration file.
func LoadFile(path string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the XDG config file path if it exists.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(filepath.Join(appDir, configFile))
	if err != nil {
		return ""
	}
	return path
}
