package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tunnelFile = "tunnel.yaml"

// Load loads the tunnel configuration.
// Search order: customPath -> ~/.colorswitch/configs/tunnel.yaml ->
// ./configs/tunnel.yaml -> embedded default -> DefaultTunnelConfig.
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func Load(customPath string) (TunnelConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (TunnelConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTunnelConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tunnelFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", tunnelFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTunnelYAML)
	if err != nil {
		return DefaultTunnelConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults.
func parse(data []byte) (TunnelConfig, error) {
	cfg := DefaultTunnelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTunnelConfig(), err
	}
	return cfg, nil
}

// Marshal renders a config as YAML, used by the `config` command.
func Marshal(cfg TunnelConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorswitch", "configs", filename)
}
