package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads the icon configuration.
// Search order: customPath -> embedded default -> hardcoded Default().
// Fields missing from a custom file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	var embedded Config
	if err := yaml.Unmarshal(defaultIconsYAML, &embedded); err != nil || embedded.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}
