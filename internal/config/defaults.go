package config

import (
	_ "embed"
)

//go:embed defaults/icons.yaml
var defaultIconsYAML []byte

// Default returns the built-in configuration: the classic style at
// 16, 48 and 128 pixels, written to ./images.
func Default() Config {
	return Config{
		Style:     "classic",
		OutputDir: "images",
		Sizes:     []int{16, 48, 128},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultIconsYAML
}
