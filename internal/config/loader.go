package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the flappy configuration.
// Search order: customPath -> ~/.flappy/flappy.{yaml,toml} -> ./configs/flappy.{yaml,toml}
// -> embedded default -> hard-coded default. Only an explicit customPath can fail.
// The result is always normalized.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlappyConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultFlappyConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode("flappy.yaml", defaultFlappyYAML)
	if err != nil {
		cfg = DefaultFlappyConfig()
		cfg.Normalize()
	}
	return cfg, nil
}

// decode parses data on top of the defaults, so missing keys keep their default value.
// Files ending in .toml use TOML, everything else YAML.
func decode(path string, data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".flappy")
		paths = append(paths, filepath.Join(dir, "flappy.yaml"), filepath.Join(dir, "flappy.toml"))
	}
	return append(paths,
		filepath.Join("configs", "flappy.yaml"),
		filepath.Join("configs", "flappy.toml"),
	)
}
