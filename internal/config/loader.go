package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAnimation loads the bouncing spheres configuration.
// Search order: customPath -> ~/.scenelab/configs/animation.yaml -> ./configs/animation.yaml -> embedded default
func LoadAnimation(customPath string) (AnimationConfig, error) {
	cfg, err := load(customPath, "animation", DefaultAnimationConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Bodies.Validate(); err != nil {
		return cfg, fmt.Errorf("config animation: %w", err)
	}
	return cfg, nil
}

// LoadParticles loads the particle fountain configuration.
// Search order: customPath -> ~/.scenelab/configs/particles.yaml -> ./configs/particles.yaml -> embedded default
func LoadParticles(customPath string) (ParticlesConfig, error) {
	return load(customPath, "particles", DefaultParticlesConfig)
}

// load decodes the first config found for name over the hardcoded defaults,
// so a file only needs the keys it overrides.
func load[T any](customPath, name string, fallback func() T) (T, error) {
	cfg := fallback()
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, fallback); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), fallback); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes path over fresh defaults; unreadable or malformed files are skipped.
func tryFile[T any](path string, fallback func() T) (T, bool) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scenelab", "configs", filename)
}
