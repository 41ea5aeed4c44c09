package config

import (
	_ "embed"

	"github.com/vovakirdan/scenelab/internal/sim/bounce"
	"github.com/vovakirdan/scenelab/internal/sim/particles"
)

//go:embed defaults/animation.yaml
var defaultAnimationYAML []byte

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

// DefaultAnimationConfig returns the default bouncing spheres configuration.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		Physics: bounce.DefaultConfig(),
		Bodies: BodyLayout{
			Count:       5,
			Spacing:     1.5,
			DelayStep:   0.2,
			StartHeight: 3.0,
			Diameter:    0.8,
		},
	}
}

// DefaultParticlesConfig returns the default particle fountain configuration.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		Emitter:  particles.DefaultConfig(),
		SpinRate: 0.02,
	}
}

// GetDefaultYAML returns the embedded default YAML for an example.
func GetDefaultYAML(exampleID string) []byte {
	switch exampleID {
	case "animation":
		return defaultAnimationYAML
	case "particles":
		return defaultParticlesYAML
	default:
		return nil
	}
}
