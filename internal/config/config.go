// Package config provides YAML-based example configuration loading for
// the examples that carry tunable simulation parameters.
package config

import (
	"github.com/vovakirdan/scenelab/internal/sim"
	"github.com/vovakirdan/scenelab/internal/sim/bounce"
	"github.com/vovakirdan/scenelab/internal/sim/particles"
)

// AnimationConfig contains all configuration for the bouncing spheres example.
type AnimationConfig struct {
	Physics bounce.Config `yaml:"physics"`
	Bodies  BodyLayout    `yaml:"bodies"`
}

// BodyLayout places the spheres of the animation example on the x axis.
type BodyLayout struct {
	Count       int     `yaml:"count"`
	Spacing     float64 `yaml:"spacing"`      // Distance between neighbours on x
	DelayStep   float64 `yaml:"delay_step"`   // Activation delay added per sphere, seconds
	StartHeight float64 `yaml:"start_height"` // Initial PositionY of every sphere
	Diameter    float64 `yaml:"diameter"`
}

// Validate checks the layout; physics constants are checked by bounce.New.
func (b BodyLayout) Validate() error {
	if err := sim.CheckFinite("bodies", b.Spacing, b.DelayStep, b.StartHeight, b.Diameter); err != nil {
		return err
	}
	if b.Count <= 0 {
		return sim.Invalid("bodies.count", "must be positive, got %d", b.Count)
	}
	if b.DelayStep < 0 {
		return sim.Invalid("bodies.delay_step", "must not be negative, got %g", b.DelayStep)
	}
	if b.Diameter <= 0 {
		return sim.Invalid("bodies.diameter", "must be positive, got %g", b.Diameter)
	}
	return nil
}

// ParticlesConfig contains all configuration for the particle fountain example.
type ParticlesConfig struct {
	Emitter  particles.Config `yaml:"emitter"`
	SpinRate float64          `yaml:"spin_rate"` // Emitter mesh rotation per frame, radians
}
