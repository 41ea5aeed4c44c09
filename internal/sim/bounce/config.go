// Package bounce integrates vertically falling bodies that bounce on a
// floor and lose energy on every contact.
package bounce

import (
	"github.com/vovakirdan/scenelab/internal/sim"
)

// Config holds the physical constants shared by every body of an Animator.
type Config struct {
	Gravity     float64 `yaml:"gravity"`      // Vertical acceleration, must be negative
	Floor       float64 `yaml:"floor"`        // Lowest allowed PositionY
	Restitution float64 `yaml:"restitution"`  // Fraction of speed kept on contact, in (0, 1)
	RestEpsilon float64 `yaml:"rest_epsilon"` // Post-contact speed below which a body comes to rest
}

// DefaultConfig returns the constants of the bouncing spheres example.
func DefaultConfig() Config {
	return Config{
		Gravity:     -9.8,
		Floor:       0.4,
		Restitution: 0.8,
		RestEpsilon: 0.05,
	}
}

// Validate checks the constants before any body is simulated.
func (c Config) Validate() error {
	if err := sim.CheckFinite("gravity", c.Gravity); err != nil {
		return err
	}
	if err := sim.CheckFinite("floor", c.Floor); err != nil {
		return err
	}
	if err := sim.CheckFinite("restitution", c.Restitution); err != nil {
		return err
	}
	if err := sim.CheckFinite("rest_epsilon", c.RestEpsilon); err != nil {
		return err
	}
	if c.Gravity >= 0 {
		return sim.Invalid("gravity", "must be negative, got %g", c.Gravity)
	}
	if c.Restitution <= 0 || c.Restitution >= 1 {
		return sim.Invalid("restitution", "must be in (0, 1), got %g", c.Restitution)
	}
	if c.RestEpsilon < 0 {
		return sim.Invalid("rest_epsilon", "must not be negative, got %g", c.RestEpsilon)
	}
	return nil
}
