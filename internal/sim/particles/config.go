// Package particles simulates a bounded pool of particles spawned at a
// steady rate from an emission box, aged under gravity and retired when
// their lifetime runs out.
package particles

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/sim"
)

// Config describes an emitter. It is validated once by New and never
// changes afterwards.
type Config struct {
	EmitRate float64 `yaml:"emit_rate"` // Particles per second
	Capacity int     `yaml:"capacity"`  // Maximum live particles

	Lifetime  sim.Range `yaml:"lifetime"`   // Seconds
	Size      sim.Range `yaml:"size"`       // World units
	EmitPower sim.Range `yaml:"emit_power"` // Scale applied to the sampled direction

	Direction1 mgl64.Vec3 `yaml:"direction1"`
	Direction2 mgl64.Vec3 `yaml:"direction2"`

	Origin  mgl64.Vec3 `yaml:"origin"`   // Emitter position
	EmitBox sim.Box    `yaml:"emit_box"` // Spawn volume relative to Origin
	Gravity mgl64.Vec3 `yaml:"gravity"`

	ColorStart sim.Color `yaml:"color_start"`
	ColorEnd   sim.Color `yaml:"color_end"`
	ColorDead  sim.Color `yaml:"color_dead"`

	// ColorDeadThreshold is the normalized age after which particles fade
	// toward ColorDead. 1 disables the fade.
	ColorDeadThreshold float64 `yaml:"color_dead_threshold"`
}

// DefaultConfig returns the fire fountain of the particles example.
func DefaultConfig() Config {
	return Config{
		EmitRate:   300,
		Capacity:   2000,
		Lifetime:   sim.R(0.5, 1.5),
		Size:       sim.R(0.1, 0.3),
		EmitPower:  sim.R(2, 4),
		Direction1: mgl64.Vec3{-1, 3, -1},
		Direction2: mgl64.Vec3{1, 3, 1},
		Origin:     mgl64.Vec3{0, 0.5, 0},
		EmitBox: sim.Box{
			Min: mgl64.Vec3{-0.1, 0, -0.1},
			Max: mgl64.Vec3{0.1, 0, 0.1},
		},
		Gravity:            mgl64.Vec3{0, -5, 0},
		ColorStart:         sim.RGBA(1, 0.5, 0, 1),
		ColorEnd:           sim.RGBA(1, 0.8, 0, 1),
		ColorDead:          sim.RGBA(0.5, 0.2, 0, 0),
		ColorDeadThreshold: 0.75,
	}
}

// Validate rejects configurations that would make Step ill-defined.
func (c Config) Validate() error {
	if err := sim.CheckFinite("emit_rate", c.EmitRate); err != nil {
		return err
	}
	if c.EmitRate < 0 {
		return sim.Invalid("emit_rate", "must not be negative, got %g", c.EmitRate)
	}
	if c.Capacity <= 0 {
		return sim.Invalid("capacity", "must be positive, got %d", c.Capacity)
	}

	ranges := []struct {
		field string
		r     sim.Range
	}{
		{"lifetime", c.Lifetime},
		{"size", c.Size},
		{"emit_power", c.EmitPower},
	}
	for _, rr := range ranges {
		if err := rr.r.Validate(rr.field); err != nil {
			return err
		}
	}
	if c.Lifetime.Min <= 0 {
		return sim.Invalid("lifetime.min", "must be positive, got %g", c.Lifetime.Min)
	}
	if c.Size.Min < 0 {
		return sim.Invalid("size.min", "must not be negative, got %g", c.Size.Min)
	}

	vectors := []struct {
		field string
		v     mgl64.Vec3
	}{
		{"direction1", c.Direction1},
		{"direction2", c.Direction2},
		{"origin", c.Origin},
		{"gravity", c.Gravity},
	}
	for _, vv := range vectors {
		if err := sim.CheckFinite(vv.field, vv.v[:]...); err != nil {
			return err
		}
	}
	if err := c.EmitBox.Validate("emit_box"); err != nil {
		return err
	}

	if err := c.ColorStart.Validate("color_start"); err != nil {
		return err
	}
	if err := c.ColorEnd.Validate("color_end"); err != nil {
		return err
	}
	if err := c.ColorDead.Validate("color_dead"); err != nil {
		return err
	}
	if err := sim.CheckFinite("color_dead_threshold", c.ColorDeadThreshold); err != nil {
		return err
	}
	if c.ColorDeadThreshold < 0 || c.ColorDeadThreshold > 1 {
		return sim.Invalid("color_dead_threshold", "must be in [0, 1], got %g", c.ColorDeadThreshold)
	}
	return nil
}

// ColorAt returns the display color at normalized age t in [0, 1].
func (c Config) ColorAt(t float64) sim.Color {
	col := c.ColorStart.Lerp(c.ColorEnd, t)
	if t > c.ColorDeadThreshold {
		fade := (t - c.ColorDeadThreshold) / (1 - c.ColorDeadThreshold)
		col = col.Lerp(c.ColorDead, fade)
	}
	return col
}
