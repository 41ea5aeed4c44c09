package examples

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/config"
	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
	"github.com/vovakirdan/scenelab/internal/sim/particles"
)

func init() {
	registry.Register("particles", func() registry.Example { return &Particles{} })
}

// Particles is a fire fountain rising from a small spinning sphere.
type Particles struct {
	emitter *particles.Emitter
	cloud   *scene.Node
}

// ID returns the example identifier.
func (p *Particles) ID() string { return "particles" }

// Title returns the display name.
func (p *Particles) Title() string { return "Particle system" }

// Setup starts an emitter at the sphere and copies its live particles
// into a point-cloud node every frame.
func (p *Particles) Setup(ctx scene.Context, rc core.RuntimeConfig) error {
	cfg, err := config.LoadParticles(configPath)
	if err != nil {
		return fmt.Errorf("particles: %w", err)
	}

	p.emitter, err = particles.New(cfg.Emitter, sim.NewSource(rc.Seed))
	if err != nil {
		return fmt.Errorf("particles: %w", err)
	}

	sphere := ctx.AddMesh("emitter", scene.ShapeSphere, mgl64.Vec3{0.5, 0.5, 0.5})
	sphere.Position = cfg.Emitter.Origin
	sphere.Material.Emissive = sim.RGB(1, 0.5, 0)

	p.cloud = ctx.AddPoints("particles")
	p.cloud.Material.Diffuse = cfg.Emitter.ColorStart
	p.cloud.ResetPoints(p.emitter.Capacity())

	ctx.OnFrame(spin(sphere, mgl64.Vec3{0, cfg.SpinRate, 0}))
	ctx.OnFrame(p.frame)

	p.emitter.Start()

	addGround(ctx, sim.RGB(0.1, 0.1, 0.15))
	return nil
}

func (p *Particles) frame(dt float64) {
	p.emitter.Step(dt)
	p.cloud.ResetPoints(p.emitter.Capacity())
	p.emitter.Each(func(pt particles.Particle) {
		p.cloud.AppendPoint(scene.Point{Position: pt.Position, Color: pt.Color, Size: pt.Size})
	})
}

// Emitter exposes the simulation behind the point cloud.
func (p *Particles) Emitter() *particles.Emitter {
	return p.emitter
}

// Toggle starts a stopped emitter or stops a running one and reports
// whether it is now active.
func (p *Particles) Toggle() bool {
	if p.emitter.Active() {
		p.emitter.Stop()
	} else {
		p.emitter.Start()
	}
	return p.emitter.Active()
}

// Status summarizes the emitter counters.
func (p *Particles) Status() string {
	if p.emitter == nil {
		return "not set up"
	}
	st := p.emitter.Stats()
	state := "stopped"
	if p.emitter.Active() {
		state = "emitting"
	}
	return fmt.Sprintf("%s  live %d/%d  spawned %d  retired %d  dropped %d",
		state, p.emitter.Len(), p.emitter.Capacity(), st.Spawned, st.Retired, st.Dropped)
}
