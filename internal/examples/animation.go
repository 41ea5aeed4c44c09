package examples

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/config"
	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
	"github.com/vovakirdan/scenelab/internal/sim/bounce"
)

func init() {
	registry.Register("animation", func() registry.Example { return &Animation{} })
}

// Animation drops a row of spheres that bounce with staggered starts.
type Animation struct {
	cfg      config.AnimationConfig
	animator *bounce.Animator
	spheres  []*scene.Node
}

// ID returns the example identifier.
func (a *Animation) ID() string { return "animation" }

// Title returns the display name.
func (a *Animation) Title() string { return "Bouncing animation" }

// Setup loads the configuration, creates one body per sphere and mirrors
// the animator onto the nodes every frame.
func (a *Animation) Setup(ctx scene.Context, rc core.RuntimeConfig) error {
	cfg, err := config.LoadAnimation(configPath)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	a.cfg = cfg

	a.animator, err = bounce.New(cfg.Physics)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}

	src := sim.NewSource(rc.Seed)
	layout := cfg.Bodies
	d := layout.Diameter
	a.spheres = make([]*scene.Node, 0, layout.Count)

	for i := 0; i < layout.Count; i++ {
		id, err := a.animator.AddBody(bounce.BodySpec{
			PositionY: layout.StartHeight,
			Delay:     float64(i) * layout.DelayStep,
		})
		if err != nil {
			return fmt.Errorf("animation: sphere %d: %w", i, err)
		}

		sphere := ctx.AddMesh(fmt.Sprintf("sphere%d", i), scene.ShapeSphere, mgl64.Vec3{d, d, d})
		sphere.Position = mgl64.Vec3{(float64(i) - float64(layout.Count)/2) * layout.Spacing, layout.StartHeight, 0}
		sphere.Material.Name = fmt.Sprintf("mat%d", i)
		sphere.Material.Diffuse = sim.RGB(src.Float64(), src.Float64(), src.Float64())
		sphere.SimRef = int(id)
		a.spheres = append(a.spheres, sphere)
	}

	ctx.OnFrame(a.frame)

	addGround(ctx, sim.RGB(0.3, 0.3, 0.35))
	return nil
}

func (a *Animation) frame(dt float64) {
	a.animator.Step(dt)
	for _, n := range a.spheres {
		if b, ok := a.animator.Body(bounce.BodyID(n.SimRef)); ok {
			n.Position[1] = b.PositionY
		}
	}
}

// Animator exposes the simulation driving the spheres.
func (a *Animation) Animator() *bounce.Animator {
	return a.animator
}

// Status summarizes how many spheres are active and resting.
func (a *Animation) Status() string {
	if a.animator == nil {
		return "not set up"
	}
	var dormant, resting, contacts int
	for _, b := range a.animator.Bodies() {
		switch {
		case b.Resting:
			resting++
		case b.Dormant():
			dormant++
		}
		contacts += b.Contacts
	}
	return fmt.Sprintf("bodies %d  dormant %d  resting %d  contacts %d",
		a.animator.Len(), dormant, resting, contacts)
}
