package examples

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
)

func init() {
	registry.Register("basic", func() registry.Example { return &Basic{} })
}

// Basic is a single orange cube spinning above the ground.
type Basic struct{}

// ID returns the example identifier.
func (b *Basic) ID() string { return "basic" }

// Title returns the display name.
func (b *Basic) Title() string { return "Basic scene - rotating cube" }

// Setup builds the cube and its rotation callback.
func (b *Basic) Setup(ctx scene.Context, _ core.RuntimeConfig) error {
	box := ctx.AddMesh("box", scene.ShapeBox, mgl64.Vec3{2, 2, 2})
	box.Position = mgl64.Vec3{0, 1, 0}
	box.Material.Diffuse = sim.RGB(1, 0.5, 0)
	box.Material.Specular = sim.RGB(0.5, 0.5, 0.5)

	ctx.OnFrame(spin(box, mgl64.Vec3{0.005, 0.01, 0}))

	addGround(ctx, sim.RGB(0.3, 0.3, 0.35))
	return nil
}
