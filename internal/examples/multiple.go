package examples

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
)

func init() {
	registry.Register("multiple", func() registry.Example { return &Multiple{} })
}

// Multiple shows three primitives, each spinning about a different axis.
type Multiple struct{}

// ID returns the example identifier.
func (m *Multiple) ID() string { return "multiple" }

// Title returns the display name.
func (m *Multiple) Title() string { return "Multiple primitives" }

// Setup builds a sphere, a box and a cylinder in a row.
func (m *Multiple) Setup(ctx scene.Context, _ core.RuntimeConfig) error {
	sphere := ctx.AddMesh("sphere", scene.ShapeSphere, mgl64.Vec3{1.5, 1.5, 1.5})
	sphere.Position = mgl64.Vec3{-2, 1, 0}
	sphere.Material.Diffuse = sim.RGB(1, 0.2, 0.2)

	box := ctx.AddMesh("box", scene.ShapeBox, mgl64.Vec3{1.5, 1.5, 1.5})
	box.Position = mgl64.Vec3{0, 1, 0}
	box.Material.Diffuse = sim.RGB(0.2, 1, 0.2)

	// Cylinder dims are diameter, height, diameter.
	cylinder := ctx.AddMesh("cylinder", scene.ShapeCylinder, mgl64.Vec3{1, 2, 1})
	cylinder.Position = mgl64.Vec3{2, 1, 0}
	cylinder.Material.Diffuse = sim.RGB(0.2, 0.2, 1)

	ctx.OnFrame(func(float64) {
		sphere.Rotation[1] += 0.02
		box.Rotation[0] += 0.01
		cylinder.Rotation[2] += 0.015
	})

	addGround(ctx, sim.RGB(0.3, 0.3, 0.35))
	return nil
}
