package examples

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/core"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
)

const (
	lightRadius    = 3.0
	lightHeight    = 2.0
	lightIntensity = 2.0
	markerDiameter = 0.2
)

func init() {
	registry.Register("lighting", func() registry.Example { return &Lighting{} })
}

// Lighting is a metallic sphere lit by three colored point lights.
type Lighting struct{}

// ID returns the example identifier.
func (l *Lighting) ID() string { return "lighting" }

// Title returns the display name.
func (l *Lighting) Title() string { return "Lighting" }

// Setup builds the PBR sphere, the lights on a circle and a marker per light.
func (l *Lighting) Setup(ctx scene.Context, _ core.RuntimeConfig) error {
	sphere := ctx.AddMesh("sphere", scene.ShapeSphere, mgl64.Vec3{2, 2, 2})
	sphere.Position = mgl64.Vec3{0, 1, 0}
	sphere.Material = scene.Material{
		Name:      "pbr",
		Diffuse:   sim.RGB(1, 0.8, 0.2),
		Metallic:  0.8,
		Roughness: 0.2,
		PBR:       true,
	}

	colors := []sim.Color{sim.RGB(1, 0, 0), sim.RGB(0, 1, 0), sim.RGB(0, 0, 1)}
	for i, c := range colors {
		angle := float64(i) * 2 * math.Pi / float64(len(colors))
		pos := mgl64.Vec3{lightRadius * math.Cos(angle), lightHeight, lightRadius * math.Sin(angle)}

		ctx.AddLight(fmt.Sprintf("light%d", i), scene.LightPoint, pos, c, lightIntensity)

		marker := ctx.AddMesh(fmt.Sprintf("ls%d", i), scene.ShapeSphere,
			mgl64.Vec3{markerDiameter, markerDiameter, markerDiameter})
		marker.Position = pos
		marker.Material.Name = fmt.Sprintf("lsMat%d", i)
		marker.Material.Emissive = c
	}

	addGround(ctx, sim.RGB(0.2, 0.2, 0.2))
	return nil
}
