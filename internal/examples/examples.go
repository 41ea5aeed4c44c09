// Package examples holds the built-in scenes. Each file registers one
// example with the registry from init(); importing the package for its
// side effects makes all of them available.
package examples

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/scene"
	"github.com/vovakirdan/scenelab/internal/sim"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for the examples that load
// YAML configuration (animation and particles).
func SetConfigPath(path string) {
	configPath = path
}

// Statuser is implemented by examples that drive a simulation and can
// summarize it in one line.
type Statuser interface {
	Status() string
}

// addGround adds the 10x10 ground plane every example stands on.
func addGround(ctx scene.Context, diffuse sim.Color) *scene.Node {
	ground := ctx.AddMesh("ground", scene.ShapeGround, mgl64.Vec3{10, 0, 10})
	ground.Material.Diffuse = diffuse
	return ground
}

// spin returns a frame callback that adds delta to n's rotation each frame.
func spin(n *scene.Node, delta mgl64.Vec3) scene.FrameFunc {
	return func(float64) {
		n.Rotation = n.Rotation.Add(delta)
	}
}

// Toggler is implemented by examples with a simulation that can be paused
// and resumed independently of the host clock.
type Toggler interface {
	Toggle() bool
}
