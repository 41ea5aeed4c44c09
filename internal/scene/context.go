// Package scene is the host side of the examples: a small in-memory node
// store with frame-callback registration. Examples only see the Context
// interface, so the host can be swapped without touching them.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/sim"
)

// FrameFunc is called once per host tick with the elapsed seconds.
type FrameFunc func(dt float64)

// FrameID identifies a registered frame callback.
type FrameID int

// Context is the capability surface examples build scenes with.
type Context interface {
	// AddMesh creates a mesh node with the given shape and dimensions.
	AddMesh(name string, shape Shape, dims mgl64.Vec3) *Node

	// AddLight creates a light node.
	AddLight(name string, kind LightKind, pos mgl64.Vec3, color sim.Color, intensity float64) *Node

	// AddPoints creates a node holding a point cloud, used for particles.
	AddPoints(name string) *Node

	// OnFrame registers fn to run on every tick, in registration order.
	OnFrame(fn FrameFunc) FrameID

	// RemoveFrame unregisters a callback. Unknown ids are ignored.
	RemoveFrame(id FrameID)

	// DeltaTime returns the seconds elapsed in the current tick.
	DeltaTime() float64
}
