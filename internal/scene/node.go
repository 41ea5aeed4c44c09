package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/sim"
)

// Kind is the category of a node.
type Kind uint8

const (
	KindMesh Kind = iota
	KindLight
	KindPoints
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	case KindPoints:
		return "points"
	default:
		return "unknown"
	}
}

// Shape is the primitive a mesh node was built from.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeCylinder
	ShapeGround
)

// String returns the display name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeGround:
		return "ground"
	default:
		return "unknown"
	}
}

// LightKind is the type of a light node.
type LightKind uint8

const (
	LightHemispheric LightKind = iota
	LightPoint
)

// Material is the surface description of a mesh.
type Material struct {
	Name      string
	Diffuse   sim.Color
	Specular  sim.Color
	Emissive  sim.Color
	Metallic  float64
	Roughness float64
	PBR       bool
}

// Point is one element of a point-cloud node.
type Point struct {
	Position mgl64.Vec3
	Color    sim.Color
	Size     float64
}

// Node is a renderable handle. It holds presentation state only; any
// simulation that drives it keeps its own records and refers back to the
// node through SimRef.
type Node struct {
	ID       int
	Name     string
	Kind     Kind
	Shape    Shape
	Dims     mgl64.Vec3
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Material Material

	LightKind LightKind
	Intensity float64

	Points []Point

	SimRef int // Id of the simulation record mirrored onto this node, -1 if none
}

// Color returns the most visible color of the node.
func (n *Node) Color() sim.Color {
	if n.Kind == KindLight {
		return n.Material.Diffuse
	}
	if n.Material.Emissive.R+n.Material.Emissive.G+n.Material.Emissive.B > 0 {
		return n.Material.Emissive
	}
	return n.Material.Diffuse
}

// ResetPoints empties the point cloud, keeping room for size points.
func (n *Node) ResetPoints(size int) {
	if cap(n.Points) < size {
		n.Points = make([]Point, 0, size)
		return
	}
	n.Points = n.Points[:0]
}

// AppendPoint adds p to the point cloud.
func (n *Node) AppendPoint(p Point) {
	n.Points = append(n.Points, p)
}
