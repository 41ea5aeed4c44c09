package scene

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zeebo/xxh3"

	"github.com/vovakirdan/scenelab/internal/sim"
)

type frame struct {
	id FrameID
	fn FrameFunc
}

// Scene is the in-memory Context implementation used by the CLI and tests.
type Scene struct {
	nodes  []*Node
	frames []frame
	nextID FrameID
	dt     float64
	ticks  int
	time   float64
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

var _ Context = (*Scene)(nil)

func (s *Scene) add(n *Node) *Node {
	n.ID = len(s.nodes)
	n.SimRef = -1
	s.nodes = append(s.nodes, n)
	return n
}

// AddMesh creates a mesh node at the origin with a neutral material.
func (s *Scene) AddMesh(name string, shape Shape, dims mgl64.Vec3) *Node {
	return s.add(&Node{
		Name:  name,
		Kind:  KindMesh,
		Shape: shape,
		Dims:  dims,
		Material: Material{
			Name:    name + "Mat",
			Diffuse: sim.RGB(1, 1, 1),
		},
	})
}

// AddLight creates a light node.
func (s *Scene) AddLight(name string, kind LightKind, pos mgl64.Vec3, color sim.Color, intensity float64) *Node {
	return s.add(&Node{
		Name:      name,
		Kind:      KindLight,
		LightKind: kind,
		Position:  pos,
		Material:  Material{Diffuse: color},
		Intensity: intensity,
	})
}

// AddPoints creates an empty point-cloud node.
func (s *Scene) AddPoints(name string) *Node {
	return s.add(&Node{Name: name, Kind: KindPoints})
}

// OnFrame registers fn and returns its id.
func (s *Scene) OnFrame(fn FrameFunc) FrameID {
	s.nextID++
	s.frames = append(s.frames, frame{id: s.nextID, fn: fn})
	return s.nextID
}

// RemoveFrame unregisters the callback with the given id.
func (s *Scene) RemoveFrame(id FrameID) {
	for i, f := range s.frames {
		if f.id == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// DeltaTime returns the dt of the tick in progress, or of the last one.
func (s *Scene) DeltaTime() float64 {
	return s.dt
}

// Tick advances the scene by dt, running every callback once.
func (s *Scene) Tick(dt float64) {
	s.dt = dt
	s.ticks++
	s.time += dt
	// Callbacks may unregister themselves; iterate over a snapshot.
	frames := append([]frame(nil), s.frames...)
	for _, f := range frames {
		f.fn(dt)
	}
}

// Ticks returns how many ticks have run.
func (s *Scene) Ticks() int {
	return s.ticks
}

// Time returns the accumulated simulated seconds.
func (s *Scene) Time() float64 {
	return s.time
}

// Frames returns the number of registered callbacks.
func (s *Scene) Frames() int {
	return len(s.frames)
}

// Nodes returns the nodes in creation order.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Find returns the first node with the given name.
func (s *Scene) Find(name string) (*Node, bool) {
	for _, n := range s.nodes {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// PointCount returns the total number of points across all nodes.
func (s *Scene) PointCount() int {
	total := 0
	for _, n := range s.nodes {
		total += len(n.Points)
	}
	return total
}

// Digest hashes the dynamic state of every node. Two scenes built by the
// same example with the same seed and tick sequence have equal digests.
func (s *Scene) Digest() uint64 {
	h := xxh3.New()
	var buf [8]byte
	putF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putVec := func(v mgl64.Vec3) {
		putF(v[0])
		putF(v[1])
		putF(v[2])
	}
	putColor := func(c sim.Color) {
		putF(c.R)
		putF(c.G)
		putF(c.B)
		putF(c.A)
	}

	for _, n := range s.nodes {
		h.WriteString(n.Name)
		h.Write([]byte{byte(n.Kind), byte(n.Shape)})
		putVec(n.Position)
		putVec(n.Rotation)
		putColor(n.Color())
		binary.LittleEndian.PutUint64(buf[:], uint64(len(n.Points)))
		h.Write(buf[:])
		for _, p := range n.Points {
			putVec(p.Position)
			putColor(p.Color)
			putF(p.Size)
		}
	}
	return h.Sum64()
}
