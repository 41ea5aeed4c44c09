package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/scenelab/internal/sim"
)

func TestFramesRunInOrder(t *testing.T) {
	s := New()
	var calls []string
	s.OnFrame(func(dt float64) { calls = append(calls, "a") })
	s.OnFrame(func(dt float64) { calls = append(calls, "b") })

	s.Tick(0.5)
	s.Tick(0.25)

	assert.Equal(t, []string{"a", "b", "a", "b"}, calls)
	assert.Equal(t, 2, s.Ticks())
	assert.Equal(t, 0.75, s.Time())
	assert.Equal(t, 0.25, s.DeltaTime())
}

func TestRemoveFrame(t *testing.T) {
	s := New()
	count := 0
	id := s.OnFrame(func(float64) { count++ })
	s.Tick(1)
	s.RemoveFrame(id)
	s.RemoveFrame(id)
	s.Tick(1)

	assert.Equal(t, 1, count)
	assert.Zero(t, s.Frames())
}

func TestFrameCanRemoveItself(t *testing.T) {
	s := New()
	count := 0
	var id FrameID
	id = s.OnFrame(func(float64) {
		count++
		s.RemoveFrame(id)
	})
	other := 0
	s.OnFrame(func(float64) { other++ })

	s.Tick(1)
	s.Tick(1)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, other)
}

func TestDeltaTimeVisibleInsideCallback(t *testing.T) {
	s := New()
	var seen float64
	s.OnFrame(func(float64) { seen = s.DeltaTime() })
	s.Tick(1.0 / 60)
	assert.Equal(t, 1.0/60, seen)
}

func TestNodes(t *testing.T) {
	s := New()
	box := s.AddMesh("box", ShapeBox, mgl64.Vec3{2, 2, 2})
	light := s.AddLight("light0", LightPoint, mgl64.Vec3{3, 2, 0}, sim.RGB(1, 0, 0), 2)
	pts := s.AddPoints("particles")

	assert.Equal(t, 0, box.ID)
	assert.Equal(t, -1, box.SimRef)
	assert.Equal(t, KindLight, light.Kind)
	assert.Equal(t, sim.RGB(1, 0, 0), light.Color())
	assert.Equal(t, "points", pts.Kind.String())

	found, ok := s.Find("light0")
	require.True(t, ok)
	assert.Same(t, light, found)
	_, ok = s.Find("missing")
	assert.False(t, ok)

	box.Material.Emissive = sim.RGB(0, 1, 0)
	assert.Equal(t, sim.RGB(0, 1, 0), box.Color())
}

func TestPoints(t *testing.T) {
	s := New()
	n := s.AddPoints("p")
	n.ResetPoints(4)
	n.AppendPoint(Point{Size: 1})
	n.AppendPoint(Point{Size: 2})
	assert.Equal(t, 2, s.PointCount())

	n.ResetPoints(1)
	assert.Zero(t, s.PointCount())
	assert.GreaterOrEqual(t, cap(n.Points), 4)
}

func TestDigest(t *testing.T) {
	build := func() *Scene {
		s := New()
		s.AddMesh("box", ShapeBox, mgl64.Vec3{1, 1, 1}).Position = mgl64.Vec3{0, 1, 0}
		n := s.AddPoints("p")
		n.AppendPoint(Point{Position: mgl64.Vec3{1, 2, 3}, Color: sim.RGB(1, 0.5, 0), Size: 0.2})
		return s
	}

	a, b := build(), build()
	assert.Equal(t, a.Digest(), b.Digest())

	b.Nodes()[0].Rotation[1] += 0.01
	assert.NotEqual(t, a.Digest(), b.Digest())
}
