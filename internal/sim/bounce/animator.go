package bounce

import (
	"math"

	"github.com/vovakirdan/scenelab/internal/sim"
)

// BodyID identifies a body within its Animator.
type BodyID int

// BodySpec describes a body at spawn time.
type BodySpec struct {
	PositionY float64
	VelocityY float64
	Delay     float64 // Seconds before integration starts
}

// Body is the simulation record of one bouncing object.
type Body struct {
	ID              BodyID
	PositionY       float64
	VelocityY       float64
	ActivationDelay float64
	ElapsedTime     float64

	Contacts       int     // Floor contacts so far
	ImpactVelocity float64 // VelocityY just before the latest contact
	Resting        bool    // Terminal state reached through the rest cutoff
}

// Dormant reports whether the body is still waiting for its delay to pass.
func (b Body) Dormant() bool {
	return b.ElapsedTime < b.ActivationDelay
}

// Animator owns a set of bodies and advances them on every Step.
type Animator struct {
	cfg    Config
	bodies []Body
	specs  []BodySpec
}

// New validates cfg and returns an empty animator.
func New(cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Animator{cfg: cfg}, nil
}

// Config returns the animator constants.
func (a *Animator) Config() Config {
	return a.cfg
}

// AddBody adds a body and returns its id.
// The body may not start below the floor or with a negative delay.
func (a *Animator) AddBody(spec BodySpec) (BodyID, error) {
	if err := sim.CheckFinite("body", spec.PositionY, spec.VelocityY, spec.Delay); err != nil {
		return 0, err
	}
	if spec.PositionY < a.cfg.Floor {
		return 0, sim.Invalid("body.position_y", "%g is below floor %g", spec.PositionY, a.cfg.Floor)
	}
	if spec.Delay < 0 {
		return 0, sim.Invalid("body.delay", "must not be negative, got %g", spec.Delay)
	}

	id := BodyID(len(a.bodies))
	a.specs = append(a.specs, spec)
	a.bodies = append(a.bodies, spawn(id, spec))
	return id, nil
}

func spawn(id BodyID, spec BodySpec) Body {
	return Body{
		ID:              id,
		PositionY:       spec.PositionY,
		VelocityY:       spec.VelocityY,
		ActivationDelay: spec.Delay,
	}
}

// Step advances every body by dt seconds. Non-positive dt is ignored.
func (a *Animator) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range a.bodies {
		a.advance(&a.bodies[i], dt)
	}
}

func (a *Animator) advance(b *Body, dt float64) {
	b.ElapsedTime += dt
	if b.Dormant() || b.Resting {
		return
	}

	b.VelocityY += a.cfg.Gravity * dt
	b.PositionY += b.VelocityY * dt

	if b.PositionY > a.cfg.Floor {
		return
	}

	b.ImpactVelocity = b.VelocityY
	b.Contacts++
	b.PositionY = a.cfg.Floor
	b.VelocityY = -b.VelocityY * a.cfg.Restitution

	// Without the cutoff the bounces only shrink and never stop. A rebound
	// slower than one tick of gravity lands again on the next tick.
	speed := math.Abs(b.VelocityY)
	if speed < a.cfg.RestEpsilon || speed <= -a.cfg.Gravity*dt {
		b.VelocityY = 0
		b.Resting = true
	}
}

// Body returns a copy of the body with the given id.
func (a *Animator) Body(id BodyID) (Body, bool) {
	if id < 0 || int(id) >= len(a.bodies) {
		return Body{}, false
	}
	return a.bodies[id], true
}

// Bodies returns a snapshot of all bodies in insertion order.
func (a *Animator) Bodies() []Body {
	out := make([]Body, len(a.bodies))
	copy(out, a.bodies)
	return out
}

// Len returns the number of bodies.
func (a *Animator) Len() int {
	return len(a.bodies)
}

// AllResting reports whether every body has come to rest.
func (a *Animator) AllResting() bool {
	for _, b := range a.bodies {
		if !b.Resting {
			return false
		}
	}
	return len(a.bodies) > 0
}

// Reset puts every body back to its spawn state.
func (a *Animator) Reset() {
	for i, spec := range a.specs {
		a.bodies[i] = spawn(BodyID(i), spec)
	}
}
