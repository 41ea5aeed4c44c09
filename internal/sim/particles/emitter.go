package particles

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/scenelab/internal/sim"
)

// spawnEpsilon absorbs float error in the accumulator so that rates which
// divide the tick evenly still produce whole counts.
const spawnEpsilon = 1e-9

// Particle is the state of one live particle.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Age      float64
	Lifetime float64
	Size     float64
	Color    sim.Color
}

// Stats counts lifecycle events since the last Start.
type Stats struct {
	Spawned int // Particles created
	Retired int // Particles removed after reaching their lifetime
	Dropped int // Spawn requests refused because the pool was full
}

// Emitter owns a fixed-capacity particle pool.
type Emitter struct {
	cfg   Config
	src   sim.RandomSource
	pool  []Particle // live particles occupy pool[:live]
	live  int
	accum float64

	active bool
	stats  Stats
}

// New validates cfg and allocates the pool. src drives every random draw.
func New(cfg Config, src sim.RandomSource) (*Emitter, error) {
	if src == nil {
		return nil, sim.ValidationError{
			Field:   "random_source",
			Code:    sim.CodeMissing,
			Message: "a random source is required",
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Emitter{
		cfg:  cfg,
		src:  src,
		pool: make([]Particle, cfg.Capacity),
	}, nil
}

// Config returns the emitter configuration.
func (e *Emitter) Config() Config {
	return e.cfg
}

// Start empties the pool, zeroes the accumulator and begins emitting.
func (e *Emitter) Start() {
	e.live = 0
	e.accum = 0
	e.stats = Stats{}
	e.active = true
}

// Stop ends emission. Live particles keep aging until they die.
func (e *Emitter) Stop() {
	e.active = false
}

// Clear removes every live particle without changing the active flag.
func (e *Emitter) Clear() {
	e.live = 0
	e.accum = 0
}

// Active reports whether the emitter is spawning particles.
func (e *Emitter) Active() bool {
	return e.active
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return e.live
}

// Capacity returns the maximum number of live particles.
func (e *Emitter) Capacity() int {
	return len(e.pool)
}

// Stats returns lifecycle counters since the last Start.
func (e *Emitter) Stats() Stats {
	return e.stats
}

// Step ages live particles by dt, retires the expired ones and, while
// active, spawns new ones at the configured rate.
func (e *Emitter) Step(dt float64) {
	if dt <= 0 || (!e.active && e.live == 0) {
		return
	}

	e.age(dt)
	if e.active {
		e.emit(dt)
	}

	if e.live > len(e.pool) {
		panic(errors.New("particles: live count exceeds capacity"))
	}
}

func (e *Emitter) age(dt float64) {
	gravity := e.cfg.Gravity.Mul(dt)

	i := 0
	for i < e.live {
		p := &e.pool[i]
		p.Age += dt
		if p.Age >= p.Lifetime {
			e.live--
			e.pool[i] = e.pool[e.live]
			e.stats.Retired++
			continue
		}

		p.Velocity = p.Velocity.Add(gravity)
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Color = e.cfg.ColorAt(p.Age / p.Lifetime)
		i++
	}
}

func (e *Emitter) emit(dt float64) {
	e.accum += e.cfg.EmitRate * dt
	n := int(math.Floor(e.accum + spawnEpsilon))
	if n <= 0 {
		return
	}
	e.accum -= float64(n)

	room := len(e.pool) - e.live
	if n > room {
		e.stats.Dropped += n - room
		n = room
	}
	for ; n > 0; n-- {
		e.spawn()
	}
}

// spawn fills the first free slot. Draw order: box xyz, direction xyz,
// power, lifetime, size.
func (e *Emitter) spawn() {
	p := &e.pool[e.live]
	e.live++
	e.stats.Spawned++

	p.Position = e.cfg.Origin.Add(e.cfg.EmitBox.Sample(e.src))

	var t mgl64.Vec3
	for i := range t {
		t[i] = e.src.Float64()
	}
	dir := sim.LerpVec(e.cfg.Direction1, e.cfg.Direction2, t)
	p.Velocity = dir.Mul(e.cfg.EmitPower.Sample(e.src))

	p.Lifetime = e.cfg.Lifetime.Sample(e.src)
	p.Size = e.cfg.Size.Sample(e.src)
	p.Age = 0
	p.Color = e.cfg.ColorStart
}

// Particles returns a copy of the live particles.
func (e *Emitter) Particles() []Particle {
	out := make([]Particle, e.live)
	copy(out, e.pool[:e.live])
	return out
}

// Each calls fn for every live particle without copying the pool.
func (e *Emitter) Each(fn func(Particle)) {
	for i := 0; i < e.live; i++ {
		fn(e.pool[i])
	}
}
