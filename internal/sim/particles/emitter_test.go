package particles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/scenelab/internal/sim"
)

func newEmitter(t *testing.T, cfg Config, seed int64) *Emitter {
	t.Helper()
	e, err := New(cfg, sim.NewSource(seed))
	require.NoError(t, err)
	return e
}

func TestSpawnRateExactOverOneSecond(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 100000
	cfg.Lifetime = sim.R(10, 10)

	e := newEmitter(t, cfg, 1)
	e.Start()
	for i := 0; i < 60; i++ {
		e.Step(1.0 / 60)
	}

	assert.Equal(t, 300, e.Stats().Spawned)
	assert.Equal(t, 300, e.Len())
	assert.Zero(t, e.Stats().Dropped)
}

func TestSpawnRateNoDrift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmitRate = 37.3
	cfg.Capacity = 1000000
	cfg.Lifetime = sim.R(1000, 1000)

	e := newEmitter(t, cfg, 2)
	e.Start()

	deltas := []float64{1.0 / 60, 1.0 / 30, 0.007, 1.0 / 144}
	elapsed := 0.0
	for i := 0; i < 5000; i++ {
		dt := deltas[i%len(deltas)]
		e.Step(dt)
		elapsed += dt
		require.InDelta(t, cfg.EmitRate*elapsed, float64(e.Stats().Spawned), 1.0, "tick %d", i)
	}
}

func TestCapacityBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmitRate = 5000
	cfg.Capacity = 50

	e := newEmitter(t, cfg, 3)
	e.Start()

	rng := sim.NewSource(99)
	for i := 0; i < 600; i++ {
		e.Step(rng.Float64() / 20)
		require.LessOrEqual(t, e.Len(), cfg.Capacity, "tick %d", i)
	}
	assert.Equal(t, cfg.Capacity, e.Len())
	assert.Positive(t, e.Stats().Dropped)
	assert.Equal(t, e.Stats().Spawned-e.Stats().Retired, e.Len())
}

func TestParticleDiesWhenAgeReachesLifetime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmitRate = 8
	cfg.Lifetime = sim.R(0.5, 0.5)

	e := newEmitter(t, cfg, 4)
	e.Start()
	e.Step(0.125)
	require.Equal(t, 1, e.Len())
	e.Stop()

	for tick := 1; tick <= 3; tick++ {
		e.Step(0.125)
		require.Equal(t, 1, e.Len(), "tick %d", tick)
		p := e.Particles()[0]
		assert.Equal(t, float64(tick)*0.125, p.Age)
		assert.Less(t, p.Age, p.Lifetime)
	}

	e.Step(0.125)
	assert.Zero(t, e.Len(), "particle should be gone once age reaches its lifetime")
	assert.Equal(t, 1, e.Stats().Retired)
}

func TestSteadyStatePopulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmitRate = 8
	cfg.Lifetime = sim.R(0.5, 0.5)

	e := newEmitter(t, cfg, 5)
	e.Start()
	for i := 0; i < 40; i++ {
		e.Step(0.125)
		e.Each(func(p Particle) {
			assert.GreaterOrEqual(t, p.Age, 0.0)
			assert.Less(t, p.Age, p.Lifetime)
		})
	}
	assert.Equal(t, 4, e.Len())
}

func TestSpawnSamplesWithinConfig(t *testing.T) {
	cfg := DefaultConfig()
	e := newEmitter(t, cfg, 6)
	e.Start()
	e.Step(0.1)
	require.Equal(t, 30, e.Len())

	for _, p := range e.Particles() {
		assert.GreaterOrEqual(t, p.Size, cfg.Size.Min)
		assert.Less(t, p.Size, cfg.Size.Max)
		assert.GreaterOrEqual(t, p.Lifetime, cfg.Lifetime.Min)
		assert.Less(t, p.Lifetime, cfg.Lifetime.Max)
		assert.Zero(t, p.Age)
		assert.Equal(t, cfg.ColorStart, p.Color)

		assert.InDelta(t, 0, p.Position.X(), 0.1)
		assert.Equal(t, 0.5, p.Position.Y())
		assert.InDelta(t, 0, p.Position.Z(), 0.1)

		// Direction y is always 3, so vy = 3 * power.
		assert.GreaterOrEqual(t, p.Velocity.Y(), 3*cfg.EmitPower.Min)
		assert.Less(t, p.Velocity.Y(), 3*cfg.EmitPower.Max)
		assert.LessOrEqual(t, math.Abs(p.Velocity.X()), cfg.EmitPower.Max)
	}
}

func TestGravityIntegration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmitRate = 10
	cfg.Lifetime = sim.R(5, 5)

	e := newEmitter(t, cfg, 7)
	e.Start()
	e.Step(0.1)
	require.Equal(t, 1, e.Len())
	e.Stop()

	before := e.Particles()[0]
	e.Step(0.1)
	after := e.Particles()[0]

	wantVel := before.Velocity.Add(cfg.Gravity.Mul(0.1))
	assert.True(t, wantVel.ApproxEqual(after.Velocity))
	wantPos := before.Position.Add(wantVel.Mul(0.1))
	assert.True(t, wantPos.ApproxEqual(after.Position))
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []Particle {
		e := newEmitter(t, DefaultConfig(), 1234)
		e.Start()
		for i := 0; i < 90; i++ {
			e.Step(1.0 / 60)
		}
		return e.Particles()
	}

	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	assert.Equal(t, a, b)
}

func TestStopLetsParticlesDrain(t *testing.T) {
	e := newEmitter(t, DefaultConfig(), 8)
	e.Start()
	for i := 0; i < 30; i++ {
		e.Step(1.0 / 60)
	}
	live := e.Len()
	require.Positive(t, live)

	e.Stop()
	assert.False(t, e.Active())
	e.Step(1.0 / 60)
	assert.LessOrEqual(t, e.Len(), live, "no new particles after Stop")
	assert.Positive(t, e.Len(), "Stop must not clear the pool")

	for i := 0; i < 120; i++ {
		e.Step(1.0 / 60)
	}
	assert.Zero(t, e.Len())

	spawned := e.Stats().Spawned
	e.Step(1.0 / 60)
	assert.Equal(t, spawned, e.Stats().Spawned)
}

func TestClearAndRestart(t *testing.T) {
	e := newEmitter(t, DefaultConfig(), 9)
	e.Step(1.0 / 60)
	assert.Zero(t, e.Len(), "an emitter that was never started does nothing")

	e.Start()
	e.Step(0.1)
	require.Positive(t, e.Len())

	e.Clear()
	assert.Zero(t, e.Len())
	assert.True(t, e.Active())

	e.Start()
	assert.Zero(t, e.Len())
	assert.Equal(t, Stats{}, e.Stats())
}

func TestColorAt(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, cfg.ColorStart, cfg.ColorAt(0))

	alive := cfg.ColorAt(0.5)
	want := cfg.ColorStart.Lerp(cfg.ColorEnd, 0.5)
	assert.Equal(t, want, alive)

	atThreshold := cfg.ColorAt(cfg.ColorDeadThreshold)
	assert.Equal(t, 1.0, atThreshold.A, "alpha is untouched before the fade")

	dead := cfg.ColorAt(1)
	assert.InDelta(t, cfg.ColorDead.R, dead.R, 1e-12)
	assert.InDelta(t, cfg.ColorDead.G, dead.G, 1e-12)
	assert.InDelta(t, 0, dead.A, 1e-12)

	fading := cfg.ColorAt(0.875)
	assert.InDelta(t, 0.5, fading.A, 1e-12)

	cfg.ColorDeadThreshold = 1
	assert.Equal(t, 1.0, cfg.ColorAt(1).A)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, "capacity"},
		{"negative capacity", func(c *Config) { c.Capacity = -5 }, "capacity"},
		{"negative rate", func(c *Config) { c.EmitRate = -1 }, "emit_rate"},
		{"inverted lifetime", func(c *Config) { c.Lifetime = sim.R(2, 1) }, "lifetime"},
		{"zero lifetime", func(c *Config) { c.Lifetime = sim.R(0, 1) }, "lifetime.min"},
		{"inverted size", func(c *Config) { c.Size = sim.R(0.3, 0.1) }, "size"},
		{"inverted power", func(c *Config) { c.EmitPower = sim.R(4, 2) }, "emit_power"},
		{"inverted box", func(c *Config) { c.EmitBox.Min[0] = 1 }, "emit_box.x"},
		{"nan gravity", func(c *Config) { c.Gravity[1] = math.NaN() }, "gravity"},
		{"threshold above one", func(c *Config) { c.ColorDeadThreshold = 1.5 }, "color_dead_threshold"},
		{"threshold negative", func(c *Config) { c.ColorDeadThreshold = -0.1 }, "color_dead_threshold"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg, sim.NewSource(1))
			require.Error(t, err)
			var ve sim.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestNewRequiresRandomSource(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	require.Error(t, err)
	assert.True(t, sim.IsValidation(err))
}

func TestPoolIsReused(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 16
	e := newEmitter(t, cfg, 10)
	pool := &e.pool[0]

	e.Start()
	for i := 0; i < 600; i++ {
		e.Step(1.0 / 60)
	}
	assert.Same(t, pool, &e.pool[0], "pool must not be reallocated")
	assert.Equal(t, 16, e.Capacity())
}
