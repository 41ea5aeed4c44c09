package sim

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "sample %d", i)
	}

	first := NewSource(7).Float64()
	s := NewSource(7)
	s.Float64()
	s.Float64()
	s.Reset()
	assert.Equal(t, first, s.Float64())
	assert.Equal(t, int64(7), s.Seed())
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		code string
	}{
		{"ordered", R(0.5, 1.5), ""},
		{"degenerate", R(2, 2), ""},
		{"inverted", R(3, 1), CodeInvertedRange},
		{"nan", R(math.NaN(), 1), CodeNotFinite},
		{"inf", R(0, math.Inf(1)), CodeNotFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.r.Validate("lifetime")
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.code, ve.Code)
			assert.Equal(t, "lifetime", ve.Field)
		})
	}
}

func TestRangeSampleStaysInside(t *testing.T) {
	src := NewSource(1)
	r := R(0.1, 0.3)
	for i := 0; i < 1000; i++ {
		v := r.Sample(src)
		require.GreaterOrEqual(t, v, r.Min)
		require.Less(t, v, r.Max)
	}
	assert.Equal(t, 2.0, R(2, 2).Sample(src))
}

func TestBoxSampleAndValidate(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-0.1, 0, -0.1}, Max: mgl64.Vec3{0.1, 0, 0.1}}
	require.NoError(t, b.Validate("box"))

	src := NewSource(3)
	for i := 0; i < 200; i++ {
		p := b.Sample(src)
		assert.GreaterOrEqual(t, p.X(), -0.1)
		assert.Less(t, p.X(), 0.1)
		assert.Equal(t, 0.0, p.Y())
	}

	bad := Box{Min: mgl64.Vec3{0, 1, 0}, Max: mgl64.Vec3{0, 0, 0}}
	err := bad.Validate("box")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "box.y")
}

func TestLerpVec(t *testing.T) {
	got := LerpVec(mgl64.Vec3{-1, 3, -1}, mgl64.Vec3{1, 3, 1}, mgl64.Vec3{0, 0.5, 1})
	assert.Equal(t, mgl64.Vec3{-1, 3, 1}, got)
}

func TestColorLerp(t *testing.T) {
	start := RGBA(1, 0.5, 0, 1)
	dead := RGBA(0.5, 0.2, 0, 0)

	assert.Equal(t, start, start.Lerp(dead, 0))
	assert.InDelta(t, 0.5, start.Lerp(dead, 1).R, 1e-12)

	mid := start.Lerp(dead, 0.5)
	assert.InDelta(t, 0.75, mid.R, 1e-12)
	assert.InDelta(t, 0.35, mid.G, 1e-12)
	assert.InDelta(t, 0.5, mid.A, 1e-12)

	assert.Equal(t, "#ff8000", RGB(1, 0.5, 0).Hex())
}

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("config: %w", Invalid("capacity", "must be positive, got %d", 0))
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(fmt.Errorf("plain")))
	assert.Contains(t, err.Error(), "[OUT_OF_RANGE] capacity: must be positive, got 0")
}
