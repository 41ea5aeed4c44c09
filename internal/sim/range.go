package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Range is a closed interval of float64 values.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// R is shorthand for Range{Min: min, Max: max}.
func R(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Validate rejects non-finite bounds and Min > Max.
func (r Range) Validate(field string) error {
	if err := CheckFinite(field, r.Min, r.Max); err != nil {
		return err
	}
	if r.Min > r.Max {
		return ValidationError{
			Field:   field,
			Code:    CodeInvertedRange,
			Message: fmt.Sprintf("min %g > max %g", r.Min, r.Max),
		}
	}
	return nil
}

// Sample draws a uniform value from the range.
func (r Range) Sample(src RandomSource) float64 {
	return Uniform(src, r.Min, r.Max)
}

// Lerp interpolates between Min and Max.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// Box is an axis-aligned volume described by two opposite corners.
type Box struct {
	Min mgl64.Vec3 `yaml:"min"`
	Max mgl64.Vec3 `yaml:"max"`
}

// Validate checks every axis of the box like a Range.
func (b Box) Validate(field string) error {
	for i, axis := range [3]string{"x", "y", "z"} {
		if err := R(b.Min[i], b.Max[i]).Validate(field + "." + axis); err != nil {
			return err
		}
	}
	return nil
}

// Sample draws a point uniformly inside the box, one draw per axis in x, y, z order.
func (b Box) Sample(src RandomSource) mgl64.Vec3 {
	var p mgl64.Vec3
	for i := range p {
		p[i] = Uniform(src, b.Min[i], b.Max[i])
	}
	return p
}

// LerpVec interpolates each axis of a toward b with its own factor.
func LerpVec(a, b, t mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t[i]
	}
	return out
}
