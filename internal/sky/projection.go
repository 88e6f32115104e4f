// Package sky maps celestial coordinates onto a flat viewport and formats
// countdowns to upcoming sky events.
package sky

import "math"

// Default view centre, in degrees.
const (
	DefaultCenterRA  = 180.0
	DefaultCenterDec = 0.0
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type view struct {
	centerRA  float64
	centerDec float64
}

// Option adjusts the projection centre.
type Option func(*view)

// WithCenter recentres the view. The declination is recorded but the flat
// projection does not shift vertically.
func WithCenter(ra, dec float64) Option {
	return func(v *view) {
		v.centerRA = ra
		v.centerDec = dec
	}
}

// ConvertToScreenCoordinates projects (ra, dec), both in degrees, onto a
// width x height viewport with north up. RA wraps around the view centre;
// the result is always clamped to the viewport.
func ConvertToScreenCoordinates(ra, dec, width, height float64, opts ...Option) Point {
	v := view{centerRA: DefaultCenterRA, centerDec: DefaultCenterDec}
	for _, opt := range opts {
		opt(&v)
	}

	normalized := math.Mod(math.Mod(ra-v.centerRA+180, 360)+360, 360) - 180

	x := (normalized + 180) / 360 * width
	y := (90 - dec) / 180 * height

	return Point{
		X: clamp(x, 0, width),
		Y: clamp(y, 0, height),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
