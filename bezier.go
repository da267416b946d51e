// seehuhn.de/go/bitmap - pixel plotting for lines, curves and ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bitmap

import (
	"fmt"
	"image"
	"math"
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Strategy selects how a CurveRasterizer turns a Bézier curve into pixels.
type Strategy int

const (
	// Direct evaluates the Bernstein polynomial at every parameter step.
	Direct Strategy = iota

	// LUT multiplies the control points with Bernstein coefficients
	// which are computed once per rasterizer and degree. The output is
	// identical to Direct.
	LUT

	// Approx evaluates the curve at Segments+1 evenly spaced parameter
	// values and connects the resulting polyline with DrawLine.
	Approx

	// Casteljau evaluates the curve by repeated linear interpolation of
	// the control points at every parameter step.
	Casteljau
)

var strategyNames = [...]string{
	Direct:    "direct",
	LUT:       "lut",
	Approx:    "approx",
	Casteljau: "casteljau",
}

func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy with the given name, as returned by
// String.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Default sampling parameters.
const (
	// DefaultStep is the parameter increment used by Direct, LUT and
	// Casteljau.
	DefaultStep = 0.001

	// DefaultSegments is the number of polyline segments used by Approx.
	DefaultSegments = 15
)

// CurveRasterizer plots quadratic and cubic Bézier curves.
//
// Curve points are mapped to the pixel containing them, so points with a
// negative coordinate, however small, are reported as out of bounds.
//
// Direct, LUT and Approx sample the parameter while t < 1, Casteljau while
// t ≤ 1. Because t is accumulated in floating point, the first three
// strategies are not guaranteed to plot the final control point.
//
// A CurveRasterizer may be shared between goroutines as long as each
// goroutine draws onto its own canvas.
type CurveRasterizer struct {
	// Segments is the number of line segments used by the Approx
	// strategy. Values below 1 are treated as 1.
	Segments int

	step  float64
	quad  lut
	cubic lut
}

// lut holds the Bernstein coefficients of one degree, sampled at the
// rasterizer's parameter steps. It is immutable once built.
type lut struct {
	once   sync.Once
	coeffs [][]float64
}

// NewCurveRasterizer returns a rasterizer which samples curves with the
// given parameter step. A step ≤ 0 selects DefaultStep.
func NewCurveRasterizer(step float64) *CurveRasterizer {
	if step <= 0 {
		step = DefaultStep
	}
	return &CurveRasterizer{
		Segments: DefaultSegments,
		step:     step,
	}
}

// Step returns the parameter increment.
func (r *CurveRasterizer) Step() float64 {
	return r.step
}

// Quadratic plots the quadratic Bézier curve with the three control
// points pts.
func (r *CurveRasterizer) Quadratic(dst Canvas, pts []vec.Vec2, s Strategy) error {
	if len(pts) != 3 {
		return fmt.Errorf("%w: quadratic curve needs 3 points, got %d", ErrInvalidArity, len(pts))
	}
	return r.draw(dst, pts, s)
}

// Cubic plots the cubic Bézier curve with the four control points pts.
func (r *CurveRasterizer) Cubic(dst Canvas, pts []vec.Vec2, s Strategy) error {
	if len(pts) != 4 {
		return fmt.Errorf("%w: cubic curve needs 4 points, got %d", ErrInvalidArity, len(pts))
	}
	return r.draw(dst, pts, s)
}

// Curve plots a quadratic curve if pts has three elements and a cubic curve
// if pts has four.
func (r *CurveRasterizer) Curve(dst Canvas, pts []vec.Vec2, s Strategy) error {
	switch len(pts) {
	case 3:
		return r.Quadratic(dst, pts, s)
	case 4:
		return r.Cubic(dst, pts, s)
	default:
		return fmt.Errorf("%w: curve needs 3 or 4 points, got %d", ErrInvalidArity, len(pts))
	}
}

func (r *CurveRasterizer) draw(dst Canvas, pts []vec.Vec2, s Strategy) error {
	switch s {
	case Direct:
		return r.drawDirect(dst, pts)
	case LUT:
		return r.drawLUT(dst, pts)
	case Approx:
		return r.drawApprox(dst, pts)
	case Casteljau:
		return r.drawCasteljau(dst, pts)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

func (r *CurveRasterizer) drawDirect(dst Canvas, pts []vec.Vec2) error {
	var buf [4]float64
	c := buf[:len(pts)]
	for t := 0.0; t < 1; t += r.step {
		bernstein(c, t)
		if err := plot(dst, combine(pts, c)); err != nil {
			return err
		}
	}
	return nil
}

func (r *CurveRasterizer) drawLUT(dst Canvas, pts []vec.Vec2) error {
	for _, c := range r.table(len(pts) - 1) {
		if err := plot(dst, combine(pts, c)); err != nil {
			return err
		}
	}
	return nil
}

// table returns the coefficient table for the given degree, building it
// on first use.
func (r *CurveRasterizer) table(degree int) [][]float64 {
	l := &r.quad
	if degree == 3 {
		l = &r.cubic
	}
	l.once.Do(func() {
		for t := 0.0; t < 1; t += r.step {
			c := make([]float64, degree+1)
			bernstein(c, t)
			l.coeffs = append(l.coeffs, c)
		}
		Logger().Debug("built Bézier lookup table",
			"degree", degree, "step", r.step, "entries", len(l.coeffs))
	})
	return l.coeffs
}

func (r *CurveRasterizer) drawApprox(dst Canvas, pts []vec.Vec2) error {
	n := max(r.Segments, 1)

	var buf [4]float64
	c := buf[:len(pts)]
	var prev image.Point
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		bernstein(c, t)
		cur := toPixel(combine(pts, c))
		if i > 0 {
			if err := DrawLine(dst, prev, cur); err != nil {
				return err
			}
		}
		prev = cur
	}
	return nil
}

func (r *CurveRasterizer) drawCasteljau(dst Canvas, pts []vec.Vec2) error {
	scratch := make([]vec.Vec2, len(pts))
	for t := 0.0; t <= 1; t += r.step {
		copy(scratch, pts)
		if err := plot(dst, casteljau(scratch, t)); err != nil {
			return err
		}
	}
	return nil
}

// bernstein fills c with the Bernstein basis polynomials of degree
// len(c)-1 evaluated at t. Only degrees 2 and 3 are supported.
func bernstein(c []float64, t float64) {
	mt := 1 - t
	switch len(c) {
	case 3:
		c[0] = mt * mt
		c[1] = 2 * mt * t
		c[2] = t * t
	case 4:
		mt2 := mt * mt
		t2 := t * t
		c[0] = mt2 * mt
		c[1] = 3 * mt2 * t
		c[2] = 3 * mt * t2
		c[3] = t2 * t
	}
}

// combine returns the weighted sum of the control points.
func combine(pts []vec.Vec2, c []float64) vec.Vec2 {
	var p vec.Vec2
	for i, q := range pts {
		p.X += q.X * c[i]
		p.Y += q.Y * c[i]
	}
	return p
}

// casteljau evaluates the Bézier curve with control points pts at t.
// The contents of pts are overwritten.
func casteljau(pts []vec.Vec2, t float64) vec.Vec2 {
	if len(pts) == 1 {
		return pts[0]
	}
	for i := range len(pts) - 1 {
		pts[i] = pts[i].Mul(1 - t).Add(pts[i+1].Mul(t))
	}
	return casteljau(pts[:len(pts)-1], t)
}

// toPixel converts a point to the coordinates of the pixel containing
// it. Points left of or above the grid map to negative coordinates.
func toPixel(p vec.Vec2) image.Point {
	return image.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

func plot(dst Canvas, p vec.Vec2) error {
	q := toPixel(p)
	return dst.Set(q.X, q.Y, Ink)
}
