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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroker draws the outline of a path onto a canvas.
// Use NewStroker to obtain a Stroker with usable defaults; the zero CTM
// maps everything onto the origin.
//
// With Width == 0, straight segments are drawn with DrawLine and curves
// with Curves using Strategy. With Width > 0, curves are flattened and
// every segment is drawn with DrawLineAA.
type Stroker struct {
	// CTM maps path coordinates to pixel coordinates.
	CTM matrix.Matrix

	// Curves plots the curve segments of binary strokes.
	Curves *CurveRasterizer

	// Strategy selects the curve sampling method of binary strokes.
	Strategy Strategy

	// Width is the anti-aliased stroke width in pixels.
	// Zero selects binary strokes.
	Width float64

	// Flatness controls curve approximation accuracy of anti-aliased
	// strokes, in pixels. Must be positive.
	Flatness float64
}

// NewStroker returns a Stroker for binary strokes with the identity CTM
// and a fresh CurveRasterizer.
func NewStroker() *Stroker {
	return &Stroker{
		CTM:      matrix.Identity,
		Curves:   NewCurveRasterizer(DefaultStep),
		Strategy: Direct,
		Flatness: defaultFlatness,
	}
}

// defaultFlatness is the default curve flattening tolerance in pixels.
const defaultFlatness = 0.25

// transform applies the CTM to a point.
func (s *Stroker) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*p.X + s.CTM[2]*p.Y + s.CTM[4],
		Y: s.CTM[1]*p.X + s.CTM[3]*p.Y + s.CTM[5],
	}
}

// Stroke draws every segment of p. Drawing stops at the first error.
func (s *Stroker) Stroke(dst Canvas, p *path.Data) error {
	var current vec.Vec2 // current point (device space)
	var subpath vec.Vec2 // subpath start (device space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		var err error
		switch cmd {
		case path.CmdMoveTo:
			current = s.transform(p.Coords[coordIdx])
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := s.transform(p.Coords[coordIdx])
			err = s.line(dst, current, next)
			current = next
			coordIdx++

		case path.CmdQuadTo:
			pts := []vec.Vec2{
				current,
				s.transform(p.Coords[coordIdx]),
				s.transform(p.Coords[coordIdx+1]),
			}
			err = s.curve(dst, pts)
			current = pts[2]
			coordIdx += 2

		case path.CmdCubeTo:
			pts := []vec.Vec2{
				current,
				s.transform(p.Coords[coordIdx]),
				s.transform(p.Coords[coordIdx+1]),
				s.transform(p.Coords[coordIdx+2]),
			}
			err = s.curve(dst, pts)
			current = pts[3]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				err = s.line(dst, current, subpath)
			}
			current = subpath
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Stroker) line(dst Canvas, a, b vec.Vec2) error {
	if s.Width > 0 {
		p, q := toPixel(a), toPixel(b)
		return DrawLineAA(dst, p.X, p.Y, q.X, q.Y, s.Width)
	}
	return DrawLine(dst, toPixel(a), toPixel(b))
}

func (s *Stroker) curve(dst Canvas, pts []vec.Vec2) error {
	if s.Width <= 0 {
		curves := s.Curves
		if curves == nil {
			curves = NewCurveRasterizer(DefaultStep)
		}
		return curves.Curve(dst, pts, s.Strategy)
	}

	var err error
	emit := func(from, to vec.Vec2) {
		if err == nil {
			err = s.line(dst, from, to)
		}
	}
	if len(pts) == 3 {
		s.flattenQuadratic(pts[0], pts[1], pts[2], emit)
	} else {
		s.flattenCubic(pts[0], pts[1], pts[2], pts[3], emit)
	}
	return err
}

// flattenQuadratic flattens a quadratic Bézier in device space and calls
// emit for each line segment.
func (s *Stroker) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errDev := e.Length(); errDev > s.flatness() {
		n = int(math.Ceil(math.Sqrt(errDev / s.flatness())))
	}

	var c [3]float64
	prev := p0
	for i := 1; i <= n; i++ {
		bernstein(c[:], float64(i)/float64(n))
		pt := combine([]vec.Vec2{p0, p1, p2}, c[:])
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier in device space and calls emit for
// each line segment. The segment count follows Wang's formula.
func (s *Stroker) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nFloat := math.Sqrt(3 * m / (4 * s.flatness())); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	var c [4]float64
	prev := p0
	for i := 1; i <= n; i++ {
		bernstein(c[:], float64(i)/float64(n))
		pt := combine([]vec.Vec2{p0, p1, p2, p3}, c[:])
		emit(prev, pt)
		prev = pt
	}
}

func (s *Stroker) flatness() float64 {
	if s.Flatness > 0 {
		return s.Flatness
	}
	return defaultFlatness
}
