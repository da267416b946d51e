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

// Package glyphs holds stroke outlines for the characters used in
// captchas, and renders them into pixel buffers.
package glyphs

//go:generate go run ./export
//go:generate go run ./genpdf

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind distinguishes the segment types of an outline.
type Kind int

const (
	Line  Kind = iota // straight line, 2 points
	Cubic             // cubic Bézier curve, 4 points
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Segment is one stroke of a glyph outline.
// Pts holds 2 points for lines and 4 control points for cubic curves.
type Segment struct {
	Kind Kind
	Pts  []vec.Vec2
}

// line is a helper to create a line segment.
func line(x0, y0, x1, y1 float64) Segment {
	return Segment{Kind: Line, Pts: []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y1}}}
}

// cubic is a helper to create a cubic Bézier segment.
func cubic(x0, y0, x1, y1, x2, y2, x3, y3 float64) Segment {
	return Segment{Kind: Cubic, Pts: []vec.Vec2{
		{X: x0, Y: y0}, {X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3},
	}}
}

// Outline converts a segment list into a path. Consecutive segments which
// share an endpoint are joined into one subpath.
func Outline(segs []Segment) *path.Data {
	p := &path.Data{}
	var current vec.Vec2
	open := false
	for _, s := range segs {
		if !open || s.Pts[0] != current {
			p = p.MoveTo(s.Pts[0])
			open = true
		}
		switch s.Kind {
		case Line:
			p = p.LineTo(s.Pts[1])
		case Cubic:
			p = p.CubeTo(s.Pts[1], s.Pts[2], s.Pts[3])
		}
		current = s.Pts[len(s.Pts)-1]
	}
	return p
}

// Bounds returns the bounding box of all points of segs, control points
// included. Since a Bézier curve lies in the convex hull of its control
// points, the box contains the whole outline.
func Bounds(segs []Segment) rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, s := range segs {
		for _, p := range s.Pts {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}
