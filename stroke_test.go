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
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestStrokeTriangle(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 8, Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 6}).
		Close()

	got := New(10, 10)
	if err := NewStroker().Stroke(got, p); err != nil {
		t.Fatal(err)
	}

	want := New(10, 10)
	edges := [][2]image.Point{
		{{1, 1}, {8, 1}},
		{{8, 1}, {1, 6}},
		{{1, 6}, {1, 1}},
	}
	for _, e := range edges {
		if err := DrawLine(want, e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if d := cmp.Diff(want.Export(), got.Export()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestStrokeCTM(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 3, Y: 0})

	s := NewStroker()
	s.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1}
	r := &recorder{width: 10, height: 10}
	if err := s.Stroke(r, p); err != nil {
		t.Fatal(err)
	}
	want := []image.Point{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1}}
	if d := cmp.Diff(want, r.points()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestStrokeCurvesBinary(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(testQuad[0]).
		QuadTo(testQuad[1], testQuad[2]).
		MoveTo(testCubic[0]).
		CubeTo(testCubic[1], testCubic[2], testCubic[3])

	for _, strategy := range []Strategy{Direct, LUT, Approx, Casteljau} {
		s := NewStroker()
		s.Strategy = strategy
		got := &recorder{width: 200, height: 200}
		if err := s.Stroke(got, p); err != nil {
			t.Fatalf("%v: %v", strategy, err)
		}

		cr := NewCurveRasterizer(DefaultStep)
		want := &recorder{width: 200, height: 200}
		if err := cr.Quadratic(want, testQuad, strategy); err != nil {
			t.Fatal(err)
		}
		if err := cr.Cubic(want, testCubic, strategy); err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want.writes, got.writes); d != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", strategy, d)
		}
	}
}

func TestStrokeAA(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		CubeTo(vec.Vec2{X: 30, Y: 10}, vec.Vec2{X: 10, Y: 30}, vec.Vec2{X: 30, Y: 30}).
		LineTo(vec.Vec2{X: 10, Y: 30}).
		Close()

	s := NewStroker()
	s.Width = 2
	b := New(40, 40)
	if err := s.Stroke(b, p); err != nil {
		t.Fatal(err)
	}

	// the path vertices are drawn with full ink
	for _, v := range []image.Point{{10, 10}, {30, 30}, {10, 30}} {
		if c, _ := b.Get(v.X, v.Y); c != Ink {
			t.Errorf("vertex %v = %d, want Ink", v, c)
		}
	}

	// anti-aliased strokes produce intermediate values
	grey := 0
	for _, row := range b.Export() {
		for _, c := range row {
			if c != Ink && c != Background {
				grey++
			}
		}
	}
	if grey == 0 {
		t.Error("no intermediate intensities")
	}
}

func TestStrokeOutOfBounds(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 20, Y: 2})

	for _, width := range []float64{0, 1.5} {
		s := NewStroker()
		s.Width = width
		if err := s.Stroke(New(10, 10), p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("width %g: got %v, want ErrOutOfBounds", width, err)
		}
	}
}

func TestFlattenCubicEndpoints(t *testing.T) {
	s := NewStroker()
	p0 := vec.Vec2{X: 1, Y: 2}
	p3 := vec.Vec2{X: 40, Y: 7}
	var segs [][2]vec.Vec2
	s.flattenCubic(p0, vec.Vec2{X: 10, Y: 30}, vec.Vec2{X: 30, Y: -20}, p3, func(a, b vec.Vec2) {
		segs = append(segs, [2]vec.Vec2{a, b})
	})
	if len(segs) < 2 {
		t.Fatalf("curve flattened to %d segments", len(segs))
	}
	if segs[0][0] != p0 {
		t.Errorf("first point %v, want %v", segs[0][0], p0)
	}
	if last := segs[len(segs)-1][1]; last != p3 {
		t.Errorf("last point %v, want %v", last, p3)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i][0] != segs[i-1][1] {
			t.Errorf("segment %d does not continue segment %d", i, i-1)
		}
	}
}
