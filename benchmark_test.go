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
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkCurveStrategies compares the four ways of plotting a cubic
// Bézier curve.
func BenchmarkCurveStrategies(b *testing.B) {
	for _, s := range []Strategy{Direct, LUT, Approx, Casteljau} {
		b.Run(s.String(), func(b *testing.B) {
			r := NewCurveRasterizer(DefaultStep)
			dst := New(200, 200)

			b.ReportAllocs()
			for b.Loop() {
				if err := r.Cubic(dst, testCubic, s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCircleAA benchmarks the anti-aliased circle outline.
func BenchmarkCircleAA(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := New(size, size)
			c := size / 2
			radius := size * 40 / 100

			b.ReportAllocs()
			for b.Loop() {
				if err := DrawCircleAA(dst, c, c, radius); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkStrokeCircleAA strokes a Bézier approximation of the same
// circle with a one pixel anti-aliased pen.
func BenchmarkStrokeCircleAA(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := New(size, size)
			center := float64(size) / 2
			p := makeCirclePath(center, center, float64(size)*0.4)

			s := NewStroker()
			s.Width = 1

			b.ReportAllocs()
			for b.Loop() {
				if err := s.Stroke(dst, p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorRing benchmarks x/image/vector filling a one pixel wide
// ring, the closest equivalent of an anti-aliased circle outline.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			radius := float32(size) * 0.4

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, radius+0.5, false)
				addCircleToVector(r, center, center, radius-0.5, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeCirclePath approximates a circle by four cubic Bézier curves.
func makeCirclePath(cx, cy, r float64) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
