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

import "math"

// The anti-aliased primitives follow the integer error recurrences of
// Alois Zingl, "A Rasterizing Algorithm for Drawing Curves" (2012).
// Pixel values are intensities: 0 is full ink, values of 255 and above
// mean no coverage and are not written.

// setAA writes the intensity i at (x, y) unless it is background.
func setAA(dst Canvas, x, y int, i float64) error {
	if i >= 255 {
		return nil
	}
	return dst.Set(x, y, int(i))
}

// DrawLineAA draws an anti-aliased line of the given stroke width from
// (x0, y0) to (x1, y1). Pixels within half the stroke width of the ideal
// line get an intensity that falls off with the perpendicular distance.
func DrawLineAA(dst Canvas, x0, y0, x1, y1 int, width float64) error {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy // error value e_xy

	ed := 1.0 // perpendicular distance normaliser
	if dx+dy != 0 {
		ed = math.Sqrt(float64(dx*dx + dy*dy))
	}

	wd := (width + 1) / 2
	for {
		i := max(0, 255*(float64(abs(err-dx+dy))/ed-wd+1))
		if e := setAA(dst, x0, y0, i); e != nil {
			return e
		}
		e2 := err
		x2 := x0
		if 2*e2 >= -dx { // x step
			y2 := y0
			for e2 += dy; float64(e2) < ed*wd && (y1 != y2 || dx > dy); e2 += dx {
				y2 += sy
				i := max(0, 255*(float64(abs(e2))/ed-wd+1))
				if e := setAA(dst, x0, y2, i); e != nil {
					return e
				}
			}
			if x0 == x1 {
				return nil
			}
			e2 = err
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy { // y step
			for e2 = dx - e2; float64(e2) < ed*wd && (x1 != x2 || dx < dy); e2 += dy {
				x2 += sx
				i := max(0, 255*(float64(abs(e2))/ed-wd+1))
				if e := setAA(dst, x2, y0, i); e != nil {
					return e
				}
			}
			if y0 == y1 {
				return nil
			}
			err += dx
			y0 += sy
		}
	}
}

// DrawCircleAA draws an anti-aliased circle of radius r around (xm, ym).
// Pixel intensities are the error term of the pixel scaled by 255/r.
// A radius of zero plots the centre pixel.
func DrawCircleAA(dst Canvas, xm, ym, r int) error {
	r = abs(r)
	if r == 0 {
		return dst.Set(xm, ym, Ink)
	}

	// The loop walks the second quadrant from bottom left to top right
	// and mirrors every pixel into the other three.
	x, y := -r, 0
	err := 2 - 2*r // error of 1st step

	// quad plots (x, y) of the second quadrant walk and its three
	// mirror images.
	quad := func(x, y, i int) error {
		if i >= 255 {
			return nil
		}
		for _, p := range [4][2]int{
			{xm - x, ym + y}, // I. quadrant
			{xm - y, ym - x}, // II. quadrant
			{xm + x, ym - y}, // III. quadrant
			{xm + y, ym + x}, // IV. quadrant
		} {
			if e := dst.Set(p[0], p[1], i); e != nil {
				return e
			}
		}
		return nil
	}

	for x < 0 {
		i := 255 * abs(err-2*(x+y)-2) / r
		if e := quad(x, y, i); e != nil {
			return e
		}
		e2, x2 := err, x
		if err+y > 0 { // x step
			i := 255 * (err - 2*x - 1) / r // outward pixel
			if e := quad(x, y+1, i); e != nil {
				return e
			}
			x++
			err += 2*x + 1
		}
		if e2+x2 <= 0 { // y step
			i := 255 * (2*y + 3 - e2) / r // inward pixel
			if e := quad(x2+1, y, i); e != nil {
				return e
			}
			y++
			err += 2*y + 1
		}
	}
	return nil
}

// DrawEllipseRectAA draws an anti-aliased axis-aligned ellipse inscribed in
// the rectangle with corners (x0, y0) and (x1, y1). If the rectangle has
// zero width or height, a one pixel wide anti-aliased line is drawn
// instead.
func DrawEllipseRectAA(dst Canvas, x0, y0, x1, y1 int) error {
	a := abs(x1 - x0)
	b := abs(y1 - y0)
	if a == 0 || b == 0 {
		return DrawLineAA(dst, x0, y0, x1, y1, 1)
	}

	b1 := b & 1 // diameter parity
	dx := 4 * (float64(a) - 1) * float64(b*b)
	dy := 4 * float64(b1+1) * float64(a*a) // error increment
	err := float64(b1*a*a) - dx + dy      // error of 1st step

	if x0 > x1 { // normalise swapped corners
		x0 = x1
		x1 += a
	}
	if y0 > y1 {
		y0 = y1
	}
	y0 += (b + 1) / 2
	y1 = y0 - b1 // starting pixel
	a8 := 8 * float64(a*a)
	b8 := 8 * float64(b*b)

	corners := func(xa, ya, xb, yb int, i float64) error {
		if i >= 255 {
			return nil
		}
		for _, p := range [4][2]int{{xa, ya}, {xa, yb}, {xb, ya}, {xb, yb}} {
			if e := dst.Set(p[0], p[1], int(i)); e != nil {
				return e
			}
		}
		return nil
	}

	for {
		// approximate ed = sqrt(dx*dx + dy*dy)
		lo, hi := min(dx, dy), max(dx, dy)
		var ed float64
		if y0 == y1+1 && err > dy && a8 > b8 {
			ed = 255 * 4 / a8 // x-tip
		} else {
			ed = 255 / (hi + 2*hi*lo*lo/(4*hi*hi+lo*lo))
		}
		i := ed * math.Abs(err+dx-dy) // intensity from pixel error
		if e := corners(x0, y0, x1, y1, i); e != nil {
			return e
		}

		xStep := 2*err+dy >= 0
		if xStep {
			if x0 >= x1 {
				break
			}
			i := ed * (err + dx)
			if e := corners(x0, y0+1, x1, y1-1, i); e != nil {
				return e
			}
		}
		if 2*err <= dx { // y step
			i := ed * (dy - err)
			if e := corners(x0+1, y0, x1-1, y1, i); e != nil {
				return e
			}
			y0++
			y1--
			dy += a8
			err += dy
		}
		if xStep {
			x0++
			x1--
			dx -= b8
			err -= dx
		}
	}

	// Flat ellipses can stop one step before the tip.
	x0--
	if x0 == x1 {
		x1++
		for y0-y1 < b {
			i := 255 * 4 * math.Abs(err+dx) / b8
			y0++
			y1--
			if e := corners(x0, y0, x1, y1, i); e != nil {
				return e
			}
			dy += a8
			err += dy
		}
	}
	return nil
}
