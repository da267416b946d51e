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

import "image"

// DrawLine plots the 8-connected pixel path from p0 to p1 using Ink.
// Both endpoints are included and the path has max(|dx|, |dy|)+1 pixels.
// Drawing stops at the first failed write, whose error is returned.
func DrawLine(dst Canvas, p0, p1 image.Point) error {
	x, y := p0.X, p0.Y
	dx := abs(p1.X - x)
	dy := -abs(p1.Y - y)
	sx := 1
	if x > p1.X {
		sx = -1
	}
	sy := 1
	if y > p1.Y {
		sy = -1
	}

	err := dx + dy // error value e_xy
	for {
		if e := dst.Set(x, y, Ink); e != nil {
			return e
		}
		if x == p1.X && y == p1.Y {
			return nil
		}
		e2 := 2 * err
		if e2 >= dy { // x step
			err += dy
			x += sx
		}
		if e2 <= dx { // y step
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
