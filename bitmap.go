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

// Package bitmap plots vector primitives onto an in-memory grayscale grid.
//
// A [Buffer] holds the pixels. [DrawLine] draws exact Bresenham lines,
// a [CurveRasterizer] plots quadratic and cubic Bézier curves with one of
// four sampling strategies, and [DrawLineAA], [DrawCircleAA] and
// [DrawEllipseRectAA] produce anti-aliased output where the pixel value
// encodes coverage (0 = full ink, 255 = background).
//
// All primitives write through [Canvas.Set]. Writes outside the grid are
// reported as errors wrapping [ErrOutOfBounds]; nothing is clipped.
package bitmap

import (
	"fmt"
	"image"
)

// Pixel values used by the binary primitives.
const (
	// Ink is the value written by DrawLine and the curve rasterizer.
	Ink = 0

	// Background is the value of a freshly created buffer.
	Background = 255
)

// Canvas is the write side of a pixel grid.
// Every drawing primitive in this package mutates its target only through
// Set.
type Canvas interface {
	// Set stores the gray value c at (x, y). Values are clamped to
	// [0, 255]. Coordinates outside the canvas must cause an error
	// wrapping ErrOutOfBounds.
	Set(x, y, c int) error
}

// Buffer is a fixed-size grid of 8-bit gray values in row-major order.
//
// A Buffer is owned by whoever creates it and is not safe for concurrent
// writes.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// New returns a width×height buffer filled with Background.
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("bitmap: invalid buffer size %dx%d", width, height))
	}
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
	b.Clear()
	return b
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Clear resets every pixel to Background.
func (b *Buffer) Clear() {
	for i := range b.pix {
		b.pix[i] = Background
	}
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set stores c, clamped to [0, 255], at column x and row y.
func (b *Buffer) Set(x, y, c int) error {
	if !b.inside(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d buffer", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.pix[y*b.width+x] = uint8(max(0, min(255, c)))
	return nil
}

// Get returns the value at column x and row y.
func (b *Buffer) Get(x, y int) (uint8, error) {
	if !b.inside(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d buffer", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.pix[y*b.width+x], nil
}

// Export returns a copy of the grid, one slice per row, top row first.
func (b *Buffer) Export() [][]uint8 {
	rows := make([][]uint8, b.height)
	for y := range rows {
		rows[y] = append([]uint8(nil), b.pix[y*b.width:(y+1)*b.width]...)
	}
	return rows
}

// Image returns a copy of the buffer as an image.Gray.
func (b *Buffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// Paste copies src into b so that the top-left pixel of src lands on
// (dx, dy). If src does not fit completely, Paste returns an error
// wrapping ErrOutOfBounds and leaves b unchanged.
func (b *Buffer) Paste(src *Buffer, dx, dy int) error {
	if dx < 0 || dy < 0 || dx+src.width > b.width || dy+src.height > b.height {
		return fmt.Errorf("%w: %dx%d at (%d, %d) in %dx%d buffer",
			ErrOutOfBounds, src.width, src.height, dx, dy, b.width, b.height)
	}
	Logger().Debug("paste", "width", src.width, "height", src.height, "dx", dx, "dy", dy)
	for y := range src.height {
		row := src.pix[y*src.width : (y+1)*src.width]
		for x, c := range row {
			if err := b.Set(dx+x, dy+y, int(c)); err != nil {
				return err
			}
		}
	}
	return nil
}
