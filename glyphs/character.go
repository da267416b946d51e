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

package glyphs

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bitmap"
)

var (
	// ErrUnknownGlyph is returned for characters without an outline.
	ErrUnknownGlyph = errors.New("glyphs: no outline for character")

	// ErrCellTooSmall is returned when a character buffer cannot hold
	// the stroke margin.
	ErrCellTooSmall = errors.New("glyphs: character cell too small")
)

// Character is one glyph drawn into its own pixel buffer.
type Character struct {
	char   rune
	segs   []Segment
	buf    *bitmap.Buffer
	stroke *bitmap.Stroker
}

// NewCharacter allocates a width×height buffer for c. The outline is
// drawn with s when Draw is called; the CTM of s is ignored.
func NewCharacter(c rune, width, height int, s *bitmap.Stroker) (*Character, error) {
	segs, ok := All[c]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGlyph, c)
	}
	if width <= 2*margin(s) || height <= 2*margin(s) {
		return nil, fmt.Errorf("%w: %dx%d", ErrCellTooSmall, width, height)
	}
	return &Character{
		char:   c,
		segs:   segs,
		buf:    bitmap.New(width, height),
		stroke: s,
	}, nil
}

// Rune returns the character.
func (c *Character) Rune() rune {
	return c.char
}

// Buffer returns the pixel buffer of the character.
func (c *Character) Buffer() *bitmap.Buffer {
	return c.buf
}

// Draw scales the outline to fit the buffer, keeping the aspect ratio and
// a margin for the stroke width, and strokes it.
func (c *Character) Draw() error {
	s := *c.stroke
	s.CTM = c.fit()
	return s.Stroke(c.buf, Outline(c.segs))
}

// fit returns the transformation which centres the outline in the buffer.
func (c *Character) fit() matrix.Matrix {
	m := float64(margin(c.stroke))
	w := float64(c.buf.Width()-1) - 2*m
	h := float64(c.buf.Height()-1) - 2*m

	bbox := Bounds(c.segs)
	bw := bbox.URx - bbox.LLx
	bh := bbox.URy - bbox.LLy

	scale := math.Inf(+1)
	if bw > 0 {
		scale = w / bw
	}
	if bh > 0 {
		scale = min(scale, h/bh)
	}
	if math.IsInf(scale, 0) {
		scale = 1
	}

	tx := m + (w-bw*scale)/2 - bbox.LLx*scale
	ty := m + (h-bh*scale)/2 - bbox.LLy*scale
	return matrix.Matrix{scale, 0, 0, scale, tx, ty}
}

// margin returns the number of pixels an anti-aliased stroke of s can
// reach beyond its centre line, plus one. Along an axis, diagonal strokes
// reach up to √2 times half their width.
func margin(s *bitmap.Stroker) int {
	if s.Width <= 0 {
		return 1
	}
	return 2 + int(math.Ceil(math.Sqrt2*(s.Width+1)/2))
}
