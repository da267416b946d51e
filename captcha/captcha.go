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

// Package captcha composes captcha images from glyph outlines.
package captcha

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bitmap"
	"seehuhn.de/go/bitmap/glyphs"
)

// ErrInvalidChars is returned for captcha strings which are empty or
// contain characters without a glyph.
var ErrInvalidChars = errors.New("captcha: invalid characters")

// Default image size.
const (
	DefaultWidth  = 300
	DefaultHeight = 100
)

// Options control the appearance of a captcha.
// The zero value selects a 300×100 image with binary strokes and the
// Direct curve strategy.
type Options struct {
	Width, Height int

	// Strategy selects the curve sampling method for binary strokes.
	Strategy bitmap.Strategy

	// StrokeWidth selects anti-aliased strokes of the given width in
	// pixels. Zero selects binary strokes.
	StrokeWidth float64

	// Step is the curve parameter increment. Zero selects
	// bitmap.DefaultStep.
	Step float64
}

// Validate checks that text is non-empty and every character has a glyph.
func Validate(text string) error {
	text = norm.NFC.String(text)
	if text == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidChars)
	}
	var bad []rune
	for _, c := range text {
		if _, ok := glyphs.All[c]; !ok {
			bad = append(bad, c)
		}
	}
	if bad != nil {
		return fmt.Errorf("%w %q: only %q may be used", ErrInvalidChars, string(bad), glyphs.Chars())
	}
	return nil
}

// Render draws text into a new buffer. Each character gets a cell of equal
// width, left to right.
func Render(text string, opt Options) (*bitmap.Buffer, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}
	text = norm.NFC.String(text)

	width, height := opt.Width, opt.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("captcha: invalid image size %dx%d", width, height)
	}

	s := bitmap.NewStroker()
	s.Curves = bitmap.NewCurveRasterizer(opt.Step)
	s.Strategy = opt.Strategy
	s.Width = opt.StrokeWidth

	chars := []rune(text)
	cell := width / len(chars)
	out := bitmap.New(width, height)
	log := bitmap.Logger()
	for i, c := range chars {
		ch, err := glyphs.NewCharacter(c, cell, height, s)
		if err != nil {
			return nil, err
		}
		if err := ch.Draw(); err != nil {
			return nil, fmt.Errorf("captcha: drawing %q: %w", c, err)
		}
		log.Debug("glyph drawn", "char", string(c), "cell", i, "strategy", opt.Strategy)
		if err := out.Paste(ch.Buffer(), i*cell, 0); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Demo reproduces the reference drawing: four curves, one per strategy,
// on a 100×100 canvas placed at the top left of a 400×150 image.
func Demo() (*bitmap.Buffer, error) {
	r := bitmap.NewCurveRasterizer(bitmap.DefaultStep)
	c := bitmap.New(100, 100)
	curves := []struct {
		pts []vec.Vec2
		s   bitmap.Strategy
	}{
		{[]vec.Vec2{{X: 10, Y: 20}, {X: 65, Y: 70}, {X: 40, Y: 100}}, bitmap.LUT},
		{[]vec.Vec2{{X: 30, Y: 25}, {X: 0, Y: 0}, {X: 46, Y: 11}}, bitmap.Casteljau},
		{[]vec.Vec2{{X: 52, Y: 18}, {X: 40, Y: 20}, {X: 16, Y: 31}, {X: 100, Y: 0}}, bitmap.Direct},
		{[]vec.Vec2{{X: 30, Y: 80}, {X: 40, Y: 0}, {X: 80, Y: 80}, {X: 80, Y: 83}}, bitmap.Approx},
	}
	for _, cv := range curves {
		if err := r.Curve(c, cv.pts, cv.s); err != nil {
			return nil, fmt.Errorf("captcha: %v curve: %w", cv.s, err)
		}
	}

	out := bitmap.New(400, 150)
	if err := out.Paste(c, 0, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// Name returns the default file name, without extension, for a captcha
// showing text: the first 12 hex digits of its MD5 sum.
func Name(text string) string {
	sum := md5.Sum([]byte(norm.NFC.String(text)))
	return hex.EncodeToString(sum[:6])
}
