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

// Command captcha renders a captcha image for a string of glyph
// characters.
//
// Usage:
//
//	captcha -text 157ZQRE -format png -scale 3
//	captcha -demo -o demo
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/bitmap"
	"seehuhn.de/go/bitmap/captcha"
	"seehuhn.de/go/bitmap/imgfile"
)

func main() {
	var (
		text    = flag.String("text", "EbQX", "characters to render")
		output  = flag.String("o", "", "output file name without extension (default: derived from text)")
		format  = flag.String("format", "ppm", "output format: ppm, png, bmp or tiff")
		width   = flag.Int("width", captcha.DefaultWidth, "image width")
		height  = flag.Int("height", captcha.DefaultHeight, "image height")
		algo    = flag.String("algo", "direct", "curve strategy: direct, lut, approx or casteljau")
		stroke  = flag.Float64("stroke", 0, "anti-aliased stroke width in pixels (0 for binary strokes)")
		scale   = flag.Int("scale", 1, "integer up-scaling factor for the output image")
		demo    = flag.Bool("demo", false, "draw the curve strategy demo instead of a captcha")
		verbose = flag.Bool("v", false, "log debug messages to stderr")
	)
	flag.Parse()

	if *verbose {
		bitmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, err := imgfile.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	strategy, err := bitmap.ParseStrategy(*algo)
	if err != nil {
		log.Fatal(err)
	}

	var buf *bitmap.Buffer
	name := *output
	if *demo {
		buf, err = captcha.Demo()
		if name == "" {
			name = "demo"
		}
	} else {
		buf, err = captcha.Render(*text, captcha.Options{
			Width:       *width,
			Height:      *height,
			Strategy:    strategy,
			StrokeWidth: *stroke,
		})
		if name == "" {
			name = captcha.Name(*text)
		}
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	fname := name + f.Ext()
	img := imgfile.Scale(buf.Image(), *scale)
	if err := imgfile.WriteFile(fname, img, f); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Captcha saved to %s (%dx%d)\n", fname, img.Bounds().Dx(), img.Bounds().Dy())
}
