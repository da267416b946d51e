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

// Command genpdf writes one vector PDF per glyph outline, for visual
// comparison with the rasterized captcha characters.
// With -png, the PDFs are also rendered to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/bitmap/glyphs"
)

const pageSize = 1000 // design units, 1 unit = 1 point

func main() {
	outDir := flag.String("o", "testdata/glyphs", "output directory")
	withPNG := flag.Bool("png", false, "also render PNG files with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, c := range slices.Sorted(maps.Keys(glyphs.All)) {
		name := fmt.Sprintf("glyph_%04x", c)
		pdfPath := filepath.Join(*outDir, name+".pdf")
		if err := generatePDF(glyphs.All[c], pdfPath); err != nil {
			panic(fmt.Errorf("%q: %w", c, err))
		}
		if *withPNG {
			pngPath := filepath.Join(*outDir, name+".png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%q: %w", c, err))
			}
		}
	}
}

func generatePDF(segs []glyphs.Segment, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: pageSize,
		URy: pageSize,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; glyph outlines assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pageSize})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(4)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for cmd, pts := range glyphs.Outline(segs).Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, like the captcha buffers
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
