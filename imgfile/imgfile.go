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

// Package imgfile writes grayscale pixel grids to image files.
//
// The PPM writer produces the plain text "P3" variant with one line per
// row, every pixel written as an RGB triplet followed by a tab.
package imgfile

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output image format.
type Format int

// Supported formats.
const (
	PPM Format = iota
	PNG
	BMP
	TIFF
)

var formatNames = [...]string{
	PPM:  "ppm",
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
}

// ErrUnknownFormat is returned for formats outside the supported set.
var ErrUnknownFormat = errors.New("imgfile: unknown image format")

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file name extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat returns the format with the given name, as returned by
// String.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *image.Gray, f Format) error {
	switch f {
	case PPM:
		return EncodePPM(w, img)
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// EncodePPM writes img as a plain text PPM file.
func EncodePPM(w io.Writer, img *image.Gray) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())

	var num []byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			num = strconv.AppendUint(num[:0], uint64(img.GrayAt(x, y).Y), 10)
			for k := range 3 {
				if k > 0 {
					bw.WriteByte(' ')
				}
				bw.Write(num)
			}
			bw.WriteByte('\t')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Scale enlarges img by an integer factor using nearest neighbour
// sampling, so that pixels stay sharp. Factors below 2 return img.
func Scale(img *image.Gray, factor int) *image.Gray {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WriteFile writes img to the named file in the given format.
func WriteFile(name string, img *image.Gray, f Format) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(fd, img, f)
}
