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
)

// recorder is a Canvas which remembers every write, in order.
type recorder struct {
	width, height int
	writes        []pixel
}

type pixel struct {
	X, Y, C int
}

func (r *recorder) Set(x, y, c int) error {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return ErrOutOfBounds
	}
	r.writes = append(r.writes, pixel{x, y, c})
	return nil
}

// points returns the coordinates of all writes, in order.
func (r *recorder) points() []image.Point {
	res := make([]image.Point, len(r.writes))
	for i, w := range r.writes {
		res[i] = image.Point{X: w.X, Y: w.Y}
	}
	return res
}

// set returns the distinct coordinates written.
func (r *recorder) set() map[image.Point]bool {
	res := make(map[image.Point]bool)
	for _, w := range r.writes {
		res[image.Point{X: w.X, Y: w.Y}] = true
	}
	return res
}

func TestNewBuffer(t *testing.T) {
	b := New(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	want := [][]uint8{{255, 255, 255}, {255, 255, 255}}
	if d := cmp.Diff(want, b.Export()); d != "" {
		t.Errorf("Export() mismatch (-want +got):\n%s", d)
	}
}

func TestNewBufferNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(-1, 1) did not panic")
		}
	}()
	New(-1, 1)
}

func TestSetGet(t *testing.T) {
	b := New(4, 3)
	tests := []struct {
		c    int
		want uint8
	}{
		{0, 0},
		{17, 17},
		{255, 255},
		{-5, 0},
		{300, 255},
	}
	for _, tc := range tests {
		if err := b.Set(2, 1, tc.c); err != nil {
			t.Fatalf("Set(2, 1, %d): %v", tc.c, err)
		}
		got, err := b.Get(2, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Set(2, 1, %d): stored %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(10, 5)
	for _, p := range []image.Point{{10, 5}, {10, 0}, {0, 5}, {-1, 0}, {0, -1}} {
		err := b.Set(p.X, p.Y, Ink)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d): got %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if _, err := b.Get(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d): got %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
	if d := cmp.Diff(New(10, 5).Export(), b.Export()); d != "" {
		t.Errorf("buffer modified (-want +got):\n%s", d)
	}
}

func TestExportIsCopy(t *testing.T) {
	b := New(2, 2)
	rows := b.Export()
	rows[0][0] = 7
	if v, _ := b.Get(0, 0); v != Background {
		t.Errorf("modifying Export() result changed the buffer to %d", v)
	}
}

func TestClear(t *testing.T) {
	b := New(3, 3)
	b.Set(1, 1, Ink)
	b.Clear()
	if d := cmp.Diff(New(3, 3).Export(), b.Export()); d != "" {
		t.Errorf("Clear() mismatch (-want +got):\n%s", d)
	}
}

func TestImage(t *testing.T) {
	b := New(3, 2)
	b.Set(2, 1, 42)
	img := b.Image()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.GrayAt(2, 1).Y; got != 42 {
		t.Errorf("GrayAt(2, 1) = %d, want 42", got)
	}
	if got := img.GrayAt(0, 0).Y; got != Background {
		t.Errorf("GrayAt(0, 0) = %d, want %d", got, Background)
	}
}

func TestPaste(t *testing.T) {
	src := New(2, 2)
	src.Set(0, 0, 1)
	src.Set(1, 1, 2)

	dst := New(4, 3)
	if err := dst.Paste(src, 2, 1); err != nil {
		t.Fatal(err)
	}
	want := [][]uint8{
		{255, 255, 255, 255},
		{255, 255, 1, 255},
		{255, 255, 255, 2},
	}
	if d := cmp.Diff(want, dst.Export()); d != "" {
		t.Errorf("Paste mismatch (-want +got):\n%s", d)
	}
}

func TestPasteOutOfBounds(t *testing.T) {
	src := New(2, 2)
	src.Set(0, 0, Ink)
	for _, off := range []image.Point{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		dst := New(4, 3)
		err := dst.Paste(src, off.X, off.Y)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Paste at %v: got %v, want ErrOutOfBounds", off, err)
		}
		if d := cmp.Diff(New(4, 3).Export(), dst.Export()); d != "" {
			t.Errorf("Paste at %v modified the buffer (-want +got):\n%s", off, d)
		}
	}
}
