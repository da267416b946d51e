// Command export writes the glyph outlines to JSON, for use by external
// tools. It is run by go generate in the glyphs directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/bitmap/glyphs"
)

func main() {
	var out struct {
		Glyphs []jsonGlyph `json:"glyphs"`
	}

	for _, c := range slices.Sorted(maps.Keys(glyphs.All)) {
		out.Glyphs = append(out.Glyphs, toJSON(c, glyphs.All[c]))
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/glyphs.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonGlyph struct {
	Char     string        `json:"char"`
	Bounds   [4]float64    `json:"bounds"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Kind string      `json:"kind"`
	Pts  [][]float64 `json:"pts"`
}

func toJSON(c rune, segs []glyphs.Segment) jsonGlyph {
	b := glyphs.Bounds(segs)
	g := jsonGlyph{
		Char:   string(c),
		Bounds: [4]float64{b.LLx, b.LLy, b.URx, b.URy},
	}
	for _, s := range segs {
		seg := jsonSegment{
			Kind: s.Kind.String(),
			Pts:  make([][]float64, len(s.Pts)),
		}
		for i, pt := range s.Pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		g.Segments = append(g.Segments, seg)
	}
	return g
}
