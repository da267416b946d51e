package glyphs

import (
	"maps"
	"slices"
	"strings"
)

// All maps every supported character to its outline.
// The tables must not be modified.
var All = map[rune][]Segment{
	'1': glyphDigitOne,
	'E': glyphUpperE,
	'G': glyphUpperG,
	'H': glyphUpperH,
	'Q': glyphUpperQ,
	'S': glyphUpperS,
	'W': glyphUpperW,
	'X': glyphUpperX,
	'a': glyphLowerA,
	'b': glyphLowerB,
	'f': glyphLowerF,
	'i': glyphLowerI,
	'k': glyphLowerK,
	'n': glyphLowerN,
	'y': glyphLowerY,
}

// Chars returns all supported characters in sorted order.
func Chars() string {
	var sb strings.Builder
	for _, c := range slices.Sorted(maps.Keys(All)) {
		sb.WriteRune(c)
	}
	return sb.String()
}
