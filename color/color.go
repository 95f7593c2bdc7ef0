/*
Package color converts between the color notations used in markup and
stylesheets: hex notation (#rgb, #rrggbb, #rrggbbaa) and functional
notation (rgb(…), rgba(…)).

Colors implement image/color.Color.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package color

import (
	"fmt"
	imgcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/docpp"
)

// Color is a non-alpha-premultiplied 32-bit color.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA is part of interface image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var _ imgcolor.Color = Color{}

// FromHex parses hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa). The leading
// '#' is optional. Anything else, including named colors, results in
// docpp.ErrInvalidArgument.
func FromHex(hex string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: malformed hex color %q", docpp.ErrInvalidArgument, hex)
	}
	c, err := csscolorparser.Parse("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("%w: malformed hex color %q", docpp.ErrInvalidArgument, hex)
	}
	return fromParsed(c), nil
}

func fromParsed(c csscolorparser.Color) Color {
	return Color{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// to8 maps a component in [0…1] to [0…255], clamping outliers.
func to8(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// Hex returns the hex notation of c: #rrggbb for opaque colors, #rrggbbaa
// otherwise.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// CSS returns the functional notation of c: rgb(r, g, b) for opaque colors,
// rgba(r, g, b, alpha) otherwise, with alpha in [0…1].
func (c Color) CSS() string {
	if c.A == 0xff {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	alpha := math.Round(float64(c.A)/255*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

func (c Color) String() string {
	return c.Hex()
}

// Parse parses any CSS color notation: hex, rgb()/rgba(), hsl()/hsla(),
// hwb() and named colors. Components out of range are clamped, as CSS does.
// Malformed input results in docpp.ErrInvalidArgument.
func Parse(s string) (Color, error) {
	c, err := csscolorparser.Parse(strings.TrimSpace(s))
	if err != nil {
		return Color{}, fmt.Errorf("%w: malformed color %q: %v", docpp.ErrInvalidArgument, s, err)
	}
	return fromParsed(c), nil
}
