// Package palette packs colors as 0xRRGGBBAA and converts them to and from
// image/color values.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

var (
	// ErrHueRange is returned when a hue is outside [0, 360).
	ErrHueRange = errors.New("hue out of range")
	// ErrUnitRange is returned when a saturation or lightness is outside [0, 1].
	ErrUnitRange = errors.New("component out of range")
)

var (
	Black = FromColor(colornames.Black)
	White = FromColor(colornames.White)
)

// RGBA8 packs four 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromColor converts any image/color value, un-premultiplying its alpha.
func FromColor(c color.Color) Color {
	if packed, ok := c.(Color); ok {
		return packed
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// HSL returns the opaque color for hue h in degrees and saturation s and
// lightness l in [0, 1].
func HSL(h, s, l float64) (Color, error) {
	if math.IsNaN(h) || h < 0 || h >= 360 {
		return 0, fmt.Errorf("hsl(%g, %g, %g): %w", h, s, l, ErrHueRange)
	}
	if !(s >= 0 && s <= 1) || !(l >= 0 && l <= 1) {
		return 0, fmt.Errorf("hsl(%g, %g, %g): %w", h, s, l, ErrUnitRange)
	}

	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return RGBA8(channel(r+m), channel(g+m), channel(b+m), 0xff), nil
}

// MustHSL is HSL for inputs known to be valid. It panics on a range error.
func MustHSL(h, s, l float64) Color {
	c, err := HSL(h, s, l)
	if err != nil {
		panic(err)
	}
	return c
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// WithOpacity scales the alpha byte by opacity clamped to [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	opacity = math.Max(0, math.Min(1, opacity))
	a := uint32(float64(c.A()) * opacity)
	return c&0xffffff00 | Color(a)
}

// NRGBA returns the color as a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}
