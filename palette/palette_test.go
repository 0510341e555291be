package palette_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/plus3/squarez/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestChannels(t *testing.T) {
	c := palette.Color(0xd8ff00ff)

	assert.Equal(t, uint8(0xd8), c.R())
	assert.Equal(t, uint8(0xff), c.G())
	assert.Equal(t, uint8(0x00), c.B())
	assert.Equal(t, uint8(0xff), c.A())
	assert.Equal(t, c, palette.RGBA8(0xd8, 0xff, 0x00, 0xff))
	assert.Equal(t, "#d8ff00ff", c.String())
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    palette.Color
	}{
		{0, 1, 0.5, 0xff0000ff},
		{120, 1, 0.5, 0x00ff00ff},
		{240, 1, 0.5, 0x0000ffff},
		{60, 1, 0.5, 0xffff00ff},
		{0, 0, 0, 0x000000ff},
		{0, 0, 1, 0xffffffff},
		{330, 1, 0.5, 0xff0080ff},
	}

	for _, tt := range tests {
		got, err := palette.HSL(tt.h, tt.s, tt.l)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "hsl(%v, %v, %v)", tt.h, tt.s, tt.l)
	}
}

func TestHSLRejectsOutOfRange(t *testing.T) {
	_, err := palette.HSL(360, 1, 0.5)
	assert.ErrorIs(t, err, palette.ErrHueRange)

	_, err = palette.HSL(-1, 1, 0.5)
	assert.ErrorIs(t, err, palette.ErrHueRange)

	_, err = palette.HSL(math.NaN(), 1, 0.5)
	assert.ErrorIs(t, err, palette.ErrHueRange)

	_, err = palette.HSL(10, 1.5, 0.5)
	assert.ErrorIs(t, err, palette.ErrUnitRange)

	_, err = palette.HSL(10, 1, -0.1)
	assert.ErrorIs(t, err, palette.ErrUnitRange)

	assert.Panics(t, func() { palette.MustHSL(400, 1, 0.5) })
}

func TestWithOpacity(t *testing.T) {
	c := palette.Color(0x77000033)

	assert.Equal(t, palette.Color(0x77000033), c.WithOpacity(1))
	assert.Equal(t, palette.Color(0x77000019), c.WithOpacity(0.5))
	assert.Equal(t, palette.Color(0x77000000), c.WithOpacity(0))
	assert.Equal(t, palette.Color(0x77000033), c.WithOpacity(7))
	assert.Equal(t, palette.Color(0x77000000), c.WithOpacity(-3))
}

func TestImageColorConversion(t *testing.T) {
	c := palette.Color(0x11223380)

	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}, c.NRGBA())
	assert.Equal(t, c, palette.FromColor(c))

	assert.Equal(t, palette.Color(0x000000ff), palette.Black)
	assert.Equal(t, palette.Color(0xffffffff), palette.White)
	assert.Equal(t, palette.Color(0xff0000ff), palette.FromColor(colornames.Red))
}
