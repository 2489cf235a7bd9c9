package terminal

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 24-bit color with an explicit "set" flag in bit 24.
// The zero value is ColorDefault, meaning the terminal's own default color,
// which differs from every RGB value including black.
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the terminal default color in place
const ColorDefault Color = 0

// Common colors
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorBlue    = RGB(0, 0, 255)
	ColorYellow  = RGB(255, 255, 0)
	ColorCyan    = RGB(0, 255, 255)
	ColorMagenta = RGB(255, 0, 255)
	ColorGray    = RGB(128, 128, 128)
)

// RGB builds a set color from 8-bit channels
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsSet reports whether the color overrides the terminal default
func (c Color) IsSet() bool {
	return c&colorSet != 0
}

// R returns the red channel
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel
func (c Color) B() uint8 { return uint8(c) }

// String returns #rrggbb, or "default" for an unset color
func (c Color) String() string {
	if !c.IsSet() {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// Colorful converts to a go-colorful value; unset colors map to black
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// FromColorful converts a go-colorful value to a set Color, clamping out-of-gamut values
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Blend interpolates between two colors in CIE-L*a*b* space, t in [0,1].
// If either side is unset the other side is returned unchanged.
func Blend(from, to Color, t float64) Color {
	if !from.IsSet() {
		return to
	}
	if !to.IsSet() {
		return from
	}
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return FromColorful(from.Colorful().BlendLab(to.Colorful(), t))
}
