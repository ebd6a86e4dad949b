// Package colors provides a color data class with format conversions.
//
// Color components are float64 values in the range [0, 1], with an alpha
// channel for transparency. Conversions cover the HLS, HSV, YIQ and YUV
// color spaces, hex strings, and the standard library color.Color interface.
package colors

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. An alpha of 0 is fully transparent,
// an alpha of 1 fully opaque.
type Color struct {
	R, G, B, A float64
}

// New creates an opaque color from RGB components.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// DataType implements compas.Data.
func (c Color) DataType() string { return "colors/Color" }

// colorData is the serialized form of a Color.
type colorData struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// MarshalJSON implements json.Marshaler.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(colorData{Red: c.R, Green: c.G, Blue: c.B, Alpha: c.A})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(b []byte) error {
	var d colorData
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	c.R, c.G, c.B, c.A = d.Red, d.Green, d.Blue, d.Alpha
	return nil
}

func init() {
	compas.RegisterData(Color{}.DataType(), func(b []byte) (compas.Data, error) {
		var c Color
		if err := json.Unmarshal(b, &c); err != nil {
			return nil, err
		}
		return c, nil
	})
}

// String returns a readable representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("Color(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// RGB returns the color components in the range [0, 1].
func (c Color) RGB() (r, g, b float64) {
	return c.R, c.G, c.B
}

// RGB255 returns the color components in the range [0, 255].
// Components are truncated, not rounded.
func (c Color) RGB255() (r, g, b int) {
	return int(c.R * 255), int(c.G * 255), int(c.B * 255)
}

// RGBA255 returns the color and alpha components in the range [0, 255].
func (c Color) RGBA255() (r, g, b, a int) {
	return int(c.R * 255), int(c.G * 255), int(c.B * 255), int(c.A * 255)
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// HLS returns the hue, luminance and saturation of the color, each in [0, 1].
func (c Color) HLS() (h, l, s float64) {
	return rgbToHLS(c.R, c.G, c.B)
}

// YUV returns the luma and chroma components of the color, with chroma
// defined by the blue and red projections.
func (c Color) YUV() (y, u, v float64) {
	y = c.Luma()
	u, v = c.Chroma()
	return y, u, v
}

// Luma returns the brightness of a YUV signal.
func (c Color) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Chroma returns the color components of a YUV signal.
func (c Color) Chroma() (u, v float64) {
	y := c.Luma()
	u = 0.492 * (c.B - y)
	v = 0.877 * (c.R - y)
	return u, v
}

// IsLight reports whether the color is considered light,
// based on its relative luminance.
func (c Color) IsLight() bool {
	l := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	return l > 0.179
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// FromHLS constructs a color from hue, luminance and saturation.
func FromHLS(h, l, s float64) Color {
	r, g, b := hlsToRGB(h, l, s)
	return New(r, g, b)
}

// FromHSV constructs a color from hue, saturation and value.
func FromHSV(h, s, v float64) Color {
	r, g, b := hsvToRGB(h, s, v)
	return New(r, g, b)
}

// FromYIQ constructs a color from components in the YIQ color space.
func FromYIQ(y, i, q float64) Color {
	r, g, b := yiqToRGB(y, i, q)
	return New(r, g, b)
}

// FromYUV constructs a color from components in the YUV color space.
func FromYUV(y, u, v float64) Color {
	r := y + 1.140*v
	g := y - 0.395*u - 0.581*v
	b := y + 2.032*u
	return New(r, g, b)
}

// FromI constructs a color from a single number in the range [0, 1],
// mapped onto a blue-green-red spectrum.
func FromI(i float64) Color {
	var r, g, b float64
	switch {
	case i == 0.0:
		r, g, b = 0, 0, 255
	case 0.0 < i && i < 0.25:
		r, g, b = 0, math.Floor(255*4*i), 255
	case i == 0.25:
		r, g, b = 0, 255, 255
	case 0.25 < i && i < 0.5:
		r, g, b = 0, 255, math.Floor(255-255*4*(i-0.25))
	case i == 0.5:
		r, g, b = 0, 255, 0
	case 0.5 < i && i < 0.75:
		r, g, b = math.Floor(0+255*4*(i-0.5)), 255, 0
	case i == 0.75:
		r, g, b = 255, 255, 0
	case 0.75 < i && i < 1.0:
		r, g, b = 255, math.Floor(255-255*4*(i-0.75)), 0
	case i == 1.0:
		r, g, b = 255, 0, 0
	default:
		r, g, b = 0, 0, 0
	}
	return New(r/255.0, g/255.0, b/255.0)
}

// FromHex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func FromHex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Hex returns the color as a "#rrggbb" hex string. Alpha is ignored.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		*val *= 16
		switch {
		case '0' <= ch && ch <= '9':
			*val += uint32(ch - '0')
		case 'a' <= ch && ch <= 'f':
			*val += uint32(ch - 'a' + 10)
		case 'A' <= ch && ch <= 'F':
			*val += uint32(ch - 'A' + 10)
		default:
			return
		}
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
