package colors

import (
	"errors"
	"math"
)

// ErrFactorRange indicates a lighten/darken/desaturate percentage outside [0, 100].
var ErrFactorRange = errors.New("colors: factor should be in the range 0-100")

// Lighten lightens the color in place by a percentage of lightness increase.
func (c *Color) Lighten(factor float64) error {
	if factor > 100 || factor < 0 {
		return ErrFactorRange
	}
	f := 1.0 + factor/100
	h, l, s := c.HLS()
	c.R, c.G, c.B = hlsToRGB(h, math.Min(1.0, l*f), s)
	return nil
}

// Lightened returns a lightened copy of the color.
func (c Color) Lightened(factor float64) (Color, error) {
	err := c.Lighten(factor)
	return c, err
}

// Darken darkens the color in place by a percentage of lightness reduction.
func (c *Color) Darken(factor float64) error {
	if factor > 100 || factor < 0 {
		return ErrFactorRange
	}
	f := 1.0 - factor/100
	h, l, s := c.HLS()
	c.R, c.G, c.B = hlsToRGB(h, math.Max(0.0, l*f), s)
	return nil
}

// Darkened returns a darkened copy of the color.
func (c Color) Darkened(factor float64) (Color, error) {
	err := c.Darken(factor)
	return c, err
}

// Invert inverts the color in place with respect to the RGB color circle.
func (c *Color) Invert() {
	c.R = 1.0 - c.R
	c.G = 1.0 - c.G
	c.B = 1.0 - c.B
}

// Inverted returns an inverted copy of the color.
func (c Color) Inverted() Color {
	c.Invert()
	return c
}

// Desaturate desaturates the color in place by a percentage.
func (c *Color) Desaturate(factor float64) error {
	if factor > 100 || factor < 0 {
		return ErrFactorRange
	}
	f := 1.0 - factor/100
	h, l, s := c.HLS()
	c.R, c.G, c.B = hlsToRGB(h, l, math.Max(0.0, s*f))
	return nil
}

// Desaturated returns a desaturated copy of the color.
func (c Color) Desaturated(factor float64) (Color, error) {
	err := c.Desaturate(factor)
	return c, err
}
