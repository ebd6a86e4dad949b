package colors

import "math"

// Conversions between RGB and the HLS/HSV/YIQ color systems.
// The formulas follow the standard definitions, with all coordinates in [0, 1].

const (
	oneThird  = 1.0 / 3.0
	oneSixth  = 1.0 / 6.0
	twoThirds = 2.0 / 3.0
)

func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	l = (minc + maxc) / 2.0
	if minc == maxc {
		return 0.0, l, 0.0
	}
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2.0 - maxc - minc)
	}
	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = math.Mod(h/6.0, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h, l, s
}

func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0.0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2.0*l - m2
	return hlsValue(m1, m2, h+oneThird), hlsValue(m1, m2, h), hlsValue(m1, m2, h-oneThird)
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1.0)
	if hue < 0 {
		hue += 1.0
	}
	switch {
	case hue < oneSixth:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < twoThirds:
		return m1 + (m2-m1)*(twoThirds-hue)*6.0
	default:
		return m1
	}
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0.0 {
		return v, v, v
	}
	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func yiqToRGB(y, i, q float64) (r, g, b float64) {
	r = y + 0.948262*i + 0.624013*q
	g = y - 0.276066*i - 0.639810*q
	b = y - 1.105450*i + 1.729860*q
	return clamp01(r), clamp01(g), clamp01(b)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
