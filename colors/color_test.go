package colors

import (
	"math"
	"testing"

	"github.com/Sam-Bouten/compas"
)

const epsilon = 1e-9

func colorsEqual(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"white", White(), Color{1, 1, 1, 1}},
		{"black", Black(), Color{0, 0, 0, 1}},
		{"red", Red(), Color{1, 0, 0, 1}},
		{"magenta", Magenta(), Color{1, 0, 1, 1}},
		{"lime", Lime(), Color{0.5, 1, 0, 1}},
		{"navy", Navy(), Color{0, 0, 0.5, 1}},
		{"olive", Olive(), Color{0.5, 0.5, 0, 1}},
		{"silver", Silver(), Color{0.75, 0.75, 0.75, 1}},
		{"transparent", Transparent(), Color{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRGB255Truncates(t *testing.T) {
	r, g, b := New(0.999, 0.5, 0.25).RGB255()
	if r != 254 || g != 127 || b != 63 {
		t.Errorf("RGB255() = (%d, %d, %d), want (254, 127, 63)", r, g, b)
	}
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"lime", Lime(), true},
		{"white", White(), true},
		{"navy", Navy(), false},
		{"black", Black(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsLight(); got != tt.want {
				t.Errorf("IsLight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHLSRoundTrip(t *testing.T) {
	cases := []Color{Red(), Orange(), Teal(), Brown(), Grey(), New(0.1, 0.7, 0.3)}
	for _, c := range cases {
		h, l, s := c.HLS()
		back := FromHLS(h, l, s)
		if !colorsEqual(c, back, 1e-12) {
			t.Errorf("HLS round trip of %v gave %v (h=%v l=%v s=%v)", c, back, h, l, s)
		}
	}
}

func TestFromHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"red", 0, 1, 1, Red()},
		{"green", 1.0 / 3.0, 1, 1, Green()},
		{"blue", 2.0 / 3.0, 1, 1, Blue()},
		{"white", 0, 0, 1, White()},
		{"black", 0, 0, 0, Black()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHSV(tt.h, tt.s, tt.v)
			if !colorsEqual(got, tt.want, epsilon) {
				t.Errorf("FromHSV(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestYUV(t *testing.T) {
	y, u, v := Red().YUV()
	if math.Abs(y-0.299) > epsilon {
		t.Errorf("luma of red = %v, want 0.299", y)
	}
	back := FromYUV(y, u, v)
	if !colorsEqual(back, Red(), 1e-2) {
		t.Errorf("YUV round trip of red gave %v", back)
	}
}

func TestFromI(t *testing.T) {
	tests := []struct {
		i    float64
		want Color
	}{
		{0.0, Blue()},
		{0.25, Cyan()},
		{0.5, Green()},
		{0.75, Yellow()},
		{1.0, Red()},
		{-1.0, Black()},
		{2.0, Black()},
	}
	for _, tt := range tests {
		got := FromI(tt.i)
		if !colorsEqual(got, tt.want, epsilon) {
			t.Errorf("FromI(%v) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#ff0000", Red()},
		{"00ff00", Green()},
		{"#fff", White()},
		{"#00000080", NewRGBA(0, 0, 0, float64(0x80)/255)},
		{"bogus", Black()},
	}
	for _, tt := range tests {
		got := FromHex(tt.hex)
		if !colorsEqual(got, tt.want, epsilon) {
			t.Errorf("FromHex(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}

	if got := Red().Hex(); got != "#ff0000" {
		t.Errorf("Red().Hex() = %q, want %q", got, "#ff0000")
	}
}

func TestLightenDarken(t *testing.T) {
	c := Maroon()
	light, err := c.Lightened(50)
	if err != nil {
		t.Fatalf("Lightened: %v", err)
	}
	_, lStart, _ := c.HLS()
	_, lLight, _ := light.HLS()
	if lLight <= lStart {
		t.Errorf("lightened luminance %v not greater than %v", lLight, lStart)
	}

	dark, err := c.Darkened(50)
	if err != nil {
		t.Fatalf("Darkened: %v", err)
	}
	_, lDark, _ := dark.HLS()
	if lDark >= lStart {
		t.Errorf("darkened luminance %v not less than %v", lDark, lStart)
	}

	if _, err := c.Lightened(150); err != ErrFactorRange {
		t.Errorf("Lightened(150) error = %v, want ErrFactorRange", err)
	}
	if _, err := c.Darkened(-1); err != ErrFactorRange {
		t.Errorf("Darkened(-1) error = %v, want ErrFactorRange", err)
	}
}

func TestInverted(t *testing.T) {
	if got := White().Inverted(); !colorsEqual(got, Black(), epsilon) {
		t.Errorf("White().Inverted() = %v, want black", got)
	}
	if got := Red().Inverted(); !colorsEqual(got, Cyan(), epsilon) {
		t.Errorf("Red().Inverted() = %v, want cyan", got)
	}
}

func TestDesaturated(t *testing.T) {
	got, err := Red().Desaturated(100)
	if err != nil {
		t.Fatalf("Desaturated: %v", err)
	}
	if math.Abs(got.R-got.G) > epsilon || math.Abs(got.G-got.B) > epsilon {
		t.Errorf("fully desaturated red should be grey, got %v", got)
	}
}

func TestColorDataRoundTrip(t *testing.T) {
	in := NewRGBA(0.25, 0.5, 0.75, 0.5)
	b, err := compas.ToJSON(in)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	out, err := compas.FromJSON(b)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	got, ok := out.(Color)
	if !ok {
		t.Fatalf("decoded %T, want Color", out)
	}
	if !colorsEqual(got, in, epsilon) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}
