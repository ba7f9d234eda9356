package core

import "strconv"

// Color is a "#rrggbb" hex string. The empty Color means the terminal default.
type Color string

// Fixed colors used by the renderers outside of theme palettes.
const (
	ColorDefault Color = ""
	ColorBird    Color = "#FFC107"
	ColorWing    Color = "#FF9800"
	ColorBeak    Color = "#FF5722"
	ColorEye     Color = "#222222"
	ColorFloor   Color = "#DED59A"
	ColorFloorLn Color = "#c9c089"
	ColorHazard  Color = "#111111"
	ColorFuse    Color = "#ffa500"
	ColorShield  Color = "#06b6d4"
	ColorSlow    Color = "#a855f7"
	ColorMagnet  Color = "#f59e0b"
	ColorDouble  Color = "#ef4444"
	ColorPanel   Color = "#f0f0f0"
	ColorInk     Color = "#111111"
	ColorAlert   Color = "#b91c1c"
	ColorText    Color = "#ffffff"
)

// RGB decodes the color into its components. ok is false for the default
// color and for anything that is not a 3 or 6 digit hex string.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	s := string(c)
	if len(s) == 0 || s[0] != '#' {
		return 0, 0, 0, false
	}
	s = s[1:]
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Darken scales every channel by f (0..1). Unparseable colors are returned unchanged.
func (c Color) Darken(f float64) Color {
	r, g, b, ok := c.RGB()
	if !ok {
		return c
	}
	f = ClampF(f, 0, 1)
	scale := func(v uint8) uint8 { return uint8(float64(v) * f) }
	return Hex(scale(r), scale(g), scale(b))
}

// Hex builds a Color from its components.
func Hex(r, g, b uint8) Color {
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{r, g, b} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0f]
	}
	return Color(buf)
}

// Lerp blends c toward to by t (0..1). If either color cannot be parsed the
// nearer endpoint is returned.
func (c Color) Lerp(to Color, t float64) Color {
	t = ClampF(t, 0, 1)
	r1, g1, b1, ok1 := c.RGB()
	r2, g2, b2, ok2 := to.RGB()
	if !ok1 || !ok2 {
		if t < 0.5 {
			return c
		}
		return to
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }
	return Hex(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}
