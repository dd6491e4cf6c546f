// Package color provides the 24-bit RGB color value used to tint items
// such as potions and dyed leather armor.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"go.minekube.com/alchemy/pkg/util/errs"
)

// Color is an immutable RGB color.
// The zero value is black.
type Color struct{ rgb uint32 }

const (
	// MaxRGB is the largest packed RGB value.
	MaxRGB = 0xFFFFFF
	bits   = 0xFF
)

// Named colors, matching the palette plugins are used to.
var (
	White   = mustInt(0xFFFFFF)
	Silver  = mustInt(0xC0C0C0)
	Gray    = mustInt(0x808080)
	Black   = mustInt(0x000000)
	Red     = mustInt(0xFF0000)
	Maroon  = mustInt(0x800000)
	Yellow  = mustInt(0xFFFF00)
	Olive   = mustInt(0x808000)
	Lime    = mustInt(0x00FF00)
	Green   = mustInt(0x008000)
	Aqua    = mustInt(0x00FFFF)
	Teal    = mustInt(0x008080)
	Blue    = mustInt(0x0000FF)
	Navy    = mustInt(0x000080)
	Fuchsia = mustInt(0xFF00FF)
	Purple  = mustInt(0x800080)
	Orange  = mustInt(0xFFA500)
)

// Named maps lower-case color names to the named colors above.
var Named = map[string]Color{
	"white":   White,
	"silver":  Silver,
	"gray":    Gray,
	"black":   Black,
	"red":     Red,
	"maroon":  Maroon,
	"yellow":  Yellow,
	"olive":   Olive,
	"lime":    Lime,
	"green":   Green,
	"aqua":    Aqua,
	"teal":    Teal,
	"blue":    Blue,
	"navy":    Navy,
	"fuchsia": Fuchsia,
	"purple":  Purple,
	"orange":  Orange,
}

// FromRGB returns the color of the given components, each in 0..255.
func FromRGB(r, g, b int) (Color, error) {
	for _, c := range [...]struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if c.v < 0 || c.v > bits {
			return Color{}, errs.InvalidArgument("%s component %d out of range 0-255", c.name, c.v)
		}
	}
	return Color{rgb: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}, nil
}

// FromInt returns the color of a packed 0xRRGGBB value.
func FromInt(rgb int) (Color, error) {
	if rgb < 0 || rgb > MaxRGB {
		return Color{}, errs.InvalidArgument("rgb value %#x out of range 0-%#x", rgb, MaxRGB)
	}
	return Color{rgb: uint32(rgb)}, nil
}

func mustInt(rgb int) Color {
	c, err := FromInt(rgb)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse parses a color from one of the forms "#rrggbb", "0xrrggbb",
// a decimal packed value or a name from Named. A bare "rrggbb" is accepted
// when it contains a hex letter, otherwise it is read as decimal.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, errs.InvalidArgument("empty color")
	}
	if c, ok := Named[strings.ToLower(s)]; ok {
		return c, nil
	}
	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(s, "#"):
		v, err = parseHex(s[1:])
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = parseHex(s[2:])
	case len(s) == 6 && strings.IndexFunc(s, isHexLetter) >= 0:
		v, err = parseHex(s)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return Color{}, errs.InvalidArgument("malformed color %q", s)
	}
	if v > MaxRGB {
		return Color{}, errs.InvalidArgument("color %q out of range", s)
	}
	return Color{rgb: uint32(v)}, nil
}

// ParseMix parses one or more colors joined by "+" as accepted by Parse
// and mixes them like dyes. "red+yellow" is the mix of Red and Yellow.
func ParseMix(s string) (Color, error) {
	parts := strings.Split(s, "+")
	colors := make([]Color, 0, len(parts))
	for _, part := range parts {
		c, err := Parse(part)
		if err != nil {
			return Color{}, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 1 {
		return colors[0], nil
	}
	return Mix(colors...), nil
}

func parseHex(s string) (uint64, error) {
	if len(s) != 6 {
		return 0, fmt.Errorf("want 6 hex digits, got %d", len(s))
	}
	return strconv.ParseUint(s, 16, 32)
}

func isHexLetter(r rune) bool {
	return (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// RGB returns the packed 0xRRGGBB value.
func (c Color) RGB() int { return int(c.rgb) }

// Red returns the red component.
func (c Color) Red() int { return int(c.rgb>>16) & bits }

// Green returns the green component.
func (c Color) Green() int { return int(c.rgb>>8) & bits }

// Blue returns the blue component.
func (c Color) Blue() int { return int(c.rgb) & bits }

// WithRed returns a copy of c with the red component replaced.
func (c Color) WithRed(r int) (Color, error) { return FromRGB(r, c.Green(), c.Blue()) }

// WithGreen returns a copy of c with the green component replaced.
func (c Color) WithGreen(g int) (Color, error) { return FromRGB(c.Red(), g, c.Blue()) }

// WithBlue returns a copy of c with the blue component replaced.
func (c Color) WithBlue(b int) (Color, error) { return FromRGB(c.Red(), c.Green(), b) }

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string { return fmt.Sprintf("#%06x", c.rgb) }

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Mix mixes the given colors by averaging their components and scaling
// the result back up to the average brightness of the inputs.
// Mixing no colors returns Black.
func Mix(colors ...Color) Color {
	if len(colors) == 0 {
		return Black
	}
	var red, green, blue, bright int
	for _, c := range colors {
		red += c.Red()
		green += c.Green()
		blue += c.Blue()
		bright += maxOf(c.Red(), c.Green(), c.Blue())
	}
	n := len(colors)
	avgRed, avgGreen, avgBlue := red/n, green/n, blue/n
	maxOfAvg := maxOf(avgRed, avgGreen, avgBlue)
	if maxOfAvg == 0 {
		return Black
	}
	gain := float32(bright/n) / float32(maxOfAvg)
	mixed, _ := FromRGB(
		clamp(int(float32(avgRed)*gain)),
		clamp(int(float32(avgGreen)*gain)),
		clamp(int(float32(avgBlue)*gain)),
	)
	return mixed
}

func maxOf(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > bits {
		return bits
	}
	return v
}
