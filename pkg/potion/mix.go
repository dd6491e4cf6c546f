package potion

import (
	"go.minekube.com/alchemy/pkg/color"
)

// WaterColor is the tint of a potion without contributing effects.
var WaterColor, _ = color.FromInt(0x385DC6)

// MixColor returns the liquid tint of a potion with the given effects.
//
// Each effect contributes its type's color weighted by its level.
// Effects with hidden particles do not contribute.
func MixColor(effects ...Effect) color.Color {
	var r, g, b, n int
	for _, e := range effects {
		if e.Type == nil || !e.Particles {
			continue
		}
		w := e.Level()
		c := e.Type.Color
		r += c.Red() * w
		g += c.Green() * w
		b += c.Blue() * w
		n += w
	}
	if n == 0 {
		return WaterColor
	}
	mixed, err := color.FromRGB(r/n, g/n, b/n)
	if err != nil {
		return WaterColor
	}
	return mixed
}
