package meta

import (
	"fmt"

	mcolor "go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/alchemy/pkg/potion"
)

// Title returns the item name of a potion: the custom display name if
// set, otherwise a name derived from the main effect.
func Title(p Potion) component.Component {
	if name := p.DisplayName(); name != nil {
		return name
	}
	effects := p.CustomEffects()
	if len(effects) == 0 {
		return &component.Text{Content: "Water Bottle"}
	}
	return &component.Text{Content: "Potion of " + effects[0].Type.Name}
}

// Tooltip returns the lines shown below the item name: one line per
// custom effect in list order followed by the lore.
func Tooltip(p Potion) []component.Component {
	effects := p.CustomEffects()
	lines := make([]component.Component, 0, len(effects)+1)
	if len(effects) == 0 {
		lines = append(lines, &component.Text{
			Content: "No Effects",
			S:       component.Style{Color: mcolor.Gray},
		})
	}
	for _, e := range effects {
		lines = append(lines, EffectLine(e))
	}
	return append(lines, p.Lore()...)
}

// EffectLine renders a single effect like "Speed II (1:30)".
// Harmful effects are red, others blue.
func EffectLine(e potion.Effect) component.Component {
	name := e.Type.Name
	if name == "" {
		name = e.Type.String()
	}
	text := name
	if e.Amplifier > 0 {
		text += " " + roman(e.Level())
	}
	if !e.Type.Instant {
		text += fmt.Sprintf(" (%s)", potion.FormatTicks(e.Duration))
	}
	c := mcolor.Blue
	if e.Type.Category == potion.Harmful {
		c = mcolor.Red
	}
	return &component.Text{
		Content: text,
		S:       component.Style{Color: c},
	}
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	if n <= 0 {
		return fmt.Sprint(n)
	}
	var s string
	for _, r := range romanNumerals {
		for n >= r.value {
			s += r.symbol
			n -= r.value
		}
	}
	return s
}
