package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcolor "go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/alchemy/pkg/potion"
)

func text(t *testing.T, c component.Component) *component.Text {
	t.Helper()
	txt, ok := c.(*component.Text)
	require.True(t, ok, "want *component.Text, got %T", c)
	return txt
}

func TestTitle(t *testing.T) {
	p := NewPotion()
	assert.Equal(t, "Water Bottle", text(t, Title(p)).Content)

	_, err := p.AddCustomEffect(potion.NewEffect(potion.NightVision, 20, 0), false)
	require.NoError(t, err)
	assert.Equal(t, "Potion of Night Vision", text(t, Title(p)).Content)

	p.SetDisplayName(&component.Text{Content: "Brew"})
	assert.Equal(t, "Brew", text(t, Title(p)).Content)
}

func TestTooltip(t *testing.T) {
	p := NewPotion()
	lines := Tooltip(p)
	require.Len(t, lines, 1)
	assert.Equal(t, "No Effects", text(t, lines[0]).Content)

	_, err := p.AddCustomEffect(potion.NewEffect(potion.Speed, 1800, 1), false)
	require.NoError(t, err)
	_, err = p.AddCustomEffect(potion.NewEffect(potion.Poison, 900, 0), false)
	require.NoError(t, err)
	p.SetLore([]component.Component{&component.Text{Content: "brewed at dawn"}})

	lines = Tooltip(p)
	require.Len(t, lines, 3)
	assert.Equal(t, "Speed II (1:30)", text(t, lines[0]).Content)
	assert.Equal(t, mcolor.Blue, text(t, lines[0]).S.Color)
	assert.Equal(t, "Poison (0:45)", text(t, lines[1]).Content)
	assert.Equal(t, mcolor.Red, text(t, lines[1]).S.Color)
	assert.Equal(t, "brewed at dawn", text(t, lines[2]).Content)
}

func TestEffectLineInstant(t *testing.T) {
	line := text(t, EffectLine(potion.NewEffect(potion.InstantHealth, 1, 3)))
	assert.Equal(t, "Instant Health IV", line.Content)
}

func TestRoman(t *testing.T) {
	for n, want := range map[int]string{1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 256: "CCLVI", 0: "0"} {
		assert.Equal(t, want, roman(n))
	}
}
