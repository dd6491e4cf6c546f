package alchemy

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"go.minekube.com/alchemy/pkg/configs"
	"go.minekube.com/alchemy/pkg/item/meta"
	"go.minekube.com/alchemy/pkg/item/tag"
	"go.minekube.com/alchemy/pkg/potion"
)

const testConfig = `
presets:
  swiftness:
    displayName: "&bSwift"
    effects:
      - type: speed
        duration: 90s
        amplifier: 1
`

// run runs the app with args against a config file with the given
// content and returns stdout.
func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alchemy.yml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0644))

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.RunContext(context.Background(), append([]string{"alchemy", "--config", path}, args...))
	return stdout.String(), err
}

func decodeOutput(t *testing.T, out string) meta.Potion {
	t.Helper()
	c, err := tag.ParseSNBT(out)
	require.NoError(t, err)
	p, err := tag.DecodePotion(c, potion.Vanilla)
	require.NoError(t, err)
	return p
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Equal(t, string(configs.DefaultConfigBytes), out)
}

func TestEffectsCommand(t *testing.T) {
	out, err := run(t, "", "effects")
	require.NoError(t, err)
	assert.Contains(t, out, "minecraft:speed")
	assert.Contains(t, out, "Instant Health")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(potion.VanillaTypes)+1)

	out, err = run(t, "", "effects", "--category", "harmful")
	require.NoError(t, err)
	assert.Contains(t, out, "minecraft:poison")
	assert.NotContains(t, out, "minecraft:speed")
}

func TestPresetCommand(t *testing.T) {
	out, err := run(t, testConfig, "preset")
	require.NoError(t, err)
	assert.Equal(t, "swiftness\n", out)

	out, err = run(t, testConfig, "preset", "swiftness")
	require.NoError(t, err)
	p := decodeOutput(t, out)
	effects := p.CustomEffects()
	require.Len(t, effects, 1)
	assert.Same(t, potion.Speed, effects[0].Type)
	assert.Equal(t, 1800, effects[0].Duration)
	assert.Equal(t, 1, effects[0].Amplifier)
	assert.True(t, p.HasDisplayName())

	_, err = run(t, testConfig, "preset", "swiftnes")
	assert.ErrorContains(t, err, `did you mean "swiftness"?`)
}

func TestPresetCommandJSON(t *testing.T) {
	out, err := run(t, testConfig, "--output", "json", "preset", "swiftness")
	require.NoError(t, err)
	assert.Contains(t, out, `"CustomPotionEffects":[{`)
}

func TestEditCommand(t *testing.T) {
	out, err := run(t, "", "edit",
		"--add", "speed:90s:1",
		"--add", "minecraft:poison:200",
		"--add", "regeneration",
		"--main", "poison",
		"--color", "orange",
		"--name", "&aMix",
	)
	require.NoError(t, err)

	p := decodeOutput(t, out)
	effects := p.CustomEffects()
	require.Len(t, effects, 3)
	assert.Same(t, potion.Poison, effects[0].Type)
	assert.Equal(t, 200, effects[0].Duration)
	assert.Same(t, potion.Speed, effects[1].Type)
	assert.Equal(t, 1800, effects[1].Duration)
	assert.Same(t, potion.Regeneration, effects[2].Type)
	assert.Equal(t, 3600, effects[2].Duration, "default duration of 3m")
	assert.True(t, p.HasColor())
	assert.True(t, p.HasDisplayName())

	// edit the result again
	// flags go before the snbt argument
	out, err = run(t, "", "edit",
		"--remove", "speed",
		"--add", "poison:40:2",
		"--remove-color",
		"--name", "",
		strings.TrimSpace(out),
	)
	require.NoError(t, err)
	p = decodeOutput(t, out)
	effects = p.CustomEffects()
	require.Len(t, effects, 2)
	assert.Equal(t, 200, effects[0].Duration, "no overwrite by default")
	assert.False(t, p.HasColor())
	assert.False(t, p.HasDisplayName())

	out, err = run(t, "overwrite: true\n", "edit", "--add", "poison:40:2", strings.TrimSpace(out))
	require.NoError(t, err)
	effects = decodeOutput(t, out).CustomEffects()
	assert.Equal(t, 40, effects[0].Duration)
	assert.Equal(t, 2, effects[0].Amplifier)
}

func TestEditHighAmplifierRoundTrip(t *testing.T) {
	out, err := run(t, "", "edit", "--add", "speed:90s:200")
	require.NoError(t, err)
	assert.Contains(t, out, "Amplifier:-56B")

	out, err = run(t, "", "edit", "--add", "haste:20:255", strings.TrimSpace(out))
	require.NoError(t, err)
	effects := decodeOutput(t, out).CustomEffects()
	require.Len(t, effects, 2)
	assert.Equal(t, 200, effects[0].Amplifier)
	assert.Equal(t, 255, effects[1].Amplifier)

	out, err = run(t, "", "inspect", "--tag", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, out, "Amplifier:-1B")
}

func TestEditMixedColor(t *testing.T) {
	out, err := run(t, "", "edit", "--color", "red+yellow")
	require.NoError(t, err)
	p := decodeOutput(t, out)
	assert.Equal(t, 0xFF7F00, p.Color().RGB())
}

func TestEditCommandErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown type":   {"--add", "sped"},
		"bad duration":   {"--add", "speed:soon"},
		"bad amplifier":  {"--add", "speed:20:x"},
		"too many parts": {"--add", "speed:20:1:2"},
		"absent main":    {"--main", "speed"},
		"bad color":      {"--color", "nope"},
		"bad snbt":       {"[1,2]"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, "", append([]string{"edit"}, args...)...)
			assert.Error(t, err)
		})
	}
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, effects ...potion.Effect) string {
		p := meta.NewPotion()
		for _, e := range effects {
			_, err := p.AddCustomEffect(e, false)
			require.NoError(t, err)
		}
		path := filepath.Join(dir, name)
		buf := new(bytes.Buffer)
		require.NoError(t, tag.EncodePotion(p).Write(buf))
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
		return path
	}
	a := write("a.nbt", potion.NewEffect(potion.Speed, 1800, 1))
	b := write("b.nbt", potion.NewEffect(potion.Poison, 900, 0))

	out, err := run(t, "", "inspect", "--file", a, "--file", b)
	require.NoError(t, err)
	assert.Contains(t, out, "Potion of Speed")
	assert.Contains(t, out, "Speed II (1:30)")
	assert.Contains(t, out, "Potion of Poison")
	assert.Less(t, strings.Index(out, a), strings.Index(out, b), "files keep their order")

	out, err = run(t, "", "inspect", `{id:"minecraft:potion",Count:1b,tag:{CustomPotionEffects:[{Id:99b},{Id:16b,Duration:200}]}}`)
	require.NoError(t, err, "unknown effects are skipped")
	assert.Contains(t, out, "Potion of Night Vision")

	out, err = run(t, "", "inspect", "{}")
	require.NoError(t, err)
	assert.Contains(t, out, "Water Bottle")
	assert.Contains(t, out, "No Effects")

	_, err = run(t, "", "inspect")
	assert.Error(t, err)
	_, err = run(t, "", "inspect", "--file", filepath.Join(dir, "missing.nbt"))
	assert.Error(t, err)
}

func TestParseEffect(t *testing.T) {
	e, err := parseEffect("speed", potion.Vanilla, 0)
	require.NoError(t, err)
	assert.Same(t, potion.Speed, e.Type)
	assert.Equal(t, 0, e.Duration)

	e, err = parseEffect("Fire Resistance:1m30s:2", potion.Vanilla, 0)
	require.NoError(t, err)
	assert.Same(t, potion.FireResistance, e.Type)
	assert.Equal(t, 1800, e.Duration)
	assert.Equal(t, 2, e.Amplifier)

	e, err = parseEffect("minecraft:haste::3", potion.Vanilla, time.Minute)
	require.NoError(t, err)
	assert.Same(t, potion.Haste, e.Type)
	assert.Equal(t, 1200, e.Duration)
	assert.Equal(t, 3, e.Amplifier)

	_, err = parseEffect("speed:-5", potion.Vanilla, 0)
	assert.Error(t, err)
}

func TestDecodePotionLogsSkipped(t *testing.T) {
	c, err := tag.ParseSNBT(`{CustomPotionEffects:[{Id:-56b},{Id:1b,Duration:20}]}`)
	require.NoError(t, err)
	p, err := decodePotion(testr.New(t), c, potion.Vanilla)
	require.NoError(t, err)
	assert.True(t, p.HasCustomEffect(potion.Speed))

	_, err = decodePotion(testr.New(t), tag.Compound{tag.CustomPotionEffects: int32(1)}, potion.Vanilla)
	assert.Error(t, err)
}
