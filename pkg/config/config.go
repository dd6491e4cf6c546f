// Package config holds the alchemy configuration read from files and
// environment variables with Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/key"

	"go.minekube.com/alchemy/pkg/color"
	"go.minekube.com/alchemy/pkg/item/meta"
	"go.minekube.com/alchemy/pkg/potion"
	"go.minekube.com/alchemy/pkg/util/componentutil"
	"go.minekube.com/alchemy/pkg/util/configutil"
	"go.minekube.com/alchemy/pkg/util/errs"
	"go.minekube.com/alchemy/pkg/util/validation"
)

// Config is the alchemy configuration.
type Config struct {
	Debug     bool
	Verbosity int

	Output    Output // Output format of item tags.
	Overwrite bool   // Whether added effects replace existing ones by default.
	// Duration of effects that do not specify one.
	DefaultDuration time.Duration

	// Effect types registered in addition to the vanilla ones.
	CustomEffects []CustomEffect
	// Named potion templates.
	// Viper lower-cases map keys, so names are case-insensitive.
	Presets map[string]Preset
}

type (
	// CustomEffect declares an effect type that is not known to vanilla,
	// e.g. one added by a server mod.
	CustomEffect struct {
		ID       int
		Key      string // namespaced key, e.g. "myplugin:glide"
		Name     string // display name
		Color    string
		Category string // beneficial, harmful or neutral
		Instant  bool
	}
	// Preset is a potion template.
	Preset struct {
		DisplayName string // legacy text with & or § codes, or json
		Color       string
		Lore        []string
		Effects     []PresetEffect
	}
	PresetEffect struct {
		Type          string
		Duration      time.Duration // e.g. "90s", zero uses the default duration
		Amplifier     int
		Ambient       bool
		HideParticles bool
		HideIcon      bool
	}
)

// Output is an item tag output format.
type Output string

const (
	SNBTOutput   Output = "snbt"
	JSONOutput   Output = "json"
	YAMLOutput   Output = "yaml"
	BinaryOutput Output = "binary"
)

// Outputs lists the known output formats.
var Outputs = []Output{SNBTOutput, JSONOutput, YAMLOutput, BinaryOutput}

// Valid reports whether o is a known output format.
func (o Output) Valid() bool {
	for _, k := range Outputs {
		if o == k {
			return true
		}
	}
	return false
}

// SetDefaults sets Config defaults to use with Viper.
func SetDefaults(i configutil.SetDefault) {
	i.SetDefault("debug", false)
	i.SetDefault("verbosity", 0)
	i.SetDefault("output", SNBTOutput)
	i.SetDefault("overwrite", false)
	i.SetDefault("defaultDuration", 3*time.Minute)
}

// LoadConfig reads the config from v after setting the defaults.
//
// If the config file does not exist the defaults are returned together
// with an error wrapping errs.ErrMissingConfig.
func LoadConfig(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		readErr = fmt.Errorf("%w: %v", errs.ErrMissingConfig, err)
	}

	// Fresh maps for every load so entries removed from the file
	// do not survive a reload.
	cfg := &Config{Presets: map[string]Preset{}}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, readErr
}

// Registry returns a registry of the vanilla and custom effect types.
func (c *Config) Registry() (*potion.Registry, error) {
	types := make([]*potion.EffectType, 0, len(potion.VanillaTypes)+len(c.CustomEffects))
	types = append(types, potion.VanillaTypes...)
	for _, ce := range c.CustomEffects {
		t, err := ce.EffectType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return potion.NewRegistry(types...)
}

// EffectType converts the declaration to an effect type.
func (ce CustomEffect) EffectType() (*potion.EffectType, error) {
	ns, value, found := strings.Cut(ce.Key, ":")
	if !found {
		ns, value = key.MinecraftNamespace, ns
	}
	cat, err := parseCategory(ce.Category)
	if err != nil {
		return nil, err
	}
	t := &potion.EffectType{
		ID:       ce.ID,
		Key:      key.New(ns, value),
		Name:     ce.Name,
		Category: cat,
		Instant:  ce.Instant,
	}
	if ce.Color != "" {
		if t.Color, err = color.Parse(ce.Color); err != nil {
			return nil, err
		}
	}
	if t.Name == "" {
		t.Name = value
	}
	return t, nil
}

func parseCategory(s string) (potion.Category, error) {
	for _, c := range []potion.Category{potion.Beneficial, potion.Harmful, potion.Neutral} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	if s == "" {
		return potion.Neutral, nil
	}
	return 0, errs.InvalidArgument("unknown effect category %q, must be one of beneficial,harmful,neutral", s)
}

// Preset builds the named preset.
func (c *Config) Preset(name string, reg *potion.Registry) (meta.Potion, error) {
	p, ok := c.Presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return p.Build(reg, c.DefaultDuration)
}

// Build returns a new potion meta from the preset. Effect types are looked
// up in reg and effects without duration last defaultDuration.
func (p *Preset) Build(reg *potion.Registry, defaultDuration time.Duration) (meta.Potion, error) {
	m := meta.NewPotion()
	if p.DisplayName != "" {
		name, err := componentutil.ParseTextComponent(p.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("invalid display name %q: %w", p.DisplayName, err)
		}
		m.SetDisplayName(name)
	}
	if len(p.Lore) != 0 {
		lore := make([]component.Component, 0, len(p.Lore))
		for _, l := range p.Lore {
			line, err := componentutil.ParseTextComponent(l)
			if err != nil {
				return nil, fmt.Errorf("invalid lore line %q: %w", l, err)
			}
			lore = append(lore, line)
		}
		m.SetLore(lore)
	}
	if p.Color != "" {
		col, err := color.ParseMix(p.Color)
		if err != nil {
			return nil, err
		}
		m.SetColor(col)
	}
	for _, pe := range p.Effects {
		e, err := pe.Effect(reg, defaultDuration)
		if err != nil {
			return nil, err
		}
		// later entries win
		if _, err = m.AddCustomEffect(e, true); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Effect resolves the effect in reg.
func (pe PresetEffect) Effect(reg *potion.Registry, defaultDuration time.Duration) (potion.Effect, error) {
	t, err := reg.Lookup(pe.Type)
	if err != nil {
		return potion.Effect{}, err
	}
	d := pe.Duration
	if d == 0 {
		d = defaultDuration
	}
	e := potion.NewEffect(t, potion.Ticks(d), pe.Amplifier).
		WithAmbient(pe.Ambient).
		WithParticles(!pe.HideParticles).
		WithIcon(!pe.HideIcon)
	return e, e.Validate()
}

// Validate validates c and returns warnings and errors.
func (c *Config) Validate() (warns []error, errs []error) {
	e := func(m string, args ...any) { errs = append(errs, fmt.Errorf(m, args...)) }
	w := func(m string, args ...any) { warns = append(warns, fmt.Errorf(m, args...)) }
	if c == nil {
		e("config must not be nil")
		return
	}

	if !c.Output.Valid() {
		e("Unknown output format %q, must be one of %s", c.Output, joinOutputs())
	}
	if c.Verbosity < 0 {
		e("Invalid verbosity %d: must be >= 0", c.Verbosity)
	}
	if c.DefaultDuration < 0 {
		e("Invalid default duration %s: must not be negative", c.DefaultDuration)
	}

	reg, err := c.Registry()
	if err != nil {
		e("Invalid custom effects: %v", err)
		// still check presets against vanilla types
		reg = potion.Vanilla
	}

	for name, p := range c.Presets {
		if !validation.ValidPresetName(name) {
			e("Invalid preset name format %q: %s and length be 1-%d", name,
				validation.QualifiedNameErrMsg, validation.QualifiedNameMaxLength)
		}
		if p.Color != "" {
			if _, err := color.ParseMix(p.Color); err != nil {
				e("Preset %q: invalid color %q: %v", name, p.Color, err)
			}
		}
		if len(p.Effects) == 0 {
			w("Preset %q has no effects.", name)
		}
		seen := map[string]bool{}
		for i, pe := range p.Effects {
			t, err := reg.Lookup(pe.Type)
			if err != nil {
				e("Preset %q effect %d: %v", name, i, err)
				continue
			}
			if seen[t.String()] {
				w("Preset %q lists effect %s more than once, the last entry wins.", name, t)
			}
			seen[t.String()] = true
			if pe.Duration < 0 {
				e("Preset %q effect %s: duration %s must not be negative", name, t, pe.Duration)
			}
			if pe.Amplifier < 0 || pe.Amplifier > potion.MaxAmplifier {
				e("Preset %q effect %s: amplifier %d out of range 0-%d", name, t, pe.Amplifier, potion.MaxAmplifier)
			}
		}
	}

	return
}

func joinOutputs() string {
	s := make([]string, len(Outputs))
	for i, o := range Outputs {
		s[i] = string(o)
	}
	return strings.Join(s, ",")
}

// Check validates c and returns an error summarizing all validation
// errors. Warnings are returned for the caller to log.
func Check(c *Config) (warns []error, err error) {
	warns, errs := c.Validate()
	if len(errs) != 0 {
		a, s := "are", "s"
		if len(errs) == 1 {
			a, s = "is", ""
		}
		return warns, fmt.Errorf("there %s %d config validation error%s: %w", a, len(errs), s, errors.Join(errs...))
	}
	return warns, nil
}
