package tag

import (
	"errors"
	"fmt"

	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec/legacy"

	"go.minekube.com/alchemy/pkg/color"
	"go.minekube.com/alchemy/pkg/item/meta"
	"go.minekube.com/alchemy/pkg/potion"
	"go.minekube.com/alchemy/pkg/util/componentutil"
	"go.minekube.com/alchemy/pkg/util/errs"
)

// Tag names of the potion item tag.
const (
	CustomPotionEffects = "CustomPotionEffects"
	CustomPotionColor   = "CustomPotionColor"
	Display             = "display"
	DisplayName         = "Name"
	DisplayLore         = "Lore"

	EffectID            = "Id"
	EffectAmplifier     = "Amplifier"
	EffectDuration      = "Duration"
	EffectAmbient       = "Ambient"
	EffectShowParticles = "ShowParticles"
	EffectShowIcon      = "ShowIcon"
)

// EncodePotion returns the item tag of p.
// Empty parts such as a missing color are omitted.
func EncodePotion(p meta.Potion) Compound {
	c := Compound{}
	if effects := p.CustomEffects(); len(effects) != 0 {
		list := make([]Compound, 0, len(effects))
		for _, e := range effects {
			list = append(list, EncodeEffect(e))
		}
		c[CustomPotionEffects] = list
	}
	if p.HasColor() {
		c[CustomPotionColor] = int32(p.Color().RGB())
	}
	if d := encodeDisplay(p); len(d) != 0 {
		c[Display] = d
	}
	return c
}

// EncodeEffect returns the tag of a single custom effect.
func EncodeEffect(e potion.Effect) Compound {
	return Compound{
		EffectID:            uint8(e.Type.ID),
		EffectAmplifier:     uint8(e.Amplifier),
		EffectDuration:      int32(e.Duration),
		EffectAmbient:       boolByte(e.Ambient),
		EffectShowParticles: boolByte(e.Particles),
		EffectShowIcon:      boolByte(e.Icon),
	}
}

func encodeDisplay(m meta.Meta) Compound {
	d := Compound{}
	if name := m.DisplayName(); name != nil {
		d[DisplayName] = componentutil.Legacy(name)
	}
	if lore := m.Lore(); len(lore) != 0 {
		lines := make([]string, 0, len(lore))
		for _, l := range lore {
			lines = append(lines, componentutil.Legacy(l))
		}
		d[DisplayLore] = lines
	}
	return d
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// DecodePotion reads a potion meta from an item tag looking up effect
// ids in reg.
//
// Decoding is lenient. Effects that cannot be decoded are skipped and
// reported as errs.SilentError joined into the returned error, which
// is returned together with the decoded meta. Any other error means
// the tag is malformed.
func DecodePotion(c Compound, reg *potion.Registry) (meta.Potion, error) {
	p := meta.NewPotion()
	var skipped []error

	if _, present := c[CustomPotionEffects]; present {
		list, ok := c.List(CustomPotionEffects)
		if !ok {
			return nil, fmt.Errorf("%s must be a list of compounds", CustomPotionEffects)
		}
		for i, et := range list {
			e, err := DecodeEffect(et, reg)
			if err != nil {
				skipped = append(skipped, errs.WrapSilent(fmt.Errorf("skipped effect %d: %w", i, err)))
				continue
			}
			if _, err = p.AddCustomEffect(e, false); err != nil {
				skipped = append(skipped, errs.WrapSilent(fmt.Errorf("skipped effect %d: %w", i, err)))
			}
		}
	}

	if _, present := c[CustomPotionColor]; present {
		rgb, ok := c.Int(CustomPotionColor)
		if !ok {
			return nil, fmt.Errorf("%s must be an integer", CustomPotionColor)
		}
		// Vanilla stores the color as signed int; only the rgb bits matter.
		col, err := color.FromInt(rgb & color.MaxRGB)
		if err != nil {
			return nil, err
		}
		p.SetColor(col)
	}

	if d, ok := c.Compound(Display); ok {
		if err := decodeDisplay(d, p); err != nil {
			return nil, err
		}
	}

	return p, errors.Join(skipped...)
}

// DecodeEffect reads a single custom effect tag. The id may be a numeric
// id or a namespaced key.
func DecodeEffect(c Compound, reg *potion.Registry) (potion.Effect, error) {
	var (
		t  *potion.EffectType
		ok bool
	)
	if id, isNum := c.Int(EffectID); isNum {
		if t, ok = reg.ByID(id); !ok {
			return potion.Effect{}, fmt.Errorf("unknown effect id %d", id)
		}
	} else if name, isStr := c.String(EffectID); isStr {
		if t, ok = reg.ByName(name); !ok {
			return potion.Effect{}, fmt.Errorf("unknown effect %q", name)
		}
	} else {
		return potion.Effect{}, fmt.Errorf("missing effect %s", EffectID)
	}

	e := potion.NewEffect(t, 0, 0)
	if v, ok := c.Int(EffectDuration); ok {
		e.Duration = v
	}
	if v, ok := c.Int(EffectAmplifier); ok {
		// stored as byte
		e.Amplifier = v & 0xFF
	}
	if v, ok := c.Bool(EffectAmbient); ok {
		e.Ambient = v
	}
	if v, ok := c.Bool(EffectShowParticles); ok {
		e.Particles = v
	}
	if v, ok := c.Bool(EffectShowIcon); ok {
		e.Icon = v
	}
	return e, e.Validate()
}

func decodeDisplay(d Compound, m meta.Meta) error {
	if name, ok := d.String(DisplayName); ok {
		c, err := (&legacy.Legacy{}).Unmarshal([]byte(name))
		if err != nil {
			return fmt.Errorf("error decoding display name: %w", err)
		}
		m.SetDisplayName(c)
	}
	if lines, ok := d.Strings(DisplayLore); ok {
		lore := make([]component.Component, 0, len(lines))
		for i, l := range lines {
			c, err := (&legacy.Legacy{}).Unmarshal([]byte(l))
			if err != nil {
				return fmt.Errorf("error decoding lore line %d: %w", i, err)
			}
			lore = append(lore, c)
		}
		m.SetLore(lore)
	}
	return nil
}
