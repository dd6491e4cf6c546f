// Package potion provides potion effect types, potion effects and the
// liquid tint mixed from them.
package potion

import (
	"fmt"
	"strings"

	"go.minekube.com/common/minecraft/key"

	"go.minekube.com/alchemy/pkg/color"
)

// Category classifies an effect type by how it affects an entity.
// Tooltips render beneficial effects blue and harmful effects red.
type Category uint8

const (
	Beneficial Category = iota
	Harmful
	Neutral
)

func (c Category) String() string {
	switch c {
	case Beneficial:
		return "beneficial"
	case Harmful:
		return "harmful"
	case Neutral:
		return "neutral"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// EffectType is a kind of potion effect such as speed or poison.
//
// Effect types are registered once in a Registry and referenced by
// pointer afterwards. They must not be modified after registration.
type EffectType struct {
	ID       int     // Legacy numeric id, stored in item tags.
	Key      key.Key // Namespaced key, e.g. minecraft:speed.
	Name     string  // Display name, e.g. "Speed".
	Legacy   string  // Plugin API constant name, e.g. "SPEED". Optional.
	Color    color.Color
	Category Category
	// Instant effects apply once and have no duration.
	Instant bool
}

// Is reports whether t and o denote the same effect type.
// Types are the same when their keys are equal. Types without a key
// are only the same as themselves.
func (t *EffectType) Is(o *EffectType) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t == o {
		return true
	}
	if t.Key == nil || o.Key == nil {
		return false
	}
	return keyString(t.Key) == keyString(o.Key)
}

func (t *EffectType) String() string {
	if t == nil {
		return "<nil>"
	}
	return keyString(t.Key)
}

func keyString(k key.Key) string {
	if k == nil {
		return ""
	}
	return k.Namespace() + ":" + k.Value()
}

// The effect types known to vanilla 1.8 clients.
var (
	Speed          = vanilla(1, "speed", "Speed", "SPEED", 0x7CAFC6, Beneficial, false)
	Slowness       = vanilla(2, "slowness", "Slowness", "SLOW", 0x5A6C81, Harmful, false)
	Haste          = vanilla(3, "haste", "Haste", "FAST_DIGGING", 0xD9C043, Beneficial, false)
	MiningFatigue  = vanilla(4, "mining_fatigue", "Mining Fatigue", "SLOW_DIGGING", 0x4A4217, Harmful, false)
	Strength       = vanilla(5, "strength", "Strength", "INCREASE_DAMAGE", 0x932423, Beneficial, false)
	InstantHealth  = vanilla(6, "instant_health", "Instant Health", "HEAL", 0xF82423, Beneficial, true)
	InstantDamage  = vanilla(7, "instant_damage", "Instant Damage", "HARM", 0x430A09, Harmful, true)
	JumpBoost      = vanilla(8, "jump_boost", "Jump Boost", "JUMP", 0x22FF4C, Beneficial, false)
	Nausea         = vanilla(9, "nausea", "Nausea", "CONFUSION", 0x551D4A, Harmful, false)
	Regeneration   = vanilla(10, "regeneration", "Regeneration", "REGENERATION", 0xCD5CAB, Beneficial, false)
	Resistance     = vanilla(11, "resistance", "Resistance", "DAMAGE_RESISTANCE", 0x99453A, Beneficial, false)
	FireResistance = vanilla(12, "fire_resistance", "Fire Resistance", "FIRE_RESISTANCE", 0xE49A3A, Beneficial, false)
	WaterBreathing = vanilla(13, "water_breathing", "Water Breathing", "WATER_BREATHING", 0x2E5299, Beneficial, false)
	Invisibility   = vanilla(14, "invisibility", "Invisibility", "INVISIBILITY", 0x7F8392, Beneficial, false)
	Blindness      = vanilla(15, "blindness", "Blindness", "BLINDNESS", 0x1F1F23, Harmful, false)
	NightVision    = vanilla(16, "night_vision", "Night Vision", "NIGHT_VISION", 0x1F1FA1, Beneficial, false)
	Hunger         = vanilla(17, "hunger", "Hunger", "HUNGER", 0x587653, Harmful, false)
	Weakness       = vanilla(18, "weakness", "Weakness", "WEAKNESS", 0x484D48, Harmful, false)
	Poison         = vanilla(19, "poison", "Poison", "POISON", 0x4E9331, Harmful, false)
	Wither         = vanilla(20, "wither", "Wither", "WITHER", 0x352A27, Harmful, false)
	HealthBoost    = vanilla(21, "health_boost", "Health Boost", "HEALTH_BOOST", 0xF87D23, Beneficial, false)
	Absorption     = vanilla(22, "absorption", "Absorption", "ABSORPTION", 0x2552A5, Beneficial, false)
	Saturation     = vanilla(23, "saturation", "Saturation", "SATURATION", 0xF82423, Beneficial, true)
)

// VanillaTypes lists the vanilla effect types ordered by id.
var VanillaTypes = []*EffectType{
	Speed, Slowness, Haste, MiningFatigue, Strength, InstantHealth,
	InstantDamage, JumpBoost, Nausea, Regeneration, Resistance,
	FireResistance, WaterBreathing, Invisibility, Blindness, NightVision,
	Hunger, Weakness, Poison, Wither, HealthBoost, Absorption, Saturation,
}

func vanilla(id int, name, display, legacy string, rgb int, cat Category, instant bool) *EffectType {
	c, err := color.FromInt(rgb)
	if err != nil {
		panic(err)
	}
	return &EffectType{
		ID:       id,
		Key:      key.New(key.MinecraftNamespace, name),
		Name:     display,
		Legacy:   legacy,
		Color:    c,
		Category: cat,
		Instant:  instant,
	}
}

// normalizeName lower-cases s and replaces spaces and dashes with
// underscores so "Fire Resistance" and "fire-resistance" match.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
