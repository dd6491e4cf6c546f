package meta

import (
	"go.minekube.com/alchemy/pkg/color"
	"go.minekube.com/alchemy/pkg/potion"
)

// Potion is the metadata of a potion item that can have custom effects
// and a custom color.
//
// The custom effects are an ordered list holding at most one effect per
// effect type. The first effect is the main effect: clients name the
// potion after it.
type Potion interface {
	Meta

	// HasCustomEffects checks for the presence of custom potion effects.
	HasCustomEffects() bool
	// CustomEffects returns a copy of the custom potion effects.
	// It returns an empty slice if there are none.
	CustomEffects() []potion.Effect
	// AddCustomEffect adds a custom potion effect.
	// If an effect of the same type exists it is replaced only if
	// overwrite is true and the effects differ. Replacing keeps the
	// effect's position.
	// It returns true if the potion meta changed as a result of this call.
	AddCustomEffect(effect potion.Effect, overwrite bool) (bool, error)
	// RemoveCustomEffect removes the custom potion effect of the given type.
	// It returns true if the potion meta changed as a result of this call.
	RemoveCustomEffect(t *potion.EffectType) (bool, error)
	// HasCustomEffect checks for a custom potion effect of the given type.
	HasCustomEffect(t *potion.EffectType) bool
	// SetMainEffect moves the custom potion effect of the given type to
	// the top of the list.
	// It returns true if the potion meta changed as a result of this call.
	SetMainEffect(t *potion.EffectType) (bool, error)
	// ClearCustomEffects removes all custom potion effects.
	// It returns true if the potion meta changed as a result of this call.
	ClearCustomEffects() bool

	// HasColor checks for the presence of a custom potion color.
	HasColor() bool
	// Color returns the custom potion color.
	// Callers should check HasColor first: the zero color is returned
	// if none is set.
	Color() color.Color
	// SetColor sets the custom potion color.
	SetColor(c color.Color)
	// RemoveColor removes the custom potion color.
	// It returns true if a color was set.
	RemoveColor() bool
	// DisplayColor returns the custom color if set, otherwise the tint
	// mixed from the custom effects.
	DisplayColor() color.Color

	// Equal reports whether p and other hold equal metadata.
	Equal(other Potion) bool
	// Clone returns an independent deep copy.
	Clone() Potion
}

// NewPotion returns an empty potion meta.
// It is safe for concurrent use.
func NewPotion() Potion {
	return &potionMeta{}
}
