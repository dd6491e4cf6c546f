package meta

import (
	"github.com/robinbraemer/event"

	"go.minekube.com/alchemy/pkg/color"
	"go.minekube.com/alchemy/pkg/potion"
)

// Observe returns a Potion that delegates to p and fires events on mgr
// after every call that changed p. Calls reporting no change fire nothing.
//
// Events are fired synchronously in the calling goroutine. Handlers must
// not mutate the potion they receive an event for from the same goroutine.
func Observe(p Potion, mgr event.Manager) Potion {
	if o, ok := p.(*observedPotion); ok {
		p = o.Potion
	}
	return &observedPotion{Potion: p, mgr: mgr}
}

type observedPotion struct {
	Potion
	mgr event.Manager
}

var _ Potion = (*observedPotion)(nil)

func (o *observedPotion) AddCustomEffect(effect potion.Effect, overwrite bool) (bool, error) {
	var replaced *potion.Effect
	if overwrite {
		for _, e := range o.Potion.CustomEffects() {
			if e.Type.Is(effect.Type) {
				replaced = &e
				break
			}
		}
	}
	changed, err := o.Potion.AddCustomEffect(effect, overwrite)
	if changed {
		o.mgr.Fire(&PotionEffectAddEvent{potion: o, effect: effect, replaced: replaced})
	}
	return changed, err
}

func (o *observedPotion) RemoveCustomEffect(t *potion.EffectType) (bool, error) {
	var removed potion.Effect
	for _, e := range o.Potion.CustomEffects() {
		if e.Type.Is(t) {
			removed = e
			break
		}
	}
	changed, err := o.Potion.RemoveCustomEffect(t)
	if changed {
		o.mgr.Fire(&PotionEffectRemoveEvent{potion: o, effect: removed})
	}
	return changed, err
}

func (o *observedPotion) SetMainEffect(t *potion.EffectType) (bool, error) {
	changed, err := o.Potion.SetMainEffect(t)
	if changed {
		o.mgr.Fire(&PotionMainEffectEvent{potion: o, effectType: t})
	}
	return changed, err
}

func (o *observedPotion) ClearCustomEffects() bool {
	cleared := o.Potion.CustomEffects()
	changed := o.Potion.ClearCustomEffects()
	if changed {
		o.mgr.Fire(&PotionEffectsClearEvent{potion: o, effects: cleared})
	}
	return changed
}

func (o *observedPotion) SetColor(c color.Color) {
	old, had := o.Potion.Color(), o.Potion.HasColor()
	o.Potion.SetColor(c)
	if !had || old != c {
		o.mgr.Fire(&PotionColorChangeEvent{potion: o, old: old, hadOld: had, cur: c, hasCur: true})
	}
}

func (o *observedPotion) RemoveColor() bool {
	old := o.Potion.Color()
	changed := o.Potion.RemoveColor()
	if changed {
		o.mgr.Fire(&PotionColorChangeEvent{potion: o, old: old, hadOld: true})
	}
	return changed
}

func (o *observedPotion) Equal(other Potion) bool {
	if oo, ok := other.(*observedPotion); ok {
		other = oo.Potion
	}
	return o.Potion.Equal(other)
}

// Clone returns an observed deep copy firing events on the same manager.
func (o *observedPotion) Clone() Potion {
	return &observedPotion{Potion: o.Potion.Clone(), mgr: o.mgr}
}

//
//
//
//
//

// PotionEffectAddEvent is fired after a custom effect was added to
// or replaced in a potion meta.
type PotionEffectAddEvent struct {
	potion   Potion
	effect   potion.Effect
	replaced *potion.Effect
}

// Potion returns the changed potion meta.
func (e *PotionEffectAddEvent) Potion() Potion { return e.potion }

// Effect returns the added effect.
func (e *PotionEffectAddEvent) Effect() potion.Effect { return e.effect }

// Replaced returns the effect that was overwritten, if any.
func (e *PotionEffectAddEvent) Replaced() (potion.Effect, bool) {
	if e.replaced == nil {
		return potion.Effect{}, false
	}
	return *e.replaced, true
}

// PotionEffectRemoveEvent is fired after a custom effect was removed
// from a potion meta.
type PotionEffectRemoveEvent struct {
	potion Potion
	effect potion.Effect
}

// Potion returns the changed potion meta.
func (e *PotionEffectRemoveEvent) Potion() Potion { return e.potion }

// Effect returns the removed effect.
func (e *PotionEffectRemoveEvent) Effect() potion.Effect { return e.effect }

// PotionMainEffectEvent is fired after an effect was moved to the top
// of a potion meta's custom effects.
type PotionMainEffectEvent struct {
	potion     Potion
	effectType *potion.EffectType
}

// Potion returns the changed potion meta.
func (e *PotionMainEffectEvent) Potion() Potion { return e.potion }

// Type returns the new main effect type.
func (e *PotionMainEffectEvent) Type() *potion.EffectType { return e.effectType }

// PotionEffectsClearEvent is fired after all custom effects were removed
// from a potion meta.
type PotionEffectsClearEvent struct {
	potion  Potion
	effects []potion.Effect
}

// Potion returns the changed potion meta.
func (e *PotionEffectsClearEvent) Potion() Potion { return e.potion }

// Effects returns the removed effects.
func (e *PotionEffectsClearEvent) Effects() []potion.Effect { return e.effects }

// PotionColorChangeEvent is fired after the custom color of a potion meta
// was set to a different value or removed.
type PotionColorChangeEvent struct {
	potion Potion
	old    color.Color
	hadOld bool
	cur    color.Color
	hasCur bool
}

// Potion returns the changed potion meta.
func (e *PotionColorChangeEvent) Potion() Potion { return e.potion }

// Previous returns the previous custom color, if one was set.
func (e *PotionColorChangeEvent) Previous() (color.Color, bool) { return e.old, e.hadOld }

// Color returns the new custom color. It returns false if the color was removed.
func (e *PotionColorChangeEvent) Color() (color.Color, bool) { return e.cur, e.hasCur }
