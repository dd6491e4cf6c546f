package meta

import (
	"sync"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/alchemy/pkg/color"
	"go.minekube.com/alchemy/pkg/potion"
	"go.minekube.com/alchemy/pkg/util/componentutil"
	"go.minekube.com/alchemy/pkg/util/errs"
)

type potionMeta struct {
	mu       sync.RWMutex // protects following fields
	base                  // display name and lore
	effects  []potion.Effect
	color    color.Color
	hasColor bool
}

var _ Potion = (*potionMeta)(nil)

func (p *potionMeta) HasDisplayName() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.displayName != nil
}

func (p *potionMeta) DisplayName() component.Component {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.displayName
}

func (p *potionMeta) SetDisplayName(name component.Component) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.displayName = name
}

func (p *potionMeta) HasLore() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.lore) != 0
}

func (p *potionMeta) Lore() []component.Component {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.copyLore()
}

func (p *potionMeta) SetLore(lines []component.Component) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setLore(lines)
}

func (p *potionMeta) HasCustomEffects() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.effects) != 0
}

func (p *potionMeta) CustomEffects() []potion.Effect {
	p.mu.RLock()
	defer p.mu.RUnlock()
	effects := make([]potion.Effect, len(p.effects))
	copy(effects, p.effects)
	return effects
}

func (p *potionMeta) AddCustomEffect(effect potion.Effect, overwrite bool) (bool, error) {
	if err := effect.Validate(); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.indexOf(effect.Type); i != -1 {
		if !overwrite || p.effects[i].Equal(effect) {
			return false, nil
		}
		p.effects[i] = effect
		return true, nil
	}
	p.effects = append(p.effects, effect)
	return true, nil
}

func (p *potionMeta) RemoveCustomEffect(t *potion.EffectType) (bool, error) {
	if t == nil {
		return false, errs.InvalidArgument("effect type must not be nil")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(t)
	if i == -1 {
		return false, nil
	}
	p.effects = append(p.effects[:i], p.effects[i+1:]...)
	return true, nil
}

func (p *potionMeta) HasCustomEffect(t *potion.EffectType) bool {
	if t == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.indexOf(t) != -1
}

func (p *potionMeta) SetMainEffect(t *potion.EffectType) (bool, error) {
	if t == nil {
		return false, errs.InvalidArgument("effect type must not be nil")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(t)
	if i <= 0 {
		// absent or already first
		return false, nil
	}
	main := p.effects[i]
	copy(p.effects[1:i+1], p.effects[:i])
	p.effects[0] = main
	return true, nil
}

func (p *potionMeta) ClearCustomEffects() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	changed := len(p.effects) != 0
	p.effects = nil
	return changed
}

// indexOf returns the index of the effect of type t or -1.
// Callers must hold the lock.
func (p *potionMeta) indexOf(t *potion.EffectType) int {
	for i, e := range p.effects {
		if e.Type.Is(t) {
			return i
		}
	}
	return -1
}

func (p *potionMeta) HasColor() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hasColor
}

func (p *potionMeta) Color() color.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.hasColor {
		return color.Color{}
	}
	return p.color
}

func (p *potionMeta) SetColor(c color.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.color = c
	p.hasColor = true
}

func (p *potionMeta) RemoveColor() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	had := p.hasColor
	p.color = color.Color{}
	p.hasColor = false
	return had
}

func (p *potionMeta) DisplayColor() color.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.hasColor {
		return p.color
	}
	return potion.MixColor(p.effects...)
}

func (p *potionMeta) Equal(other Potion) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*potionMeta); ok && o == p {
		return true
	}
	if p.HasColor() != other.HasColor() || p.Color() != other.Color() {
		return false
	}
	a, b := p.CustomEffects(), other.CustomEffects()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return metaEqual(p, other)
}

func (p *potionMeta) Clone() Potion {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c := &potionMeta{
		base:     p.base.clone(),
		color:    p.color,
		hasColor: p.hasColor,
	}
	if len(p.effects) != 0 {
		c.effects = make([]potion.Effect, len(p.effects))
		copy(c.effects, p.effects)
	}
	return c
}

// metaEqual compares the Meta fields of a and b by their legacy text.
func metaEqual(a, b Meta) bool {
	if componentutil.Legacy(a.DisplayName()) != componentutil.Legacy(b.DisplayName()) {
		return false
	}
	la, lb := a.Lore(), b.Lore()
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if componentutil.Legacy(la[i]) != componentutil.Legacy(lb[i]) {
			return false
		}
	}
	return true
}
