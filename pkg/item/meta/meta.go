// Package meta provides the metadata attached to item stacks, such as the
// display name, lore and the custom effects and color of potions.
package meta

import (
	"go.minekube.com/common/minecraft/component"
)

// Meta is the metadata every item can carry.
//
// Components are shared, not copied, between an item meta and its
// clones and must not be mutated after being set.
type Meta interface {
	// HasDisplayName checks for the presence of a custom display name.
	HasDisplayName() bool
	// DisplayName returns the custom display name or nil.
	DisplayName() component.Component
	// SetDisplayName sets the custom display name.
	// A nil name removes it.
	SetDisplayName(name component.Component)

	// HasLore checks for the presence of lore lines.
	HasLore() bool
	// Lore returns a copy of the lore lines.
	Lore() []component.Component
	// SetLore replaces the lore lines with a copy of lines.
	// Nil lines are dropped; an empty slice removes the lore.
	SetLore(lines []component.Component)
}

// base holds the Meta fields. Callers guard it with their own lock.
type base struct {
	displayName component.Component
	lore        []component.Component
}

func (b *base) setLore(lines []component.Component) {
	b.lore = nil
	for _, l := range lines {
		if l != nil {
			b.lore = append(b.lore, l)
		}
	}
}

func (b *base) copyLore() []component.Component {
	if len(b.lore) == 0 {
		return nil
	}
	lore := make([]component.Component, len(b.lore))
	copy(lore, b.lore)
	return lore
}

func (b *base) clone() base {
	return base{
		displayName: b.displayName,
		lore:        b.copyLore(),
	}
}
