package potion

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.minekube.com/common/minecraft/key"
	"golang.org/x/exp/maps"

	"go.minekube.com/alchemy/pkg/internal/suggest"
	"go.minekube.com/alchemy/pkg/util/errs"
	"go.minekube.com/alchemy/pkg/util/validation"
)

// MaxID is the largest effect type id that fits the item tag format.
const MaxID = 255

// Registry holds effect types by id, key and name.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex // protects following fields
	byID   map[int]*EffectType
	byKey  map[string]*EffectType
	byName map[string]*EffectType // normalized key values and legacy names
}

// Vanilla is a registry of the vanilla effect types.
var Vanilla = MustNewRegistry(VanillaTypes...)

// NewRegistry returns a registry containing the given types.
func NewRegistry(types ...*EffectType) (*Registry, error) {
	r := &Registry{
		byID:   map[int]*EffectType{},
		byKey:  map[string]*EffectType{},
		byName: map[string]*EffectType{},
	}
	for _, t := range types {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(types ...*EffectType) *Registry {
	r, err := NewRegistry(types...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds an effect type to the registry.
// The id, key and legacy name must not be taken yet.
func (r *Registry) Register(t *EffectType) error {
	if t == nil {
		return errs.InvalidArgument("effect type must not be nil")
	}
	if t.Key == nil {
		return errs.InvalidArgument("effect type %d has no key", t.ID)
	}
	if !validation.ValidKeyNamespace(t.Key.Namespace()) || !validation.ValidKeyValue(t.Key.Value()) {
		return errs.InvalidArgument("effect type key %q is malformed", keyString(t.Key))
	}
	if t.ID <= 0 || t.ID > MaxID {
		return errs.InvalidArgument("effect type %s id %d out of range 1-%d", t, t.ID, MaxID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.byID[t.ID]; ok {
		return fmt.Errorf("effect type id %d already registered by %s", t.ID, o)
	}
	k := keyString(t.Key)
	if _, ok := r.byKey[k]; ok {
		return fmt.Errorf("effect type %s already registered", k)
	}
	names := r.namesOf(t)
	for _, n := range names {
		if o, ok := r.byName[n]; ok {
			return fmt.Errorf("effect type name %q of %s already registered by %s", n, k, o)
		}
	}

	r.byID[t.ID] = t
	r.byKey[k] = t
	for _, n := range names {
		r.byName[n] = t
	}
	return nil
}

// namesOf returns the lookup names of t. The key value is only
// registered as a bare name for the minecraft namespace.
func (r *Registry) namesOf(t *EffectType) []string {
	var names []string
	if t.Key.Namespace() == key.MinecraftNamespace {
		names = append(names, normalizeName(t.Key.Value()))
	}
	if t.Legacy != "" {
		if n := normalizeName(t.Legacy); len(names) == 0 || n != names[0] {
			names = append(names, n)
		}
	}
	return names
}

// ByID returns the effect type with the given legacy id.
func (r *Registry) ByID(id int) (*EffectType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	return t, ok
}

// ByKey returns the effect type with the given key.
func (r *Registry) ByKey(k key.Key) (*EffectType, bool) {
	if k == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byKey[keyString(k)]
	return t, ok
}

// ByName returns the effect type for a namespaced key ("minecraft:speed"),
// a bare vanilla key value ("speed", "Fire Resistance") or a legacy
// plugin API name ("INCREASE_DAMAGE").
func (r *Registry) ByName(name string) (*EffectType, bool) {
	n := normalizeName(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if strings.ContainsRune(n, ':') {
		t, ok := r.byKey[n]
		return t, ok
	}
	t, ok := r.byName[n]
	return t, ok
}

// Lookup is like ByName but returns an error suggesting the closest
// known name if there is no such effect type.
func (r *Registry) Lookup(name string) (*EffectType, error) {
	if t, ok := r.ByName(name); ok {
		return t, nil
	}
	if s, ok := r.Suggest(name); ok {
		return nil, errs.InvalidArgument("unknown effect type %q (did you mean %q?)", name, s)
	}
	return nil, errs.InvalidArgument("unknown effect type %q", name)
}

// Suggest returns the registered name most similar to name.
func (r *Registry) Suggest(name string) (string, bool) {
	return suggest.Closest(normalizeName(name), r.Names())
}

// Names returns the short names of all types: the key value for
// minecraft types and the full key otherwise.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, 0, len(all))
	for _, t := range all {
		if t.Key.Namespace() == key.MinecraftNamespace {
			names = append(names, t.Key.Value())
		} else {
			names = append(names, keyString(t.Key))
		}
	}
	return names
}

// All returns all registered effect types ordered by id.
func (r *Registry) All() []*EffectType {
	r.mu.RLock()
	all := maps.Values(r.byID)
	r.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of registered effect types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
