package esmodel

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Model is a registry entry: a named, type-erased codec for one model.
type Model struct {
	// Name is "<package>.<Type>", for example "types.TotalHits".
	Name  string
	Codec AnyCodec
	// Object is set for object models, Union for union models.
	Object *Descriptor
	Union  *UnionDescriptor
}

// AncestorCount returns the length of the model's ancestor chain.
func (m Model) AncestorCount() int {
	switch {
	case m.Object != nil:
		return m.Object.AncestorCount()
	case m.Union != nil:
		return m.Union.AncestorCount()
	}
	return 0
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Model{}
)

// Register adds m to the registry. Model packages call it from init; a
// duplicate name panics.
func Register(m Model) {
	if m.Name == "" || m.Codec == nil {
		panic("esmodel: Register needs a name and a codec")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[m.Name]; dup {
		panic(fmt.Sprintf("esmodel: model %q registered twice", m.Name))
	}
	registry[m.Name] = m
}

// Lookup returns the model registered under name. The match is exact first,
// then case-insensitive.
func Lookup(name string) (Model, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if m, ok := registry[name]; ok {
		return m, true
	}
	for k, m := range registry {
		if strings.EqualFold(k, name) {
			return m, true
		}
	}
	return Model{}, false
}

// Models returns all registered models sorted by name.
func Models() []Model {
	registryMu.RLock()
	out := make([]Model, 0, len(registry))
	for _, m := range registry {
		out = append(out, m)
	}
	registryMu.RUnlock()
	slices.SortFunc(out, func(a, b Model) int { return strings.Compare(a.Name, b.Name) })
	return out
}
