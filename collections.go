package esmodel

import (
	"iter"
	"maps"
	"slices"
)

// List is a read-only view of a list field. The zero List is unset.
type List[T any] struct {
	items   []T
	defined bool
}

// ListOf returns a defined list holding a copy of items.
func ListOf[T any](items ...T) List[T] {
	return List[T]{items: append([]T{}, items...), defined: true}
}

// IsDefined is false only for a list that was never set.
func (l List[T]) IsDefined() bool { return l.defined }
func (l List[T]) Len() int        { return len(l.items) }
func (l List[T]) At(i int) T      { return l.items[i] }

// All iterates over index/element pairs.
func (l List[T]) All() iter.Seq2[int, T] { return slices.All(l.items) }

// Slice returns a copy of the elements; never nil.
func (l List[T]) Slice() []T { return append([]T{}, l.items...) }

// Entry is a key/value pair for OrderedMap.
type Entry[V any] struct {
	Key   string
	Value V
}

// Map is a read-only, insertion-ordered view of a map field. The zero Map
// is unset.
type Map[V any] struct {
	keys    []string
	values  map[string]V
	defined bool
}

// MapOf returns a defined map holding a copy of m. Go maps carry no order,
// so keys are sorted.
func MapOf[V any](m map[string]V) Map[V] {
	out := Map[V]{keys: slices.Sorted(maps.Keys(m)), values: maps.Clone(m), defined: true}
	if out.keys == nil {
		out.keys = []string{}
	}
	if out.values == nil {
		out.values = map[string]V{}
	}
	return out
}

// OrderedMap returns a defined map with the entries in the given order. A
// repeated key keeps its first position and its last value.
func OrderedMap[V any](entries ...Entry[V]) Map[V] {
	m := Map[V]{keys: make([]string, 0, len(entries)), values: make(map[string]V, len(entries)), defined: true}
	for _, e := range entries {
		m.put(e.Key, e.Value)
	}
	return m
}

func (m Map[V]) IsDefined() bool { return m.defined }
func (m Map[V]) Len() int        { return len(m.keys) }

func (m Map[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m Map[V]) Keys() []string { return append([]string{}, m.keys...) }

// All iterates in insertion order.
func (m Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap returns the entries as a new Go map.
func (m Map[V]) ToMap() map[string]V {
	out := make(map[string]V, len(m.keys))
	maps.Copy(out, m.values)
	return out
}

func (m *Map[V]) put(key string, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m Map[V]) clone() Map[V] {
	return Map[V]{keys: append([]string{}, m.keys...), values: maps.Clone(m.values), defined: m.defined}
}

// Reset is the token Set consumes to return a collection field to unset.
type Reset struct{ kind Cardinality }

// ResetList returns the token that unsets a list field.
func ResetList() Reset { return Reset{kind: CardinalityList} }

// ResetMap returns the token that unsets a map field.
func ResetMap() Reset { return Reset{kind: CardinalityMap} }

// Definable is implemented by collection views.
type Definable interface{ IsDefined() bool }

// IsDefined reports whether a collection was set, possibly to an empty one.
// It is false for the zero List/Map and for nil.
func IsDefined(c Definable) bool { return c != nil && c.IsDefined() }
