package esmodel

import (
	"fmt"
	"reflect"
)

type slot struct {
	set   bool
	value any
	// owned is true when value's backing storage belongs to this builder
	// and may be mutated in place.
	owned bool
	// err is a failed nested Build parked until this builder's Build.
	err error
}

// ObjectBuilder accumulates the fields of one model instance. It is a
// single-use state machine: a successful Build consumes it, after which
// Build returns ErrBuilderAlreadyUsed and setters panic.
//
// A builder is not safe for concurrent use.
type ObjectBuilder struct {
	desc     *Descriptor
	slots    []slot
	consumed bool
}

// NewObjectBuilder returns an empty builder for d.
func NewObjectBuilder(d *Descriptor) *ObjectBuilder {
	return &ObjectBuilder{desc: d, slots: make([]slot, len(d.fields))}
}

func (b *ObjectBuilder) Descriptor() *Descriptor { return b.desc }

// Consumed reports whether Build already succeeded.
func (b *ObjectBuilder) Consumed() bool { return b.consumed }

func (b *ObjectBuilder) slot(k FieldKey) *slot {
	if b.consumed {
		panic(ErrBuilderAlreadyUsed)
	}
	return &b.slots[k]
}

// IsSet reports whether field k holds a value.
func (b *ObjectBuilder) IsSet(k FieldKey) bool {
	return !b.consumed && b.slots[k].set
}

// Set stores v in field k, replacing any earlier value or parked error.
//
// For list fields v is a []T or a List[T]; for map fields a map[string]V or
// a Map[V]. Collections are never mutated in place: the builder copies them
// before the first append. A Reset token, nil, or an unset List/Map returns
// the field to unset, as does a nil pointer.
func (b *ObjectBuilder) Set(k FieldKey, v any) {
	s := b.slot(k)
	s.err = nil
	if unsets(v) {
		*s = slot{}
		return
	}
	f := b.desc.fields[k]
	stored, owned, ok := f.ops.adopt(v)
	if !ok {
		panic(fmt.Sprintf("esmodel: %s.%s (%s): cannot store %T", b.desc.name, f.name, f.card, v))
	}
	*s = slot{set: true, value: stored, owned: owned}
}

func unsets(v any) bool {
	switch x := v.(type) {
	case nil, Reset:
		return true
	case Definable:
		return !x.IsDefined()
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// SetOpt stores *v in field k, or unsets the field when v is nil. Optional
// scalar setters of typed builders take pointers and go through here.
func SetOpt[T any](b *ObjectBuilder, k FieldKey, v *T) {
	if v == nil {
		b.Unset(k)
		return
	}
	b.Set(k, *v)
}

// Unset returns field k to unset.
func (b *ObjectBuilder) Unset(k FieldKey) { b.Set(k, nil) }

// fail parks a nested build error on field k.
func (b *ObjectBuilder) fail(k FieldKey, err error) {
	b.slot(k).err = err
}

// Build validates the accumulated fields and freezes them into an Object.
//
// Parked nested errors are reported first, qualified with the field name.
// Then every required field must be set, unless required checks are
// disabled. Only a successful Build consumes the builder.
func (b *ObjectBuilder) Build() (*Object, error) {
	if b.consumed {
		return nil, ErrBuilderAlreadyUsed
	}
	for i := range b.slots {
		if err := b.slots[i].err; err != nil {
			return nil, qualify(err, b.desc.name, b.desc.fields[i].name)
		}
	}
	if RequiredChecksEnabled() {
		for i, f := range b.desc.fields {
			if f.required && !b.slots[i].set {
				return nil, &MissingRequiredFieldError{Model: b.desc.name, Path: f.name}
			}
		}
	}
	o := &Object{desc: b.desc, values: make([]any, len(b.slots)), set: make([]bool, len(b.slots))}
	for i, s := range b.slots {
		if !s.set {
			continue
		}
		v := s.value
		if !s.owned {
			v = b.desc.fields[i].ops.clone(v)
		}
		o.values[i], o.set[i] = v, true
	}
	b.consumed = true
	b.slots = nil
	return o, nil
}

func (b *ObjectBuilder) collection(k FieldKey, card Cardinality) *slot {
	s := b.slot(k)
	if f := b.desc.fields[k]; f.card != card {
		panic(fmt.Sprintf("esmodel: %s.%s is a %s field, not a %s", b.desc.name, f.name, f.card, card))
	}
	return s
}

// SetList replaces list field k with items. A nil or empty slice defines the
// field as empty.
func SetList[T any](b *ObjectBuilder, k FieldKey, items []T) {
	b.collection(k, CardinalityList)
	b.Set(k, items)
}

// AppendList appends items to list field k, defining it first if unset.
func AppendList[T any](b *ObjectBuilder, k FieldKey, items ...T) {
	s := b.collection(k, CardinalityList)
	var cur []T
	switch {
	case !s.set:
		s.set, s.owned = true, true
	case !s.owned:
		cur = append(make([]T, 0, len(s.value.([]T))+len(items)), s.value.([]T)...)
		s.owned = true
	default:
		cur = s.value.([]T)
	}
	s.value = append(cur, items...)
}

// SetMap replaces map field k with the entries of m (keys sorted).
func SetMap[V any](b *ObjectBuilder, k FieldKey, m map[string]V) {
	b.collection(k, CardinalityMap)
	b.Set(k, m)
}

// PutMap adds or replaces one entry of map field k, defining it first if
// unset. New keys go last.
func PutMap[V any](b *ObjectBuilder, k FieldKey, key string, v V) {
	s := b.collection(k, CardinalityMap)
	var m Map[V]
	switch {
	case !s.set:
		m = Map[V]{keys: []string{}, values: map[string]V{}, defined: true}
		s.set, s.owned = true, true
	case !s.owned:
		m = s.value.(Map[V]).clone()
		s.owned = true
	default:
		m = s.value.(Map[V])
	}
	m.put(key, v)
	s.value = m
}

// SetBuilt stores the result of a nested Build in field k. A non-nil err is
// parked and reported by b.Build with the field name prepended.
func SetBuilt[T any](b *ObjectBuilder, k FieldKey, v T, err error) {
	if err != nil {
		b.fail(k, err)
		return
	}
	b.Set(k, v)
}

// AppendBuilt appends the result of a nested Build to list field k.
func AppendBuilt[T any](b *ObjectBuilder, k FieldKey, v T, err error) {
	if err != nil {
		b.fail(k, err)
		return
	}
	AppendList(b, k, v)
}

// PutBuilt puts the result of a nested Build into map field k. A parked
// error names the entry: "aggregations.by_day.field".
func PutBuilt[V any](b *ObjectBuilder, k FieldKey, key string, v V, err error) {
	if err != nil {
		b.fail(k, qualify(err, b.desc.name, key))
		return
	}
	PutMap(b, k, key, v)
}
