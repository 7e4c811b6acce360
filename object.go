package esmodel

import (
	"net/url"
	"strings"
)

// Object is the immutable snapshot a successful Build produces. Typed model
// structs wrap an *Object and read it through Get, GetOpt, GetList and
// GetMap. A nil *Object reads as a model with every field unset.
//
// Objects are safe for concurrent reads.
type Object struct {
	desc   *Descriptor
	values []any
	set    []bool
}

func (o *Object) Descriptor() *Descriptor { return o.desc }

// IsSet reports whether field k was set when the object was built.
func (o *Object) IsSet(k FieldKey) bool {
	return o != nil && o.set[k]
}

// ToBuilder returns an open builder seeded with o's values. Collections are
// shared with o until the builder first modifies them.
func (o *Object) ToBuilder() *ObjectBuilder {
	b := NewObjectBuilder(o.desc)
	for i := range o.values {
		if o.set[i] {
			b.slots[i] = slot{set: true, value: o.values[i]}
		}
	}
	return b
}

// Get returns scalar field k, or the zero value when unset.
func Get[T any](o *Object, k FieldKey) T {
	if !o.IsSet(k) {
		var zero T
		return zero
	}
	return o.values[k].(T)
}

// GetOpt returns a pointer to a copy of scalar field k, or nil when unset.
func GetOpt[T any](o *Object, k FieldKey) *T {
	if !o.IsSet(k) {
		return nil
	}
	v := o.values[k].(T)
	return &v
}

// GetList returns a view of list field k; unset yields an undefined, empty
// view.
func GetList[T any](o *Object, k FieldKey) List[T] {
	if !o.IsSet(k) {
		return List[T]{}
	}
	return List[T]{items: o.values[k].([]T), defined: true}
}

// GetMap returns a view of map field k; unset yields an undefined, empty
// view.
func GetMap[V any](o *Object, k FieldKey) Map[V] {
	if !o.IsSet(k) {
		return Map[V]{}
	}
	return o.values[k].(Map[V])
}

// PathParams renders the set InPath fields, keyed by wire key. List values
// are joined with commas.
func PathParams(o *Object) map[string]string {
	out := map[string]string{}
	if o == nil {
		return out
	}
	for i, f := range o.desc.fields {
		if f.loc == InPath && o.set[i] {
			out[f.wireKey] = strings.Join(f.ops.render(o.values[i]), ",")
		}
	}
	return out
}

// QueryValues renders the set InQuery fields. List values are joined with
// commas, the form the search API expects.
func QueryValues(o *Object) url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	for i, f := range o.desc.fields {
		if f.loc == InQuery && o.set[i] {
			values.Set(f.wireKey, strings.Join(f.ops.render(o.values[i]), ","))
		}
	}
	return values
}
