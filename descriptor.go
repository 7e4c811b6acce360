package esmodel

import (
	"fmt"
	"strconv"
	"strings"

	js "github.com/reoring/esmodel/jsonschema"
)

// Cardinality tells whether a field holds one value, a list or a map.
type Cardinality int

const (
	CardinalityScalar Cardinality = iota
	CardinalityList
	CardinalityMap
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityScalar:
		return "scalar"
	case CardinalityList:
		return "list"
	case CardinalityMap:
		return "map"
	}
	return "cardinality(" + strconv.Itoa(int(c)) + ")"
}

// Location tells where a field travels on the wire.
type Location int

const (
	// InBody fields are object properties of the serialized body.
	InBody Location = iota
	// InPath fields are substituted into the request path.
	InPath
	// InQuery fields are rendered as URL query parameters.
	InQuery
	// InKey fields are the object key wrapping a field-keyed model, as in
	// {"<field>": {...}}. Their codec reads and writes them.
	InKey
)

// FieldKey addresses a field within a descriptor. Keys of an ancestor
// descriptor stay valid for every descendant.
type FieldKey int

// Field describes one model field. Build fields with ScalarField, ListField,
// MapField or TypedKeysMapField.
type Field struct {
	name     string
	wireKey  string
	required bool
	card     Cardinality
	loc      Location
	ops      fieldOps
}

func (f Field) Name() string             { return f.name }
func (f Field) WireKey() string          { return f.wireKey }
func (f Field) IsRequired() bool         { return f.required }
func (f Field) Cardinality() Cardinality { return f.card }
func (f Field) Location() Location       { return f.loc }

// Required marks the field as required at Build time.
func (f Field) Required() Field { f.required = true; return f }

// In moves the field out of the body.
func (f Field) In(loc Location) Field { f.loc = loc; return f }

// ScalarField declares a single-valued field.
func ScalarField[T any](name, wireKey string, c Codec[T]) Field {
	return Field{name: name, wireKey: wireKey, card: CardinalityScalar, ops: scalarOps[T]{c: c}}
}

// ListField declares a list-valued field.
func ListField[T any](name, wireKey string, c Codec[T]) Field {
	return Field{name: name, wireKey: wireKey, card: CardinalityList, ops: listOps[T]{c: c}}
}

// MapField declares a string-keyed map field.
func MapField[V any](name, wireKey string, c Codec[V]) Field {
	return Field{name: name, wireKey: wireKey, card: CardinalityMap, ops: mapOps[V]{c: c}}
}

// TypedKeysMapField declares a map whose wire keys carry the value kind as
// "kind#name". The kind is stripped from the map key on input and restored
// from the value on output.
func TypedKeysMapField[V any](name, wireKey string, c KindedCodec[V]) Field {
	return Field{name: name, wireKey: wireKey, card: CardinalityMap, ops: typedKeysOps[V]{mapOps: mapOps[V]{c: c}, kc: c}}
}

// Descriptor is the static, ordered field table of a model. Ancestor fields
// come first, in the ancestor's own order.
type Descriptor struct {
	name   string
	parent *Descriptor
	fields []Field
	byWire map[string]FieldKey
	byName map[string]FieldKey
}

// NewDescriptor creates the descriptor of a model extending parent (nil for
// none). It panics when two fields share a name or a wire key, since
// descriptors are package-level values built at init.
func NewDescriptor(name string, parent *Descriptor, own ...Field) *Descriptor {
	d := &Descriptor{name: name, parent: parent, byWire: map[string]FieldKey{}, byName: map[string]FieldKey{}}
	if parent != nil {
		d.fields = append(d.fields, parent.fields...)
	}
	d.fields = append(d.fields, own...)
	for i, f := range d.fields {
		if f.ops == nil {
			panic(fmt.Sprintf("esmodel: %s: field #%d has no codec", name, i))
		}
		if _, dup := d.byWire[f.wireKey]; dup {
			panic(fmt.Sprintf("esmodel: %s: duplicate wire key %q", name, f.wireKey))
		}
		if _, dup := d.byName[f.name]; dup {
			panic(fmt.Sprintf("esmodel: %s: duplicate field %q", name, f.name))
		}
		d.byWire[f.wireKey] = FieldKey(i)
		d.byName[f.name] = FieldKey(i)
	}
	return d
}

func (d *Descriptor) Name() string           { return d.name }
func (d *Descriptor) Parent() *Descriptor    { return d.parent }
func (d *Descriptor) Len() int               { return len(d.fields) }
func (d *Descriptor) Field(k FieldKey) Field { return d.fields[k] }

// Fields returns a copy of the field table.
func (d *Descriptor) Fields() []Field { return append([]Field(nil), d.fields...) }

// AncestorCount is the length of the parent chain.
func (d *Descriptor) AncestorCount() int {
	n := 0
	for p := d.parent; p != nil; p = p.parent {
		n++
	}
	return n
}

// Key returns the key of the named field and panics when there is none.
// Model packages resolve their keys once, at init.
func (d *Descriptor) Key(name string) FieldKey {
	k, ok := d.byName[name]
	if !ok {
		panic(fmt.Sprintf("esmodel: %s has no field %q", d.name, name))
	}
	return k
}

// LookupWireKey maps a wire key to its field.
func (d *Descriptor) LookupWireKey(wireKey string) (FieldKey, bool) {
	k, ok := d.byWire[wireKey]
	return k, ok
}

// Extends reports whether d is other or descends from it.
func (d *Descriptor) Extends(other *Descriptor) bool {
	for p := d; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

func (d *Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.name)
	b.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.wireKey)
		if f.required {
			b.WriteByte('!')
		}
	}
	b.WriteByte('}')
	return b.String()
}

// fieldOps is the element-type-specific half of a Field. Values handed to
// it are the builder/object storage forms: T for scalars, []T for lists,
// Map[V] for maps.
type fieldOps interface {
	encode(g Generator, v any) error
	decode(d *Decoder, b *ObjectBuilder, k FieldKey) error
	// adopt converts a Set argument to storage form; owned reports whether
	// the result is private to the builder.
	adopt(v any) (stored any, owned bool, ok bool)
	clone(v any) any
	render(v any) []string
	schema(defs *Definitions) *js.Schema
}

type scalarOps[T any] struct{ c Codec[T] }

func (o scalarOps[T]) encode(g Generator, v any) error { return o.c.Encode(g, v.(T)) }

func (o scalarOps[T]) decode(d *Decoder, b *ObjectBuilder, k FieldKey) error {
	v, err := o.c.Decode(d)
	if err != nil {
		return err
	}
	b.Set(k, v)
	return nil
}

func (o scalarOps[T]) adopt(v any) (any, bool, bool) {
	t, ok := v.(T)
	return t, true, ok
}

func (o scalarOps[T]) clone(v any) any { return v }

func (o scalarOps[T]) render(v any) []string { return []string{renderParam(v)} }

func (o scalarOps[T]) schema(defs *Definitions) *js.Schema { return SchemaOf(o.c, defs) }

type listOps[T any] struct{ c Codec[T] }

func (o listOps[T]) encode(g Generator, v any) error {
	g.WriteStartArray()
	for _, e := range v.([]T) {
		if err := o.c.Encode(g, e); err != nil {
			return err
		}
	}
	g.WriteEnd()
	return nil
}

func (o listOps[T]) decode(d *Decoder, b *ObjectBuilder, k FieldKey) error {
	SetList(b, k, []T{})
	return d.ReadArray(func(int) error {
		v, err := o.c.Decode(d)
		if err != nil {
			return err
		}
		AppendList(b, k, v)
		return nil
	})
}

func (o listOps[T]) adopt(v any) (any, bool, bool) {
	switch s := v.(type) {
	case []T:
		if len(s) == 0 {
			return []T{}, true, true
		}
		return s, false, true
	case List[T]:
		return s.items, false, true
	}
	return nil, false, false
}

func (o listOps[T]) clone(v any) any { return append([]T{}, v.([]T)...) }

func (o listOps[T]) render(v any) []string {
	items := v.([]T)
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = renderParam(e)
	}
	return out
}

func (o listOps[T]) schema(defs *Definitions) *js.Schema {
	return &js.Schema{Type: "array", Items: SchemaOf(o.c, defs)}
}

type mapOps[V any] struct{ c Codec[V] }

func (o mapOps[V]) encode(g Generator, v any) error {
	m := v.(Map[V])
	g.WriteStartObject()
	for _, key := range m.keys {
		g.WriteKey(key)
		if err := o.c.Encode(g, m.values[key]); err != nil {
			return err
		}
	}
	g.WriteEnd()
	return nil
}

func (o mapOps[V]) decode(d *Decoder, b *ObjectBuilder, k FieldKey) error {
	b.Set(k, OrderedMap[V]())
	return d.ReadObject(func(key string) error {
		v, err := o.c.Decode(d)
		if err != nil {
			return err
		}
		PutMap(b, k, key, v)
		return nil
	})
}

func (o mapOps[V]) adopt(v any) (any, bool, bool) {
	switch m := v.(type) {
	case map[string]V:
		return MapOf(m), true, true
	case Map[V]:
		return m, false, true
	}
	return nil, false, false
}

func (o mapOps[V]) clone(v any) any { return v.(Map[V]).clone() }

func (o mapOps[V]) render(v any) []string {
	m := v.(Map[V])
	out := make([]string, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, key+":"+renderParam(m.values[key]))
	}
	return out
}

func (o mapOps[V]) schema(defs *Definitions) *js.Schema {
	return &js.Schema{Type: "object", AdditionalProperties: SchemaOf(o.c, defs)}
}

type typedKeysOps[V any] struct {
	mapOps[V]
	kc KindedCodec[V]
}

func (o typedKeysOps[V]) encode(g Generator, v any) error {
	m := v.(Map[V])
	g.WriteStartObject()
	for _, key := range m.keys {
		val := m.values[key]
		g.WriteKey(o.kc.Kind(val) + "#" + key)
		if err := o.kc.Encode(g, val); err != nil {
			return err
		}
	}
	g.WriteEnd()
	return nil
}

func (o typedKeysOps[V]) decode(d *Decoder, b *ObjectBuilder, k FieldKey) error {
	b.Set(k, OrderedMap[V]())
	return d.ReadObject(func(key string) error {
		kind, name, ok := strings.Cut(key, "#")
		if !ok {
			return &UnrecognizedWireValueError{
				Path:     d.Path(),
				Expected: "typed key of the form kind#name",
				Got:      strconv.Quote(key),
				Offset:   d.Location(),
			}
		}
		v, err := o.kc.DecodeKind(d, kind)
		if err != nil {
			return err
		}
		PutMap(b, k, name, v)
		return nil
	})
}

func (o typedKeysOps[V]) schema(defs *Definitions) *js.Schema {
	s := o.mapOps.schema(defs)
	s.PropertyNames = &js.Schema{Type: "string", Description: "kind#name"}
	return s
}

// renderParam formats a value for a path segment or query parameter.
func renderParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
