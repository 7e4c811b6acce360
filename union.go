package esmodel

import (
	"fmt"
	"slices"
	"strings"

	js "github.com/reoring/esmodel/jsonschema"
)

// Variant is one alternative of a union: the wire key naming it and the
// codec of its value.
type Variant struct {
	kind string
	ops  variantOps
}

func (v Variant) Kind() string { return v.kind }

type variantOps interface {
	encode(g Generator, v any) error
	decode(d *Decoder) (any, error)
	accepts(v any) bool
	schema(defs *Definitions) *js.Schema
}

// VariantOf declares a union variant whose value is encoded by c.
func VariantOf[T any](kind string, c Codec[T]) Variant {
	return Variant{kind: kind, ops: variantCodec[T]{c: c}}
}

type variantCodec[T any] struct{ c Codec[T] }

func (o variantCodec[T]) encode(g Generator, v any) error     { return o.c.Encode(g, v.(T)) }
func (o variantCodec[T]) decode(d *Decoder) (any, error)      { return o.c.Decode(d) }
func (o variantCodec[T]) schema(defs *Definitions) *js.Schema { return SchemaOf(o.c, defs) }

func (o variantCodec[T]) accepts(v any) bool {
	_, ok := v.(T)
	return ok
}

// UnionDescriptor describes a model that holds exactly one of several
// variants. Container fields (for example an aggregation's meta and
// sub-aggregations, or a query's boost inherited from its base) live next
// to the variant key and are written before it.
type UnionDescriptor struct {
	name      string
	container *Descriptor
	variants  []Variant
	byKind    map[string]int
}

// NewUnionDescriptor creates a union descriptor. container may be nil. It
// panics on duplicate kinds and on kinds that collide with container keys.
func NewUnionDescriptor(name string, container *Descriptor, variants ...Variant) *UnionDescriptor {
	if container == nil {
		container = NewDescriptor(name, nil)
	}
	u := &UnionDescriptor{name: name, container: container, variants: variants, byKind: map[string]int{}}
	for i, v := range variants {
		if _, dup := u.byKind[v.kind]; dup {
			panic(fmt.Sprintf("esmodel: union %s: duplicate variant %q", name, v.kind))
		}
		if _, clash := container.LookupWireKey(v.kind); clash {
			panic(fmt.Sprintf("esmodel: union %s: variant %q collides with a container field", name, v.kind))
		}
		u.byKind[v.kind] = i
	}
	return u
}

func (u *UnionDescriptor) Name() string           { return u.name }
func (u *UnionDescriptor) Container() *Descriptor { return u.container }

// AncestorCount is the ancestor count of the container, which carries the
// fields inherited from a base model.
func (u *UnionDescriptor) AncestorCount() int { return u.container.AncestorCount() }

func (u *UnionDescriptor) HasKind(kind string) bool {
	_, ok := u.byKind[kind]
	return ok
}

// Kinds returns the variant names in declaration order.
func (u *UnionDescriptor) Kinds() []string {
	out := make([]string, len(u.variants))
	for i, v := range u.variants {
		out[i] = v.kind
	}
	return out
}

func (u *UnionDescriptor) variant(kind string) (Variant, bool) {
	i, ok := u.byKind[kind]
	if !ok {
		return Variant{}, false
	}
	return u.variants[i], true
}

// Union is an immutable union instance.
type Union struct {
	desc      *UnionDescriptor
	container *Object
	kind      string
	value     any
}

func (u *Union) Descriptor() *UnionDescriptor { return u.desc }

// Kind returns the selected variant, "" when none was (only possible with
// required checks disabled).
func (u *Union) Kind() string {
	if u == nil {
		return ""
	}
	return u.kind
}

func (u *Union) Value() any {
	if u == nil {
		return nil
	}
	return u.value
}

// Container returns the container fields.
func (u *Union) Container() *Object {
	if u == nil {
		return nil
	}
	return u.container
}

// ToBuilder returns an open builder seeded with u.
func (u *Union) ToBuilder() *UnionBuilder {
	return &UnionBuilder{desc: u.desc, container: u.container.ToBuilder(), kind: u.kind, value: u.value}
}

// UnionValue returns the variant value when kind is selected.
func UnionValue[T any](u *Union, kind string) (T, bool) {
	if u.Kind() != kind || kind == "" {
		var zero T
		return zero, false
	}
	v, ok := u.value.(T)
	return v, ok
}

// UnionBuilder accumulates a union: the selected variant plus container
// fields. Like ObjectBuilder it is single use.
type UnionBuilder struct {
	desc      *UnionDescriptor
	container *ObjectBuilder
	kind      string
	value     any
	err       error
	consumed  bool
}

func NewUnionBuilder(u *UnionDescriptor) *UnionBuilder {
	return &UnionBuilder{desc: u, container: NewObjectBuilder(u.container)}
}

func (b *UnionBuilder) Descriptor() *UnionDescriptor { return b.desc }

// Container returns the builder of the container fields.
func (b *UnionBuilder) Container() *ObjectBuilder {
	b.check()
	return b.container
}

// Kind returns the currently selected variant.
func (b *UnionBuilder) Kind() string { return b.kind }

func (b *UnionBuilder) check() {
	if b.consumed {
		panic(ErrBuilderAlreadyUsed)
	}
}

// Select sets the variant. Selecting again replaces the previous choice.
func (b *UnionBuilder) Select(kind string, v any) {
	b.check()
	vr, ok := b.desc.variant(kind)
	if !ok {
		panic(fmt.Sprintf("esmodel: union %s has no variant %q", b.desc.name, kind))
	}
	if !vr.ops.accepts(v) {
		panic(fmt.Sprintf("esmodel: union %s: variant %q cannot hold %T", b.desc.name, kind, v))
	}
	b.kind, b.value, b.err = kind, v, nil
}

// SelectBuilt selects the result of a nested Build, parking err the way
// SetBuilt does.
func SelectBuilt[T any](b *UnionBuilder, kind string, v T, err error) {
	if err != nil {
		b.check()
		b.kind, b.value, b.err = kind, nil, err
		return
	}
	b.Select(kind, v)
}

// Build validates and freezes the union. A missing variant is reported as
// the missing field "_kind".
func (b *UnionBuilder) Build() (*Union, error) {
	if b.consumed {
		return nil, ErrBuilderAlreadyUsed
	}
	if b.err != nil {
		return nil, qualify(b.err, b.desc.name, b.kind)
	}
	if b.kind == "" && RequiredChecksEnabled() {
		return nil, &MissingRequiredFieldError{Model: b.desc.name, Path: "_kind"}
	}
	c, err := b.container.Build()
	if err != nil {
		return nil, err
	}
	b.consumed = true
	return &Union{desc: b.desc, container: c, kind: b.kind, value: b.value}, nil
}

// SerializeUnion writes u as {container fields..., "<kind>": value}.
func SerializeUnion(g Generator, u *Union) error {
	g.WriteStartObject()
	if err := SerializeUnionFields(g, u); err != nil {
		return err
	}
	g.WriteEnd()
	return nil
}

// SerializeUnionFields writes the keys of u into an object the caller
// already opened.
func SerializeUnionFields(g Generator, u *Union) error {
	if err := SerializeFields(g, u.Container()); err != nil {
		return err
	}
	if u.Kind() == "" {
		return nil
	}
	vr, _ := u.desc.variant(u.kind)
	g.WriteKey(u.kind)
	return vr.ops.encode(g, u.value)
}

// EncodeVariant writes only the variant value of u, as typed-keys maps do.
func EncodeVariant(g Generator, u *Union) error {
	if u == nil {
		return &UnrecognizedWireValueError{Expected: "union with a variant", Got: "nil", Offset: -1}
	}
	vr, ok := u.desc.variant(u.kind)
	if !ok {
		return &UnrecognizedWireValueError{Expected: "union " + u.desc.name + " with a variant", Got: "none", Offset: -1}
	}
	return vr.ops.encode(g, u.value)
}

// DeserializeUnion reads one union object into a new builder. An object
// with no variant key is an UnrecognizedWireValueError.
func DeserializeUnion(d *Decoder, ud *UnionDescriptor) (*UnionBuilder, error) {
	b := NewUnionBuilder(ud)
	start := d.Path()
	var keys []string
	err := d.ReadObject(func(key string) error {
		keys = append(keys, key)
		_, err := DeserializeUnionField(d, b, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	if b.kind == "" {
		return nil, &UnrecognizedWireValueError{
			Path:     start,
			Expected: ud.name + " variant (" + strings.Join(ud.Kinds(), "|") + ")",
			Got:      "object with keys [" + strings.Join(keys, ",") + "]",
			Offset:   d.Location(),
		}
	}
	return b, nil
}

// DeserializeUnionField handles one key of a union object: a container
// field, a variant, or an unknown key to skip.
func DeserializeUnionField(d *Decoder, b *UnionBuilder, key string) (bool, error) {
	if _, ok := b.desc.container.LookupWireKey(key); ok {
		return DeserializeField(d, b.container, key)
	}
	vr, ok := b.desc.variant(key)
	if !ok {
		return false, d.Skip()
	}
	if null, err := d.NextIsNull(); err != nil || null {
		return true, err
	}
	v, err := vr.ops.decode(d)
	if err != nil {
		return true, qualify(err, b.desc.name, key)
	}
	b.kind, b.value, b.err = key, v, nil
	return true, nil
}

// DecodeUnion deserializes and builds one union.
func DecodeUnion(d *Decoder, ud *UnionDescriptor) (*Union, error) {
	b, err := DeserializeUnion(d, ud)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// DecodeVariant decodes the next value as variant kind of ud, for unions
// whose kind travels outside the value (typed keys).
func DecodeVariant(d *Decoder, ud *UnionDescriptor, kind string) (*Union, error) {
	vr, ok := ud.variant(kind)
	if !ok {
		tok, err := d.Peek()
		if err != nil {
			return nil, err
		}
		return nil, &UnrecognizedWireValueError{
			Path:     d.Path(),
			Expected: ud.name + " kind (" + strings.Join(ud.Kinds(), "|") + ")",
			Got:      fmt.Sprintf("%q", kind),
			Offset:   tok.Offset,
		}
	}
	v, err := vr.ops.decode(d)
	if err != nil {
		return nil, err
	}
	b := NewUnionBuilder(ud)
	b.kind, b.value = kind, v
	return b.Build()
}

// UnionSchema describes ud as a oneOf over its variants.
func UnionSchema(ud *UnionDescriptor, defs *Definitions) *js.Schema {
	return defs.Ref(ud.name, func() *js.Schema {
		base := objectSchema(ud.container, defs)
		s := &js.Schema{Title: ud.name}
		for _, v := range ud.variants {
			alt := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}, Required: []string{v.kind}}
			for k, p := range base.Properties {
				alt.Properties[k] = p
			}
			alt.Required = append(alt.Required, slices.Clone(base.Required)...)
			alt.Properties[v.kind] = v.ops.schema(defs)
			s.OneOf = append(s.OneOf, alt)
		}
		return s
	})
}

// VariantSchemas returns the schema of each variant value of ud, for
// encodings that write the value without its kind key.
func VariantSchemas(ud *UnionDescriptor, defs *Definitions) []*js.Schema {
	out := make([]*js.Schema, len(ud.variants))
	for i, v := range ud.variants {
		out[i] = v.ops.schema(defs)
	}
	return out
}
