package types

import (
	"github.com/reoring/esmodel"
)

// FieldAndFormat names a field to return, with an optional format.
type FieldAndFormat struct{ obj *esmodel.Object }

var fieldAndFormatDescriptor = esmodel.NewDescriptor("FieldAndFormat", nil,
	esmodel.ScalarField("field", "field", esmodel.String).Required(),
	esmodel.ScalarField("format", "format", esmodel.String),
	esmodel.ScalarField("includeUnmapped", "include_unmapped", esmodel.Bool),
)

var (
	fieldAndFormatField           = fieldAndFormatDescriptor.Key("field")
	fieldAndFormatFormat          = fieldAndFormatDescriptor.Key("format")
	fieldAndFormatIncludeUnmapped = fieldAndFormatDescriptor.Key("includeUnmapped")
)

var FieldAndFormatCodec = esmodel.ModelCodec(fieldAndFormatDescriptor,
	func(o *esmodel.Object) *FieldAndFormat { return &FieldAndFormat{obj: o} },
	(*FieldAndFormat).object)

func (m *FieldAndFormat) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *FieldAndFormat) Field() string   { return esmodel.Get[string](m.object(), fieldAndFormatField) }
func (m *FieldAndFormat) Format() *string { return esmodel.GetOpt[string](m.object(), fieldAndFormatFormat) }

func (m *FieldAndFormat) IncludeUnmapped() *bool {
	return esmodel.GetOpt[bool](m.object(), fieldAndFormatIncludeUnmapped)
}

type FieldAndFormatBuilder struct{ ob *esmodel.ObjectBuilder }

func NewFieldAndFormatBuilder() *FieldAndFormatBuilder {
	return &FieldAndFormatBuilder{ob: esmodel.NewObjectBuilder(fieldAndFormatDescriptor)}
}

func FieldAndFormatOf(fn func(*FieldAndFormatBuilder)) (*FieldAndFormat, error) {
	b := NewFieldAndFormatBuilder()
	fn(b)
	return b.Build()
}

func (b *FieldAndFormatBuilder) Field(v string) *FieldAndFormatBuilder {
	b.ob.Set(fieldAndFormatField, v)
	return b
}

func (b *FieldAndFormatBuilder) Format(v *string) *FieldAndFormatBuilder {
	esmodel.SetOpt(b.ob, fieldAndFormatFormat, v)
	return b
}

func (b *FieldAndFormatBuilder) IncludeUnmapped(v *bool) *FieldAndFormatBuilder {
	esmodel.SetOpt(b.ob, fieldAndFormatIncludeUnmapped, v)
	return b
}

func (b *FieldAndFormatBuilder) Build() (*FieldAndFormat, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &FieldAndFormat{obj: o}, nil
}

// NodeInfoSettingsTransportType is the transport type of a node's settings.
type NodeInfoSettingsTransportType struct{ obj *esmodel.Object }

var nodeInfoSettingsTransportTypeDescriptor = esmodel.NewDescriptor("NodeInfoSettingsTransportType", nil,
	esmodel.ScalarField("default", "default", esmodel.String).Required(),
)

var nodeInfoSettingsTransportTypeDefault = nodeInfoSettingsTransportTypeDescriptor.Key("default")

var NodeInfoSettingsTransportTypeCodec = esmodel.ModelCodec(nodeInfoSettingsTransportTypeDescriptor,
	func(o *esmodel.Object) *NodeInfoSettingsTransportType { return &NodeInfoSettingsTransportType{obj: o} },
	(*NodeInfoSettingsTransportType).object)

func (m *NodeInfoSettingsTransportType) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *NodeInfoSettingsTransportType) Default() string {
	return esmodel.Get[string](m.object(), nodeInfoSettingsTransportTypeDefault)
}

type NodeInfoSettingsTransportTypeBuilder struct{ ob *esmodel.ObjectBuilder }

func NewNodeInfoSettingsTransportTypeBuilder() *NodeInfoSettingsTransportTypeBuilder {
	return &NodeInfoSettingsTransportTypeBuilder{ob: esmodel.NewObjectBuilder(nodeInfoSettingsTransportTypeDescriptor)}
}

func NodeInfoSettingsTransportTypeOf(fn func(*NodeInfoSettingsTransportTypeBuilder)) (*NodeInfoSettingsTransportType, error) {
	b := NewNodeInfoSettingsTransportTypeBuilder()
	fn(b)
	return b.Build()
}

func (b *NodeInfoSettingsTransportTypeBuilder) Default(v string) *NodeInfoSettingsTransportTypeBuilder {
	b.ob.Set(nodeInfoSettingsTransportTypeDefault, v)
	return b
}

func (b *NodeInfoSettingsTransportTypeBuilder) Build() (*NodeInfoSettingsTransportType, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &NodeInfoSettingsTransportType{obj: o}, nil
}
