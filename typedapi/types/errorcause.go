package types

import (
	"github.com/reoring/esmodel"
	js "github.com/reoring/esmodel/jsonschema"
)

// ErrorCause describes a server-side failure and its chain of causes.
type ErrorCause struct{ obj *esmodel.Object }

// errorCauseCodec is a named type so that the descriptor below can refer to
// it for caused_by without an initialization cycle.
type errorCauseCodec struct{}

// ErrorCauseCodec encodes and decodes ErrorCause values.
var ErrorCauseCodec esmodel.Codec[*ErrorCause] = errorCauseCodec{}

func (errorCauseCodec) Encode(g esmodel.Generator, v *ErrorCause) error {
	return esmodel.SerializeObject(g, v.object())
}

func (errorCauseCodec) Decode(d *esmodel.Decoder) (*ErrorCause, error) {
	o, err := esmodel.DecodeObject(d, errorCauseDescriptor)
	if err != nil {
		return nil, err
	}
	return &ErrorCause{obj: o}, nil
}

func (errorCauseCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return esmodel.DescriptorSchema(errorCauseDescriptor, defs)
}

var errorCauseDescriptor = esmodel.NewDescriptor("ErrorCause", nil,
	esmodel.ScalarField("type", "type", esmodel.String).Required(),
	esmodel.ScalarField("reason", "reason", esmodel.String),
	esmodel.ScalarField("stackTrace", "stack_trace", esmodel.String),
	esmodel.ScalarField("causedBy", "caused_by", esmodel.Codec[*ErrorCause](errorCauseCodec{})),
	esmodel.ListField("rootCause", "root_cause", esmodel.Codec[*ErrorCause](errorCauseCodec{})),
	esmodel.ListField("suppressed", "suppressed", esmodel.Codec[*ErrorCause](errorCauseCodec{})),
)

var (
	errorCauseType       = errorCauseDescriptor.Key("type")
	errorCauseReason     = errorCauseDescriptor.Key("reason")
	errorCauseStackTrace = errorCauseDescriptor.Key("stackTrace")
	errorCauseCausedBy   = errorCauseDescriptor.Key("causedBy")
	errorCauseRootCause  = errorCauseDescriptor.Key("rootCause")
	errorCauseSuppressed = errorCauseDescriptor.Key("suppressed")
)

func (m *ErrorCause) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *ErrorCause) Type() string        { return esmodel.Get[string](m.object(), errorCauseType) }
func (m *ErrorCause) Reason() *string     { return esmodel.GetOpt[string](m.object(), errorCauseReason) }
func (m *ErrorCause) StackTrace() *string { return esmodel.GetOpt[string](m.object(), errorCauseStackTrace) }

func (m *ErrorCause) CausedBy() *ErrorCause {
	return esmodel.Get[*ErrorCause](m.object(), errorCauseCausedBy)
}

func (m *ErrorCause) RootCause() esmodel.List[*ErrorCause] {
	return esmodel.GetList[*ErrorCause](m.object(), errorCauseRootCause)
}

func (m *ErrorCause) Suppressed() esmodel.List[*ErrorCause] {
	return esmodel.GetList[*ErrorCause](m.object(), errorCauseSuppressed)
}

// Error renders the cause chain, so an ErrorCause can be returned as an
// error by transports.
func (m *ErrorCause) Error() string {
	s := m.Type()
	if r := m.Reason(); r != nil {
		s += ": " + *r
	}
	if c := m.CausedBy(); c != nil {
		s += " (caused by " + c.Error() + ")"
	}
	return s
}

func (m *ErrorCause) ToBuilder() *ErrorCauseBuilder {
	return &ErrorCauseBuilder{ob: m.obj.ToBuilder()}
}

type ErrorCauseBuilder struct{ ob *esmodel.ObjectBuilder }

func NewErrorCauseBuilder() *ErrorCauseBuilder {
	return &ErrorCauseBuilder{ob: esmodel.NewObjectBuilder(errorCauseDescriptor)}
}

func ErrorCauseOf(fn func(*ErrorCauseBuilder)) (*ErrorCause, error) {
	b := NewErrorCauseBuilder()
	fn(b)
	return b.Build()
}

func (b *ErrorCauseBuilder) Type(v string) *ErrorCauseBuilder {
	b.ob.Set(errorCauseType, v)
	return b
}

func (b *ErrorCauseBuilder) Reason(v *string) *ErrorCauseBuilder {
	esmodel.SetOpt(b.ob, errorCauseReason, v)
	return b
}

func (b *ErrorCauseBuilder) StackTrace(v *string) *ErrorCauseBuilder {
	esmodel.SetOpt(b.ob, errorCauseStackTrace, v)
	return b
}

func (b *ErrorCauseBuilder) CausedBy(v *ErrorCause) *ErrorCauseBuilder {
	b.ob.Set(errorCauseCausedBy, v)
	return b
}

func (b *ErrorCauseBuilder) CausedByFn(fn func(*ErrorCauseBuilder)) *ErrorCauseBuilder {
	v, err := ErrorCauseOf(fn)
	esmodel.SetBuilt(b.ob, errorCauseCausedBy, v, err)
	return b
}

func (b *ErrorCauseBuilder) RootCause(list []*ErrorCause) *ErrorCauseBuilder {
	esmodel.SetList(b.ob, errorCauseRootCause, list)
	return b
}

func (b *ErrorCauseBuilder) AddRootCause(v ...*ErrorCause) *ErrorCauseBuilder {
	esmodel.AppendList(b.ob, errorCauseRootCause, v...)
	return b
}

func (b *ErrorCauseBuilder) AddRootCauseFn(fn func(*ErrorCauseBuilder)) *ErrorCauseBuilder {
	v, err := ErrorCauseOf(fn)
	esmodel.AppendBuilt(b.ob, errorCauseRootCause, v, err)
	return b
}

func (b *ErrorCauseBuilder) Suppressed(list []*ErrorCause) *ErrorCauseBuilder {
	esmodel.SetList(b.ob, errorCauseSuppressed, list)
	return b
}

func (b *ErrorCauseBuilder) AddSuppressed(v ...*ErrorCause) *ErrorCauseBuilder {
	esmodel.AppendList(b.ob, errorCauseSuppressed, v...)
	return b
}

func (b *ErrorCauseBuilder) Build() (*ErrorCause, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &ErrorCause{obj: o}, nil
}
