package types

import (
	"strings"

	"github.com/reoring/esmodel"
	js "github.com/reoring/esmodel/jsonschema"
)

// IntervalsAllOf matches when all of its rules match.
type IntervalsAllOf struct{ obj *esmodel.Object }

var intervalsAllOfDescriptor = esmodel.NewDescriptor("IntervalsAllOf", nil,
	esmodel.ListField("intervals", "intervals", esmodel.Codec[*Intervals](intervalsCodec{})).Required(),
	esmodel.ScalarField("maxGaps", "max_gaps", esmodel.Int),
	esmodel.ScalarField("ordered", "ordered", esmodel.Bool),
)

var (
	intervalsAllOfIntervals = intervalsAllOfDescriptor.Key("intervals")
	intervalsAllOfMaxGaps   = intervalsAllOfDescriptor.Key("maxGaps")
	intervalsAllOfOrdered   = intervalsAllOfDescriptor.Key("ordered")
)

var IntervalsAllOfCodec = esmodel.ModelCodec(intervalsAllOfDescriptor,
	func(o *esmodel.Object) *IntervalsAllOf { return &IntervalsAllOf{obj: o} },
	(*IntervalsAllOf).object)

func (m *IntervalsAllOf) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *IntervalsAllOf) Intervals() esmodel.List[*Intervals] {
	return esmodel.GetList[*Intervals](m.object(), intervalsAllOfIntervals)
}

func (m *IntervalsAllOf) MaxGaps() *int  { return esmodel.GetOpt[int](m.object(), intervalsAllOfMaxGaps) }
func (m *IntervalsAllOf) Ordered() *bool { return esmodel.GetOpt[bool](m.object(), intervalsAllOfOrdered) }

type IntervalsAllOfBuilder struct{ ob *esmodel.ObjectBuilder }

func NewIntervalsAllOfBuilder() *IntervalsAllOfBuilder {
	return &IntervalsAllOfBuilder{ob: esmodel.NewObjectBuilder(intervalsAllOfDescriptor)}
}

func IntervalsAllOfOf(fn func(*IntervalsAllOfBuilder)) (*IntervalsAllOf, error) {
	b := NewIntervalsAllOfBuilder()
	fn(b)
	return b.Build()
}

// Intervals replaces the rule list. An empty list is sent as [].
func (b *IntervalsAllOfBuilder) Intervals(list []*Intervals) *IntervalsAllOfBuilder {
	esmodel.SetList(b.ob, intervalsAllOfIntervals, list)
	return b
}

func (b *IntervalsAllOfBuilder) AddIntervals(v ...*Intervals) *IntervalsAllOfBuilder {
	esmodel.AppendList(b.ob, intervalsAllOfIntervals, v...)
	return b
}

func (b *IntervalsAllOfBuilder) AddIntervalsFn(fn func(*IntervalsBuilder)) *IntervalsAllOfBuilder {
	v, err := IntervalsOf(fn)
	esmodel.AppendBuilt(b.ob, intervalsAllOfIntervals, v, err)
	return b
}

func (b *IntervalsAllOfBuilder) MaxGaps(v *int) *IntervalsAllOfBuilder {
	esmodel.SetOpt(b.ob, intervalsAllOfMaxGaps, v)
	return b
}

func (b *IntervalsAllOfBuilder) Ordered(v *bool) *IntervalsAllOfBuilder {
	esmodel.SetOpt(b.ob, intervalsAllOfOrdered, v)
	return b
}

func (b *IntervalsAllOfBuilder) Build() (*IntervalsAllOf, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &IntervalsAllOf{obj: o}, nil
}

// IntervalsMatch matches the analyzed terms of Query.
type IntervalsMatch struct{ obj *esmodel.Object }

var intervalsMatchDescriptor = esmodel.NewDescriptor("IntervalsMatch", nil,
	esmodel.ScalarField("query", "query", esmodel.String).Required(),
	esmodel.ScalarField("maxGaps", "max_gaps", esmodel.Int),
	esmodel.ScalarField("ordered", "ordered", esmodel.Bool),
	esmodel.ScalarField("analyzer", "analyzer", esmodel.String),
)

var (
	intervalsMatchQuery    = intervalsMatchDescriptor.Key("query")
	intervalsMatchMaxGaps  = intervalsMatchDescriptor.Key("maxGaps")
	intervalsMatchOrdered  = intervalsMatchDescriptor.Key("ordered")
	intervalsMatchAnalyzer = intervalsMatchDescriptor.Key("analyzer")
)

var IntervalsMatchCodec = esmodel.ModelCodec(intervalsMatchDescriptor,
	func(o *esmodel.Object) *IntervalsMatch { return &IntervalsMatch{obj: o} },
	(*IntervalsMatch).object)

func (m *IntervalsMatch) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *IntervalsMatch) Query() string     { return esmodel.Get[string](m.object(), intervalsMatchQuery) }
func (m *IntervalsMatch) MaxGaps() *int     { return esmodel.GetOpt[int](m.object(), intervalsMatchMaxGaps) }
func (m *IntervalsMatch) Ordered() *bool    { return esmodel.GetOpt[bool](m.object(), intervalsMatchOrdered) }
func (m *IntervalsMatch) Analyzer() *string { return esmodel.GetOpt[string](m.object(), intervalsMatchAnalyzer) }

type IntervalsMatchBuilder struct{ ob *esmodel.ObjectBuilder }

func NewIntervalsMatchBuilder() *IntervalsMatchBuilder {
	return &IntervalsMatchBuilder{ob: esmodel.NewObjectBuilder(intervalsMatchDescriptor)}
}

func IntervalsMatchOf(fn func(*IntervalsMatchBuilder)) (*IntervalsMatch, error) {
	b := NewIntervalsMatchBuilder()
	fn(b)
	return b.Build()
}

func (b *IntervalsMatchBuilder) Query(v string) *IntervalsMatchBuilder {
	b.ob.Set(intervalsMatchQuery, v)
	return b
}

func (b *IntervalsMatchBuilder) MaxGaps(v *int) *IntervalsMatchBuilder {
	esmodel.SetOpt(b.ob, intervalsMatchMaxGaps, v)
	return b
}

func (b *IntervalsMatchBuilder) Ordered(v *bool) *IntervalsMatchBuilder {
	esmodel.SetOpt(b.ob, intervalsMatchOrdered, v)
	return b
}

func (b *IntervalsMatchBuilder) Analyzer(v *string) *IntervalsMatchBuilder {
	esmodel.SetOpt(b.ob, intervalsMatchAnalyzer, v)
	return b
}

func (b *IntervalsMatchBuilder) Build() (*IntervalsMatch, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &IntervalsMatch{obj: o}, nil
}

// IntervalsKind names a rule of an intervals query.
type IntervalsKind string

const (
	IntervalsKindAllOf IntervalsKind = "all_of"
	IntervalsKindMatch IntervalsKind = "match"
)

// intervalsCodec is named so that IntervalsAllOf can nest Intervals.
type intervalsCodec struct{}

var IntervalsCodec esmodel.Codec[*Intervals] = intervalsCodec{}

func (intervalsCodec) Encode(g esmodel.Generator, v *Intervals) error {
	return esmodel.SerializeUnion(g, v.union())
}

func (intervalsCodec) Decode(d *esmodel.Decoder) (*Intervals, error) {
	u, err := esmodel.DecodeUnion(d, intervalsDescriptor)
	if err != nil {
		return nil, err
	}
	return &Intervals{u: u}, nil
}

func (intervalsCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return esmodel.UnionSchema(intervalsDescriptor, defs)
}

var intervalsDescriptor = esmodel.NewUnionDescriptor("Intervals", nil,
	esmodel.VariantOf(string(IntervalsKindAllOf), IntervalsAllOfCodec),
	esmodel.VariantOf(string(IntervalsKindMatch), IntervalsMatchCodec),
)

// Intervals is one interval rule.
type Intervals struct{ u *esmodel.Union }

func (i *Intervals) union() *esmodel.Union {
	if i == nil {
		return nil
	}
	return i.u
}

func (i *Intervals) Kind() IntervalsKind { return IntervalsKind(i.union().Kind()) }

func (i *Intervals) AllOf() (*IntervalsAllOf, bool) {
	return esmodel.UnionValue[*IntervalsAllOf](i.union(), string(IntervalsKindAllOf))
}

func (i *Intervals) Match() (*IntervalsMatch, bool) {
	return esmodel.UnionValue[*IntervalsMatch](i.union(), string(IntervalsKindMatch))
}

type IntervalsBuilder struct{ ub *esmodel.UnionBuilder }

func NewIntervalsBuilder() *IntervalsBuilder {
	return &IntervalsBuilder{ub: esmodel.NewUnionBuilder(intervalsDescriptor)}
}

func IntervalsOf(fn func(*IntervalsBuilder)) (*Intervals, error) {
	b := NewIntervalsBuilder()
	fn(b)
	return b.Build()
}

func (b *IntervalsBuilder) AllOf(v *IntervalsAllOf) *IntervalsBuilder {
	b.ub.Select(string(IntervalsKindAllOf), v)
	return b
}

func (b *IntervalsBuilder) AllOfFn(fn func(*IntervalsAllOfBuilder)) *IntervalsBuilder {
	v, err := IntervalsAllOfOf(fn)
	esmodel.SelectBuilt(b.ub, string(IntervalsKindAllOf), v, err)
	return b
}

func (b *IntervalsBuilder) Match(v *IntervalsMatch) *IntervalsBuilder {
	b.ub.Select(string(IntervalsKindMatch), v)
	return b
}

func (b *IntervalsBuilder) MatchFn(fn func(*IntervalsMatchBuilder)) *IntervalsBuilder {
	v, err := IntervalsMatchOf(fn)
	esmodel.SelectBuilt(b.ub, string(IntervalsKindMatch), v, err)
	return b
}

func (b *IntervalsBuilder) Build() (*Intervals, error) {
	u, err := b.ub.Build()
	if err != nil {
		return nil, err
	}
	return &Intervals{u: u}, nil
}

// IntervalsQuery is both a QueryBase and a union of interval rules, keyed by
// the field it searches:
//
//	{"my_text": {"boost": 2.0, "all_of": {"intervals": [...]}}}
type IntervalsQuery struct {
	QueryBase
	u *esmodel.Union
}

var intervalsQueryContainerDescriptor = esmodel.NewDescriptor("IntervalsQuery", queryBaseDescriptor,
	esmodel.ScalarField("field", "field", esmodel.String).Required().In(esmodel.InKey),
)

var intervalsQueryField = intervalsQueryContainerDescriptor.Key("field")

var intervalsQueryDescriptor = esmodel.NewUnionDescriptor("IntervalsQuery", intervalsQueryContainerDescriptor,
	esmodel.VariantOf(string(IntervalsKindAllOf), IntervalsAllOfCodec),
	esmodel.VariantOf(string(IntervalsKindMatch), IntervalsMatchCodec),
)

type intervalsQueryCodec struct{}

var IntervalsQueryCodec esmodel.Codec[*IntervalsQuery] = intervalsQueryCodec{}

func (intervalsQueryCodec) Encode(g esmodel.Generator, v *IntervalsQuery) error {
	u := v.union()
	g.WriteStartObject()
	g.WriteKey(esmodel.Get[string](u.Container(), intervalsQueryField))
	if err := esmodel.SerializeUnion(g, u); err != nil {
		return err
	}
	g.WriteEnd()
	return nil
}

func (intervalsQueryCodec) Decode(d *esmodel.Decoder) (*IntervalsQuery, error) {
	ub := esmodel.NewUnionBuilder(intervalsQueryDescriptor)
	err := decodeFieldKeyed(d, ub.Container(), intervalsQueryField, func() error {
		start := d.Path()
		var keys []string
		err := d.ReadObject(func(key string) error {
			keys = append(keys, key)
			_, err := esmodel.DeserializeUnionField(d, ub, key)
			return err
		})
		if err != nil {
			return err
		}
		if ub.Kind() == "" {
			return &esmodel.UnrecognizedWireValueError{
				Path:     start,
				Expected: "IntervalsQuery rule (" + strings.Join(intervalsQueryDescriptor.Kinds(), "|") + ")",
				Got:      "object with keys [" + strings.Join(keys, ",") + "]",
				Offset:   d.Location(),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newIntervalsQuery(ub.Build())
}

func (intervalsQueryCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return fieldKeyedSchema(esmodel.UnionSchema(intervalsQueryDescriptor, defs))
}

func newIntervalsQuery(u *esmodel.Union, err error) (*IntervalsQuery, error) {
	if err != nil {
		return nil, err
	}
	return &IntervalsQuery{QueryBase: QueryBase{obj: u.Container()}, u: u}, nil
}

func (q *IntervalsQuery) union() *esmodel.Union {
	if q == nil {
		return nil
	}
	return q.u
}

func (q *IntervalsQuery) Field() string {
	return esmodel.Get[string](q.union().Container(), intervalsQueryField)
}

func (q *IntervalsQuery) Kind() IntervalsKind { return IntervalsKind(q.union().Kind()) }

func (q *IntervalsQuery) AllOf() (*IntervalsAllOf, bool) {
	return esmodel.UnionValue[*IntervalsAllOf](q.union(), string(IntervalsKindAllOf))
}

func (q *IntervalsQuery) Match() (*IntervalsMatch, bool) {
	return esmodel.UnionValue[*IntervalsMatch](q.union(), string(IntervalsKindMatch))
}

// IntervalsQueryBuilder sets the QueryBase fields on the union container.
type IntervalsQueryBuilder struct {
	QueryBaseFields[*IntervalsQueryBuilder]
	ub *esmodel.UnionBuilder
}

func NewIntervalsQueryBuilder() *IntervalsQueryBuilder {
	b := &IntervalsQueryBuilder{ub: esmodel.NewUnionBuilder(intervalsQueryDescriptor)}
	b.ob, b.self = b.ub.Container(), b
	return b
}

func IntervalsQueryOf(fn func(*IntervalsQueryBuilder)) (*IntervalsQuery, error) {
	b := NewIntervalsQueryBuilder()
	fn(b)
	return b.Build()
}

func (b *IntervalsQueryBuilder) Field(v string) *IntervalsQueryBuilder {
	b.ob.Set(intervalsQueryField, v)
	return b
}

func (b *IntervalsQueryBuilder) AllOf(v *IntervalsAllOf) *IntervalsQueryBuilder {
	b.ub.Select(string(IntervalsKindAllOf), v)
	return b
}

func (b *IntervalsQueryBuilder) AllOfFn(fn func(*IntervalsAllOfBuilder)) *IntervalsQueryBuilder {
	v, err := IntervalsAllOfOf(fn)
	esmodel.SelectBuilt(b.ub, string(IntervalsKindAllOf), v, err)
	return b
}

func (b *IntervalsQueryBuilder) Match(v *IntervalsMatch) *IntervalsQueryBuilder {
	b.ub.Select(string(IntervalsKindMatch), v)
	return b
}

func (b *IntervalsQueryBuilder) MatchFn(fn func(*IntervalsMatchBuilder)) *IntervalsQueryBuilder {
	v, err := IntervalsMatchOf(fn)
	esmodel.SelectBuilt(b.ub, string(IntervalsKindMatch), v, err)
	return b
}

func (b *IntervalsQueryBuilder) Build() (*IntervalsQuery, error) {
	return newIntervalsQuery(b.ub.Build())
}
