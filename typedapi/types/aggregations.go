package types

import (
	"github.com/reoring/esmodel"
	js "github.com/reoring/esmodel/jsonschema"
)

// MetricAggregationBase holds the fields of every metric aggregation.
type MetricAggregationBase struct{ obj *esmodel.Object }

var metricAggregationBaseDescriptor = esmodel.NewDescriptor("MetricAggregationBase", nil,
	esmodel.ScalarField("field", "field", esmodel.String),
	esmodel.ScalarField("missing", "missing", esmodel.RawJSON),
)

var (
	metricAggregationField   = metricAggregationBaseDescriptor.Key("field")
	metricAggregationMissing = metricAggregationBaseDescriptor.Key("missing")
)

func (m *MetricAggregationBase) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *MetricAggregationBase) Field() *string {
	return esmodel.GetOpt[string](m.object(), metricAggregationField)
}

func (m *MetricAggregationBase) Missing() *esmodel.JSONData {
	return esmodel.GetOpt[esmodel.JSONData](m.object(), metricAggregationMissing)
}

type MetricAggregationFields[B any] struct {
	ob   *esmodel.ObjectBuilder
	self B
}

func (b *MetricAggregationFields[B]) Field(v *string) B {
	esmodel.SetOpt(b.ob, metricAggregationField, v)
	return b.self
}

func (b *MetricAggregationFields[B]) Missing(v *esmodel.JSONData) B {
	esmodel.SetOpt(b.ob, metricAggregationMissing, v)
	return b.self
}

// CardinalityAggregation counts distinct values.
type CardinalityAggregation struct{ MetricAggregationBase }

var cardinalityAggregationDescriptor = esmodel.NewDescriptor("CardinalityAggregation", metricAggregationBaseDescriptor,
	esmodel.ScalarField("precisionThreshold", "precision_threshold", esmodel.Int),
	esmodel.ScalarField("rehash", "rehash", esmodel.Bool),
)

var (
	cardinalityAggregationPrecisionThreshold = cardinalityAggregationDescriptor.Key("precisionThreshold")
	cardinalityAggregationRehash             = cardinalityAggregationDescriptor.Key("rehash")
)

var CardinalityAggregationCodec = esmodel.ModelCodec(cardinalityAggregationDescriptor,
	func(o *esmodel.Object) *CardinalityAggregation {
		return &CardinalityAggregation{MetricAggregationBase{obj: o}}
	},
	func(m *CardinalityAggregation) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

func (m *CardinalityAggregation) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *CardinalityAggregation) PrecisionThreshold() *int {
	return esmodel.GetOpt[int](m.object(), cardinalityAggregationPrecisionThreshold)
}

func (m *CardinalityAggregation) Rehash() *bool {
	return esmodel.GetOpt[bool](m.object(), cardinalityAggregationRehash)
}

type CardinalityAggregationBuilder struct {
	MetricAggregationFields[*CardinalityAggregationBuilder]
}

func NewCardinalityAggregationBuilder() *CardinalityAggregationBuilder {
	b := &CardinalityAggregationBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(cardinalityAggregationDescriptor), b
	return b
}

func CardinalityAggregationOf(fn func(*CardinalityAggregationBuilder)) (*CardinalityAggregation, error) {
	b := NewCardinalityAggregationBuilder()
	fn(b)
	return b.Build()
}

func (b *CardinalityAggregationBuilder) PrecisionThreshold(v *int) *CardinalityAggregationBuilder {
	esmodel.SetOpt(b.ob, cardinalityAggregationPrecisionThreshold, v)
	return b
}

func (b *CardinalityAggregationBuilder) Rehash(v *bool) *CardinalityAggregationBuilder {
	esmodel.SetOpt(b.ob, cardinalityAggregationRehash, v)
	return b
}

func (b *CardinalityAggregationBuilder) Build() (*CardinalityAggregation, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &CardinalityAggregation{MetricAggregationBase{obj: o}}, nil
}

// FormattableMetricAggregation is a metric aggregation with an output
// format.
type FormattableMetricAggregation struct{ MetricAggregationBase }

var formattableMetricAggregationDescriptor = esmodel.NewDescriptor("FormattableMetricAggregation", metricAggregationBaseDescriptor,
	esmodel.ScalarField("format", "format", esmodel.String),
)

var formattableMetricAggregationFormat = formattableMetricAggregationDescriptor.Key("format")

func (m *FormattableMetricAggregation) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *FormattableMetricAggregation) Format() *string {
	return esmodel.GetOpt[string](m.object(), formattableMetricAggregationFormat)
}

type FormattableMetricAggregationFields[B any] struct{ MetricAggregationFields[B] }

func (b *FormattableMetricAggregationFields[B]) Format(v *string) B {
	esmodel.SetOpt(b.ob, formattableMetricAggregationFormat, v)
	return b.self
}

// ValueCountAggregation counts values.
type ValueCountAggregation struct{ FormattableMetricAggregation }

var valueCountAggregationDescriptor = esmodel.NewDescriptor("ValueCountAggregation", formattableMetricAggregationDescriptor)

var ValueCountAggregationCodec = esmodel.ModelCodec(valueCountAggregationDescriptor,
	func(o *esmodel.Object) *ValueCountAggregation {
		return &ValueCountAggregation{FormattableMetricAggregation{MetricAggregationBase{obj: o}}}
	},
	func(m *ValueCountAggregation) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

type ValueCountAggregationBuilder struct {
	FormattableMetricAggregationFields[*ValueCountAggregationBuilder]
}

func NewValueCountAggregationBuilder() *ValueCountAggregationBuilder {
	b := &ValueCountAggregationBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(valueCountAggregationDescriptor), b
	return b
}

func ValueCountAggregationOf(fn func(*ValueCountAggregationBuilder)) (*ValueCountAggregation, error) {
	b := NewValueCountAggregationBuilder()
	fn(b)
	return b.Build()
}

func (b *ValueCountAggregationBuilder) Build() (*ValueCountAggregation, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &ValueCountAggregation{FormattableMetricAggregation{MetricAggregationBase{obj: o}}}, nil
}

// DateRangeExpression is one range of a date_range aggregation. Bounds are
// date math expressions ("now-10M/M").
type DateRangeExpression struct{ obj *esmodel.Object }

var dateRangeExpressionDescriptor = esmodel.NewDescriptor("DateRangeExpression", nil,
	esmodel.ScalarField("from", "from", esmodel.String),
	esmodel.ScalarField("to", "to", esmodel.String),
	esmodel.ScalarField("key", "key", esmodel.String),
)

var (
	dateRangeExpressionFrom = dateRangeExpressionDescriptor.Key("from")
	dateRangeExpressionTo   = dateRangeExpressionDescriptor.Key("to")
	dateRangeExpressionKey  = dateRangeExpressionDescriptor.Key("key")
)

var DateRangeExpressionCodec = esmodel.ModelCodec(dateRangeExpressionDescriptor,
	func(o *esmodel.Object) *DateRangeExpression { return &DateRangeExpression{obj: o} },
	func(m *DateRangeExpression) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

func (m *DateRangeExpression) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *DateRangeExpression) From() *string { return esmodel.GetOpt[string](m.object(), dateRangeExpressionFrom) }
func (m *DateRangeExpression) To() *string   { return esmodel.GetOpt[string](m.object(), dateRangeExpressionTo) }
func (m *DateRangeExpression) Key() *string  { return esmodel.GetOpt[string](m.object(), dateRangeExpressionKey) }

type DateRangeExpressionBuilder struct{ ob *esmodel.ObjectBuilder }

func NewDateRangeExpressionBuilder() *DateRangeExpressionBuilder {
	return &DateRangeExpressionBuilder{ob: esmodel.NewObjectBuilder(dateRangeExpressionDescriptor)}
}

func DateRangeExpressionOf(fn func(*DateRangeExpressionBuilder)) (*DateRangeExpression, error) {
	b := NewDateRangeExpressionBuilder()
	fn(b)
	return b.Build()
}

func (b *DateRangeExpressionBuilder) From(v *string) *DateRangeExpressionBuilder {
	esmodel.SetOpt(b.ob, dateRangeExpressionFrom, v)
	return b
}

func (b *DateRangeExpressionBuilder) To(v *string) *DateRangeExpressionBuilder {
	esmodel.SetOpt(b.ob, dateRangeExpressionTo, v)
	return b
}

func (b *DateRangeExpressionBuilder) Key(v *string) *DateRangeExpressionBuilder {
	esmodel.SetOpt(b.ob, dateRangeExpressionKey, v)
	return b
}

func (b *DateRangeExpressionBuilder) Build() (*DateRangeExpression, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &DateRangeExpression{obj: o}, nil
}

// DateRangeAggregation buckets documents by date ranges.
type DateRangeAggregation struct{ obj *esmodel.Object }

var dateRangeAggregationDescriptor = esmodel.NewDescriptor("DateRangeAggregation", nil,
	esmodel.ScalarField("field", "field", esmodel.String),
	esmodel.ScalarField("format", "format", esmodel.String),
	esmodel.ListField("ranges", "ranges", DateRangeExpressionCodec),
	esmodel.ScalarField("keyed", "keyed", esmodel.Bool),
	esmodel.ScalarField("timeZone", "time_zone", esmodel.String),
)

var (
	dateRangeAggregationField    = dateRangeAggregationDescriptor.Key("field")
	dateRangeAggregationFormat   = dateRangeAggregationDescriptor.Key("format")
	dateRangeAggregationRanges   = dateRangeAggregationDescriptor.Key("ranges")
	dateRangeAggregationKeyed    = dateRangeAggregationDescriptor.Key("keyed")
	dateRangeAggregationTimeZone = dateRangeAggregationDescriptor.Key("timeZone")
)

var DateRangeAggregationCodec = esmodel.ModelCodec(dateRangeAggregationDescriptor,
	func(o *esmodel.Object) *DateRangeAggregation { return &DateRangeAggregation{obj: o} },
	func(m *DateRangeAggregation) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

func (m *DateRangeAggregation) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *DateRangeAggregation) Field() *string {
	return esmodel.GetOpt[string](m.object(), dateRangeAggregationField)
}

func (m *DateRangeAggregation) Format() *string {
	return esmodel.GetOpt[string](m.object(), dateRangeAggregationFormat)
}

func (m *DateRangeAggregation) Ranges() esmodel.List[*DateRangeExpression] {
	return esmodel.GetList[*DateRangeExpression](m.object(), dateRangeAggregationRanges)
}

func (m *DateRangeAggregation) Keyed() *bool {
	return esmodel.GetOpt[bool](m.object(), dateRangeAggregationKeyed)
}

func (m *DateRangeAggregation) TimeZone() *string {
	return esmodel.GetOpt[string](m.object(), dateRangeAggregationTimeZone)
}

type DateRangeAggregationBuilder struct{ ob *esmodel.ObjectBuilder }

func NewDateRangeAggregationBuilder() *DateRangeAggregationBuilder {
	return &DateRangeAggregationBuilder{ob: esmodel.NewObjectBuilder(dateRangeAggregationDescriptor)}
}

func DateRangeAggregationOf(fn func(*DateRangeAggregationBuilder)) (*DateRangeAggregation, error) {
	b := NewDateRangeAggregationBuilder()
	fn(b)
	return b.Build()
}

func (b *DateRangeAggregationBuilder) Field(v *string) *DateRangeAggregationBuilder {
	esmodel.SetOpt(b.ob, dateRangeAggregationField, v)
	return b
}

func (b *DateRangeAggregationBuilder) Format(v *string) *DateRangeAggregationBuilder {
	esmodel.SetOpt(b.ob, dateRangeAggregationFormat, v)
	return b
}

func (b *DateRangeAggregationBuilder) Ranges(list []*DateRangeExpression) *DateRangeAggregationBuilder {
	esmodel.SetList(b.ob, dateRangeAggregationRanges, list)
	return b
}

func (b *DateRangeAggregationBuilder) AddRanges(v ...*DateRangeExpression) *DateRangeAggregationBuilder {
	esmodel.AppendList(b.ob, dateRangeAggregationRanges, v...)
	return b
}

func (b *DateRangeAggregationBuilder) AddRangesFn(fn func(*DateRangeExpressionBuilder)) *DateRangeAggregationBuilder {
	v, err := DateRangeExpressionOf(fn)
	esmodel.AppendBuilt(b.ob, dateRangeAggregationRanges, v, err)
	return b
}

func (b *DateRangeAggregationBuilder) Keyed(v *bool) *DateRangeAggregationBuilder {
	esmodel.SetOpt(b.ob, dateRangeAggregationKeyed, v)
	return b
}

func (b *DateRangeAggregationBuilder) TimeZone(v *string) *DateRangeAggregationBuilder {
	esmodel.SetOpt(b.ob, dateRangeAggregationTimeZone, v)
	return b
}

func (b *DateRangeAggregationBuilder) Build() (*DateRangeAggregation, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &DateRangeAggregation{obj: o}, nil
}

// AggregationKind names an Aggregation variant.
type AggregationKind string

const (
	AggregationKindCardinality AggregationKind = "cardinality"
	AggregationKindValueCount  AggregationKind = "value_count"
	AggregationKindDateRange   AggregationKind = "date_range"
)

// aggregationCodec is a named type: Aggregation nests itself through its
// aggregations container field.
type aggregationCodec struct{}

var AggregationCodec esmodel.Codec[*Aggregation] = aggregationCodec{}

func (aggregationCodec) Encode(g esmodel.Generator, v *Aggregation) error {
	return esmodel.SerializeUnion(g, v.union())
}

func (aggregationCodec) Decode(d *esmodel.Decoder) (*Aggregation, error) {
	u, err := esmodel.DecodeUnion(d, aggregationDescriptor)
	if err != nil {
		return nil, err
	}
	return &Aggregation{u: u}, nil
}

func (aggregationCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return esmodel.UnionSchema(aggregationDescriptor, defs)
}

var aggregationContainerDescriptor = esmodel.NewDescriptor("Aggregation", nil,
	esmodel.MapField("meta", "meta", esmodel.RawJSON),
	esmodel.MapField("aggregations", "aggregations", esmodel.Codec[*Aggregation](aggregationCodec{})),
)

var (
	aggregationMeta         = aggregationContainerDescriptor.Key("meta")
	aggregationAggregations = aggregationContainerDescriptor.Key("aggregations")
)

var aggregationDescriptor = esmodel.NewUnionDescriptor("Aggregation", aggregationContainerDescriptor,
	esmodel.VariantOf(string(AggregationKindCardinality), CardinalityAggregationCodec),
	esmodel.VariantOf(string(AggregationKindValueCount), ValueCountAggregationCodec),
	esmodel.VariantOf(string(AggregationKindDateRange), DateRangeAggregationCodec),
)

// Aggregation is one request aggregation: exactly one aggregation kind plus
// optional meta and sub-aggregations.
type Aggregation struct{ u *esmodel.Union }

func (a *Aggregation) union() *esmodel.Union {
	if a == nil {
		return nil
	}
	return a.u
}

func (a *Aggregation) Kind() AggregationKind { return AggregationKind(a.union().Kind()) }

func (a *Aggregation) Meta() esmodel.Map[esmodel.JSONData] {
	return esmodel.GetMap[esmodel.JSONData](a.union().Container(), aggregationMeta)
}

func (a *Aggregation) Aggregations() esmodel.Map[*Aggregation] {
	return esmodel.GetMap[*Aggregation](a.union().Container(), aggregationAggregations)
}

func (a *Aggregation) Cardinality() (*CardinalityAggregation, bool) {
	return esmodel.UnionValue[*CardinalityAggregation](a.union(), string(AggregationKindCardinality))
}

func (a *Aggregation) ValueCount() (*ValueCountAggregation, bool) {
	return esmodel.UnionValue[*ValueCountAggregation](a.union(), string(AggregationKindValueCount))
}

func (a *Aggregation) DateRange() (*DateRangeAggregation, bool) {
	return esmodel.UnionValue[*DateRangeAggregation](a.union(), string(AggregationKindDateRange))
}

func (a *Aggregation) ToBuilder() *AggregationBuilder {
	return &AggregationBuilder{ub: a.u.ToBuilder()}
}

type AggregationBuilder struct{ ub *esmodel.UnionBuilder }

func NewAggregationBuilder() *AggregationBuilder {
	return &AggregationBuilder{ub: esmodel.NewUnionBuilder(aggregationDescriptor)}
}

func AggregationOf(fn func(*AggregationBuilder)) (*Aggregation, error) {
	b := NewAggregationBuilder()
	fn(b)
	return b.Build()
}

func (b *AggregationBuilder) Meta(m map[string]esmodel.JSONData) *AggregationBuilder {
	esmodel.SetMap(b.ub.Container(), aggregationMeta, m)
	return b
}

func (b *AggregationBuilder) PutMeta(key string, v esmodel.JSONData) *AggregationBuilder {
	esmodel.PutMap(b.ub.Container(), aggregationMeta, key, v)
	return b
}

// Aggregations replaces the sub-aggregations.
func (b *AggregationBuilder) Aggregations(m map[string]*Aggregation) *AggregationBuilder {
	esmodel.SetMap(b.ub.Container(), aggregationAggregations, m)
	return b
}

// PutAggregations adds one sub-aggregation.
func (b *AggregationBuilder) PutAggregations(name string, v *Aggregation) *AggregationBuilder {
	esmodel.PutMap(b.ub.Container(), aggregationAggregations, name, v)
	return b
}

func (b *AggregationBuilder) PutAggregationsFn(name string, fn func(*AggregationBuilder)) *AggregationBuilder {
	v, err := AggregationOf(fn)
	esmodel.PutBuilt(b.ub.Container(), aggregationAggregations, name, v, err)
	return b
}

func (b *AggregationBuilder) ResetAggregations() *AggregationBuilder {
	b.ub.Container().Set(aggregationAggregations, esmodel.ResetMap())
	return b
}

func (b *AggregationBuilder) Cardinality(v *CardinalityAggregation) *AggregationBuilder {
	b.ub.Select(string(AggregationKindCardinality), v)
	return b
}

func (b *AggregationBuilder) CardinalityFn(fn func(*CardinalityAggregationBuilder)) *AggregationBuilder {
	v, err := CardinalityAggregationOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregationKindCardinality), v, err)
	return b
}

func (b *AggregationBuilder) ValueCount(v *ValueCountAggregation) *AggregationBuilder {
	b.ub.Select(string(AggregationKindValueCount), v)
	return b
}

func (b *AggregationBuilder) ValueCountFn(fn func(*ValueCountAggregationBuilder)) *AggregationBuilder {
	v, err := ValueCountAggregationOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregationKindValueCount), v, err)
	return b
}

func (b *AggregationBuilder) DateRange(v *DateRangeAggregation) *AggregationBuilder {
	b.ub.Select(string(AggregationKindDateRange), v)
	return b
}

func (b *AggregationBuilder) DateRangeFn(fn func(*DateRangeAggregationBuilder)) *AggregationBuilder {
	v, err := DateRangeAggregationOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregationKindDateRange), v, err)
	return b
}

func (b *AggregationBuilder) Build() (*Aggregation, error) {
	u, err := b.ub.Build()
	if err != nil {
		return nil, err
	}
	return &Aggregation{u: u}, nil
}
