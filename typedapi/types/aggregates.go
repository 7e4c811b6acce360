package types

import (
	"github.com/reoring/esmodel"
	js "github.com/reoring/esmodel/jsonschema"
)

// AggregateBase holds the fields shared by every aggregation result.
type AggregateBase struct{ obj *esmodel.Object }

var aggregateBaseDescriptor = esmodel.NewDescriptor("AggregateBase", nil,
	esmodel.MapField("meta", "meta", esmodel.RawJSON),
)

var aggregateBaseMeta = aggregateBaseDescriptor.Key("meta")

func (m *AggregateBase) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *AggregateBase) Meta() esmodel.Map[esmodel.JSONData] {
	return esmodel.GetMap[esmodel.JSONData](m.object(), aggregateBaseMeta)
}

// AggregateBaseFields carries the AggregateBase setters into the builders
// of every aggregate; B is the concrete builder returned for chaining.
type AggregateBaseFields[B any] struct {
	ob   *esmodel.ObjectBuilder
	self B
}

func (b *AggregateBaseFields[B]) Meta(m map[string]esmodel.JSONData) B {
	esmodel.SetMap(b.ob, aggregateBaseMeta, m)
	return b.self
}

func (b *AggregateBaseFields[B]) PutMeta(key string, v esmodel.JSONData) B {
	esmodel.PutMap(b.ob, aggregateBaseMeta, key, v)
	return b.self
}

func (b *AggregateBaseFields[B]) ResetMeta() B {
	b.ob.Set(aggregateBaseMeta, esmodel.ResetMap())
	return b.self
}

// CardinalityAggregate is the result of a cardinality aggregation.
type CardinalityAggregate struct{ AggregateBase }

var cardinalityAggregateDescriptor = esmodel.NewDescriptor("CardinalityAggregate", aggregateBaseDescriptor,
	esmodel.ScalarField("value", "value", esmodel.Long).Required(),
)

var cardinalityAggregateValue = cardinalityAggregateDescriptor.Key("value")

var CardinalityAggregateCodec = esmodel.ModelCodec(cardinalityAggregateDescriptor,
	func(o *esmodel.Object) *CardinalityAggregate { return &CardinalityAggregate{AggregateBase{obj: o}} },
	func(m *CardinalityAggregate) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

func (m *CardinalityAggregate) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *CardinalityAggregate) Value() int64 {
	return esmodel.Get[int64](m.object(), cardinalityAggregateValue)
}

func (m *CardinalityAggregate) ToBuilder() *CardinalityAggregateBuilder {
	return newCardinalityAggregateBuilder(m.obj.ToBuilder())
}

type CardinalityAggregateBuilder struct {
	AggregateBaseFields[*CardinalityAggregateBuilder]
}

func NewCardinalityAggregateBuilder() *CardinalityAggregateBuilder {
	return newCardinalityAggregateBuilder(esmodel.NewObjectBuilder(cardinalityAggregateDescriptor))
}

func newCardinalityAggregateBuilder(ob *esmodel.ObjectBuilder) *CardinalityAggregateBuilder {
	b := &CardinalityAggregateBuilder{}
	b.ob, b.self = ob, b
	return b
}

func CardinalityAggregateOf(fn func(*CardinalityAggregateBuilder)) (*CardinalityAggregate, error) {
	b := NewCardinalityAggregateBuilder()
	fn(b)
	return b.Build()
}

func (b *CardinalityAggregateBuilder) Value(v int64) *CardinalityAggregateBuilder {
	b.ob.Set(cardinalityAggregateValue, v)
	return b
}

func (b *CardinalityAggregateBuilder) Build() (*CardinalityAggregate, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &CardinalityAggregate{AggregateBase{obj: o}}, nil
}

// SingleMetricAggregateBase is the base of single-value metric results.
type SingleMetricAggregateBase struct{ AggregateBase }

var singleMetricAggregateBaseDescriptor = esmodel.NewDescriptor("SingleMetricAggregateBase", aggregateBaseDescriptor,
	esmodel.ScalarField("value", "value", esmodel.Double),
	esmodel.ScalarField("valueAsString", "value_as_string", esmodel.String),
)

var (
	singleMetricValue         = singleMetricAggregateBaseDescriptor.Key("value")
	singleMetricValueAsString = singleMetricAggregateBaseDescriptor.Key("valueAsString")
)

func (m *SingleMetricAggregateBase) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

// Value is nil when the metric has no value (e.g. no documents matched).
func (m *SingleMetricAggregateBase) Value() *float64 {
	return esmodel.GetOpt[float64](m.object(), singleMetricValue)
}

func (m *SingleMetricAggregateBase) ValueAsString() *string {
	return esmodel.GetOpt[string](m.object(), singleMetricValueAsString)
}

type SingleMetricAggregateFields[B any] struct{ AggregateBaseFields[B] }

func (b *SingleMetricAggregateFields[B]) Value(v *float64) B {
	esmodel.SetOpt(b.ob, singleMetricValue, v)
	return b.self
}

func (b *SingleMetricAggregateFields[B]) ValueAsString(v *string) B {
	esmodel.SetOpt(b.ob, singleMetricValueAsString, v)
	return b.self
}

// ValueCountAggregate is the result of a value_count aggregation.
type ValueCountAggregate struct{ SingleMetricAggregateBase }

var valueCountAggregateDescriptor = esmodel.NewDescriptor("ValueCountAggregate", singleMetricAggregateBaseDescriptor)

var ValueCountAggregateCodec = esmodel.ModelCodec(valueCountAggregateDescriptor,
	func(o *esmodel.Object) *ValueCountAggregate {
		return &ValueCountAggregate{SingleMetricAggregateBase{AggregateBase{obj: o}}}
	},
	func(m *ValueCountAggregate) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

type ValueCountAggregateBuilder struct {
	SingleMetricAggregateFields[*ValueCountAggregateBuilder]
}

func NewValueCountAggregateBuilder() *ValueCountAggregateBuilder {
	b := &ValueCountAggregateBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(valueCountAggregateDescriptor), b
	return b
}

func ValueCountAggregateOf(fn func(*ValueCountAggregateBuilder)) (*ValueCountAggregate, error) {
	b := NewValueCountAggregateBuilder()
	fn(b)
	return b.Build()
}

func (b *ValueCountAggregateBuilder) Build() (*ValueCountAggregate, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &ValueCountAggregate{SingleMetricAggregateBase{AggregateBase{obj: o}}}, nil
}

// MultiBucketBase holds the fields shared by every bucket.
type MultiBucketBase struct{ obj *esmodel.Object }

var multiBucketBaseDescriptor = esmodel.NewDescriptor("MultiBucketBase", nil,
	esmodel.ScalarField("docCount", "doc_count", esmodel.Long).Required(),
)

var multiBucketDocCount = multiBucketBaseDescriptor.Key("docCount")

func (m *MultiBucketBase) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *MultiBucketBase) DocCount() int64 {
	return esmodel.Get[int64](m.object(), multiBucketDocCount)
}

type MultiBucketFields[B any] struct {
	ob   *esmodel.ObjectBuilder
	self B
}

func (b *MultiBucketFields[B]) DocCount(v int64) B {
	b.ob.Set(multiBucketDocCount, v)
	return b.self
}

// RangeBucket is one bucket of a range or date_range aggregation.
type RangeBucket struct{ MultiBucketBase }

var rangeBucketDescriptor = esmodel.NewDescriptor("RangeBucket", multiBucketBaseDescriptor,
	esmodel.ScalarField("from", "from", esmodel.Double),
	esmodel.ScalarField("to", "to", esmodel.Double),
	esmodel.ScalarField("fromAsString", "from_as_string", esmodel.String),
	esmodel.ScalarField("toAsString", "to_as_string", esmodel.String),
	esmodel.ScalarField("key", "key", esmodel.String),
)

var (
	rangeBucketFrom         = rangeBucketDescriptor.Key("from")
	rangeBucketTo           = rangeBucketDescriptor.Key("to")
	rangeBucketFromAsString = rangeBucketDescriptor.Key("fromAsString")
	rangeBucketToAsString   = rangeBucketDescriptor.Key("toAsString")
	rangeBucketKey          = rangeBucketDescriptor.Key("key")
)

var RangeBucketCodec = esmodel.ModelCodec(rangeBucketDescriptor,
	func(o *esmodel.Object) *RangeBucket { return &RangeBucket{MultiBucketBase{obj: o}} },
	func(m *RangeBucket) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

func (m *RangeBucket) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *RangeBucket) From() *float64 { return esmodel.GetOpt[float64](m.object(), rangeBucketFrom) }
func (m *RangeBucket) To() *float64   { return esmodel.GetOpt[float64](m.object(), rangeBucketTo) }
func (m *RangeBucket) Key() *string   { return esmodel.GetOpt[string](m.object(), rangeBucketKey) }

func (m *RangeBucket) FromAsString() *string {
	return esmodel.GetOpt[string](m.object(), rangeBucketFromAsString)
}

func (m *RangeBucket) ToAsString() *string {
	return esmodel.GetOpt[string](m.object(), rangeBucketToAsString)
}

type RangeBucketBuilder struct {
	MultiBucketFields[*RangeBucketBuilder]
}

func NewRangeBucketBuilder() *RangeBucketBuilder {
	b := &RangeBucketBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(rangeBucketDescriptor), b
	return b
}

func RangeBucketOf(fn func(*RangeBucketBuilder)) (*RangeBucket, error) {
	b := NewRangeBucketBuilder()
	fn(b)
	return b.Build()
}

func (b *RangeBucketBuilder) From(v *float64) *RangeBucketBuilder {
	esmodel.SetOpt(b.ob, rangeBucketFrom, v)
	return b
}

func (b *RangeBucketBuilder) To(v *float64) *RangeBucketBuilder {
	esmodel.SetOpt(b.ob, rangeBucketTo, v)
	return b
}

func (b *RangeBucketBuilder) FromAsString(v *string) *RangeBucketBuilder {
	esmodel.SetOpt(b.ob, rangeBucketFromAsString, v)
	return b
}

func (b *RangeBucketBuilder) ToAsString(v *string) *RangeBucketBuilder {
	esmodel.SetOpt(b.ob, rangeBucketToAsString, v)
	return b
}

func (b *RangeBucketBuilder) Key(v *string) *RangeBucketBuilder {
	esmodel.SetOpt(b.ob, rangeBucketKey, v)
	return b
}

func (b *RangeBucketBuilder) Build() (*RangeBucket, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &RangeBucket{MultiBucketBase{obj: o}}, nil
}

// RangeBuckets is either a list of buckets or, for keyed aggregations, an
// object of buckets by key. The wire shape selects the form.
type RangeBuckets struct {
	keyed bool
	array []*RangeBucket
	byKey esmodel.Map[*RangeBucket]
}

// RangeBucketsOf returns the array form.
func RangeBucketsOf(buckets ...*RangeBucket) *RangeBuckets {
	return &RangeBuckets{array: append([]*RangeBucket{}, buckets...)}
}

// KeyedRangeBuckets returns the keyed form.
func KeyedRangeBuckets(m esmodel.Map[*RangeBucket]) *RangeBuckets {
	if !m.IsDefined() {
		m = esmodel.OrderedMap[*RangeBucket]()
	}
	return &RangeBuckets{keyed: true, byKey: m}
}

func (b *RangeBuckets) IsKeyed() bool { return b.keyed }

// Array returns the buckets of the array form; it is undefined for the
// keyed form.
func (b *RangeBuckets) Array() esmodel.List[*RangeBucket] {
	if b.keyed {
		return esmodel.List[*RangeBucket]{}
	}
	return esmodel.ListOf(b.array...)
}

// Keyed returns the buckets of the keyed form; it is undefined for the
// array form.
func (b *RangeBuckets) Keyed() esmodel.Map[*RangeBucket] {
	if !b.keyed {
		return esmodel.Map[*RangeBucket]{}
	}
	return b.byKey
}

type rangeBucketsCodec struct{}

var RangeBucketsCodec esmodel.Codec[*RangeBuckets] = rangeBucketsCodec{}

func (rangeBucketsCodec) Encode(g esmodel.Generator, v *RangeBuckets) error {
	if v.keyed {
		g.WriteStartObject()
		for k, bucket := range v.byKey.All() {
			g.WriteKey(k)
			if err := RangeBucketCodec.Encode(g, bucket); err != nil {
				return err
			}
		}
		g.WriteEnd()
		return nil
	}
	g.WriteStartArray()
	for _, bucket := range v.array {
		if err := RangeBucketCodec.Encode(g, bucket); err != nil {
			return err
		}
	}
	g.WriteEnd()
	return nil
}

func (rangeBucketsCodec) Decode(d *esmodel.Decoder) (*RangeBuckets, error) {
	tok, err := d.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case esmodel.TokenBeginArray:
		var list []*RangeBucket
		err := d.ReadArray(func(int) error {
			bucket, err := RangeBucketCodec.Decode(d)
			list = append(list, bucket)
			return err
		})
		if err != nil {
			return nil, err
		}
		return RangeBucketsOf(list...), nil
	case esmodel.TokenBeginObject:
		var entries []esmodel.Entry[*RangeBucket]
		err := d.ReadObject(func(key string) error {
			bucket, err := RangeBucketCodec.Decode(d)
			entries = append(entries, esmodel.Entry[*RangeBucket]{Key: key, Value: bucket})
			return err
		})
		if err != nil {
			return nil, err
		}
		return KeyedRangeBuckets(esmodel.OrderedMap(entries...)), nil
	}
	return nil, d.Unexpected("array or object of buckets", tok)
}

func (rangeBucketsCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	bucket := esmodel.SchemaOf(RangeBucketCodec, defs)
	return &js.Schema{OneOf: []*js.Schema{
		{Type: "array", Items: bucket},
		{Type: "object", AdditionalProperties: bucket},
	}}
}

// MultiBucketAggregateBase is the base of bucketing aggregation results.
type MultiBucketAggregateBase struct{ AggregateBase }

var multiBucketAggregateBaseDescriptor = esmodel.NewDescriptor("MultiBucketAggregateBase", aggregateBaseDescriptor,
	esmodel.ScalarField("buckets", "buckets", RangeBucketsCodec).Required(),
)

var multiBucketAggregateBuckets = multiBucketAggregateBaseDescriptor.Key("buckets")

func (m *MultiBucketAggregateBase) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *MultiBucketAggregateBase) Buckets() *RangeBuckets {
	return esmodel.Get[*RangeBuckets](m.object(), multiBucketAggregateBuckets)
}

type MultiBucketAggregateFields[B any] struct{ AggregateBaseFields[B] }

func (b *MultiBucketAggregateFields[B]) Buckets(v *RangeBuckets) B {
	b.ob.Set(multiBucketAggregateBuckets, v)
	return b.self
}

// RangeAggregate is the result of a range aggregation.
type RangeAggregate struct{ MultiBucketAggregateBase }

var rangeAggregateDescriptor = esmodel.NewDescriptor("RangeAggregate", multiBucketAggregateBaseDescriptor)

var RangeAggregateCodec = esmodel.ModelCodec(rangeAggregateDescriptor,
	func(o *esmodel.Object) *RangeAggregate {
		return &RangeAggregate{MultiBucketAggregateBase{AggregateBase{obj: o}}}
	},
	func(m *RangeAggregate) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

type RangeAggregateFields[B any] struct{ MultiBucketAggregateFields[B] }

type RangeAggregateBuilder struct {
	RangeAggregateFields[*RangeAggregateBuilder]
}

func NewRangeAggregateBuilder() *RangeAggregateBuilder {
	b := &RangeAggregateBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(rangeAggregateDescriptor), b
	return b
}

func RangeAggregateOf(fn func(*RangeAggregateBuilder)) (*RangeAggregate, error) {
	b := NewRangeAggregateBuilder()
	fn(b)
	return b.Build()
}

func (b *RangeAggregateBuilder) Build() (*RangeAggregate, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &RangeAggregate{MultiBucketAggregateBase{AggregateBase{obj: o}}}, nil
}

// DateRangeAggregate is the result of a date_range aggregation.
type DateRangeAggregate struct{ RangeAggregate }

var dateRangeAggregateDescriptor = esmodel.NewDescriptor("DateRangeAggregate", rangeAggregateDescriptor)

var DateRangeAggregateCodec = esmodel.ModelCodec(dateRangeAggregateDescriptor,
	func(o *esmodel.Object) *DateRangeAggregate {
		return &DateRangeAggregate{RangeAggregate{MultiBucketAggregateBase{AggregateBase{obj: o}}}}
	},
	func(m *DateRangeAggregate) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

type DateRangeAggregateBuilder struct {
	RangeAggregateFields[*DateRangeAggregateBuilder]
}

func NewDateRangeAggregateBuilder() *DateRangeAggregateBuilder {
	b := &DateRangeAggregateBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(dateRangeAggregateDescriptor), b
	return b
}

func DateRangeAggregateOf(fn func(*DateRangeAggregateBuilder)) (*DateRangeAggregate, error) {
	b := NewDateRangeAggregateBuilder()
	fn(b)
	return b.Build()
}

func (b *DateRangeAggregateBuilder) Build() (*DateRangeAggregate, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &DateRangeAggregate{RangeAggregate{MultiBucketAggregateBase{AggregateBase{obj: o}}}}, nil
}

// AggregateKind names an Aggregate variant.
type AggregateKind string

const (
	AggregateKindCardinality AggregateKind = "cardinality"
	AggregateKindValueCount  AggregateKind = "value_count"
	AggregateKindRange       AggregateKind = "range"
	AggregateKindDateRange   AggregateKind = "date_range"
)

var aggregateDescriptor = esmodel.NewUnionDescriptor("Aggregate", nil,
	esmodel.VariantOf(string(AggregateKindCardinality), CardinalityAggregateCodec),
	esmodel.VariantOf(string(AggregateKindValueCount), ValueCountAggregateCodec),
	esmodel.VariantOf(string(AggregateKindRange), RangeAggregateCodec),
	esmodel.VariantOf(string(AggregateKindDateRange), DateRangeAggregateCodec),
)

// Aggregate is one aggregation result of a search response. Its kind comes
// from the "kind#name" key it was returned under.
type Aggregate struct{ u *esmodel.Union }

func (a *Aggregate) union() *esmodel.Union {
	if a == nil {
		return nil
	}
	return a.u
}

func (a *Aggregate) Kind() AggregateKind { return AggregateKind(a.union().Kind()) }

func (a *Aggregate) Cardinality() (*CardinalityAggregate, bool) {
	return esmodel.UnionValue[*CardinalityAggregate](a.union(), string(AggregateKindCardinality))
}

func (a *Aggregate) ValueCount() (*ValueCountAggregate, bool) {
	return esmodel.UnionValue[*ValueCountAggregate](a.union(), string(AggregateKindValueCount))
}

func (a *Aggregate) Range() (*RangeAggregate, bool) {
	return esmodel.UnionValue[*RangeAggregate](a.union(), string(AggregateKindRange))
}

func (a *Aggregate) DateRange() (*DateRangeAggregate, bool) {
	return esmodel.UnionValue[*DateRangeAggregate](a.union(), string(AggregateKindDateRange))
}

type AggregateBuilder struct{ ub *esmodel.UnionBuilder }

func NewAggregateBuilder() *AggregateBuilder {
	return &AggregateBuilder{ub: esmodel.NewUnionBuilder(aggregateDescriptor)}
}

func AggregateOf(fn func(*AggregateBuilder)) (*Aggregate, error) {
	b := NewAggregateBuilder()
	fn(b)
	return b.Build()
}

func (b *AggregateBuilder) Cardinality(v *CardinalityAggregate) *AggregateBuilder {
	b.ub.Select(string(AggregateKindCardinality), v)
	return b
}

func (b *AggregateBuilder) CardinalityFn(fn func(*CardinalityAggregateBuilder)) *AggregateBuilder {
	v, err := CardinalityAggregateOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregateKindCardinality), v, err)
	return b
}

func (b *AggregateBuilder) ValueCount(v *ValueCountAggregate) *AggregateBuilder {
	b.ub.Select(string(AggregateKindValueCount), v)
	return b
}

func (b *AggregateBuilder) ValueCountFn(fn func(*ValueCountAggregateBuilder)) *AggregateBuilder {
	v, err := ValueCountAggregateOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregateKindValueCount), v, err)
	return b
}

func (b *AggregateBuilder) Range(v *RangeAggregate) *AggregateBuilder {
	b.ub.Select(string(AggregateKindRange), v)
	return b
}

func (b *AggregateBuilder) RangeFn(fn func(*RangeAggregateBuilder)) *AggregateBuilder {
	v, err := RangeAggregateOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregateKindRange), v, err)
	return b
}

func (b *AggregateBuilder) DateRange(v *DateRangeAggregate) *AggregateBuilder {
	b.ub.Select(string(AggregateKindDateRange), v)
	return b
}

func (b *AggregateBuilder) DateRangeFn(fn func(*DateRangeAggregateBuilder)) *AggregateBuilder {
	v, err := DateRangeAggregateOf(fn)
	esmodel.SelectBuilt(b.ub, string(AggregateKindDateRange), v, err)
	return b
}

func (b *AggregateBuilder) Build() (*Aggregate, error) {
	u, err := b.ub.Build()
	if err != nil {
		return nil, err
	}
	return &Aggregate{u: u}, nil
}

type aggregateCodec struct{}

// AggregateCodec reads aggregates from typed-keys maps; see
// esmodel.TypedKeysMapField.
var AggregateCodec esmodel.KindedCodec[*Aggregate] = aggregateCodec{}

func (aggregateCodec) Kind(v *Aggregate) string { return string(v.Kind()) }

func (aggregateCodec) Encode(g esmodel.Generator, v *Aggregate) error {
	return esmodel.EncodeVariant(g, v.union())
}

// Decode fails: an aggregate's kind is only known from its typed key.
func (aggregateCodec) Decode(d *esmodel.Decoder) (*Aggregate, error) {
	tok, err := d.Peek()
	if err != nil {
		return nil, err
	}
	return nil, &esmodel.UnrecognizedWireValueError{
		Path:     d.Path(),
		Expected: "aggregate under a typed key (kind#name)",
		Got:      tok.Kind.String(),
		Offset:   tok.Offset,
	}
}

func (aggregateCodec) DecodeKind(d *esmodel.Decoder, kind string) (*Aggregate, error) {
	u, err := esmodel.DecodeVariant(d, aggregateDescriptor, kind)
	if err != nil {
		return nil, err
	}
	return &Aggregate{u: u}, nil
}

func (aggregateCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return &js.Schema{Title: "Aggregate", OneOf: esmodel.VariantSchemas(aggregateDescriptor, defs)}
}
