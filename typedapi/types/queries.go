package types

import (
	"github.com/reoring/esmodel"
	js "github.com/reoring/esmodel/jsonschema"
)

// QueryBase holds the fields every leaf query accepts.
type QueryBase struct{ obj *esmodel.Object }

var queryBaseDescriptor = esmodel.NewDescriptor("QueryBase", nil,
	esmodel.ScalarField("boost", "boost", esmodel.Float),
	esmodel.ScalarField("queryName", "_name", esmodel.String),
)

var (
	queryBaseBoost     = queryBaseDescriptor.Key("boost")
	queryBaseQueryName = queryBaseDescriptor.Key("queryName")
)

func (m *QueryBase) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *QueryBase) Boost() *float32 { return esmodel.GetOpt[float32](m.object(), queryBaseBoost) }

func (m *QueryBase) QueryName() *string {
	return esmodel.GetOpt[string](m.object(), queryBaseQueryName)
}

type QueryBaseFields[B any] struct {
	ob   *esmodel.ObjectBuilder
	self B
}

func (b *QueryBaseFields[B]) Boost(v *float32) B {
	esmodel.SetOpt(b.ob, queryBaseBoost, v)
	return b.self
}

func (b *QueryBaseFields[B]) QueryName(v *string) B {
	esmodel.SetOpt(b.ob, queryBaseQueryName, v)
	return b.self
}

// MatchAllQuery matches every document.
type MatchAllQuery struct{ QueryBase }

var matchAllQueryDescriptor = esmodel.NewDescriptor("MatchAllQuery", queryBaseDescriptor)

var MatchAllQueryCodec = esmodel.ModelCodec(matchAllQueryDescriptor,
	func(o *esmodel.Object) *MatchAllQuery { return &MatchAllQuery{QueryBase{obj: o}} },
	func(m *MatchAllQuery) *esmodel.Object {
		if m == nil {
			return nil
		}
		return m.obj
	})

type MatchAllQueryBuilder struct {
	QueryBaseFields[*MatchAllQueryBuilder]
}

func NewMatchAllQueryBuilder() *MatchAllQueryBuilder {
	b := &MatchAllQueryBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(matchAllQueryDescriptor), b
	return b
}

func MatchAllQueryOf(fn func(*MatchAllQueryBuilder)) (*MatchAllQuery, error) {
	b := NewMatchAllQueryBuilder()
	fn(b)
	return b.Build()
}

func (b *MatchAllQueryBuilder) Build() (*MatchAllQuery, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &MatchAllQuery{QueryBase{obj: o}}, nil
}

// TermQuery matches documents whose field holds exactly Value. On the wire
// the field name is the single key of the query object:
//
//	{"user": {"value": "kimchy", "boost": 1.0}}
//
// The shorthand {"user": "kimchy"} is accepted on input.
type TermQuery struct{ QueryBase }

var termQueryDescriptor = esmodel.NewDescriptor("TermQuery", queryBaseDescriptor,
	esmodel.ScalarField("field", "field", esmodel.String).Required().In(esmodel.InKey),
	esmodel.ScalarField("value", "value", esmodel.RawJSON).Required(),
	esmodel.ScalarField("caseInsensitive", "case_insensitive", esmodel.Bool),
)

var (
	termQueryField           = termQueryDescriptor.Key("field")
	termQueryValue           = termQueryDescriptor.Key("value")
	termQueryCaseInsensitive = termQueryDescriptor.Key("caseInsensitive")
)

type termQueryCodec struct{}

var TermQueryCodec esmodel.Codec[*TermQuery] = termQueryCodec{}

func (termQueryCodec) Encode(g esmodel.Generator, v *TermQuery) error {
	return encodeFieldKeyed(g, v.object(), termQueryField)
}

func (termQueryCodec) Decode(d *esmodel.Decoder) (*TermQuery, error) {
	b := NewTermQueryBuilder()
	err := decodeFieldKeyed(d, b.ob, termQueryField, func() error {
		tok, err := d.Peek()
		if err != nil {
			return err
		}
		if tok.Kind != esmodel.TokenBeginObject {
			v, err := esmodel.RawJSON.Decode(d)
			if err != nil {
				return err
			}
			b.ob.Set(termQueryValue, v)
			return nil
		}
		return d.ReadObject(func(key string) error {
			_, err := esmodel.DeserializeField(d, b.ob, key)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return b.Build()
}

func (termQueryCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return fieldKeyedSchema(esmodel.DescriptorSchema(termQueryDescriptor, defs))
}

func (m *TermQuery) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *TermQuery) Field() string { return esmodel.Get[string](m.object(), termQueryField) }

func (m *TermQuery) Value() esmodel.JSONData {
	return esmodel.Get[esmodel.JSONData](m.object(), termQueryValue)
}

func (m *TermQuery) CaseInsensitive() *bool {
	return esmodel.GetOpt[bool](m.object(), termQueryCaseInsensitive)
}

type TermQueryBuilder struct {
	QueryBaseFields[*TermQueryBuilder]
}

func NewTermQueryBuilder() *TermQueryBuilder {
	b := &TermQueryBuilder{}
	b.ob, b.self = esmodel.NewObjectBuilder(termQueryDescriptor), b
	return b
}

func TermQueryOf(fn func(*TermQueryBuilder)) (*TermQuery, error) {
	b := NewTermQueryBuilder()
	fn(b)
	return b.Build()
}

func (b *TermQueryBuilder) Field(v string) *TermQueryBuilder {
	b.ob.Set(termQueryField, v)
	return b
}

func (b *TermQueryBuilder) Value(v esmodel.JSONData) *TermQueryBuilder {
	b.ob.Set(termQueryValue, v)
	return b
}

func (b *TermQueryBuilder) CaseInsensitive(v *bool) *TermQueryBuilder {
	esmodel.SetOpt(b.ob, termQueryCaseInsensitive, v)
	return b
}

func (b *TermQueryBuilder) Build() (*TermQuery, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &TermQuery{QueryBase{obj: o}}, nil
}

// encodeFieldKeyed writes {"<field>": {body fields}}.
func encodeFieldKeyed(g esmodel.Generator, o *esmodel.Object, field esmodel.FieldKey) error {
	g.WriteStartObject()
	g.WriteKey(esmodel.Get[string](o, field))
	if err := esmodel.SerializeObject(g, o); err != nil {
		return err
	}
	g.WriteEnd()
	return nil
}

// decodeFieldKeyed reads an object holding exactly one key, stores the key
// in field and lets body consume the value.
func decodeFieldKeyed(d *esmodel.Decoder, b *esmodel.ObjectBuilder, field esmodel.FieldKey, body func() error) error {
	seen := false
	return d.ReadObject(func(key string) error {
		if seen {
			tok, err := d.Peek()
			if err != nil {
				return err
			}
			return d.Unexpected("a single field name", tok)
		}
		seen = true
		b.Set(field, key)
		return body()
	})
}

func fieldKeyedSchema(value *js.Schema) *js.Schema {
	return &js.Schema{
		Type:                 "object",
		AdditionalProperties: value,
		MinProperties:        js.Int(1),
		MaxProperties:        js.Int(1),
	}
}

// QueryKind names a Query variant.
type QueryKind string

const (
	QueryKindMatchAll  QueryKind = "match_all"
	QueryKindTerm      QueryKind = "term"
	QueryKindIntervals QueryKind = "intervals"
)

var queryDescriptor = esmodel.NewUnionDescriptor("Query", nil,
	esmodel.VariantOf(string(QueryKindMatchAll), MatchAllQueryCodec),
	esmodel.VariantOf(string(QueryKindTerm), TermQueryCodec),
	esmodel.VariantOf(string(QueryKindIntervals), IntervalsQueryCodec),
)

// Query is a query container holding exactly one query kind.
type Query struct{ u *esmodel.Union }

var QueryCodec = esmodel.Codec[*Query](queryCodec{})

type queryCodec struct{}

func (queryCodec) Encode(g esmodel.Generator, v *Query) error {
	return esmodel.SerializeUnion(g, v.union())
}

func (queryCodec) Decode(d *esmodel.Decoder) (*Query, error) {
	u, err := esmodel.DecodeUnion(d, queryDescriptor)
	if err != nil {
		return nil, err
	}
	return &Query{u: u}, nil
}

func (queryCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return esmodel.UnionSchema(queryDescriptor, defs)
}

func (q *Query) union() *esmodel.Union {
	if q == nil {
		return nil
	}
	return q.u
}

func (q *Query) Kind() QueryKind { return QueryKind(q.union().Kind()) }

func (q *Query) MatchAll() (*MatchAllQuery, bool) {
	return esmodel.UnionValue[*MatchAllQuery](q.union(), string(QueryKindMatchAll))
}

func (q *Query) Term() (*TermQuery, bool) {
	return esmodel.UnionValue[*TermQuery](q.union(), string(QueryKindTerm))
}

func (q *Query) Intervals() (*IntervalsQuery, bool) {
	return esmodel.UnionValue[*IntervalsQuery](q.union(), string(QueryKindIntervals))
}

type QueryBuilder struct{ ub *esmodel.UnionBuilder }

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{ub: esmodel.NewUnionBuilder(queryDescriptor)}
}

func QueryOf(fn func(*QueryBuilder)) (*Query, error) {
	b := NewQueryBuilder()
	fn(b)
	return b.Build()
}

func (b *QueryBuilder) MatchAll(v *MatchAllQuery) *QueryBuilder {
	b.ub.Select(string(QueryKindMatchAll), v)
	return b
}

func (b *QueryBuilder) MatchAllFn(fn func(*MatchAllQueryBuilder)) *QueryBuilder {
	v, err := MatchAllQueryOf(fn)
	esmodel.SelectBuilt(b.ub, string(QueryKindMatchAll), v, err)
	return b
}

func (b *QueryBuilder) Term(v *TermQuery) *QueryBuilder {
	b.ub.Select(string(QueryKindTerm), v)
	return b
}

func (b *QueryBuilder) TermFn(fn func(*TermQueryBuilder)) *QueryBuilder {
	v, err := TermQueryOf(fn)
	esmodel.SelectBuilt(b.ub, string(QueryKindTerm), v, err)
	return b
}

func (b *QueryBuilder) Intervals(v *IntervalsQuery) *QueryBuilder {
	b.ub.Select(string(QueryKindIntervals), v)
	return b
}

func (b *QueryBuilder) IntervalsFn(fn func(*IntervalsQueryBuilder)) *QueryBuilder {
	v, err := IntervalsQueryOf(fn)
	esmodel.SelectBuilt(b.ub, string(QueryKindIntervals), v, err)
	return b
}

func (b *QueryBuilder) Build() (*Query, error) {
	u, err := b.ub.Build()
	if err != nil {
		return nil, err
	}
	return &Query{u: u}, nil
}
