package types

import (
	"github.com/reoring/esmodel"
)

// TotalHitsRelation tells whether TotalHits.Value is exact or a lower bound.
type TotalHitsRelation string

const (
	TotalHitsRelationEq  TotalHitsRelation = "eq"
	TotalHitsRelationGte TotalHitsRelation = "gte"
)

var TotalHitsRelationCodec = esmodel.Enum("TotalHitsRelation", TotalHitsRelationEq, TotalHitsRelationGte)

// TotalHits is the hit count of a search.
type TotalHits struct{ obj *esmodel.Object }

var totalHitsDescriptor = esmodel.NewDescriptor("TotalHits", nil,
	esmodel.ScalarField("relation", "relation", TotalHitsRelationCodec).Required(),
	esmodel.ScalarField("value", "value", esmodel.Long).Required(),
)

var (
	totalHitsRelation = totalHitsDescriptor.Key("relation")
	totalHitsValue    = totalHitsDescriptor.Key("value")
)

var TotalHitsCodec = esmodel.ModelCodec(totalHitsDescriptor,
	func(o *esmodel.Object) *TotalHits { return &TotalHits{obj: o} },
	(*TotalHits).object)

func (m *TotalHits) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *TotalHits) Relation() TotalHitsRelation {
	return esmodel.Get[TotalHitsRelation](m.object(), totalHitsRelation)
}

func (m *TotalHits) Value() int64 { return esmodel.Get[int64](m.object(), totalHitsValue) }

func (m *TotalHits) ToBuilder() *TotalHitsBuilder {
	return &TotalHitsBuilder{ob: m.obj.ToBuilder()}
}

type TotalHitsBuilder struct{ ob *esmodel.ObjectBuilder }

func NewTotalHitsBuilder() *TotalHitsBuilder {
	return &TotalHitsBuilder{ob: esmodel.NewObjectBuilder(totalHitsDescriptor)}
}

// TotalHitsOf builds a TotalHits configured by fn.
func TotalHitsOf(fn func(*TotalHitsBuilder)) (*TotalHits, error) {
	b := NewTotalHitsBuilder()
	fn(b)
	return b.Build()
}

func (b *TotalHitsBuilder) Relation(v TotalHitsRelation) *TotalHitsBuilder {
	b.ob.Set(totalHitsRelation, v)
	return b
}

func (b *TotalHitsBuilder) Value(v int64) *TotalHitsBuilder {
	b.ob.Set(totalHitsValue, v)
	return b
}

func (b *TotalHitsBuilder) Build() (*TotalHits, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &TotalHits{obj: o}, nil
}

// HitsMetadata is the hits section of a search response.
type HitsMetadata struct{ obj *esmodel.Object }

var hitsMetadataDescriptor = esmodel.NewDescriptor("HitsMetadata", nil,
	esmodel.ScalarField("total", "total", TotalHitsCodec),
	esmodel.ListField("hits", "hits", HitCodec).Required(),
	esmodel.ScalarField("maxScore", "max_score", esmodel.Double),
)

var (
	hitsMetadataTotal    = hitsMetadataDescriptor.Key("total")
	hitsMetadataHits     = hitsMetadataDescriptor.Key("hits")
	hitsMetadataMaxScore = hitsMetadataDescriptor.Key("maxScore")
)

var HitsMetadataCodec = esmodel.ModelCodec(hitsMetadataDescriptor,
	func(o *esmodel.Object) *HitsMetadata { return &HitsMetadata{obj: o} },
	(*HitsMetadata).object)

func (m *HitsMetadata) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *HitsMetadata) Total() *TotalHits {
	return esmodel.Get[*TotalHits](m.object(), hitsMetadataTotal)
}

func (m *HitsMetadata) Hits() esmodel.List[*Hit] {
	return esmodel.GetList[*Hit](m.object(), hitsMetadataHits)
}

func (m *HitsMetadata) MaxScore() *float64 {
	return esmodel.GetOpt[float64](m.object(), hitsMetadataMaxScore)
}

func (m *HitsMetadata) ToBuilder() *HitsMetadataBuilder {
	return &HitsMetadataBuilder{ob: m.obj.ToBuilder()}
}

type HitsMetadataBuilder struct{ ob *esmodel.ObjectBuilder }

func NewHitsMetadataBuilder() *HitsMetadataBuilder {
	return &HitsMetadataBuilder{ob: esmodel.NewObjectBuilder(hitsMetadataDescriptor)}
}

func HitsMetadataOf(fn func(*HitsMetadataBuilder)) (*HitsMetadata, error) {
	b := NewHitsMetadataBuilder()
	fn(b)
	return b.Build()
}

func (b *HitsMetadataBuilder) Total(v *TotalHits) *HitsMetadataBuilder {
	b.ob.Set(hitsMetadataTotal, v)
	return b
}

func (b *HitsMetadataBuilder) TotalFn(fn func(*TotalHitsBuilder)) *HitsMetadataBuilder {
	v, err := TotalHitsOf(fn)
	esmodel.SetBuilt(b.ob, hitsMetadataTotal, v, err)
	return b
}

// Hits replaces the hit list.
func (b *HitsMetadataBuilder) Hits(list []*Hit) *HitsMetadataBuilder {
	esmodel.SetList(b.ob, hitsMetadataHits, list)
	return b
}

// AddHits appends to the hit list.
func (b *HitsMetadataBuilder) AddHits(v ...*Hit) *HitsMetadataBuilder {
	esmodel.AppendList(b.ob, hitsMetadataHits, v...)
	return b
}

func (b *HitsMetadataBuilder) AddHitsFn(fn func(*HitBuilder)) *HitsMetadataBuilder {
	v, err := HitOf(fn)
	esmodel.AppendBuilt(b.ob, hitsMetadataHits, v, err)
	return b
}

func (b *HitsMetadataBuilder) ResetHits() *HitsMetadataBuilder {
	b.ob.Set(hitsMetadataHits, esmodel.ResetList())
	return b
}

func (b *HitsMetadataBuilder) MaxScore(v *float64) *HitsMetadataBuilder {
	esmodel.SetOpt(b.ob, hitsMetadataMaxScore, v)
	return b
}

func (b *HitsMetadataBuilder) Build() (*HitsMetadata, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &HitsMetadata{obj: o}, nil
}

// Hit is one search hit. Its source document is kept as raw JSON; use
// Source().To to decode it into an application type.
type Hit struct{ obj *esmodel.Object }

var hitDescriptor = esmodel.NewDescriptor("Hit", nil,
	esmodel.ScalarField("index", "_index", esmodel.String).Required(),
	esmodel.ScalarField("id", "_id", esmodel.String),
	esmodel.ScalarField("score", "_score", esmodel.Double),
	esmodel.ScalarField("routing", "_routing", esmodel.String),
	esmodel.ScalarField("source", "_source", esmodel.RawJSON),
	esmodel.MapField("fields", "fields", esmodel.RawJSON),
	esmodel.ListField("sort", "sort", esmodel.RawJSON),
)

var (
	hitIndex   = hitDescriptor.Key("index")
	hitID      = hitDescriptor.Key("id")
	hitScore   = hitDescriptor.Key("score")
	hitRouting = hitDescriptor.Key("routing")
	hitSource  = hitDescriptor.Key("source")
	hitFields  = hitDescriptor.Key("fields")
	hitSort    = hitDescriptor.Key("sort")
)

var HitCodec = esmodel.ModelCodec(hitDescriptor,
	func(o *esmodel.Object) *Hit { return &Hit{obj: o} },
	(*Hit).object)

func (m *Hit) object() *esmodel.Object {
	if m == nil {
		return nil
	}
	return m.obj
}

func (m *Hit) Index() string    { return esmodel.Get[string](m.object(), hitIndex) }
func (m *Hit) ID() *string      { return esmodel.GetOpt[string](m.object(), hitID) }
func (m *Hit) Score() *float64  { return esmodel.GetOpt[float64](m.object(), hitScore) }
func (m *Hit) Routing() *string { return esmodel.GetOpt[string](m.object(), hitRouting) }

func (m *Hit) Source() *esmodel.JSONData {
	return esmodel.GetOpt[esmodel.JSONData](m.object(), hitSource)
}

func (m *Hit) Fields() esmodel.Map[esmodel.JSONData] {
	return esmodel.GetMap[esmodel.JSONData](m.object(), hitFields)
}

func (m *Hit) Sort() esmodel.List[esmodel.JSONData] {
	return esmodel.GetList[esmodel.JSONData](m.object(), hitSort)
}

type HitBuilder struct{ ob *esmodel.ObjectBuilder }

func NewHitBuilder() *HitBuilder { return &HitBuilder{ob: esmodel.NewObjectBuilder(hitDescriptor)} }

func HitOf(fn func(*HitBuilder)) (*Hit, error) {
	b := NewHitBuilder()
	fn(b)
	return b.Build()
}

func (b *HitBuilder) Index(v string) *HitBuilder {
	b.ob.Set(hitIndex, v)
	return b
}

func (b *HitBuilder) ID(v *string) *HitBuilder {
	esmodel.SetOpt(b.ob, hitID, v)
	return b
}

func (b *HitBuilder) Score(v *float64) *HitBuilder {
	esmodel.SetOpt(b.ob, hitScore, v)
	return b
}

func (b *HitBuilder) Routing(v *string) *HitBuilder {
	esmodel.SetOpt(b.ob, hitRouting, v)
	return b
}

func (b *HitBuilder) Source(v *esmodel.JSONData) *HitBuilder {
	esmodel.SetOpt(b.ob, hitSource, v)
	return b
}

func (b *HitBuilder) Fields(m map[string]esmodel.JSONData) *HitBuilder {
	esmodel.SetMap(b.ob, hitFields, m)
	return b
}

func (b *HitBuilder) PutFields(key string, v esmodel.JSONData) *HitBuilder {
	esmodel.PutMap(b.ob, hitFields, key, v)
	return b
}

func (b *HitBuilder) Sort(list []esmodel.JSONData) *HitBuilder {
	esmodel.SetList(b.ob, hitSort, list)
	return b
}

func (b *HitBuilder) AddSort(v ...esmodel.JSONData) *HitBuilder {
	esmodel.AppendList(b.ob, hitSort, v...)
	return b
}

func (b *HitBuilder) Build() (*Hit, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &Hit{obj: o}, nil
}
