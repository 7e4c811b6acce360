// Package search holds the request and response models of the search API.
package search

import (
	"context"
	"net/http"
	"net/url"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/typedapi/types"
)

// Request runs a query, optionally scoped to indices. Indices and routing
// travel in the URL; everything else is the JSON body.
type Request struct{ obj *esmodel.Object }

var requestDescriptor = esmodel.NewDescriptor("SearchRequest", nil,
	esmodel.ListField("index", "index", esmodel.String).In(esmodel.InPath),
	esmodel.ScalarField("routing", "routing", esmodel.String).In(esmodel.InQuery),
	esmodel.ScalarField("from", "from", esmodel.Int),
	esmodel.ScalarField("size", "size", esmodel.Int),
	esmodel.ScalarField("query", "query", types.QueryCodec),
	esmodel.MapField("aggregations", "aggregations", types.AggregationCodec),
	esmodel.ListField("storedFields", "stored_fields", esmodel.String),
	esmodel.ListField("docvalueFields", "docvalue_fields", types.FieldAndFormatCodec),
	esmodel.ScalarField("trackTotalHits", "track_total_hits", esmodel.Bool),
)

var (
	requestIndex          = requestDescriptor.Key("index")
	requestRouting        = requestDescriptor.Key("routing")
	requestFrom           = requestDescriptor.Key("from")
	requestSize           = requestDescriptor.Key("size")
	requestQuery          = requestDescriptor.Key("query")
	requestAggregations   = requestDescriptor.Key("aggregations")
	requestStoredFields   = requestDescriptor.Key("storedFields")
	requestDocvalueFields = requestDescriptor.Key("docvalueFields")
	requestTrackTotalHits = requestDescriptor.Key("trackTotalHits")
)

var RequestCodec = esmodel.ModelCodec(requestDescriptor,
	func(o *esmodel.Object) *Request { return &Request{obj: o} },
	(*Request).object)

func (r *Request) object() *esmodel.Object {
	if r == nil {
		return nil
	}
	return r.obj
}

func (r *Request) Index() esmodel.List[string] {
	return esmodel.GetList[string](r.object(), requestIndex)
}

func (r *Request) Routing() *string    { return esmodel.GetOpt[string](r.object(), requestRouting) }
func (r *Request) From() *int          { return esmodel.GetOpt[int](r.object(), requestFrom) }
func (r *Request) Size() *int          { return esmodel.GetOpt[int](r.object(), requestSize) }
func (r *Request) Query() *types.Query { return esmodel.Get[*types.Query](r.object(), requestQuery) }

func (r *Request) Aggregations() esmodel.Map[*types.Aggregation] {
	return esmodel.GetMap[*types.Aggregation](r.object(), requestAggregations)
}

func (r *Request) StoredFields() esmodel.List[string] {
	return esmodel.GetList[string](r.object(), requestStoredFields)
}

func (r *Request) DocvalueFields() esmodel.List[*types.FieldAndFormat] {
	return esmodel.GetList[*types.FieldAndFormat](r.object(), requestDocvalueFields)
}

func (r *Request) TrackTotalHits() *bool {
	return esmodel.GetOpt[bool](r.object(), requestTrackTotalHits)
}

// Endpoint renders POST /_search, or POST /{index,...}/_search when
// indices are set.
func (r *Request) Endpoint() esmodel.Endpoint {
	path := "/_search"
	if idx := r.Index(); idx.Len() > 0 {
		path = "/" + esmodel.EscapedList(idx.Slice()...) + "/_search"
	}
	return esmodel.Endpoint{Method: http.MethodPost, Path: path, Query: esmodel.QueryValues(r.object())}
}

// Request returns the HTTP request for r against the cluster at uri, with
// the body fields as JSON.
func (r *Request) Request(ctx context.Context, uri *url.URL) (*http.Request, error) {
	body, err := esmodel.Marshal(RequestCodec, r)
	if err != nil {
		return nil, err
	}
	return esmodel.NewHTTPRequest(ctx, uri, r.Endpoint(), body)
}

func (r *Request) ToBuilder() *RequestBuilder { return &RequestBuilder{ob: r.obj.ToBuilder()} }

type RequestBuilder struct{ ob *esmodel.ObjectBuilder }

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{ob: esmodel.NewObjectBuilder(requestDescriptor)}
}

// RequestOf builds a Request configured by fn.
func RequestOf(fn func(*RequestBuilder)) (*Request, error) {
	b := NewRequestBuilder()
	fn(b)
	return b.Build()
}

func (b *RequestBuilder) Index(list []string) *RequestBuilder {
	esmodel.SetList(b.ob, requestIndex, list)
	return b
}

func (b *RequestBuilder) AddIndex(v ...string) *RequestBuilder {
	esmodel.AppendList(b.ob, requestIndex, v...)
	return b
}

func (b *RequestBuilder) Routing(v *string) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestRouting, v)
	return b
}

func (b *RequestBuilder) From(v *int) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestFrom, v)
	return b
}

func (b *RequestBuilder) Size(v *int) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestSize, v)
	return b
}

func (b *RequestBuilder) Query(v *types.Query) *RequestBuilder {
	b.ob.Set(requestQuery, v)
	return b
}

func (b *RequestBuilder) QueryFn(fn func(*types.QueryBuilder)) *RequestBuilder {
	v, err := types.QueryOf(fn)
	esmodel.SetBuilt(b.ob, requestQuery, v, err)
	return b
}

func (b *RequestBuilder) Aggregations(m map[string]*types.Aggregation) *RequestBuilder {
	esmodel.SetMap(b.ob, requestAggregations, m)
	return b
}

func (b *RequestBuilder) PutAggregations(name string, v *types.Aggregation) *RequestBuilder {
	esmodel.PutMap(b.ob, requestAggregations, name, v)
	return b
}

func (b *RequestBuilder) PutAggregationsFn(name string, fn func(*types.AggregationBuilder)) *RequestBuilder {
	v, err := types.AggregationOf(fn)
	esmodel.PutBuilt(b.ob, requestAggregations, name, v, err)
	return b
}

func (b *RequestBuilder) StoredFields(list []string) *RequestBuilder {
	esmodel.SetList(b.ob, requestStoredFields, list)
	return b
}

func (b *RequestBuilder) AddStoredFields(v ...string) *RequestBuilder {
	esmodel.AppendList(b.ob, requestStoredFields, v...)
	return b
}

func (b *RequestBuilder) ResetStoredFields() *RequestBuilder {
	b.ob.Set(requestStoredFields, esmodel.ResetList())
	return b
}

func (b *RequestBuilder) DocvalueFields(list []*types.FieldAndFormat) *RequestBuilder {
	esmodel.SetList(b.ob, requestDocvalueFields, list)
	return b
}

func (b *RequestBuilder) AddDocvalueFields(v ...*types.FieldAndFormat) *RequestBuilder {
	esmodel.AppendList(b.ob, requestDocvalueFields, v...)
	return b
}

func (b *RequestBuilder) AddDocvalueFieldsFn(fn func(*types.FieldAndFormatBuilder)) *RequestBuilder {
	v, err := types.FieldAndFormatOf(fn)
	esmodel.AppendBuilt(b.ob, requestDocvalueFields, v, err)
	return b
}

func (b *RequestBuilder) TrackTotalHits(v *bool) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestTrackTotalHits, v)
	return b
}

func (b *RequestBuilder) Build() (*Request, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &Request{obj: o}, nil
}

// ShardStatistics counts the shards a search ran on.
type ShardStatistics struct{ obj *esmodel.Object }

var shardStatisticsDescriptor = esmodel.NewDescriptor("ShardStatistics", nil,
	esmodel.ScalarField("total", "total", esmodel.Int).Required(),
	esmodel.ScalarField("successful", "successful", esmodel.Int).Required(),
	esmodel.ScalarField("skipped", "skipped", esmodel.Int),
	esmodel.ScalarField("failed", "failed", esmodel.Int).Required(),
)

var (
	shardStatisticsTotal      = shardStatisticsDescriptor.Key("total")
	shardStatisticsSuccessful = shardStatisticsDescriptor.Key("successful")
	shardStatisticsSkipped    = shardStatisticsDescriptor.Key("skipped")
	shardStatisticsFailed     = shardStatisticsDescriptor.Key("failed")
)

var ShardStatisticsCodec = esmodel.ModelCodec(shardStatisticsDescriptor,
	func(o *esmodel.Object) *ShardStatistics { return &ShardStatistics{obj: o} },
	(*ShardStatistics).object)

func (s *ShardStatistics) object() *esmodel.Object {
	if s == nil {
		return nil
	}
	return s.obj
}

func (s *ShardStatistics) Total() int      { return esmodel.Get[int](s.object(), shardStatisticsTotal) }
func (s *ShardStatistics) Successful() int { return esmodel.Get[int](s.object(), shardStatisticsSuccessful) }
func (s *ShardStatistics) Skipped() *int   { return esmodel.GetOpt[int](s.object(), shardStatisticsSkipped) }
func (s *ShardStatistics) Failed() int     { return esmodel.Get[int](s.object(), shardStatisticsFailed) }

type ShardStatisticsBuilder struct{ ob *esmodel.ObjectBuilder }

func NewShardStatisticsBuilder() *ShardStatisticsBuilder {
	return &ShardStatisticsBuilder{ob: esmodel.NewObjectBuilder(shardStatisticsDescriptor)}
}

func ShardStatisticsOf(fn func(*ShardStatisticsBuilder)) (*ShardStatistics, error) {
	b := NewShardStatisticsBuilder()
	fn(b)
	return b.Build()
}

func (b *ShardStatisticsBuilder) Total(v int) *ShardStatisticsBuilder {
	b.ob.Set(shardStatisticsTotal, v)
	return b
}

func (b *ShardStatisticsBuilder) Successful(v int) *ShardStatisticsBuilder {
	b.ob.Set(shardStatisticsSuccessful, v)
	return b
}

func (b *ShardStatisticsBuilder) Skipped(v *int) *ShardStatisticsBuilder {
	esmodel.SetOpt(b.ob, shardStatisticsSkipped, v)
	return b
}

func (b *ShardStatisticsBuilder) Failed(v int) *ShardStatisticsBuilder {
	b.ob.Set(shardStatisticsFailed, v)
	return b
}

func (b *ShardStatisticsBuilder) Build() (*ShardStatistics, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &ShardStatistics{obj: o}, nil
}

// Response is a search result. Aggregations arrive under typed keys
// ("date_range#per_month") and are keyed here by their plain name.
type Response struct{ obj *esmodel.Object }

var responseDescriptor = esmodel.NewDescriptor("SearchResponse", nil,
	esmodel.ScalarField("took", "took", esmodel.Long).Required(),
	esmodel.ScalarField("timedOut", "timed_out", esmodel.Bool).Required(),
	esmodel.ScalarField("shards", "_shards", ShardStatisticsCodec).Required(),
	esmodel.ScalarField("hits", "hits", types.HitsMetadataCodec).Required(),
	esmodel.TypedKeysMapField("aggregations", "aggregations", types.AggregateCodec),
)

var (
	responseTook         = responseDescriptor.Key("took")
	responseTimedOut     = responseDescriptor.Key("timedOut")
	responseShards       = responseDescriptor.Key("shards")
	responseHits         = responseDescriptor.Key("hits")
	responseAggregations = responseDescriptor.Key("aggregations")
)

var ResponseCodec = esmodel.ModelCodec(responseDescriptor,
	func(o *esmodel.Object) *Response { return &Response{obj: o} },
	(*Response).object)

func (r *Response) object() *esmodel.Object {
	if r == nil {
		return nil
	}
	return r.obj
}

func (r *Response) Took() int64    { return esmodel.Get[int64](r.object(), responseTook) }
func (r *Response) TimedOut() bool { return esmodel.Get[bool](r.object(), responseTimedOut) }

func (r *Response) Shards() *ShardStatistics {
	return esmodel.Get[*ShardStatistics](r.object(), responseShards)
}

func (r *Response) Hits() *types.HitsMetadata {
	return esmodel.Get[*types.HitsMetadata](r.object(), responseHits)
}

func (r *Response) Aggregations() esmodel.Map[*types.Aggregate] {
	return esmodel.GetMap[*types.Aggregate](r.object(), responseAggregations)
}

type ResponseBuilder struct{ ob *esmodel.ObjectBuilder }

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{ob: esmodel.NewObjectBuilder(responseDescriptor)}
}

func ResponseOf(fn func(*ResponseBuilder)) (*Response, error) {
	b := NewResponseBuilder()
	fn(b)
	return b.Build()
}

func (b *ResponseBuilder) Took(v int64) *ResponseBuilder {
	b.ob.Set(responseTook, v)
	return b
}

func (b *ResponseBuilder) TimedOut(v bool) *ResponseBuilder {
	b.ob.Set(responseTimedOut, v)
	return b
}

func (b *ResponseBuilder) Shards(v *ShardStatistics) *ResponseBuilder {
	b.ob.Set(responseShards, v)
	return b
}

func (b *ResponseBuilder) ShardsFn(fn func(*ShardStatisticsBuilder)) *ResponseBuilder {
	v, err := ShardStatisticsOf(fn)
	esmodel.SetBuilt(b.ob, responseShards, v, err)
	return b
}

func (b *ResponseBuilder) Hits(v *types.HitsMetadata) *ResponseBuilder {
	b.ob.Set(responseHits, v)
	return b
}

func (b *ResponseBuilder) HitsFn(fn func(*types.HitsMetadataBuilder)) *ResponseBuilder {
	v, err := types.HitsMetadataOf(fn)
	esmodel.SetBuilt(b.ob, responseHits, v, err)
	return b
}

func (b *ResponseBuilder) Aggregations(m map[string]*types.Aggregate) *ResponseBuilder {
	esmodel.SetMap(b.ob, responseAggregations, m)
	return b
}

func (b *ResponseBuilder) PutAggregations(name string, v *types.Aggregate) *ResponseBuilder {
	esmodel.PutMap(b.ob, responseAggregations, name, v)
	return b
}

func (b *ResponseBuilder) PutAggregationsFn(name string, fn func(*types.AggregateBuilder)) *ResponseBuilder {
	v, err := types.AggregateOf(fn)
	esmodel.PutBuilt(b.ob, responseAggregations, name, v, err)
	return b
}

func (b *ResponseBuilder) Build() (*Response, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &Response{obj: o}, nil
}

func init() {
	esmodel.Register(esmodel.Model{Name: "search.Request", Codec: esmodel.Erase(RequestCodec), Object: requestDescriptor})
	esmodel.Register(esmodel.Model{Name: "search.ShardStatistics", Codec: esmodel.Erase(ShardStatisticsCodec), Object: shardStatisticsDescriptor})
	esmodel.Register(esmodel.Model{Name: "search.Response", Codec: esmodel.Erase(ResponseCodec), Object: responseDescriptor})
}
