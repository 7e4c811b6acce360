// Package get holds the request and response models of the get document
// API (GET /{index}/_doc/{id}).
package get

import (
	"context"
	"net/http"
	"net/url"

	"github.com/reoring/esmodel"
)

// Request fetches one document by id. Every field travels in the path or
// the query string; the body is empty.
type Request struct{ obj *esmodel.Object }

var requestDescriptor = esmodel.NewDescriptor("GetRequest", nil,
	esmodel.ScalarField("index", "index", esmodel.String).Required().In(esmodel.InPath),
	esmodel.ScalarField("id", "id", esmodel.String).Required().In(esmodel.InPath),
	esmodel.ScalarField("routing", "routing", esmodel.String).In(esmodel.InQuery),
	esmodel.ScalarField("preference", "preference", esmodel.String).In(esmodel.InQuery),
	esmodel.ScalarField("realtime", "realtime", esmodel.Bool).In(esmodel.InQuery),
	esmodel.ListField("storedFields", "stored_fields", esmodel.String).In(esmodel.InQuery),
)

var (
	requestIndex        = requestDescriptor.Key("index")
	requestID           = requestDescriptor.Key("id")
	requestRouting      = requestDescriptor.Key("routing")
	requestPreference   = requestDescriptor.Key("preference")
	requestRealtime     = requestDescriptor.Key("realtime")
	requestStoredFields = requestDescriptor.Key("storedFields")
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

func (r *Request) Index() string       { return esmodel.Get[string](r.object(), requestIndex) }
func (r *Request) ID() string          { return esmodel.Get[string](r.object(), requestID) }
func (r *Request) Routing() *string    { return esmodel.GetOpt[string](r.object(), requestRouting) }
func (r *Request) Preference() *string { return esmodel.GetOpt[string](r.object(), requestPreference) }
func (r *Request) Realtime() *bool     { return esmodel.GetOpt[bool](r.object(), requestRealtime) }

func (r *Request) StoredFields() esmodel.List[string] {
	return esmodel.GetList[string](r.object(), requestStoredFields)
}

// Endpoint renders GET /{index}/_doc/{id}.
func (r *Request) Endpoint() esmodel.Endpoint {
	return esmodel.Endpoint{
		Method: http.MethodGet,
		Path:   esmodel.EscapedPath(r.Index(), "_doc", r.ID()),
		Query:  esmodel.QueryValues(r.object()),
	}
}

// Request returns the HTTP request for r against the cluster at uri.
func (r *Request) Request(ctx context.Context, uri *url.URL) (*http.Request, error) {
	return esmodel.NewHTTPRequest(ctx, uri, r.Endpoint(), nil)
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

func (b *RequestBuilder) Index(v string) *RequestBuilder {
	b.ob.Set(requestIndex, v)
	return b
}

func (b *RequestBuilder) ID(v string) *RequestBuilder {
	b.ob.Set(requestID, v)
	return b
}

func (b *RequestBuilder) Routing(v *string) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestRouting, v)
	return b
}

func (b *RequestBuilder) Preference(v *string) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestPreference, v)
	return b
}

func (b *RequestBuilder) Realtime(v *bool) *RequestBuilder {
	esmodel.SetOpt(b.ob, requestRealtime, v)
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

func (b *RequestBuilder) Build() (*Request, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &Request{obj: o}, nil
}

// Response is a fetched document. When Found is false only the
// coordinates are set.
type Response struct{ obj *esmodel.Object }

var responseDescriptor = esmodel.NewDescriptor("GetResponse", nil,
	esmodel.ScalarField("index", "_index", esmodel.String).Required(),
	esmodel.ScalarField("id", "_id", esmodel.String).Required(),
	esmodel.ScalarField("found", "found", esmodel.Bool).Required(),
	esmodel.ScalarField("source", "_source", esmodel.RawJSON),
	esmodel.ScalarField("version", "_version", esmodel.Long),
	esmodel.ScalarField("seqNo", "_seq_no", esmodel.Long),
	esmodel.ScalarField("primaryTerm", "_primary_term", esmodel.Long),
	esmodel.ScalarField("routing", "_routing", esmodel.String),
	esmodel.MapField("fields", "fields", esmodel.RawJSON),
)

var (
	responseIndex       = responseDescriptor.Key("index")
	responseID          = responseDescriptor.Key("id")
	responseFound       = responseDescriptor.Key("found")
	responseSource      = responseDescriptor.Key("source")
	responseVersion     = responseDescriptor.Key("version")
	responseSeqNo       = responseDescriptor.Key("seqNo")
	responsePrimaryTerm = responseDescriptor.Key("primaryTerm")
	responseRouting     = responseDescriptor.Key("routing")
	responseFields      = responseDescriptor.Key("fields")
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

func (r *Response) Index() string { return esmodel.Get[string](r.object(), responseIndex) }
func (r *Response) ID() string    { return esmodel.Get[string](r.object(), responseID) }
func (r *Response) Found() bool   { return esmodel.Get[bool](r.object(), responseFound) }

func (r *Response) Source() *esmodel.JSONData {
	return esmodel.GetOpt[esmodel.JSONData](r.object(), responseSource)
}

func (r *Response) Version() *int64     { return esmodel.GetOpt[int64](r.object(), responseVersion) }
func (r *Response) SeqNo() *int64       { return esmodel.GetOpt[int64](r.object(), responseSeqNo) }
func (r *Response) PrimaryTerm() *int64 { return esmodel.GetOpt[int64](r.object(), responsePrimaryTerm) }
func (r *Response) Routing() *string    { return esmodel.GetOpt[string](r.object(), responseRouting) }

func (r *Response) Fields() esmodel.Map[esmodel.JSONData] {
	return esmodel.GetMap[esmodel.JSONData](r.object(), responseFields)
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

func (b *ResponseBuilder) Index(v string) *ResponseBuilder {
	b.ob.Set(responseIndex, v)
	return b
}

func (b *ResponseBuilder) ID(v string) *ResponseBuilder {
	b.ob.Set(responseID, v)
	return b
}

func (b *ResponseBuilder) Found(v bool) *ResponseBuilder {
	b.ob.Set(responseFound, v)
	return b
}

func (b *ResponseBuilder) Source(v *esmodel.JSONData) *ResponseBuilder {
	esmodel.SetOpt(b.ob, responseSource, v)
	return b
}

func (b *ResponseBuilder) Version(v *int64) *ResponseBuilder {
	esmodel.SetOpt(b.ob, responseVersion, v)
	return b
}

func (b *ResponseBuilder) SeqNo(v *int64) *ResponseBuilder {
	esmodel.SetOpt(b.ob, responseSeqNo, v)
	return b
}

func (b *ResponseBuilder) PrimaryTerm(v *int64) *ResponseBuilder {
	esmodel.SetOpt(b.ob, responsePrimaryTerm, v)
	return b
}

func (b *ResponseBuilder) Routing(v *string) *ResponseBuilder {
	esmodel.SetOpt(b.ob, responseRouting, v)
	return b
}

func (b *ResponseBuilder) Fields(m map[string]esmodel.JSONData) *ResponseBuilder {
	esmodel.SetMap(b.ob, responseFields, m)
	return b
}

func (b *ResponseBuilder) PutFields(key string, v esmodel.JSONData) *ResponseBuilder {
	esmodel.PutMap(b.ob, responseFields, key, v)
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
	esmodel.Register(esmodel.Model{Name: "get.Request", Codec: esmodel.Erase(RequestCodec), Object: requestDescriptor})
	esmodel.Register(esmodel.Model{Name: "get.Response", Codec: esmodel.Erase(ResponseCodec), Object: responseDescriptor})
}
