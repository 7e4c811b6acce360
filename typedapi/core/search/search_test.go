package search_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
	"github.com/reoring/esmodel/typedapi/core/search"
	"github.com/reoring/esmodel/typedapi/types"
)

func TestRequest_Empty(t *testing.T) {
	r, err := search.RequestOf(func(*search.RequestBuilder) {})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(search.RequestCodec, r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{}` {
		t.Fatalf("got %s", out)
	}
	e := r.Endpoint()
	if e.Method != http.MethodPost || e.Path != "/_search" || len(e.Query) != 0 {
		t.Fatalf("endpoint = %+v", e)
	}
}

func TestRequest_EmptyStoredFields(t *testing.T) {
	r, err := search.RequestOf(func(b *search.RequestBuilder) { b.StoredFields([]string{}) })
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(search.RequestCodec, r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"stored_fields":[]}` {
		t.Fatalf("got %s", out)
	}
	if !r.StoredFields().IsDefined() || r.StoredFields().Len() != 0 {
		t.Fatalf("stored_fields should be defined and empty")
	}
}

func TestRequest_ResetStoredFields(t *testing.T) {
	r, err := search.RequestOf(func(b *search.RequestBuilder) {
		b.StoredFields([]string{"a"}).ResetStoredFields()
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if r.StoredFields().IsDefined() {
		t.Fatalf("stored_fields should be unset after reset")
	}
	out, err := esmodel.Marshal(search.RequestCodec, r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{}` {
		t.Fatalf("got %s", out)
	}
}

func TestRequest_EndpointAndBody(t *testing.T) {
	routing := "user1"
	size := 0
	r, err := search.RequestOf(func(b *search.RequestBuilder) {
		b.AddIndex("logs-a", "logs b").Routing(&routing).Size(&size).
			QueryFn(func(b *types.QueryBuilder) {
				b.TermFn(func(b *types.TermQueryBuilder) { b.Field("user").Value(esmodel.JSONDataOf("kimchy")) })
			}).
			PutAggregationsFn("users", func(b *types.AggregationBuilder) {
				field := "user"
				b.CardinalityFn(func(b *types.CardinalityAggregationBuilder) { b.Field(&field) })
			}).
			AddDocvalueFieldsFn(func(b *types.FieldAndFormatBuilder) { b.Field("ts") })
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	e := r.Endpoint()
	if e.Path != "/logs-a,logs%20b/_search" {
		t.Fatalf("path = %q", e.Path)
	}
	if diff := cmp.Diff(url.Values{"routing": {"user1"}}, e.Query); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}

	base, _ := url.Parse("http://localhost:9200")
	req, err := r.Request(context.Background(), base)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Method != http.MethodPost || req.URL.String() != "http://localhost:9200/logs-a,logs%20b/_search?routing=user1" {
		t.Fatalf("request = %s %s", req.Method, req.URL)
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	want := `{"size":0,"query":{"term":{"user":{"value":"kimchy"}}},` +
		`"aggregations":{"users":{"cardinality":{"field":"user"}}},"docvalue_fields":[{"field":"ts"}]}`
	if diff := cmp.Diff(want, string(body)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRequest_PathFieldsStayOutOfBody(t *testing.T) {
	r, err := esmodel.Unmarshal(search.RequestCodec, []byte(`{"index":["x"],"routing":"r","from":5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Index().IsDefined() || r.Routing() != nil {
		t.Fatalf("path or query field read from the body")
	}
	if r.From() == nil || *r.From() != 5 {
		t.Fatalf("from = %v", r.From())
	}
}

func TestRequest_SingleUse(t *testing.T) {
	b := search.NewRequestBuilder()
	conformance.CheckSingleUse(t, func() error {
		_, err := b.Build()
		return err
	})
}

const responseJSON = `{"took":3,"timed_out":false,"_shards":{"total":1,"successful":1,"skipped":0,"failed":0},` +
	`"hits":{"total":{"relation":"eq","value":0},"hits":[],"max_score":null},` +
	`"aggregations":{"cardinality#users":{"value":5},"date_range#per_month":{"buckets":[{"doc_count":2,"key":"old"}]}}}`

func TestResponse_TypedKeys(t *testing.T) {
	r, err := esmodel.Unmarshal(search.ResponseCodec, []byte(responseJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Took() != 3 || r.TimedOut() || r.Shards().Total() != 1 {
		t.Fatalf("header = %d/%v/%d", r.Took(), r.TimedOut(), r.Shards().Total())
	}
	if r.Hits().MaxScore() != nil {
		t.Fatalf("max_score should be absent")
	}
	if got := r.Aggregations().Keys(); len(got) != 2 || got[0] != "users" || got[1] != "per_month" {
		t.Fatalf("aggregation names = %v", got)
	}
	users, _ := r.Aggregations().Get("users")
	card, ok := users.Cardinality()
	if !ok || card.Value() != 5 {
		t.Fatalf("users = %v", users.Kind())
	}
	perMonth, _ := r.Aggregations().Get("per_month")
	dr, ok := perMonth.DateRange()
	if !ok || dr.Buckets().Array().At(0).DocCount() != 2 {
		t.Fatalf("per_month = %v", perMonth.Kind())
	}

	want := strings.Replace(responseJSON, `,"max_score":null`, "", 1)
	conformance.RoundTrip(t, search.ResponseCodec, responseJSON, want)
}

func TestResponse_UntypedAggregationKey(t *testing.T) {
	in := strings.Replace(responseJSON, "cardinality#users", "users", 1)
	_, err := esmodel.Unmarshal(search.ResponseCodec, []byte(in))
	var uv *esmodel.UnrecognizedWireValueError
	if !errors.As(err, &uv) {
		t.Fatalf("expected UnrecognizedWireValueError, got %v", err)
	}
}

func TestResponse_UnknownAggregateKind(t *testing.T) {
	in := strings.Replace(responseJSON, "cardinality#users", "sterms#users", 1)
	_, err := esmodel.Unmarshal(search.ResponseCodec, []byte(in))
	var uv *esmodel.UnrecognizedWireValueError
	if !errors.As(err, &uv) {
		t.Fatalf("expected UnrecognizedWireValueError, got %v", err)
	}
}

func TestResponse_MissingInnerHits(t *testing.T) {
	in := strings.Replace(responseJSON, `"hits":[],`, "", 1)
	_, err := esmodel.Unmarshal(search.ResponseCodec, []byte(in))
	m, ok := esmodel.IsMissingRequiredField(err)
	if !ok {
		t.Fatalf("expected missing required field, got %v", err)
	}
	if m.Path != "hits.hits" {
		t.Fatalf("path = %q", m.Path)
	}
	if !strings.Contains(err.Error(), ".hits") {
		t.Fatalf("message %q does not name the field", err.Error())
	}
}

func TestResponse_Builder(t *testing.T) {
	r, err := search.ResponseOf(func(b *search.ResponseBuilder) {
		b.Took(1).TimedOut(false).
			ShardsFn(func(b *search.ShardStatisticsBuilder) { b.Total(1).Successful(1).Failed(0) }).
			HitsFn(func(b *types.HitsMetadataBuilder) { b.Hits([]*types.Hit{}) }).
			PutAggregationsFn("n", func(b *types.AggregateBuilder) {
				b.CardinalityFn(func(b *types.CardinalityAggregateBuilder) { b.Value(9) })
			})
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(search.ResponseCodec, r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"took":1,"timed_out":false,"_shards":{"total":1,"successful":1,"failed":0},` +
		`"hits":{"hits":[]},"aggregations":{"cardinality#n":{"value":9}}}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRequest_StoredFieldsCopyOnWrite(t *testing.T) {
	seed := make([]string, 2, 8)
	seed[0], seed[1] = "a", "b"
	r, err := search.RequestOf(func(b *search.RequestBuilder) {
		b.StoredFields(seed).AddStoredFields("c").AddStoredFields("d", "e", "f")
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, r.StoredFields().Slice()); diff != "" {
		t.Fatalf("stored_fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, seed); diff != "" {
		t.Fatalf("caller slice changed (-want +got):\n%s", diff)
	}
	if spare := seed[:cap(seed)]; spare[2] != "" {
		t.Fatalf("caller backing array written: %q", spare)
	}
}

func TestRequest_AggregationsCopyOnWrite(t *testing.T) {
	agg := func(field string) *types.Aggregation {
		a, err := types.AggregationOf(func(b *types.AggregationBuilder) {
			b.CardinalityFn(func(b *types.CardinalityAggregationBuilder) { b.Field(&field) })
		})
		if err != nil {
			t.Fatalf("build %s: %v", field, err)
		}
		return a
	}
	caller := map[string]*types.Aggregation{"aggA": agg("a"), "aggB": agg("b")}
	r, err := search.RequestOf(func(b *search.RequestBuilder) {
		b.Aggregations(caller).
			PutAggregations("aggC", agg("c")).
			PutAggregationsFn("aggD", func(b *types.AggregationBuilder) {
				field := "d"
				b.ValueCountFn(func(b *types.ValueCountAggregationBuilder) { b.Field(&field) })
			})
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"aggA", "aggB", "aggC", "aggD"}, r.Aggregations().Keys()); diff != "" {
		t.Fatalf("aggregation names (-want +got):\n%s", diff)
	}
	if len(caller) != 2 {
		t.Fatalf("caller map changed: %d entries", len(caller))
	}
	if _, ok := caller["aggC"]; ok {
		t.Fatalf("caller map received aggC")
	}
}
