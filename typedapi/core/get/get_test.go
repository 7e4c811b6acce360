package get_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
	"github.com/reoring/esmodel/typedapi/core/get"
)

func TestRequest_Endpoint(t *testing.T) {
	routing := "r1"
	realtime := false
	r, err := get.RequestOf(func(b *get.RequestBuilder) {
		b.Index("my-index").ID("a/1").Routing(&routing).Realtime(&realtime).AddStoredFields("title", "user")
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e := r.Endpoint()
	if e.Method != http.MethodGet || e.Path != "/my-index/_doc/a%2F1" {
		t.Fatalf("endpoint = %s %s", e.Method, e.Path)
	}
	want := url.Values{"routing": {"r1"}, "realtime": {"false"}, "stored_fields": {"title,user"}}
	if diff := cmp.Diff(want, e.Query); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}

	base, _ := url.Parse("https://es.example.com:9243")
	req, err := r.Request(context.Background(), base)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Body != nil && req.Body != http.NoBody {
		t.Fatalf("get request has a body")
	}
	if got := req.URL.String(); got != "https://es.example.com:9243/my-index/_doc/a%2F1?realtime=false&routing=r1&stored_fields=title%2Cuser" {
		t.Fatalf("url = %s", got)
	}
}

func TestRequest_BodyIsEmpty(t *testing.T) {
	r, err := get.RequestOf(func(b *get.RequestBuilder) { b.Index("i").ID("1") })
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(get.RequestCodec, r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{}` {
		t.Fatalf("got %s", out)
	}
}

func TestRequest_MissingID(t *testing.T) {
	_, err := get.RequestOf(func(b *get.RequestBuilder) { b.Index("i") })
	conformance.RequireMissing(t, err, "id")
	if err.Error() != "missing required property 'GetRequest.id'" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestRequest_DisabledRequiredChecks(t *testing.T) {
	h := esmodel.DisableRequiredChecks(true)
	r, err := get.RequestOf(func(b *get.RequestBuilder) { b.Index("i") })
	if err != nil {
		h.Close()
		t.Fatalf("build with checks disabled: %v", err)
	}
	if r.ID() != "" {
		t.Fatalf("unset id = %q", r.ID())
	}
	h.Close()

	_, err = get.RequestOf(func(b *get.RequestBuilder) { b.Index("i") })
	conformance.RequireMissing(t, err, "id")
}

func TestResponse_Found(t *testing.T) {
	in := `{"_index":"my-index","_id":"1","found":true,"_source":{"user":"kimchy"},` +
		`"_version":2,"_seq_no":10,"_primary_term":1}`
	r := conformance.RoundTrip(t, get.ResponseCodec, in, "")
	if !r.Found() || r.Version() == nil || *r.Version() != 2 {
		t.Fatalf("found=%v version=%v", r.Found(), r.Version())
	}
	var doc map[string]string
	if err := r.Source().To(&doc); err != nil {
		t.Fatalf("source: %v", err)
	}
	if doc["user"] != "kimchy" {
		t.Fatalf("source = %v", doc)
	}
}

func TestResponse_NotFound(t *testing.T) {
	r := conformance.RoundTrip(t, get.ResponseCodec, `{"_index":"my-index","_id":"2","found":false}`, "")
	if r.Found() || r.Source() != nil || r.Fields().IsDefined() {
		t.Fatalf("not-found response carries a document")
	}

	_, err := esmodel.Unmarshal(get.ResponseCodec, []byte(`{"_index":"my-index","_id":"2"}`))
	conformance.RequireMissing(t, err, "found")
}
