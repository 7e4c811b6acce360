package esmodel_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/reoring/esmodel"
)

func TestEscapedPath(t *testing.T) {
	if got, want := esmodel.EscapedPath("my idx", "_doc", "a/b"), "/my%20idx/_doc/a%2Fb"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEndpoint_URL(t *testing.T) {
	base, _ := url.Parse("http://localhost:9200/prefix/")
	e := esmodel.Endpoint{Method: http.MethodGet, Path: esmodel.EscapedPath("my idx", "_doc", "a/b"), Query: url.Values{"routing": {"r"}}}
	if got, want := e.URL(base).String(), "http://localhost:9200/prefix/my%20idx/_doc/a%2Fb?routing=r"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if base.Path != "/prefix/" {
		t.Fatalf("base modified: %q", base.Path)
	}
}

func TestNewHTTPRequest(t *testing.T) {
	base, _ := url.Parse("http://localhost:9200")
	e := esmodel.Endpoint{Method: http.MethodPost, Path: "/_search", Query: url.Values{}}
	req, err := esmodel.NewHTTPRequest(context.Background(), base, e, []byte(`{}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Method != http.MethodPost || req.URL.String() != "http://localhost:9200/_search" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != "{}" {
		t.Fatalf("body = %q", body)
	}

	req, err = esmodel.NewHTTPRequest(context.Background(), base, esmodel.Endpoint{Method: http.MethodGet, Path: "/_cat/indices"}, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Body != nil || req.Header.Get("Content-Type") != "" {
		t.Fatalf("GET without body should carry neither body nor content type")
	}
}
