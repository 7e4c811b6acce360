package esmodel

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint is the part of a request that travels outside the body: the
// method, the escaped path built from path fields, and the query fields.
type Endpoint struct {
	Method string
	Path   string
	Query  url.Values
}

// Fireable is implemented by request models.
type Fireable interface {
	Endpoint() Endpoint
}

// EscapedPath joins segments into an absolute path, escaping each one.
func EscapedPath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// EscapedList escapes each value and joins them with commas, the form of a
// multi-target path segment such as "logs-1,logs-2". The result is already
// escaped and is not passed to EscapedPath again.
func EscapedList(values ...string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = url.PathEscape(v)
	}
	return strings.Join(out, ",")
}

// URL resolves e against base. base is not modified.
func (e Endpoint) URL(base *url.URL) *url.URL {
	u := *base
	u.RawPath = strings.TrimSuffix(base.EscapedPath(), "/") + e.Path
	if p, err := url.PathUnescape(u.RawPath); err == nil {
		u.Path = p
	}
	u.RawQuery = e.Query.Encode()
	return &u
}

// NewHTTPRequest renders e against base. A nil body sends none; otherwise
// the body is sent as application/json.
func NewHTTPRequest(ctx context.Context, base *url.URL, e Endpoint, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, e.Method, e.URL(base).String(), r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
