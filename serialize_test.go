package esmodel_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
)

func TestSerialize_DescriptorOrderAndOmission(t *testing.T) {
	o := newWidget(t, func(b *esmodel.ObjectBuilder) {
		esmodel.PutMap(b, widgetLabels, "k", "v")
		b.Set(widgetSize, 2)
		esmodel.SetList(b, widgetTags, []string{})
	})
	out, err := esmodel.Marshal(widgetCodec, o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"w","size":2,"tags":[],"labels":{"k":"v"}}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	in := `{"name":"w","ratio":1.0,"tags":["a","b"],"labels":{"z":"1","a":"2"},"part":{"id":"p1"}}`
	conformance.RoundTrip(t, widgetCodec, in, "")
}

func TestDeserialize_UnknownKeysAndNull(t *testing.T) {
	in := `{"extra":{"deep":[1,{"x":null}]},"name":"w","size":null,"tags":null}`
	o := conformance.RoundTrip(t, widgetCodec, in, `{"name":"w"}`)
	if o.IsSet(widgetSize) || o.IsSet(widgetTags) {
		t.Fatalf("null should leave fields unset")
	}
}

func TestDeserialize_NestedMissingRequired(t *testing.T) {
	_, err := esmodel.Unmarshal(widgetCodec, []byte(`{"name":"w","part":{}}`))
	conformance.RequireMissing(t, err, "part.id")
}

func TestDeserialize_WrongTypePath(t *testing.T) {
	_, err := esmodel.Unmarshal(widgetCodec, []byte(`{"name":"w","tags":["a",true]}`))
	var u *esmodel.UnrecognizedWireValueError
	if !errors.As(err, &u) {
		t.Fatalf("expected UnrecognizedWireValueError, got %T %v", err, err)
	}
	if u.Path != "tags[1]" || u.Expected != "string" {
		t.Fatalf("unexpected error fields: %+v", u)
	}
	if u.Offset <= 0 {
		t.Fatalf("expected a byte offset, got %d", u.Offset)
	}
}

func TestDeserialize_NumbersAsStrings(t *testing.T) {
	o, err := esmodel.Unmarshal(widgetCodec, []byte(`{"name":"w","size":"12","ratio":"0.25"}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if esmodel.Get[int](o, widgetSize) != 12 || esmodel.Get[float64](o, widgetRatio) != 0.25 {
		t.Fatalf("string numbers not coerced")
	}
	if _, err := esmodel.Unmarshal(widgetCodec, []byte(`{"name":"w","size":1.5}`)); err == nil {
		t.Fatalf("a fractional size should not decode as int")
	}
}

func TestUnmarshal_TrailingData(t *testing.T) {
	if _, err := esmodel.Unmarshal(widgetCodec, []byte(`{"name":"w"} {}`)); err == nil {
		t.Fatalf("expected an error for trailing data")
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	src := esmodel.StdlibJSONDriver().NewBytes([]byte(`{"name":"w","tags":["a"`))
	_, err := esmodel.Read(widgetCodec, src)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
	var pe *esmodel.ParseError
	if !errors.As(err, &pe) || pe.Code() != esmodel.CodeParseError {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if !strings.HasPrefix(pe.Path, "tags") {
		t.Fatalf("path = %q", pe.Path)
	}
}

func TestUnmarshal_MalformedIsParseError(t *testing.T) {
	_, err := esmodel.Read(widgetCodec, esmodel.StdlibJSONDriver().NewBytes([]byte(`{"name":}`)))
	var pe *esmodel.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestMarshalIndent(t *testing.T) {
	o := newWidget(t, func(b *esmodel.ObjectBuilder) { b.Set(widgetSize, 1) })
	out, err := esmodel.MarshalIndent(widgetCodec, o, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"name\": \"w\",\n  \"size\": 1\n}"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestJSONReader(t *testing.T) {
	o, err := esmodel.Read(widgetCodec, esmodel.JSONReader(strings.NewReader(`{"name":"r"}`)))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if esmodel.Get[string](o, widgetName) != "r" {
		t.Fatalf("name not read")
	}
}

func TestRawJSON(t *testing.T) {
	in := `{"b":[1,2.5,"x",true,null],"a":{"n":-3}}`
	v := conformance.RoundTrip(t, esmodel.RawJSON, in, "")
	var target struct {
		A struct{ N int } `json:"a"`
	}
	if err := v.To(&target); err != nil {
		t.Fatalf("To: %v", err)
	}
	if target.A.N != -3 {
		t.Fatalf("To decoded %+v", target)
	}

	out, err := esmodel.Marshal(esmodel.RawJSON, esmodel.JSONDataOf(struct {
		Name string `json:"name"`
		N    float64
	}{"s", 2}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"name":"s","N":2}` {
		t.Fatalf("got %s", out)
	}

	out, err = esmodel.Marshal(esmodel.RawJSON, esmodel.JSONDataOf(map[string]any{"b": 1, "a": 2}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":2,"b":1}` {
		t.Fatalf("go map keys should be sorted, got %s", out)
	}
}

func TestRawJSON_KeepsWireKeyOrder(t *testing.T) {
	in := `{"title":"x","author":"y","tags":[{"z":1,"a":2}],"nested":{"k2":null,"k1":{"b":true,"a":false}}}`
	v := conformance.RoundTrip(t, esmodel.RawJSON, in, "")
	m, ok := v.Value().(map[string]any)
	if !ok || m["author"] != "y" {
		t.Fatalf("Value() = %#v", v.Value())
	}

	// a repeated key keeps its first position and its last value
	conformance.RoundTrip(t, esmodel.RawJSON, `{"b":1,"a":2,"b":3}`, `{"b":3,"a":2}`)
}
