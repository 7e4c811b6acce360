package esmodel_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
	js "github.com/reoring/esmodel/jsonschema"
)

type treeCodec struct{}

var treeDesc = esmodel.NewDescriptor("Tree", nil,
	esmodel.ScalarField("value", "value", esmodel.Long),
	esmodel.ListField("children", "children", esmodel.Codec[*esmodel.Object](treeCodec{})),
)

func (treeCodec) Encode(g esmodel.Generator, o *esmodel.Object) error {
	return esmodel.SerializeObject(g, o)
}

func (treeCodec) Decode(d *esmodel.Decoder) (*esmodel.Object, error) {
	return esmodel.DecodeObject(d, treeDesc)
}

func (treeCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return esmodel.DescriptorSchema(treeDesc, defs)
}

func TestExportSchema_Object(t *testing.T) {
	s := esmodel.ExportSchema(widgetCodec)
	if s.SchemaURI != js.Draft || s.Ref != "#/$defs/Widget" {
		t.Fatalf("unexpected root: %+v", s)
	}
	w := s.Defs["Widget"]
	if w == nil {
		t.Fatalf("Widget missing from $defs")
	}
	if diff := cmp.Diff([]string{"name"}, w.Required); diff != "" {
		t.Fatalf("required (-want +got):\n%s", diff)
	}
	if tags := w.Properties["tags"]; tags.Type != "array" || tags.Items.Type != "string" {
		t.Fatalf("tags schema: %+v", tags)
	}
	if labels := w.Properties["labels"]; labels.Type != "object" || labels.AdditionalProperties == nil {
		t.Fatalf("labels schema: %+v", labels)
	}
	if p := w.Properties["part"]; p.Ref != "#/$defs/Part" {
		t.Fatalf("part should be a $ref, got %+v", p)
	}
	if r := w.Properties["ratio"]; r.Type != "number" || r.Format != "double" {
		t.Fatalf("ratio schema: %+v", r)
	}
}

func TestExportSchema_Recursive(t *testing.T) {
	s := esmodel.ExportSchema(treeCodec{})
	tree := s.Defs["Tree"]
	if tree == nil {
		t.Fatalf("Tree missing from $defs")
	}
	if got := tree.Properties["children"].Items.Ref; got != "#/$defs/Tree" {
		t.Fatalf("children items ref = %q", got)
	}
	if len(s.Defs) != 1 {
		t.Fatalf("expected a single definition, got %d", len(s.Defs))
	}
}

func TestExportSchema_Scalar(t *testing.T) {
	s := esmodel.ExportSchema(esmodel.Long)
	if s.Type != "integer" || s.Format != "int64" || s.Defs != nil {
		t.Fatalf("unexpected scalar schema: %+v", s)
	}
}

func TestRecursiveRoundTrip(t *testing.T) {
	conformance.RoundTrip[*esmodel.Object](t, treeCodec{},
		`{"value":1,"children":[{"value":2,"children":[]},{"children":[{"value":3}]}]}`, "")
}

func TestRegistry(t *testing.T) {
	esmodel.Register(esmodel.Model{Name: "test.Widget", Codec: esmodel.Erase(widgetCodec), Object: widgetDesc})
	m, ok := esmodel.Lookup("TEST.widget")
	if !ok || m.Name != "test.Widget" {
		t.Fatalf("case-insensitive lookup failed: %+v %v", m, ok)
	}
	if _, ok := esmodel.Lookup("test.Missing"); ok {
		t.Fatalf("unexpected model")
	}

	o, err := m.Codec.DecodeAny(esmodel.NewDecoder(esmodel.JSONBytes([]byte(`{"name":"n"}`))))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := m.Codec.EncodeAny(esmodel.NewJSONGenerator(&discard{}), "not an object"); err == nil {
		t.Fatalf("EncodeAny should reject a foreign type")
	}
	if err := m.Codec.EncodeAny(esmodel.NewJSONGenerator(&discard{}), o); err != nil {
		t.Fatalf("EncodeAny: %v", err)
	}

	models := esmodel.Models()
	for i := 1; i < len(models); i++ {
		if models[i-1].Name >= models[i].Name {
			t.Fatalf("models not sorted: %s before %s", models[i-1].Name, models[i].Name)
		}
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("duplicate registration should panic")
		}
	}()
	esmodel.Register(esmodel.Model{Name: "test.Widget", Codec: esmodel.Erase(widgetCodec)})
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestMarshalSchema_Recursive(t *testing.T) {
	out, err := esmodel.MarshalSchema(esmodel.ExportSchema(treeCodec{}), "", "")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"$schema":"https://json-schema.org/draft/2020-12/schema","$ref":"#/$defs/Tree","$defs":{"Tree":` +
		`{"title":"Tree","type":"object","properties":{"children":{"type":"array","items":{"$ref":"#/$defs/Tree"}},` +
		`"value":{"type":"integer","format":"int64"}}}}}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	indented, err := esmodel.MarshalSchema(esmodel.ExportSchema(treeCodec{}), "", "  ")
	if err != nil {
		t.Fatalf("marshal indented: %v", err)
	}
	if !strings.Contains(string(indented), "\n  \"$ref\": \"#/$defs/Tree\",\n") {
		t.Fatalf("not indented:\n%s", indented)
	}
}
