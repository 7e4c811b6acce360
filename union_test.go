package esmodel_test

import (
	"errors"
	"testing"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
	js "github.com/reoring/esmodel/jsonschema"
)

func objectCodec(desc *esmodel.Descriptor) esmodel.Codec[*esmodel.Object] {
	return esmodel.ModelCodec(desc,
		func(o *esmodel.Object) *esmodel.Object { return o },
		func(o *esmodel.Object) *esmodel.Object { return o })
}

var (
	circleDesc = esmodel.NewDescriptor("Circle", nil,
		esmodel.ScalarField("radius", "radius", esmodel.Double).Required(),
	)
	squareDesc = esmodel.NewDescriptor("Square", nil,
		esmodel.ScalarField("side", "side", esmodel.Double).Required(),
	)
	shapeContainer = esmodel.NewDescriptor("Shape", nil,
		esmodel.ScalarField("label", "label", esmodel.String),
	)
	shapeDesc = esmodel.NewUnionDescriptor("Shape", shapeContainer,
		esmodel.VariantOf("circle", objectCodec(circleDesc)),
		esmodel.VariantOf("square", objectCodec(squareDesc)),
	)

	circleRadius = circleDesc.Key("radius")
	shapeLabel   = shapeContainer.Key("label")
)

type shapeCodec struct{}

func (shapeCodec) Encode(g esmodel.Generator, u *esmodel.Union) error {
	return esmodel.SerializeUnion(g, u)
}

func (shapeCodec) Decode(d *esmodel.Decoder) (*esmodel.Union, error) {
	return esmodel.DecodeUnion(d, shapeDesc)
}

func (shapeCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return esmodel.UnionSchema(shapeDesc, defs)
}

func circle(t *testing.T, r float64) *esmodel.Object {
	t.Helper()
	b := esmodel.NewObjectBuilder(circleDesc)
	b.Set(circleRadius, r)
	o, err := b.Build()
	if err != nil {
		t.Fatalf("build circle: %v", err)
	}
	return o
}

func TestUnion_MissingVariant(t *testing.T) {
	b := esmodel.NewUnionBuilder(shapeDesc)
	b.Container().Set(shapeLabel, "l")
	_, err := b.Build()
	conformance.RequireMissing(t, err, "_kind")
}

func TestUnion_SerializeContainerFirst(t *testing.T) {
	b := esmodel.NewUnionBuilder(shapeDesc)
	b.Select("circle", circle(t, 1))
	b.Container().Set(shapeLabel, "l")
	u, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal[*esmodel.Union](shapeCodec{}, u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"label":"l","circle":{"radius":1.0}}`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestUnion_Decode(t *testing.T) {
	u := conformance.RoundTrip[*esmodel.Union](t, shapeCodec{},
		`{"square":{"side":2},"ignored":1,"label":"x"}`,
		`{"label":"x","square":{"side":2.0}}`)
	if u.Kind() != "square" {
		t.Fatalf("kind = %q", u.Kind())
	}
	if _, ok := esmodel.UnionValue[*esmodel.Object](u, "circle"); ok {
		t.Fatalf("circle should not be selected")
	}
	sq, ok := esmodel.UnionValue[*esmodel.Object](u, "square")
	if !ok || esmodel.Get[float64](sq, squareDesc.Key("side")) != 2 {
		t.Fatalf("square value not decoded")
	}
	if got := esmodel.Get[string](u.Container(), shapeLabel); got != "x" {
		t.Fatalf("label = %q", got)
	}
}

func TestUnion_DecodeNoVariant(t *testing.T) {
	_, err := esmodel.Unmarshal[*esmodel.Union](shapeCodec{}, []byte(`{"label":"x","triangle":{}}`))
	var u *esmodel.UnrecognizedWireValueError
	if !errors.As(err, &u) {
		t.Fatalf("expected UnrecognizedWireValueError, got %T %v", err, err)
	}
}

func TestUnion_NestedVariantError(t *testing.T) {
	_, err := esmodel.Unmarshal[*esmodel.Union](shapeCodec{}, []byte(`{"circle":{}}`))
	conformance.RequireMissing(t, err, "circle.radius")

	b := esmodel.NewUnionBuilder(shapeDesc)
	_, cerr := esmodel.NewObjectBuilder(circleDesc).Build()
	esmodel.SelectBuilt[*esmodel.Object](b, "circle", nil, cerr)
	_, err = b.Build()
	conformance.RequireMissing(t, err, "circle.radius")
}

func TestUnion_SelectReplaces(t *testing.T) {
	b := esmodel.NewUnionBuilder(shapeDesc)
	b.Select("circle", circle(t, 1))
	sb := esmodel.NewObjectBuilder(squareDesc)
	sb.Set(squareDesc.Key("side"), 1.0)
	sq, err := sb.Build()
	if err != nil {
		t.Fatalf("build square: %v", err)
	}
	b.Select("square", sq)
	u, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if u.Kind() != "square" || b.Kind() != "square" {
		t.Fatalf("kind = %q", u.Kind())
	}
}

func TestUnion_SelectUnknownPanics(t *testing.T) {
	b := esmodel.NewUnionBuilder(shapeDesc)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("unknown variant should panic")
		}
	}()
	b.Select("triangle", circle(t, 1))
}

func TestUnion_ToBuilder(t *testing.T) {
	b := esmodel.NewUnionBuilder(shapeDesc)
	b.Select("circle", circle(t, 1))
	b.Container().Set(shapeLabel, "before")
	u, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	nb := u.ToBuilder()
	nb.Container().Set(shapeLabel, "after")
	u2, err := nb.Build()
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if esmodel.Get[string](u.Container(), shapeLabel) != "before" || esmodel.Get[string](u2.Container(), shapeLabel) != "after" {
		t.Fatalf("ToBuilder must not write through")
	}
	if u2.Kind() != "circle" {
		t.Fatalf("kind lost: %q", u2.Kind())
	}
}

func TestUnion_SingleUse(t *testing.T) {
	b := esmodel.NewUnionBuilder(shapeDesc)
	b.Select("circle", circle(t, 3))
	conformance.CheckSingleUse(t, func() error {
		_, err := b.Build()
		return err
	})
}

func TestUnion_KindCollisionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("a variant named like a container field should panic")
		}
	}()
	esmodel.NewUnionDescriptor("Bad", shapeContainer, esmodel.VariantOf("label", esmodel.String))
}

func TestDecodeVariant(t *testing.T) {
	d := esmodel.NewDecoder(esmodel.JSONBytes([]byte(`{"radius":4}`)))
	u, err := esmodel.DecodeVariant(d, shapeDesc, "circle")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Kind() != "circle" {
		t.Fatalf("kind = %q", u.Kind())
	}
	d = esmodel.NewDecoder(esmodel.JSONBytes([]byte(`{}`)))
	if _, err := esmodel.DecodeVariant(d, shapeDesc, "hexagon"); err == nil {
		t.Fatalf("unknown kind should fail")
	}
}

func TestUnionSchema(t *testing.T) {
	s := esmodel.ExportSchema(shapeCodec{})
	if s.Ref != "#/$defs/Shape" {
		t.Fatalf("root ref = %q", s.Ref)
	}
	shape := s.Defs["Shape"]
	if shape == nil || len(shape.OneOf) != 2 {
		t.Fatalf("Shape should be a oneOf of two variants: %+v", shape)
	}
	for i, kind := range shapeDesc.Kinds() {
		alt := shape.OneOf[i]
		if alt.Required[0] != kind || alt.Properties["label"] == nil {
			t.Fatalf("variant %s: %+v", kind, alt)
		}
	}
	if s.Defs["Circle"] == nil || s.Defs["Square"] == nil {
		t.Fatalf("variant models missing from $defs: %v", s.Defs)
	}
}
