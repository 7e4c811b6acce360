// Package conformance holds test helpers that check the structural
// conventions every generated model follows: nullability of accessors,
// ancestor chains, required fields, single-use builders and round trips.
package conformance

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/esmodel"
)

// Instance decodes an empty document into a value of model m with required
// checks disabled: {} for object models, [] for array-shaped ones.
func Instance(m esmodel.Model) (any, error) {
	h := esmodel.DisableRequiredChecks(true)
	defer h.Close()
	var firstErr error
	for _, doc := range []string{"{}", "[]"} {
		v, err := m.Codec.DecodeAny(esmodel.NewDecoder(esmodel.JSONBytes([]byte(doc))))
		if err == nil {
			return v, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, fmt.Errorf("conformance: no empty instance of %s: %w", m.Name, firstErr)
}

// AncestorCount counts the chain of embedded ancestor structs of v, a model
// pointer: DateRangeAggregate embeds RangeAggregate, which embeds
// MultiBucketAggregateBase, which embeds AggregateBase, giving 3.
func AncestorCount(v any) int {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	n := 0
	for t != nil && t.Kind() == reflect.Struct {
		var next reflect.Type
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.Anonymous && f.Type.Kind() == reflect.Struct {
				next = f.Type
				break
			}
		}
		if next == nil {
			break
		}
		n++
		t = next
	}
	return n
}

// CheckAncestors verifies that the struct embedding of v and the descriptor
// chain of m agree.
func CheckAncestors(t *testing.T, m esmodel.Model, v any) {
	t.Helper()
	if got, want := AncestorCount(v), m.AncestorCount(); got != want {
		t.Fatalf("%s: %d embedded ancestors, descriptor chain has %d", m.Name, got, want)
	}
}

var initialisms = map[string]string{"id": "ID", "uuid": "UUID"}

// MethodName returns the accessor name of a field name ("maxScore" ->
// "MaxScore", "id" -> "ID").
func MethodName(field string) string {
	if s, ok := initialisms[field]; ok {
		return s
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// CheckNullability verifies accessor shapes against desc: optional scalars
// return something that can be nil, required scalars of basic kinds return
// plain values, collections return List or Map views.
func CheckNullability(t *testing.T, v any, desc *esmodel.Descriptor) {
	t.Helper()
	rv := reflect.ValueOf(v)
	for _, f := range desc.Fields() {
		name := MethodName(f.Name())
		m := rv.MethodByName(name)
		if !m.IsValid() {
			t.Fatalf("%s: no accessor %s for field %q", desc.Name(), name, f.Name())
		}
		if m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
			t.Fatalf("%s.%s: accessor must take nothing and return one value", desc.Name(), name)
		}
		out := m.Type().Out(0)
		switch f.Cardinality() {
		case esmodel.CardinalityList:
			if !strings.HasPrefix(out.Name(), "List[") {
				t.Fatalf("%s.%s: list field returns %s", desc.Name(), name, out)
			}
		case esmodel.CardinalityMap:
			if !strings.HasPrefix(out.Name(), "Map[") {
				t.Fatalf("%s.%s: map field returns %s", desc.Name(), name, out)
			}
		default:
			nilable := out.Kind() == reflect.Pointer || out.Kind() == reflect.Interface
			switch {
			case !f.IsRequired() && !nilable:
				t.Fatalf("%s.%s: optional field returns non-nullable %s", desc.Name(), name, out)
			case f.IsRequired() && out.Kind() == reflect.Pointer && isBasic(out.Elem()):
				t.Fatalf("%s.%s: required field returns pointer %s", desc.Name(), name, out)
			}
		}
	}
}

// CheckSetterNullability verifies the scalar setters of builder, a
// New<Model>Builder() result, against desc: optional fields take a pointer so
// that nil unsets them, required fields of basic kinds take plain values.
func CheckSetterNullability(t *testing.T, builder any, desc *esmodel.Descriptor) {
	t.Helper()
	rv := reflect.ValueOf(builder)
	for _, f := range desc.Fields() {
		if f.Cardinality() != esmodel.CardinalityScalar {
			continue
		}
		name := MethodName(f.Name())
		m := rv.MethodByName(name)
		if !m.IsValid() {
			t.Fatalf("%s: no setter %s for field %q", desc.Name(), name, f.Name())
		}
		if m.Type().NumIn() != 1 || m.Type().IsVariadic() {
			t.Fatalf("%s.%s: setter must take exactly one value", desc.Name(), name)
		}
		in := m.Type().In(0)
		nilable := in.Kind() == reflect.Pointer || in.Kind() == reflect.Interface
		switch {
		case !f.IsRequired() && !nilable:
			t.Fatalf("%s.%s: optional field setter takes non-nullable %s", desc.Name(), name, in)
		case f.IsRequired() && in.Kind() == reflect.Pointer && isBasic(in.Elem()):
			t.Fatalf("%s.%s: required field setter takes pointer %s", desc.Name(), name, in)
		}
	}
}

func isBasic(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// RequireMissing fails unless err is a MissingRequiredFieldError for path.
func RequireMissing(t *testing.T, err error, path string) {
	t.Helper()
	m, ok := esmodel.IsMissingRequiredField(err)
	if !ok {
		t.Fatalf("expected missing required field %q, got %v", path, err)
	}
	if m.Path != path {
		t.Fatalf("missing field path = %q, want %q (%v)", m.Path, path, err)
	}
}

// CheckSingleUse calls build twice: the first call must succeed and the
// second must fail with ErrBuilderAlreadyUsed and its stable message.
func CheckSingleUse(t *testing.T, build func() error) {
	t.Helper()
	if err := build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	err := build()
	if !errors.Is(err, esmodel.ErrBuilderAlreadyUsed) {
		t.Fatalf("second build: expected ErrBuilderAlreadyUsed, got %v", err)
	}
	if err.Error() != "object builders can only be used once" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

// RoundTrip decodes in with c, re-encodes it and compares the output with
// want (in itself when want is empty). It runs once per JSON driver.
func RoundTrip[T any](t *testing.T, c esmodel.Codec[T], in, want string) T {
	t.Helper()
	if want == "" {
		want = in
	}
	var last T
	for _, driver := range []esmodel.JSONDriver{nil, esmodel.StdlibJSONDriver()} {
		v, err := esmodel.Read(c, jsonSource(driver, in))
		if err != nil {
			t.Fatalf("decode (%s): %v", driverName(driver), err)
		}
		out, err := esmodel.Marshal(c, v)
		if err != nil {
			t.Fatalf("encode (%s): %v", driverName(driver), err)
		}
		if diff := cmp.Diff(want, string(out)); diff != "" {
			t.Fatalf("round trip (%s) mismatch (-want +got):\n%s", driverName(driver), diff)
		}
		last = v
	}
	return last
}

func jsonSource(driver esmodel.JSONDriver, in string) esmodel.Source {
	if driver == nil {
		return esmodel.JSONBytes([]byte(in))
	}
	return driver.NewBytes([]byte(in))
}

func driverName(driver esmodel.JSONDriver) string {
	if driver == nil {
		return esmodel.CurrentJSONDriver().Name()
	}
	return driver.Name()
}
