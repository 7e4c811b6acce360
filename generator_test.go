package esmodel_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/reoring/esmodel"
)

func TestJSONGenerator_Floats(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		bits int
		want string
	}{
		{"integral", 2, 64, "2.0"},
		{"zero", 0, 64, "0.0"},
		{"fraction", 1.5, 64, "1.5"},
		{"negative", -0.25, 64, "-0.25"},
		{"large integral", 123456789, 64, "123456789.0"},
		{"huge", 1e21, 64, "1e+21"},
		{"tiny", 1e-7, 64, "1e-07"},
		{"float32 shortest", float64(float32(0.1)), 32, "0.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			g := esmodel.NewJSONGenerator(&buf)
			g.WriteFloat(tc.f, tc.bits)
			if err := g.Err(); err != nil {
				t.Fatalf("err: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("got %s, want %s", buf.String(), tc.want)
			}
		})
	}
}

func TestJSONGenerator_NonFinite(t *testing.T) {
	if _, err := esmodel.Marshal(esmodel.Double, math.NaN()); err == nil {
		t.Fatalf("NaN should not encode")
	}
	if _, err := esmodel.Marshal(esmodel.Double, math.Inf(-1)); err == nil {
		t.Fatalf("-Inf should not encode")
	}
}

func TestJSONGenerator_Strings(t *testing.T) {
	out, err := esmodel.Marshal(esmodel.String, "<a&b> \"q\"\n")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"<a&b> \"q\"\n"`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestJSONGenerator_Nesting(t *testing.T) {
	var buf bytes.Buffer
	g := esmodel.NewJSONGenerator(&buf)
	g.WriteStartObject()
	g.WriteKey("a")
	g.WriteStartArray()
	g.WriteInt(1)
	g.WriteNull()
	g.WriteBool(false)
	g.WriteNumber("1e3")
	g.WriteEnd()
	g.WriteKey("b")
	g.WriteStartObject()
	g.WriteEnd()
	g.WriteEnd()
	if err := g.Err(); err != nil {
		t.Fatalf("err: %v", err)
	}
	if want := `{"a":[1,null,false,1e3],"b":{}}`; buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
}

func TestJSONGenerator_Misuse(t *testing.T) {
	cases := map[string]func(g *esmodel.JSONGenerator){
		"value without key": func(g *esmodel.JSONGenerator) {
			g.WriteStartObject()
			g.WriteInt(1)
		},
		"key outside object": func(g *esmodel.JSONGenerator) {
			g.WriteStartArray()
			g.WriteKey("k")
		},
		"dangling key": func(g *esmodel.JSONGenerator) {
			g.WriteStartObject()
			g.WriteKey("k")
			g.WriteEnd()
		},
		"end without container": func(g *esmodel.JSONGenerator) { g.WriteEnd() },
		"two top-level values": func(g *esmodel.JSONGenerator) {
			g.WriteInt(1)
			g.WriteInt(2)
		},
		"unclosed": func(g *esmodel.JSONGenerator) { g.WriteStartArray() },
		"bad number": func(g *esmodel.JSONGenerator) { g.WriteNumber("1.2.3") },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			g := esmodel.NewJSONGenerator(&bytes.Buffer{})
			fn(g)
			if g.Err() == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestValidNumber(t *testing.T) {
	for _, ok := range []string{"0", "-0", "12", "-0.5", "1.25e3", "1E+9", "12e-3", "123456789012345678901234567890"} {
		if !esmodel.ValidNumber(ok) {
			t.Fatalf("%q should be a valid number", ok)
		}
	}
	for _, bad := range []string{"", "-", "NaN", "Inf", "-Infinity", "0x1p-2", "01", "1.", ".5", "1e", "+1", "1_000", " 1"} {
		if esmodel.ValidNumber(bad) {
			t.Fatalf("%q should be rejected", bad)
		}
	}
}

func TestRawJSON_RejectsNonJSONNumbers(t *testing.T) {
	for _, text := range []string{"NaN", "Inf", "0x10"} {
		if out, err := esmodel.Marshal(esmodel.RawJSON, esmodel.JSONDataOf(json.Number(text))); err == nil {
			t.Fatalf("%s encoded as %s", text, out)
		}
	}
}
