package esmodel

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	js "github.com/reoring/esmodel/jsonschema"
)

// Codec converts values of T to and from the wire token stream. Object
// models, unions and scalars all travel through codecs, so a descriptor
// only needs its element codec to serialize or deserialize a field.
type Codec[T any] interface {
	Encode(g Generator, v T) error
	Decode(d *Decoder) (T, error)
}

// KindedCodec is implemented by codecs of externally-kinded unions (such as
// response aggregates) whose variant name travels in the enclosing map key
// as "kind#name".
type KindedCodec[T any] interface {
	Codec[T]
	Kind(v T) string
	DecodeKind(d *Decoder, kind string) (T, error)
}

// AnyCodec is a type-erased Codec, used where the value type is only known
// at run time (the model registry, the CLI).
type AnyCodec interface {
	EncodeAny(g Generator, v any) error
	DecodeAny(d *Decoder) (any, error)
}

// Erase adapts a Codec[T] to AnyCodec.
func Erase[T any](c Codec[T]) AnyCodec { return erased[T]{c: c} }

type erased[T any] struct{ c Codec[T] }

func (e erased[T]) EncodeAny(g Generator, v any) error {
	t, ok := v.(T)
	if !ok {
		var zero T
		return &UnrecognizedWireValueError{Expected: typeName(zero), Got: typeName(v), Offset: -1}
	}
	return e.c.Encode(g, t)
}

func (e erased[T]) DecodeAny(d *Decoder) (any, error) { return e.c.Decode(d) }

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func (e erased[T]) WireSchema(defs *Definitions) *js.Schema { return SchemaOf(e.c, defs) }

// Built-in scalar codecs. Number and boolean codecs also accept their
// string forms, which some endpoints (notably the cat APIs) return.
var (
	String Codec[string]  = stringCodec{}
	Int    Codec[int]     = intCodec{}
	Long   Codec[int64]   = longCodec{}
	Float  Codec[float32] = floatCodec{}
	Double Codec[float64] = doubleCodec{}
	Bool   Codec[bool]    = boolCodec{}
)

type stringCodec struct{}

func (stringCodec) Encode(g Generator, v string) error { g.WriteString(v); return nil }
func (stringCodec) Decode(d *Decoder) (string, error) {
	tok, err := d.Next()
	if err != nil {
		return "", err
	}
	switch tok.Kind {
	case TokenString:
		return tok.String, nil
	case TokenNumber:
		return tok.Number, nil
	}
	return "", d.Unexpected("string", tok)
}
func (stringCodec) WireSchema(*Definitions) *js.Schema { return &js.Schema{Type: "string"} }

type intCodec struct{}

func (intCodec) Encode(g Generator, v int) error { g.WriteInt(int64(v)); return nil }
func (intCodec) Decode(d *Decoder) (int, error) {
	n, err := decodeInteger(d, strconv.IntSize, "integer")
	return int(n), err
}
func (intCodec) WireSchema(*Definitions) *js.Schema { return &js.Schema{Type: "integer"} }

type longCodec struct{}

func (longCodec) Encode(g Generator, v int64) error { g.WriteInt(v); return nil }
func (longCodec) Decode(d *Decoder) (int64, error)  { return decodeInteger(d, 64, "long") }
func (longCodec) WireSchema(*Definitions) *js.Schema {
	return &js.Schema{Type: "integer", Format: "int64"}
}

type floatCodec struct{}

func (floatCodec) Encode(g Generator, v float32) error { g.WriteFloat(float64(v), 32); return nil }
func (floatCodec) Decode(d *Decoder) (float32, error) {
	f, err := decodeFloat(d, 32, "float")
	return float32(f), err
}
func (floatCodec) WireSchema(*Definitions) *js.Schema {
	return &js.Schema{Type: "number", Format: "float"}
}

type doubleCodec struct{}

func (doubleCodec) Encode(g Generator, v float64) error { g.WriteFloat(v, 64); return nil }
func (doubleCodec) Decode(d *Decoder) (float64, error)  { return decodeFloat(d, 64, "double") }
func (doubleCodec) WireSchema(*Definitions) *js.Schema {
	return &js.Schema{Type: "number", Format: "double"}
}

type boolCodec struct{}

func (boolCodec) Encode(g Generator, v bool) error { g.WriteBool(v); return nil }
func (boolCodec) Decode(d *Decoder) (bool, error) {
	tok, err := d.Next()
	if err != nil {
		return false, err
	}
	switch tok.Kind {
	case TokenBool:
		return tok.Bool, nil
	case TokenString:
		if b, err := strconv.ParseBool(tok.String); err == nil {
			return b, nil
		}
	}
	return false, d.Unexpected("boolean", tok)
}
func (boolCodec) WireSchema(*Definitions) *js.Schema { return &js.Schema{Type: "boolean"} }

func numberText(d *Decoder, expected string) (string, Token, error) {
	tok, err := d.Next()
	if err != nil {
		return "", tok, err
	}
	switch tok.Kind {
	case TokenNumber:
		return tok.Number, tok, nil
	case TokenString:
		return tok.String, tok, nil
	}
	return "", tok, d.Unexpected(expected, tok)
}

func decodeInteger(d *Decoder, bits int, expected string) (int64, error) {
	text, tok, err := numberText(d, expected)
	if err != nil {
		return 0, err
	}
	if n, err := strconv.ParseInt(text, 10, bits); err == nil {
		return n, nil
	}
	// integral values written in float notation ("10.0", "1e3")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, d.Unexpected(expected, tok)
	}
	return int64(f), nil
}

func decodeFloat(d *Decoder, bits int, expected string) (float64, error) {
	text, tok, err := numberText(d, expected)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return 0, d.Unexpected(expected, tok)
	}
	return f, nil
}

// Enum returns a codec for a string enumeration. Values outside the list are
// rejected with an UnrecognizedWireValueError.
func Enum[E ~string](name string, values ...E) Codec[E] {
	return enumCodec[E]{name: name, values: slices.Clone(values)}
}

type enumCodec[E ~string] struct {
	name   string
	values []E
}

func (c enumCodec[E]) Encode(g Generator, v E) error { g.WriteString(string(v)); return nil }

func (c enumCodec[E]) Decode(d *Decoder) (E, error) {
	tok, err := d.Next()
	if err != nil {
		return "", err
	}
	if tok.Kind == TokenString {
		for _, v := range c.values {
			if string(v) == tok.String {
				return v, nil
			}
		}
	}
	names := make([]string, len(c.values))
	for i, v := range c.values {
		names[i] = string(v)
	}
	return "", d.Unexpected(c.name+" ("+strings.Join(names, "|")+")", tok)
}

func (c enumCodec[E]) WireSchema(*Definitions) *js.Schema {
	enum := make([]any, len(c.values))
	for i, v := range c.values {
		enum[i] = string(v)
	}
	return &js.Schema{Type: "string", Enum: enum}
}
