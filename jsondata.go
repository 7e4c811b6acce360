package esmodel

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/esmodel/internal/engine"
	js "github.com/reoring/esmodel/jsonschema"
)

// JSONData holds an arbitrary JSON value, such as a document _source.
// Decoded values are trees of map[string]any, []any, string, json.Number,
// bool and nil; values built by callers may be any go-json marshalable
// value. Decoded objects are written back in their wire key order.
type JSONData struct {
	v       any
	ordered any // decoded tree with *eng.Members objects; nil for caller values
}

// JSONDataOf wraps v.
func JSONDataOf(v any) JSONData { return JSONData{v: v} }

// Value returns the wrapped value.
func (d JSONData) Value() any { return d.v }

// To converts the value into target (a pointer) through JSON.
func (d JSONData) To(target any) error {
	b, err := d.MarshalJSON()
	if err != nil {
		return err
	}
	return j.Unmarshal(b, target)
}

func (d JSONData) MarshalJSON() ([]byte, error) { return Marshal(RawJSON, d) }

// RawJSON is the codec of JSONData.
var RawJSON Codec[JSONData] = jsonDataCodec{}

type jsonDataCodec struct{}

func (jsonDataCodec) Encode(g Generator, v JSONData) error { return writeAny(g, v) }

func (jsonDataCodec) Decode(d *Decoder) (JSONData, error) {
	v, err := d.decodeOrdered()
	if err != nil {
		return JSONData{}, err
	}
	return JSONData{v: eng.Plain(v), ordered: v}, nil
}

func (jsonDataCodec) WireSchema(*Definitions) *js.Schema { return &js.Schema{} }

// writeAny streams a generic value. Go maps are written with sorted keys,
// decoded objects in wire order.
func writeAny(g Generator, v any) error {
	switch x := v.(type) {
	case nil:
		g.WriteNull()
	case string:
		g.WriteString(x)
	case bool:
		g.WriteBool(x)
	case json.Number:
		g.WriteNumber(string(x))
	case int:
		g.WriteInt(int64(x))
	case int32:
		g.WriteInt(int64(x))
	case int64:
		g.WriteInt(x)
	case float32:
		writeAnyFloat(g, float64(x), 32)
	case float64:
		writeAnyFloat(g, x, 64)
	case JSONData:
		if x.ordered != nil {
			return writeAny(g, x.ordered)
		}
		return writeAny(g, x.v)
	case *eng.Members:
		g.WriteStartObject()
		for _, k := range x.Keys {
			g.WriteKey(k)
			if err := writeAny(g, x.Values[k]); err != nil {
				return err
			}
		}
		g.WriteEnd()
	case map[string]any:
		g.WriteStartObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			g.WriteKey(k)
			if err := writeAny(g, x[k]); err != nil {
				return err
			}
		}
		g.WriteEnd()
	case []any:
		g.WriteStartArray()
		for _, e := range x {
			if err := writeAny(g, e); err != nil {
				return err
			}
		}
		g.WriteEnd()
	default:
		return writeMarshaled(g, v)
	}
	return nil
}

// writeAnyFloat keeps integral values integral, as a decoded json.Number
// would be.
func writeAnyFloat(g Generator, f float64, bits int) {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		g.WriteNumber(strconv.FormatFloat(f, 'f', -1, bits))
		return
	}
	g.WriteFloat(f, bits)
}

// writeMarshaled handles caller types (structs, typed maps) by marshaling
// them with go-json and replaying the tokens in go-json's key order.
func writeMarshaled(g Generator, v any) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		g.WriteNull()
		return nil
	}
	b, err := j.Marshal(v)
	if err != nil {
		return fmt.Errorf("esmodel: marshal %T: %w", v, err)
	}
	d := NewDecoder(JSONBytes(b))
	tree, err := d.decodeOrdered()
	if err != nil {
		return err
	}
	return writeAny(g, tree)
}
