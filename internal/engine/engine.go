package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "start of object"
	case KindEndObject:
		return "end of object"
	case KindBeginArray:
		return "start of array"
	case KindEndArray:
		return "end of array"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// DecodeValue builds an "any" tree for the value that starts with tok.
// Objects become map[string]any, arrays []any and numbers json.Number.
func DecodeValue(src TokenSource, tok Token) (any, error) { return decodeValue(src, tok, false) }

// Members is a decoded JSON object that remembers its key order. A repeated
// key keeps its first position and its last value.
type Members struct {
	Keys   []string
	Values map[string]any
}

// DecodeOrdered is DecodeValue with objects decoded as *Members.
func DecodeOrdered(src TokenSource, tok Token) (any, error) { return decodeValue(src, tok, true) }

// Plain converts a DecodeOrdered tree into the DecodeValue form. Leaves
// are shared.
func Plain(v any) any {
	switch x := v.(type) {
	case *Members:
		m := make(map[string]any, len(x.Keys))
		for _, k := range x.Keys {
			m[k] = Plain(x.Values[k])
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Plain(e)
		}
		return out
	}
	return v
}

func decodeValue(src TokenSource, tok Token, ordered bool) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src, ordered)
	case KindBeginArray:
		return decodeArray(src, ordered)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

// SkipValue consumes the remainder of the value that starts with tok.
func SkipValue(src TokenSource, tok Token) error {
	depth := 0
	for {
		switch tok.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
		case KindKey:
			// keys never end a value
		}
		if depth <= 0 {
			if depth < 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		var err error
		tok, err = src.NextToken()
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
}

func decodeObject(src TokenSource, ordered bool) (any, error) {
	obj := &Members{Values: make(map[string]any)}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			if ordered {
				return obj, nil
			}
			return obj.Values, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt, ordered)
		if err != nil {
			return nil, err
		}
		if _, seen := obj.Values[tok.String]; !seen && ordered {
			obj.Keys = append(obj.Keys, tok.String)
		}
		obj.Values[tok.String] = v
	}
}

func decodeArray(src TokenSource, ordered bool) (any, error) {
	arr := []any{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok, ordered)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
