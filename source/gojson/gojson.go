// Package gojson tokenizes JSON input with github.com/goccy/go-json. It backs
// the default esmodel JSON driver.
package gojson

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/esmodel/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: s.dec.InputOffset()}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray, Offset: s.dec.InputOffset()}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: s.dec.InputOffset()}, nil
		case ']':
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: s.dec.InputOffset()}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject && s.stack[n-1].expectingKey {
			s.stack[n-1].expectingKey = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: s.dec.InputOffset()}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: s.dec.InputOffset()}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.dec.InputOffset()}, nil
	case j.Number:
		s.valueDone()
		// number text aliases the decoder's read buffer
		return eng.Token{Kind: eng.KindNumber, Number: strings.Clone(string(v)), Offset: s.dec.InputOffset()}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: s.dec.InputOffset()}, nil
	}
	s.valueDone()
	return eng.Token{Kind: eng.KindNull, Offset: s.dec.InputOffset()}, nil
}

func (s *source) Location() int64 { return s.dec.InputOffset() }

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject {
		s.stack[n-1].expectingKey = true
	}
}
