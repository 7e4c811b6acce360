// Package yaml turns YAML documents into esmodel token streams using
// gopkg.in/yaml.v3, so that any model can be read from YAML.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/esmodel/internal/engine"
)

// DuplicateKeyError reports a mapping key seen twice, with both positions.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

type source struct {
	tokens []eng.Token
	pos    int
	err    error
}

// NewReader reads the first YAML document of r. Decoding errors surface
// from the first NextToken call; an empty stream yields io.EOF.
func NewReader(r io.Reader) eng.TokenSource {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return &source{err: err}
	}
	return NewNode(&root)
}

// NewBytes reads the first YAML document of b.
func NewBytes(b []byte) eng.TokenSource {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return &source{err: err}
	}
	return NewNode(&root)
}

// NewNode streams the tokens of an already parsed node.
func NewNode(n *yaml.Node) eng.TokenSource {
	s := &source{}
	if err := s.walk(n); err != nil {
		s.tokens, s.err = nil, err
	}
	return s
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.tokens) {
		return eng.Token{}, io.EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// Location returns -1: YAML input has no meaningful byte offsets here.
func (s *source) Location() int64 { return -1 }

func (s *source) emit(tok eng.Token) {
	tok.Offset = -1
	s.tokens = append(s.tokens, tok)
}

func (s *source) walk(n *yaml.Node) error {
	switch n.Kind {
	case 0:
		return nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return s.walk(n.Content[0])
	case yaml.AliasNode:
		return s.walk(n.Alias)
	case yaml.MappingNode:
		s.emit(eng.Token{Kind: eng.KindBeginObject})
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if pos, dup := first[k.Value]; dup {
				return &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			s.emit(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := s.walk(v); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		s.emit(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.walk(c); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndArray})
		return nil
	case yaml.ScalarNode:
		tok, err := scalar(n)
		if err != nil {
			return err
		}
		s.emit(tok)
		return nil
	}
	return fmt.Errorf("yaml: unsupported node kind %d at %d:%d", n.Kind, n.Line, n.Column)
}

var errNonFinite = errors.New("non-finite number")

// scalar resolves a scalar by its tag, the way yaml.v3 resolves plain
// scalars ("1" is an int, "'1'" a string).
func scalar(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull}, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return eng.Token{}, fmt.Errorf("yaml: bool %q at %d:%d: %w", n.Value, n.Line, n.Column, err)
		}
		return eng.Token{Kind: eng.KindBool, Bool: b}, nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return eng.Token{}, fmt.Errorf("yaml: int %q at %d:%d: %w", n.Value, n.Line, n.Column, err)
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)}, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err == nil && (math.IsInf(f, 0) || math.IsNaN(f)) {
			err = errNonFinite
		}
		if err != nil {
			return eng.Token{}, fmt.Errorf("yaml: float %q at %d:%d: %w", n.Value, n.Line, n.Column, err)
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	}
	return eng.Token{Kind: eng.KindString, String: n.Value}, nil
}
