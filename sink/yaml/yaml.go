// Package yaml is an esmodel Generator that builds a gopkg.in/yaml.v3 node
// tree, keeping object keys in the order they were written.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/esmodel"
)

var _ esmodel.Generator = (*Generator)(nil)

var errState = errors.New("yaml: generator misuse")

// Generator accumulates one YAML document. Strings are tagged !!str so that
// values such as "true" or "1" stay strings when read back.
type Generator struct {
	root  *yaml.Node
	stack []*yaml.Node
	// keyed is true between WriteKey and the value that follows it.
	keyed bool
	err   error
}

func NewGenerator() *Generator { return &Generator{} }

func (g *Generator) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func (g *Generator) add(n *yaml.Node) {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 {
		if g.root != nil {
			g.fail(errState)
			return
		}
		g.root = n
	} else {
		top := g.stack[len(g.stack)-1]
		if top.Kind == yaml.MappingNode {
			if !g.keyed {
				g.fail(errState)
				return
			}
			g.keyed = false
		}
		top.Content = append(top.Content, n)
	}
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		g.stack = append(g.stack, n)
	}
}

func (g *Generator) WriteStartObject() { g.add(&yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}) }
func (g *Generator) WriteStartArray()  { g.add(&yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}) }

func (g *Generator) WriteKey(key string) {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 || g.stack[len(g.stack)-1].Kind != yaml.MappingNode || g.keyed {
		g.fail(errState)
		return
	}
	top := g.stack[len(g.stack)-1]
	top.Content = append(top.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key})
	g.keyed = true
}

func (g *Generator) WriteString(s string) { g.scalar("!!str", s) }
func (g *Generator) WriteInt(n int64)     { g.scalar("!!int", strconv.FormatInt(n, 10)) }

func (g *Generator) WriteFloat(f float64, bitSize int) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		g.fail(errors.New("yaml: non-finite float"))
		return
	}
	text := strconv.FormatFloat(f, 'f', -1, bitSize)
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		text += ".0"
	} else if math.Abs(f) < 1e-6 || math.Abs(f) >= 1e21 {
		text = strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	g.scalar("!!float", text)
}

// WriteNumber keeps the text as given; integral text is tagged !!int.
func (g *Generator) WriteNumber(text string) {
	if !esmodel.ValidNumber(text) {
		g.fail(fmt.Errorf("yaml: invalid number literal %q", text))
		return
	}
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		g.scalar("!!int", text)
		return
	}
	g.scalar("!!float", text)
}

func (g *Generator) WriteBool(b bool) { g.scalar("!!bool", strconv.FormatBool(b)) }
func (g *Generator) WriteNull()       { g.scalar("!!null", "null") }

func (g *Generator) WriteEnd() {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 || g.keyed {
		g.fail(errState)
		return
	}
	g.stack = g.stack[:len(g.stack)-1]
}

func (g *Generator) Err() error {
	if g.err == nil && len(g.stack) > 0 {
		return errState
	}
	return g.err
}

func (g *Generator) scalar(tag, value string) {
	g.add(&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value})
}

// Node returns the document built so far, or nil before the first value.
func (g *Generator) Node() *yaml.Node { return g.root }

// Encode writes the document to w with two-space indentation.
func (g *Generator) Encode(w io.Writer) error {
	if err := g.Err(); err != nil {
		return err
	}
	if g.root == nil {
		return errState
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.root); err != nil {
		return err
	}
	return enc.Close()
}

// Marshal renders v as a YAML document.
func Marshal[T any](c esmodel.Codec[T], v T) ([]byte, error) {
	g := NewGenerator()
	if err := esmodel.Write(g, c, v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
