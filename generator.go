package esmodel

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// Generator is the token-emitting sink serializers write to. Implementations
// record the first error they hit and report it from Err; the Write methods
// themselves never fail so that generated serializers stay linear.
type Generator interface {
	WriteStartObject()
	WriteStartArray()
	WriteKey(key string)
	WriteString(s string)
	WriteInt(n int64)
	// WriteFloat writes a float of the given bit size (32 or 64).
	WriteFloat(f float64, bitSize int)
	// WriteNumber writes a number already in its textual JSON form.
	WriteNumber(text string)
	WriteBool(b bool)
	WriteNull()
	// WriteEnd closes the innermost open object or array.
	WriteEnd()
	Err() error
}

var errGeneratorState = errors.New("esmodel: generator misuse")

type genFrame struct {
	object   bool
	count    int
	afterKey bool
}

// JSONGenerator writes compact JSON to an io.Writer.
type JSONGenerator struct {
	w     io.Writer
	stack []genFrame
	buf   []byte
	err   error
	done  bool
}

// NewJSONGenerator returns a Generator writing compact JSON to w.
func NewJSONGenerator(w io.Writer) *JSONGenerator {
	return &JSONGenerator{w: w, buf: make([]byte, 0, 64)}
}

func (g *JSONGenerator) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func (g *JSONGenerator) flush() {
	if g.err != nil || len(g.buf) == 0 {
		g.buf = g.buf[:0]
		return
	}
	if _, err := g.w.Write(g.buf); err != nil {
		g.fail(err)
	}
	g.buf = g.buf[:0]
}

// beforeValue places separators ahead of a value and validates nesting.
func (g *JSONGenerator) beforeValue() bool {
	if g.err != nil {
		return false
	}
	n := len(g.stack)
	if n == 0 {
		if g.done {
			g.fail(fmt.Errorf("%w: more than one top-level value", errGeneratorState))
			return false
		}
		return true
	}
	top := &g.stack[n-1]
	if top.object {
		if !top.afterKey {
			g.fail(fmt.Errorf("%w: object value written without a key", errGeneratorState))
			return false
		}
		top.afterKey = false
		return true
	}
	if top.count > 0 {
		g.buf = append(g.buf, ',')
	}
	top.count++
	return true
}

func (g *JSONGenerator) afterValue() {
	if len(g.stack) == 0 {
		g.done = true
	}
	g.flush()
}

func (g *JSONGenerator) WriteStartObject() {
	if !g.beforeValue() {
		return
	}
	g.buf = append(g.buf, '{')
	g.stack = append(g.stack, genFrame{object: true})
	g.flush()
}

func (g *JSONGenerator) WriteStartArray() {
	if !g.beforeValue() {
		return
	}
	g.buf = append(g.buf, '[')
	g.stack = append(g.stack, genFrame{})
	g.flush()
}

func (g *JSONGenerator) WriteKey(key string) {
	if g.err != nil {
		return
	}
	n := len(g.stack)
	if n == 0 || !g.stack[n-1].object || g.stack[n-1].afterKey {
		g.fail(fmt.Errorf("%w: key %q outside of an object", errGeneratorState, key))
		return
	}
	top := &g.stack[n-1]
	if top.count > 0 {
		g.buf = append(g.buf, ',')
	}
	top.count++
	top.afterKey = true
	g.appendString(key)
	g.buf = append(g.buf, ':')
	g.flush()
}

func (g *JSONGenerator) WriteString(s string) {
	if !g.beforeValue() {
		return
	}
	g.appendString(s)
	g.afterValue()
}

func (g *JSONGenerator) WriteInt(n int64) {
	if !g.beforeValue() {
		return
	}
	g.buf = strconv.AppendInt(g.buf, n, 10)
	g.afterValue()
}

func (g *JSONGenerator) WriteFloat(f float64, bitSize int) {
	if !g.beforeValue() {
		return
	}
	text, err := formatFloat(f, bitSize)
	if err != nil {
		g.fail(err)
		return
	}
	g.buf = append(g.buf, text...)
	g.afterValue()
}

func (g *JSONGenerator) WriteNumber(text string) {
	if !g.beforeValue() {
		return
	}
	if !ValidNumber(text) {
		g.fail(fmt.Errorf("esmodel: invalid number literal %q", text))
		return
	}
	g.buf = append(g.buf, text...)
	g.afterValue()
}

func (g *JSONGenerator) WriteBool(b bool) {
	if !g.beforeValue() {
		return
	}
	g.buf = strconv.AppendBool(g.buf, b)
	g.afterValue()
}

func (g *JSONGenerator) WriteNull() {
	if !g.beforeValue() {
		return
	}
	g.buf = append(g.buf, "null"...)
	g.afterValue()
}

func (g *JSONGenerator) WriteEnd() {
	if g.err != nil {
		return
	}
	n := len(g.stack)
	if n == 0 {
		g.fail(fmt.Errorf("%w: end without an open container", errGeneratorState))
		return
	}
	top := g.stack[n-1]
	if top.object && top.afterKey {
		g.fail(fmt.Errorf("%w: key without a value", errGeneratorState))
		return
	}
	g.stack = g.stack[:n-1]
	if top.object {
		g.buf = append(g.buf, '}')
	} else {
		g.buf = append(g.buf, ']')
	}
	g.afterValue()
}

// Err returns the first write or nesting error, or an error when containers
// are still open.
func (g *JSONGenerator) Err() error {
	if g.err != nil {
		return g.err
	}
	if len(g.stack) > 0 {
		return fmt.Errorf("%w: %d unclosed container(s)", errGeneratorState, len(g.stack))
	}
	return nil
}

func (g *JSONGenerator) appendString(s string) {
	b, err := j.MarshalWithOption(s, j.DisableHTMLEscape())
	if err != nil {
		g.fail(err)
		return
	}
	g.buf = append(g.buf, b...)
}

// formatFloat renders floats the way the search API prints them: integral
// values keep a trailing ".0" so they read back as floating point.
func formatFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("esmodel: unsupported float value %v", f)
	}
	if bitSize != 32 {
		bitSize = 64
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// ValidNumber reports whether text is a JSON number literal:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func ValidNumber(text string) bool {
	i, n := 0, len(text)
	digits := func() int {
		start := i
		for i < n && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		return i - start
	}
	if i < n && text[i] == '-' {
		i++
	}
	switch {
	case i < n && text[i] == '0':
		i++
	case digits() == 0:
		return false
	}
	if i < n && text[i] == '.' {
		i++
		if digits() == 0 {
			return false
		}
	}
	if i < n && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < n && (text[i] == '+' || text[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	return i == n
}
