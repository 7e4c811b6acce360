package esmodel

import (
	"errors"
	"io"
	"strconv"
	"strings"

	eng "github.com/reoring/esmodel/internal/engine"
)

// Decoder reads values from a Source with one token of lookahead and keeps
// track of the position (as a dot path) for error reporting.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	src    Source
	peeked bool
	next   Token
	path   []string
	depth  int
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src Source) *Decoder { return &Decoder{src: src} }

// Path returns the current position, e.g. "hits.hits[0]._source".
func (d *Decoder) Path() string {
	var b strings.Builder
	for i, seg := range d.path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Location returns the byte offset reported by the underlying source.
func (d *Decoder) Location() int64 { return d.src.Location() }

// Next consumes and returns the next token.
func (d *Decoder) Next() (Token, error) {
	if d.peeked {
		d.peeked = false
		return d.next, nil
	}
	tok, err := d.src.NextToken()
	if err != nil {
		return Token{}, d.wrap(err)
	}
	return tok, nil
}

// Peek returns the next token without consuming it.
func (d *Decoder) Peek() (Token, error) {
	if d.peeked {
		return d.next, nil
	}
	tok, err := d.src.NextToken()
	if err != nil {
		return Token{}, d.wrap(err)
	}
	d.next, d.peeked = tok, true
	return tok, nil
}

func (d *Decoder) wrap(err error) error {
	if errors.Is(err, io.EOF) {
		if d.depth == 0 {
			return io.EOF
		}
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Path: d.Path(), Offset: d.src.Location(), Err: err}
}

// wrapMid wraps an error hit while inside a value, where end of input is
// always premature.
func (d *Decoder) wrapMid(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return d.wrap(err)
}

// Skip consumes the next value, whatever its shape.
func (d *Decoder) Skip() error {
	tok, err := d.Next()
	if err != nil {
		return err
	}
	if err := eng.SkipValue(d.src, tok); err != nil {
		return d.wrapMid(err)
	}
	return nil
}

// NextIsNull consumes the next token and reports true when it is null;
// otherwise the token is left in place.
func (d *Decoder) NextIsNull() (bool, error) {
	tok, err := d.Peek()
	if err != nil {
		return false, err
	}
	if tok.Kind == TokenNull {
		d.peeked = false
		return true, nil
	}
	return false, nil
}

// Unexpected builds the error element codecs return for a token they cannot
// accept.
func (d *Decoder) Unexpected(expected string, got Token) error {
	desc := got.Kind.String()
	switch got.Kind {
	case TokenString, TokenKey:
		desc += " " + strconv.Quote(got.String)
	case TokenNumber:
		desc += " " + got.Number
	}
	return &UnrecognizedWireValueError{Path: d.Path(), Expected: expected, Got: desc, Offset: got.Offset}
}

// ReadObject consumes an object, calling fn once per key. fn must consume
// exactly the value that follows the key (Skip does that for unknown keys).
func (d *Decoder) ReadObject(fn func(key string) error) error {
	tok, err := d.Next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenBeginObject {
		return d.Unexpected("object", tok)
	}
	d.depth++
	defer func() { d.depth-- }()
	for {
		tok, err := d.Next()
		if err != nil {
			return err
		}
		if tok.Kind == TokenEndObject {
			return nil
		}
		if tok.Kind != TokenKey {
			return d.Unexpected("object key", tok)
		}
		d.path = append(d.path, tok.String)
		err = fn(tok.String)
		d.path = d.path[:len(d.path)-1]
		if err != nil {
			return err
		}
	}
}

// ReadArray consumes an array, calling fn once per element with its index.
func (d *Decoder) ReadArray(fn func(i int) error) error {
	tok, err := d.Next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenBeginArray {
		return d.Unexpected("array", tok)
	}
	d.depth++
	defer func() { d.depth-- }()
	for i := 0; ; i++ {
		tok, err := d.Peek()
		if err != nil {
			return err
		}
		if tok.Kind == TokenEndArray {
			d.peeked = false
			return nil
		}
		d.path = append(d.path, "["+strconv.Itoa(i)+"]")
		err = fn(i)
		d.path = d.path[:len(d.path)-1]
		if err != nil {
			return err
		}
	}
}

// DecodeAny reads the next value into a generic tree (map[string]any, []any,
// string, json.Number, bool or nil).
func (d *Decoder) DecodeAny() (any, error) {
	tok, err := d.Next()
	if err != nil {
		return nil, err
	}
	v, err := eng.DecodeValue(d.src, tok)
	if err != nil {
		return nil, d.wrapMid(err)
	}
	return v, nil
}

// decodeOrdered is DecodeAny keeping object key order (*eng.Members).
func (d *Decoder) decodeOrdered() (any, error) {
	tok, err := d.Next()
	if err != nil {
		return nil, err
	}
	v, err := eng.DecodeOrdered(d.src, tok)
	if err != nil {
		return nil, d.wrapMid(err)
	}
	return v, nil
}

// ExpectEOF verifies that no tokens follow the value just decoded.
func (d *Decoder) ExpectEOF() error {
	tok, err := d.Peek()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return d.Unexpected("end of input", tok)
}
