package esmodel

import (
	"io"
	"sync"

	eng "github.com/reoring/esmodel/internal/engine"
	"github.com/reoring/esmodel/source/gojson"
	jsonsrc "github.com/reoring/esmodel/source/json"
)

// TokenKind enumerates wire token kinds.
type TokenKind = eng.Kind

const (
	TokenBeginObject TokenKind = eng.KindBeginObject
	TokenEndObject   TokenKind = eng.KindEndObject
	TokenBeginArray  TokenKind = eng.KindBeginArray
	TokenEndArray    TokenKind = eng.KindEndArray
	TokenKey         TokenKind = eng.KindKey
	TokenString      TokenKind = eng.KindString
	TokenNumber      TokenKind = eng.KindNumber
	TokenBool        TokenKind = eng.KindBool
	TokenNull        TokenKind = eng.KindNull
)

// Token describes a token in the input stream. Offset records the byte position
// when known (-1 otherwise).
type Token = eng.Token

// Source is a stream of wire tokens (object/array/key/value events). It is
// what the transport layer hands to deserializers.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The
// default implementation is backed by goccy/go-json; StdlibJSONDriver
// returns the encoding/json one.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json backed driver.
func UseDefaultJSONDriver() { SetJSONDriver(goJSONDriver{}) }

// CurrentJSONDriver returns the driver used by JSONBytes and JSONReader.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// StdlibJSONDriver returns a driver backed by encoding/json.
func StdlibJSONDriver() JSONDriver { return stdJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return gojson.NewReader(r) }
func (goJSONDriver) NewBytes(b []byte) Source     { return gojson.NewBytes(b) }
func (goJSONDriver) Name() string                 { return "go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) NewReader(r io.Reader) Source { return jsonsrc.NewReader(r) }
func (stdJSONDriver) NewBytes(b []byte) Source     { return jsonsrc.NewBytes(b) }
func (stdJSONDriver) Name() string                 { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// Limits bounds the input a Source may deliver: duplicate keys, nesting depth
// and consumed bytes. Zero fields disable a check.
type Limits = eng.Limits

// LimitError reports input rejected by Limits. Code is one of
// LimitDuplicateKey, LimitMaxDepth or LimitMaxBytes.
type LimitError = eng.LimitError

const (
	LimitDuplicateKey = eng.CodeDuplicateKey
	LimitMaxDepth     = eng.CodeMaxDepth
	LimitMaxBytes     = eng.CodeMaxBytes
)

// WithLimits wraps src so that tokens violating l fail with a *LimitError.
func WithLimits(src Source, l Limits) Source { return eng.WithLimits(src, l) }
