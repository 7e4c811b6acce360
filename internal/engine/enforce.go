package engine

import (
	"strconv"
	"strings"
)

// Limits bounds what a TokenSource may produce. Zero values disable a check.
type Limits struct {
	// RejectDuplicateKeys fails on the second occurrence of a key within one
	// object.
	RejectDuplicateKeys bool
	MaxDepth            int
	MaxBytes            int64
}

// Limit codes carried by LimitError.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeMaxBytes     = "max_bytes"
)

// LimitError reports input rejected by a Limits check.
type LimitError struct {
	Code   string
	Path   string // dot path of the offending token ("" at the root)
	Key    string // the duplicated key for CodeDuplicateKey
	Offset int64
}

func (e *LimitError) Error() string {
	where := e.Path
	if where == "" {
		where = "<root>"
	}
	switch e.Code {
	case CodeDuplicateKey:
		return "duplicate key '" + e.Key + "' at " + where
	case CodeMaxDepth:
		return "max depth exceeded at " + where
	default:
		return "max bytes exceeded at " + where
	}
}

type frame struct {
	array   bool
	keys    map[string]struct{}
	segment string
	index   int
	key     string // pending key of an object frame
}

// WithLimits returns a TokenSource that checks every token of inner against l.
// A zero Limits returns inner unchanged.
func WithLimits(inner TokenSource, l Limits) TokenSource {
	if l == (Limits{}) {
		return inner
	}
	return &limitedSource{inner: inner, l: l}
}

type limitedSource struct {
	inner TokenSource
	l     Limits
	stack []frame
}

func (s *limitedSource) Location() int64 { return s.inner.Location() }

func (s *limitedSource) NextToken() (Token, error) {
	tok, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	if s.l.MaxBytes > 0 {
		if off := s.inner.Location(); off > s.l.MaxBytes {
			return Token{}, s.fail(CodeMaxBytes, "", off)
		}
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		seg := s.childSegment()
		f := frame{array: tok.Kind == KindBeginArray, segment: seg}
		if !f.array && s.l.RejectDuplicateKeys {
			f.keys = make(map[string]struct{})
		}
		s.stack = append(s.stack, f)
		if s.l.MaxDepth > 0 && len(s.stack) > s.l.MaxDepth {
			return Token{}, s.fail(CodeMaxDepth, "", tok.Offset)
		}
	case KindEndObject, KindEndArray:
		if n := len(s.stack); n > 0 {
			s.stack = s.stack[:n-1]
		}
		s.valueDone()
	case KindKey:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.keys != nil {
				if _, dup := top.keys[tok.String]; dup {
					top.key = tok.String
					return Token{}, s.fail(CodeDuplicateKey, tok.String, tok.Offset)
				}
				top.keys[tok.String] = struct{}{}
			}
			top.key = tok.String
		}
	default:
		s.childSegment()
		s.valueDone()
	}
	return tok, nil
}

// childSegment names the value about to start and advances array indexes.
func (s *limitedSource) childSegment() string {
	n := len(s.stack)
	if n == 0 {
		return ""
	}
	top := &s.stack[n-1]
	if top.array {
		seg := "[" + strconv.Itoa(top.index) + "]"
		top.index++
		return seg
	}
	return top.key
}

func (s *limitedSource) valueDone() {
	if n := len(s.stack); n > 0 && !s.stack[n-1].array {
		s.stack[n-1].key = ""
	}
}

func (s *limitedSource) fail(code, key string, off int64) *LimitError {
	return &LimitError{Code: code, Path: s.path(), Key: key, Offset: off}
}

func (s *limitedSource) path() string {
	var b strings.Builder
	write := func(seg string) {
		if seg == "" {
			return
		}
		if b.Len() > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	for i, f := range s.stack {
		write(f.segment)
		if i == len(s.stack)-1 && !f.array {
			write(f.key)
		}
	}
	return b.String()
}
