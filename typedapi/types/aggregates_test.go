package types_test

import (
	"errors"
	"testing"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
	"github.com/reoring/esmodel/typedapi/types"
)

func TestCardinalityAggregate_EmptyMetaIsWritten(t *testing.T) {
	conformance.RoundTrip(t, types.CardinalityAggregateCodec, `{"value":1}`, "")
	conformance.RoundTrip(t, types.CardinalityAggregateCodec, `{"meta":{},"value":1}`, "")
}

func TestCardinalityAggregate_Meta(t *testing.T) {
	a := conformance.RoundTrip(t, types.CardinalityAggregateCodec, `{"meta":{"foo":"bar"},"value":1}`, "")
	if a.Value() != 1 {
		t.Fatalf("value = %d", a.Value())
	}
	v, ok := a.Meta().Get("foo")
	if !ok || v.Value() != "bar" {
		t.Fatalf("meta.foo = %v, %v", v.Value(), ok)
	}
}

func TestCardinalityAggregate_Builder(t *testing.T) {
	a, err := types.CardinalityAggregateOf(func(b *types.CardinalityAggregateBuilder) {
		b.Value(7).PutMeta("owner", esmodel.JSONDataOf("ops"))
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(types.CardinalityAggregateCodec, a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(out), `{"meta":{"owner":"ops"},"value":7}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	_, err = types.CardinalityAggregateOf(func(b *types.CardinalityAggregateBuilder) {})
	conformance.RequireMissing(t, err, "value")
}

func TestCardinalityAggregate_SingleUse(t *testing.T) {
	b := types.NewCardinalityAggregateBuilder().Value(1)
	conformance.CheckSingleUse(t, func() error {
		_, err := b.Build()
		return err
	})
}

func TestCardinalityAggregate_ToBuilder(t *testing.T) {
	a, err := types.CardinalityAggregateOf(func(b *types.CardinalityAggregateBuilder) { b.Value(1) })
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c, err := a.ToBuilder().Value(2).Build()
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if a.Value() != 1 || c.Value() != 2 {
		t.Fatalf("values = %d, %d", a.Value(), c.Value())
	}
}

func TestValueCountAggregate_NullValue(t *testing.T) {
	a, err := esmodel.Unmarshal(types.ValueCountAggregateCodec, []byte(`{"value":null}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Value() != nil {
		t.Fatalf("value = %v, want nil", *a.Value())
	}
	conformance.RoundTrip(t, types.ValueCountAggregateCodec, `{"value":12.0,"value_as_string":"12"}`, "")
}

func TestDateRangeAggregate_Buckets(t *testing.T) {
	a := conformance.RoundTrip(t, types.DateRangeAggregateCodec,
		`{"meta":{"foo":"bar"},"buckets":[{"doc_count":1}]}`, "")
	buckets := a.Buckets()
	if buckets.IsKeyed() {
		t.Fatalf("array buckets decoded as keyed")
	}
	if n := buckets.Array().Len(); n != 1 {
		t.Fatalf("%d buckets", n)
	}
	if dc := buckets.Array().At(0).DocCount(); dc != 1 {
		t.Fatalf("doc_count = %d", dc)
	}
}

func TestDateRangeAggregate_KeyedBuckets(t *testing.T) {
	a := conformance.RoundTrip(t, types.DateRangeAggregateCodec,
		`{"buckets":{"older":{"doc_count":3,"to":10.0,"key":"older"},"recent":{"doc_count":0,"from":10.0}}}`, "")
	if !a.Buckets().IsKeyed() {
		t.Fatalf("object buckets decoded as array")
	}
	if a.Buckets().Array().IsDefined() {
		t.Fatalf("keyed buckets expose an array")
	}
	if got := a.Buckets().Keyed().Keys(); len(got) != 2 || got[0] != "older" || got[1] != "recent" {
		t.Fatalf("keys = %v", got)
	}
	older, _ := a.Buckets().Keyed().Get("older")
	if older.To() == nil || *older.To() != 10 {
		t.Fatalf("older.to = %v", older.To())
	}
}

func TestDateRangeAggregate_MissingBuckets(t *testing.T) {
	_, err := esmodel.Unmarshal(types.DateRangeAggregateCodec, []byte(`{"meta":{}}`))
	conformance.RequireMissing(t, err, "buckets")
}

func TestRangeBucket_DecodeAsString(t *testing.T) {
	b, err := esmodel.Unmarshal(types.RangeBucketCodec,
		[]byte(`{"doc_count":2,"from":1,"from_as_string":"1970-01-01","key":"a"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.FromAsString() == nil || *b.FromAsString() != "1970-01-01" {
		t.Fatalf("from_as_string = %v", b.FromAsString())
	}
	if b.From() == nil || *b.From() != 1 {
		t.Fatalf("from = %v", b.From())
	}
}

func TestAggregate_EncodesVariantOnly(t *testing.T) {
	a, err := types.AggregateOf(func(b *types.AggregateBuilder) {
		b.CardinalityFn(func(b *types.CardinalityAggregateBuilder) { b.Value(5) })
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if a.Kind() != types.AggregateKindCardinality {
		t.Fatalf("kind = %q", a.Kind())
	}
	out, err := esmodel.Marshal(types.AggregateCodec, a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"value":5}` {
		t.Fatalf("got %s", out)
	}
	if _, ok := a.ValueCount(); ok {
		t.Fatalf("value_count reported on a cardinality aggregate")
	}
}

func TestAggregate_DecodeNeedsTypedKey(t *testing.T) {
	_, err := esmodel.Unmarshal(types.AggregateCodec, []byte(`{"value":5}`))
	var uv *esmodel.UnrecognizedWireValueError
	if !errors.As(err, &uv) {
		t.Fatalf("expected UnrecognizedWireValueError, got %v", err)
	}
	if uv.Code() != esmodel.CodeUnrecognizedValue {
		t.Fatalf("code = %q", uv.Code())
	}
}

func TestAggregate_NestedFailure(t *testing.T) {
	_, err := types.AggregateOf(func(b *types.AggregateBuilder) {
		b.RangeFn(func(b *types.RangeAggregateBuilder) {})
	})
	conformance.RequireMissing(t, err, "range.buckets")
}

func TestModels_NilReadsAsUnset(t *testing.T) {
	var card *types.CardinalityAggregate
	if card.Value() != 0 {
		t.Fatalf("nil cardinality value = %d", card.Value())
	}
	var base *types.AggregateBase
	if base.Meta().IsDefined() {
		t.Fatalf("nil aggregate meta reported as defined")
	}
	var bucket *types.RangeBucket
	if bucket.From() != nil || bucket.Key() != nil {
		t.Fatalf("nil bucket fields reported as set")
	}
	var term *types.TermQuery
	if term.Field() != "" || term.CaseInsensitive() != nil {
		t.Fatalf("nil term query fields reported as set")
	}
	var qb *types.QueryBase
	if qb.Boost() != nil {
		t.Fatalf("nil query boost reported as set")
	}
	var dr *types.DateRangeAggregation
	if dr.Ranges().IsDefined() || dr.Field() != nil {
		t.Fatalf("nil date_range fields reported as set")
	}
}
