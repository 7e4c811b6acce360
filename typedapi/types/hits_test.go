package types_test

import (
	"errors"
	"testing"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/internal/conformance"
	"github.com/reoring/esmodel/typedapi/types"
)

func TestHitsMetadata_RoundTrip(t *testing.T) {
	in := `{"total":{"relation":"eq","value":1},"hits":[` +
		`{"_index":"logs","_id":"1","_score":1.0,"_source":{"title":"x","user":"kimchy"},"sort":[1,"a"]}` +
		`],"max_score":1.0}`
	h := conformance.RoundTrip(t, types.HitsMetadataCodec, in, "")
	if h.Total().Relation() != types.TotalHitsRelationEq || h.Total().Value() != 1 {
		t.Fatalf("total = %s/%d", h.Total().Relation(), h.Total().Value())
	}
	hit := h.Hits().At(0)
	if hit.Index() != "logs" || hit.ID() == nil || *hit.ID() != "1" {
		t.Fatalf("hit = %s/%v", hit.Index(), hit.ID())
	}
	var doc struct {
		User string `json:"user"`
	}
	if err := hit.Source().To(&doc); err != nil {
		t.Fatalf("source: %v", err)
	}
	if doc.User != "kimchy" {
		t.Fatalf("source.user = %q", doc.User)
	}
	if hit.Routing() != nil || hit.Fields().IsDefined() {
		t.Fatalf("absent fields reported as present")
	}
}

func TestHitsMetadata_MissingHits(t *testing.T) {
	_, err := esmodel.Unmarshal(types.HitsMetadataCodec, []byte(`{"total":{"relation":"eq","value":0}}`))
	conformance.RequireMissing(t, err, "hits")

	_, err = esmodel.Unmarshal(types.HitsMetadataCodec, []byte(`{"hits":[{"_id":"1"}]}`))
	conformance.RequireMissing(t, err, "hits.index")
}

func TestHitsMetadata_EmptyHits(t *testing.T) {
	h, err := types.HitsMetadataOf(func(b *types.HitsMetadataBuilder) { b.Hits([]*types.Hit{}) })
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(types.HitsMetadataCodec, h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"hits":[]}` {
		t.Fatalf("got %s", out)
	}

	_, err = types.HitsMetadataOf(func(b *types.HitsMetadataBuilder) { b.Hits([]*types.Hit{}).ResetHits() })
	conformance.RequireMissing(t, err, "hits")
}

func TestHitsMetadata_Builder(t *testing.T) {
	id := "7"
	h, err := types.HitsMetadataOf(func(b *types.HitsMetadataBuilder) {
		b.TotalFn(func(b *types.TotalHitsBuilder) {
			b.Relation(types.TotalHitsRelationGte).Value(10000)
		}).AddHitsFn(func(b *types.HitBuilder) {
			b.Index("logs").ID(&id).PutFields("tag", esmodel.JSONDataOf([]any{"a"}))
		})
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(types.HitsMetadataCodec, h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"total":{"relation":"gte","value":10000},"hits":[{"_index":"logs","_id":"7","fields":{"tag":["a"]}}]}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestTotalHits_UnknownRelation(t *testing.T) {
	_, err := esmodel.Unmarshal(types.TotalHitsCodec, []byte(`{"relation":"lt","value":1}`))
	var uv *esmodel.UnrecognizedWireValueError
	if !errors.As(err, &uv) {
		t.Fatalf("expected UnrecognizedWireValueError, got %v", err)
	}
	if uv.Path != "relation" {
		t.Fatalf("path = %q", uv.Path)
	}
}

func TestErrorCause_Chain(t *testing.T) {
	in := `{"type":"search_phase_execution_exception","reason":"all shards failed",` +
		`"caused_by":{"type":"query_shard_exception","reason":"failed to create query",` +
		`"caused_by":{"type":"number_format_exception","reason":"For input string: \"abc\""}},` +
		`"root_cause":[{"type":"query_shard_exception"}]}`
	c := conformance.RoundTrip(t, types.ErrorCauseCodec, in, "")
	want := `search_phase_execution_exception: all shards failed (caused by query_shard_exception: ` +
		`failed to create query (caused by number_format_exception: For input string: "abc"))`
	if c.Error() != want {
		t.Fatalf("Error() = %q", c.Error())
	}
	if c.RootCause().Len() != 1 || c.Suppressed().IsDefined() {
		t.Fatalf("root_cause=%d suppressed defined=%v", c.RootCause().Len(), c.Suppressed().IsDefined())
	}

	var err error = c
	var ec *types.ErrorCause
	if !errors.As(err, &ec) || ec.Type() != "search_phase_execution_exception" {
		t.Fatalf("errors.As failed")
	}
}

func TestErrorCause_Builder(t *testing.T) {
	reason := "boom"
	c, err := types.ErrorCauseOf(func(b *types.ErrorCauseBuilder) {
		b.Type("illegal_argument_exception").Reason(&reason).
			AddRootCauseFn(func(b *types.ErrorCauseBuilder) { b.Type("x") })
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(types.ErrorCauseCodec, c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"illegal_argument_exception","reason":"boom","root_cause":[{"type":"x"}]}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}

	_, err = types.ErrorCauseOf(func(b *types.ErrorCauseBuilder) {
		b.Type("outer").CausedByFn(func(*types.ErrorCauseBuilder) {})
	})
	conformance.RequireMissing(t, err, "causedBy.type")
}

func TestHit_SourceKeepsKeyOrder(t *testing.T) {
	in := `{"_index":"i","_source":{"title":"x","author":"y","meta":{"views":3,"created":"2024"}}}`
	hit := conformance.RoundTrip(t, types.HitCodec, in, "")
	var doc struct {
		Author string `json:"author"`
	}
	if err := hit.Source().To(&doc); err != nil || doc.Author != "y" {
		t.Fatalf("source = %+v, %v", doc, err)
	}
}
