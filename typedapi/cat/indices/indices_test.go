package indices_test

import (
	"testing"
	"time"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/codec"
	"github.com/reoring/esmodel/internal/conformance"
	"github.com/reoring/esmodel/typedapi/cat/indices"
)

func TestResponse_BareArray(t *testing.T) {
	in := `[{"health":"green","status":"open","index":"logs","uuid":"u1","docs.count":"42","creation.date":"1700000000000"},` +
		`{"health":"yellow","index":"metrics","creation.date":"2024-05-01T10:00:00.5Z"}]`
	r := conformance.RoundTrip(t, indices.ResponseCodec, in, "")
	if r.Value().Len() != 2 {
		t.Fatalf("%d records", r.Value().Len())
	}
	first := r.Value().At(0)
	if first.DocsCount() == nil || *first.DocsCount() != "42" {
		t.Fatalf("docs.count = %v", first.DocsCount())
	}
	created := first.CreationDate()
	if created == nil || created.Form() != codec.FormEpochMillisString || created.Time().UnixMilli() != 1700000000000 {
		t.Fatalf("creation.date = %v", created)
	}
	second := r.Value().At(1).CreationDate()
	if second.Form() != codec.FormRFC3339 || second.Time().Nanosecond() != int(500*time.Millisecond) {
		t.Fatalf("creation.date = %v", second)
	}
}

func TestResponse_Empty(t *testing.T) {
	r := conformance.RoundTrip(t, indices.ResponseCodec, `[]`, "")
	if !r.Value().IsDefined() || r.Value().Len() != 0 {
		t.Fatalf("empty table should decode to a defined empty list")
	}
}

func TestResponse_RejectsObject(t *testing.T) {
	if _, err := esmodel.Unmarshal(indices.ResponseCodec, []byte(`{"value":[]}`)); err == nil {
		t.Fatalf("object accepted as a cat table")
	}
}

func TestResponse_Builder(t *testing.T) {
	health := "green"
	created := codec.EpochMillis(0)
	r, err := indices.ResponseOf(func(b *indices.ResponseBuilder) {
		b.AddValueFn(func(b *indices.IndicesRecordBuilder) { b.Health(&health).CreationDate(&created) })
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := esmodel.Marshal(indices.ResponseCodec, r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `[{"health":"green","creation.date":0}]` {
		t.Fatalf("got %s", out)
	}
}
