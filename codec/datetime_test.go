package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/codec"
)

func TestDateTime_RFC3339_Roundtrip(t *testing.T) {
	in := `"2025-01-01T09:00:00+09:00"`
	got, err := esmodel.Unmarshal(codec.DateTimeCodec, []byte(in))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Time().Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got.Time())
	}
	if got.Form() != codec.FormRFC3339 {
		t.Fatalf("form = %v", got.Form())
	}
	out, err := esmodel.Marshal(codec.DateTimeCodec, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if string(out) != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestDateTime_EpochMillis_KeepsForm(t *testing.T) {
	cases := []struct {
		in   string
		form codec.DateTimeForm
	}{
		{`1735689600000`, codec.FormEpochMillis},
		{`"1735689600000"`, codec.FormEpochMillisString},
	}
	for _, tc := range cases {
		got, err := esmodel.Unmarshal(codec.DateTimeCodec, []byte(tc.in))
		if err != nil {
			t.Fatalf("%s: decode err: %v", tc.in, err)
		}
		if got.Form() != tc.form {
			t.Fatalf("%s: form = %v, want %v", tc.in, got.Form(), tc.form)
		}
		if !got.Time().Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("%s: unexpected time: %v", tc.in, got.Time())
		}
		out, err := esmodel.Marshal(codec.DateTimeCodec, got)
		if err != nil {
			t.Fatalf("%s: encode err: %v", tc.in, err)
		}
		if string(out) != tc.in {
			t.Fatalf("roundtrip mismatch: %s != %s", out, tc.in)
		}
	}
}

func TestDateTime_CanonicalEncoding(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	dt := codec.DateTimeOf(time.Date(2025, 1, 1, 9, 0, 0, 500_000_000, loc))
	out, err := esmodel.Marshal(codec.DateTimeCodec, dt)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if string(out) != `"2025-01-01T00:00:00.5Z"` {
		t.Fatalf("got %s", out)
	}
}

func TestDateTime_Invalid(t *testing.T) {
	for _, in := range []string{`"yesterday"`, `true`, `1.5`} {
		_, err := esmodel.Unmarshal(codec.DateTimeCodec, []byte(in))
		var uw *esmodel.UnrecognizedWireValueError
		if !errors.As(err, &uw) {
			t.Fatalf("%s: expected UnrecognizedWireValueError, got %v", in, err)
		}
	}
}
