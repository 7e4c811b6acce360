// Package codec holds element codecs beyond the scalar ones of the root
// package.
package codec

import (
	"strconv"
	"time"

	"github.com/reoring/esmodel"
	js "github.com/reoring/esmodel/jsonschema"
)

// DateTimeForm records how a DateTime appeared on the wire.
type DateTimeForm int

const (
	// FormRFC3339 is a string such as "2025-01-01T00:00:00Z".
	FormRFC3339 DateTimeForm = iota
	// FormEpochMillis is a JSON number of milliseconds since the epoch.
	FormEpochMillis
	// FormEpochMillisString is the same number as a string, as the cat APIs
	// send it.
	FormEpochMillisString
)

// DateTime is a point in time that re-encodes in the form it was decoded
// from.
type DateTime struct {
	t    time.Time
	form DateTimeForm
	raw  string
}

// DateTimeOf returns t in RFC 3339 form.
func DateTimeOf(t time.Time) DateTime { return DateTime{t: t, form: FormRFC3339} }

// EpochMillis returns the instant ms milliseconds after the epoch, in
// number form.
func EpochMillis(ms int64) DateTime {
	return DateTime{t: time.UnixMilli(ms).UTC(), form: FormEpochMillis}
}

func (d DateTime) Time() time.Time    { return d.t }
func (d DateTime) Form() DateTimeForm { return d.form }

// String renders the wire text of d.
func (d DateTime) String() string {
	switch d.form {
	case FormEpochMillis, FormEpochMillisString:
		return strconv.FormatInt(d.t.UnixMilli(), 10)
	}
	if d.raw != "" {
		return d.raw
	}
	return formatRFC3339Canonical(d.t)
}

// DateTimeCodec reads RFC 3339 strings and epoch milliseconds (as number or
// string) and writes each back in its original form.
var DateTimeCodec esmodel.Codec[DateTime] = dateTimeCodec{}

type dateTimeCodec struct{}

func (dateTimeCodec) Encode(g esmodel.Generator, v DateTime) error {
	if v.form == FormEpochMillis {
		g.WriteInt(v.t.UnixMilli())
		return nil
	}
	g.WriteString(v.String())
	return nil
}

func (dateTimeCodec) Decode(d *esmodel.Decoder) (DateTime, error) {
	tok, err := d.Next()
	if err != nil {
		return DateTime{}, err
	}
	switch tok.Kind {
	case esmodel.TokenNumber:
		if ms, err := strconv.ParseInt(tok.Number, 10, 64); err == nil {
			return EpochMillis(ms), nil
		}
	case esmodel.TokenString:
		if ms, err := strconv.ParseInt(tok.String, 10, 64); err == nil {
			dt := EpochMillis(ms)
			dt.form = FormEpochMillisString
			return dt, nil
		}
		if t, err := parseRFC3339(tok.String); err == nil {
			return DateTime{t: t, form: FormRFC3339, raw: tok.String}, nil
		}
	}
	return DateTime{}, d.Unexpected("date-time (RFC 3339 or epoch millis)", tok)
}

func (dateTimeCodec) WireSchema(*esmodel.Definitions) *js.Schema {
	return &js.Schema{OneOf: []*js.Schema{
		{Type: "string", Format: "date-time"},
		{Type: "integer", Description: "epoch millis"},
		{Type: "string", Description: "epoch millis"},
	}}
}

func parseRFC3339(s string) (time.Time, error) {
	// RFC3339Nano accepts fractional seconds of any length, and none
	return time.Parse(time.RFC3339Nano, s)
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
