// Package indices holds the models of the cat indices API
// (GET /_cat/indices?format=json).
package indices

import (
	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/codec"
	js "github.com/reoring/esmodel/jsonschema"
)

// IndicesRecord is one row of the cat indices table. The cat APIs send
// numbers as strings.
type IndicesRecord struct{ obj *esmodel.Object }

var indicesRecordDescriptor = esmodel.NewDescriptor("IndicesRecord", nil,
	esmodel.ScalarField("health", "health", esmodel.String),
	esmodel.ScalarField("status", "status", esmodel.String),
	esmodel.ScalarField("index", "index", esmodel.String),
	esmodel.ScalarField("uuid", "uuid", esmodel.String),
	esmodel.ScalarField("docsCount", "docs.count", esmodel.String),
	esmodel.ScalarField("creationDate", "creation.date", codec.DateTimeCodec),
)

var (
	indicesRecordHealth       = indicesRecordDescriptor.Key("health")
	indicesRecordStatus       = indicesRecordDescriptor.Key("status")
	indicesRecordIndex        = indicesRecordDescriptor.Key("index")
	indicesRecordUUID         = indicesRecordDescriptor.Key("uuid")
	indicesRecordDocsCount    = indicesRecordDescriptor.Key("docsCount")
	indicesRecordCreationDate = indicesRecordDescriptor.Key("creationDate")
)

var IndicesRecordCodec = esmodel.ModelCodec(indicesRecordDescriptor,
	func(o *esmodel.Object) *IndicesRecord { return &IndicesRecord{obj: o} },
	(*IndicesRecord).object)

func (r *IndicesRecord) object() *esmodel.Object {
	if r == nil {
		return nil
	}
	return r.obj
}

func (r *IndicesRecord) Health() *string    { return esmodel.GetOpt[string](r.object(), indicesRecordHealth) }
func (r *IndicesRecord) Status() *string    { return esmodel.GetOpt[string](r.object(), indicesRecordStatus) }
func (r *IndicesRecord) Index() *string     { return esmodel.GetOpt[string](r.object(), indicesRecordIndex) }
func (r *IndicesRecord) UUID() *string      { return esmodel.GetOpt[string](r.object(), indicesRecordUUID) }
func (r *IndicesRecord) DocsCount() *string { return esmodel.GetOpt[string](r.object(), indicesRecordDocsCount) }

func (r *IndicesRecord) CreationDate() *codec.DateTime {
	return esmodel.GetOpt[codec.DateTime](r.object(), indicesRecordCreationDate)
}

type IndicesRecordBuilder struct{ ob *esmodel.ObjectBuilder }

func NewIndicesRecordBuilder() *IndicesRecordBuilder {
	return &IndicesRecordBuilder{ob: esmodel.NewObjectBuilder(indicesRecordDescriptor)}
}

func IndicesRecordOf(fn func(*IndicesRecordBuilder)) (*IndicesRecord, error) {
	b := NewIndicesRecordBuilder()
	fn(b)
	return b.Build()
}

func (b *IndicesRecordBuilder) Health(v *string) *IndicesRecordBuilder {
	esmodel.SetOpt(b.ob, indicesRecordHealth, v)
	return b
}

func (b *IndicesRecordBuilder) Status(v *string) *IndicesRecordBuilder {
	esmodel.SetOpt(b.ob, indicesRecordStatus, v)
	return b
}

func (b *IndicesRecordBuilder) Index(v *string) *IndicesRecordBuilder {
	esmodel.SetOpt(b.ob, indicesRecordIndex, v)
	return b
}

func (b *IndicesRecordBuilder) UUID(v *string) *IndicesRecordBuilder {
	esmodel.SetOpt(b.ob, indicesRecordUUID, v)
	return b
}

func (b *IndicesRecordBuilder) DocsCount(v *string) *IndicesRecordBuilder {
	esmodel.SetOpt(b.ob, indicesRecordDocsCount, v)
	return b
}

func (b *IndicesRecordBuilder) CreationDate(v *codec.DateTime) *IndicesRecordBuilder {
	esmodel.SetOpt(b.ob, indicesRecordCreationDate, v)
	return b
}

func (b *IndicesRecordBuilder) Build() (*IndicesRecord, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &IndicesRecord{obj: o}, nil
}

// Response is the cat indices table. On the wire it is a bare array of
// records rather than an object.
type Response struct{ obj *esmodel.Object }

var responseDescriptor = esmodel.NewDescriptor("IndicesResponse", nil,
	esmodel.ListField("value", "value", IndicesRecordCodec).Required(),
)

var responseValue = responseDescriptor.Key("value")

// ResponseCodec writes the value list as the whole document.
var ResponseCodec esmodel.Codec[*Response] = responseCodec{}

type responseCodec struct{}

func (responseCodec) Encode(g esmodel.Generator, v *Response) error {
	g.WriteStartArray()
	for _, rec := range v.Value().All() {
		if err := IndicesRecordCodec.Encode(g, rec); err != nil {
			return err
		}
	}
	g.WriteEnd()
	return nil
}

func (responseCodec) Decode(d *esmodel.Decoder) (*Response, error) {
	b := NewResponseBuilder()
	b.Value(nil)
	err := d.ReadArray(func(int) error {
		rec, err := IndicesRecordCodec.Decode(d)
		if err != nil {
			return err
		}
		b.AddValue(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b.Build()
}

func (responseCodec) WireSchema(defs *esmodel.Definitions) *js.Schema {
	return &js.Schema{Type: "array", Items: esmodel.SchemaOf(IndicesRecordCodec, defs)}
}

func (r *Response) object() *esmodel.Object {
	if r == nil {
		return nil
	}
	return r.obj
}

func (r *Response) Value() esmodel.List[*IndicesRecord] {
	return esmodel.GetList[*IndicesRecord](r.object(), responseValue)
}

type ResponseBuilder struct{ ob *esmodel.ObjectBuilder }

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{ob: esmodel.NewObjectBuilder(responseDescriptor)}
}

func ResponseOf(fn func(*ResponseBuilder)) (*Response, error) {
	b := NewResponseBuilder()
	fn(b)
	return b.Build()
}

func (b *ResponseBuilder) Value(list []*IndicesRecord) *ResponseBuilder {
	esmodel.SetList(b.ob, responseValue, list)
	return b
}

func (b *ResponseBuilder) AddValue(v ...*IndicesRecord) *ResponseBuilder {
	esmodel.AppendList(b.ob, responseValue, v...)
	return b
}

func (b *ResponseBuilder) AddValueFn(fn func(*IndicesRecordBuilder)) *ResponseBuilder {
	v, err := IndicesRecordOf(fn)
	esmodel.AppendBuilt(b.ob, responseValue, v, err)
	return b
}

func (b *ResponseBuilder) Build() (*Response, error) {
	o, err := b.ob.Build()
	if err != nil {
		return nil, err
	}
	return &Response{obj: o}, nil
}

func init() {
	esmodel.Register(esmodel.Model{Name: "indices.IndicesRecord", Codec: esmodel.Erase(IndicesRecordCodec), Object: indicesRecordDescriptor})
	esmodel.Register(esmodel.Model{Name: "indices.Response", Codec: esmodel.Erase(ResponseCodec), Object: responseDescriptor})
}
