package esmodel

import (
	"bytes"

	j "github.com/goccy/go-json"
	js "github.com/reoring/esmodel/jsonschema"
)

// SerializeObject writes o as a wire object: one key per set body field, in
// descriptor order. Unset collections are omitted; defined-empty ones are
// written as [] or {}.
func SerializeObject(g Generator, o *Object) error {
	g.WriteStartObject()
	if err := SerializeFields(g, o); err != nil {
		return err
	}
	g.WriteEnd()
	return nil
}

// SerializeFields writes the set body fields of o into an object the caller
// already opened.
func SerializeFields(g Generator, o *Object) error {
	if o == nil {
		return nil
	}
	for i, f := range o.desc.fields {
		if f.loc != InBody || !o.set[i] {
			continue
		}
		g.WriteKey(f.wireKey)
		if err := f.ops.encode(g, o.values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads one wire object into a new builder for desc. Unknown
// keys are skipped and null leaves a field unset. The builder is returned
// unbuilt so that required fields are validated by the caller's Build.
func Deserialize(d *Decoder, desc *Descriptor) (*ObjectBuilder, error) {
	b := NewObjectBuilder(desc)
	err := d.ReadObject(func(key string) error {
		_, err := DeserializeField(d, b, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// DeserializeField decodes the value following key into b when key names a
// body field of b's descriptor, and skips it otherwise. It reports whether
// the key was recognized.
func DeserializeField(d *Decoder, b *ObjectBuilder, key string) (bool, error) {
	k, ok := b.desc.LookupWireKey(key)
	if !ok || b.desc.fields[k].loc != InBody {
		return false, d.Skip()
	}
	null, err := d.NextIsNull()
	if err != nil || null {
		return true, err
	}
	f := b.desc.fields[k]
	if err := f.ops.decode(d, b, k); err != nil {
		return true, qualify(err, b.desc.name, f.name)
	}
	return true, nil
}

// DecodeObject deserializes and builds one object.
func DecodeObject(d *Decoder, desc *Descriptor) (*Object, error) {
	b, err := Deserialize(d, desc)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// ModelCodec returns the codec of a typed model wrapping *Object. wrap is
// given each decoded object and unwrap must return the object to encode.
//
// Self-referencing models cannot use it from a package-level var (the
// descriptor would depend on itself); they declare a codec type whose
// methods call SerializeObject and DecodeObject instead.
func ModelCodec[T any](desc *Descriptor, wrap func(*Object) T, unwrap func(T) *Object) Codec[T] {
	return modelCodec[T]{desc: desc, wrap: wrap, unwrap: unwrap}
}

type modelCodec[T any] struct {
	desc   *Descriptor
	wrap   func(*Object) T
	unwrap func(T) *Object
}

func (c modelCodec[T]) Encode(g Generator, v T) error { return SerializeObject(g, c.unwrap(v)) }

func (c modelCodec[T]) Decode(d *Decoder) (T, error) {
	o, err := DecodeObject(d, c.desc)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.wrap(o), nil
}

func (c modelCodec[T]) WireSchema(defs *Definitions) *js.Schema { return DescriptorSchema(c.desc, defs) }

// Marshal encodes v as compact JSON.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(NewJSONGenerator(&buf), c, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is Marshal with indentation.
func MarshalIndent[T any](c Codec[T], v T, prefix, indent string) ([]byte, error) {
	b, err := Marshal(c, v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := j.Indent(&out, b, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Write encodes v to g and reports the generator's error state.
func Write[T any](g Generator, c Codec[T], v T) error {
	if err := c.Encode(g, v); err != nil {
		return err
	}
	return g.Err()
}

// Unmarshal decodes exactly one JSON value from data.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	return Read(c, JSONBytes(data))
}

// Read decodes exactly one value from src; trailing tokens are an error.
func Read[T any](c Codec[T], src Source) (T, error) {
	d := NewDecoder(src)
	v, err := c.Decode(d)
	if err != nil {
		return v, err
	}
	if err := d.ExpectEOF(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
