package esmodel

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	j "github.com/goccy/go-json"

	js "github.com/reoring/esmodel/jsonschema"
)

// Schemer is implemented by codecs that can describe their wire shape as
// JSON Schema. Codecs without it project to the empty (accept-all) schema.
type Schemer interface {
	WireSchema(defs *Definitions) *js.Schema
}

// Definitions collects named model schemas while a schema is exported, so
// that recursive models (an error cause and its caused_by) become $refs.
type Definitions struct {
	defs  map[string]*js.Schema
	order []string
}

func NewDefinitions() *Definitions { return &Definitions{defs: map[string]*js.Schema{}} }

// Ref registers the named schema on first use, calling build, and returns a
// reference to it.
func (d *Definitions) Ref(name string, build func() *js.Schema) *js.Schema {
	if _, ok := d.defs[name]; !ok {
		d.defs[name] = nil
		d.order = append(d.order, name)
		d.defs[name] = build()
	}
	return js.RefTo(name)
}

// Names returns the registered names in registration order.
func (d *Definitions) Names() []string { return append([]string(nil), d.order...) }

func (d *Definitions) Lookup(name string) (*js.Schema, bool) {
	s, ok := d.defs[name]
	return s, ok && s != nil
}

// SchemaOf projects codec c, registering any models it references in defs.
func SchemaOf(c any, defs *Definitions) *js.Schema {
	if s, ok := c.(Schemer); ok {
		return s.WireSchema(defs)
	}
	return &js.Schema{}
}

// DescriptorSchema registers desc under its name and returns a $ref to it.
func DescriptorSchema(desc *Descriptor, defs *Definitions) *js.Schema {
	return defs.Ref(desc.name, func() *js.Schema {
		s := objectSchema(desc, defs)
		s.Title = desc.name
		return s
	})
}

// objectSchema lists the body fields of desc. Additional properties stay
// allowed: unknown keys are skipped on input.
func objectSchema(desc *Descriptor, defs *Definitions) *js.Schema {
	s := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	for _, f := range desc.fields {
		if f.loc != InBody {
			continue
		}
		s.Properties[f.wireKey] = f.ops.schema(defs)
		if f.required {
			s.Required = append(s.Required, f.wireKey)
		}
	}
	return s
}

// ExportSchema returns a standalone JSON Schema document for values of c,
// with every referenced model under $defs.
func ExportSchema(c any) *js.Schema {
	defs := NewDefinitions()
	root := SchemaOf(c, defs)
	if root.Ref != "" {
		// wrap so that the root carries $defs next to a bare $ref
		root = &js.Schema{Ref: root.Ref}
	}
	root.SchemaURI = js.Draft
	if len(defs.order) > 0 {
		root.Defs = make(map[string]*js.Schema, len(defs.order))
		for _, name := range defs.order {
			root.Defs[name] = defs.defs[name]
		}
	}
	return root
}

// MarshalSchema renders s as JSON, indented when indent is not empty. Keys
// follow the field order of js.Schema; property and $defs names are sorted.
func MarshalSchema(s *js.Schema, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	g := NewJSONGenerator(&buf)
	if err := WriteSchema(g, s); err != nil {
		return nil, err
	}
	if err := g.Err(); err != nil {
		return nil, err
	}
	if indent == "" && prefix == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := j.Indent(&out, buf.Bytes(), prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteSchema streams s to g.
func WriteSchema(g Generator, s *js.Schema) error {
	if s == nil {
		g.WriteNull()
		return nil
	}
	g.WriteStartObject()
	str := func(key, v string) {
		if v != "" {
			g.WriteKey(key)
			g.WriteString(v)
		}
	}
	str("$schema", s.SchemaURI)
	str("$ref", s.Ref)
	str("title", s.Title)
	str("description", s.Description)
	str("type", s.Type)
	str("format", s.Format)
	if len(s.Enum) > 0 {
		g.WriteKey("enum")
		if err := writeAny(g, s.Enum); err != nil {
			return err
		}
	}
	if err := writeSchemaMap(g, "properties", s.Properties); err != nil {
		return err
	}
	if len(s.Required) > 0 {
		g.WriteKey("required")
		g.WriteStartArray()
		for _, r := range s.Required {
			g.WriteString(r)
		}
		g.WriteEnd()
	}
	switch ap := s.AdditionalProperties.(type) {
	case nil:
	case bool:
		g.WriteKey("additionalProperties")
		g.WriteBool(ap)
	case *js.Schema:
		if ap != nil {
			g.WriteKey("additionalProperties")
			if err := WriteSchema(g, ap); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("esmodel: unsupported additionalProperties %T", ap)
	}
	if s.PropertyNames != nil {
		g.WriteKey("propertyNames")
		if err := WriteSchema(g, s.PropertyNames); err != nil {
			return err
		}
	}
	if s.MinProperties != nil {
		g.WriteKey("minProperties")
		g.WriteInt(int64(*s.MinProperties))
	}
	if s.MaxProperties != nil {
		g.WriteKey("maxProperties")
		g.WriteInt(int64(*s.MaxProperties))
	}
	if s.Items != nil {
		g.WriteKey("items")
		if err := WriteSchema(g, s.Items); err != nil {
			return err
		}
	}
	if len(s.OneOf) > 0 {
		g.WriteKey("oneOf")
		g.WriteStartArray()
		for _, o := range s.OneOf {
			if err := WriteSchema(g, o); err != nil {
				return err
			}
		}
		g.WriteEnd()
	}
	if err := writeSchemaMap(g, "$defs", s.Defs); err != nil {
		return err
	}
	g.WriteEnd()
	return nil
}

func writeSchemaMap(g Generator, key string, m map[string]*js.Schema) error {
	if len(m) == 0 {
		return nil
	}
	g.WriteKey(key)
	g.WriteStartObject()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		g.WriteKey(name)
		if err := WriteSchema(g, m[name]); err != nil {
			return err
		}
	}
	g.WriteEnd()
	return nil
}
