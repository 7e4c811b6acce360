package jsonschema

// Draft is the dialect URI written on exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// It covers what model descriptors can express; extend as codecs need more.
type Schema struct {
	// Core
	SchemaURI   string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty"`
	MinProperties        *int               `json:"minProperties,omitempty"`
	MaxProperties        *int               `json:"maxProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Definitions referenced through Ref ("#/$defs/<name>").
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// RefTo returns a schema referencing the named definition.
func RefTo(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Int returns a pointer to n, for the optional count constraints.
func Int(n int) *int { return &n }
