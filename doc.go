package esmodel

// Package esmodel provides the object-construction and wire-mapping core
// behind the typed search API models under typedapi/:
//
// - Static, ordered field descriptors (name, wire key, required, cardinality, location)
// - Single-use builders that validate required fields once, at Build
// - List and map fields that distinguish unset from defined-but-empty
// - Descriptor-driven serialization over a token Generator/Source pair
// - Unions (externally tagged, typed keys) and JSON Schema export
//
// Design policy:
// - Keep the generic machinery in the root package; models live in typedapi/.
// - Token drivers live under source/ (JSON) and source/yaml, generators in
//   generator.go and sink/yaml.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  th, err := types.TotalHitsOf(func(b *types.TotalHitsBuilder) {
//      b.Value(10).Relation(types.TotalHitsRelationEq)
//  })
//  data, err := esmodel.Marshal(types.TotalHitsCodec, th)
//  back, err := esmodel.Unmarshal(types.TotalHitsCodec, data)
//
// Required checks can be switched off for a bounded scope:
//
//  h := esmodel.DisableRequiredChecks(true)
//  defer h.Close()
