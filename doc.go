package schemakit

// Package schemakit provides:
//
// - A declarative builder for JSON-Schema-like documents (dsl.SchemaNode/SchemaJoin)
// - An ordered Document type that keeps attribute order stable across JSON and YAML output
// - Shorthand markers (number/text/bool/object) that expand into canned required nodes
// - Encode helpers for the materialized document (EncodeJSON/EncodeYAML)
//
// Design policy:
// - Keep only shared public types in the root package; the builder lives under dsl/.
// - Place the YAML shorthand importer under shorthand/ and the CLI under cmd/schemakit.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  s := dsl.Object(
//      dsl.P("id", schemakit.MarkerString),
//      dsl.P("price", dsl.Number().Min(0)),
//  )
//  doc := s.Materialize()
//  out, err := schemakit.EncodeJSON(doc)
//
