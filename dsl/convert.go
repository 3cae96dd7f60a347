package dsl

import (
	sk "github.com/schemakit/schemakit"
)

// canned holds the pre-built nodes behind the shorthand markers. Convert
// always hands out a fresh clone so no mutable state is shared between uses.
var canned = map[sk.Marker]*SchemaNode{}

func init() {
	canned[sk.MarkerNumber] = Number().Required()
	canned[sk.MarkerString] = String().Required()
	canned[sk.MarkerBool] = Bool().Required()
	canned[sk.MarkerObject] = Object().AllowAdditional(true).Required()
}

// Convert resolves a shorthand marker to a fresh copy of its canned node.
// The second result is false when v is not a known marker; call sites treat
// that as "no conversion available, use the raw value".
func Convert(v any) (*SchemaNode, bool) {
	m, ok := v.(sk.Marker)
	if !ok {
		return nil, false
	}
	n, ok := canned[m]
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}
