package dsl

import (
	sk "github.com/schemakit/schemakit"
)

// Property names one slot in an object node's initial property set. Object
// takes a slice rather than a map so property declaration order is kept,
// which in turn fixes the order of the construction-time required scan.
type Property struct {
	Name  string
	Value any // *SchemaNode, *SchemaJoin, schemakit.Marker, or a raw value
}

// P is shorthand for building a Property.
func P(name string, value any) Property { return Property{Name: name, Value: value} }

// Number returns a number node.
func Number() *SchemaNode { return newNode(TypeNumber) }

// String returns a string node.
func String() *SchemaNode { return newNode(TypeString) }

// Bool returns a boolean node.
func Bool() *SchemaNode { return newNode(TypeBoolean) }

// Integer returns an integer node.
func Integer() *SchemaNode { return newNode(TypeInteger) }

// Object returns an object node. additionalProperties defaults to false and
// may be overridden afterward via AllowAdditional. Initial properties are
// attached in declaration order; markers are expanded through the conversion
// table, and every property whose resolved value is marked required has its
// name appended to the required list during this construction scan.
func Object(props ...Property) *SchemaNode {
	n := newNode(TypeObject)
	n.attrs.Set("additionalProperties", false)
	if len(props) == 0 {
		return n
	}
	pm := sk.NewDocument()
	var req []string
	for _, p := range props {
		v := n.adopt(p.Value, p.Name)
		pm.Set(p.Name, v)
		if isRequired(v) {
			req = append(req, p.Name)
		}
	}
	n.attrs.Set("properties", pm)
	for _, name := range req {
		n.appendRequired(name)
	}
	return n
}

// Array returns an array node. An optional argument attaches the item
// schema: pass a []any for tuple-style items (additionalItems=false) or a
// single node/marker (additionalItems=true).
func Array(items ...any) *SchemaNode {
	n := newNode(TypeArray)
	if len(items) == 0 {
		return n
	}
	return n.Items(items[0])
}

// AnyOf returns an anyOf join over the given members. Shorthand markers are
// expanded through the conversion table; anything else is kept as passed.
func AnyOf(members ...any) *SchemaJoin {
	j := newJoin("anyOf")
	j.members = make([]any, 0, len(members))
	for _, m := range members {
		if conv, ok := Convert(m); ok {
			j.members = append(j.members, conv)
			continue
		}
		j.members = append(j.members, m)
	}
	return j
}

// PermissiveNumber accepts either a JSON number or a numeric string.
func PermissiveNumber() *SchemaJoin {
	return AnyOf(Number(), String().Pattern(`^-?\d+(\.\d+)?$`))
}

func isRequired(v any) bool {
	switch t := v.(type) {
	case *SchemaNode:
		return t.required == requiredTrue
	case *SchemaJoin:
		return t.required == requiredTrue
	default:
		return false
	}
}
