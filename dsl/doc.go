// Package dsl provides the schema builder core for schemakit.
//
// Overview
//   - Factory: Number()/String()/Bool()/Integer()/Object(props...)/Array(items)
//     construct plain schema nodes; AnyOf(members...) constructs a combinator
//     join; PermissiveNumber() is a canned number-or-numeric-string join.
//   - Derivation: every chainable method on SchemaNode (Min/Max/Pattern/
//     Length/Title/Description/Definitions/Attr/Items/AllowAdditional/
//     AddRequired/Optional/Required) returns a new node with deep-copied
//     attributes. SchemaJoin.Required is the documented exception: it flags
//     the join itself and pushes the slot name into the attached parent's
//     required list in place.
//   - Shorthand: schemakit.Marker values stand in for full nodes in object
//     properties, array items, and join members; Convert expands them into
//     fresh copies of canned required nodes.
//   - Materialization: Materialize() walks a defensive copy of the tree and
//     returns an ordered schemakit.Document holding only document attributes.
//
// Required-ness propagates along two distinct paths and they are not
// interchangeable: an object's construction scan reads the required flag of
// each initial property exactly once, while a join attached afterward pushes
// its slot name eagerly when Required() is called. Calling Required() on an
// already-attached SchemaNode changes only the copy's flag and never the
// parent's list.
//
// File layout (roles)
//   - node.go: SchemaNode, attribute-name remapping, derivation methods.
//   - join.go: SchemaJoin (anyOf) and its parent-mutating Required.
//   - convert.go: the marker conversion table.
//   - factory.go: package-level constructors and Property/P.
//   - materialize.go: the recursive walk producing schemakit.Document.
//
// Example
//
//	s := dsl.Object(
//	    dsl.P("name", schemakit.MarkerString),
//	    dsl.P("age", dsl.Integer().Min(0).Optional()),
//	)
//	doc := s.Materialize()
package dsl
