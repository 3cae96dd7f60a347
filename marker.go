package schemakit

// Marker is a shorthand stand-in for a full schema node. Wherever a builder
// accepts a node (object properties, array items, combinator members), a
// marker may be passed instead and is expanded into a canned required node by
// the conversion table in dsl.
type Marker int

const (
	// MarkerNumber expands to a required number node.
	MarkerNumber Marker = iota
	// MarkerString expands to a required string node.
	MarkerString
	// MarkerBool expands to a required boolean node.
	MarkerBool
	// MarkerObject expands to a required object node that allows additional
	// properties.
	MarkerObject
)

func (m Marker) String() string {
	switch m {
	case MarkerNumber:
		return "number"
	case MarkerString:
		return "string"
	case MarkerBool:
		return "boolean"
	case MarkerObject:
		return "object"
	default:
		return "unknown"
	}
}
