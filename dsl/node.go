package dsl

import (
	sk "github.com/schemakit/schemakit"
)

// NodeType enumerates the plain schema types a SchemaNode can describe.
type NodeType string

const (
	TypeNumber  NodeType = "number"
	TypeString  NodeType = "string"
	TypeBoolean NodeType = "boolean"
	TypeInteger NodeType = "integer"
	TypeObject  NodeType = "object"
	TypeArray   NodeType = "array"
)

// requiredFlag is tri-state: a node starts unset and flips only via
// Required/Optional or the conversion table.
type requiredFlag int

const (
	requiredUnset requiredFlag = iota
	requiredTrue
	requiredFalse
)

// SchemaNode builds a plain schema type. Every derivation method returns a
// new node with deep-copied attributes; the receiver is never modified. The
// parent/slot pair records where the node was attached as a named property
// and exists only so required-ness can be pushed upward.
type SchemaNode struct {
	nodeType NodeType
	attrs    *sk.Document
	required requiredFlag
	parent   *SchemaNode
	slot     string
}

func newNode(t NodeType) *SchemaNode {
	n := &SchemaNode{nodeType: t, attrs: sk.NewDocument()}
	n.attrs.Set("type", string(t))
	return n
}

// Type returns the node's schema type.
func (n *SchemaNode) Type() NodeType { return n.nodeType }

// Clone returns a structurally independent deep copy. The attachment
// back-reference still points at the node the original was attached to.
func (n *SchemaNode) Clone() *SchemaNode {
	cp := *n
	cp.attrs = n.attrs.Clone()
	return &cp
}

// DeepCopy implements schemakit.DeepCopier so nodes nested inside a Document
// are copied along with it.
func (n *SchemaNode) DeepCopy() any { return n.Clone() }

func (n *SchemaNode) with(name string, value any) *SchemaNode {
	cp := n.Clone()
	cp.attrs.Set(name, value)
	return cp
}

// minAttr maps the lower-bound attribute name by node type. Unknown types
// fall back to the numeric names.
func (n *SchemaNode) minAttr() string {
	switch n.nodeType {
	case TypeArray:
		return "minItems"
	case TypeString:
		return "minLength"
	case TypeObject:
		return "minProperties"
	default:
		return "minimum"
	}
}

func (n *SchemaNode) maxAttr() string {
	switch n.nodeType {
	case TypeArray:
		return "maxItems"
	case TypeString:
		return "maxLength"
	case TypeObject:
		return "maxProperties"
	default:
		return "maximum"
	}
}

// Min sets the lower bound under the attribute name matching the node type
// (minItems/minLength/minProperties/minimum).
func (n *SchemaNode) Min(v any) *SchemaNode { return n.with(n.minAttr(), v) }

// Max sets the upper bound under the attribute name matching the node type
// (maxItems/maxLength/maxProperties/maximum).
func (n *SchemaNode) Max(v any) *SchemaNode { return n.with(n.maxAttr(), v) }

// Pattern sets the pattern attribute. Meaningful for string nodes only; no
// type check is enforced.
func (n *SchemaNode) Pattern(re string) *SchemaNode { return n.with("pattern", re) }

// Length sets the min/max pair to the same value for array, string, and
// object nodes. Types without a length vocabulary get a generic "length"
// attribute instead.
func (n *SchemaNode) Length(v any) *SchemaNode {
	switch n.nodeType {
	case TypeArray, TypeString, TypeObject:
		cp := n.Clone()
		cp.attrs.Set(n.minAttr(), v)
		cp.attrs.Set(n.maxAttr(), v)
		return cp
	default:
		return n.with("length", v)
	}
}

// Title sets the title attribute.
func (n *SchemaNode) Title(s string) *SchemaNode { return n.with("title", s) }

// Description sets the description attribute.
func (n *SchemaNode) Description(s string) *SchemaNode { return n.with("description", s) }

// Definitions sets the definitions attribute.
func (n *SchemaNode) Definitions(v any) *SchemaNode { return n.with("definitions", v) }

// Attr sets an arbitrary attribute that is passed through to the output
// document unchanged.
func (n *SchemaNode) Attr(name string, value any) *SchemaNode { return n.with(name, value) }

// AllowAdditional sets additionalProperties for object nodes and
// additionalItems for everything else.
func (n *SchemaNode) AllowAdditional(allow bool) *SchemaNode {
	if n.nodeType == TypeObject {
		return n.with("additionalProperties", allow)
	}
	return n.with("additionalItems", allow)
}

// AddRequired appends name to the required list, creating it when absent.
func (n *SchemaNode) AddRequired(name string) *SchemaNode {
	cp := n.Clone()
	cp.appendRequired(name)
	return cp
}

// appendRequired edits the receiver's required list in place. Derivations go
// through AddRequired; SchemaJoin.Required calls this directly on the parent.
func (n *SchemaNode) appendRequired(name string) {
	if v, ok := n.attrs.Get("required"); ok {
		if list, ok := v.([]string); ok {
			n.attrs.Set("required", append(list, name))
			return
		}
	}
	n.attrs.Set("required", []string{name})
}

// Optional marks the node as not required on a new copy.
func (n *SchemaNode) Optional() *SchemaNode {
	cp := n.Clone()
	cp.required = requiredFalse
	return cp
}

// Required marks the node as required on a new copy. Parents consult the
// flag only during their construction scan, so calling Required on a node
// that is already attached does not edit the parent's required list. (A
// SchemaJoin's Required does; see join.go.)
func (n *SchemaNode) Required() *SchemaNode {
	cp := n.Clone()
	cp.required = requiredTrue
	return cp
}

// Items attaches the item schema. A []any argument declares tuple-style
// items: each entry is shorthand-converted independently and additionalItems
// becomes false. Any other argument is attached as a single item schema and
// additionalItems stays true.
func (n *SchemaNode) Items(items any) *SchemaNode {
	cp := n.Clone()
	if list, ok := items.([]any); ok {
		resolved := make([]any, 0, len(list))
		for _, it := range list {
			resolved = append(resolved, cp.adopt(it, "items"))
		}
		cp.attrs.Set("items", resolved)
		cp.attrs.Set("additionalItems", false)
		return cp
	}
	cp.attrs.Set("items", cp.adopt(items, "items"))
	cp.attrs.Set("additionalItems", true)
	return cp
}

// adopt resolves shorthand markers through the conversion table and records
// the attachment relation on nodes and joins. Raw values pass through.
func (n *SchemaNode) adopt(v any, slot string) any {
	switch t := v.(type) {
	case sk.Marker:
		child, ok := Convert(t)
		if !ok {
			return v
		}
		child = child.Title(slot)
		child.parent = n
		child.slot = slot
		child.required = requiredTrue
		return child
	case *SchemaNode:
		t.parent = n
		t.slot = slot
		return t
	case *SchemaJoin:
		t.parent = n
		t.slot = slot
		return t
	default:
		return v
	}
}
