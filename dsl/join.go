package dsl

import (
	sk "github.com/schemakit/schemakit"
)

// SchemaJoin builds a combinator schema (anyOf) over an ordered member list.
// Members may be nodes, joins, or raw values that pass through untouched.
type SchemaJoin struct {
	joinType string
	members  []any
	attrs    *sk.Document
	required requiredFlag
	parent   *SchemaNode
	slot     string
}

func newJoin(joinType string) *SchemaJoin {
	return &SchemaJoin{joinType: joinType, attrs: sk.NewDocument()}
}

// JoinType returns the combinator name.
func (j *SchemaJoin) JoinType() string { return j.joinType }

// Clone returns a structurally independent deep copy.
func (j *SchemaJoin) Clone() *SchemaJoin {
	cp := *j
	cp.attrs = j.attrs.Clone()
	cp.members = make([]any, len(j.members))
	for i, m := range j.members {
		switch t := m.(type) {
		case *SchemaNode:
			cp.members[i] = t.Clone()
		case *SchemaJoin:
			cp.members[i] = t.Clone()
		default:
			cp.members[i] = m
		}
	}
	return &cp
}

// DeepCopy implements schemakit.DeepCopier.
func (j *SchemaJoin) DeepCopy() any { return j.Clone() }

// Attr sets a sibling attribute that is merged alongside the combinator key
// on materialization.
func (j *SchemaJoin) Attr(name string, value any) *SchemaJoin {
	cp := j.Clone()
	cp.attrs.Set(name, value)
	return cp
}

// Title sets the title sibling attribute.
func (j *SchemaJoin) Title(s string) *SchemaJoin { return j.Attr("title", s) }

// Description sets the description sibling attribute.
func (j *SchemaJoin) Description(s string) *SchemaJoin { return j.Attr("description", s) }

// Optional is a no-op: a join's optionality is fixed at construction.
func (j *SchemaJoin) Optional() *SchemaJoin { return j }

// Required marks the join as required. When the join is already attached to
// an object node, its slot name is appended to that node's required list in
// place. Joins are typically built standalone and attached afterward, so
// there is no later construction scan to pick the flag up; this eager push
// is the one derivation that is not copy-on-write.
func (j *SchemaJoin) Required() *SchemaJoin {
	j.required = requiredTrue
	if j.parent != nil && j.slot != "" {
		j.parent.appendRequired(j.slot)
	}
	return j
}
