package dsl

import (
	sk "github.com/schemakit/schemakit"
)

// materializer is satisfied by SchemaNode and SchemaJoin. The flag reports
// whether the receiver already lives inside a defensive copy.
type materializer interface {
	materializeAs(copied bool) *sk.Document
}

// Materialize converts the builder tree into a plain document. The builder
// tree is never modified: when the node has nested structure the recursive
// walk runs on a deep copy and mutates that copy in place. Builder-only
// state (the required flag and the attachment back-reference) never reaches
// the output.
func (n *SchemaNode) Materialize() *sk.Document { return n.materializeAs(false) }

func (n *SchemaNode) materializeAs(copied bool) *sk.Document {
	props, hasProps := n.attrs.Get("properties")
	items, hasItems := n.attrs.Get("items")
	if (hasProps || hasItems) && !copied {
		return n.Clone().materializeAs(true)
	}

	if hasProps {
		switch pm := props.(type) {
		case *sk.Document:
			for _, k := range pm.Keys() {
				if pv, ok := pm.Get(k); ok {
					if m, ok := pv.(materializer); ok {
						pm.Set(k, m.materializeAs(copied))
					}
				}
			}
			if pm.Len() == 0 {
				n.attrs.Delete("properties")
			}
		case nil:
			n.attrs.Delete("properties")
		}
	}

	if hasItems {
		switch t := items.(type) {
		case []any:
			for i, it := range t {
				if m, ok := it.(materializer); ok {
					t[i] = m.materializeAs(copied)
				}
			}
		case materializer:
			n.attrs.Set("items", t.materializeAs(copied))
		}
	}

	return n.attrs.Copy()
}

// Materialize produces { joinType: [...materialized members], ...attrs }.
// Members are materialized into a new list, so the join needs no
// copy-then-mutate step of its own.
func (j *SchemaJoin) Materialize() *sk.Document { return j.materializeAs(false) }

func (j *SchemaJoin) materializeAs(bool) *sk.Document {
	out := sk.NewDocument()
	members := make([]any, 0, len(j.members))
	for _, m := range j.members {
		if mm, ok := m.(materializer); ok {
			members = append(members, mm.materializeAs(false))
			continue
		}
		members = append(members, m)
	}
	out.Set(j.joinType, members)
	for _, k := range j.attrs.Keys() {
		if v, ok := j.attrs.Get(k); ok {
			out.Set(k, v)
		}
	}
	return out
}
