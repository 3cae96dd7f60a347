package schemakit

import (
	"bytes"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DeepCopier is implemented by attribute values that own nested mutable state
// and must produce an independent copy when the enclosing document is cloned.
type DeepCopier interface {
	DeepCopy() any
}

type entry struct {
	key   string
	value any
}

// Document is an ordered attribute mapping. Insertion order is preserved and
// drives JSON/YAML serialization, so materialized schemas render
// deterministically (type first, then constraints, in declaration order).
type Document struct {
	entries []entry
	index   map[string]int
}

// NewDocument returns an empty ordered document.
func NewDocument() *Document {
	return &Document{index: make(map[string]int)}
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (d *Document) Set(key string, value any) {
	if i, ok := d.index[key]; ok {
		d.entries[i].value = value
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, entry{key: key, value: value})
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].value, true
}

// Delete removes key, preserving the relative order of remaining entries.
func (d *Document) Delete(key string) {
	i, ok := d.index[key]
	if !ok {
		return
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	delete(d.index, key)
	for k, idx := range d.index {
		if idx > i {
			d.index[k] = idx - 1
		}
	}
}

// Len returns the number of entries.
func (d *Document) Len() int { return len(d.entries) }

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.key
	}
	return out
}

// Copy returns a shallow copy: a new document sharing the entry values.
func (d *Document) Copy() *Document {
	out := NewDocument()
	for _, e := range d.entries {
		out.Set(e.key, e.value)
	}
	return out
}

// Clone returns a deep copy. Nested documents, slices, and values
// implementing DeepCopier are copied; scalars are shared by value.
func (d *Document) Clone() *Document {
	out := NewDocument()
	for _, e := range d.entries {
		out.Set(e.key, cloneValue(e.value))
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Document:
		return t.Clone()
	case DeepCopier:
		return t.DeepCopy()
	case []any:
		cp := make([]any, len(t))
		for i, x := range t {
			cp[i] = cloneValue(x)
		}
		return cp
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// MarshalJSON renders the document as a JSON object in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := j.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the document as a YAML mapping in insertion order.
func (d *Document) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range d.entries {
		var k yaml.Node
		if err := k.Encode(e.key); err != nil {
			return nil, err
		}
		var v yaml.Node
		if err := v.Encode(e.value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}
