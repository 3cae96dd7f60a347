package schemakit

import (
	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeJSON renders a materialized document as compact JSON.
func EncodeJSON(doc *Document) ([]byte, error) {
	return j.Marshal(doc)
}

// EncodeJSONIndent renders a materialized document as indented JSON.
func EncodeJSONIndent(doc *Document, indent string) ([]byte, error) {
	return j.MarshalIndent(doc, "", indent)
}

// EncodeYAML renders a materialized document as YAML.
func EncodeYAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
