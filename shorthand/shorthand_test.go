package shorthand_test

import (
	"reflect"
	"strings"
	"testing"

	j "github.com/goccy/go-json"

	"github.com/schemakit/schemakit/shorthand"
)

func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := j.Marshal(v)
	if err != nil {
		t.Fatalf("normalize marshal: %v", err)
	}
	var out any
	if err := j.Unmarshal(b, &out); err != nil {
		t.Fatalf("normalize unmarshal: %v", err)
	}
	return out
}

func TestImport_Basic(t *testing.T) {
	src := `
name: text
age: integer
score: number
active: bool
`
	node, err := shorthand.Import([]byte(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	got := normalize(t, node.Materialize())
	want := normalize(t, map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":   map[string]any{"type": "string", "title": "name"},
			"age":    map[string]any{"type": "integer"},
			"score":  map[string]any{"type": "number", "title": "score"},
			"active": map[string]any{"type": "boolean", "title": "active"},
		},
		"required": []string{"name", "age", "score", "active"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("document mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestImport_RequiredOrderFollowsDeclaration(t *testing.T) {
	src := "b: text\na: number\nc: bool\n"
	node, err := shorthand.Import([]byte(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	v, ok := node.Materialize().Get("required")
	if !ok {
		t.Fatalf("required missing")
	}
	if got, want := v.([]string), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("required = %v, want %v", got, want)
	}
}

func TestImport_NestedAndSequences(t *testing.T) {
	src := `
tags: [text]
pair: [number, text]
meta:
  rank: number
`
	node, err := shorthand.Import([]byte(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	doc := node.Materialize()
	props, _ := doc.Get("properties")
	got := normalize(t, props)
	want := normalize(t, map[string]any{
		"tags": map[string]any{
			"type":            "array",
			"items":           map[string]any{"type": "string", "title": "items"},
			"additionalItems": true,
		},
		"pair": map[string]any{
			"type": "array",
			"items": []any{
				map[string]any{"type": "number", "title": "items"},
				map[string]any{"type": "string", "title": "items"},
			},
			"additionalItems": false,
		},
		"meta": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"rank": map[string]any{"type": "number", "title": "rank"},
			},
			"required": []string{"rank"},
		},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("properties mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestImport_AnyOf(t *testing.T) {
	src := `
id:
  anyOf: [number, text]
`
	node, err := shorthand.Import([]byte(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	doc := node.Materialize()
	req, ok := doc.Get("required")
	if !ok || req.([]string)[0] != "id" {
		t.Fatalf("anyOf property should be required: %v, %v", req, ok)
	}
	props, _ := doc.Get("properties")
	got := normalize(t, props)
	want := normalize(t, map[string]any{
		"id": map[string]any{
			"anyOf": []any{
				map[string]any{"type": "number"},
				map[string]any{"type": "string"},
			},
		},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("anyOf mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestImport_OptionalSuffix(t *testing.T) {
	src := "nickname?: text\nname: text\n"
	node, err := shorthand.Import([]byte(src))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	doc := node.Materialize()
	v, ok := doc.Get("required")
	if !ok {
		t.Fatalf("required missing")
	}
	if got, want := v.([]string), []string{"name"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("required = %v, want %v", got, want)
	}
	props, _ := doc.Get("properties")
	pk := normalize(t, props).(map[string]any)
	if _, ok := pk["nickname"]; !ok {
		t.Fatalf("optional property dropped: %v", pk)
	}
}

func TestImport_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown type":   "a: datetime\n",
		"top-level list": "- text\n",
		"optional anyOf": "x?:\n  anyOf: [number, text]\n",
		"empty name":     "\"?\": text\n",
		"empty document": "",
	}
	for name, src := range cases {
		if _, err := shorthand.Import([]byte(src)); err == nil {
			t.Fatalf("%s: expected error for %q", name, src)
		}
	}
}

func TestImport_DecodeError(t *testing.T) {
	_, err := shorthand.Import([]byte("a: [unclosed\n"))
	if err == nil || !strings.Contains(err.Error(), "shorthand") {
		t.Fatalf("expected wrapped decode error, got %v", err)
	}
}
