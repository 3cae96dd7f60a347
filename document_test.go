package schemakit_test

import (
	"reflect"
	"strings"
	"testing"

	schemakit "github.com/schemakit/schemakit"
)

func TestDocument_OrderPreserved(t *testing.T) {
	d := schemakit.NewDocument()
	d.Set("type", "object")
	d.Set("additionalProperties", false)
	d.Set("title", "user")
	d.Set("type", "object") // update keeps position

	if got, want := d.Keys(), []string{"type", "additionalProperties", "title"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys mismatch\n got=%v\nwant=%v", got, want)
	}

	b, err := schemakit.EncodeJSON(d)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	want := `{"type":"object","additionalProperties":false,"title":"user"}`
	if string(b) != want {
		t.Fatalf("json mismatch\n got=%s\nwant=%s", b, want)
	}
}

func TestDocument_Delete(t *testing.T) {
	d := schemakit.NewDocument()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("c", 3)
	d.Delete("b")

	if got, want := d.Keys(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys after delete\n got=%v\nwant=%v", got, want)
	}
	if _, ok := d.Get("b"); ok {
		t.Fatalf("deleted key still present")
	}
	if v, ok := d.Get("c"); !ok || v != 3 {
		t.Fatalf("index not rebuilt after delete: got %v, %v", v, ok)
	}
}

func TestDocument_CloneIsDeep(t *testing.T) {
	nested := schemakit.NewDocument()
	nested.Set("type", "string")

	d := schemakit.NewDocument()
	d.Set("properties", nested)
	d.Set("required", []string{"a"})

	cp := d.Clone()
	nested.Set("type", "number")
	cn, _ := cp.Get("properties")
	if got, _ := cn.(*schemakit.Document).Get("type"); got != "string" {
		t.Fatalf("clone shares nested document: got %v", got)
	}

	// required slices must not share backing arrays
	orig, _ := d.Get("required")
	cloned, _ := cp.Get("required")
	cloned.([]string)[0] = "z"
	if orig.([]string)[0] != "a" {
		t.Fatalf("clone shares required slice")
	}
}

func TestDocument_CopyIsShallow(t *testing.T) {
	nested := schemakit.NewDocument()
	nested.Set("type", "string")

	d := schemakit.NewDocument()
	d.Set("properties", nested)

	cp := d.Copy()
	nested.Set("type", "number")
	cn, _ := cp.Get("properties")
	if got, _ := cn.(*schemakit.Document).Get("type"); got != "number" {
		t.Fatalf("shallow copy should share nested values, got %v", got)
	}
}

func TestEncodeYAML_Order(t *testing.T) {
	d := schemakit.NewDocument()
	d.Set("type", "object")
	d.Set("additionalProperties", false)

	b, err := schemakit.EncodeYAML(d)
	if err != nil {
		t.Fatalf("encode yaml err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "type:") || !strings.HasPrefix(lines[1], "additionalProperties:") {
		t.Fatalf("yaml order mismatch: %q", string(b))
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	d := schemakit.NewDocument()
	d.Set("type", "string")

	b, err := schemakit.EncodeJSONIndent(d, "  ")
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if !strings.Contains(string(b), "\n") {
		t.Fatalf("expected indented output, got %q", string(b))
	}
}

func TestMarker_String(t *testing.T) {
	cases := map[schemakit.Marker]string{
		schemakit.MarkerNumber: "number",
		schemakit.MarkerString: "string",
		schemakit.MarkerBool:   "boolean",
		schemakit.MarkerObject: "object",
		schemakit.Marker(99):   "unknown",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Fatalf("Marker(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
