package sanitize

import (
	"reflect"
	"testing"
)

func TestStringEscapesHTML(t *testing.T) {
	got := String("<script>alert(1)</script>")
	want := "&lt;script&gt;alert(1)&lt;/script&gt;"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStringTrimsWhitespace(t *testing.T) {
	if got := String("  hello  "); got != "hello" {
		t.Errorf("Expected trimmed string, got %q", got)
	}
}

func TestValueSanitizesNestedObjects(t *testing.T) {
	input := map[string]interface{}{
		"teammate": map[string]interface{}{
			"name": "<b>Alice</b>",
		},
	}

	got := Value(input).(map[string]interface{})
	teammate := got["teammate"].(map[string]interface{})
	if teammate["name"] != "&lt;b&gt;Alice&lt;/b&gt;" {
		t.Errorf("Nested string not escaped: %v", teammate["name"])
	}
}

func TestValueSanitizesArrays(t *testing.T) {
	input := []interface{}{"<i>x</i>", float64(2), true}

	got := Value(input).([]interface{})
	if got[0] != "&lt;i&gt;x&lt;/i&gt;" {
		t.Errorf("Array string not escaped: %v", got[0])
	}
	if got[1] != float64(2) {
		t.Errorf("Number was altered: %v", got[1])
	}
	if got[2] != true {
		t.Errorf("Boolean was altered: %v", got[2])
	}
}

func TestValuePassesThroughNonStrings(t *testing.T) {
	cases := []interface{}{float64(42), true, false, nil}
	for _, c := range cases {
		if got := Value(c); !reflect.DeepEqual(got, c) {
			t.Errorf("Expected %v unchanged, got %v", c, got)
		}
	}
}

func TestValueDoesNotMutateInput(t *testing.T) {
	input := map[string]interface{}{
		"name": "<script>x</script>",
		"tags": []interface{}{"<a>"},
	}

	Value(input)

	if input["name"] != "<script>x</script>" {
		t.Errorf("Original map was mutated: %v", input["name"])
	}
	if input["tags"].([]interface{})[0] != "<a>" {
		t.Errorf("Original slice was mutated: %v", input["tags"])
	}
}
