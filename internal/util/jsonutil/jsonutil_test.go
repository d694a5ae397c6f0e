package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalFlexDirect(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if err := UnmarshalFlex([]byte(`{"name":"a"}`), &v); err != nil {
		t.Fatalf("direct unmarshal: %v", err)
	}
	if v.Name != "a" {
		t.Fatalf("unexpected value: %q", v.Name)
	}
}

func TestUnmarshalFlexStringWrapped(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	// payload arrives as a JSON-encoded string
	raw := []byte(`"{\"name\":\"b\"}"`)
	if err := UnmarshalFlex(raw, &v); err != nil {
		t.Fatalf("string-wrapped unmarshal: %v", err)
	}
	if v.Name != "b" {
		t.Fatalf("unexpected value: %q", v.Name)
	}
}

func TestMarshalNoEscape(t *testing.T) {
	out, err := MarshalNoEscape(map[string]string{"k": "<a> & b"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), `<`) {
		t.Fatalf("angle brackets should not be escaped: %s", out)
	}
	if strings.HasSuffix(string(out), "\n") {
		t.Fatalf("trailing newline should be trimmed")
	}
}

func TestUnescapeUnicodeString(t *testing.T) {
	got, err := UnescapeUnicodeString(`a > b`)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if got != "a > b" {
		t.Fatalf("unexpected result: %q", got)
	}
}
