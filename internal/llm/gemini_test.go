package llm

import (
	"context"
	"errors"
	"testing"
)

func TestNewGeminiClientMissingKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for missing API key, got %v", err)
	}
}

func TestResultSchemaRequiredFields(t *testing.T) {
	schema := ResultSchema()
	want := map[string]bool{
		"coldStartGuide":     false,
		"directoryStructure": false,
		"implementationPlan": false,
		"architectureNotes":  false,
		"fullMarkdownSpec":   false,
	}
	for _, name := range schema.Required {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("schema does not require %q", name)
		}
	}
	if _, ok := schema.Properties["title"]; !ok {
		t.Fatalf("schema should carry an optional title property")
	}
}
