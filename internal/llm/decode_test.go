package llm

import (
	"errors"
	"testing"

	"specforge/internal/spec"
)

const minimalResult = `{
	"coldStartGuide": "# Guide",
	"directoryStructure": "app/",
	"implementationPlan": [{"id": "task-1", "title": "Scaffold", "description": "d"}],
	"architectureNotes": "notes",
	"fullMarkdownSpec": "# Spec"
}`

func TestDecodeResultDirect(t *testing.T) {
	result, err := DecodeResult(minimalResult)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	task := result.ImplementationPlan[0]
	if task.Priority != spec.PriorityMedium {
		t.Fatalf("decode should normalize priorities, got %q", task.Priority)
	}
	if task.TestStrategy == "" {
		t.Fatalf("decode should apply the test strategy default")
	}
}

func TestDecodeResultFenced(t *testing.T) {
	result, err := DecodeResult("Sure, here it is:\n```json\n" + minimalResult + "\n```")
	if err != nil {
		t.Fatalf("decode fenced: %v", err)
	}
	if len(result.ImplementationPlan) != 1 {
		t.Fatalf("unexpected plan length: %d", len(result.ImplementationPlan))
	}
}

func TestDecodeResultMalformed(t *testing.T) {
	_, err := DecodeResult("the model refused to answer")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDecodeResultBadPriority(t *testing.T) {
	_, err := DecodeResult(`{"coldStartGuide":"g","directoryStructure":"d","implementationPlan":[{"id":"t","priority":"urgent"}],"architectureNotes":"n","fullMarkdownSpec":"s"}`)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse for bad priority, got %v", err)
	}
}
