package llm

import (
	"context"
	"errors"
	"testing"

	"specforge/internal/composer"
	"specforge/internal/spec"
)

func TestFakeClientGenerate(t *testing.T) {
	c := NewFakeClient()
	result, err := c.GenerateSpec(context.Background(), composer.Request{System: "s", User: "Build a CRM"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(result.ImplementationPlan) == 0 {
		t.Fatalf("expected a non-empty plan")
	}
	for _, task := range result.ImplementationPlan {
		if !spec.ValidPriority(task.Priority) {
			t.Fatalf("task %s has priority %q outside the closed set", task.ID, task.Priority)
		}
		if task.FilesInvolved == nil || task.Dependencies == nil || task.Subtasks == nil {
			t.Fatalf("task %s has nil array fields", task.ID)
		}
	}
}

func TestFakeClientCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFakeClient().GenerateSpec(ctx, composer.Request{})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport on cancelled context, got %v", err)
	}
}
