package spec

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	r := &SpecificationResult{
		ImplementationPlan: []TaskItem{
			{ID: "task-1", Title: "Scaffold"},
		},
	}
	if err := Normalize(r); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	task := r.ImplementationPlan[0]
	if task.Priority != PriorityMedium {
		t.Fatalf("missing priority should default to medium, got %q", task.Priority)
	}
	if task.TestStrategy != "Manual verification" {
		t.Fatalf("missing test strategy should get the default, got %q", task.TestStrategy)
	}
	if task.FilesInvolved == nil || task.Dependencies == nil || task.Subtasks == nil {
		t.Fatalf("array fields should be non-nil after normalize")
	}
}

func TestNormalizeNilPlan(t *testing.T) {
	r := &SpecificationResult{}
	if err := Normalize(r); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if r.ImplementationPlan == nil {
		t.Fatalf("nil plan should become empty slice")
	}
}

func TestNormalizeRejectsUnknownPriority(t *testing.T) {
	r := &SpecificationResult{
		ImplementationPlan: []TaskItem{{ID: "task-1", Priority: "urgent"}},
	}
	if err := Normalize(r); err == nil {
		t.Fatalf("expected error for priority outside the closed set")
	}
}

func TestNormalizeClampsSubtaskNesting(t *testing.T) {
	r := &SpecificationResult{
		ImplementationPlan: []TaskItem{{
			ID: "task-1",
			Subtasks: []TaskItem{{
				ID:       "task-1.1",
				Subtasks: []TaskItem{{ID: "task-1.1.1"}},
			}},
		}},
	}
	if err := Normalize(r); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	sub := r.ImplementationPlan[0].Subtasks[0]
	if len(sub.Subtasks) != 0 {
		t.Fatalf("subtasks should not nest beyond one level, got %d", len(sub.Subtasks))
	}
	if sub.TestStrategy != "" {
		t.Fatalf("subtasks should not receive the test strategy default, got %q", sub.TestStrategy)
	}
}
