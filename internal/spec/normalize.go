package spec

import "fmt"

const defaultTestStrategy = "Manual verification"

// Normalize applies the schema defaults to a freshly decoded result and
// verifies the closed-set fields: every task gets a priority from the closed
// set, all array fields become non-nil, and subtasks are clamped to one level
// of nesting. Content fields are never rewritten.
func Normalize(r *SpecificationResult) error {
	if r == nil {
		return fmt.Errorf("spec: nil result")
	}
	if r.ImplementationPlan == nil {
		r.ImplementationPlan = []TaskItem{}
	}
	for i := range r.ImplementationPlan {
		if err := normalizeTask(&r.ImplementationPlan[i], 0); err != nil {
			return err
		}
	}
	return nil
}

func normalizeTask(t *TaskItem, depth int) error {
	switch t.Priority {
	case "":
		t.Priority = PriorityMedium
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("spec: task %q: priority %q outside {high, medium, low}", t.ID, t.Priority)
	}
	if t.TestStrategy == "" && depth == 0 {
		t.TestStrategy = defaultTestStrategy
	}
	if t.FilesInvolved == nil {
		t.FilesInvolved = []string{}
	}
	if t.Dependencies == nil {
		t.Dependencies = []string{}
	}
	if depth >= 1 {
		// Subtasks do not nest further.
		t.Subtasks = []TaskItem{}
		return nil
	}
	if t.Subtasks == nil {
		t.Subtasks = []TaskItem{}
	}
	for i := range t.Subtasks {
		if err := normalizeTask(&t.Subtasks[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}
