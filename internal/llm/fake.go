package llm

import (
	"context"
	"fmt"
	"strings"

	"specforge/internal/composer"
	"specforge/internal/spec"
)

// FakeClient returns a deterministic, minimal specification for offline
// development and tests. No network, no credential.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateSpec(ctx context.Context, req composer.Request) (*spec.SpecificationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	summary := req.User
	if i := strings.IndexByte(summary, '\n'); i >= 0 {
		summary = summary[:i]
	}
	result := &spec.SpecificationResult{
		ColdStartGuide:     "# Cold Start\n\n1. Install dependencies.\n2. Copy .env.example to .env.\n3. Run database migrations.",
		DirectoryStructure: "app/\n  components/\n  api/\nlib/\n  db/\n",
		ImplementationPlan: []spec.TaskItem{
			{
				ID:           "task-1",
				Title:        "Scaffold project",
				Description:  "Initialize the project skeleton for: " + summary,
				Details:      "Create the base application with the configured framework and styling.",
				TestStrategy: "Manual verification",
				Priority:     spec.PriorityHigh,
			},
			{
				ID:           "task-2",
				Title:        "Implement selected modules",
				Description:  "Build the selected blueprint modules end to end.",
				Details:      "One vertical slice per module: schema, API route, UI surface.",
				Dependencies: []string{"task-1"},
				Subtasks: []spec.TaskItem{
					{ID: "task-2.1", Title: "Data model", Description: "Define tables and relations."},
				},
			},
		},
		ArchitectureNotes: "Fake architecture notes.",
		FullMarkdownSpec:  "# Specification\n\nGenerated offline by the fake client.",
	}
	if err := spec.Normalize(result); err != nil {
		return nil, err
	}
	return result, nil
}
