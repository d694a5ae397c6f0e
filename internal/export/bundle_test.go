package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"specforge/internal/spec"
)

func TestBundleName(t *testing.T) {
	if got := BundleName("  My CRM  App "); got != "My_CRM_App_bundle.zip" {
		t.Fatalf("unexpected bundle name: %q", got)
	}
}

func TestWriteBundleLayout(t *testing.T) {
	result := spec.SpecificationResult{
		FullMarkdownSpec:   "# Full",
		ColdStartGuide:     "# Guide",
		ArchitectureNotes:  "notes",
		DirectoryStructure: "app/",
		ImplementationPlan: []spec.TaskItem{{
			ID:            "task-1",
			Title:         "Scaffold",
			Description:   "desc",
			Details:       "details",
			TestStrategy:  "Manual verification",
			Priority:      spec.PriorityHigh,
			FilesInvolved: []string{"app/page.tsx"},
			Subtasks:      []spec.TaskItem{{ID: "task-1.1", Title: "Sub", Description: "sd"}},
		}},
	}
	sources := []spec.ReferenceSource{
		{Name: "style guide.md", Content: "rules"},
		{Name: "../../../etc/passwd", Content: "nope"},
	}

	var buf bytes.Buffer
	if err := WriteBundle(&buf, "My CRM", result, sources); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(data)
	}

	for _, name := range []string{
		"my-crm/FULL_SPECIFICATION.md",
		"my-crm/COLD_START_GUIDE.md",
		"my-crm/ARCHITECTURE_NOTES.md",
		"my-crm/DIRECTORY_STRUCTURE.txt",
		"my-crm/IMPLEMENTATION_PLAN.md",
		"my-crm/context_sources/style guide.md",
		"my-crm/context_sources/passwd",
	} {
		if _, ok := entries[name]; !ok {
			t.Fatalf("missing entry %s, have %v", name, keys(entries))
		}
	}
	if entries["my-crm/FULL_SPECIFICATION.md"] != "# Full" {
		t.Fatalf("unexpected spec content: %q", entries["my-crm/FULL_SPECIFICATION.md"])
	}

	plan := entries["my-crm/IMPLEMENTATION_PLAN.md"]
	for _, want := range []string{
		"# [task-1] Scaffold",
		"**Priority:** HIGH",
		"**Files:** app/page.tsx",
		"## Test Strategy\nManual verification",
		"- [task-1.1] Sub: sd",
	} {
		if !strings.Contains(plan, want) {
			t.Fatalf("plan missing %q:\n%s", want, plan)
		}
	}
}

func TestWriteBundleEmptyName(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBundle(&buf, "   ", spec.SpecificationResult{}, nil); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if !strings.HasPrefix(zr.File[0].Name, "project/") {
		t.Fatalf("blank project name should fall back to project/, got %s", zr.File[0].Name)
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
