// Package export renders a generated specification into the downloadable
// bundle: one zip with the spec documents and a folder of context sources.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"

	"specforge/internal/spec"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// BundleName is the suggested download filename for a project bundle.
func BundleName(projectName string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(projectName), "_") + "_bundle.zip"
}

// WriteBundle writes the zip archive for one specification to w. Layout:
//
//	<project-slug>/FULL_SPECIFICATION.md
//	<project-slug>/COLD_START_GUIDE.md
//	<project-slug>/ARCHITECTURE_NOTES.md
//	<project-slug>/DIRECTORY_STRUCTURE.txt
//	<project-slug>/IMPLEMENTATION_PLAN.md
//	<project-slug>/context_sources/<source name>
func WriteBundle(w io.Writer, projectName string, result spec.SpecificationResult, sources []spec.ReferenceSource) error {
	zw := zip.NewWriter(w)
	folder := strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(projectName), "-"))
	if folder == "" {
		folder = "project"
	}

	files := []struct {
		name    string
		content string
	}{
		{"FULL_SPECIFICATION.md", result.FullMarkdownSpec},
		{"COLD_START_GUIDE.md", result.ColdStartGuide},
		{"ARCHITECTURE_NOTES.md", result.ArchitectureNotes},
		{"DIRECTORY_STRUCTURE.txt", result.DirectoryStructure},
		{"IMPLEMENTATION_PLAN.md", RenderPlan(result.ImplementationPlan)},
	}
	for _, f := range files {
		if err := writeEntry(zw, folder+"/"+f.name, f.content); err != nil {
			return err
		}
	}
	for _, src := range sources {
		if err := writeEntry(zw, folder+"/context_sources/"+sanitizeName(src.Name), src.Content); err != nil {
			return err
		}
	}
	return zw.Close()
}

// RenderPlan formats the implementation plan as one markdown section per task.
func RenderPlan(plan []spec.TaskItem) string {
	var b strings.Builder
	for _, task := range plan {
		fmt.Fprintf(&b, "# [%s] %s\n", task.ID, task.Title)
		fmt.Fprintf(&b, "**Priority:** %s\n", strings.ToUpper(task.Priority))
		fmt.Fprintf(&b, "**Files:** %s\n\n", strings.Join(task.FilesInvolved, ", "))
		fmt.Fprintf(&b, "## Description\n%s\n\n", task.Description)
		fmt.Fprintf(&b, "## Implementation Details\n%s\n\n", task.Details)
		fmt.Fprintf(&b, "## Test Strategy\n%s\n", task.TestStrategy)
		if len(task.Subtasks) > 0 {
			b.WriteString("\n## Subtasks\n")
			for _, sub := range task.Subtasks {
				fmt.Fprintf(&b, "- [%s] %s: %s\n", sub.ID, sub.Title, sub.Description)
			}
		}
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

func writeEntry(zw *zip.Writer, name, content string) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, content)
	return err
}

// sanitizeName keeps source filenames inside the archive folder.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "." || name == ".." {
		name = "source.txt"
	}
	return name
}
