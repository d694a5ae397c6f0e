package llm

import genai "google.golang.org/genai"

// ResultSchema is the authoritative output contract handed to the provider.
// It mirrors spec.SpecificationResult: four required string fields plus the
// implementation plan, with priorities constrained to the closed set and
// subtasks nesting exactly one level.
func ResultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "Short human-readable title for the specification.",
			},
			"coldStartGuide": {
				Type:        genai.TypeString,
				Description: "Markdown guide for project setup: prerequisite tools, exact install commands, .env.example template, database initialization steps.",
			},
			"directoryStructure": {
				Type:        genai.TypeString,
				Description: "ASCII tree representation of the project structure.",
			},
			"implementationPlan": {
				Type:        genai.TypeArray,
				Description: "Step-by-step roadmap of atomic tasks. Name exact file paths, function names, and libraries; do not be vague. Selected blueprint modules must be incorporated.",
				Items:       taskSchema(true),
			},
			"architectureNotes": {
				Type:        genai.TypeString,
				Description: "Markdown documentation of the system design: components, data flow, security boundaries, scalability strategy.",
			},
			"fullMarkdownSpec": {
				Type:        genai.TypeString,
				Description: "Complete single-file Markdown representation of the entire specification.",
			},
		},
		Required: []string{"coldStartGuide", "directoryStructure", "implementationPlan", "architectureNotes", "fullMarkdownSpec"},
	}
}

func taskSchema(withSubtasks bool) *genai.Schema {
	props := map[string]*genai.Schema{
		"id":          {Type: genai.TypeString},
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"details": {
			Type:        genai.TypeString,
			Description: "Detailed technical instructions: exact file paths, function names to create or edit, libraries to use, logic flow.",
		},
		"testStrategy": {Type: genai.TypeString},
		"priority": {
			Type: genai.TypeString,
			Enum: []string{"high", "medium", "low"},
		},
		"files_involved": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"dependencies": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	}
	if withSubtasks {
		props["subtasks"] = &genai.Schema{
			Type:  genai.TypeArray,
			Items: taskSchema(false),
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   []string{"id", "title", "description"},
	}
}
