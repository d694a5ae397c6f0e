package spec

import "time"

// Task priorities form a closed set; the generation schema constrains the
// model to these values and Normalize enforces them on decode.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// StackConfig captures the technology choices for one project. Single-valued
// fields hold exactly one catalog option; slice fields hold any subset.
type StackConfig struct {
	Framework             string   `json:"framework"`
	Styling               string   `json:"styling"`
	Backend               string   `json:"backend"`
	Tooling               []string `json:"tooling"`
	NotificationProviders []string `json:"notificationProviders"`
	PaymentProviders      []string `json:"paymentProviders"`
	FreeText              string   `json:"freeText"`
}

// SelectedModule is a user's activation of a catalog blueprint. DisplayName
// and ChosenSubLabels are stored copies so composition still works when the
// blueprint id is no longer in the catalog.
type SelectedModule struct {
	BlueprintID     string   `json:"blueprintId"`
	DisplayName     string   `json:"name"`
	ChosenSubLabels []string `json:"selectedSubLabels"`
}

// ReferenceSource is user-supplied grounding text, inlined verbatim into the
// generation request. Content is never truncated or re-encoded here.
type ReferenceSource struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Kind    string `json:"kind"` // "file" or "pasted"
}

// TaskItem is one entry of the implementation plan. Subtasks nest exactly one
// level deep.
type TaskItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Details       string     `json:"details"`
	TestStrategy  string     `json:"testStrategy"`
	Priority      string     `json:"priority"`
	FilesInvolved []string   `json:"files_involved"`
	Dependencies  []string   `json:"dependencies"`
	Subtasks      []TaskItem `json:"subtasks"`
}

// SpecificationResult is the schema-validated output of one generation call.
// Immutable once returned by the client.
type SpecificationResult struct {
	Title              string     `json:"title,omitempty"`
	ColdStartGuide     string     `json:"coldStartGuide"`
	DirectoryStructure string     `json:"directoryStructure"`
	ImplementationPlan []TaskItem `json:"implementationPlan"`
	ArchitectureNotes  string     `json:"architectureNotes"`
	FullMarkdownSpec   string     `json:"fullMarkdownSpec"`
}

// SpecVersion is a persisted, version-stamped SpecificationResult tied to a
// project. Versions accumulate and are never mutated.
type SpecVersion struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Version   string    `json:"version"`
	Title     string    `json:"title"`
	SpecificationResult
	CreatedAt time.Time `json:"createdAt"`
}
