// Package project is the persistence adapter for projects, their reference
// sources, and their accumulated spec versions.
package project

import (
	"context"
	"errors"
	"time"

	"specforge/internal/spec"
)

var ErrNotFound = errors.New("project: not found")

// Project is the persisted editing-session state: the stack configuration,
// the confirmed blueprint modules, and the free-form requirement text.
type Project struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Stack       spec.StackConfig      `json:"stack"`
	Selected    []spec.SelectedModule `json:"selected"`
	RawPrompt   string                `json:"rawPrompt"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// Store is the persistence port. Deleting a project cascades to its sources
// and spec versions. InsertSpec allocates the next version serialized per
// project, so concurrent generations cannot produce duplicate versions.
type Store interface {
	CreateProject(ctx context.Context, p Project) (Project, error)
	GetProject(ctx context.Context, id string) (Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	UpdateProject(ctx context.Context, id string, update func(*Project)) (Project, error)
	DeleteProject(ctx context.Context, id string) error

	AddSource(ctx context.Context, projectID string, src spec.ReferenceSource) (spec.ReferenceSource, error)
	ListSources(ctx context.Context, projectID string) ([]spec.ReferenceSource, error)
	DeleteSource(ctx context.Context, projectID, sourceID string) error

	InsertSpec(ctx context.Context, projectID, title string, result spec.SpecificationResult) (spec.SpecVersion, error)
	ListSpecs(ctx context.Context, projectID string) ([]spec.SpecVersion, error)

	Close() error
}
