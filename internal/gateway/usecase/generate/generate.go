// Package generate orchestrates one generation action: load the editing
// session, compose the prompt, call the provider, stamp and persist the
// resulting spec version.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"specforge/internal/composer"
	"specforge/internal/gateway/events"
	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/llm"
	"specforge/internal/spec"
)

// ErrPersistence marks a save failure that happened after a successful
// generation. The outcome still carries the result so the caller can retry
// the save or export without re-hitting the provider.
var ErrPersistence = errors.New("generate: persist failed")

type Deps struct {
	Store  projectrepo.Store
	Client llm.Client
	Hub    *events.Hub // optional
}

type Input struct {
	ProjectID string
	// Prompt overrides the project's stored requirement text for this run
	// when non-empty.
	Prompt string
}

// Outcome is what one generation action produced. Result is non-nil whenever
// the provider call succeeded, even if persistence then failed.
type Outcome struct {
	Project   projectrepo.Project
	Result    *spec.SpecificationResult
	Version   spec.SpecVersion
	Persisted bool
}

// Execute runs the full pipeline. Steps are strictly sequential; the only
// suspension points are the provider call and the store calls, and ctx
// cancels both.
func Execute(ctx context.Context, in Input, d Deps) (*Outcome, error) {
	p, err := d.Store.GetProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	sources, err := d.Store.ListSources(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	freeText := in.Prompt
	if strings.TrimSpace(freeText) == "" {
		freeText = p.RawPrompt
	}
	req := composer.Compose(p.Stack, p.Selected, sources, freeText)

	d.publish(events.Event{Type: events.TypeGenerationStarted, ProjectID: p.ID})

	result, err := d.Client.GenerateSpec(ctx, req)
	if err != nil {
		d.publish(events.Event{Type: events.TypeGenerationFailed, ProjectID: p.ID, ErrorKind: ErrorKind(err)})
		return nil, err
	}

	title := strings.TrimSpace(result.Title)
	if title == "" {
		title = spec.DefaultTitle(p.Name)
	}

	version, err := d.Store.InsertSpec(ctx, p.ID, title, *result)
	if err != nil {
		log.Printf("generate: spec for project %s not persisted: %v", p.ID, err)
		d.publish(events.Event{Type: events.TypeGenerationFailed, ProjectID: p.ID, ErrorKind: ErrorKind(ErrPersistence)})
		return &Outcome{Project: p, Result: result}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	d.publish(events.Event{Type: events.TypeGenerationCompleted, ProjectID: p.ID, Version: version.Version})
	return &Outcome{Project: p, Result: result, Version: version, Persisted: true}, nil
}

func (d Deps) publish(ev events.Event) {
	if d.Hub != nil {
		d.Hub.Publish(ev)
	}
}

// ErrorKind maps an error to its stable, client-facing category name.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, llm.ErrConfiguration):
		return "configuration_error"
	case errors.Is(err, llm.ErrTransport):
		return "transport_error"
	case errors.Is(err, llm.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrPersistence):
		return "persistence_error"
	case errors.Is(err, projectrepo.ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}
