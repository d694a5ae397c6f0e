package project

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"specforge/internal/spec"
)

// MemoryStore is the in-process fallback used when no DATABASE_URL is
// configured, and the double for store-level tests. Semantics match the
// Postgres store, including cascade delete and serialized version allocation.
type MemoryStore struct {
	mu       sync.Mutex
	projects map[string]Project
	sources  map[string][]spec.ReferenceSource
	specs    map[string][]spec.SpecVersion
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make(map[string]Project),
		sources:  make(map[string][]spec.ReferenceSource),
		specs:    make(map[string][]spec.SpecVersion),
	}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) CreateProject(_ context.Context, p Project) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Name == "" {
		p.Name = "Untitled Project"
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	s.projects[p.ID] = p
	return p, nil
}

func (s *MemoryStore) GetProject(_ context.Context, id string) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) ListProjects(_ context.Context) ([]Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateProject(_ context.Context, id string, update func(*Project)) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	update(&p)
	p.UpdatedAt = time.Now().UTC()
	s.projects[id] = p
	return p, nil
}

func (s *MemoryStore) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	delete(s.sources, id)
	delete(s.specs, id)
	return nil
}

func (s *MemoryStore) AddSource(_ context.Context, projectID string, src spec.ReferenceSource) (spec.ReferenceSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[projectID]; !ok {
		return spec.ReferenceSource{}, ErrNotFound
	}
	if src.ID == "" {
		src.ID = uuid.NewString()
	}
	if src.Kind == "" {
		src.Kind = "pasted"
	}
	s.sources[projectID] = append(s.sources[projectID], src)
	return src, nil
}

func (s *MemoryStore) ListSources(_ context.Context, projectID string) ([]spec.ReferenceSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]spec.ReferenceSource, len(s.sources[projectID]))
	copy(out, s.sources[projectID])
	return out, nil
}

func (s *MemoryStore) DeleteSource(_ context.Context, projectID, sourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.sources[projectID]
	for i, src := range list {
		if src.ID == sourceID {
			s.sources[projectID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) InsertSpec(_ context.Context, projectID, title string, result spec.SpecificationResult) (spec.SpecVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[projectID]; !ok {
		return spec.SpecVersion{}, ErrNotFound
	}
	v := spec.SpecVersion{
		ID:                  uuid.NewString(),
		ProjectID:           projectID,
		Version:             spec.NextVersion(len(s.specs[projectID])),
		Title:               title,
		SpecificationResult: result,
		CreatedAt:           time.Now().UTC(),
	}
	s.specs[projectID] = append(s.specs[projectID], v)
	return v, nil
}

func (s *MemoryStore) ListSpecs(_ context.Context, projectID string) ([]spec.SpecVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.specs[projectID]
	out := make([]spec.SpecVersion, len(stored))
	// newest first, matching the Postgres ordering
	for i, v := range stored {
		out[len(stored)-1-i] = v
	}
	return out, nil
}
