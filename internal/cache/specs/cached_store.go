// Package specs layers a read-through LRU over the project store. Spec
// listings are immutable-append data, so short TTLs are safe; writes
// invalidate the affected project eagerly anyway.
package specs

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/spec"
)

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:        2 * time.Minute,
		MaxEntries: 1024,
	}
}

// CachedStore wraps an origin store and caches spec-version listings and
// project reads per project id.
type CachedStore struct {
	origin   projectrepo.Store
	specs    *expirable.LRU[string, []spec.SpecVersion]
	projects *expirable.LRU[string, projectrepo.Project]
}

func NewCachedStore(origin projectrepo.Store, cfg CacheConfig) *CachedStore {
	def := DefaultCacheConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = def.MaxEntries
	}
	return &CachedStore{
		origin:   origin,
		specs:    expirable.NewLRU[string, []spec.SpecVersion](cfg.MaxEntries, nil, cfg.TTL),
		projects: expirable.NewLRU[string, projectrepo.Project](cfg.MaxEntries, nil, cfg.TTL),
	}
}

func (s *CachedStore) Close() error { return s.origin.Close() }

func (s *CachedStore) CreateProject(ctx context.Context, p projectrepo.Project) (projectrepo.Project, error) {
	created, err := s.origin.CreateProject(ctx, p)
	if err == nil {
		s.projects.Add(created.ID, created)
	}
	return created, err
}

func (s *CachedStore) GetProject(ctx context.Context, id string) (projectrepo.Project, error) {
	if p, ok := s.projects.Get(id); ok {
		return p, nil
	}
	p, err := s.origin.GetProject(ctx, id)
	if err != nil {
		return projectrepo.Project{}, err
	}
	s.projects.Add(id, p)
	return p, nil
}

// ListProjects always hits the origin: the listing spans every project and a
// per-id cache cannot answer it correctly.
func (s *CachedStore) ListProjects(ctx context.Context) ([]projectrepo.Project, error) {
	return s.origin.ListProjects(ctx)
}

func (s *CachedStore) UpdateProject(ctx context.Context, id string, update func(*projectrepo.Project)) (projectrepo.Project, error) {
	p, err := s.origin.UpdateProject(ctx, id, update)
	if err != nil {
		s.projects.Remove(id)
		return projectrepo.Project{}, err
	}
	s.projects.Add(id, p)
	return p, nil
}

func (s *CachedStore) DeleteProject(ctx context.Context, id string) error {
	err := s.origin.DeleteProject(ctx, id)
	s.projects.Remove(id)
	s.specs.Remove(id)
	return err
}

func (s *CachedStore) AddSource(ctx context.Context, projectID string, src spec.ReferenceSource) (spec.ReferenceSource, error) {
	return s.origin.AddSource(ctx, projectID, src)
}

func (s *CachedStore) ListSources(ctx context.Context, projectID string) ([]spec.ReferenceSource, error) {
	return s.origin.ListSources(ctx, projectID)
}

func (s *CachedStore) DeleteSource(ctx context.Context, projectID, sourceID string) error {
	return s.origin.DeleteSource(ctx, projectID, sourceID)
}

func (s *CachedStore) InsertSpec(ctx context.Context, projectID, title string, result spec.SpecificationResult) (spec.SpecVersion, error) {
	v, err := s.origin.InsertSpec(ctx, projectID, title, result)
	s.specs.Remove(projectID)
	return v, err
}

func (s *CachedStore) ListSpecs(ctx context.Context, projectID string) ([]spec.SpecVersion, error) {
	if cached, ok := s.specs.Get(projectID); ok {
		out := make([]spec.SpecVersion, len(cached))
		copy(out, cached)
		return out, nil
	}
	list, err := s.origin.ListSpecs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	s.specs.Add(projectID, list)
	out := make([]spec.SpecVersion, len(list))
	copy(out, list)
	return out, nil
}
