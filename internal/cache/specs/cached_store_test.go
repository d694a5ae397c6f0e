package specs

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/spec"
)

// countingStore wraps the memory store and counts origin reads.
type countingStore struct {
	*projectrepo.MemoryStore
	getCalls  atomic.Int64
	listCalls atomic.Int64
}

func (c *countingStore) GetProject(ctx context.Context, id string) (projectrepo.Project, error) {
	c.getCalls.Add(1)
	return c.MemoryStore.GetProject(ctx, id)
}

func (c *countingStore) ListSpecs(ctx context.Context, projectID string) ([]spec.SpecVersion, error) {
	c.listCalls.Add(1)
	return c.MemoryStore.ListSpecs(ctx, projectID)
}

func TestCachedStoreReadThrough(t *testing.T) {
	ctx := context.Background()
	origin := &countingStore{MemoryStore: projectrepo.NewMemoryStore()}
	s := NewCachedStore(origin, DefaultCacheConfig())

	p, err := s.CreateProject(ctx, projectrepo.Project{Name: "P"})
	require.NoError(t, err)

	// CreateProject primes the cache, so reads never hit the origin.
	for range 3 {
		got, err := s.GetProject(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "P", got.Name)
	}
	require.EqualValues(t, 0, origin.getCalls.Load())

	// First listing hits the origin, later ones are served from cache.
	_, err = s.ListSpecs(ctx, p.ID)
	require.NoError(t, err)
	_, err = s.ListSpecs(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, origin.listCalls.Load())
}

func TestCachedStoreInsertInvalidates(t *testing.T) {
	ctx := context.Background()
	origin := &countingStore{MemoryStore: projectrepo.NewMemoryStore()}
	s := NewCachedStore(origin, DefaultCacheConfig())

	p, err := s.CreateProject(ctx, projectrepo.Project{Name: "P"})
	require.NoError(t, err)

	list, err := s.ListSpecs(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = s.InsertSpec(ctx, p.ID, "T", spec.SpecificationResult{})
	require.NoError(t, err)

	list, err = s.ListSpecs(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "1.0.0", list[0].Version)
}

func TestCachedStoreDeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	origin := &countingStore{MemoryStore: projectrepo.NewMemoryStore()}
	s := NewCachedStore(origin, DefaultCacheConfig())

	p, err := s.CreateProject(ctx, projectrepo.Project{Name: "P"})
	require.NoError(t, err)
	_, err = s.GetProject(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(ctx, p.ID))

	_, err = s.GetProject(ctx, p.ID)
	require.ErrorIs(t, err, projectrepo.ErrNotFound)
}

func TestCachedStoreUpdateRefreshes(t *testing.T) {
	ctx := context.Background()
	origin := &countingStore{MemoryStore: projectrepo.NewMemoryStore()}
	s := NewCachedStore(origin, DefaultCacheConfig())

	p, err := s.CreateProject(ctx, projectrepo.Project{Name: "P"})
	require.NoError(t, err)

	_, err = s.UpdateProject(ctx, p.ID, func(pr *projectrepo.Project) {
		pr.Name = "Renamed"
	})
	require.NoError(t, err)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.EqualValues(t, 0, origin.getCalls.Load())
}
